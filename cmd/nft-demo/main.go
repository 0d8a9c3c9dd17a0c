package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hashgraph-online/nft-demo-go/pkg/hts"
	"github.com/hashgraph-online/nft-demo-go/pkg/mirror"
	"github.com/hashgraph-online/nft-demo-go/pkg/shared"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "nft-demo failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	operatorConfig, err := shared.OperatorConfigFromEnv()
	if err != nil {
		return err
	}
	fmt.Printf("operator %s on %s\n", operatorConfig.AccountID, operatorConfig.Network)

	client, err := hts.NewClient(hts.ClientConfig{
		OperatorAccountID:  operatorConfig.AccountID,
		OperatorPrivateKey: operatorConfig.PrivateKey,
		Network:            operatorConfig.Network,
	})
	if err != nil {
		return err
	}
	defer client.Close()

	fmt.Println("\n=== creating accounts ===")
	alice, err := client.CreateAccount(ctx, hts.AccountCreateOptions{AccountMemo: "nft-demo alice"})
	if err != nil {
		return fmt.Errorf("failed to create alice: %w", err)
	}
	fmt.Printf("alice: %s (evm %s)\n", alice.AccountID, alice.EVMAddress)

	bob, err := client.CreateAccount(ctx, hts.AccountCreateOptions{AccountMemo: "nft-demo bob"})
	if err != nil {
		return fmt.Errorf("failed to create bob: %w", err)
	}
	fmt.Printf("bob:   %s (evm %s)\n", bob.AccountID, bob.EVMAddress)

	fmt.Println("\n=== creating collection and minting ===")
	record, mintResult, err := client.CreateCompleteNFTCollection(ctx, hts.CollectionCreateOptions{
		Name:              collectionName,
		Symbol:            collectionSymbol,
		MaxSupply:         maxSupply,
		TokenMemo:         collectionMemo,
		TreasuryAccountID: alice.AccountID,
		TreasuryKey:       alice.PrivateKey.String(),
	}, collectionCIDs)
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}
	fmt.Printf("collection %s (%s / %s), treasury %s\n",
		record.TokenID, record.Name, record.Symbol, record.TreasuryAccountID)
	fmt.Printf("minted %d serials: %v\n", len(mintResult.SerialNumbers), mintResult.SerialNumbers)
	for index, metadata := range mintResult.Metadata {
		fmt.Printf("  serial %d -> %s\n", mintResult.SerialNumbers[index], metadata)
	}

	fmt.Println("\n=== token info ===")
	fmt.Printf("name=%s symbol=%s totalSupply=%d maxSupply=%d\n",
		record.Name, record.Symbol, record.TotalSupply, record.MaxSupply)

	treasuryBalance, err := client.NFTBalance(ctx, alice.AccountID, record.TokenID)
	if err != nil {
		return fmt.Errorf("failed to query treasury balance: %w", err)
	}
	fmt.Printf("treasury holds %d NFTs and %s hbar\n",
		treasuryBalance.NFTCount, mirror.FormatHbar(treasuryBalance.HbarTinybars))

	fmt.Println("\n=== transferring serial 1 from alice to bob ===")
	serial := mintResult.SerialNumbers[0]
	result, report, err := client.TransferNFTWithBalanceCheck(ctx, hts.TransferOptions{
		TokenID:           record.TokenID,
		SerialNumber:      serial,
		SenderAccountID:   alice.AccountID,
		SenderKey:         alice.PrivateKey.String(),
		ReceiverAccountID: bob.AccountID,
		ReceiverKey:       bob.PrivateKey.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to transfer serial %d: %w", serial, err)
	}
	if result.AlreadyAssociated {
		fmt.Println("receiver was already associated with the token")
	}
	fmt.Printf("transfer %s: serial %d %s -> %s\n",
		result.Status, result.SerialNumber, result.SenderAccountID, result.ReceiverAccountID)
	fmt.Printf("alice NFTs: %d -> %d\n", report.SenderBefore.NFTCount, report.SenderAfter.NFTCount)
	fmt.Printf("bob NFTs:   %d -> %d\n", report.ReceiverBefore.NFTCount, report.ReceiverAfter.NFTCount)

	fmt.Println("\n=== mirror node verification ===")
	nftInfo, err := client.MirrorClient().GetNFT(ctx, record.TokenID, serial)
	if err != nil {
		// The mirror node indexes with a short delay; the transfer
		// itself already succeeded by receipt.
		fmt.Printf("mirror verification unavailable: %v\n", err)
		return nil
	}
	if nftInfo.AccountID == bob.AccountID {
		fmt.Printf("mirror confirms serial %d is owned by %s\n", serial, nftInfo.AccountID)
	} else {
		fmt.Printf("mirror still reports owner %s for serial %d\n", nftInfo.AccountID, serial)
	}

	return nil
}
