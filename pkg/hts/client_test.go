package hts

import (
	"context"
	"errors"
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

func TestNewClient(t *testing.T) {
	privateKey, _ := hedera.PrivateKeyGenerateEcdsa()

	_, err := NewClient(ClientConfig{Network: "invalid"})
	if err == nil {
		t.Fatal("expected error for invalid network")
	}

	_, err = NewClient(ClientConfig{Network: "testnet"})
	if err == nil {
		t.Fatal("expected error for missing operator account")
	}

	_, err = NewClient(ClientConfig{Network: "testnet", OperatorAccountID: "0.0.1"})
	if err == nil {
		t.Fatal("expected error for missing operator key")
	}

	_, err = NewClient(ClientConfig{Network: "testnet", OperatorAccountID: "not-an-id", OperatorPrivateKey: privateKey.String()})
	if err == nil {
		t.Fatal("expected error for malformed operator account")
	}

	_, err = NewClient(ClientConfig{Network: "testnet", OperatorAccountID: "0.0.1", OperatorPrivateKey: "not-a-key"})
	if err == nil {
		t.Fatal("expected error for malformed operator key")
	}

	client, err := NewClient(ClientConfig{
		Network:            "testnet",
		OperatorAccountID:  "0.0.1",
		OperatorPrivateKey: privateKey.String(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("expected client")
	}
	if client.Network() != "testnet" {
		t.Fatalf("unexpected network: %s", client.Network())
	}
	if client.OperatorAccountID() != "0.0.1" {
		t.Fatalf("unexpected operator: %s", client.OperatorAccountID())
	}
	if client.HederaClient() == nil || client.MirrorClient() == nil {
		t.Fatal("expected wired hedera and mirror clients")
	}
	if err := client.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
}

func TestCreateCollectionRequiresTreasuryKey(t *testing.T) {
	client := newOfflineClient(t)

	_, err := client.CreateCollection(context.Background(), CollectionCreateOptions{
		Name:              "Demo Gallery",
		Symbol:            "DGAL",
		MaxSupply:         10,
		TreasuryAccountID: "0.0.2002",
	})
	if err == nil {
		t.Fatal("expected error when treasury key is missing")
	}
}

func TestMintCollectionRejectsEmptyList(t *testing.T) {
	client := newOfflineClient(t)

	_, err := client.MintCollection(context.Background(), "0.0.5005", nil, "")
	if err == nil {
		t.Fatal("expected error for empty cid list")
	}
}

func TestMintCollectionRejectsInvalidCID(t *testing.T) {
	client := newOfflineClient(t)

	_, err := client.MintCollection(context.Background(), "0.0.5005", []string{"not a cid"}, "")
	if err == nil {
		t.Fatal("expected error for invalid cid")
	}
	var validationErr ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

func TestAssociateTokenRejectsBadKey(t *testing.T) {
	client := newOfflineClient(t)

	_, err := client.AssociateToken(context.Background(), "0.0.2002", "not-a-key", "0.0.5005")
	if err == nil {
		t.Fatal("expected error for malformed account key")
	}
}

func TestTransferNFTRejectsBadSender(t *testing.T) {
	client := newOfflineClient(t)
	privateKey, _ := hedera.PrivateKeyGenerateEcdsa()

	_, err := client.TransferNFT(context.Background(), TransferOptions{
		TokenID:           "0.0.5005",
		SerialNumber:      1,
		SenderAccountID:   "bad",
		SenderKey:         privateKey.String(),
		ReceiverAccountID: "0.0.2002",
	})
	if err == nil {
		t.Fatal("expected error for malformed sender account")
	}
}

func TestNFTBalanceRejectsBadIDs(t *testing.T) {
	client := newOfflineClient(t)

	if _, err := client.NFTBalance(context.Background(), "bad", "0.0.5005"); err == nil {
		t.Fatal("expected error for malformed account ID")
	}
	if _, err := client.NFTBalance(context.Background(), "0.0.2002", "bad"); err == nil {
		t.Fatal("expected error for malformed token ID")
	}
}

func TestTransferWithBalanceCheckRequiresReceiverKey(t *testing.T) {
	client := newOfflineClient(t)

	_, _, err := client.TransferNFTWithBalanceCheck(context.Background(), TransferOptions{
		TokenID:           "0.0.5005",
		SerialNumber:      1,
		SenderAccountID:   "0.0.1001",
		ReceiverAccountID: "0.0.2002",
	})
	if err == nil {
		t.Fatal("expected error for missing receiver key")
	}
}

func TestErrorTaxonomyUnwraps(t *testing.T) {
	cause := errors.New("sdk failure")
	err := MintError{
		HTSError: HTSError{Message: "mint failed", Cause: cause},
		TokenID:  "0.0.5005",
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected error chain to reach the cause")
	}
	if err.Error() != "mint failed" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func newOfflineClient(t *testing.T) *Client {
	t.Helper()

	privateKey, err := hedera.PrivateKeyGenerateEcdsa()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	client, err := NewClient(ClientConfig{
		Network:            "testnet",
		OperatorAccountID:  "0.0.1",
		OperatorPrivateKey: privateKey.String(),
	})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}
