package hts

import (
	"context"
	"fmt"
	"strings"
)

// TransferBalanceReport pairs the sender and receiver balance
// snapshots taken immediately before and after a transfer.
type TransferBalanceReport struct {
	SenderBefore   BalanceSnapshot
	SenderAfter    BalanceSnapshot
	ReceiverBefore BalanceSnapshot
	ReceiverAfter  BalanceSnapshot
}

// TransferNFTWithBalanceCheck associates the receiver with the token
// (tolerating an existing association), snapshots both parties'
// balances, performs the transfer, and snapshots again.
func (c *Client) TransferNFTWithBalanceCheck(
	ctx context.Context,
	options TransferOptions,
) (TransferResult, TransferBalanceReport, error) {
	var report TransferBalanceReport

	if strings.TrimSpace(options.ReceiverKey) == "" {
		return TransferResult{}, report, fmt.Errorf("receiver key is required to associate the token")
	}

	newlyAssociated, err := c.AssociateToken(ctx, options.ReceiverAccountID, options.ReceiverKey, options.TokenID)
	if err != nil {
		return TransferResult{}, report, err
	}

	report.SenderBefore, err = c.NFTBalance(ctx, options.SenderAccountID, options.TokenID)
	if err != nil {
		return TransferResult{}, report, err
	}
	report.ReceiverBefore, err = c.NFTBalance(ctx, options.ReceiverAccountID, options.TokenID)
	if err != nil {
		return TransferResult{}, report, err
	}

	result, err := c.TransferNFT(ctx, options)
	if err != nil {
		return TransferResult{}, report, err
	}
	result.AlreadyAssociated = !newlyAssociated

	report.SenderAfter, err = c.NFTBalance(ctx, options.SenderAccountID, options.TokenID)
	if err != nil {
		return result, report, err
	}
	report.ReceiverAfter, err = c.NFTBalance(ctx, options.ReceiverAccountID, options.TokenID)
	if err != nil {
		return result, report, err
	}

	return result, report, nil
}

// CreateCompleteNFTCollection creates a collection and mints one NFT
// per CID, returning the refreshed token record alongside the combined
// mint result.
func (c *Client) CreateCompleteNFTCollection(
	ctx context.Context,
	options CollectionCreateOptions,
	cids []string,
) (TokenRecord, MintResult, error) {
	if err := ValidateCollectionParams(options, len(cids)); err != nil {
		return TokenRecord{}, MintResult{}, err
	}
	for _, cid := range cids {
		if err := ValidateCID(cid); err != nil {
			return TokenRecord{}, MintResult{}, err
		}
	}

	record, err := c.CreateCollection(ctx, options)
	if err != nil {
		return TokenRecord{}, MintResult{}, err
	}

	supplyKey := options.SupplyKey
	if strings.TrimSpace(supplyKey) == "" {
		supplyKey = options.TreasuryKey
	}

	mintResult, err := c.MintCollection(ctx, record.TokenID, cids, supplyKey)
	if err != nil {
		return record, MintResult{}, err
	}

	// Refresh the record so TotalSupply reflects the mints.
	refreshed, err := c.TokenInfo(ctx, record.TokenID)
	if err == nil {
		refreshed.Status = record.Status
		record = refreshed
	}

	return record, mintResult, nil
}
