package hts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashgraph-online/nft-demo-go/pkg/mirror"
	"github.com/hashgraph-online/nft-demo-go/pkg/shared"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// alreadyAssociatedStatus is the ledger status reported when an account
// already holds an association for the token. Association treats it as
// a non-fatal outcome.
const alreadyAssociatedStatus = "TOKEN_ALREADY_ASSOCIATED_TO_ACCOUNT"

// Client owns the shared Hedera client handle and exposes one method
// per ledger operation. All operations are sequential; the SDK owns
// signing, fees, and receipt polling.
type Client struct {
	hederaClient *hedera.Client
	mirrorClient *mirror.Client
	operatorID   hedera.AccountID
	operatorKey  hedera.PrivateKey
	network      string
}

func NewClient(config ClientConfig) (*Client, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}

	trimmedOperatorID := strings.TrimSpace(config.OperatorAccountID)
	if trimmedOperatorID == "" {
		return nil, fmt.Errorf("operator account ID is required")
	}
	trimmedOperatorKey := strings.TrimSpace(config.OperatorPrivateKey)
	if trimmedOperatorKey == "" {
		return nil, fmt.Errorf("operator private key is required")
	}

	operatorID, err := hedera.AccountIDFromString(trimmedOperatorID)
	if err != nil {
		return nil, fmt.Errorf("invalid operator account ID: %w", err)
	}
	operatorKey, err := shared.ParsePrivateKey(trimmedOperatorKey)
	if err != nil {
		return nil, err
	}

	hederaClient, err := shared.NewHederaClient(network)
	if err != nil {
		return nil, err
	}
	hederaClient.SetOperator(operatorID, operatorKey)

	mirrorClient, err := mirror.NewClient(mirror.Config{
		Network: network,
		BaseURL: config.MirrorBaseURL,
		APIKey:  config.MirrorAPIKey,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		hederaClient: hederaClient,
		mirrorClient: mirrorClient,
		operatorID:   operatorID,
		operatorKey:  operatorKey,
		network:      network,
	}, nil
}

// HederaClient returns the shared SDK client handle.
func (c *Client) HederaClient() *hedera.Client {
	return c.hederaClient
}

// MirrorClient returns the configured mirror node client.
func (c *Client) MirrorClient() *mirror.Client {
	return c.mirrorClient
}

// OperatorAccountID returns the operator account identifier.
func (c *Client) OperatorAccountID() string {
	return c.operatorID.String()
}

// Network returns the normalized network name.
func (c *Client) Network() string {
	return c.network
}

// Close releases the shared client handle. The client must not be used
// afterwards.
func (c *Client) Close() error {
	return c.hederaClient.Close()
}

// CreateAccount generates an ECDSA key pair and creates a new account
// funded from the operator.
func (c *Client) CreateAccount(ctx context.Context, options AccountCreateOptions) (AccountRecord, error) {
	_ = ctx

	privateKey, err := hedera.PrivateKeyGenerateEcdsa()
	if err != nil {
		return AccountRecord{}, fmt.Errorf("failed to generate ecdsa private key: %w", err)
	}
	publicKey := privateKey.PublicKey()

	initialBalance := options.InitialBalanceHbar
	if initialBalance <= 0 {
		initialBalance = DefaultInitialBalanceHbar
	}

	transaction, err := BuildAccountCreateTx(AccountCreateTxParams{
		PublicKey:                     publicKey,
		InitialBalanceHbar:            initialBalance,
		AccountMemo:                   options.AccountMemo,
		TransactionMemo:               options.TransactionMemo,
		MaxAutomaticTokenAssociations: options.MaxAutomaticTokenAssociations,
	})
	if err != nil {
		return AccountRecord{}, err
	}

	response, err := transaction.Execute(c.hederaClient)
	if err != nil {
		return AccountRecord{}, AccountCreateError{HTSError{
			Message: fmt.Sprintf("failed to execute account create transaction: %v", err),
			Cause:   err,
		}}
	}
	receipt, err := response.GetReceipt(c.hederaClient)
	if err != nil {
		return AccountRecord{}, AccountCreateError{HTSError{
			Message: fmt.Sprintf("failed to retrieve account create receipt: %v", err),
			Cause:   err,
		}}
	}
	if receipt.AccountID == nil {
		return AccountRecord{}, AccountCreateError{HTSError{Message: "account create receipt did not include an account ID"}}
	}

	return AccountRecord{
		AccountID:          receipt.AccountID.String(),
		PrivateKey:         privateKey,
		PrivateKeyRaw:      privateKey.StringRaw(),
		PublicKey:          publicKey,
		EVMAddress:         normalizeEVMAddress(publicKey.ToEvmAddress()),
		InitialBalanceHbar: initialBalance,
		Status:             receipt.Status.String(),
		CreatedAt:          time.Now().UTC(),
	}, nil
}

// CreateCollection creates a non-fungible token collection and enriches
// the record with a follow-up token info query. The operator is the
// treasury unless one is supplied; a supplied treasury must come with
// its key so the creation can be co-signed.
func (c *Client) CreateCollection(ctx context.Context, options CollectionCreateOptions) (TokenRecord, error) {
	treasuryID := c.operatorID
	treasuryKey := c.operatorKey
	if trimmed := strings.TrimSpace(options.TreasuryAccountID); trimmed != "" {
		parsedTreasuryID, err := hedera.AccountIDFromString(trimmed)
		if err != nil {
			return TokenRecord{}, fmt.Errorf("invalid treasury account ID: %w", err)
		}
		if strings.TrimSpace(options.TreasuryKey) == "" {
			return TokenRecord{}, fmt.Errorf("treasury key is required when the treasury is not the operator")
		}
		parsedTreasuryKey, err := shared.ParsePrivateKey(options.TreasuryKey)
		if err != nil {
			return TokenRecord{}, err
		}
		treasuryID = parsedTreasuryID
		treasuryKey = parsedTreasuryKey
	}

	supplyKey := treasuryKey
	if strings.TrimSpace(options.SupplyKey) != "" {
		parsedSupplyKey, err := shared.ParsePrivateKey(options.SupplyKey)
		if err != nil {
			return TokenRecord{}, err
		}
		supplyKey = parsedSupplyKey
	}

	params := CollectionCreateTxParams{
		Name:              options.Name,
		Symbol:            options.Symbol,
		MaxSupply:         options.MaxSupply,
		TokenMemo:         options.TokenMemo,
		TreasuryAccountID: treasuryID,
		SupplyKey:         supplyKey.PublicKey(),
	}

	var adminKey *hedera.PrivateKey
	if strings.TrimSpace(options.AdminKey) != "" {
		parsedAdminKey, err := shared.ParsePrivateKey(options.AdminKey)
		if err != nil {
			return TokenRecord{}, err
		}
		adminKey = &parsedAdminKey
		adminPublic := parsedAdminKey.PublicKey()
		params.AdminKey = &adminPublic
	}

	transaction, err := BuildCollectionCreateTx(params)
	if err != nil {
		return TokenRecord{}, err
	}

	frozenTransaction, err := transaction.FreezeWith(c.hederaClient)
	if err != nil {
		return TokenRecord{}, fmt.Errorf("failed to freeze token create transaction: %w", err)
	}
	if treasuryID.String() != c.operatorID.String() {
		frozenTransaction = frozenTransaction.Sign(treasuryKey)
	}
	if adminKey != nil {
		frozenTransaction = frozenTransaction.Sign(*adminKey)
	}

	response, err := frozenTransaction.Execute(c.hederaClient)
	if err != nil {
		return TokenRecord{}, CollectionCreateError{
			HTSError: HTSError{
				Message: fmt.Sprintf("failed to execute token create transaction: %v", err),
				Cause:   err,
			},
			Name:   options.Name,
			Symbol: options.Symbol,
		}
	}
	receipt, err := response.GetReceipt(c.hederaClient)
	if err != nil {
		return TokenRecord{}, CollectionCreateError{
			HTSError: HTSError{
				Message: fmt.Sprintf("failed to retrieve token create receipt: %v", err),
				Cause:   err,
			},
			Name:   options.Name,
			Symbol: options.Symbol,
		}
	}
	if receipt.TokenID == nil {
		return TokenRecord{}, CollectionCreateError{
			HTSError: HTSError{Message: "token create receipt did not include a token ID"},
			Name:     options.Name,
			Symbol:   options.Symbol,
		}
	}

	record, err := c.TokenInfo(ctx, receipt.TokenID.String())
	if err != nil {
		// The collection exists even when the enrichment query fails;
		// fall back to the receipt fields.
		return TokenRecord{
			TokenID:           receipt.TokenID.String(),
			Name:              options.Name,
			Symbol:            options.Symbol,
			MaxSupply:         options.MaxSupply,
			TreasuryAccountID: treasuryID.String(),
			SupplyKey:         supplyKey.PublicKey().String(),
			Status:            receipt.Status.String(),
			CreatedAt:         time.Now().UTC(),
		}, nil
	}

	record.Status = receipt.Status.String()
	return record, nil
}

// TokenInfo queries the token and reshapes the response.
func (c *Client) TokenInfo(ctx context.Context, tokenID string) (TokenRecord, error) {
	_ = ctx

	parsedTokenID, err := hedera.TokenIDFromString(strings.TrimSpace(tokenID))
	if err != nil {
		return TokenRecord{}, fmt.Errorf("invalid token ID: %w", err)
	}

	info, err := hedera.NewTokenInfoQuery().
		SetTokenID(parsedTokenID).
		Execute(c.hederaClient)
	if err != nil {
		return TokenRecord{}, fmt.Errorf("failed to query token info: %w", err)
	}

	supplyKey := ""
	if info.SupplyKey != nil {
		supplyKey = info.SupplyKey.String()
	}

	return TokenRecord{
		TokenID:           parsedTokenID.String(),
		Name:              info.Name,
		Symbol:            info.Symbol,
		MaxSupply:         info.MaxSupply,
		TotalSupply:       info.TotalSupply,
		TreasuryAccountID: info.Treasury.String(),
		SupplyKey:         supplyKey,
		Status:            "SUCCESS",
		CreatedAt:         time.Now().UTC(),
	}, nil
}

// MintNFT executes one mint transaction for a batch of CIDs, signed by
// the supply key when one is supplied.
func (c *Client) MintNFT(ctx context.Context, options MintOptions) (MintResult, error) {
	_ = ctx

	transaction, err := BuildMintTx(options.TokenID, options.CIDs, options.Memo)
	if err != nil {
		return MintResult{}, err
	}

	frozenTransaction, err := transaction.FreezeWith(c.hederaClient)
	if err != nil {
		return MintResult{}, fmt.Errorf("failed to freeze mint transaction: %w", err)
	}

	if strings.TrimSpace(options.SupplyKey) != "" {
		supplyKey, parseErr := shared.ParsePrivateKey(options.SupplyKey)
		if parseErr != nil {
			return MintResult{}, parseErr
		}
		frozenTransaction = frozenTransaction.Sign(supplyKey)
	}

	response, err := hedera.TransactionExecute(frozenTransaction, c.hederaClient)
	if err != nil {
		return MintResult{}, MintError{
			HTSError: HTSError{
				Message: fmt.Sprintf("failed to execute mint transaction: %v", err),
				Cause:   err,
			},
			TokenID: options.TokenID,
		}
	}
	receipt, err := response.GetReceipt(c.hederaClient)
	if err != nil {
		return MintResult{}, MintError{
			HTSError: HTSError{
				Message: fmt.Sprintf("failed to retrieve mint receipt: %v", err),
				Cause:   err,
			},
			TokenID: options.TokenID,
		}
	}
	if receipt.Status.String() != "SUCCESS" {
		return MintResult{}, MintError{
			HTSError: HTSError{Message: fmt.Sprintf("mint transaction failed with status %s", receipt.Status.String())},
			TokenID:  options.TokenID,
		}
	}

	metadata := make([]string, 0, len(options.CIDs))
	for _, cid := range options.CIDs {
		metadata = append(metadata, string(MetadataForCID(cid)))
	}

	return MintResult{
		TokenID:       options.TokenID,
		SerialNumbers: append([]int64{}, receipt.SerialNumbers...),
		Metadata:      metadata,
		TransactionID: response.TransactionID.String(),
		Status:        receipt.Status.String(),
		MintedAt:      time.Now().UTC(),
	}, nil
}

// MintCollection mints one NFT per CID, chunking the list into
// ledger-sized batches. Serial numbers accumulate in mint order.
func (c *Client) MintCollection(ctx context.Context, tokenID string, cids []string, supplyKey string) (MintResult, error) {
	if len(cids) == 0 {
		return MintResult{}, fmt.Errorf("at least one cid is required")
	}
	for _, cid := range cids {
		if err := ValidateCID(cid); err != nil {
			return MintResult{}, err
		}
	}

	combined := MintResult{
		TokenID:       tokenID,
		SerialNumbers: make([]int64, 0, len(cids)),
		Metadata:      make([]string, 0, len(cids)),
	}

	for batchIndex := 0; batchIndex*MaxMintBatchSize < len(cids); batchIndex++ {
		start := batchIndex * MaxMintBatchSize
		end := start + MaxMintBatchSize
		if end > len(cids) {
			end = len(cids)
		}

		batchResult, err := c.MintNFT(ctx, MintOptions{
			TokenID:   tokenID,
			CIDs:      cids[start:end],
			SupplyKey: supplyKey,
		})
		if err != nil {
			return MintResult{}, MintError{
				HTSError: HTSError{
					Message: fmt.Sprintf("mint batch %d failed: %v", batchIndex, err),
					Cause:   err,
				},
				TokenID:     tokenID,
				FailedBatch: batchIndex,
			}
		}

		combined.SerialNumbers = append(combined.SerialNumbers, batchResult.SerialNumbers...)
		combined.Metadata = append(combined.Metadata, batchResult.Metadata...)
		combined.TransactionID = batchResult.TransactionID
		combined.Status = batchResult.Status
		combined.MintedAt = batchResult.MintedAt
	}

	return combined, nil
}

// AssociateToken associates an account with a token, signing with the
// account's key. It returns false without an error when the ledger
// reports the association already exists.
func (c *Client) AssociateToken(ctx context.Context, accountID string, accountKey string, tokenID string) (bool, error) {
	_ = ctx

	parsedKey, err := shared.ParsePrivateKey(accountKey)
	if err != nil {
		return false, err
	}

	transaction, err := BuildAssociateTx(accountID, tokenID)
	if err != nil {
		return false, err
	}

	frozenTransaction, err := transaction.FreezeWith(c.hederaClient)
	if err != nil {
		return false, fmt.Errorf("failed to freeze associate transaction: %w", err)
	}
	frozenTransaction = frozenTransaction.Sign(parsedKey)

	response, err := frozenTransaction.Execute(c.hederaClient)
	if err != nil {
		if strings.Contains(err.Error(), alreadyAssociatedStatus) {
			return false, nil
		}
		return false, AssociationError{
			HTSError: HTSError{
				Message: fmt.Sprintf("failed to execute associate transaction: %v", err),
				Cause:   err,
			},
			AccountID: accountID,
			TokenID:   tokenID,
		}
	}
	if _, err := response.GetReceipt(c.hederaClient); err != nil {
		if strings.Contains(err.Error(), alreadyAssociatedStatus) {
			return false, nil
		}
		return false, AssociationError{
			HTSError: HTSError{
				Message: fmt.Sprintf("failed to retrieve associate receipt: %v", err),
				Cause:   err,
			},
			AccountID: accountID,
			TokenID:   tokenID,
		}
	}

	return true, nil
}

// NFTBalance snapshots an account's holdings of one token: the NFT
// count and the hbar balance.
func (c *Client) NFTBalance(ctx context.Context, accountID string, tokenID string) (BalanceSnapshot, error) {
	_ = ctx

	parsedAccountID, err := hedera.AccountIDFromString(strings.TrimSpace(accountID))
	if err != nil {
		return BalanceSnapshot{}, fmt.Errorf("invalid account ID: %w", err)
	}
	parsedTokenID, err := hedera.TokenIDFromString(strings.TrimSpace(tokenID))
	if err != nil {
		return BalanceSnapshot{}, fmt.Errorf("invalid token ID: %w", err)
	}

	balance, err := hedera.NewAccountBalanceQuery().
		SetAccountID(parsedAccountID).
		Execute(c.hederaClient)
	if err != nil {
		return BalanceSnapshot{}, BalanceQueryError{
			HTSError: HTSError{
				Message: fmt.Sprintf("failed to query account balance: %v", err),
				Cause:   err,
			},
			AccountID: accountID,
		}
	}

	return BalanceSnapshot{
		AccountID:    parsedAccountID.String(),
		TokenID:      parsedTokenID.String(),
		NFTCount:     balance.Tokens.Get(parsedTokenID),
		HbarTinybars: balance.Hbars.AsTinybar(),
	}, nil
}

// TransferNFT moves one serial from sender to receiver, signed by the
// sender's key.
func (c *Client) TransferNFT(ctx context.Context, options TransferOptions) (TransferResult, error) {
	_ = ctx

	senderKey, err := shared.ParsePrivateKey(options.SenderKey)
	if err != nil {
		return TransferResult{}, err
	}

	transaction, err := BuildNFTTransferTx(
		options.TokenID,
		options.SerialNumber,
		options.SenderAccountID,
		options.ReceiverAccountID,
		options.Memo,
	)
	if err != nil {
		return TransferResult{}, err
	}

	frozenTransaction, err := transaction.FreezeWith(c.hederaClient)
	if err != nil {
		return TransferResult{}, fmt.Errorf("failed to freeze transfer transaction: %w", err)
	}
	frozenTransaction = frozenTransaction.Sign(senderKey)

	response, err := frozenTransaction.Execute(c.hederaClient)
	if err != nil {
		return TransferResult{}, newTransferError(options, fmt.Sprintf("failed to execute transfer transaction: %v", err), err)
	}
	receipt, err := response.GetReceipt(c.hederaClient)
	if err != nil {
		return TransferResult{}, newTransferError(options, fmt.Sprintf("failed to retrieve transfer receipt: %v", err), err)
	}
	if receipt.Status.String() != "SUCCESS" {
		return TransferResult{}, newTransferError(options, fmt.Sprintf("transfer failed with status %s", receipt.Status.String()), nil)
	}

	return TransferResult{
		TokenID:           options.TokenID,
		SerialNumber:      options.SerialNumber,
		SenderAccountID:   options.SenderAccountID,
		ReceiverAccountID: options.ReceiverAccountID,
		TransactionID:     response.TransactionID.String(),
		Status:            receipt.Status.String(),
		TransferredAt:     time.Now().UTC(),
	}, nil
}

func newTransferError(options TransferOptions, message string, cause error) error {
	return TransferError{
		HTSError:     HTSError{Message: message, Cause: cause},
		TokenID:      options.TokenID,
		SerialNumber: options.SerialNumber,
		From:         options.SenderAccountID,
		To:           options.ReceiverAccountID,
	}
}

func normalizeEVMAddress(address string) string {
	if strings.HasPrefix(address, "0x") {
		return address
	}
	return "0x" + address
}
