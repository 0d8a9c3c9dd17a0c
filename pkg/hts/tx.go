package hts

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// AccountCreateTxParams configures an offline account creation
// transaction build.
type AccountCreateTxParams struct {
	PublicKey                     hedera.PublicKey
	InitialBalanceHbar            float64
	AccountMemo                   string
	TransactionMemo               string
	MaxAutomaticTokenAssociations *int32
}

// BuildAccountCreateTx builds the account creation transaction without
// executing it.
func BuildAccountCreateTx(params AccountCreateTxParams) (*hedera.AccountCreateTransaction, error) {
	if params.PublicKey.String() == "" {
		return nil, fmt.Errorf("public key is required")
	}

	initialBalance := params.InitialBalanceHbar
	if initialBalance <= 0 {
		initialBalance = DefaultInitialBalanceHbar
	}

	transaction := hedera.NewAccountCreateTransaction().
		SetKey(params.PublicKey).
		SetInitialBalance(hedera.NewHbar(initialBalance))

	if params.MaxAutomaticTokenAssociations != nil {
		transaction.SetMaxAutomaticTokenAssociations(*params.MaxAutomaticTokenAssociations)
	}
	if strings.TrimSpace(params.AccountMemo) != "" {
		transaction.SetAccountMemo(strings.TrimSpace(params.AccountMemo))
	}
	if strings.TrimSpace(params.TransactionMemo) != "" {
		transaction.SetTransactionMemo(strings.TrimSpace(params.TransactionMemo))
	}

	return transaction, nil
}

// CollectionCreateTxParams configures an offline collection creation
// transaction build.
type CollectionCreateTxParams struct {
	Name              string
	Symbol            string
	MaxSupply         int64
	TokenMemo         string
	TreasuryAccountID hedera.AccountID
	SupplyKey         hedera.PublicKey
	AdminKey          *hedera.PublicKey
}

// BuildCollectionCreateTx builds a non-fungible unique token creation
// transaction with a finite supply and zero decimals.
func BuildCollectionCreateTx(params CollectionCreateTxParams) (*hedera.TokenCreateTransaction, error) {
	if err := ValidateCollectionParams(CollectionCreateOptions{
		Name:      params.Name,
		Symbol:    params.Symbol,
		MaxSupply: params.MaxSupply,
	}, 0); err != nil {
		return nil, err
	}

	transaction := hedera.NewTokenCreateTransaction().
		SetTokenName(strings.TrimSpace(params.Name)).
		SetTokenSymbol(strings.TrimSpace(params.Symbol)).
		SetTokenType(hedera.TokenTypeNonFungibleUnique).
		SetSupplyType(hedera.TokenSupplyTypeFinite).
		SetMaxSupply(params.MaxSupply).
		SetInitialSupply(0).
		SetDecimals(0).
		SetTreasuryAccountID(params.TreasuryAccountID).
		SetSupplyKey(params.SupplyKey)

	if params.AdminKey != nil {
		transaction.SetAdminKey(*params.AdminKey)
	}
	if strings.TrimSpace(params.TokenMemo) != "" {
		transaction.SetTokenMemo(strings.TrimSpace(params.TokenMemo))
	}

	return transaction, nil
}

// BuildMintTx builds one mint transaction for a batch of CIDs. The
// batch must fit the ledger's per-transaction metadata cap.
func BuildMintTx(tokenID string, cids []string, transactionMemo string) (*hedera.TokenMintTransaction, error) {
	trimmedTokenID := strings.TrimSpace(tokenID)
	if trimmedTokenID == "" {
		return nil, fmt.Errorf("token ID is required")
	}
	parsedTokenID, err := hedera.TokenIDFromString(trimmedTokenID)
	if err != nil {
		return nil, fmt.Errorf("invalid token ID: %w", err)
	}
	if len(cids) == 0 {
		return nil, fmt.Errorf("at least one cid is required")
	}
	if len(cids) > MaxMintBatchSize {
		return nil, fmt.Errorf("mint batch of %d exceeds the cap of %d", len(cids), MaxMintBatchSize)
	}

	metadata := make([][]byte, 0, len(cids))
	for _, cid := range cids {
		if err := ValidateCID(cid); err != nil {
			return nil, err
		}
		metadata = append(metadata, MetadataForCID(cid))
	}

	transaction := hedera.NewTokenMintTransaction().
		SetTokenID(parsedTokenID).
		SetMetadatas(metadata)

	if strings.TrimSpace(transactionMemo) != "" {
		transaction.SetTransactionMemo(transactionMemo)
	}

	return transaction, nil
}

// BuildAssociateTx builds a token association transaction for one
// account and one or more tokens.
func BuildAssociateTx(accountID string, tokenIDs ...string) (*hedera.TokenAssociateTransaction, error) {
	parsedAccountID, err := hedera.AccountIDFromString(strings.TrimSpace(accountID))
	if err != nil {
		return nil, fmt.Errorf("invalid account ID: %w", err)
	}
	if len(tokenIDs) == 0 {
		return nil, fmt.Errorf("at least one token ID is required")
	}

	parsedTokenIDs := make([]hedera.TokenID, 0, len(tokenIDs))
	for _, tokenID := range tokenIDs {
		parsedTokenID, parseErr := hedera.TokenIDFromString(strings.TrimSpace(tokenID))
		if parseErr != nil {
			return nil, fmt.Errorf("invalid token ID %q: %w", tokenID, parseErr)
		}
		parsedTokenIDs = append(parsedTokenIDs, parsedTokenID)
	}

	transaction := hedera.NewTokenAssociateTransaction().
		SetAccountID(parsedAccountID).
		SetTokenIDs(parsedTokenIDs...)

	return transaction, nil
}

// BuildNFTTransferTx builds a transfer of one serial between two
// accounts.
func BuildNFTTransferTx(
	tokenID string,
	serial int64,
	senderAccountID string,
	receiverAccountID string,
	transactionMemo string,
) (*hedera.TransferTransaction, error) {
	parsedTokenID, err := hedera.TokenIDFromString(strings.TrimSpace(tokenID))
	if err != nil {
		return nil, fmt.Errorf("invalid token ID: %w", err)
	}
	if serial <= 0 {
		return nil, fmt.Errorf("serial must be positive")
	}
	sender, err := hedera.AccountIDFromString(strings.TrimSpace(senderAccountID))
	if err != nil {
		return nil, fmt.Errorf("invalid sender account ID: %w", err)
	}
	receiver, err := hedera.AccountIDFromString(strings.TrimSpace(receiverAccountID))
	if err != nil {
		return nil, fmt.Errorf("invalid receiver account ID: %w", err)
	}
	if sender.String() == receiver.String() {
		return nil, fmt.Errorf("sender and receiver must differ")
	}

	transaction := hedera.NewTransferTransaction().
		AddNftTransfer(parsedTokenID.Nft(serial), sender, receiver)

	if strings.TrimSpace(transactionMemo) != "" {
		transaction.SetTransactionMemo(transactionMemo)
	}

	return transaction, nil
}
