package hts

import (
	"time"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

const (
	// MaxMetadataBytes is the ledger's per-NFT metadata cap.
	MaxMetadataBytes = 100

	// MaxMintBatchSize is the ledger's per-transaction metadata cap for
	// a token mint.
	MaxMintBatchSize = 10

	// DefaultInitialBalanceHbar funds newly created demo accounts.
	DefaultInitialBalanceHbar = 10
)

type ClientConfig struct {
	OperatorAccountID  string
	OperatorPrivateKey string
	Network            string
	MirrorBaseURL      string
	MirrorAPIKey       string
}

type AccountCreateOptions struct {
	InitialBalanceHbar            float64
	AccountMemo                   string
	TransactionMemo               string
	MaxAutomaticTokenAssociations *int32
}

// AccountRecord is the reshaped result of an account creation: the new
// identifier plus the generated key pair.
type AccountRecord struct {
	AccountID          string
	PrivateKey         hedera.PrivateKey
	PrivateKeyRaw      string
	PublicKey          hedera.PublicKey
	EVMAddress         string
	InitialBalanceHbar float64
	Status             string
	CreatedAt          time.Time
}

type CollectionCreateOptions struct {
	Name              string
	Symbol            string
	MaxSupply         int64
	TokenMemo         string
	TreasuryAccountID string
	TreasuryKey       string
	SupplyKey         string
	AdminKey          string
}

// TokenRecord is the reshaped view of an NFT collection, populated from
// the creation receipt and enriched by a token info query.
type TokenRecord struct {
	TokenID           string
	Name              string
	Symbol            string
	MaxSupply         int64
	TotalSupply       uint64
	TreasuryAccountID string
	SupplyKey         string
	Status            string
	CreatedAt         time.Time
}

type MintOptions struct {
	TokenID   string
	CIDs      []string
	SupplyKey string
	Memo      string
}

// MintResult accumulates ledger-assigned serial numbers in mint order.
type MintResult struct {
	TokenID       string
	SerialNumbers []int64
	Metadata      []string
	TransactionID string
	Status        string
	MintedAt      time.Time
}

type TransferOptions struct {
	TokenID           string
	SerialNumber      int64
	SenderAccountID   string
	SenderKey         string
	ReceiverAccountID string
	ReceiverKey       string
	Memo              string
}

type TransferResult struct {
	TokenID           string
	SerialNumber      int64
	SenderAccountID   string
	ReceiverAccountID string
	TransactionID     string
	Status            string
	AlreadyAssociated bool
	TransferredAt     time.Time
}

// BalanceSnapshot captures one account's holdings of one token at a
// point in time.
type BalanceSnapshot struct {
	AccountID    string
	TokenID      string
	NFTCount     uint64
	HbarTinybars int64
}
