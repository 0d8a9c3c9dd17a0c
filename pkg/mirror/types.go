package mirror

// AccountInfo is the mirror node's view of an account.
type AccountInfo struct {
	Account    string         `json:"account"`
	Balance    BalanceInfo    `json:"balance"`
	Key        map[string]any `json:"key"`
	Memo       string         `json:"memo"`
	EVMAddress string         `json:"evm_address"`
	Deleted    bool           `json:"deleted"`
}

// BalanceInfo carries the hbar balance in tinybars plus per-token
// holdings at the snapshot timestamp.
type BalanceInfo struct {
	Balance   int64          `json:"balance"`
	Timestamp string         `json:"timestamp"`
	Tokens    []TokenBalance `json:"tokens"`
}

type TokenBalance struct {
	TokenID string `json:"token_id"`
	Balance int64  `json:"balance"`
}

// TokenInfo is the mirror node's view of a token. Numeric supply fields
// arrive as decimal strings.
type TokenInfo struct {
	TokenID           string         `json:"token_id"`
	Name              string         `json:"name"`
	Symbol            string         `json:"symbol"`
	Decimals          string         `json:"decimals"`
	TotalSupply       string         `json:"total_supply"`
	MaxSupply         string         `json:"max_supply"`
	SupplyType        string         `json:"supply_type"`
	Type              string         `json:"type"`
	TreasuryAccountID string         `json:"treasury_account_id"`
	Memo              string         `json:"memo"`
	SupplyKey         map[string]any `json:"supply_key"`
	AdminKey          map[string]any `json:"admin_key"`
	Deleted           bool           `json:"deleted"`
	CreatedTimestamp  string         `json:"created_timestamp"`
}

// NFTInfo describes a single serial of a non-fungible token. Metadata
// is base64 as delivered by the mirror node.
type NFTInfo struct {
	AccountID        string `json:"account_id"`
	CreatedTimestamp string `json:"created_timestamp"`
	Deleted          bool   `json:"deleted"`
	Metadata         string `json:"metadata"`
	SerialNumber     int64  `json:"serial_number"`
	TokenID          string `json:"token_id"`
}

type nftListResponse struct {
	NFTs  []NFTInfo `json:"nfts"`
	Links struct {
		Next string `json:"next"`
	} `json:"links"`
}
