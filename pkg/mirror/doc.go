// Package mirror is a read-only client for the Hedera mirror node REST
// API. The demo uses it to verify ledger state after consensus: token
// records, NFT ownership by serial, and account balances.
package mirror
