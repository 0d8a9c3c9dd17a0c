// Package hts wraps the Hedera Token Service operations the NFT demo
// needs: account creation, non-fungible collection creation, minting
// from IPFS content identifiers, token association, balance snapshots,
// and serial transfers.
//
// The package separates offline transaction builders (tx.go) from the
// client that executes them, so request shaping is testable without a
// network. Every client method follows the same shape: build the
// transaction, execute it, await the receipt, and reshape the receipt
// fields into a plain record. There are no retries and no local state;
// uniqueness, ordering, and supply limits are the ledger's concern.
package hts
