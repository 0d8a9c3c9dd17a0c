// nft-demo-go is a small end-to-end demonstration of the Hedera Token
// Service NFT lifecycle in Go: it creates two accounts, deploys a
// non-fungible token collection, mints one NFT per IPFS content
// identifier from a fixed list, and transfers a serial between the
// accounts with before/after balance checks.
//
// The runnable demo lives in cmd/nft-demo. The reusable pieces are:
//
//   - pkg/hts: the token service client with one method per ledger
//     operation plus offline transaction builders
//   - pkg/mirror: a read-only mirror node REST client used to verify
//     ledger state after consensus
//   - pkg/shared: operator credential loading and Hedera client
//     construction
//
// All transaction construction, signing, fee handling, and receipt
// polling is delegated to github.com/hashgraph/hedera-sdk-go/v2; this
// module only assembles requests, sequences the calls, and reshapes
// receipts into plain records.
//
// # Installation
//
//	go get github.com/hashgraph-online/nft-demo-go@latest
package nftdemo
