package main

// Collection metadata and the off-chain content identifiers to mint,
// one NFT per CID.
const (
	collectionName   = "Hedera NFT Demo Gallery"
	collectionSymbol = "HNDG"
	collectionMemo   = "nft-demo-go collection"
	maxSupply        = 250
)

var collectionCIDs = []string{
	"QmNPCiNA3Dsu3K5FxUKzT5tdp1PH1vXyWXFGhNfkFQMcLJ",
	"QmZ4dc6j6DpZ8s1YSPpbGnNnTyGYMK3rCPMAcAyBEkXmCn",
	"QmQqzMTavQgT4f4T5v6PWBp7XNKtoPmC9jvn12WPT3gkSE",
	"QmdzLvk1s1yF8mHK5YhMW5YZ6YSBvDTv914rCeq6YYtZen",
	"Qma8yRAu5LN79mP4KzV5wveBcVXPLh9HD7z6ZDBK85ohDd",
}
