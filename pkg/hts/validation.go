package hts

import (
	"fmt"
	"strings"
)

const ipfsScheme = "ipfs://"

// NormalizeCID trims whitespace and strips an ipfs:// scheme prefix,
// returning the bare content identifier.
func NormalizeCID(cid string) string {
	trimmed := strings.TrimSpace(cid)
	return strings.TrimPrefix(trimmed, ipfsScheme)
}

// ValidateCID checks that a content identifier is plausible mint
// metadata: non-empty, no whitespace, a known multibase prefix, and
// within the ledger's metadata byte cap once prefixed with ipfs://.
func ValidateCID(cid string) error {
	normalized := NormalizeCID(cid)
	if normalized == "" {
		return newValidationError("cid", "cid cannot be empty")
	}
	if strings.ContainsAny(normalized, " \t\n\r") {
		return newValidationError("cid", fmt.Sprintf("cid %q contains whitespace", cid))
	}
	if !strings.HasPrefix(normalized, "Qm") &&
		!strings.HasPrefix(normalized, "bafy") &&
		!strings.HasPrefix(normalized, "bafk") {
		return newValidationError("cid", fmt.Sprintf("cid %q has an unrecognized prefix", cid))
	}
	if len(MetadataForCID(normalized)) > MaxMetadataBytes {
		return newValidationError("cid", fmt.Sprintf("cid %q exceeds the %d-byte metadata cap", cid, MaxMetadataBytes))
	}
	return nil
}

// MetadataForCID renders a CID as the on-ledger metadata payload.
func MetadataForCID(cid string) []byte {
	return []byte(ipfsScheme + NormalizeCID(cid))
}

// ValidateCollectionParams checks the collection configuration before
// any transaction is built. mintCount is the number of NFTs the caller
// intends to mint immediately; zero skips the supply comparison.
func ValidateCollectionParams(options CollectionCreateOptions, mintCount int) error {
	if strings.TrimSpace(options.Name) == "" {
		return newValidationError("name", "collection name is required")
	}
	if strings.TrimSpace(options.Symbol) == "" {
		return newValidationError("symbol", "collection symbol is required")
	}
	if len(options.Symbol) > 10 {
		return newValidationError("symbol", "collection symbol must be at most 10 characters")
	}
	if options.Symbol != strings.ToUpper(options.Symbol) {
		return newValidationError("symbol", "collection symbol must be uppercase")
	}
	if options.MaxSupply <= 0 {
		return newValidationError("maxSupply", "max supply must be positive")
	}
	if mintCount > 0 && options.MaxSupply < int64(mintCount) {
		return newValidationError("maxSupply", fmt.Sprintf(
			"max supply %d cannot hold %d minted serials",
			options.MaxSupply,
			mintCount,
		))
	}
	return nil
}
