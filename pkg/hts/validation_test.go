package hts

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeCID(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG", "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"},
		{"ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG", "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"},
		{"  bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi  ", "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi"},
	}

	for _, tc := range cases {
		if got := NormalizeCID(tc.input); got != tc.expected {
			t.Fatalf("NormalizeCID(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}

func TestValidateCID(t *testing.T) {
	valid := []string{
		"QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
		"ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
		"bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi",
		"bafkreidgvpkjawlxz6sffxzwgooowe5yt7i6wsyg236mfoks77nywkptdq",
	}
	for _, cid := range valid {
		if err := ValidateCID(cid); err != nil {
			t.Fatalf("expected %q to validate: %v", cid, err)
		}
	}

	invalid := []string{
		"",
		"   ",
		"has a space",
		"zz-unknown-prefix",
		"bafy" + strings.Repeat("a", MaxMetadataBytes),
	}
	for _, cid := range invalid {
		if err := ValidateCID(cid); err == nil {
			t.Fatalf("expected %q to be rejected", cid)
		}
	}
}

func TestValidateCIDReturnsValidationError(t *testing.T) {
	err := ValidateCID("")
	var validationErr ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if validationErr.Field != "cid" {
		t.Fatalf("unexpected field: %s", validationErr.Field)
	}
}

func TestMetadataForCID(t *testing.T) {
	metadata := MetadataForCID("ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG")
	if string(metadata) != "ipfs://QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG" {
		t.Fatalf("unexpected metadata: %s", metadata)
	}
}

func TestValidateCollectionParams(t *testing.T) {
	base := CollectionCreateOptions{
		Name:      "Demo Gallery",
		Symbol:    "DGAL",
		MaxSupply: 250,
	}
	if err := ValidateCollectionParams(base, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tooSmall := base
	tooSmall.MaxSupply = 3
	if err := ValidateCollectionParams(tooSmall, 5); err == nil {
		t.Fatal("expected error when max supply cannot hold the mints")
	}

	longSymbol := base
	longSymbol.Symbol = "TOOLONGSYMBOL"
	if err := ValidateCollectionParams(longSymbol, 0); err == nil {
		t.Fatal("expected error for overlong symbol")
	}
}
