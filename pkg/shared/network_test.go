package shared

import (
	"testing"
)

func TestNormalizeNetwork(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"mainnet", NetworkMainnet},
		{"testnet", NetworkTestnet},
		{"previewnet", NetworkPreviewnet},
		{"MAINNET", NetworkMainnet},
		{"Testnet", NetworkTestnet},
		{"  mainnet  ", NetworkMainnet},
		{"", NetworkTestnet},
		{"   ", NetworkTestnet},
	}

	for _, tc := range cases {
		result, err := NormalizeNetwork(tc.input)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.input, err)
		}
		if result != tc.expected {
			t.Fatalf("expected %q for input %q, got %q", tc.expected, tc.input, result)
		}
	}
}

func TestNormalizeNetworkUnsupported(t *testing.T) {
	_, err := NormalizeNetwork("devnet")
	if err == nil {
		t.Fatal("expected error for unsupported network")
	}
}

func TestNewHederaClient(t *testing.T) {
	for _, network := range []string{NetworkMainnet, NetworkTestnet, NetworkPreviewnet} {
		client, err := NewHederaClient(network)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", network, err)
		}
		if client == nil {
			t.Fatalf("expected non-nil client for %q", network)
		}
	}
}

func TestNewHederaClientUnsupported(t *testing.T) {
	_, err := NewHederaClient("badnet")
	if err == nil {
		t.Fatal("expected error for unsupported network")
	}
}
