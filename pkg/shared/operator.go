package shared

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/joho/godotenv"
)

// OperatorConfig carries the credentials the demo needs to pay for and
// sign transactions: the operator account, its private key, and the
// target network.
type OperatorConfig struct {
	AccountID  string
	PrivateKey string
	Network    string
}

var dotenvLoadOnce sync.Once

// OperatorConfigFromEnv resolves operator credentials from the process
// environment, loading the nearest .env file first. Variables already
// set in the environment always win over .env contents.
func OperatorConfigFromEnv() (OperatorConfig, error) {
	loadDotEnvIfPresent()

	network := firstNonEmptyEnv("HEDERA_NETWORK", "NETWORK")
	if network == "" {
		network = NetworkTestnet
	}

	accountID := firstNonEmptyEnv("HEDERA_ACCOUNT_ID", "HEDERA_OPERATOR_ID", "ACCOUNT_ID", "OPERATOR_ID")
	privateKey := firstNonEmptyEnv("HEDERA_PRIVATE_KEY", "HEDERA_OPERATOR_KEY", "PRIVATE_KEY", "OPERATOR_KEY")

	// Network-scoped overrides let one .env hold credentials for both
	// networks at the same time.
	prefix := strings.ToUpper(strings.TrimSpace(network)) + "_"
	if scopedAccount := firstNonEmptyEnv(
		prefix+"HEDERA_ACCOUNT_ID",
		prefix+"HEDERA_OPERATOR_ID",
		prefix+"OPERATOR_ID",
	); scopedAccount != "" {
		accountID = scopedAccount
	}
	if scopedKey := firstNonEmptyEnv(
		prefix+"HEDERA_PRIVATE_KEY",
		prefix+"HEDERA_OPERATOR_KEY",
		prefix+"OPERATOR_KEY",
	); scopedKey != "" {
		privateKey = scopedKey
	}

	if accountID == "" {
		return OperatorConfig{}, fmt.Errorf("HEDERA_ACCOUNT_ID is required")
	}
	if privateKey == "" {
		return OperatorConfig{}, fmt.Errorf("HEDERA_PRIVATE_KEY is required")
	}

	return OperatorConfig{
		AccountID:  accountID,
		PrivateKey: privateKey,
		Network:    network,
	}, nil
}

func loadDotEnvIfPresent() {
	dotenvLoadOnce.Do(func() {
		current, err := os.Getwd()
		if err != nil {
			return
		}
		for {
			candidate := filepath.Join(current, ".env")
			if _, statErr := os.Stat(candidate); statErr == nil {
				_ = godotenv.Load(candidate)
				return
			}

			parent := filepath.Dir(current)
			if parent == current {
				return
			}
			current = parent
		}
	})
}

func firstNonEmptyEnv(keys ...string) string {
	for _, key := range keys {
		value := strings.TrimSpace(os.Getenv(key))
		if value != "" {
			return value
		}
	}
	return ""
}

// ParsePrivateKey accepts an Ed25519, ECDSA, or DER-encoded private key
// string and returns the parsed key.
func ParsePrivateKey(raw string) (hedera.PrivateKey, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return hedera.PrivateKey{}, fmt.Errorf("private key cannot be empty")
	}

	ed25519Key, edErr := hedera.PrivateKeyFromStringEd25519(candidate)
	if edErr == nil {
		return ed25519Key, nil
	}

	ecdsaKey, ecdsaErr := hedera.PrivateKeyFromStringECDSA(candidate)
	if ecdsaErr == nil {
		return ecdsaKey, nil
	}

	genericKey, genericErr := hedera.PrivateKeyFromString(candidate)
	if genericErr == nil {
		return genericKey, nil
	}

	return hedera.PrivateKey{}, fmt.Errorf(
		"failed to parse private key as ED25519 (%v), ECDSA (%v), or generic (%v)",
		edErr,
		ecdsaErr,
		genericErr,
	)
}
