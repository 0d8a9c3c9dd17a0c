package mirror

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashgraph-online/nft-demo-go/pkg/shared"
	"github.com/shopspring/decimal"
)

type Config struct {
	Network    string
	BaseURL    string
	HTTPClient *http.Client
	APIKey     string
	Headers    map[string]string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	headers    map[string]string
}

// NewClient creates a read-only mirror node client for the given
// network, defaulting the base URL when none is supplied.
func NewClient(config Config) (*Client, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		switch network {
		case shared.NetworkMainnet:
			baseURL = "https://mainnet-public.mirrornode.hedera.com"
		case shared.NetworkPreviewnet:
			baseURL = "https://previewnet.mirrornode.hedera.com"
		default:
			baseURL = "https://testnet.mirrornode.hedera.com"
		}
	}
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mirror base URL: %w", err)
	}
	if parsedBaseURL.Scheme != "http" && parsedBaseURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid mirror base URL: scheme must be http or https")
	}
	if strings.TrimSpace(parsedBaseURL.Host) == "" {
		return nil, fmt.Errorf("invalid mirror base URL: host is required")
	}
	baseURL = strings.TrimRight(parsedBaseURL.String(), "/")

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	headers := map[string]string{}
	for key, value := range config.Headers {
		headers[key] = value
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		apiKey:     strings.TrimSpace(config.APIKey),
		headers:    headers,
	}, nil
}

// BaseURL returns the resolved mirror node base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetAccount returns the mirror node record for an account.
func (c *Client) GetAccount(ctx context.Context, accountID string) (AccountInfo, error) {
	var accountInfo AccountInfo
	normalized := strings.TrimSpace(accountID)
	if normalized == "" {
		return accountInfo, fmt.Errorf("account ID is required")
	}

	path := fmt.Sprintf("/api/v1/accounts/%s", normalized)
	if err := c.getJSON(ctx, path, &accountInfo); err != nil {
		return accountInfo, err
	}

	return accountInfo, nil
}

// GetAccountBalance returns the account's hbar balance in tinybars plus
// its token holdings.
func (c *Client) GetAccountBalance(ctx context.Context, accountID string) (BalanceInfo, error) {
	accountInfo, err := c.GetAccount(ctx, accountID)
	if err != nil {
		return BalanceInfo{}, err
	}
	return accountInfo.Balance, nil
}

// GetToken returns the mirror node record for a token.
func (c *Client) GetToken(ctx context.Context, tokenID string) (TokenInfo, error) {
	var tokenInfo TokenInfo
	normalized := strings.TrimSpace(tokenID)
	if normalized == "" {
		return tokenInfo, fmt.Errorf("token ID is required")
	}

	path := fmt.Sprintf("/api/v1/tokens/%s", normalized)
	if err := c.getJSON(ctx, path, &tokenInfo); err != nil {
		return tokenInfo, err
	}

	return tokenInfo, nil
}

// GetNFT returns the mirror node record for one serial of a token,
// including its current owner account.
func (c *Client) GetNFT(ctx context.Context, tokenID string, serial int64) (NFTInfo, error) {
	var nftInfo NFTInfo
	normalized := strings.TrimSpace(tokenID)
	if normalized == "" {
		return nftInfo, fmt.Errorf("token ID is required")
	}
	if serial <= 0 {
		return nftInfo, fmt.Errorf("serial must be positive")
	}

	path := fmt.Sprintf("/api/v1/tokens/%s/nfts/%d", normalized, serial)
	if err := c.getJSON(ctx, path, &nftInfo); err != nil {
		return nftInfo, err
	}

	return nftInfo, nil
}

// GetAccountNFTs lists the NFTs an account holds, optionally filtered
// to one token, following pagination links until exhausted.
func (c *Client) GetAccountNFTs(ctx context.Context, accountID string, tokenID string) ([]NFTInfo, error) {
	normalizedAccount := strings.TrimSpace(accountID)
	if normalizedAccount == "" {
		return nil, fmt.Errorf("account ID is required")
	}

	values := url.Values{}
	if trimmedToken := strings.TrimSpace(tokenID); trimmedToken != "" {
		values.Set("token.id", trimmedToken)
	}

	endpoint := fmt.Sprintf("/api/v1/accounts/%s/nfts", normalizedAccount)
	if encoded := values.Encode(); encoded != "" {
		endpoint = fmt.Sprintf("%s?%s", endpoint, encoded)
	}

	result := make([]NFTInfo, 0)
	next := endpoint

	for next != "" {
		var page nftListResponse
		if err := c.getJSON(ctx, next, &page); err != nil {
			return nil, err
		}

		result = append(result, page.NFTs...)
		next = page.Links.Next
	}

	return result, nil
}

// DecodeNFTMetadata decodes the base64 metadata payload of an NFT
// record into its original bytes.
func DecodeNFTMetadata(nftInfo NFTInfo) ([]byte, error) {
	if strings.TrimSpace(nftInfo.Metadata) == "" {
		return nil, fmt.Errorf("nft metadata is empty")
	}
	return base64.StdEncoding.DecodeString(nftInfo.Metadata)
}

// FormatHbar renders a tinybar amount as an hbar decimal string,
// trimming trailing zeros. One hbar is 100,000,000 tinybars.
func FormatHbar(tinybars int64) string {
	return decimal.New(tinybars, -8).String()
}

func (c *Client) getJSON(ctx context.Context, pathOrURL string, target any) error {
	requestURL := c.resolveURL(pathOrURL)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	request.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}
	for key, value := range c.headers {
		request.Header.Set(key, value)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("mirror node request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("failed to read mirror node response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf(
			"mirror node request failed with status %d: %s",
			response.StatusCode,
			strings.TrimSpace(string(body)),
		)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode mirror node response: %w", err)
	}

	return nil
}

func (c *Client) resolveURL(pathOrURL string) string {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL
	}

	path := pathOrURL
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return c.baseURL + path
}
