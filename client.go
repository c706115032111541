package etherscan

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ClientConfig holds configuration for the explorer client.
type ClientConfig struct {
	// APIKey is the explorer API key. Required.
	APIKey string

	// Network selects the target chain and its base URL.
	// Defaults to Mainnet.
	Network Network

	// BaseURL overrides the network's base URL. Useful for tests and
	// self-hosted Etherscan-compatible explorers.
	BaseURL string

	// Timeout is the maximum time to wait for a single HTTP request.
	Timeout time.Duration

	// UserAgent is sent with every request.
	UserAgent string

	// RateLimitPerSec is the caller's declared request budget. It is
	// advisory only: the client records it but does not throttle.
	RateLimitPerSec int

	// Logger is the structured logger for the client.
	Logger *slog.Logger

	// HTTPClient is an optional custom HTTP client.
	HTTPClient *http.Client
}

// ClientConfigDefaults returns a config with default values.
func ClientConfigDefaults() ClientConfig {
	return ClientConfig{
		Network:         Mainnet,
		Timeout:         30 * time.Second,
		UserAgent:       "keion-etherscan/" + Version,
		RateLimitPerSec: 5, // Etherscan free tier
		Logger:          slog.Default(),
	}
}

// Client issues requests against one explorer network. All fields are
// fixed at construction, so a single client may be shared freely across
// goroutines.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	baseURL    *url.URL
	logger     *slog.Logger
}

// NewClient creates a new explorer API client.
func NewClient(config ClientConfig) (*Client, error) {
	if config.APIKey == "" {
		return nil, errConfig("APIKey is required")
	}

	defaults := ClientConfigDefaults()
	applyDefaults(&config, defaults)

	baseURL, err := url.Parse(config.BaseURL)
	if err != nil || !baseURL.IsAbs() {
		return nil, errConfig("invalid base URL %q", config.BaseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: config.Timeout,
		}
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     config.Logger.With("component", "etherscan-client"),
	}, nil
}

// New creates a client for Mainnet with default settings.
func New(apiKey string) (*Client, error) {
	return NewClient(ClientConfig{APIKey: apiKey})
}

func applyDefaults(config *ClientConfig, defaults ClientConfig) {
	if config.BaseURL == "" {
		config.BaseURL = config.Network.BaseURL()
	}
	if config.Timeout == 0 {
		config.Timeout = defaults.Timeout
	}
	if config.UserAgent == "" {
		config.UserAgent = defaults.UserAgent
	}
	if config.RateLimitPerSec == 0 {
		config.RateLimitPerSec = defaults.RateLimitPerSec
	}
	if config.Logger == nil {
		config.Logger = defaults.Logger
	}
}

// Network returns the configured network.
func (c *Client) Network() Network {
	return c.config.Network
}

// RateLimitPerSec returns the declared request budget. The client does
// not enforce it.
func (c *Client) RateLimitPerSec() int {
	return c.config.RateLimitPerSec
}

// APIKeyPreview returns a redacted form of the API key, safe to log.
func (c *Client) APIKeyPreview() string {
	key := c.config.APIKey
	if len(key) > 8 {
		return key[:4] + "..." + key[len(key)-4:]
	}
	return "****"
}

// Accounts returns the account-related endpoints.
func (c *Client) Accounts() *Accounts {
	return &Accounts{client: c}
}

// Transactions returns the transaction-related endpoints.
func (c *Client) Transactions() *Transactions {
	return &Transactions{client: c}
}

// Contracts returns the contract-related endpoints.
func (c *Client) Contracts() *Contracts {
	return &Contracts{client: c}
}

// requestURL assembles the full request URL. Parameters are written in
// a fixed order — module, action, apikey, then the endpoint's own
// params — so identical requests always serialize identically.
func (c *Client) requestURL(module, action string, params []queryParam) string {
	var b strings.Builder
	b.WriteString(c.baseURL.String())
	b.WriteByte('?')
	writePair(&b, "module", module, true)
	writePair(&b, "action", action, false)
	writePair(&b, "apikey", c.config.APIKey, false)
	for _, p := range params {
		writePair(&b, p.key, p.value, false)
	}
	return b.String()
}

func writePair(b *strings.Builder, key, value string, first bool) {
	if !first {
		b.WriteByte('&')
	}
	b.WriteString(url.QueryEscape(key))
	b.WriteByte('=')
	b.WriteString(url.QueryEscape(value))
}

// fetch performs one GET and returns the body of a 2xx response. The
// HTTP status is checked before the body is inspected: a non-2xx
// answer short-circuits regardless of body content.
func (c *Client) fetch(ctx context.Context, module, action string, params []queryParam) ([]byte, error) {
	fullURL := c.requestURL(module, action, params)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, errNetwork("creating request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		msg := "HTTP request failed"
		if errors.Is(err, context.DeadlineExceeded) {
			msg = "request timed out"
		}
		return nil, errNetwork(msg, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("failed to close response body", "error", closeErr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errNetwork("reading response body", err)
	}

	c.logger.Debug("request completed",
		"module", module,
		"action", action,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, errRateLimit("HTTP 429", parseRetryAfter(resp.Header.Get("Retry-After")))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errHTTP(resp.StatusCode, string(body))
	}

	return body, nil
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// apiGet issues one GET for the given module/action pair and unwraps
// the response into the endpoint's result type.
func apiGet[T any](ctx context.Context, c *Client, module, action string, params []queryParam) (T, error) {
	var zero T
	body, err := c.fetch(ctx, module, action, params)
	if err != nil {
		return zero, err
	}
	return unwrapResponse[T](body)
}
