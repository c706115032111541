package etherscan

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		_, err := NewClient(ClientConfig{})
		if err == nil {
			t.Fatal("NewClient succeeded without API key")
		}
		var apiErr *Error
		if !asError(err, &apiErr) || apiErr.Kind != KindConfig {
			t.Errorf("error = %v, want config error", err)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		client, err := New("test-key")
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if client.Network() != Mainnet {
			t.Errorf("network = %v, want Mainnet", client.Network())
		}
		if client.RateLimitPerSec() != 5 {
			t.Errorf("rate limit = %d, want 5", client.RateLimitPerSec())
		}
	})

	t.Run("invalid base URL", func(t *testing.T) {
		_, err := NewClient(ClientConfig{APIKey: "k", BaseURL: "not a url"})
		if err == nil {
			t.Fatal("NewClient accepted relative base URL")
		}
	})

	t.Run("network selects base URL", func(t *testing.T) {
		client, err := NewClient(ClientConfig{APIKey: "k", Network: Polygon})
		if err != nil {
			t.Fatalf("NewClient: %v", err)
		}
		if client.baseURL.String() != Polygon.BaseURL() {
			t.Errorf("baseURL = %q, want %q", client.baseURL, Polygon.BaseURL())
		}
	})
}

func TestAPIKeyPreview(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"ABCDEFGH12345678", "ABCD...5678"},
		{"short", "****"},
		{"12345678", "****"},
	}
	for _, tt := range tests {
		client, err := New(tt.key)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if got := client.APIKeyPreview(); got != tt.want {
			t.Errorf("APIKeyPreview(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestRequestURLOrder(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(okEnvelope(`"0"`)))
	})

	_, err := client.Accounts().Balance(context.Background(), "0x742d35cc6634c0532925a3b844bc9e7595f0beb1")
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}

	want := "module=account&action=balance&apikey=test-key&address=0x742d35cc6634c0532925a3b844bc9e7595f0beb1&tag=latest"
	if gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
}

func TestRequestURLEscaping(t *testing.T) {
	client, err := NewClient(ClientConfig{APIKey: "key with space", BaseURL: "https://example.test/api"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	raw := client.requestURL("account", "balance", []queryParam{{"address", "0xabc"}})
	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("request URL does not parse: %v", err)
	}
	if parsed.Query().Get("apikey") != "key with space" {
		t.Errorf("apikey round-trip = %q", parsed.Query().Get("apikey"))
	}
}

func TestFetchHTTPErrors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "internal error", http.StatusInternalServerError)
		})
		_, err := client.Accounts().Balance(context.Background(), "0x742d35cc6634c0532925a3b844bc9e7595f0beb1")
		var apiErr *Error
		if !asError(err, &apiErr) || apiErr.Kind != KindHTTP {
			t.Fatalf("error = %v, want HTTP error", err)
		}
		if apiErr.HTTPStatus != 500 {
			t.Errorf("status = %d, want 500", apiErr.HTTPStatus)
		}
		if !apiErr.Retryable() {
			t.Error("500 not classified retryable")
		}
	})

	t.Run("429 with Retry-After", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", "3")
			w.WriteHeader(http.StatusTooManyRequests)
		})
		_, err := client.Accounts().Balance(context.Background(), "0x742d35cc6634c0532925a3b844bc9e7595f0beb1")
		var apiErr *Error
		if !asError(err, &apiErr) || apiErr.Kind != KindRateLimit {
			t.Fatalf("error = %v, want rate-limit error", err)
		}
		if apiErr.RetryAfter != 3*time.Second {
			t.Errorf("RetryAfter = %v, want 3s", apiErr.RetryAfter)
		}
	})

	t.Run("status checked before body", func(t *testing.T) {
		// A 503 whose body is a well-formed success envelope must still
		// fail with an HTTP error.
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(okEnvelope(`"1"`)))
		})
		_, err := client.Accounts().Balance(context.Background(), "0x742d35cc6634c0532925a3b844bc9e7595f0beb1")
		var apiErr *Error
		if !asError(err, &apiErr) || apiErr.Kind != KindHTTP {
			t.Fatalf("error = %v, want HTTP error", err)
		}
	})
}

func TestFetchContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Accounts().Balance(ctx, "0x742d35cc6634c0532925a3b844bc9e7595f0beb1")
	var apiErr *Error
	if !asError(err, &apiErr) || apiErr.Kind != KindNetwork {
		t.Fatalf("error = %v, want network error", err)
	}
	if !apiErr.Retryable() {
		t.Error("network error not classified retryable")
	}
}

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		header string
		want   time.Duration
	}{
		{"", 0},
		{"5", 5 * time.Second},
		{"0", 0},
		{"-1", 0},
		{"soon", 0},
	}
	for _, tt := range tests {
		if got := parseRetryAfter(tt.header); got != tt.want {
			t.Errorf("parseRetryAfter(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}
