package etherscan

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func asError(err error, target **Error) bool {
	return errors.As(err, target)
}

// newTestClient returns a client pointed at an httptest server serving
// the given handler, plus the server for URL inspection.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, server
}

// countingTransport counts round trips. Used to assert that validation
// failures never reach the network.
type countingTransport struct {
	calls int64
	next  http.RoundTripper
}

func (c *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	atomic.AddInt64(&c.calls, 1)
	return c.next.RoundTrip(req)
}

func (c *countingTransport) count() int64 {
	return atomic.LoadInt64(&c.calls)
}

// newCountingClient returns a client whose transport counts requests
// before forwarding them to the httptest server.
func newCountingClient(t *testing.T, handler http.HandlerFunc) (*Client, *countingTransport) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	transport := &countingTransport{next: http.DefaultTransport}
	client, err := NewClient(ClientConfig{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: &http.Client{Transport: transport},
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, transport
}

func okEnvelope(result string) string {
	return `{"status":"1","message":"OK","result":` + result + `}`
}
