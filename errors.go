package etherscan

import (
	"fmt"
	"time"
)

// ErrorKind classifies failures returned by the client.
type ErrorKind string

const (
	// KindConfig covers client-construction failures: missing API key,
	// unparsable base URL.
	KindConfig ErrorKind = "configuration"

	// KindInvalidAddress is returned for malformed account addresses.
	KindInvalidAddress ErrorKind = "invalid_address"

	// KindInvalidTxHash is returned for malformed transaction hashes.
	KindInvalidTxHash ErrorKind = "invalid_tx_hash"

	// KindInvalidParams covers parameter-count violations, such as too
	// many addresses in a multi-address lookup.
	KindInvalidParams ErrorKind = "invalid_params"

	// KindNetwork covers transport-level failures: connection errors,
	// timeouts, cancelled contexts.
	KindNetwork ErrorKind = "network"

	// KindHTTP is a non-2xx HTTP response from the server.
	KindHTTP ErrorKind = "http"

	// KindAPI is a domain-level failure: the server answered with a
	// status:"0" envelope.
	KindAPI ErrorKind = "api"

	// KindRateLimit is an API or HTTP 429 response indicating the
	// request rate was exceeded.
	KindRateLimit ErrorKind = "rate_limit"

	// KindParse means the response body did not match the expected
	// shape, which usually indicates an upstream schema change.
	KindParse ErrorKind = "parsing"
)

// Error is the error type returned by every operation in this package.
type Error struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Message is a human-readable description. For API errors it is the
	// envelope's message field, preserved verbatim.
	Message string

	// HTTPStatus is set for KindHTTP errors.
	HTTPStatus int

	// Result carries the raw result text of a status:"0" envelope, when
	// the server provided one.
	Result string

	// RetryAfter is a best-effort hint for rate-limit errors. Zero when
	// the server gave no hint.
	RetryAfter time.Duration

	cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindHTTP:
		return fmt.Sprintf("HTTP error %d: %s", e.HTTPStatus, e.Message)
	case KindAPI:
		if e.Result != "" {
			return fmt.Sprintf("API error: %s (result: %s)", e.Message, e.Result)
		}
		return fmt.Sprintf("API error: %s", e.Message)
	case KindRateLimit:
		if e.RetryAfter > 0 {
			return fmt.Sprintf("rate limit exceeded: %s (retry after %s)", e.Message, e.RetryAfter)
		}
		return fmt.Sprintf("rate limit exceeded: %s", e.Message)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Retryable reports whether retrying the request could plausibly
// succeed. The client itself never retries; this is a classification
// for callers.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindNetwork, KindRateLimit:
		return true
	case KindHTTP:
		return e.HTTPStatus >= 500
	}
	return false
}

// Category returns the coarse error family for logging and metrics:
// one of "configuration", "validation", "network", "http", "api",
// "rate_limit" or "parsing".
func (e *Error) Category() string {
	switch e.Kind {
	case KindInvalidAddress, KindInvalidTxHash, KindInvalidParams:
		return "validation"
	default:
		return string(e.Kind)
	}
}

func errConfig(format string, args ...any) *Error {
	return &Error{Kind: KindConfig, Message: fmt.Sprintf(format, args...)}
}

func errInvalidAddress(raw string) *Error {
	return &Error{Kind: KindInvalidAddress, Message: fmt.Sprintf("invalid Ethereum address: %q", raw)}
}

func errInvalidTxHash(raw string) *Error {
	return &Error{Kind: KindInvalidTxHash, Message: fmt.Sprintf("invalid transaction hash: %q", raw)}
}

func errInvalidParams(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidParams, Message: fmt.Sprintf(format, args...)}
}

func errNetwork(msg string, cause error) *Error {
	return &Error{Kind: KindNetwork, Message: msg, cause: cause}
}

func errHTTP(status int, body string) *Error {
	return &Error{Kind: KindHTTP, HTTPStatus: status, Message: body}
}

func errAPI(message, result string) *Error {
	return &Error{Kind: KindAPI, Message: message, Result: result}
}

func errRateLimit(message string, retryAfter time.Duration) *Error {
	return &Error{Kind: KindRateLimit, Message: message, RetryAfter: retryAfter}
}

func errParse(msg string, cause error) *Error {
	return &Error{Kind: KindParse, Message: msg, cause: cause}
}
