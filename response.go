package etherscan

import (
	"encoding/json"
	"fmt"
	"strings"
)

// apiEnvelope is the standard response wrapper:
//
//	{"status":"1","message":"OK","result":<T>}
//
// On failure the result field is typically a plain string explaining
// the problem, so it is kept raw until the status check has passed.
type apiEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// unwrapResponse turns a response body into the endpoint's result type.
//
// Most endpoints wrap their payload in the standard envelope, but a few
// return the payload bare, so decoding is two-tier: the envelope is
// tried first and, only if the body does not have the envelope shape,
// the body is decoded directly as T. The fallback must never run for a
// well-formed envelope — a status:"0" failure whose result happens to
// decode as T has to surface as an API error, not a success.
func unwrapResponse[T any](body []byte) (T, error) {
	var zero T

	var env apiEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Status != "" {
		switch env.Status {
		case "1":
			var out T
			if err := json.Unmarshal(env.Result, &out); err != nil {
				return zero, errParse("decoding result", err)
			}
			return out, nil
		case "0":
			return zero, apiFailure(env)
		default:
			return zero, errParse(fmt.Sprintf("unknown response status %q", env.Status), nil)
		}
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return zero, errParse("decoding response", err)
	}
	return out, nil
}

// apiFailure builds the error for a status:"0" envelope, preserving the
// message and result text verbatim. Rate-limit rejections arrive
// through this path as ordinary API failures and are promoted to their
// own retryable kind.
func apiFailure(env apiEnvelope) *Error {
	var result string
	_ = json.Unmarshal(env.Result, &result)

	if isRateLimitText(env.Message) || isRateLimitText(result) {
		msg := env.Message
		if result != "" {
			msg = result
		}
		return errRateLimit(msg, 0)
	}
	return errAPI(env.Message, result)
}

func isRateLimitText(s string) bool {
	return strings.Contains(strings.ToLower(s), "rate limit")
}
