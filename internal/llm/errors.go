package llm

import (
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider rejected the call for rate or quota
// reasons (HTTP 429, RESOURCE_EXHAUSTED, insufficient_quota).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrAuth indicates missing or rejected credentials.
type ErrAuth struct {
	Err error
}

func (e *ErrAuth) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM authentication failed: %v", e.Err)
	}
	return "LLM authentication failed"
}

func (e *ErrAuth) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrAPI is a provider error response that fits no more specific class.
type ErrAPI struct {
	StatusCode int
	Err        error
}

func (e *ErrAPI) Error() string {
	return fmt.Sprintf("LLM API error (status %d): %v", e.StatusCode, e.Err)
}

func (e *ErrAPI) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the provider answered without usable text.
type ErrInvalidResponse struct {
	Err error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Text string
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// mapStatus converts an HTTP status from a provider error into the typed
// error taxonomy above.
func mapStatus(status int, err error) error {
	switch {
	case status == 401 || status == 403:
		return &ErrAuth{Err: err}
	case status == 429:
		return &ErrRateLimit{Err: err}
	case status >= 500:
		return &ErrProviderUnavailable{Err: err}
	case status > 0:
		return &ErrAPI{StatusCode: status, Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}
