package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// The typed failure taxonomy. Each type drives a different decision in
// the retry middleware: rate limits wait out the server hint,
// unavailability retries with backoff, an invalid response gets one
// more attempt, and token truncation fails immediately.

// ErrRateLimit indicates the provider returned a rate limit error
// (429). RetryAfter carries the server's wait hint when it sent one.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the model returned content that does
// not parse or does not conform to the requested schema. Content holds
// the offending payload for diagnostics.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or
// unreachable, including unclassified transport failures.
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

// ErrMaxTokensExceeded indicates the response was truncated at the
// MaxTokens limit. Truncated output is discarded: a partial suggestion
// batch cannot validate, so keeping it would only mislead diagnostics.
type ErrMaxTokensExceeded struct{}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}
