package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rsarma/maestro/internal/store"
)

// loggingProvider records every request as an event row. Logging
// failures are reported to stderr, never to the caller.
type loggingProvider struct {
	inner Provider
	repo  store.EventRepo
}

// WithLogging wraps p with event logging.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &loggingProvider{inner: p, repo: repo}
}

func (l *loggingProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Complete(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	if logErr := l.repo.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}

	return resp, err
}

func (l *loggingProvider) ModelID() string {
	return l.inner.ModelID()
}
