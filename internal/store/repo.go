package store

import (
	"context"
	"time"

	"github.com/rsarma/maestro/internal/progression"
)

// ProgressRepo persists curriculum progress records.
type ProgressRepo interface {
	// SaveAll replaces the stored records with the given set atomically.
	SaveAll(ctx context.Context, records []progression.Record) error

	// Load returns all stored progress records.
	Load(ctx context.Context) ([]progression.Record, error)

	// Clear deletes all stored progress records.
	Clear(ctx context.Context) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored LLM request event row.
type LLMRequestEvent struct {
	ID        int64
	CreatedAt time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token usage for one purpose.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentLLMRequests returns the most recent events, newest first.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error)

	// UsageByPurpose aggregates calls, tokens and latency per purpose.
	UsageByPurpose(ctx context.Context) ([]LLMUsage, error)
}

// AchievementRow is a persisted unlocked achievement.
type AchievementRow struct {
	ID          string
	Title       string
	Description string
	UnlockedAt  time.Time
}

// AchievementRepo persists unlocked achievements.
type AchievementRepo interface {
	// Save stores an unlocked achievement. Saving an already stored
	// achievement is a no-op.
	Save(ctx context.Context, row AchievementRow) error

	// List returns all unlocked achievements ordered by unlock time.
	List(ctx context.Context) ([]AchievementRow, error)

	// Clear deletes all stored achievements.
	Clear(ctx context.Context) error
}
