package progression

import "time"

// Status is a curriculum item's lifecycle state for one learner.
type Status int

const (
	StatusLocked Status = iota
	StatusAvailable
	StatusInProgress
	StatusCompleted
)

// String returns the canonical snake_case name, matching what the
// store persists.
func (s Status) String() string {
	switch s {
	case StatusLocked:
		return "locked"
	case StatusAvailable:
		return "available"
	case StatusInProgress:
		return "in_progress"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// ParseStatus parses a canonical status name. Unknown strings parse as
// StatusLocked, the safe default.
func ParseStatus(s string) Status {
	switch s {
	case "available":
		return StatusAvailable
	case "in_progress":
		return StatusInProgress
	case "completed":
		return StatusCompleted
	default:
		return StatusLocked
	}
}

// Icon returns the display icon for a status.
func (s Status) Icon() string {
	switch s {
	case StatusLocked:
		return "🔒"
	case StatusAvailable:
		return "🔓"
	case StatusInProgress:
		return "📖"
	case StatusCompleted:
		return "✅"
	default:
		return "?"
	}
}

// Record tracks one learner's progress on one curriculum item.
type Record struct {
	ItemID      string
	Status      Status
	StartedAt   *time.Time
	CompletedAt *time.Time
	Score       *int // 0-100, set on completion
	Attempts    int
}

// Summary aggregates progress across the whole curriculum.
type Summary struct {
	Total      int
	Locked     int
	Available  int
	InProgress int
	Completed  int
	// Percent is floor(100*Completed/Total) so that 3 of 5 reads
	// exactly 60.
	Percent int
}
