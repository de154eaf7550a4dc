package progression

import "errors"

// The recoverable error taxonomy for progression operations. Callers
// match with errors.Is; messages carry the offending item id.
var (
	// ErrNotFound means the item id has no progress record.
	ErrNotFound = errors.New("curriculum item not found")

	// ErrLocked means the item's prerequisites are not all completed.
	ErrLocked = errors.New("item is locked")

	// ErrInvalidScore means the score is outside [0, 100].
	ErrInvalidScore = errors.New("score must be between 0 and 100")
)
