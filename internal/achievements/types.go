// Package achievements awards one-time badges for curriculum
// milestones. Awards are derived from progression state and persisted
// so they unlock exactly once.
package achievements

import "fmt"

// ID identifies an achievement.
type ID string

const (
	FirstSteps    ID = "first-steps"
	Momentum      ID = "momentum"
	Perfectionist ID = "perfectionist"
	Maestro       ID = "maestro"
)

// TrackComplete returns the achievement id for finishing every session
// in a track.
func TrackComplete(track string) ID {
	return ID(fmt.Sprintf("track-%s", track))
}

// Achievement describes an unlockable badge.
type Achievement struct {
	ID          ID
	Title       string
	Description string
	Icon        string
}
