package app

import (
	"github.com/rsarma/maestro/internal/achievements"
	"github.com/rsarma/maestro/internal/activity"
	"github.com/rsarma/maestro/internal/curriculum"
	"github.com/rsarma/maestro/internal/progression"
	"github.com/rsarma/maestro/internal/recommend"
	"github.com/rsarma/maestro/internal/store"
)

// Deps carries the wired services the TUI operates on. The progression
// engine and activity log are shared across screens so progress made on
// one is visible on the others.
type Deps struct {
	Catalog      *curriculum.Catalog
	Progress     *progression.Engine
	ProgressRepo store.ProgressRepo
	Recommender  *recommend.Engine
	Builder      *recommend.Builder
	Activity     *activity.Log
	Achievements *achievements.Service
	Version      string
}
