package recommend

import (
	"sync"
	"time"

	"github.com/rsarma/maestro/internal/activity"
	"github.com/rsarma/maestro/internal/focus"
	"github.com/rsarma/maestro/internal/progression"
)

// View identifies which part of the host application the user is in.
type View string

const (
	ViewWorkflow      View = "workflow"
	ViewCommunication View = "communication"
	ViewDispatch      View = "dispatch"
	ViewCreator       View = "creator"
	ViewProjects      View = "projects"
)

// Views lists all known views.
func Views() []View {
	return []View{ViewWorkflow, ViewCommunication, ViewDispatch, ViewCreator, ViewProjects}
}

// Snapshot is an immutable capture of "why is the user here right
// now". Build one per recommendation cycle and never mutate it.
type Snapshot struct {
	View            View
	ProjectID       string // empty when no project is active
	ProjectPhase    string
	Progress        progression.Summary
	RecentActivity  []string // last 10 activity tokens, oldest first
	TimeOfDay       focus.Bucket
	FocusScore      int
	SessionDuration time.Duration
}

// Builder assembles context snapshots from the live session state. It
// remembers the last snapshot it built so callers can tell whether the
// user has moved somewhere new since the previous cycle.
type Builder struct {
	log *activity.Log
	now func() time.Time

	mu   sync.Mutex
	prev *Snapshot
}

// NewBuilder returns a Builder reading recent activity from log.
func NewBuilder(log *activity.Log) *Builder {
	return &Builder{log: log, now: time.Now}
}

// Build captures the current context. The returned snapshot is a
// value; later activity does not affect it.
func (b *Builder) Build(view View, projectID, phase string, progress progression.Summary) Snapshot {
	now := b.now()
	snap := Snapshot{
		View:            view,
		ProjectID:       projectID,
		ProjectPhase:    phase,
		Progress:        progress,
		RecentActivity:  b.log.Tokens(),
		TimeOfDay:       focus.BucketFor(now),
		FocusScore:      focus.Estimate(now, b.log.Timestamps()),
		SessionDuration: b.log.Duration(),
	}

	b.mu.Lock()
	b.prev = &snap
	b.mu.Unlock()
	return snap
}

// Changed reports whether view, project, or phase differ from the last
// built snapshot. It is true before the first Build.
func (b *Builder) Changed(view View, projectID, phase string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.prev == nil {
		return true
	}
	return b.prev.View != view ||
		b.prev.ProjectID != projectID ||
		b.prev.ProjectPhase != phase
}
