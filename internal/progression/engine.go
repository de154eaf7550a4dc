package progression

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rsarma/maestro/internal/curriculum"
)

// Session pairs a curriculum item with the learner's record for it.
type Session struct {
	Item   curriculum.Item
	Record Record
}

// Engine owns the per-learner progress store for one session and
// enforces the item state machine:
//
//	Locked → Available → InProgress → Completed
//
// Completed is terminal. A mutex guards the store because the host may
// refresh recommendations on a timer while the user starts or
// completes items; Reset holds the write lock for its whole duration
// so no reader ever observes a half-cleared store.
type Engine struct {
	mu      sync.RWMutex
	catalog *curriculum.Catalog
	records map[string]*Record
	now     func() time.Time
}

// NewEngine creates an engine over the given catalog. Call Initialize
// or Restore before any other operation.
func NewEngine(catalog *curriculum.Catalog) *Engine {
	return &Engine{
		catalog: catalog,
		records: make(map[string]*Record),
		now:     time.Now,
	}
}

// Initialize creates one record per catalog item: Available for items
// with no prerequisites, Locked for everything else. Any prior state
// is discarded.
func (e *Engine) Initialize() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.initLocked()
	return e.summaryLocked()
}

func (e *Engine) initLocked() {
	e.records = make(map[string]*Record, e.catalog.Len())
	for _, it := range e.catalog.All() {
		status := StatusLocked
		if len(it.Prerequisites) == 0 {
			status = StatusAvailable
		}
		e.records[it.ID] = &Record{ItemID: it.ID, Status: status}
	}
}

// Restore hydrates the store from persisted records, then initializes
// any item the persisted set does not cover. Records for ids no longer
// in the catalog are dropped. Locked/Available statuses are re-derived
// from the completed set so a stale snapshot cannot leave an unlocked
// item locked.
func (e *Engine) Restore(records []Record) Summary {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.initLocked()
	for _, r := range records {
		if _, ok := e.records[r.ItemID]; !ok {
			continue
		}
		cp := r
		e.records[r.ItemID] = &cp
	}

	completed := e.completedSetLocked()
	for id, r := range e.records {
		if r.Status != StatusLocked && r.Status != StatusAvailable {
			continue
		}
		if e.catalog.IsUnlocked(id, completed) {
			r.Status = StatusAvailable
		} else {
			r.Status = StatusLocked
		}
	}

	return e.summaryLocked()
}

// Start transitions an item to InProgress. Attempts increments on
// every call, including a re-start of an already InProgress item:
// starting over counts as a retry.
func (e *Engine) Start(itemID string) (Record, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.records[itemID]
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrNotFound, itemID)
	}
	if r.Status == StatusLocked {
		return Record{}, fmt.Errorf("%w: %q has unmet prerequisites", ErrLocked, itemID)
	}
	// Completed is terminal; starting a finished item is a no-op.
	if r.Status == StatusCompleted {
		return *r, nil
	}

	now := e.now()
	r.Status = StatusInProgress
	r.StartedAt = &now
	r.Attempts++
	return *r, nil
}

// Complete marks an item Completed with the given score and promotes
// any direct dependent whose prerequisites are now all completed. A
// single pass over direct dependents suffices: completion is monotonic
// and the graph is acyclic, so transitive unlocks happen as their own
// prerequisites complete.
func (e *Engine) Complete(itemID string, score int) (Record, error) {
	if score < 0 || score > 100 {
		return Record{}, fmt.Errorf("%w: got %d", ErrInvalidScore, score)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	r, ok := e.records[itemID]
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrNotFound, itemID)
	}
	if r.Status == StatusLocked {
		return Record{}, fmt.Errorf("%w: %q has unmet prerequisites", ErrLocked, itemID)
	}

	now := e.now()
	r.Status = StatusCompleted
	r.CompletedAt = &now
	r.Score = &score

	e.propagateUnlocksLocked(itemID)
	return *r, nil
}

func (e *Engine) propagateUnlocksLocked(completedID string) {
	completed := e.completedSetLocked()
	for _, dep := range e.catalog.Dependents(completedID) {
		dr := e.records[dep.ID]
		if dr.Status != StatusLocked {
			continue
		}
		if e.catalog.IsUnlocked(dep.ID, completed) {
			dr.Status = StatusAvailable
		}
	}
}

func (e *Engine) completedSetLocked() map[string]bool {
	set := make(map[string]bool, len(e.records))
	for id, r := range e.records {
		if r.Status == StatusCompleted {
			set[id] = true
		}
	}
	return set
}

// Summary returns aggregate progress counts and the completion
// percentage.
func (e *Engine) Summary() Summary {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.summaryLocked()
}

func (e *Engine) summaryLocked() Summary {
	s := Summary{Total: len(e.records)}
	for _, r := range e.records {
		switch r.Status {
		case StatusLocked:
			s.Locked++
		case StatusAvailable:
			s.Available++
		case StatusInProgress:
			s.InProgress++
		case StatusCompleted:
			s.Completed++
		}
	}
	if s.Total > 0 {
		s.Percent = 100 * s.Completed / s.Total
	}
	return s
}

// Sessions returns every item paired with its record, in order-index
// order. Records are copies; mutating them does not affect the store.
func (e *Engine) Sessions() []Session {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]Session, 0, len(e.records))
	for _, it := range e.catalog.All() {
		if r, ok := e.records[it.ID]; ok {
			out = append(out, Session{Item: it, Record: *r})
		}
	}
	return out
}

// Records returns copies of all records sorted by item id, for
// persistence by the host.
func (e *Engine) Records() []Record {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]Record, 0, len(e.records))
	for _, r := range e.records {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

// CompletedItems returns the catalog items the learner has completed,
// in order-index order.
func (e *Engine) CompletedItems() []curriculum.Item {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var out []curriculum.Item
	for _, it := range e.catalog.All() {
		if r, ok := e.records[it.ID]; ok && r.Status == StatusCompleted {
			out = append(out, it)
		}
	}
	return out
}

// Reset discards all progress and re-initializes. The write lock makes
// the reset atomic: concurrent readers see either the old store or the
// fully re-initialized one, never a mix.
func (e *Engine) Reset() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.initLocked()
	return e.summaryLocked()
}
