package progression

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rsarma/maestro/internal/curriculum"
)

// chainCatalog builds a linear 5-item chain: each item's sole
// prerequisite is the previous one.
func chainCatalog(t *testing.T) *curriculum.Catalog {
	t.Helper()
	items := make([]curriculum.Item, 5)
	ids := []string{"one", "two", "three", "four", "five"}
	for i, id := range ids {
		items[i] = curriculum.Item{
			ID:         id,
			Title:      id,
			Track:      curriculum.TrackFoundations,
			OrderIndex: i + 1,
		}
		if i > 0 {
			items[i].Prerequisites = []string{ids[i-1]}
		}
	}
	c, err := curriculum.New(items)
	if err != nil {
		t.Fatalf("build chain catalog: %v", err)
	}
	return c
}

func TestInitialize_RootsAvailableRestLocked(t *testing.T) {
	e := NewEngine(chainCatalog(t))
	sum := e.Initialize()

	if sum.Total != 5 {
		t.Fatalf("total = %d, want 5", sum.Total)
	}
	if sum.Available != 1 || sum.Locked != 4 {
		t.Errorf("available/locked = %d/%d, want 1/4", sum.Available, sum.Locked)
	}
	for _, s := range e.Sessions() {
		want := StatusLocked
		if len(s.Item.Prerequisites) == 0 {
			want = StatusAvailable
		}
		if s.Record.Status != want {
			t.Errorf("item %q: status %v, want %v", s.Item.ID, s.Record.Status, want)
		}
		if s.Record.Attempts != 0 {
			t.Errorf("item %q: attempts = %d, want 0", s.Item.ID, s.Record.Attempts)
		}
	}
}

func TestStart_Locked(t *testing.T) {
	e := NewEngine(chainCatalog(t))
	e.Initialize()

	_, err := e.Start("three")
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}

	// Status must be unchanged after the failed start.
	for _, s := range e.Sessions() {
		if s.Item.ID == "three" && s.Record.Status != StatusLocked {
			t.Errorf("status = %v after failed start, want Locked", s.Record.Status)
		}
	}
}

func TestStart_Unknown(t *testing.T) {
	e := NewEngine(chainCatalog(t))
	e.Initialize()
	if _, err := e.Start("ninety"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStart_IncrementsAttempts(t *testing.T) {
	e := NewEngine(chainCatalog(t))
	e.Initialize()

	r, err := e.Start("one")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if r.Status != StatusInProgress {
		t.Errorf("status = %v, want InProgress", r.Status)
	}
	if r.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", r.Attempts)
	}
	if r.StartedAt == nil {
		t.Error("StartedAt should be set")
	}

	// Restarting an in-progress item counts as a retry.
	r, err = e.Start("one")
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if r.Attempts != 2 {
		t.Errorf("attempts after restart = %d, want 2", r.Attempts)
	}
}

func TestComplete_InvalidScore(t *testing.T) {
	e := NewEngine(chainCatalog(t))
	e.Initialize()

	for _, score := range []int{-1, 101, 250} {
		if _, err := e.Complete("one", score); !errors.Is(err, ErrInvalidScore) {
			t.Errorf("score %d: expected ErrInvalidScore, got %v", score, err)
		}
	}
}

func TestComplete_SetsFieldsAndUnlocksNext(t *testing.T) {
	e := NewEngine(chainCatalog(t))
	e.Initialize()

	r, err := e.Complete("one", 85)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if r.Status != StatusCompleted {
		t.Errorf("status = %v, want Completed", r.Status)
	}
	if r.CompletedAt == nil || r.Score == nil {
		t.Fatal("CompletedAt and Score must be set on completion")
	}
	if *r.Score != 85 {
		t.Errorf("score = %d, want 85", *r.Score)
	}

	statuses := statusByID(e)
	if statuses["two"] != StatusAvailable {
		t.Errorf("two = %v after completing one, want Available", statuses["two"])
	}
	if statuses["three"] != StatusLocked {
		t.Errorf("three = %v, want Locked", statuses["three"])
	}
}

func TestChainScenario_TwoCompletions(t *testing.T) {
	e := NewEngine(chainCatalog(t))
	e.Initialize()

	if _, err := e.Complete("one", 85); err != nil {
		t.Fatalf("complete one: %v", err)
	}
	if _, err := e.Complete("two", 90); err != nil {
		t.Fatalf("complete two: %v", err)
	}

	statuses := statusByID(e)
	if statuses["three"] != StatusAvailable {
		t.Errorf("three = %v, want Available", statuses["three"])
	}
	if statuses["four"] != StatusLocked || statuses["five"] != StatusLocked {
		t.Errorf("four/five = %v/%v, want Locked/Locked", statuses["four"], statuses["five"])
	}

	if sum := e.Summary(); sum.Percent != 40 {
		t.Errorf("percent = %d, want 40", sum.Percent)
	}
}

func TestSummary_PercentTruncates(t *testing.T) {
	// 3 items, 1 completed: floor(100/3) = 33.
	items := []curriculum.Item{
		{ID: "a", Title: "A", OrderIndex: 1},
		{ID: "b", Title: "B", OrderIndex: 2},
		{ID: "c", Title: "C", OrderIndex: 3},
	}
	c, err := curriculum.New(items)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	e := NewEngine(c)
	e.Initialize()
	if _, err := e.Complete("a", 100); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if sum := e.Summary(); sum.Percent != 33 {
		t.Errorf("percent = %d, want 33", sum.Percent)
	}
}

func TestUnlock_RequiresAllPrerequisites(t *testing.T) {
	// Diamond: d requires both b and c.
	items := []curriculum.Item{
		{ID: "a", Title: "A", OrderIndex: 1},
		{ID: "b", Title: "B", OrderIndex: 2, Prerequisites: []string{"a"}},
		{ID: "c", Title: "C", OrderIndex: 3, Prerequisites: []string{"a"}},
		{ID: "d", Title: "D", OrderIndex: 4, Prerequisites: []string{"b", "c"}},
	}
	c, err := curriculum.New(items)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	e := NewEngine(c)
	e.Initialize()

	mustComplete(t, e, "a", 80)
	mustComplete(t, e, "b", 80)
	if statusByID(e)["d"] != StatusLocked {
		t.Fatal("d must stay locked until both b and c complete")
	}

	mustComplete(t, e, "c", 80)
	if statusByID(e)["d"] != StatusAvailable {
		t.Fatal("d must unlock once both prerequisites complete")
	}
}

func TestCompleted_IsTerminal(t *testing.T) {
	e := NewEngine(chainCatalog(t))
	e.Initialize()
	mustComplete(t, e, "one", 70)

	r, err := e.Start("one")
	if err != nil {
		t.Fatalf("start completed item: %v", err)
	}
	if r.Status != StatusCompleted {
		t.Errorf("status = %v, completed items must never regress", r.Status)
	}
	if r.Attempts != 0 {
		t.Errorf("attempts = %d, no-op start must not count a retry", r.Attempts)
	}
}

func TestReset_Idempotent(t *testing.T) {
	e := NewEngine(chainCatalog(t))
	e.Initialize()
	mustComplete(t, e, "one", 95)

	first := e.Reset()
	second := e.Reset()
	if first != second {
		t.Errorf("reset summaries differ: %+v vs %+v", first, second)
	}
	if first.Completed != 0 || first.Available != 1 || first.Locked != 4 {
		t.Errorf("unexpected post-reset summary: %+v", first)
	}
}

func TestReset_AtomicUnderConcurrentReaders(t *testing.T) {
	e := NewEngine(chainCatalog(t))
	e.Initialize()

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			sum := e.Summary()
			if sum.Total != 5 {
				t.Errorf("observed partial store: total = %d", sum.Total)
				return
			}
		}
	}()

	for i := 0; i < 50; i++ {
		mustComplete(t, e, "one", 60)
		e.Reset()
	}
	close(stop)
	wg.Wait()
}

func TestRestore_RoundTripAndRederive(t *testing.T) {
	e := NewEngine(chainCatalog(t))
	e.Initialize()
	mustComplete(t, e, "one", 85)
	if _, err := e.Start("two"); err != nil {
		t.Fatalf("start two: %v", err)
	}

	records := e.Records()

	fresh := NewEngine(chainCatalog(t))
	sum := fresh.Restore(records)
	if sum.Completed != 1 || sum.InProgress != 1 {
		t.Errorf("restored summary = %+v, want 1 completed, 1 in progress", sum)
	}

	statuses := statusByID(fresh)
	if statuses["three"] != StatusLocked {
		t.Errorf("three = %v, want Locked", statuses["three"])
	}

	// A stale snapshot that left "two" locked must be re-derived to
	// Available since its prerequisite is completed.
	stale := []Record{
		{ItemID: "one", Status: StatusCompleted, Score: intPtr(85), CompletedAt: timePtr(time.Now())},
		{ItemID: "two", Status: StatusLocked},
	}
	again := NewEngine(chainCatalog(t))
	again.Restore(stale)
	if statusByID(again)["two"] != StatusAvailable {
		t.Error("restore must re-derive Available from the completed set")
	}
}

func mustComplete(t *testing.T, e *Engine, id string, score int) {
	t.Helper()
	if _, err := e.Complete(id, score); err != nil {
		t.Fatalf("complete %q: %v", id, err)
	}
}

func statusByID(e *Engine) map[string]Status {
	out := make(map[string]Status)
	for _, s := range e.Sessions() {
		out[s.Item.ID] = s.Record.Status
	}
	return out
}

func intPtr(v int) *int { return &v }

func timePtr(v time.Time) *time.Time { return &v }
