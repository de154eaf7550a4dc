package achievements

import (
	"context"
	"testing"
	"time"

	"github.com/rsarma/maestro/internal/curriculum"
	"github.com/rsarma/maestro/internal/progression"
	"github.com/rsarma/maestro/internal/store"
)

type memRepo struct {
	rows []store.AchievementRow
}

func (m *memRepo) Save(_ context.Context, row store.AchievementRow) error {
	for _, r := range m.rows {
		if r.ID == row.ID {
			return nil
		}
	}
	m.rows = append(m.rows, row)
	return nil
}

func (m *memRepo) List(context.Context) ([]store.AchievementRow, error) {
	return append([]store.AchievementRow(nil), m.rows...), nil
}

func (m *memRepo) Clear(context.Context) error {
	m.rows = nil
	return nil
}

func completeN(t *testing.T, eng *progression.Engine, n, score int) {
	t.Helper()
	items := curriculum.Default().All()
	for i := 0; i < n; i++ {
		id := items[i].ID
		if _, err := eng.Start(id); err != nil {
			t.Fatalf("start %s: %v", id, err)
		}
		if _, err := eng.Complete(id, score); err != nil {
			t.Fatalf("complete %s: %v", id, err)
		}
	}
}

func ids(list []Achievement) map[ID]bool {
	set := make(map[ID]bool, len(list))
	for _, a := range list {
		set[a.ID] = true
	}
	return set
}

func TestDefinitions(t *testing.T) {
	defs := Definitions(curriculum.Default())
	if len(defs) != 8 {
		t.Fatalf("definitions = %d, want 8", len(defs))
	}
	seen := make(map[ID]bool)
	for _, d := range defs {
		if d.Title == "" || d.Description == "" || d.Icon == "" {
			t.Errorf("incomplete definition %+v", d)
		}
		if seen[d.ID] {
			t.Errorf("duplicate id %s", d.ID)
		}
		seen[d.ID] = true
	}
}

func TestEvaluate_NothingOnEmptyProgress(t *testing.T) {
	catalog := curriculum.Default()
	eng := progression.NewEngine(catalog)
	eng.Initialize()
	svc := NewService(catalog, &memRepo{})

	fresh, err := svc.Evaluate(context.Background(), eng.Sessions())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(fresh) != 0 {
		t.Fatalf("expected no unlocks, got %v", fresh)
	}
}

func TestEvaluate_FirstStepsOnce(t *testing.T) {
	catalog := curriculum.Default()
	eng := progression.NewEngine(catalog)
	eng.Initialize()
	repo := &memRepo{}
	svc := NewService(catalog, repo)

	completeN(t, eng, 1, 85)
	fresh, err := svc.Evaluate(context.Background(), eng.Sessions())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !ids(fresh)[FirstSteps] {
		t.Fatalf("expected first-steps in %v", fresh)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected one persisted row, got %d", len(repo.rows))
	}

	// A second pass over the same state unlocks nothing new.
	again, err := svc.Evaluate(context.Background(), eng.Sessions())
	if err != nil {
		t.Fatalf("re-evaluate: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("expected no repeat unlocks, got %v", again)
	}
}

func TestEvaluate_MomentumAtFive(t *testing.T) {
	catalog := curriculum.Default()
	eng := progression.NewEngine(catalog)
	eng.Initialize()
	svc := NewService(catalog, &memRepo{})

	completeN(t, eng, 4, 85)
	fresh, err := svc.Evaluate(context.Background(), eng.Sessions())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ids(fresh)[Momentum] {
		t.Fatal("momentum unlocked at four completions")
	}

	completeN(t, eng, 5, 85)
	fresh, err = svc.Evaluate(context.Background(), eng.Sessions())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !ids(fresh)[Momentum] {
		t.Fatalf("expected momentum in %v", fresh)
	}
}

func TestEvaluate_TrackCompletion(t *testing.T) {
	catalog := curriculum.Default()
	eng := progression.NewEngine(catalog)
	eng.Initialize()
	svc := NewService(catalog, &memRepo{})

	foundations := len(catalog.ByTrack(curriculum.TrackFoundations))
	completeN(t, eng, foundations, 85)
	fresh, err := svc.Evaluate(context.Background(), eng.Sessions())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	set := ids(fresh)
	if !set[TrackComplete("foundations")] {
		t.Fatalf("expected track-foundations in %v", fresh)
	}
	if set[TrackComplete("coordination")] {
		t.Fatal("coordination track unlocked too early")
	}
}

func TestEvaluate_PerfectionistRequiresHundred(t *testing.T) {
	catalog := curriculum.Default()
	eng := progression.NewEngine(catalog)
	eng.Initialize()
	svc := NewService(catalog, &memRepo{})

	completeN(t, eng, 1, 99)
	fresh, err := svc.Evaluate(context.Background(), eng.Sessions())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ids(fresh)[Perfectionist] {
		t.Fatal("perfectionist unlocked for score 99")
	}

	second := catalog.All()[1].ID
	if _, err := eng.Start(second); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := eng.Complete(second, 100); err != nil {
		t.Fatalf("complete: %v", err)
	}
	fresh, err = svc.Evaluate(context.Background(), eng.Sessions())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !ids(fresh)[Perfectionist] {
		t.Fatalf("expected perfectionist in %v", fresh)
	}
}

func TestEvaluate_MaestroOnFullCurriculum(t *testing.T) {
	catalog := curriculum.Default()
	eng := progression.NewEngine(catalog)
	eng.Initialize()
	repo := &memRepo{}
	svc := NewService(catalog, repo)

	completeN(t, eng, catalog.Len(), 100)
	fresh, err := svc.Evaluate(context.Background(), eng.Sessions())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	set := ids(fresh)
	for _, want := range []ID{FirstSteps, Momentum, Perfectionist, Maestro,
		TrackComplete("foundations"), TrackComplete("coordination"),
		TrackComplete("scaling"), TrackComplete("mastery")} {
		if !set[want] {
			t.Errorf("missing %s in %v", want, fresh)
		}
	}

	unlocked, err := svc.Unlocked(context.Background())
	if err != nil {
		t.Fatalf("unlocked: %v", err)
	}
	if len(unlocked) != len(fresh) {
		t.Fatalf("unlocked count %d, want %d", len(unlocked), len(fresh))
	}
}

func TestEvaluate_SessionAwardsAccumulate(t *testing.T) {
	catalog := curriculum.Default()
	eng := progression.NewEngine(catalog)
	eng.Initialize()
	svc := NewService(catalog, &memRepo{})
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	completeN(t, eng, 1, 85)
	if _, err := svc.Evaluate(context.Background(), eng.Sessions()); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	completeN(t, eng, 5, 85)
	if _, err := svc.Evaluate(context.Background(), eng.Sessions()); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(svc.SessionAwards) != 2 {
		t.Fatalf("session awards = %d, want 2", len(svc.SessionAwards))
	}
}

func TestEvaluate_NilRepo(t *testing.T) {
	catalog := curriculum.Default()
	eng := progression.NewEngine(catalog)
	eng.Initialize()
	svc := NewService(catalog, nil)

	completeN(t, eng, 1, 85)
	fresh, err := svc.Evaluate(context.Background(), eng.Sessions())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !ids(fresh)[FirstSteps] {
		t.Fatalf("expected first-steps in %v", fresh)
	}
}
