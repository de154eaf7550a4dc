package curriculum

import "testing"

func TestGet_Exists(t *testing.T) {
	c := Default()
	it, err := c.Get("01-single-agent-basics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Title != "Single Agent Basics" {
		t.Errorf("got title %q, want %q", it.Title, "Single Agent Basics")
	}
	if it.Track != TrackFoundations {
		t.Errorf("got track %q, want %q", it.Track, TrackFoundations)
	}
	if it.Difficulty != Beginner {
		t.Errorf("got difficulty %v, want Beginner", it.Difficulty)
	}
}

func TestGet_NotFound(t *testing.T) {
	_, err := Default().Get("nonexistent")
	if err == nil {
		t.Fatal("expected error for nonexistent item, got nil")
	}
}

func TestAll_Count(t *testing.T) {
	all := Default().All()
	if len(all) != 16 {
		t.Errorf("got %d items, want 16", len(all))
	}
}

func TestAll_OrderedByIndex(t *testing.T) {
	all := Default().All()
	for i := 1; i < len(all); i++ {
		if all[i].OrderIndex <= all[i-1].OrderIndex {
			t.Errorf("item %q (index %d) appears after %q (index %d)",
				all[i].ID, all[i].OrderIndex, all[i-1].ID, all[i-1].OrderIndex)
		}
	}
}

func TestByTrack(t *testing.T) {
	tests := []struct {
		track Track
		want  int
	}{
		{TrackFoundations, 4},
		{TrackCoordination, 4},
		{TrackScaling, 4},
		{TrackMastery, 4},
	}
	for _, tt := range tests {
		items := Default().ByTrack(tt.track)
		if len(items) != tt.want {
			t.Errorf("ByTrack(%q): got %d items, want %d", tt.track, len(items), tt.want)
		}
	}
}

func TestRoots(t *testing.T) {
	roots := Default().Roots()
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	if roots[0].ID != "01-single-agent-basics" {
		t.Errorf("root = %q, want 01-single-agent-basics", roots[0].ID)
	}
}

func TestDependents(t *testing.T) {
	deps := Default().Dependents("05-pair-programming")
	if len(deps) != 1 {
		t.Fatalf("got %d dependents, want 1", len(deps))
	}
	if deps[0].ID != "06-handoff-patterns" {
		t.Errorf("dependent = %q, want 06-handoff-patterns", deps[0].ID)
	}
}

func TestIsUnlocked(t *testing.T) {
	c := Default()

	if !c.IsUnlocked("01-single-agent-basics", nil) {
		t.Error("root item should be unlocked with no completions")
	}
	if c.IsUnlocked("02-agent-configuration", nil) {
		t.Error("item with unmet prerequisite should be locked")
	}

	completed := map[string]bool{"01-single-agent-basics": true}
	if !c.IsUnlocked("02-agent-configuration", completed) {
		t.Error("item should unlock once its prerequisite is completed")
	}
	if c.IsUnlocked("03-basic-workflows", completed) {
		t.Error("item two steps ahead should remain locked")
	}

	if c.IsUnlocked("nonexistent", completed) {
		t.Error("unknown item should never be unlocked")
	}
}

func TestTopologicalOrder_RespectsPrerequisites(t *testing.T) {
	c := Default()
	pos := make(map[string]int)
	for i, it := range c.TopologicalOrder() {
		pos[it.ID] = i
	}
	for _, it := range c.All() {
		for _, prereq := range it.Prerequisites {
			if pos[prereq] >= pos[it.ID] {
				t.Errorf("prerequisite %q appears after %q in topological order", prereq, it.ID)
			}
		}
	}
}

func TestTopologicalOrder_DeterministicAcrossDiamond(t *testing.T) {
	// Diamond: a → {b, c} → d. Ties must break by order index.
	items := []Item{
		{ID: "a", Title: "A", Track: TrackFoundations, OrderIndex: 1},
		{ID: "b", Title: "B", Track: TrackFoundations, OrderIndex: 2, Prerequisites: []string{"a"}},
		{ID: "c", Title: "C", Track: TrackFoundations, OrderIndex: 3, Prerequisites: []string{"a"}},
		{ID: "d", Title: "D", Track: TrackFoundations, OrderIndex: 4, Prerequisites: []string{"b", "c"}},
	}
	c, err := New(items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a", "b", "c", "d"}
	for run := 0; run < 3; run++ {
		got := c.TopologicalOrder()
		for i, id := range want {
			if got[i].ID != id {
				t.Fatalf("run %d: topo[%d] = %q, want %q", run, i, got[i].ID, id)
			}
		}
	}
}

func TestOrderIndex_UnknownSortsLast(t *testing.T) {
	c := Default()
	if got := c.OrderIndex("01-single-agent-basics"); got != 1 {
		t.Errorf("OrderIndex(01) = %d, want 1", got)
	}
	if got := c.OrderIndex("nope"); got <= 16 {
		t.Errorf("OrderIndex(unknown) = %d, want > 16", got)
	}
}
