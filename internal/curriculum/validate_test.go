package curriculum

import (
	"errors"
	"strings"
	"testing"
)

func TestNew_ValidChain(t *testing.T) {
	items := []Item{
		{ID: "a", Title: "A", Track: TrackFoundations, OrderIndex: 1},
		{ID: "b", Title: "B", Track: TrackFoundations, OrderIndex: 2, Prerequisites: []string{"a"}},
	}
	if _, err := New(items); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNew_RejectsCycle(t *testing.T) {
	items := []Item{
		{ID: "a", Title: "A", OrderIndex: 1, Prerequisites: []string{"c"}},
		{ID: "b", Title: "B", OrderIndex: 2, Prerequisites: []string{"a"}},
		{ID: "c", Title: "C", OrderIndex: 3, Prerequisites: []string{"b"}},
	}
	c, err := New(items)
	if err == nil {
		t.Fatal("expected error for cyclic prerequisites, got nil")
	}
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("error should wrap ErrInvalid, got %v", err)
	}
	if c != nil {
		t.Error("catalog must be nil on validation failure")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention the cycle, got %q", err.Error())
	}
}

func TestNew_RejectsSelfPrerequisite(t *testing.T) {
	items := []Item{
		{ID: "a", Title: "A", OrderIndex: 1, Prerequisites: []string{"a"}},
	}
	if _, err := New(items); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestNew_RejectsDanglingPrerequisite(t *testing.T) {
	items := []Item{
		{ID: "a", Title: "A", OrderIndex: 1, Prerequisites: []string{"ghost"}},
	}
	_, err := New(items)
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error should name the missing prerequisite, got %q", err.Error())
	}
}

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	items := []Item{
		{ID: "a", Title: "A", OrderIndex: 1},
		{ID: "a", Title: "A again", OrderIndex: 2},
	}
	if _, err := New(items); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestNew_RejectsEmptyCatalog(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestNew_CollectsAllProblems(t *testing.T) {
	items := []Item{
		{ID: "a", Title: "A", OrderIndex: 1, Prerequisites: []string{"ghost"}},
		{ID: "a", Title: "Dup", OrderIndex: 2, EstimatedMins: -5},
	}
	_, err := New(items)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"duplicate", "ghost", "EstimatedMins"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error should mention %q, got %q", want, msg)
		}
	}
}
