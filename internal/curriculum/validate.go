package curriculum

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid marks a structurally unusable curriculum: duplicate or
// empty IDs, dangling prerequisites, or a prerequisite cycle. Callers
// match it with errors.Is.
var ErrInvalid = errors.New("invalid curriculum")

// validateItems performs all structural checks on the given item set.
// Returns an error wrapping ErrInvalid that describes every problem
// found, or nil if the set is valid.
func validateItems(items []Item) error {
	var errs []string

	if len(items) == 0 {
		errs = append(errs, "catalog has no items")
	}

	idSet := make(map[string]bool, len(items))
	for _, it := range items {
		if it.ID == "" {
			errs = append(errs, "item with empty ID")
			continue
		}
		if idSet[it.ID] {
			errs = append(errs, fmt.Sprintf("duplicate item ID: %q", it.ID))
		}
		idSet[it.ID] = true
	}

	for _, it := range items {
		for _, prereqID := range it.Prerequisites {
			if prereqID == it.ID {
				errs = append(errs, fmt.Sprintf("item %q lists itself as a prerequisite", it.ID))
			} else if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("item %q references nonexistent prerequisite %q", it.ID, prereqID))
			}
		}
	}

	// Cycle check via Kahn's algorithm: any node left with positive
	// in-degree after the sweep sits on a cycle.
	inDegree := make(map[string]int, len(items))
	adj := make(map[string][]string)
	for _, it := range items {
		inDegree[it.ID] = len(it.Prerequisites)
		for _, prereqID := range it.Prerequisites {
			adj[prereqID] = append(adj[prereqID], it.ID)
		}
	}

	var queue []string
	for _, it := range items {
		if inDegree[it.ID] == 0 {
			queue = append(queue, it.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adj[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(items) {
		var cycleNodes []string
		for _, it := range items {
			if inDegree[it.ID] > 0 {
				cycleNodes = append(cycleNodes, it.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("prerequisite cycle involving: %s", strings.Join(cycleNodes, ", ")))
	}

	for _, it := range items {
		if it.EstimatedMins < 0 {
			errs = append(errs, fmt.Sprintf("item %q: EstimatedMins must be >= 0, got %d", it.ID, it.EstimatedMins))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrInvalid, strings.Join(errs, "\n  "))
	}
	return nil
}
