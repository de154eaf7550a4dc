package curriculum

import (
	"fmt"
	"slices"
	"sort"
)

// Catalog holds the curriculum DAG with precomputed indices.
// A Catalog is immutable once built and safe for concurrent readers.
type Catalog struct {
	items      []Item
	byID       map[string]*Item
	byTrack    map[Track][]Item
	roots      []Item
	dependents map[string][]string
	topoOrder  []Item
	topoIndex  map[string]int
}

// New builds a Catalog from a slice of items. It rejects the whole set
// if the prerequisite graph is malformed (duplicate IDs, dangling
// prerequisites, cycles); no partially built catalog is ever returned.
func New(items []Item) (*Catalog, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}

	c := &Catalog{
		items:      slices.Clone(items),
		byID:       make(map[string]*Item, len(items)),
		byTrack:    make(map[Track][]Item),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(items)),
	}

	sort.Slice(c.items, func(i, j int) bool {
		return c.items[i].OrderIndex < c.items[j].OrderIndex
	})

	for i := range c.items {
		c.byID[c.items[i].ID] = &c.items[i]
	}

	for i := range c.items {
		for _, prereqID := range c.items[i].Prerequisites {
			c.dependents[prereqID] = append(c.dependents[prereqID], c.items[i].ID)
		}
	}
	for _, deps := range c.dependents {
		sort.Strings(deps)
	}

	c.buildTopoOrder()

	for i := range c.items {
		if len(c.items[i].Prerequisites) == 0 {
			c.roots = append(c.roots, c.items[i])
		}
	}

	for i := range c.items {
		it := c.items[i]
		c.byTrack[it.Track] = append(c.byTrack[it.Track], it)
	}

	return c, nil
}

// buildTopoOrder computes a deterministic topological order (Kahn's
// algorithm, ties broken by order index). Validation has already
// guaranteed the graph is acyclic.
func (c *Catalog) buildTopoOrder() {
	inDegree := make(map[string]int, len(c.items))
	for i := range c.items {
		inDegree[c.items[i].ID] = len(c.items[i].Prerequisites)
	}

	var queue []string
	for i := range c.items {
		if inDegree[c.items[i].ID] == 0 {
			queue = append(queue, c.items[i].ID)
		}
	}
	c.sortByOrderIndex(queue)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		c.topoIndex[id] = len(c.topoOrder)
		c.topoOrder = append(c.topoOrder, *c.byID[id])

		var ready []string
		for _, depID := range c.dependents[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				ready = append(ready, depID)
			}
		}
		c.sortByOrderIndex(ready)
		queue = append(queue, ready...)
	}
}

func (c *Catalog) sortByOrderIndex(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		return c.byID[ids[i]].OrderIndex < c.byID[ids[j]].OrderIndex
	})
}

// Get returns an item by ID.
func (c *Catalog) Get(id string) (Item, error) {
	it, ok := c.byID[id]
	if !ok {
		return Item{}, fmt.Errorf("curriculum item not found: %q", id)
	}
	return *it, nil
}

// Has reports whether an item with the given ID exists.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// All returns every item ordered by order index.
func (c *Catalog) All() []Item {
	return slices.Clone(c.items)
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// ByTrack returns the items in a track, ordered by order index.
func (c *Catalog) ByTrack(t Track) []Item {
	return slices.Clone(c.byTrack[t])
}

// ByDifficulty returns all items of the given difficulty, ordered by
// order index.
func (c *Catalog) ByDifficulty(d Difficulty) []Item {
	var out []Item
	for _, it := range c.items {
		if it.Difficulty == d {
			out = append(out, it)
		}
	}
	return out
}

// Roots returns all items with no prerequisites.
func (c *Catalog) Roots() []Item {
	return slices.Clone(c.roots)
}

// Dependents returns the items that list id as a direct prerequisite,
// ordered by order index.
func (c *Catalog) Dependents(id string) []Item {
	depIDs := c.dependents[id]
	out := make([]Item, 0, len(depIDs))
	for _, depID := range depIDs {
		out = append(out, *c.byID[depID])
	}
	return out
}

// OrderIndex returns the order index for an item, or a value past the
// end of the catalog when the id is unknown. Useful as a stable sort
// tiebreaker for references that may not resolve.
func (c *Catalog) OrderIndex(id string) int {
	if it, ok := c.byID[id]; ok {
		return it.OrderIndex
	}
	return len(c.items) + 1
}

// IsUnlocked reports whether every prerequisite of id is in the
// completed set. Unknown ids are never unlocked.
func (c *Catalog) IsUnlocked(id string, completed map[string]bool) bool {
	it, ok := c.byID[id]
	if !ok {
		return false
	}
	for _, prereqID := range it.Prerequisites {
		if !completed[prereqID] {
			return false
		}
	}
	return true
}

// TopologicalOrder returns all items in a valid topological order.
func (c *Catalog) TopologicalOrder() []Item {
	return slices.Clone(c.topoOrder)
}
