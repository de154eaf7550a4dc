package recommend

import (
	"context"
	"sort"
	"sync"

	"github.com/rsarma/maestro/internal/curriculum"
	"github.com/rsarma/maestro/internal/skills"
)

// SeedSource supplies dynamic suggestion candidates for a context.
// Implementations may fail; the engine absorbs their errors.
type SeedSource interface {
	Suggestions(ctx context.Context, snap Snapshot) ([]Suggestion, error)
}

// Scoring adjustments applied on top of each candidate's static
// relevance score.
const (
	gapSkillBonus  = 10
	lowFocusBonus  = 5
	lowFocusCutoff = 40
	maxSuggestions = 3
	maxGapActions  = 3
)

// Engine turns context snapshots into ranked recommendations. The
// dismissal set lives for the process session; it is not persisted.
type Engine struct {
	mu        sync.Mutex
	catalog   *curriculum.Catalog
	source    SeedSource
	dismissed map[Key]struct{}
}

// NewEngine returns an Engine over catalog. source may be nil, in
// which case only static seeds are used.
func NewEngine(catalog *curriculum.Catalog, source SeedSource) *Engine {
	return &Engine{
		catalog:   catalog,
		source:    source,
		dismissed: make(map[Key]struct{}),
	}
}

// Dismiss marks a suggestion so it is not offered again this session.
func (e *Engine) Dismiss(key Key) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dismissed[key] = struct{}{}
}

// Accept records that the user took the suggestion. Accepted
// suggestions are not re-offered within the session.
func (e *Engine) Accept(s Suggestion) {
	e.Dismiss(s.Key())
}

// Dismissed reports whether key has been dismissed or accepted.
func (e *Engine) Dismissed(key Key) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.dismissed[key]
	return ok
}

// ClearDismissals forgets all dismissed suggestions.
func (e *Engine) ClearDismissals() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dismissed = make(map[Key]struct{})
}

// Recommend scores the context and returns ranked suggestions,
// just-in-time tips, and skill gaps. completed is the set of finished
// curriculum items, used to derive skill levels.
//
// A failing dynamic source never fails the call: the result degrades
// to the static per-view seeds. Output is deterministic for identical
// inputs.
func (e *Engine) Recommend(ctx context.Context, snap Snapshot, completed []curriculum.Item) Recommendation {
	candidates := seedsFor(snap.View)
	if e.source != nil {
		if dynamic, err := e.source.Suggestions(ctx, snap); err == nil {
			candidates = append(candidates, dynamic...)
		}
		// Source errors are absorbed: recommendations are advisory
		// and the static seeds keep the list non-empty.
	}

	levels := skills.Levels(completed)
	gapped := make(map[skills.Skill]bool)
	for _, s := range skills.Gapped(levels) {
		gapped[s] = true
	}

	for i := range candidates {
		candidates[i].RelevanceScore = e.adjustScore(candidates[i], snap, gapped)
	}

	candidates = e.dropDismissed(candidates)
	candidates = dedupe(candidates)
	e.sortCandidates(candidates)

	top := candidates
	if len(top) > maxSuggestions {
		top = top[:maxSuggestions]
	}

	return Recommendation{
		Suggestions:    top,
		JustInTimeTips: tipsFor(snap.View, snap.SessionDuration),
		SkillGaps:      buildGaps(levels),
	}
}

// adjustScore applies deterministic context bonuses to a candidate's
// static relevance, clamped to 100.
func (e *Engine) adjustScore(s Suggestion, snap Snapshot, gapped map[skills.Skill]bool) int {
	score := s.RelevanceScore

	// Lessons that train a currently gapped skill rank higher.
	if s.Kind == KindLesson && s.LessonID != "" {
		if item, err := e.catalog.Get(s.LessonID); err == nil {
			for _, tag := range item.Skills {
				if gapped[skills.Skill(tag)] {
					score += gapSkillBonus
					break
				}
			}
		}
	}

	// When focus is low, favor lightweight tips over new material.
	if s.Kind == KindTip && snap.FocusScore < lowFocusCutoff {
		score += lowFocusBonus
	}

	if score > 100 {
		score = 100
	}
	return score
}

func (e *Engine) dropDismissed(in []Suggestion) []Suggestion {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := in[:0]
	for _, s := range in {
		if _, ok := e.dismissed[s.Key()]; !ok {
			out = append(out, s)
		}
	}
	return out
}

// dedupe collapses candidates sharing a (kind, title) key, keeping the
// highest-scored one. Input order is preserved for survivors.
func dedupe(in []Suggestion) []Suggestion {
	best := make(map[Key]int, len(in))
	for i, s := range in {
		j, seen := best[s.Key()]
		if !seen || s.RelevanceScore > in[j].RelevanceScore {
			best[s.Key()] = i
		}
	}

	out := in[:0]
	for i, s := range in {
		if best[s.Key()] == i {
			out = append(out, s)
		}
	}
	return out
}

// sortCandidates orders by relevance descending; ties break by catalog
// order index ascending (suggestions without a catalog reference sort
// last), then by title.
func (e *Engine) sortCandidates(candidates []Suggestion) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.RelevanceScore != b.RelevanceScore {
			return a.RelevanceScore > b.RelevanceScore
		}
		oa, ob := e.catalogOrder(a), e.catalogOrder(b)
		if oa != ob {
			return oa < ob
		}
		return a.Title < b.Title
	})
}

func (e *Engine) catalogOrder(s Suggestion) int {
	id := s.LessonID
	if id == "" {
		id = s.ExerciseID
	}
	if id == "" {
		return e.catalog.Len() + 1
	}
	return e.catalog.OrderIndex(id)
}

// buildGaps emits one SkillGap per skill below target, most gapped
// first, each with up to three remediation actions.
func buildGaps(levels map[skills.Skill]int) []SkillGap {
	var out []SkillGap
	for _, s := range skills.Gapped(levels) {
		actions := s.RemediationActions()
		if len(actions) > maxGapActions {
			actions = actions[:maxGapActions]
		}
		out = append(out, SkillGap{
			Skill:        string(s),
			CurrentLevel: levels[s],
			TargetLevel:  s.TargetLevel(),
			Actions:      actions,
		})
	}
	return out
}
