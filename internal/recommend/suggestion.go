// Package recommend produces ranked, deduplicated, dismissal-aware
// suggestions for what the user should do next, from a snapshot of
// their current context.
package recommend

// Kind discriminates suggestion variants. Each kind carries exactly
// one reference field on Suggestion.
type Kind string

const (
	KindLesson   Kind = "lesson"
	KindExercise Kind = "exercise"
	KindResource Kind = "resource"
	KindTip      Kind = "tip"
)

// Suggestion is one recommended next step. LessonID, ExerciseID, and
// ResourceURL are mutually exclusive; tips carry no reference.
type Suggestion struct {
	Kind           Kind   `json:"kind"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	RelevanceScore int    `json:"relevanceScore"`
	Reason         string `json:"reason"`

	LessonID    string `json:"lessonId,omitempty"`
	ExerciseID  string `json:"exerciseId,omitempty"`
	ResourceURL string `json:"resourceUrl,omitempty"`
}

// Key identifies a suggestion for deduplication and dismissal.
type Key struct {
	Kind  Kind
	Title string
}

// Key returns the identity of s.
func (s Suggestion) Key() Key {
	return Key{Kind: s.Kind, Title: s.Title}
}

// SkillGap reports a skill whose current level is below its target,
// with actions to close the gap.
type SkillGap struct {
	Skill        string   `json:"skill"`
	CurrentLevel int      `json:"currentLevel"`
	TargetLevel  int      `json:"targetLevel"`
	Actions      []string `json:"actions"`
}

// Recommendation is the full output of one scoring cycle.
type Recommendation struct {
	Suggestions    []Suggestion `json:"suggestions"`
	JustInTimeTips []string     `json:"justInTimeTips"`
	SkillGaps      []SkillGap   `json:"skillGaps"`
}
