// Package skills tracks the competencies the curriculum trains.
// Levels are derived from completed curriculum items rather than
// persisted separately: each completed item awards points to the
// skills it tags, weighted by difficulty.
package skills

import (
	"sort"

	"github.com/rsarma/maestro/internal/curriculum"
)

// Skill identifies a trainable competency.
type Skill string

const (
	AgentCoordination   Skill = "agent-coordination"
	ProjectSetup        Skill = "project-setup"
	WorkflowManagement  Skill = "workflow-management"
	Communication       Skill = "communication"
	ProcessOptimization Skill = "process-optimization"
	ProblemSolving      Skill = "problem-solving"
	QualityAssurance    Skill = "quality-assurance"
	TeamLeadership      Skill = "team-leadership"
)

// All returns every known skill in display order.
func All() []Skill {
	return []Skill{
		AgentCoordination,
		ProjectSetup,
		WorkflowManagement,
		Communication,
		ProcessOptimization,
		ProblemSolving,
		QualityAssurance,
		TeamLeadership,
	}
}

var displayNames = map[Skill]string{
	AgentCoordination:   "Agent Coordination",
	ProjectSetup:        "Project Setup",
	WorkflowManagement:  "Workflow Management",
	Communication:       "Communication",
	ProcessOptimization: "Process Optimization",
	ProblemSolving:      "Problem Solving",
	QualityAssurance:    "Quality Assurance",
	TeamLeadership:      "Team Leadership",
}

// DisplayName returns the human-readable name for s.
func (s Skill) DisplayName() string {
	if n, ok := displayNames[s]; ok {
		return n
	}
	return string(s)
}

// Known reports whether s is a recognized skill.
func (s Skill) Known() bool {
	_, ok := displayNames[s]
	return ok
}

// targetLevels are the proficiency targets used for gap detection.
var targetLevels = map[Skill]int{
	AgentCoordination:   80,
	ProjectSetup:        75,
	WorkflowManagement:  80,
	Communication:       75,
	ProcessOptimization: 75,
	ProblemSolving:      80,
	QualityAssurance:    75,
	TeamLeadership:      75,
}

// TargetLevel returns the proficiency target for s.
func (s Skill) TargetLevel() int {
	if t, ok := targetLevels[s]; ok {
		return t
	}
	return 75
}

var remediations = map[Skill][]string{
	AgentCoordination: {
		"Practice dispatching work across multiple agents",
		"Review message-based dispatch patterns",
	},
	ProjectSetup: {
		"Create a new project from a template",
		"Walk through agent configuration end to end",
	},
	WorkflowManagement: {
		"Design a multi-phase workflow for a sample project",
		"Study workflow design patterns",
	},
	Communication: {
		"Review inter-agent communication transcripts",
		"Practice writing structured task briefs",
	},
	ProcessOptimization: {
		"Profile a slow workflow and remove a bottleneck",
		"Compare sequential and parallel execution plans",
	},
	ProblemSolving: {
		"Debug a failing multi-agent workflow",
		"Work through an error-recovery exercise",
	},
	QualityAssurance: {
		"Add validation checkpoints to an existing workflow",
		"Review quality gates in scaled team setups",
	},
	TeamLeadership: {
		"Lead a simulated team through a full project",
		"Study custom team template design",
	},
}

// RemediationActions returns suggested actions for closing a gap in s.
func (s Skill) RemediationActions() []string {
	return remediations[s]
}

// difficultyPoints awards more credit for harder completed items.
func difficultyPoints(d curriculum.Difficulty) int {
	switch d {
	case curriculum.Beginner:
		return 15
	case curriculum.Intermediate:
		return 20
	case curriculum.Advanced:
		return 25
	case curriculum.Expert:
		return 30
	default:
		return 15
	}
}

// Levels computes current proficiency per skill from the completed
// curriculum items. Every skill appears in the result; levels are
// capped at 100.
func Levels(completed []curriculum.Item) map[Skill]int {
	levels := make(map[Skill]int, len(displayNames))
	for _, s := range All() {
		levels[s] = 0
	}
	for _, item := range completed {
		pts := difficultyPoints(item.Difficulty)
		for _, id := range item.Skills {
			s := Skill(id)
			if !s.Known() {
				continue
			}
			levels[s] += pts
			if levels[s] > 100 {
				levels[s] = 100
			}
		}
	}
	return levels
}

// Gapped returns the skills whose level is below target, most gapped
// first. Ties are broken by display order.
func Gapped(levels map[Skill]int) []Skill {
	var out []Skill
	order := make(map[Skill]int, len(displayNames))
	for i, s := range All() {
		order[s] = i
	}
	for _, s := range All() {
		if levels[s] < s.TargetLevel() {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		gi := out[i].TargetLevel() - levels[out[i]]
		gj := out[j].TargetLevel() - levels[out[j]]
		if gi != gj {
			return gi > gj
		}
		return order[out[i]] < order[out[j]]
	})
	return out
}
