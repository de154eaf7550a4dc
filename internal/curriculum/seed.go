package curriculum

import "sync"

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in orchestration curriculum, built once per
// process. The seed is validated at build time, so a panic here means
// the seed itself is broken.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(seedItems())
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// seedItems returns the sixteen-session orchestration curriculum. The
// chain is linear: each session's sole prerequisite is the previous one.
func seedItems() []Item {
	return []Item{
		{
			ID:            "01-single-agent-basics",
			Title:         "Single Agent Basics",
			Description:   "Master working with one agent",
			Track:         TrackFoundations,
			Difficulty:    Beginner,
			EstimatedMins: 30,
			OrderIndex:    1,
			Skills:        []string{"agent-coordination"},
		},
		{
			ID:            "02-agent-configuration",
			Title:         "Agent Configuration",
			Description:   "Customize agent behavior",
			Track:         TrackFoundations,
			Difficulty:    Beginner,
			EstimatedMins: 45,
			OrderIndex:    2,
			Prerequisites: []string{"01-single-agent-basics"},
			Skills:        []string{"project-setup", "agent-coordination"},
		},
		{
			ID:            "03-basic-workflows",
			Title:         "Basic Workflows",
			Description:   "Create your first automated workflows",
			Track:         TrackFoundations,
			Difficulty:    Beginner,
			EstimatedMins: 60,
			OrderIndex:    3,
			Prerequisites: []string{"02-agent-configuration"},
			Skills:        []string{"workflow-management"},
		},
		{
			ID:            "04-environment-setup",
			Title:         "Environment Setup",
			Description:   "Optimize your development environment",
			Track:         TrackFoundations,
			Difficulty:    Beginner,
			EstimatedMins: 45,
			OrderIndex:    4,
			Prerequisites: []string{"03-basic-workflows"},
			Skills:        []string{"project-setup"},
		},
		{
			ID:            "05-pair-programming",
			Title:         "Pair Programming",
			Description:   "Coordinate two agents effectively",
			Track:         TrackCoordination,
			Difficulty:    Intermediate,
			EstimatedMins: 60,
			OrderIndex:    5,
			Prerequisites: []string{"04-environment-setup"},
			Skills:        []string{"agent-coordination", "communication"},
		},
		{
			ID:            "06-handoff-patterns",
			Title:         "Handoff Patterns",
			Description:   "Master agent-to-agent handoffs",
			Track:         TrackCoordination,
			Difficulty:    Intermediate,
			EstimatedMins: 90,
			OrderIndex:    6,
			Prerequisites: []string{"05-pair-programming"},
			Skills:        []string{"communication", "workflow-management"},
		},
		{
			ID:            "07-parallel-tasks",
			Title:         "Parallel Tasks",
			Description:   "Run multiple agents simultaneously",
			Track:         TrackCoordination,
			Difficulty:    Intermediate,
			EstimatedMins: 90,
			OrderIndex:    7,
			Prerequisites: []string{"06-handoff-patterns"},
			Skills:        []string{"agent-coordination", "process-optimization"},
		},
		{
			ID:            "08-error-recovery",
			Title:         "Error Recovery",
			Description:   "Handle failures gracefully",
			Track:         TrackCoordination,
			Difficulty:    Intermediate,
			EstimatedMins: 60,
			OrderIndex:    8,
			Prerequisites: []string{"07-parallel-tasks"},
			Skills:        []string{"problem-solving", "quality-assurance"},
		},
		{
			ID:            "09-multi-agent-projects",
			Title:         "Multi-Agent Projects",
			Description:   "Orchestrate 3+ agents",
			Track:         TrackScaling,
			Difficulty:    Advanced,
			EstimatedMins: 120,
			OrderIndex:    9,
			Prerequisites: []string{"08-error-recovery"},
			Skills:        []string{"team-leadership", "agent-coordination"},
		},
		{
			ID:            "10-complex-workflows",
			Title:         "Complex Workflows",
			Description:   "Build sophisticated pipelines",
			Track:         TrackScaling,
			Difficulty:    Advanced,
			EstimatedMins: 120,
			OrderIndex:    10,
			Prerequisites: []string{"09-multi-agent-projects"},
			Skills:        []string{"workflow-management", "process-optimization"},
		},
		{
			ID:            "11-performance-optimization",
			Title:         "Performance Optimization",
			Description:   "Scale your workflows",
			Track:         TrackScaling,
			Difficulty:    Advanced,
			EstimatedMins: 90,
			OrderIndex:    11,
			Prerequisites: []string{"10-complex-workflows"},
			Skills:        []string{"process-optimization"},
		},
		{
			ID:            "12-production-patterns",
			Title:         "Production Patterns",
			Description:   "Deploy agent systems",
			Track:         TrackScaling,
			Difficulty:    Advanced,
			EstimatedMins: 120,
			OrderIndex:    12,
			Prerequisites: []string{"11-performance-optimization"},
			Skills:        []string{"quality-assurance", "process-optimization"},
		},
		{
			ID:            "13-custom-agent-creation",
			Title:         "Custom Agent Creation",
			Description:   "Build your own agents",
			Track:         TrackMastery,
			Difficulty:    Expert,
			EstimatedMins: 180,
			OrderIndex:    13,
			Prerequisites: []string{"12-production-patterns"},
			Skills:        []string{"project-setup", "problem-solving"},
		},
		{
			ID:            "14-advanced-orchestration",
			Title:         "Advanced Orchestration",
			Description:   "Enterprise-grade coordination",
			Track:         TrackMastery,
			Difficulty:    Expert,
			EstimatedMins: 180,
			OrderIndex:    14,
			Prerequisites: []string{"13-custom-agent-creation"},
			Skills:        []string{"team-leadership", "workflow-management"},
		},
		{
			ID:            "15-system-integration",
			Title:         "System Integration",
			Description:   "Connect with external tools",
			Track:         TrackMastery,
			Difficulty:    Expert,
			EstimatedMins: 150,
			OrderIndex:    15,
			Prerequisites: []string{"14-advanced-orchestration"},
			Skills:        []string{"problem-solving", "process-optimization"},
		},
		{
			ID:            "16-community-contribution",
			Title:         "Community Contribution",
			Description:   "Share your expertise",
			Track:         TrackMastery,
			Difficulty:    Expert,
			EstimatedMins: 120,
			OrderIndex:    16,
			Prerequisites: []string{"15-system-integration"},
			Skills:        []string{"team-leadership", "communication"},
		},
	}
}
