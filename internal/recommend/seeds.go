package recommend

// viewSeeds are the static per-view suggestion rules. They are always
// available, so recommendation output degrades to these when the
// dynamic source is unreachable.
var viewSeeds = map[View][]Suggestion{
	ViewWorkflow: {
		{
			Kind:           KindLesson,
			Title:          "Workflow Management",
			Description:    "Master the five-phase orchestration workflow",
			RelevanceScore: 85,
			Reason:         "You are currently managing project workflows",
			LessonID:       "03-basic-workflows",
		},
		{
			Kind:           KindExercise,
			Title:          "Parallel Workflow Drill",
			Description:    "Split a pipeline across concurrent agents",
			RelevanceScore: 70,
			Reason:         "Hands-on practice reinforces workflow design",
			ExerciseID:     "07-parallel-tasks",
		},
	},
	ViewDispatch: {
		{
			Kind:           KindLesson,
			Title:          "Agent Coordination",
			Description:    "Learn effective agent dispatch strategies",
			RelevanceScore: 90,
			Reason:         "You are actively dispatching agents",
			LessonID:       "05-pair-programming",
		},
		{
			Kind:           KindResource,
			Title:          "Dispatch Patterns Guide",
			Description:    "Reference patterns for message-based dispatch",
			RelevanceScore: 65,
			Reason:         "Background reading for dispatch work",
			ResourceURL:    "https://bmad-method.org/guides/dispatch-patterns",
		},
	},
	ViewCommunication: {
		{
			Kind:           KindLesson,
			Title:          "Communication Best Practices",
			Description:    "Improve team communication efficiency",
			RelevanceScore: 80,
			Reason:         "You are managing team communications",
			LessonID:       "06-handoff-patterns",
		},
	},
	ViewCreator: {
		{
			Kind:           KindLesson,
			Title:          "Project Setup",
			Description:    "Learn to create effective agent projects",
			RelevanceScore: 95,
			Reason:         "You are setting up a new project",
			LessonID:       "02-agent-configuration",
		},
	},
	ViewProjects: {
		{
			Kind:           KindTip,
			Title:          "Project Overview",
			Description:    "Review your project health and progress",
			RelevanceScore: 70,
			Reason:         "You are reviewing project status",
		},
	},
}

// seedsFor returns copies of the static suggestions for view.
func seedsFor(view View) []Suggestion {
	seeds := viewSeeds[view]
	out := make([]Suggestion, len(seeds))
	copy(out, seeds)
	return out
}
