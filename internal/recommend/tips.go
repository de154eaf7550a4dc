package recommend

import "time"

// viewTips hold the just-in-time tips shown alongside suggestions.
// They are informative only and never scored.
var viewTips = map[View][]string{
	ViewWorkflow: {
		"Use the phase indicators to track workflow progress",
		"Check agent recommendations for next steps",
		"Review the communication board for team updates",
		"Keep your workflow phases organized and track progress regularly",
	},
	ViewDispatch: {
		"Match agent capabilities to task requirements before dispatching",
		"Use agent recommendations to optimize team coordination",
		"Batch related tasks to reduce handoff overhead",
	},
	ViewCommunication: {
		"Regular communication prevents project bottlenecks",
		"Keep task briefs short and structured",
		"Archive resolved threads to keep the board readable",
	},
	ViewCreator: {
		"Start from a template and customize incrementally",
		"Define agent roles before wiring the workflow",
		"Small projects are the fastest way to validate a setup",
	},
	ViewProjects: {
		"Review project health indicators weekly",
		"Completed projects are a good source of reusable templates",
		"Track workflow cycles to spot recurring slowdowns",
	},
}

// tipWindow is how many tips each cycle surfaces.
const tipWindow = 3

// tipRotation is how long one tip window stays current.
const tipRotation = 5 * time.Minute

// tipsFor returns up to tipWindow tips for view, rotating through the
// full list as the session progresses. Deterministic for a given view
// and session duration.
func tipsFor(view View, sessionDuration time.Duration) []string {
	all := viewTips[view]
	if len(all) == 0 {
		return nil
	}
	if len(all) <= tipWindow {
		out := make([]string, len(all))
		copy(out, all)
		return out
	}

	offset := int(sessionDuration/tipRotation) % len(all)
	out := make([]string, 0, tipWindow)
	for i := 0; i < tipWindow; i++ {
		out = append(out, all[(offset+i)%len(all)])
	}
	return out
}
