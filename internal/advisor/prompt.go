package advisor

import (
	"fmt"
	"strings"
	"time"

	"github.com/rsarma/maestro/internal/curriculum"
	"github.com/rsarma/maestro/internal/recommend"
)

const systemPrompt = `You are a learning advisor for a multi-agent orchestration tool.
Given the user's current context, suggest what they should learn or practice next.
Suggest only items that build on what the user has already completed.
Keep titles short and reasons concrete. Return 1 to 3 suggestions.`

// buildPrompt renders the context snapshot and available curriculum
// into the user-turn prompt.
func buildPrompt(snap recommend.Snapshot, available []curriculum.Item) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Current view: %s\n", snap.View)
	if snap.ProjectID != "" {
		fmt.Fprintf(&b, "Active project: %s (phase: %s)\n", snap.ProjectID, snap.ProjectPhase)
	}
	fmt.Fprintf(&b, "Curriculum progress: %d%% (%d of %d sessions completed)\n",
		snap.Progress.Percent, snap.Progress.Completed, snap.Progress.Total)
	fmt.Fprintf(&b, "Time of day: %s, focus score: %d/100\n", snap.TimeOfDay, snap.FocusScore)
	fmt.Fprintf(&b, "Session duration: %s\n", snap.SessionDuration.Round(time.Second))

	if len(snap.RecentActivity) > 0 {
		b.WriteString("Recent activity:\n")
		for _, token := range snap.RecentActivity {
			fmt.Fprintf(&b, "  - %s\n", token)
		}
	}

	if len(available) > 0 {
		b.WriteString("Sessions currently available to start:\n")
		for _, item := range available {
			fmt.Fprintf(&b, "  - %s: %s (%s, ~%d min)\n",
				item.ID, item.Title, item.Difficulty, item.EstimatedMins)
		}
	}

	b.WriteString("\nSuggest the most relevant next steps.")
	return b.String()
}
