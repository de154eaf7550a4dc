// Package advice renders contextual recommendations with refresh,
// dismiss and accept controls.
package advice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rsarma/maestro/internal/activity"
	"github.com/rsarma/maestro/internal/progression"
	"github.com/rsarma/maestro/internal/recommend"
	"github.com/rsarma/maestro/internal/router"
	"github.com/rsarma/maestro/internal/screen"
	"github.com/rsarma/maestro/internal/ui/layout"
	"github.com/rsarma/maestro/internal/ui/theme"
)

// refreshInterval is how often recommendations are recomputed without
// user input.
const refreshInterval = 5 * time.Minute

type refreshDoneMsg struct {
	Result recommend.Recommendation
}

type autoRefreshMsg time.Time

// Screen shows the current recommendation set for a selectable view.
type Screen struct {
	recommender *recommend.Engine
	builder     *recommend.Builder
	progress    *progression.Engine
	log         *activity.Log

	view       recommend.View
	viewIndex  int
	result     recommend.Recommendation
	cursor     int
	loading    bool
	spin       spinner.Model
	statusLine string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the recommendations screen starting on the workflow view.
func New(recommender *recommend.Engine, builder *recommend.Builder, progress *progression.Engine, log *activity.Log) *Screen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	views := recommend.Views()
	return &Screen{
		recommender: recommender,
		builder:     builder,
		progress:    progress,
		log:         log,
		view:        views[0],
		spin:        sp,
	}
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(s.refreshCmd(), s.spin.Tick, autoRefreshTick())
}

func (s *Screen) Title() string {
	return "Recommendations"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "v", Description: "View"},
		{Key: "r", Description: "Refresh"},
		{Key: "d", Description: "Dismiss"},
		{Key: "a", Description: "Accept"},
		{Key: "Esc", Description: "Back"},
	}
}

func autoRefreshTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return autoRefreshMsg(t)
	})
}

func (s *Screen) refreshCmd() tea.Cmd {
	s.loading = true
	recommender := s.recommender
	builder := s.builder
	progress := s.progress
	view := s.view
	return func() tea.Msg {
		snap := builder.Build(view, "", "", progress.Summary())
		result := recommender.Recommend(context.Background(), snap, progress.CompletedItems())
		return refreshDoneMsg{Result: result}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshDoneMsg:
		s.result = msg.Result
		s.loading = false
		if s.cursor >= len(s.result.Suggestions) {
			s.cursor = 0
		}
		return s, nil

	case autoRefreshMsg:
		return s, tea.Batch(s.refreshCmd(), autoRefreshTick())

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}

	case "down", "j":
		if s.cursor < len(s.result.Suggestions)-1 {
			s.cursor++
		}

	case "v":
		views := recommend.Views()
		s.viewIndex = (s.viewIndex + 1) % len(views)
		s.view = views[s.viewIndex]
		s.log.Track("view:" + string(s.view))
		s.statusLine = ""
		return s, s.refreshCmd()

	case "r":
		s.log.Track("refresh:" + string(s.view))
		s.statusLine = ""
		return s, s.refreshCmd()

	case "d":
		if sel, ok := s.selected(); ok {
			s.recommender.Dismiss(sel.Key())
			s.statusLine = fmt.Sprintf("Dismissed %q", sel.Title)
			return s, s.refreshCmd()
		}

	case "a":
		if sel, ok := s.selected(); ok {
			s.recommender.Accept(sel)
			s.log.Track("accept:" + sel.Title)
			s.statusLine = fmt.Sprintf("Accepted %q", sel.Title)
			return s, s.refreshCmd()
		}
	}

	return s, nil
}

func (s *Screen) selected() (recommend.Suggestion, bool) {
	if s.cursor < 0 || s.cursor >= len(s.result.Suggestions) {
		return recommend.Suggestion{}, false
	}
	return s.result.Suggestions[s.cursor], true
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder

	viewLabel := lipgloss.NewStyle().Foreground(theme.Accent).Render(string(s.view))
	b.WriteString("  View: " + viewLabel)
	if s.loading {
		b.WriteString("   " + s.spin.View() + theme.Hint.Render(" refreshing"))
	}
	b.WriteString("\n\n")

	if len(s.result.Suggestions) == 0 && !s.loading {
		b.WriteString("  " + theme.Hint.Render("No suggestions right now.") + "\n")
	}

	for i, sug := range s.result.Suggestions {
		b.WriteString(s.renderSuggestion(sug, i == s.cursor, width) + "\n")
	}

	if len(s.result.JustInTimeTips) > 0 {
		b.WriteString("\n  " + theme.Subtitle.Align(lipgloss.Left).Render("Tips") + "\n")
		for _, tip := range s.result.JustInTimeTips {
			b.WriteString("   • " + theme.Body.Render(tip) + "\n")
		}
	}

	if len(s.result.SkillGaps) > 0 {
		b.WriteString("\n  " + theme.Subtitle.Align(lipgloss.Left).Render("Skill gaps") + "\n")
		for _, gap := range s.result.SkillGaps {
			b.WriteString(fmt.Sprintf("   %s  %d → %d\n",
				gap.Skill, gap.CurrentLevel, gap.TargetLevel))
		}
	}

	if s.statusLine != "" {
		b.WriteString("\n  " + theme.Hint.Render(s.statusLine) + "\n")
	}

	return b.String()
}

func (s *Screen) renderSuggestion(sug recommend.Suggestion, selected bool, width int) string {
	kind := theme.Badge.Render(string(sug.Kind))
	title := sug.Title
	score := theme.Hint.Render(fmt.Sprintf("(%d)", sug.RelevanceScore))

	line := fmt.Sprintf("%s %s %s", kind, title, score)
	desc := "      " + theme.Hint.Render(truncate(sug.Description, width-8))

	if selected {
		return "  ▸ " + theme.Selected.Render(line) + "\n" + desc
	}
	return "    " + theme.Body.Render(line) + "\n" + desc
}

func truncate(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
