package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rsarma/maestro/internal/focus"
	"github.com/rsarma/maestro/internal/router"
	"github.com/rsarma/maestro/internal/screen"
	"github.com/rsarma/maestro/internal/screens/home"
	"github.com/rsarma/maestro/internal/ui/layout"
)

// Model is the root Bubble Tea model.
type Model struct {
	deps   *Deps
	router *router.Router
	width  int
	height int
}

func newModel(deps *Deps) Model {
	return Model{
		deps:   deps,
		router: router.New(home.New(
			deps.Catalog, deps.Progress, deps.ProgressRepo,
			deps.Recommender, deps.Builder, deps.Activity, deps.Achievements,
		)),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.PushScreenMsg:
		// A screen change counts as user activity for the focus
		// estimator, same as the original's view tracking.
		m.deps.Activity.Track("view:" + msg.Screen.Title())

	case tea.KeyMsg:
		// Escape is screen-local: scoring mode uses it to cancel, so
		// screens emit PopScreenMsg themselves when they mean "back".
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, layout.HeaderStats{
		ProgressPercent: m.deps.Progress.Summary().Percent,
		FocusScore:      focus.Estimate(time.Now(), m.deps.Activity.Timestamps()),
	}, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m Model) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		return provider.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(deps *Deps) error {
	p := tea.NewProgram(newModel(deps))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
