package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rsarma/maestro/internal/achievements"
	"github.com/rsarma/maestro/internal/activity"
	"github.com/rsarma/maestro/internal/curriculum"
	"github.com/rsarma/maestro/internal/progression"
	"github.com/rsarma/maestro/internal/recommend"
	"github.com/rsarma/maestro/internal/router"
	"github.com/rsarma/maestro/internal/screen"
	"github.com/rsarma/maestro/internal/screens/advice"
	"github.com/rsarma/maestro/internal/screens/awards"
	"github.com/rsarma/maestro/internal/screens/sessions"
	"github.com/rsarma/maestro/internal/store"
	"github.com/rsarma/maestro/internal/ui/components"
	"github.com/rsarma/maestro/internal/ui/theme"
)

const banner = `
 ███╗   ███╗ █████╗ ███████╗███████╗████████╗██████╗  ██████╗
 ████╗ ████║██╔══██╗██╔════╝██╔════╝╚══██╔══╝██╔══██╗██╔═══██╗
 ██╔████╔██║███████║█████╗  ███████╗   ██║   ██████╔╝██║   ██║
 ██║╚██╔╝██║██╔══██║██╔══╝  ╚════██║   ██║   ██╔══██╗██║   ██║
 ██║ ╚═╝ ██║██║  ██║███████╗███████║   ██║   ██║  ██║╚██████╔╝
 ╚═╝     ╚═╝╚═╝  ╚═╝╚══════╝╚══════╝   ╚═╝   ╚═╝  ╚═╝ ╚═════╝`

type unlockCountMsg struct {
	Count int
}

// HomeScreen is the top-level menu.
type HomeScreen struct {
	progress     *progression.Engine
	awardService *achievements.Service
	menu         components.Menu
	unlockCount  int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen and wires the child screens.
func New(catalog *curriculum.Catalog, progress *progression.Engine, progressRepo store.ProgressRepo, recommender *recommend.Engine, builder *recommend.Builder, log *activity.Log, awardService *achievements.Service) *HomeScreen {
	items := []components.MenuItem{
		{Label: "SESSIONS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: sessions.New(catalog, progress, progressRepo, awardService, log),
				}
			}
		}},
		{Label: "RECOMMENDATIONS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: advice.New(recommender, builder, progress, log),
				}
			}
		}},
		{Label: "ACHIEVEMENTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: awards.New(catalog, awardService),
				}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		progress:     progress,
		awardService: awardService,
		menu:         components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	svc := h.awardService
	return func() tea.Msg {
		unlocked, err := svc.Unlocked(context.Background())
		if err != nil {
			return unlockCountMsg{}
		}
		return unlockCountMsg{Count: len(unlocked)}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(unlockCountMsg); ok {
		h.unlockCount = m.Count
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	summary := h.progress.Summary()

	var sections []string

	sections = append(sections, theme.Title.Width(width).Render(banner))
	sections = append(sections, theme.Subtitle.Width(width).Render(
		"Learn to conduct your agents, one session at a time"))

	stats := fmt.Sprintf(
		"%d / %d sessions   %d%% complete   %d achievements",
		summary.Completed, summary.Total, summary.Percent, h.unlockCount,
	)
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Accent).
		Align(lipgloss.Center).
		Width(width).
		Render(stats))

	bar := components.NewProgressBar("", float64(summary.Percent)/100, false, width/2)
	sections = append(sections, lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width).
		Render(bar.View()))

	sections = append(sections, lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width).
		Render(h.menu.View()))

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
