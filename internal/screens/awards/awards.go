// Package awards displays the achievement cabinet.
package awards

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/rsarma/maestro/internal/achievements"
	"github.com/rsarma/maestro/internal/curriculum"
	"github.com/rsarma/maestro/internal/router"
	"github.com/rsarma/maestro/internal/screen"
	"github.com/rsarma/maestro/internal/ui/layout"
	"github.com/rsarma/maestro/internal/ui/theme"
)

type unlockedLoadedMsg struct {
	Unlocked []achievements.Achievement
	Err      error
}

// Screen lists every achievement with its unlock state.
type Screen struct {
	catalog  *curriculum.Catalog
	service  *achievements.Service
	unlocked map[achievements.ID]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the achievements screen.
func New(catalog *curriculum.Catalog, service *achievements.Service) *Screen {
	return &Screen{
		catalog:  catalog,
		service:  service,
		unlocked: make(map[achievements.ID]bool),
	}
}

func (s *Screen) Init() tea.Cmd {
	svc := s.service
	return func() tea.Msg {
		unlocked, err := svc.Unlocked(context.Background())
		return unlockedLoadedMsg{Unlocked: unlocked, Err: err}
	}
}

func (s *Screen) Title() string {
	return "Achievements"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case unlockedLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		for _, a := range msg.Unlocked {
			s.unlocked[a.ID] = true
		}
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return s, nil
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder

	if !s.loaded {
		b.WriteString("  " + theme.Hint.Render("Loading...") + "\n")
		return b.String()
	}
	if s.errMsg != "" {
		b.WriteString("  " + theme.Hint.Render("Failed to load: "+s.errMsg) + "\n")
		return b.String()
	}

	defs := achievements.Definitions(s.catalog)
	count := 0
	for _, def := range defs {
		if s.unlocked[def.ID] {
			count++
		}
	}

	b.WriteString(fmt.Sprintf("  %d of %d unlocked\n\n", count, len(defs)))

	for _, def := range defs {
		if s.unlocked[def.ID] {
			b.WriteString(fmt.Sprintf("  %s  %s\n", def.Icon,
				theme.StatusCompleted.Render(def.Title)))
			b.WriteString("      " + theme.Body.Render(def.Description) + "\n")
		} else {
			b.WriteString("  🔒  " + theme.StatusLocked.Render(def.Title) + "\n")
			b.WriteString("      " + theme.Hint.Render(def.Description) + "\n")
		}
	}

	return b.String()
}
