// Package sessions renders the curriculum as a navigable list and
// drives the start/complete lifecycle.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rsarma/maestro/internal/achievements"
	"github.com/rsarma/maestro/internal/activity"
	"github.com/rsarma/maestro/internal/curriculum"
	"github.com/rsarma/maestro/internal/progression"
	"github.com/rsarma/maestro/internal/router"
	"github.com/rsarma/maestro/internal/screen"
	"github.com/rsarma/maestro/internal/store"
	"github.com/rsarma/maestro/internal/ui/components"
	"github.com/rsarma/maestro/internal/ui/layout"
	"github.com/rsarma/maestro/internal/ui/theme"
)

type mode int

const (
	modeBrowse mode = iota
	modeScoring
)

type persistedMsg struct {
	Err error
}

type completedMsg struct {
	ItemID   string
	Unlocked []achievements.Achievement
	Err      error
}

// Screen lists every curriculum session with its progression status.
type Screen struct {
	catalog      *curriculum.Catalog
	progress     *progression.Engine
	progressRepo store.ProgressRepo
	awardService *achievements.Service
	log          *activity.Log

	items      []curriculum.Item
	cursor     int
	mode       mode
	scoringID  string
	scoreInput components.ScoreInput
	statusLine string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the sessions screen.
func New(catalog *curriculum.Catalog, progress *progression.Engine, progressRepo store.ProgressRepo, awardService *achievements.Service, log *activity.Log) *Screen {
	return &Screen{
		catalog:      catalog,
		progress:     progress,
		progressRepo: progressRepo,
		awardService: awardService,
		log:          log,
		items:        catalog.All(),
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Sessions"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.mode == modeScoring {
		return []layout.KeyHint{
			{Key: "0-9", Description: "Score"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start / Finish"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case persistedMsg:
		if msg.Err != nil {
			s.statusLine = "Save failed: " + msg.Err.Error()
		}
		return s, nil

	case completedMsg:
		if msg.Err != nil {
			s.statusLine = "Save failed: " + msg.Err.Error()
			return s, nil
		}
		if len(msg.Unlocked) > 0 {
			names := make([]string, len(msg.Unlocked))
			for i, a := range msg.Unlocked {
				names[i] = a.Icon + " " + a.Title
			}
			s.statusLine = "Unlocked: " + strings.Join(names, "  ")
		} else {
			s.statusLine = fmt.Sprintf("Completed %s", msg.ItemID)
		}
		return s, nil

	case tea.KeyMsg:
		if s.mode == modeScoring {
			return s.updateScoring(msg)
		}
		return s.updateBrowse(msg)
	}

	return s, nil
}

func (s *Screen) updateBrowse(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.items)-1 {
			s.cursor++
		}
	case "enter":
		return s.activate()
	}
	return s, nil
}

func (s *Screen) activate() (screen.Screen, tea.Cmd) {
	item := s.items[s.cursor]

	switch s.recordsByID()[item.ID].Status {
	case progression.StatusCompleted:
		s.statusLine = fmt.Sprintf("%s already completed", item.ID)
		return s, nil

	case progression.StatusInProgress:
		s.beginScoring(item.ID)
		return s, s.scoreInput.Init()

	default:
		if _, err := s.progress.Start(item.ID); err != nil {
			if errors.Is(err, progression.ErrLocked) {
				s.statusLine = "Locked: complete the prerequisites first"
			} else {
				s.statusLine = err.Error()
			}
			return s, nil
		}
		s.log.Track("start:" + item.ID)
		s.statusLine = fmt.Sprintf("Started %s. Press enter again to record a score.", item.ID)
		return s, s.persistCmd()
	}
}

func (s *Screen) beginScoring(itemID string) {
	s.mode = modeScoring
	s.scoringID = itemID
	s.scoreInput = components.NewScoreInput()
	s.statusLine = fmt.Sprintf("Enter a score for %s", itemID)
}

func (s *Screen) updateScoring(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeBrowse
		s.statusLine = ""
		return s, nil
	case "enter":
		score, ok := s.scoreInput.Score()
		if !ok {
			s.scoreInput.Submit(false)
			s.statusLine = "Score must be between 0 and 100"
			return s, nil
		}
		s.scoreInput.Submit(true)
		return s.complete(score)
	}

	var cmd tea.Cmd
	s.scoreInput, cmd = s.scoreInput.Update(msg)
	return s, cmd
}

func (s *Screen) complete(score int) (screen.Screen, tea.Cmd) {
	itemID := s.scoringID
	if _, err := s.progress.Complete(itemID, score); err != nil {
		s.statusLine = err.Error()
		s.mode = modeBrowse
		return s, nil
	}

	s.log.Track("complete:" + itemID)
	s.mode = modeBrowse
	s.scoringID = ""

	progress := s.progress
	repo := s.progressRepo
	svc := s.awardService
	return s, func() tea.Msg {
		ctx := context.Background()
		if repo != nil {
			if err := repo.SaveAll(ctx, progress.Records()); err != nil {
				return completedMsg{ItemID: itemID, Err: err}
			}
		}
		unlocked, err := svc.Evaluate(ctx, progress.Sessions())
		if err != nil {
			return completedMsg{ItemID: itemID, Err: err}
		}
		return completedMsg{ItemID: itemID, Unlocked: unlocked}
	}
}

func (s *Screen) persistCmd() tea.Cmd {
	if s.progressRepo == nil {
		return nil
	}
	progress := s.progress
	repo := s.progressRepo
	return func() tea.Msg {
		return persistedMsg{Err: repo.SaveAll(context.Background(), progress.Records())}
	}
}

func (s *Screen) View(width, height int) string {
	records := s.recordsByID()

	var b strings.Builder

	summary := s.progress.Summary()
	bar := components.NewProgressBar("Progress", float64(summary.Percent)/100, true, width-8)
	b.WriteString("  " + bar.View() + "\n\n")

	visible := height - 6
	if visible < 4 {
		visible = 4
	}
	offset := 0
	// Keep the cursor in the visible window, accounting for one track
	// heading per four sessions.
	rows := len(s.items) + len(curriculum.AllTracks())
	if rows > visible && s.cursor > visible/2 {
		offset = s.cursor - visible/2
	}

	line := 0
	var lastTrack curriculum.Track
	for i, item := range s.items {
		if item.Track != lastTrack {
			lastTrack = item.Track
			if line >= offset {
				b.WriteString("  " + theme.Subtitle.Align(lipgloss.Left).Render(
					curriculum.TrackDisplayName(item.Track)) + "\n")
			}
			line++
		}
		if line < offset {
			line++
			continue
		}
		if line-offset > visible {
			break
		}
		b.WriteString(s.renderItem(item, records[item.ID], i == s.cursor) + "\n")
		line++
	}

	if s.mode == modeScoring {
		b.WriteString("\n  Score: " + s.scoreInput.View() + "\n")
	}
	if s.statusLine != "" {
		b.WriteString("\n  " + theme.Hint.Render(s.statusLine) + "\n")
	}

	return b.String()
}

func (s *Screen) renderItem(item curriculum.Item, rec progression.Record, selected bool) string {
	var marker, label string
	style := theme.StatusLocked

	switch rec.Status {
	case progression.StatusCompleted:
		marker = "✓"
		style = theme.StatusCompleted
		if rec.Score != nil {
			label = fmt.Sprintf("  scored %d", *rec.Score)
		}
	case progression.StatusInProgress:
		marker = "▶"
		style = theme.StatusInProgress
		label = "  in progress"
	case progression.StatusAvailable:
		marker = "○"
		style = theme.StatusAvailable
	default:
		marker = "·"
		label = "  locked"
	}

	text := fmt.Sprintf("%s %-32s %-12s %2d min%s",
		marker, item.Title, item.Difficulty.String(), item.EstimatedMins, label)

	prefix := "    "
	if selected {
		prefix = "  ▸ "
		return prefix + theme.Selected.Render(text)
	}
	return prefix + style.Render(text)
}

func (s *Screen) recordsByID() map[string]progression.Record {
	out := make(map[string]progression.Record, len(s.items))
	for _, sess := range s.progress.Sessions() {
		out[sess.Record.ItemID] = sess.Record
	}
	return out
}
