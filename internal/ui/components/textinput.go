package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rsarma/maestro/internal/ui/theme"
)

// ScoreInput wraps bubbles/textinput for entering a 0-100 session score.
type ScoreInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

// NewScoreInput creates a focused numeric input.
func NewScoreInput() ScoreInput {
	ti := textinput.New()
	ti.Placeholder = "0-100"
	ti.CharLimit = 3
	ti.Focus()
	return ScoreInput{Model: ti}
}

// Init returns the initial command.
func (s ScoreInput) Init() tea.Cmd {
	return s.Model.Focus()
}

// Update handles messages, swallowing non-digit character keys.
func (s ScoreInput) Update(msg tea.Msg) (ScoreInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the input with a validation mark after submission.
func (s ScoreInput) View() string {
	view := s.Model.View()
	if s.submitted {
		if s.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Score returns the entered value, reporting whether it parses into the
// 0-100 range.
func (s ScoreInput) Score() (int, bool) {
	n, err := strconv.Atoi(s.Model.Value())
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return n, true
}

// Submit marks the input as submitted with a validation result.
func (s *ScoreInput) Submit(valid bool) {
	s.submitted = true
	s.valid = valid
}

// Reset clears the value and submission state.
func (s *ScoreInput) Reset() {
	s.Model.SetValue("")
	s.submitted = false
	s.valid = false
}
