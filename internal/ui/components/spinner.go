package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/doubtbox/internal/ui/theme"
)

// Thinking is the animated indicator shown while waiting on a model
// reply.
type Thinking struct {
	Model spinner.Model
	Label string
}

// NewThinking creates the indicator with the given label.
func NewThinking(label string) Thinking {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return Thinking{Model: sp, Label: label}
}

// Init starts the spinner tick.
func (t Thinking) Init() tea.Cmd {
	return t.Model.Tick
}

// Update advances the spinner animation.
func (t Thinking) Update(msg tea.Msg) (Thinking, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the spinner with its label.
func (t Thinking) View() string {
	return t.Model.View() + " " + theme.Hint.Render(t.Label)
}
