package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/doubtbox/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// MultiChoice is a multiple-choice option picker. It only tracks which
// option the cursor is on and which the user has chosen; correctness is
// not its concern and is revealed elsewhere after the quiz completes.
type MultiChoice struct {
	Question string
	Options  []string
	Cursor   int
	// Chosen holds the value of the picked option, or "" if none yet.
	Chosen string
}

// NewMultiChoice creates a picker over the given options. If chosen is
// non-empty the cursor starts on that option.
func NewMultiChoice(question string, options []string, chosen string) MultiChoice {
	m := MultiChoice{
		Question: question,
		Options:  options,
		Chosen:   chosen,
	}
	for i, opt := range options {
		if opt == chosen {
			m.Cursor = i
			break
		}
	}
	return m
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "enter", " ":
		if m.Cursor >= 0 && m.Cursor < len(m.Options) {
			m.Chosen = m.Options[m.Cursor]
		}
	}

	return m, nil
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}

		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}

		mark := " "
		if opt == m.Chosen && m.Chosen != "" {
			mark = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, label, opt)

		switch {
		case opt == m.Chosen && m.Chosen != "":
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
		case i == m.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// HasChosen reports whether the user has picked an option.
func (m MultiChoice) HasChosen() bool {
	return m.Chosen != ""
}
