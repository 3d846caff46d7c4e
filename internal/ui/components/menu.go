package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/doubtbox/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu. Items with
// Heading set render as non-selectable section headings.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Heading  bool
	Disabled bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items, with the cursor on
// the first selectable one.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if selectable(item) {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

func selectable(item MenuItem) bool {
	return !item.Heading && !item.Disabled
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if selectable(m.Items[i]) {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if selectable(m.Items[i]) {
				m.Selected = i
				break
			}
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && selectable(item) {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		switch {
		case item.Heading:
			s += lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Bold(true).
				Render("  "+item.Label) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render("  ▸ "+item.Label) + "\n"
		default:
			s += theme.Unselected.Render("    "+item.Label) + "\n"
		}
	}
	return s
}
