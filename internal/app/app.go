package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/doubtbox/internal/quiz"
	"github.com/abhisek/doubtbox/internal/router"
	"github.com/abhisek/doubtbox/internal/screen"
	"github.com/abhisek/doubtbox/internal/screens/chat"
	"github.com/abhisek/doubtbox/internal/store"
	"github.com/abhisek/doubtbox/internal/subjects"
	"github.com/abhisek/doubtbox/internal/tutor"
	"github.com/abhisek/doubtbox/internal/ui/layout"
)

// Options carries the wired dependencies for the TUI.
type Options struct {
	Classifier *tutor.Classifier
	Explainer  quiz.Explainer
	EventRepo  store.EventRepo
}

// subjectProvider lets a screen surface its active subject in the
// header.
type subjectProvider interface {
	Subject() string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the chat screen as root.
func newAppModel(opts Options) AppModel {
	chatScreen := chat.New(opts.Classifier, opts.Explainer, opts.EventRepo)
	return AppModel{
		router: router.New(chatScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
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
	subject := subjects.Default
	if active != nil {
		title = active.Title()
	}
	// The subject shown in the header belongs to the chat screen at the
	// bottom of the stack, even while the quiz is on top.
	if sp, ok := m.router.Root().(subjectProvider); ok {
		subject = sp.Subject()
	}

	header := layout.RenderHeader(title, subject, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), footerHints...)
	}

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

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
