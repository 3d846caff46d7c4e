// Package chat implements the main tutoring screen: a transcript, a
// message input, a subject picker, and image attachment. Turns that
// produce practice questions push the quiz screen.
package chat

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/doubtbox/internal/imaging"
	"github.com/abhisek/doubtbox/internal/llm"
	"github.com/abhisek/doubtbox/internal/quiz"
	"github.com/abhisek/doubtbox/internal/router"
	"github.com/abhisek/doubtbox/internal/screen"
	quizscreen "github.com/abhisek/doubtbox/internal/screens/quiz"
	"github.com/abhisek/doubtbox/internal/store"
	"github.com/abhisek/doubtbox/internal/subjects"
	"github.com/abhisek/doubtbox/internal/tutor"
	"github.com/abhisek/doubtbox/internal/ui/components"
	"github.com/abhisek/doubtbox/internal/ui/layout"
)

// role identifies who wrote a transcript entry.
type role int

const (
	roleUser role = iota
	roleTutor
)

// entry is one transcript line pair: who said it and what.
type entry struct {
	Role     role
	Text     string
	HadImage bool
}

// ChatScreen implements screen.Screen for the tutoring conversation.
type ChatScreen struct {
	classifier *tutor.Classifier
	explainer  quiz.Explainer
	eventRepo  store.EventRepo

	subject    string
	transcript []entry
	input      components.TextInput
	thinking   components.Thinking
	loading    bool

	// attachMode repurposes the input for an image path.
	attachMode   bool
	pendingImage *llm.ImageAttachment
	pendingPath  string

	// picker overlays the subject menu when non-nil.
	picker *components.Menu

	errMsg string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates the chat screen with injected dependencies.
func New(classifier *tutor.Classifier, explainer quiz.Explainer, eventRepo store.EventRepo) *ChatScreen {
	return &ChatScreen{
		classifier: classifier,
		explainer:  explainer,
		eventRepo:  eventRepo,
		subject:    subjects.Default,
		input:      components.NewTextInput("Ask your doubt...", 500),
		thinking:   components.NewThinking("thinking..."),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Title() string {
	return "Chat"
}

// Subject returns the active subject label, shown in the header.
func (c *ChatScreen) Subject() string {
	return c.subject
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	if c.picker != nil {
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Move"},
			{Key: "Enter", Description: "Pick subject"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if c.attachMode {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Attach image"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+O", Description: "Attach image"},
		{Key: "Ctrl+S", Description: "Subject"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case turnDoneMsg:
		return c.handleTurnDone(msg)

	case imageLoadedMsg:
		return c.handleImageLoaded(msg)

	case subjectPickedMsg:
		c.subject = msg.Subject
		c.picker = nil
		return c, c.input.Focus()

	case tea.KeyMsg:
		return c.handleKey(msg)
	}

	if c.loading {
		var cmd tea.Cmd
		c.thinking, cmd = c.thinking.Update(msg)
		return c, cmd
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c *ChatScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if c.picker != nil {
		if key == "esc" {
			c.picker = nil
			return c, c.input.Focus()
		}
		m, cmd := c.picker.Update(msg)
		c.picker = &m
		return c, cmd
	}

	if c.loading {
		// Input is held while a turn is in flight.
		return c, nil
	}

	if c.attachMode {
		switch key {
		case "esc":
			c.attachMode = false
			c.input = components.NewTextInput("Ask your doubt...", 500)
			return c, c.input.Init()
		case "enter":
			path := c.input.Value()
			if path == "" {
				return c, nil
			}
			return c, loadImageCmd(path)
		}
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}

	switch key {
	case "esc":
		return c, tea.Quit
	case "ctrl+o":
		c.attachMode = true
		c.input = components.NewTextInput("Path to image...", 300)
		return c, c.input.Init()
	case "ctrl+s":
		c.openSubjectPicker()
		return c, nil
	case "enter":
		return c.sendTurn()
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// openSubjectPicker builds the grouped subject menu overlay.
func (c *ChatScreen) openSubjectPicker() {
	var items []components.MenuItem
	lastGroup := ""
	for _, s := range subjects.All() {
		if s.Group != lastGroup {
			items = append(items, components.MenuItem{Label: s.Group, Heading: true})
			lastGroup = s.Group
		}
		name := s.Name
		items = append(items, components.MenuItem{
			Label: name,
			Action: func() tea.Cmd {
				return func() tea.Msg { return subjectPickedMsg{Subject: name} }
			},
		})
	}
	m := components.NewMenu(items)
	c.picker = &m
}

// sendTurn submits the typed message plus any pending attachment.
func (c *ChatScreen) sendTurn() (screen.Screen, tea.Cmd) {
	text := c.input.Value()
	if text == "" && c.pendingImage == nil {
		return c, nil
	}

	c.transcript = append(c.transcript, entry{
		Role:     roleUser,
		Text:     text,
		HadImage: c.pendingImage != nil,
	})

	input := tutor.Input{
		Text:    text,
		Subject: c.subject,
		Image:   c.pendingImage,
	}
	c.pendingImage = nil
	c.pendingPath = ""
	c.input.Reset()
	c.loading = true
	c.errMsg = ""

	return c, tea.Batch(c.classifyCmd(input), c.thinking.Init())
}

// classifyCmd runs the turn against the model off the UI loop.
func (c *ChatScreen) classifyCmd(input tutor.Input) tea.Cmd {
	classifier := c.classifier
	return func() tea.Msg {
		env, err := classifier.Classify(context.Background(), input)
		if err != nil {
			return turnDoneMsg{Assembled: tutor.Assemble(nil), Kind: "error", Err: err}
		}
		return turnDoneMsg{Assembled: tutor.Assemble(env), Kind: envelopeKind(env)}
	}
}

func envelopeKind(env tutor.Envelope) string {
	switch env.(type) {
	case tutor.Conversation:
		return "conversation"
	case tutor.DoubtExplanation:
		return "doubt_explanation"
	case tutor.PerspectiveExplanation:
		return "perspective_explanation"
	default:
		return "error"
	}
}

func (c *ChatScreen) handleTurnDone(msg turnDoneMsg) (screen.Screen, tea.Cmd) {
	c.loading = false
	c.transcript = append(c.transcript, entry{Role: roleTutor, Text: msg.Assembled.Text})

	hadImage := false
	if n := len(c.transcript); n >= 2 {
		hadImage = c.transcript[n-2].HadImage
	}
	_ = c.eventRepo.AppendChatTurn(context.Background(), store.ChatTurnEventData{
		Subject:      c.subject,
		ResponseKind: msg.Kind,
		MCQCount:     len(msg.Assembled.MCQs),
		HadImage:     hadImage,
	})

	cmd := c.input.Focus()

	if len(msg.Assembled.MCQs) > 0 {
		engine := quiz.NewEngine(c.explainer, c.subject)
		if engine.Start(msg.Assembled.MCQs) {
			qs := quizscreen.New(engine, c.subject, c.eventRepo)
			return c, tea.Batch(cmd, func() tea.Msg {
				return router.PushScreenMsg{Screen: qs}
			})
		}
	}

	return c, cmd
}

func loadImageCmd(path string) tea.Cmd {
	return func() tea.Msg {
		img, err := imaging.Load(path)
		return imageLoadedMsg{Path: path, Image: img, Err: err}
	}
}

func (c *ChatScreen) handleImageLoaded(msg imageLoadedMsg) (screen.Screen, tea.Cmd) {
	c.attachMode = false
	c.input = components.NewTextInput("Ask your doubt...", 500)

	if msg.Err != nil {
		c.errMsg = msg.Err.Error()
		return c, c.input.Init()
	}

	c.pendingImage = msg.Image
	c.pendingPath = msg.Path
	c.errMsg = ""
	return c, c.input.Init()
}
