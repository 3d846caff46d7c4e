// Package quiz implements the practice quiz screen: question
// presentation, the results review, retries, and on-demand answer
// explanations.
package quiz

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/doubtbox/internal/quiz"
	"github.com/abhisek/doubtbox/internal/router"
	"github.com/abhisek/doubtbox/internal/screen"
	"github.com/abhisek/doubtbox/internal/store"
	"github.com/abhisek/doubtbox/internal/ui/components"
	"github.com/abhisek/doubtbox/internal/ui/layout"
)

// explanationMsg is sent when an answer explanation arrives. The engine
// drops writes from replaced sessions itself; Index routes the result to
// the right row for display.
type explanationMsg struct {
	Index int
	Text  string
	Err   error
}

// QuizScreen implements screen.Screen over the quiz engine.
type QuizScreen struct {
	engine    *quiz.Engine
	subject   string
	eventRepo store.EventRepo

	picker components.MultiChoice

	resultCursor int
	explLoading  map[int]bool
	explErr      map[int]string

	retried bool
	logged  bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen over an engine with a started session.
func New(engine *quiz.Engine, subject string, eventRepo store.EventRepo) *QuizScreen {
	return &QuizScreen{
		engine:      engine,
		subject:     subject,
		eventRepo:   eventRepo,
		explLoading: map[int]bool{},
		explErr:     map[int]string{},
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	q.refreshPicker()
	return nil
}

func (q *QuizScreen) Title() string {
	index, total := q.engine.Progress()
	if q.engine.Phase() == quiz.PhaseCompleted {
		return "Quiz Results"
	}
	return fmt.Sprintf("Quiz %d/%d", index+1, total)
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.engine.Phase() == quiz.PhaseCompleted {
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Move"},
			{Key: "E", Description: "Explain"},
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back to chat"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
		{Key: "N", Description: "Next"},
	}
}

// refreshPicker rebuilds the option picker for the current question.
func (q *QuizScreen) refreshPicker() {
	cur, ok := q.engine.Current()
	if !ok {
		return
	}
	chosen, _ := q.engine.Pending()
	q.picker = components.NewMultiChoice(cur.Question, cur.Options, chosen)
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case explanationMsg:
		return q.handleExplanation(msg)
	case tea.KeyMsg:
		if q.engine.Phase() == quiz.PhaseCompleted {
			return q.handleResultsKey(msg)
		}
		return q.handlePresentingKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handlePresentingKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "n":
		if !q.engine.Advance() {
			return q, nil
		}
		if q.engine.Phase() == quiz.PhaseCompleted {
			return q, q.logResult()
		}
		q.refreshPicker()
		return q, nil
	}

	var cmd tea.Cmd
	q.picker, cmd = q.picker.Update(msg)
	if q.picker.HasChosen() {
		q.engine.Select(q.picker.Chosen)
	}
	return q, cmd
}

func (q *QuizScreen) handleResultsKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	_, total := q.engine.Progress()

	switch msg.String() {
	case "up", "k":
		if q.resultCursor > 0 {
			q.resultCursor--
		}
	case "down", "j":
		if q.resultCursor < total-1 {
			q.resultCursor++
		}
	case "e", "enter":
		return q, q.requestExplanation(q.resultCursor)
	case "r":
		if q.engine.Retry() {
			q.retried = true
			q.logged = false
			q.resultCursor = 0
			q.explLoading = map[int]bool{}
			q.explErr = map[int]string{}
			q.refreshPicker()
		}
	case "esc", "q":
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return q, nil
}

// requestExplanation kicks off a fetch for index unless one is already
// displayed or in flight here. The engine deduplicates concurrent
// fetches and caches results for the life of the run.
func (q *QuizScreen) requestExplanation(index int) tea.Cmd {
	if q.explLoading[index] {
		return nil
	}
	if _, ok := q.engine.CachedExplanation(index); ok {
		return nil
	}

	q.explLoading[index] = true
	delete(q.explErr, index)

	engine := q.engine
	return func() tea.Msg {
		text, err := engine.Explanation(context.Background(), index)
		return explanationMsg{Index: index, Text: text, Err: err}
	}
}

func (q *QuizScreen) handleExplanation(msg explanationMsg) (screen.Screen, tea.Cmd) {
	delete(q.explLoading, msg.Index)
	if msg.Err != nil {
		q.explErr[msg.Index] = "Could not fetch an explanation. Try again."
	}
	// Successful text is read back from the engine cache at render time.
	return q, nil
}

// logResult appends the quiz result event once per run.
func (q *QuizScreen) logResult() tea.Cmd {
	if q.logged {
		return nil
	}
	q.logged = true

	score, ok := q.engine.Score()
	if !ok {
		return nil
	}
	_, total := q.engine.Progress()

	data := store.QuizResultEventData{
		Subject: q.subject,
		Total:   total,
		Correct: score,
		Retried: q.retried,
	}
	repo := q.eventRepo
	return func() tea.Msg {
		_ = repo.AppendQuizResult(context.Background(), data)
		return nil
	}
}
