// Package quiz runs the practice quiz over the MCQs a tutoring turn
// produced: presentation order, option shuffling, answer capture, scoring,
// and lazy per-question explanations.
package quiz

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/abhisek/doubtbox/internal/mcq"
)

// Phase is the engine's state machine phase.
type Phase string

const (
	// PhasePresenting means a question is on screen awaiting an answer.
	PhasePresenting Phase = "presenting"
	// PhaseCompleted means every question has been answered.
	PhaseCompleted Phase = "completed"
)

// Explainer produces an explanation of why answer is correct for question.
// The tutor package provides the model-backed implementation.
type Explainer interface {
	ExplainMCQ(ctx context.Context, question string, options []string, answer, subject string) (string, error)
}

var (
	// ErrNoSession is returned when no quiz has been started.
	ErrNoSession = errors.New("no active quiz session")
	// ErrNotCompleted is returned for operations valid only after the last
	// question was answered.
	ErrNotCompleted = errors.New("quiz not completed")
	// ErrBadIndex is returned for an out-of-range question index.
	ErrBadIndex = errors.New("question index out of range")
)

// Engine is the quiz state machine. One engine serves one learner; all
// methods are safe for the engine's own explanation goroutines, but the
// interactive operations are expected from a single logical thread.
type Engine struct {
	explainer Explainer
	subject   string
	shuffle   func(n int, swap func(i, j int))

	mu sync.Mutex
	s  *session
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand pins the shuffle source, for deterministic tests.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.shuffle = r.Shuffle }
}

// NewEngine creates an engine for the given subject. No session exists
// until Start.
func NewEngine(explainer Explainer, subject string, opts ...Option) *Engine {
	e := &Engine{
		explainer: explainer,
		subject:   subject,
		shuffle:   rand.Shuffle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start begins a fresh session over the given questions. Returns false
// (and starts nothing) for an empty list. Any previous session is replaced
// wholesale; explanations still in flight for it are dropped on arrival.
func (e *Engine) Start(questions []mcq.MCQ) bool {
	if len(questions) == 0 {
		return false
	}

	original := make([]mcq.MCQ, len(questions))
	for i, q := range questions {
		original[i] = q.Clone()
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.s = e.newSession(original)
	return true
}

// Retry restarts the session from the original questions with fresh
// shuffles. Valid only once completed; otherwise a no-op returning false.
func (e *Engine) Retry() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.s == nil || e.s.phase != PhaseCompleted {
		return false
	}
	e.s = e.newSession(e.s.original)
	return true
}

// Select records a tentative choice for the current question. Values not
// among the current question's options are ignored.
func (e *Engine) Select(value string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.s == nil || e.s.phase != PhasePresenting {
		return false
	}
	if !e.s.presented[e.s.current].HasOption(value) {
		return false
	}
	e.s.pending = value
	return true
}

// Advance commits the pending selection and moves on. A no-op without a
// pending selection. Completing the last question flips the phase.
func (e *Engine) Advance() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.s
	if s == nil || s.phase != PhasePresenting || s.pending == "" {
		return false
	}

	s.answers[s.current] = s.pending
	s.pending = ""

	if s.current == len(s.presented)-1 {
		s.phase = PhaseCompleted
	} else {
		s.current++
	}
	return true
}

// Phase returns the current phase, or "" when no session exists.
func (e *Engine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.s == nil {
		return ""
	}
	return e.s.phase
}

// Current returns the question being presented.
func (e *Engine) Current() (mcq.MCQ, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.s == nil || e.s.phase != PhasePresenting {
		return mcq.MCQ{}, false
	}
	return e.s.presented[e.s.current].Clone(), true
}

// Progress returns the current question index and the total count.
func (e *Engine) Progress() (index, total int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.s == nil {
		return 0, 0
	}
	return e.s.current, len(e.s.presented)
}

// Pending returns the tentative selection for the current question.
func (e *Engine) Pending() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.s == nil || e.s.pending == "" {
		return "", false
	}
	return e.s.pending, true
}

// Question returns the question at index in presentation order, for the
// results view.
func (e *Engine) Question(index int) (mcq.MCQ, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.s == nil || index < 0 || index >= len(e.s.presented) {
		return mcq.MCQ{}, false
	}
	return e.s.presented[index].Clone(), true
}

// Answer returns the committed answer for the question at index.
func (e *Engine) Answer(index int) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.s == nil {
		return "", false
	}
	a, ok := e.s.answers[index]
	return a, ok
}

// Correct reports whether the committed answer at index matches the
// correct option, by value.
func (e *Engine) Correct(index int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.s == nil || index < 0 || index >= len(e.s.presented) {
		return false
	}
	return e.s.answers[index] == e.s.presented[index].Answer
}

// Score counts correct answers. Valid only once completed. Comparison is
// by answer value, so the shuffle cannot corrupt scoring.
func (e *Engine) Score() (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.s
	if s == nil || s.phase != PhaseCompleted {
		return 0, false
	}

	score := 0
	for i, q := range s.presented {
		if s.answers[i] == q.Answer {
			score++
		}
	}
	return score, true
}

// Percent returns the score as a percentage rounded to the nearest integer.
func (e *Engine) Percent() (int, bool) {
	score, ok := e.Score()
	if !ok {
		return 0, false
	}
	_, total := e.Progress()
	return int(math.Round(100 * float64(score) / float64(total))), true
}
