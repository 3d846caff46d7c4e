package quiz

import (
	"context"

	"github.com/google/uuid"

	"github.com/abhisek/doubtbox/internal/mcq"
)

// session is the state of one quiz run. Start and Retry replace it
// wholesale rather than mutating in place, so "is this explanation reply
// stale?" is a single identity comparison.
type session struct {
	id uuid.UUID

	// original is the canonical question list as received, never mutated;
	// Retry reshuffles from it.
	original []mcq.MCQ

	// presented holds per-question shuffled copies. Question order matches
	// original; only each question's options are permuted.
	presented []mcq.MCQ

	current int
	pending string
	answers map[int]string
	phase   Phase

	// explanations caches fetched explanation text by question index.
	// Append-only within a session; Retry discards it with the session.
	explanations map[int]string

	// inflight dedups concurrent explanation requests per index.
	inflight map[int]*explainCall
}

// explainCall is one in-flight explanation fetch. Waiters block on done
// and read text/err afterwards.
type explainCall struct {
	done chan struct{}
	text string
	err  error
}

// newSession builds a fresh session from the given canonical questions,
// shuffling each question's options independently. Caller holds e.mu.
func (e *Engine) newSession(original []mcq.MCQ) *session {
	presented := make([]mcq.MCQ, len(original))
	for i, q := range original {
		c := q.Clone()
		e.shuffle(len(c.Options), func(a, b int) {
			c.Options[a], c.Options[b] = c.Options[b], c.Options[a]
		})
		presented[i] = c
	}

	return &session{
		id:           uuid.New(),
		original:     original,
		presented:    presented,
		answers:      make(map[int]string),
		phase:        PhasePresenting,
		explanations: make(map[int]string),
		inflight:     make(map[int]*explainCall),
	}
}

// Explanation returns the explanation for the question at index, fetching
// it from the explainer on first request. Valid only once completed.
//
// Concurrency: requests for distinct indices run independently; a second
// request for an index already in flight waits on the first call instead
// of issuing a duplicate. If the session is superseded (Start or Retry)
// while a fetch is in flight, the reply is returned to its waiters but
// never written into the new session's cache.
func (e *Engine) Explanation(ctx context.Context, index int) (string, error) {
	e.mu.Lock()

	s := e.s
	if s == nil {
		e.mu.Unlock()
		return "", ErrNoSession
	}
	if s.phase != PhaseCompleted {
		e.mu.Unlock()
		return "", ErrNotCompleted
	}
	if index < 0 || index >= len(s.presented) {
		e.mu.Unlock()
		return "", ErrBadIndex
	}

	if text, ok := s.explanations[index]; ok {
		e.mu.Unlock()
		return text, nil
	}

	if call, ok := s.inflight[index]; ok {
		e.mu.Unlock()
		<-call.done
		return call.text, call.err
	}

	call := &explainCall{done: make(chan struct{})}
	s.inflight[index] = call
	q := s.presented[index]
	sid := s.id
	e.mu.Unlock()

	text, err := e.explainer.ExplainMCQ(ctx, q.Question, q.Options, q.Answer, e.subject)
	call.text, call.err = text, err

	e.mu.Lock()
	if e.s != nil && e.s.id == sid {
		if err == nil {
			e.s.explanations[index] = text
		}
		delete(e.s.inflight, index)
	}
	e.mu.Unlock()

	close(call.done)
	return text, err
}

// CachedExplanation returns the explanation at index if it has already
// been fetched, without triggering a fetch.
func (e *Engine) CachedExplanation(index int) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.s == nil {
		return "", false
	}
	text, ok := e.s.explanations[index]
	return text, ok
}
