package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/abhisek/doubtbox/internal/mcq"
)

// fakeExplainer counts calls and can block until released, for testing
// deduplication and stale-session handling.
type fakeExplainer struct {
	mu      sync.Mutex
	calls   int
	err     error
	entered chan struct{}
	release chan struct{}
}

func (f *fakeExplainer) ExplainMCQ(_ context.Context, question string, _ []string, _, _ string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()

	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return "", f.err
	}
	return "because: " + question, nil
}

func (f *fakeExplainer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testQuestions() []mcq.MCQ {
	return []mcq.MCQ{
		{Question: "Capital of France?", Options: []string{"Paris", "Lyon", "Nice", "Lille"}, Answer: "Paris"},
		{Question: "2+2?", Options: []string{"3", "4", "5", "6"}, Answer: "4"},
		{Question: "Red planet?", Options: []string{"Venus", "Mars", "Jupiter", "Saturn"}, Answer: "Mars"},
	}
}

// answerCurrent selects the given value for the current question and
// advances.
func answerCurrent(t *testing.T, e *Engine, value string) {
	t.Helper()
	if !e.Select(value) {
		t.Fatalf("Select(%q) rejected", value)
	}
	if !e.Advance() {
		t.Fatal("Advance rejected with a pending selection")
	}
}

func TestStartRejectsEmpty(t *testing.T) {
	e := NewEngine(&fakeExplainer{}, "General Science")
	if e.Start(nil) {
		t.Error("Start(nil) should return false")
	}
	if e.Start([]mcq.MCQ{}) {
		t.Error("Start(empty) should return false")
	}
	if e.Phase() != "" {
		t.Errorf("expected no phase, got %q", e.Phase())
	}
}

func TestFlowCompletesAfterLastQuestion(t *testing.T) {
	e := NewEngine(&fakeExplainer{}, "General Science")
	if !e.Start(testQuestions()) {
		t.Fatal("Start rejected valid questions")
	}
	if e.Phase() != PhasePresenting {
		t.Fatalf("expected presenting, got %q", e.Phase())
	}

	for i := 0; i < 3; i++ {
		cur, ok := e.Current()
		if !ok {
			t.Fatalf("no current question at index %d", i)
		}
		answerCurrent(t, e, cur.Options[0])
	}

	if e.Phase() != PhaseCompleted {
		t.Errorf("expected completed after last answer, got %q", e.Phase())
	}
	if e.Advance() {
		t.Error("Advance should be a no-op once completed")
	}
	if e.Select("Paris") {
		t.Error("Select should be a no-op once completed")
	}
}

func TestAdvanceRequiresPendingSelection(t *testing.T) {
	e := NewEngine(&fakeExplainer{}, "General Science")
	e.Start(testQuestions())

	if e.Advance() {
		t.Error("Advance without a selection should be a no-op")
	}
	if e.Select("not an option") {
		t.Error("Select with an unknown value should be rejected")
	}
	if _, ok := e.Pending(); ok {
		t.Error("rejected Select should leave no pending value")
	}
}

func TestScoreByValueSurvivesShuffle(t *testing.T) {
	// Whatever permutation each seed produces, picking the correct value
	// must always yield a perfect score.
	for seed := uint64(0); seed < 20; seed++ {
		r := rand.New(rand.NewPCG(seed, seed))
		e := NewEngine(&fakeExplainer{}, "General Science", WithRand(r))
		e.Start(testQuestions())

		want := []string{"Paris", "4", "Mars"}
		for i := 0; i < 3; i++ {
			answerCurrent(t, e, want[i])
		}

		score, ok := e.Score()
		if !ok {
			t.Fatalf("seed %d: Score unavailable after completion", seed)
		}
		if score != 3 {
			t.Errorf("seed %d: score = %d, want 3", seed, score)
		}
	}
}

func TestScoreAndPercent(t *testing.T) {
	e := NewEngine(&fakeExplainer{}, "General Science")
	e.Start(testQuestions())

	if _, ok := e.Score(); ok {
		t.Error("Score should be unavailable before completion")
	}

	answerCurrent(t, e, "Paris") // correct
	answerCurrent(t, e, "3")     // wrong
	answerCurrent(t, e, "Venus") // wrong

	score, ok := e.Score()
	if !ok || score != 1 {
		t.Errorf("score = %d (ok=%v), want 1", score, ok)
	}
	percent, ok := e.Percent()
	if !ok || percent != 33 {
		t.Errorf("percent = %d (ok=%v), want 33", percent, ok)
	}
	if !e.Correct(0) || e.Correct(1) || e.Correct(2) {
		t.Error("per-question correctness mismatch")
	}
}

func TestShuffleIsUniform(t *testing.T) {
	// Over many shuffles each option should land in each slot about
	// equally often. A biased shuffle (e.g. sort-by-random-comparator)
	// fails these bounds with overwhelming probability.
	const runs = 4000
	r := rand.New(rand.NewPCG(7, 7))
	e := NewEngine(&fakeExplainer{}, "General Science", WithRand(r))

	q := []mcq.MCQ{{
		Question: "pick one",
		Options:  []string{"a", "b", "c", "d"},
		Answer:   "a",
	}}

	positions := make([]int, 4)
	for i := 0; i < runs; i++ {
		e.Start(q)
		cur, _ := e.Current()
		for pos, opt := range cur.Options {
			if opt == "a" {
				positions[pos]++
			}
		}
	}

	for pos, n := range positions {
		if n < 800 || n > 1200 {
			t.Errorf("option 'a' at position %d in %d/%d runs, expected ~%d", pos, n, runs, runs/4)
		}
	}
}

func TestRetryRestartsFromOriginals(t *testing.T) {
	e := NewEngine(&fakeExplainer{}, "General Science")
	e.Start(testQuestions())

	if e.Retry() {
		t.Error("Retry should be rejected before completion")
	}

	answerCurrent(t, e, "Paris")
	answerCurrent(t, e, "3")
	answerCurrent(t, e, "Venus")

	if !e.Retry() {
		t.Fatal("Retry rejected after completion")
	}
	if e.Phase() != PhasePresenting {
		t.Errorf("expected presenting after retry, got %q", e.Phase())
	}
	if _, ok := e.Answer(0); ok {
		t.Error("answers should be cleared by retry")
	}

	// Question order and content must come from the originals.
	want := testQuestions()
	for i := range want {
		got, ok := e.Question(i)
		if !ok {
			t.Fatalf("question %d missing after retry", i)
		}
		if got.Question != want[i].Question || got.Answer != want[i].Answer {
			t.Errorf("question %d changed after retry: got %q", i, got.Question)
		}
	}
}

func completeAll(t *testing.T, e *Engine) {
	t.Helper()
	for e.Phase() == PhasePresenting {
		cur, _ := e.Current()
		answerCurrent(t, e, cur.Options[0])
	}
}

func TestExplanationGatedUntilCompleted(t *testing.T) {
	fe := &fakeExplainer{}
	e := NewEngine(fe, "General Science")

	if _, err := e.Explanation(context.Background(), 0); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}

	e.Start(testQuestions())
	if _, err := e.Explanation(context.Background(), 0); !errors.Is(err, ErrNotCompleted) {
		t.Errorf("expected ErrNotCompleted, got %v", err)
	}

	completeAll(t, e)
	if _, err := e.Explanation(context.Background(), 99); !errors.Is(err, ErrBadIndex) {
		t.Errorf("expected ErrBadIndex, got %v", err)
	}
	if fe.callCount() != 0 {
		t.Errorf("no fetches expected, got %d", fe.callCount())
	}
}

func TestExplanationCachedPerQuestion(t *testing.T) {
	fe := &fakeExplainer{}
	e := NewEngine(fe, "General Science")
	e.Start(testQuestions())
	completeAll(t, e)

	first, err := e.Explanation(context.Background(), 1)
	if err != nil {
		t.Fatalf("Explanation: %v", err)
	}
	second, err := e.Explanation(context.Background(), 1)
	if err != nil {
		t.Fatalf("Explanation (cached): %v", err)
	}
	if first != second {
		t.Errorf("cached text differs: %q vs %q", first, second)
	}
	if fe.callCount() != 1 {
		t.Errorf("expected 1 fetch, got %d", fe.callCount())
	}

	if _, ok := e.CachedExplanation(0); ok {
		t.Error("index 0 should not be cached yet")
	}
	if text, ok := e.CachedExplanation(1); !ok || text != first {
		t.Error("index 1 should be cached")
	}
}

func TestExplanationErrorNotCached(t *testing.T) {
	fe := &fakeExplainer{err: fmt.Errorf("model down")}
	e := NewEngine(fe, "General Science")
	e.Start(testQuestions())
	completeAll(t, e)

	if _, err := e.Explanation(context.Background(), 0); err == nil {
		t.Fatal("expected error from explainer")
	}

	// A failed fetch must not poison the cache; the next request retries.
	fe.err = nil
	text, err := e.Explanation(context.Background(), 0)
	if err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	if text == "" {
		t.Error("expected explanation text on retry")
	}
	if fe.callCount() != 2 {
		t.Errorf("expected 2 fetches, got %d", fe.callCount())
	}
}

func TestExplanationDedupsConcurrentRequests(t *testing.T) {
	fe := &fakeExplainer{
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	e := NewEngine(fe, "General Science")
	e.Start(testQuestions())
	completeAll(t, e)

	results := make(chan string, 2)
	go func() {
		text, _ := e.Explanation(context.Background(), 0)
		results <- text
	}()
	<-fe.entered // first fetch is inside the explainer

	go func() {
		text, _ := e.Explanation(context.Background(), 0)
		results <- text
	}()

	close(fe.release)

	a, b := <-results, <-results
	if a != b {
		t.Errorf("waiters got different text: %q vs %q", a, b)
	}
	if fe.callCount() != 1 {
		t.Errorf("expected 1 fetch for concurrent requests, got %d", fe.callCount())
	}
}

func TestExplanationFromReplacedSessionIsDropped(t *testing.T) {
	fe := &fakeExplainer{
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	e := NewEngine(fe, "General Science")
	e.Start(testQuestions())
	completeAll(t, e)

	done := make(chan struct{})
	go func() {
		_, _ = e.Explanation(context.Background(), 0)
		close(done)
	}()
	<-fe.entered

	// Supersede the session while the fetch is in flight.
	if !e.Retry() {
		t.Fatal("Retry rejected")
	}

	close(fe.release)
	<-done

	// The reply belonged to the old session and must not appear in the
	// new one's cache.
	if _, ok := e.CachedExplanation(0); ok {
		t.Error("stale explanation leaked into the new session")
	}
}
