package tutor

import (
	"testing"

	"github.com/abhisek/doubtbox/internal/mcq"
)

func TestAssembleConversation(t *testing.T) {
	got := Assemble(Conversation{Text: "hello"})
	if got.Text != "hello" || len(got.MCQs) != 0 {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestAssembleDoubtAppendsQuizIntro(t *testing.T) {
	qs := []mcq.MCQ{{Question: "q", Options: []string{"a", "b"}, Answer: "a"}}
	got := Assemble(DoubtExplanation{
		Explanation: "Here is why.",
		MCQs:        qs,
		QuizIntro:   "Now test yourself!",
	})

	want := "Here is why.\n\nNow test yourself!"
	if got.Text != want {
		t.Errorf("text = %q, want %q", got.Text, want)
	}
	if len(got.MCQs) != 1 {
		t.Errorf("expected quiz to pass through, got %d questions", len(got.MCQs))
	}
}

func TestAssembleDoubtWithoutIntro(t *testing.T) {
	got := Assemble(DoubtExplanation{Explanation: "Just the answer."})
	if got.Text != "Just the answer." {
		t.Errorf("text = %q", got.Text)
	}
}

func TestAssemblePerspective(t *testing.T) {
	got := Assemble(PerspectiveExplanation{Explanation: "Many views exist."})
	if got.Text != "Many views exist." || len(got.MCQs) != 0 {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestAssembleDegradesToFallback(t *testing.T) {
	cases := []struct {
		name string
		env  Envelope
	}{
		{"nil envelope", nil},
		{"conversation without text", Conversation{}},
		{"doubt without explanation", DoubtExplanation{MCQs: []mcq.MCQ{{Question: "q", Options: []string{"a"}, Answer: "a"}}}},
		{"perspective without explanation", PerspectiveExplanation{}},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := Assemble(tt.env)
			if got.Text != FallbackMessage {
				t.Errorf("text = %q, want fallback", got.Text)
			}
			if len(got.MCQs) != 0 {
				t.Error("fallback must not carry a quiz")
			}
		})
	}
}

func TestAssembleIsDeterministic(t *testing.T) {
	env := DoubtExplanation{Explanation: "e", QuizIntro: "i"}
	a, b := Assemble(env), Assemble(env)
	if a.Text != b.Text || len(a.MCQs) != len(b.MCQs) {
		t.Error("same envelope produced different results")
	}
}
