package tutor

import (
	"github.com/abhisek/doubtbox/internal/llm"
	"github.com/abhisek/doubtbox/internal/mcq"
)

// Input is one learner turn handed to the classifier.
type Input struct {
	// Text is the learner's message. May be empty only when Image is set.
	Text string

	// Subject is the conversation's subject label. Context for the model
	// only; it is never validated against a fixed list here.
	Subject string

	// Image is an optional photo of the problem.
	Image *llm.ImageAttachment
}

// Envelope is the classified result of one turn. It is a closed sum:
// exactly one of Conversation, DoubtExplanation or PerspectiveExplanation,
// so consumers can switch exhaustively instead of probing optional fields.
type Envelope interface {
	envelope()
}

// Conversation is a casual reply to greetings, small talk, or simple
// non-academic questions.
type Conversation struct {
	Text string
}

// DoubtExplanation answers an academic question that has a single checkable
// answer. It may carry a practice quiz and a short message introducing it.
type DoubtExplanation struct {
	Explanation string
	MCQs        []mcq.MCQ
	QuizIntro   string
}

// PerspectiveExplanation answers an open-ended, value-laden question with a
// balanced multi-viewpoint treatment. Never carries a quiz.
type PerspectiveExplanation struct {
	Explanation string
}

func (Conversation) envelope()           {}
func (DoubtExplanation) envelope()       {}
func (PerspectiveExplanation) envelope() {}

// Assembled is the display-ready form of an envelope: one string for the
// chat transcript plus the quiz questions, possibly empty.
type Assembled struct {
	Text string
	MCQs []mcq.MCQ
}
