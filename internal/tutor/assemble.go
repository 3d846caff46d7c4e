package tutor

import "github.com/abhisek/doubtbox/internal/mcq"

// FallbackMessage is shown when the model's envelope is missing the field
// its own tag requires. Degrading to a fixed apology keeps the turn
// renderable instead of failing it.
const FallbackMessage = "I'm sorry, I couldn't process that request. Could you try rephrasing it?"

// Assemble collapses an envelope into display text plus a quiz list.
// Pure and deterministic: no I/O, same envelope in, same result out.
func Assemble(env Envelope) Assembled {
	switch e := env.(type) {
	case Conversation:
		if e.Text == "" {
			return fallback()
		}
		return Assembled{Text: e.Text}

	case DoubtExplanation:
		if e.Explanation == "" {
			return fallback()
		}
		text := e.Explanation
		if e.QuizIntro != "" {
			text += "\n\n" + e.QuizIntro
		}
		return Assembled{Text: text, MCQs: e.MCQs}

	case PerspectiveExplanation:
		if e.Explanation == "" {
			return fallback()
		}
		return Assembled{Text: e.Explanation}

	default:
		// Includes nil envelopes from callers that ignored an error.
		return fallback()
	}
}

func fallback() Assembled {
	return Assembled{Text: FallbackMessage, MCQs: []mcq.MCQ(nil)}
}
