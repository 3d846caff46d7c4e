// Package mcq holds the multiple-choice question value type shared by the
// tutor and quiz packages.
package mcq

// MCQ is one multiple-choice question. Answer identifies the correct option
// by value, never by position: option order is randomized per presentation,
// so nothing may rely on index stability.
type MCQ struct {
	Question string
	Options  []string
	Answer   string
}

// Valid reports whether the answer appears verbatim among the options.
// A question failing this can never be scored and is dropped upstream.
func (m MCQ) Valid() bool {
	return m.Question != "" && len(m.Options) > 0 && m.AnswerIndex() >= 0
}

// AnswerIndex returns the current position of the correct option, or -1.
// The result is only meaningful for the Options slice it was asked about;
// a reshuffle invalidates it.
func (m MCQ) AnswerIndex() int {
	for i, opt := range m.Options {
		if opt == m.Answer {
			return i
		}
	}
	return -1
}

// HasOption reports whether value is one of the options.
func (m MCQ) HasOption(value string) bool {
	for _, opt := range m.Options {
		if opt == value {
			return true
		}
	}
	return false
}

// Clone returns a deep copy, so callers can shuffle options without
// touching the original.
func (m MCQ) Clone() MCQ {
	options := make([]string, len(m.Options))
	copy(options, m.Options)
	return MCQ{
		Question: m.Question,
		Options:  options,
		Answer:   m.Answer,
	}
}
