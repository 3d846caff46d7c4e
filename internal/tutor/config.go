package tutor

// Config holds generation limits for the tutoring flows.
type Config struct {
	// ClassifyMaxTokens caps one classified turn: explanation plus up to
	// three quiz questions.
	ClassifyMaxTokens int

	// ExplainMaxTokens caps one per-question answer explanation.
	ExplainMaxTokens int

	// Temperature for both flows. Slightly above zero so conversational
	// replies don't read canned.
	Temperature float64
}

// DefaultConfig returns the default tutoring limits.
func DefaultConfig() Config {
	return Config{
		ClassifyMaxTokens: 4096,
		ExplainMaxTokens:  1024,
		Temperature:       0.3,
	}
}
