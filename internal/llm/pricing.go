package llm

// ModelCost holds per-million-token pricing for a model, in USD.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost calculates the total USD cost for the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns the pricing for a model ID, or nil if unknown.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	return nil
}

// modelCosts is the embedded pricing table, sourced from models.dev.
// Last updated: 2026-02-15.
var modelCosts = map[string]ModelCost{
	// Anthropic
	"claude-3-5-haiku-20241022":  {0.8, 4},
	"claude-3-5-haiku-latest":    {0.8, 4},
	"claude-3-5-sonnet-20241022": {3, 15},
	"claude-3-7-sonnet-20250219": {3, 15},
	"claude-3-haiku-20240307":    {0.25, 1.25},
	"claude-haiku-4-5":           {1, 5},
	"claude-haiku-4-5-20251001":  {1, 5},
	"claude-opus-4-1":            {15, 75},
	"claude-opus-4-5":            {5, 25},
	"claude-sonnet-4-0":          {3, 15},
	"claude-sonnet-4-20250514":   {3, 15},
	"claude-sonnet-4-5":          {3, 15},
	"claude-sonnet-4-5-20250929": {3, 15},

	// OpenAI
	"gpt-4.1":           {2, 8},
	"gpt-4.1-mini":      {0.4, 1.6},
	"gpt-4.1-nano":      {0.1, 0.4},
	"gpt-4o":            {2.5, 10},
	"gpt-4o-2024-11-20": {2.5, 10},
	"gpt-4o-mini":       {0.15, 0.6},
	"gpt-5":             {1.25, 10},
	"gpt-5-mini":        {0.25, 2},
	"gpt-5-nano":        {0.05, 0.4},
	"o3":                {2, 8},
	"o3-mini":           {1.1, 4.4},
	"o4-mini":           {1.1, 4.4},

	// Google (Gemini)
	"gemini-1.5-flash":         {0.075, 0.3},
	"gemini-1.5-pro":           {1.25, 5},
	"gemini-2.0-flash":         {0.1, 0.4},
	"gemini-2.0-flash-lite":    {0.075, 0.3},
	"gemini-2.5-flash":         {0.3, 2.5},
	"gemini-2.5-flash-lite":    {0.1, 0.4},
	"gemini-2.5-pro":           {1.25, 10},
	"gemini-flash-latest":      {0.3, 2.5},
	"gemini-flash-lite-latest": {0.1, 0.4},
}
