package store

import (
	"context"
	"time"
)

// EventRepo is the write/read interface for the append-only event log.
type EventRepo interface {
	// AppendLLMRequest records one model call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	// AppendChatTurn records the outcome of one tutoring turn.
	AppendChatTurn(ctx context.Context, data ChatTurnEventData) error
	// AppendQuizResult records one completed quiz run.
	AppendQuizResult(ctx context.Context, data QuizResultEventData) error

	// QueryLLMEvents returns model call events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventData, error)
	// GetLLMEvent returns a single model call event by row ID.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventData, error)
	// LLMUsageByPurpose aggregates model calls per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)
	// LLMUsageByModel aggregates model calls per model, for costing.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
	// Stats aggregates usage across the whole log.
	Stats(ctx context.Context) (*Stats, error)
}

// PurposeUsage is aggregated model usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// ModelUsage is aggregated model usage for one model ID.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// LLMRequestEventData carries the fields of one model call event.
// ID, Sequence and Timestamp are populated on reads and ignored on
// appends.
type LLMRequestEventData struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// ChatTurnEventData carries the fields of one chat turn event.
type ChatTurnEventData struct {
	Subject      string
	ResponseKind string
	MCQCount     int
	HadImage     bool
}

// QuizResultEventData carries the fields of one quiz result event.
type QuizResultEventData struct {
	Subject string
	Total   int
	Correct int
	Retried bool
}

// QueryOpts filters and limits event queries. Zero values mean
// unfiltered.
type QueryOpts struct {
	Limit   int
	Purpose string
	Model   string
	// OnlyErrors restricts results to failed calls.
	OnlyErrors bool
	Since      time.Time
}

// Stats summarizes the event log for the stats command.
type Stats struct {
	TotalLLMCalls     int
	FailedLLMCalls    int
	TotalInputTokens  int
	TotalOutputTokens int
	CallsByModel      map[string]int
	CallsByPurpose    map[string]int
	TotalChatTurns    int
	TurnsByKind       map[string]int
	TotalQuizzes      int
	QuizQuestions     int
	QuizCorrect       int
}
