// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/doubtbox/ent/chatturnevent"
	"github.com/abhisek/doubtbox/ent/llmrequestevent"
	"github.com/abhisek/doubtbox/ent/quizresultevent"
	"github.com/abhisek/doubtbox/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatturneventMixin := schema.ChatTurnEvent{}.Mixin()
	chatturneventMixinFields0 := chatturneventMixin[0].Fields()
	_ = chatturneventMixinFields0
	chatturneventFields := schema.ChatTurnEvent{}.Fields()
	_ = chatturneventFields
	// chatturneventDescTimestamp is the schema descriptor for timestamp field.
	chatturneventDescTimestamp := chatturneventMixinFields0[1].Descriptor()
	// chatturnevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	chatturnevent.DefaultTimestamp = chatturneventDescTimestamp.Default.(func() time.Time)
	// chatturneventDescMcqCount is the schema descriptor for mcq_count field.
	chatturneventDescMcqCount := chatturneventFields[2].Descriptor()
	// chatturnevent.DefaultMcqCount holds the default value on creation for the mcq_count field.
	chatturnevent.DefaultMcqCount = chatturneventDescMcqCount.Default.(int)
	// chatturneventDescHadImage is the schema descriptor for had_image field.
	chatturneventDescHadImage := chatturneventFields[3].Descriptor()
	// chatturnevent.DefaultHadImage holds the default value on creation for the had_image field.
	chatturnevent.DefaultHadImage = chatturneventDescHadImage.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	quizresulteventMixin := schema.QuizResultEvent{}.Mixin()
	quizresulteventMixinFields0 := quizresulteventMixin[0].Fields()
	_ = quizresulteventMixinFields0
	quizresulteventFields := schema.QuizResultEvent{}.Fields()
	_ = quizresulteventFields
	// quizresulteventDescTimestamp is the schema descriptor for timestamp field.
	quizresulteventDescTimestamp := quizresulteventMixinFields0[1].Descriptor()
	// quizresultevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizresultevent.DefaultTimestamp = quizresulteventDescTimestamp.Default.(func() time.Time)
	// quizresulteventDescRetried is the schema descriptor for retried field.
	quizresulteventDescRetried := quizresulteventFields[3].Descriptor()
	// quizresultevent.DefaultRetried holds the default value on creation for the retried field.
	quizresultevent.DefaultRetried = quizresulteventDescRetried.Default.(bool)
}
