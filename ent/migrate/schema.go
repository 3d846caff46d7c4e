// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChatTurnEventsColumns holds the columns for the "chat_turn_events" table.
	ChatTurnEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "subject", Type: field.TypeString},
		{Name: "response_kind", Type: field.TypeString},
		{Name: "mcq_count", Type: field.TypeInt, Default: 0},
		{Name: "had_image", Type: field.TypeBool, Default: false},
	}
	// ChatTurnEventsTable holds the schema information for the "chat_turn_events" table.
	ChatTurnEventsTable = &schema.Table{
		Name:       "chat_turn_events",
		Columns:    ChatTurnEventsColumns,
		PrimaryKey: []*schema.Column{ChatTurnEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chatturnevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ChatTurnEventsColumns[1]},
			},
			{
				Name:    "chatturnevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ChatTurnEventsColumns[2]},
			},
			{
				Name:    "chatturnevent_subject",
				Unique:  false,
				Columns: []*schema.Column{ChatTurnEventsColumns[3]},
			},
			{
				Name:    "chatturnevent_response_kind",
				Unique:  false,
				Columns: []*schema.Column{ChatTurnEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// QuizResultEventsColumns holds the columns for the "quiz_result_events" table.
	QuizResultEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "subject", Type: field.TypeString},
		{Name: "total", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeInt},
		{Name: "retried", Type: field.TypeBool, Default: false},
	}
	// QuizResultEventsTable holds the schema information for the "quiz_result_events" table.
	QuizResultEventsTable = &schema.Table{
		Name:       "quiz_result_events",
		Columns:    QuizResultEventsColumns,
		PrimaryKey: []*schema.Column{QuizResultEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizresultevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizResultEventsColumns[1]},
			},
			{
				Name:    "quizresultevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizResultEventsColumns[2]},
			},
			{
				Name:    "quizresultevent_subject",
				Unique:  false,
				Columns: []*schema.Column{QuizResultEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChatTurnEventsTable,
		LlmRequestEventsTable,
		QuizResultEventsTable,
	}
)

func init() {
}
