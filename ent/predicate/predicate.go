// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatTurnEvent is the predicate function for chatturnevent builders.
type ChatTurnEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// QuizResultEvent is the predicate function for quizresultevent builders.
type QuizResultEvent func(*sql.Selector)
