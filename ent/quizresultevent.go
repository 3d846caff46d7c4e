// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/doubtbox/ent/quizresultevent"
)

// QuizResultEvent is the model entity for the QuizResultEvent schema.
type QuizResultEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Subject label active for the quiz
	Subject string `json:"subject,omitempty"`
	// Number of questions
	Total int `json:"total,omitempty"`
	// Number answered correctly
	Correct int `json:"correct,omitempty"`
	// Whether this run was a retry of the same question set
	Retried      bool `json:"retried,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizResultEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizresultevent.FieldRetried:
			values[i] = new(sql.NullBool)
		case quizresultevent.FieldID, quizresultevent.FieldSequence, quizresultevent.FieldTotal, quizresultevent.FieldCorrect:
			values[i] = new(sql.NullInt64)
		case quizresultevent.FieldSubject:
			values[i] = new(sql.NullString)
		case quizresultevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizResultEvent fields.
func (_m *QuizResultEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizresultevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizresultevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case quizresultevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case quizresultevent.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case quizresultevent.FieldTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = int(value.Int64)
			}
		case quizresultevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = int(value.Int64)
			}
		case quizresultevent.FieldRetried:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field retried", values[i])
			} else if value.Valid {
				_m.Retried = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizResultEvent.
// This includes values selected through modifiers, order, etc.
func (_m *QuizResultEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuizResultEvent.
// Note that you need to call QuizResultEvent.Unwrap() before calling this method if this QuizResultEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizResultEvent) Update() *QuizResultEventUpdateOne {
	return NewQuizResultEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizResultEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizResultEvent) Unwrap() *QuizResultEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizResultEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizResultEvent) String() string {
	var builder strings.Builder
	builder.WriteString("QuizResultEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("retried=")
	builder.WriteString(fmt.Sprintf("%v", _m.Retried))
	builder.WriteByte(')')
	return builder.String()
}

// QuizResultEvents is a parsable slice of QuizResultEvent.
type QuizResultEvents []*QuizResultEvent
