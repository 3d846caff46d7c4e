// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/doubtbox/ent/chatturnevent"
)

// ChatTurnEvent is the model entity for the ChatTurnEvent schema.
type ChatTurnEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Subject label active for the turn
	Subject string `json:"subject,omitempty"`
	// conversation, doubt_explanation, perspective_explanation, or error
	ResponseKind string `json:"response_kind,omitempty"`
	// Number of practice questions produced
	McqCount int `json:"mcq_count,omitempty"`
	// Whether the learner attached an image
	HadImage     bool `json:"had_image,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChatTurnEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chatturnevent.FieldHadImage:
			values[i] = new(sql.NullBool)
		case chatturnevent.FieldID, chatturnevent.FieldSequence, chatturnevent.FieldMcqCount:
			values[i] = new(sql.NullInt64)
		case chatturnevent.FieldSubject, chatturnevent.FieldResponseKind:
			values[i] = new(sql.NullString)
		case chatturnevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChatTurnEvent fields.
func (_m *ChatTurnEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chatturnevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case chatturnevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case chatturnevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case chatturnevent.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case chatturnevent.FieldResponseKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field response_kind", values[i])
			} else if value.Valid {
				_m.ResponseKind = value.String
			}
		case chatturnevent.FieldMcqCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mcq_count", values[i])
			} else if value.Valid {
				_m.McqCount = int(value.Int64)
			}
		case chatturnevent.FieldHadImage:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field had_image", values[i])
			} else if value.Valid {
				_m.HadImage = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ChatTurnEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ChatTurnEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ChatTurnEvent.
// Note that you need to call ChatTurnEvent.Unwrap() before calling this method if this ChatTurnEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChatTurnEvent) Update() *ChatTurnEventUpdateOne {
	return NewChatTurnEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChatTurnEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChatTurnEvent) Unwrap() *ChatTurnEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChatTurnEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChatTurnEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ChatTurnEvent(")
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
	builder.WriteString("response_kind=")
	builder.WriteString(_m.ResponseKind)
	builder.WriteString(", ")
	builder.WriteString("mcq_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.McqCount))
	builder.WriteString(", ")
	builder.WriteString("had_image=")
	builder.WriteString(fmt.Sprintf("%v", _m.HadImage))
	builder.WriteByte(')')
	return builder.String()
}

// ChatTurnEvents is a parsable slice of ChatTurnEvent.
type ChatTurnEvents []*ChatTurnEvent
