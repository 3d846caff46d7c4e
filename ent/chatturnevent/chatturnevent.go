// Code generated by ent, DO NOT EDIT.

package chatturnevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the chatturnevent type in the database.
	Label = "chat_turn_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldResponseKind holds the string denoting the response_kind field in the database.
	FieldResponseKind = "response_kind"
	// FieldMcqCount holds the string denoting the mcq_count field in the database.
	FieldMcqCount = "mcq_count"
	// FieldHadImage holds the string denoting the had_image field in the database.
	FieldHadImage = "had_image"
	// Table holds the table name of the chatturnevent in the database.
	Table = "chat_turn_events"
)

// Columns holds all SQL columns for chatturnevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSubject,
	FieldResponseKind,
	FieldMcqCount,
	FieldHadImage,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultMcqCount holds the default value on creation for the "mcq_count" field.
	DefaultMcqCount int
	// DefaultHadImage holds the default value on creation for the "had_image" field.
	DefaultHadImage bool
)

// OrderOption defines the ordering options for the ChatTurnEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByResponseKind orders the results by the response_kind field.
func ByResponseKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseKind, opts...).ToFunc()
}

// ByMcqCount orders the results by the mcq_count field.
func ByMcqCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMcqCount, opts...).ToFunc()
}

// ByHadImage orders the results by the had_image field.
func ByHadImage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHadImage, opts...).ToFunc()
}
