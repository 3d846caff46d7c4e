// Code generated by ent, DO NOT EDIT.

package quizresultevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/doubtbox/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldSubject, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldTotal, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldCorrect, v))
}

// Retried applies equality check predicate on the "retried" field. It's identical to RetriedEQ.
func Retried(v bool) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldRetried, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContainsFold(FieldSubject, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldTotal, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldCorrect, v))
}

// RetriedEQ applies the EQ predicate on the "retried" field.
func RetriedEQ(v bool) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldRetried, v))
}

// RetriedNEQ applies the NEQ predicate on the "retried" field.
func RetriedNEQ(v bool) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldRetried, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizResultEvent) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizResultEvent) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizResultEvent) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.NotPredicates(p))
}
