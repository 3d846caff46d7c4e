// Code generated by ent, DO NOT EDIT.

package chatturnevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/doubtbox/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldEQ(FieldSubject, v))
}

// ResponseKind applies equality check predicate on the "response_kind" field. It's identical to ResponseKindEQ.
func ResponseKind(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldEQ(FieldResponseKind, v))
}

// McqCount applies equality check predicate on the "mcq_count" field. It's identical to McqCountEQ.
func McqCount(v int) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldEQ(FieldMcqCount, v))
}

// HadImage applies equality check predicate on the "had_image" field. It's identical to HadImageEQ.
func HadImage(v bool) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldEQ(FieldHadImage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldContainsFold(FieldSubject, v))
}

// ResponseKindEQ applies the EQ predicate on the "response_kind" field.
func ResponseKindEQ(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldEQ(FieldResponseKind, v))
}

// ResponseKindNEQ applies the NEQ predicate on the "response_kind" field.
func ResponseKindNEQ(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldNEQ(FieldResponseKind, v))
}

// ResponseKindIn applies the In predicate on the "response_kind" field.
func ResponseKindIn(vs ...string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldIn(FieldResponseKind, vs...))
}

// ResponseKindNotIn applies the NotIn predicate on the "response_kind" field.
func ResponseKindNotIn(vs ...string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldNotIn(FieldResponseKind, vs...))
}

// ResponseKindGT applies the GT predicate on the "response_kind" field.
func ResponseKindGT(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldGT(FieldResponseKind, v))
}

// ResponseKindGTE applies the GTE predicate on the "response_kind" field.
func ResponseKindGTE(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldGTE(FieldResponseKind, v))
}

// ResponseKindLT applies the LT predicate on the "response_kind" field.
func ResponseKindLT(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldLT(FieldResponseKind, v))
}

// ResponseKindLTE applies the LTE predicate on the "response_kind" field.
func ResponseKindLTE(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldLTE(FieldResponseKind, v))
}

// ResponseKindContains applies the Contains predicate on the "response_kind" field.
func ResponseKindContains(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldContains(FieldResponseKind, v))
}

// ResponseKindHasPrefix applies the HasPrefix predicate on the "response_kind" field.
func ResponseKindHasPrefix(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldHasPrefix(FieldResponseKind, v))
}

// ResponseKindHasSuffix applies the HasSuffix predicate on the "response_kind" field.
func ResponseKindHasSuffix(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldHasSuffix(FieldResponseKind, v))
}

// ResponseKindEqualFold applies the EqualFold predicate on the "response_kind" field.
func ResponseKindEqualFold(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldEqualFold(FieldResponseKind, v))
}

// ResponseKindContainsFold applies the ContainsFold predicate on the "response_kind" field.
func ResponseKindContainsFold(v string) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldContainsFold(FieldResponseKind, v))
}

// McqCountEQ applies the EQ predicate on the "mcq_count" field.
func McqCountEQ(v int) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldEQ(FieldMcqCount, v))
}

// McqCountNEQ applies the NEQ predicate on the "mcq_count" field.
func McqCountNEQ(v int) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldNEQ(FieldMcqCount, v))
}

// McqCountIn applies the In predicate on the "mcq_count" field.
func McqCountIn(vs ...int) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldIn(FieldMcqCount, vs...))
}

// McqCountNotIn applies the NotIn predicate on the "mcq_count" field.
func McqCountNotIn(vs ...int) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldNotIn(FieldMcqCount, vs...))
}

// McqCountGT applies the GT predicate on the "mcq_count" field.
func McqCountGT(v int) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldGT(FieldMcqCount, v))
}

// McqCountGTE applies the GTE predicate on the "mcq_count" field.
func McqCountGTE(v int) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldGTE(FieldMcqCount, v))
}

// McqCountLT applies the LT predicate on the "mcq_count" field.
func McqCountLT(v int) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldLT(FieldMcqCount, v))
}

// McqCountLTE applies the LTE predicate on the "mcq_count" field.
func McqCountLTE(v int) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldLTE(FieldMcqCount, v))
}

// HadImageEQ applies the EQ predicate on the "had_image" field.
func HadImageEQ(v bool) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldEQ(FieldHadImage, v))
}

// HadImageNEQ applies the NEQ predicate on the "had_image" field.
func HadImageNEQ(v bool) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.FieldNEQ(FieldHadImage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChatTurnEvent) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChatTurnEvent) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChatTurnEvent) predicate.ChatTurnEvent {
	return predicate.ChatTurnEvent(sql.NotPredicates(p))
}
