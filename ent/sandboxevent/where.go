// Code generated by ent, DO NOT EDIT.

package sandboxevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/synapz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldSessionID, v))
}

// InteractionType applies equality check predicate on the "interaction_type" field. It's identical to InteractionTypeEQ.
func InteractionType(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldInteractionType, v))
}

// CognitiveType applies equality check predicate on the "cognitive_type" field. It's identical to CognitiveTypeEQ.
func CognitiveType(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldCognitiveType, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldScore, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldPassed, v))
}

// AttemptCount applies equality check predicate on the "attempt_count" field. It's identical to AttemptCountEQ.
func AttemptCount(v int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldAttemptCount, v))
}

// HintsUsed applies equality check predicate on the "hints_used" field. It's identical to HintsUsedEQ.
func HintsUsed(v int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldHintsUsed, v))
}

// ElapsedMs applies equality check predicate on the "elapsed_ms" field. It's identical to ElapsedMsEQ.
func ElapsedMs(v int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldElapsedMs, v))
}

// BaselineMs applies equality check predicate on the "baseline_ms" field. It's identical to BaselineMsEQ.
func BaselineMs(v int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldBaselineMs, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldCompleted, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// InteractionTypeEQ applies the EQ predicate on the "interaction_type" field.
func InteractionTypeEQ(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldInteractionType, v))
}

// InteractionTypeNEQ applies the NEQ predicate on the "interaction_type" field.
func InteractionTypeNEQ(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNEQ(FieldInteractionType, v))
}

// InteractionTypeIn applies the In predicate on the "interaction_type" field.
func InteractionTypeIn(vs ...string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIn(FieldInteractionType, vs...))
}

// InteractionTypeNotIn applies the NotIn predicate on the "interaction_type" field.
func InteractionTypeNotIn(vs ...string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotIn(FieldInteractionType, vs...))
}

// InteractionTypeGT applies the GT predicate on the "interaction_type" field.
func InteractionTypeGT(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGT(FieldInteractionType, v))
}

// InteractionTypeGTE applies the GTE predicate on the "interaction_type" field.
func InteractionTypeGTE(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGTE(FieldInteractionType, v))
}

// InteractionTypeLT applies the LT predicate on the "interaction_type" field.
func InteractionTypeLT(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLT(FieldInteractionType, v))
}

// InteractionTypeLTE applies the LTE predicate on the "interaction_type" field.
func InteractionTypeLTE(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLTE(FieldInteractionType, v))
}

// InteractionTypeContains applies the Contains predicate on the "interaction_type" field.
func InteractionTypeContains(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldContains(FieldInteractionType, v))
}

// InteractionTypeHasPrefix applies the HasPrefix predicate on the "interaction_type" field.
func InteractionTypeHasPrefix(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldHasPrefix(FieldInteractionType, v))
}

// InteractionTypeHasSuffix applies the HasSuffix predicate on the "interaction_type" field.
func InteractionTypeHasSuffix(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldHasSuffix(FieldInteractionType, v))
}

// InteractionTypeEqualFold applies the EqualFold predicate on the "interaction_type" field.
func InteractionTypeEqualFold(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEqualFold(FieldInteractionType, v))
}

// InteractionTypeContainsFold applies the ContainsFold predicate on the "interaction_type" field.
func InteractionTypeContainsFold(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldContainsFold(FieldInteractionType, v))
}

// CognitiveTypeEQ applies the EQ predicate on the "cognitive_type" field.
func CognitiveTypeEQ(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldCognitiveType, v))
}

// CognitiveTypeNEQ applies the NEQ predicate on the "cognitive_type" field.
func CognitiveTypeNEQ(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNEQ(FieldCognitiveType, v))
}

// CognitiveTypeIn applies the In predicate on the "cognitive_type" field.
func CognitiveTypeIn(vs ...string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIn(FieldCognitiveType, vs...))
}

// CognitiveTypeNotIn applies the NotIn predicate on the "cognitive_type" field.
func CognitiveTypeNotIn(vs ...string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotIn(FieldCognitiveType, vs...))
}

// CognitiveTypeGT applies the GT predicate on the "cognitive_type" field.
func CognitiveTypeGT(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGT(FieldCognitiveType, v))
}

// CognitiveTypeGTE applies the GTE predicate on the "cognitive_type" field.
func CognitiveTypeGTE(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGTE(FieldCognitiveType, v))
}

// CognitiveTypeLT applies the LT predicate on the "cognitive_type" field.
func CognitiveTypeLT(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLT(FieldCognitiveType, v))
}

// CognitiveTypeLTE applies the LTE predicate on the "cognitive_type" field.
func CognitiveTypeLTE(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLTE(FieldCognitiveType, v))
}

// CognitiveTypeContains applies the Contains predicate on the "cognitive_type" field.
func CognitiveTypeContains(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldContains(FieldCognitiveType, v))
}

// CognitiveTypeHasPrefix applies the HasPrefix predicate on the "cognitive_type" field.
func CognitiveTypeHasPrefix(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldHasPrefix(FieldCognitiveType, v))
}

// CognitiveTypeHasSuffix applies the HasSuffix predicate on the "cognitive_type" field.
func CognitiveTypeHasSuffix(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldHasSuffix(FieldCognitiveType, v))
}

// CognitiveTypeEqualFold applies the EqualFold predicate on the "cognitive_type" field.
func CognitiveTypeEqualFold(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEqualFold(FieldCognitiveType, v))
}

// CognitiveTypeContainsFold applies the ContainsFold predicate on the "cognitive_type" field.
func CognitiveTypeContainsFold(v string) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldContainsFold(FieldCognitiveType, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLTE(FieldScore, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNEQ(FieldPassed, v))
}

// AttemptCountEQ applies the EQ predicate on the "attempt_count" field.
func AttemptCountEQ(v int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldAttemptCount, v))
}

// AttemptCountNEQ applies the NEQ predicate on the "attempt_count" field.
func AttemptCountNEQ(v int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNEQ(FieldAttemptCount, v))
}

// AttemptCountIn applies the In predicate on the "attempt_count" field.
func AttemptCountIn(vs ...int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIn(FieldAttemptCount, vs...))
}

// AttemptCountNotIn applies the NotIn predicate on the "attempt_count" field.
func AttemptCountNotIn(vs ...int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotIn(FieldAttemptCount, vs...))
}

// AttemptCountGT applies the GT predicate on the "attempt_count" field.
func AttemptCountGT(v int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGT(FieldAttemptCount, v))
}

// AttemptCountGTE applies the GTE predicate on the "attempt_count" field.
func AttemptCountGTE(v int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGTE(FieldAttemptCount, v))
}

// AttemptCountLT applies the LT predicate on the "attempt_count" field.
func AttemptCountLT(v int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLT(FieldAttemptCount, v))
}

// AttemptCountLTE applies the LTE predicate on the "attempt_count" field.
func AttemptCountLTE(v int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLTE(FieldAttemptCount, v))
}

// HintsUsedEQ applies the EQ predicate on the "hints_used" field.
func HintsUsedEQ(v int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldHintsUsed, v))
}

// HintsUsedNEQ applies the NEQ predicate on the "hints_used" field.
func HintsUsedNEQ(v int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNEQ(FieldHintsUsed, v))
}

// HintsUsedIn applies the In predicate on the "hints_used" field.
func HintsUsedIn(vs ...int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIn(FieldHintsUsed, vs...))
}

// HintsUsedNotIn applies the NotIn predicate on the "hints_used" field.
func HintsUsedNotIn(vs ...int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotIn(FieldHintsUsed, vs...))
}

// HintsUsedGT applies the GT predicate on the "hints_used" field.
func HintsUsedGT(v int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGT(FieldHintsUsed, v))
}

// HintsUsedGTE applies the GTE predicate on the "hints_used" field.
func HintsUsedGTE(v int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGTE(FieldHintsUsed, v))
}

// HintsUsedLT applies the LT predicate on the "hints_used" field.
func HintsUsedLT(v int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLT(FieldHintsUsed, v))
}

// HintsUsedLTE applies the LTE predicate on the "hints_used" field.
func HintsUsedLTE(v int) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLTE(FieldHintsUsed, v))
}

// ElapsedMsEQ applies the EQ predicate on the "elapsed_ms" field.
func ElapsedMsEQ(v int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldElapsedMs, v))
}

// ElapsedMsNEQ applies the NEQ predicate on the "elapsed_ms" field.
func ElapsedMsNEQ(v int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNEQ(FieldElapsedMs, v))
}

// ElapsedMsIn applies the In predicate on the "elapsed_ms" field.
func ElapsedMsIn(vs ...int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIn(FieldElapsedMs, vs...))
}

// ElapsedMsNotIn applies the NotIn predicate on the "elapsed_ms" field.
func ElapsedMsNotIn(vs ...int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotIn(FieldElapsedMs, vs...))
}

// ElapsedMsGT applies the GT predicate on the "elapsed_ms" field.
func ElapsedMsGT(v int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGT(FieldElapsedMs, v))
}

// ElapsedMsGTE applies the GTE predicate on the "elapsed_ms" field.
func ElapsedMsGTE(v int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGTE(FieldElapsedMs, v))
}

// ElapsedMsLT applies the LT predicate on the "elapsed_ms" field.
func ElapsedMsLT(v int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLT(FieldElapsedMs, v))
}

// ElapsedMsLTE applies the LTE predicate on the "elapsed_ms" field.
func ElapsedMsLTE(v int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLTE(FieldElapsedMs, v))
}

// BaselineMsEQ applies the EQ predicate on the "baseline_ms" field.
func BaselineMsEQ(v int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldBaselineMs, v))
}

// BaselineMsNEQ applies the NEQ predicate on the "baseline_ms" field.
func BaselineMsNEQ(v int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNEQ(FieldBaselineMs, v))
}

// BaselineMsIn applies the In predicate on the "baseline_ms" field.
func BaselineMsIn(vs ...int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldIn(FieldBaselineMs, vs...))
}

// BaselineMsNotIn applies the NotIn predicate on the "baseline_ms" field.
func BaselineMsNotIn(vs ...int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNotIn(FieldBaselineMs, vs...))
}

// BaselineMsGT applies the GT predicate on the "baseline_ms" field.
func BaselineMsGT(v int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGT(FieldBaselineMs, v))
}

// BaselineMsGTE applies the GTE predicate on the "baseline_ms" field.
func BaselineMsGTE(v int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldGTE(FieldBaselineMs, v))
}

// BaselineMsLT applies the LT predicate on the "baseline_ms" field.
func BaselineMsLT(v int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLT(FieldBaselineMs, v))
}

// BaselineMsLTE applies the LTE predicate on the "baseline_ms" field.
func BaselineMsLTE(v int64) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldLTE(FieldBaselineMs, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.FieldNEQ(FieldCompleted, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SandboxEvent) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SandboxEvent) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SandboxEvent) predicate.SandboxEvent {
	return predicate.SandboxEvent(sql.NotPredicates(p))
}
