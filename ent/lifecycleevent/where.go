// Code generated by ent, DO NOT EDIT.

package lifecycleevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hartmut/reprise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldProfileID, v))
}

// SectionID applies equality check predicate on the "section_id" field. It's identical to SectionIDEQ.
func SectionID(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldSectionID, v))
}

// FromState applies equality check predicate on the "from_state" field. It's identical to FromStateEQ.
func FromState(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldFromState, v))
}

// ToState applies equality check predicate on the "to_state" field. It's identical to ToStateEQ.
func ToState(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldToState, v))
}

// Suppressed applies equality check predicate on the "suppressed" field. It's identical to SuppressedEQ.
func Suppressed(v bool) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldSuppressed, v))
}

// Tau applies equality check predicate on the "tau" field. It's identical to TauEQ.
func Tau(v float64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldTau, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldIntervalDays, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNotIn(FieldProfileID, vs...))
}

// ProfileIDGT applies the GT predicate on the "profile_id" field.
func ProfileIDGT(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGT(FieldProfileID, v))
}

// ProfileIDGTE applies the GTE predicate on the "profile_id" field.
func ProfileIDGTE(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGTE(FieldProfileID, v))
}

// ProfileIDLT applies the LT predicate on the "profile_id" field.
func ProfileIDLT(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLT(FieldProfileID, v))
}

// ProfileIDLTE applies the LTE predicate on the "profile_id" field.
func ProfileIDLTE(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLTE(FieldProfileID, v))
}

// ProfileIDContains applies the Contains predicate on the "profile_id" field.
func ProfileIDContains(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldContains(FieldProfileID, v))
}

// ProfileIDHasPrefix applies the HasPrefix predicate on the "profile_id" field.
func ProfileIDHasPrefix(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldHasPrefix(FieldProfileID, v))
}

// ProfileIDHasSuffix applies the HasSuffix predicate on the "profile_id" field.
func ProfileIDHasSuffix(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldHasSuffix(FieldProfileID, v))
}

// ProfileIDEqualFold applies the EqualFold predicate on the "profile_id" field.
func ProfileIDEqualFold(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEqualFold(FieldProfileID, v))
}

// ProfileIDContainsFold applies the ContainsFold predicate on the "profile_id" field.
func ProfileIDContainsFold(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldContainsFold(FieldProfileID, v))
}

// SectionIDEQ applies the EQ predicate on the "section_id" field.
func SectionIDEQ(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldSectionID, v))
}

// SectionIDNEQ applies the NEQ predicate on the "section_id" field.
func SectionIDNEQ(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNEQ(FieldSectionID, v))
}

// SectionIDIn applies the In predicate on the "section_id" field.
func SectionIDIn(vs ...string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldIn(FieldSectionID, vs...))
}

// SectionIDNotIn applies the NotIn predicate on the "section_id" field.
func SectionIDNotIn(vs ...string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNotIn(FieldSectionID, vs...))
}

// SectionIDGT applies the GT predicate on the "section_id" field.
func SectionIDGT(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGT(FieldSectionID, v))
}

// SectionIDGTE applies the GTE predicate on the "section_id" field.
func SectionIDGTE(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGTE(FieldSectionID, v))
}

// SectionIDLT applies the LT predicate on the "section_id" field.
func SectionIDLT(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLT(FieldSectionID, v))
}

// SectionIDLTE applies the LTE predicate on the "section_id" field.
func SectionIDLTE(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLTE(FieldSectionID, v))
}

// SectionIDContains applies the Contains predicate on the "section_id" field.
func SectionIDContains(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldContains(FieldSectionID, v))
}

// SectionIDHasPrefix applies the HasPrefix predicate on the "section_id" field.
func SectionIDHasPrefix(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldHasPrefix(FieldSectionID, v))
}

// SectionIDHasSuffix applies the HasSuffix predicate on the "section_id" field.
func SectionIDHasSuffix(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldHasSuffix(FieldSectionID, v))
}

// SectionIDEqualFold applies the EqualFold predicate on the "section_id" field.
func SectionIDEqualFold(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEqualFold(FieldSectionID, v))
}

// SectionIDContainsFold applies the ContainsFold predicate on the "section_id" field.
func SectionIDContainsFold(v string) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldContainsFold(FieldSectionID, v))
}

// FromStateEQ applies the EQ predicate on the "from_state" field.
func FromStateEQ(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldFromState, v))
}

// FromStateNEQ applies the NEQ predicate on the "from_state" field.
func FromStateNEQ(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNEQ(FieldFromState, v))
}

// FromStateIn applies the In predicate on the "from_state" field.
func FromStateIn(vs ...int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldIn(FieldFromState, vs...))
}

// FromStateNotIn applies the NotIn predicate on the "from_state" field.
func FromStateNotIn(vs ...int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNotIn(FieldFromState, vs...))
}

// FromStateGT applies the GT predicate on the "from_state" field.
func FromStateGT(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGT(FieldFromState, v))
}

// FromStateGTE applies the GTE predicate on the "from_state" field.
func FromStateGTE(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGTE(FieldFromState, v))
}

// FromStateLT applies the LT predicate on the "from_state" field.
func FromStateLT(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLT(FieldFromState, v))
}

// FromStateLTE applies the LTE predicate on the "from_state" field.
func FromStateLTE(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLTE(FieldFromState, v))
}

// ToStateEQ applies the EQ predicate on the "to_state" field.
func ToStateEQ(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldToState, v))
}

// ToStateNEQ applies the NEQ predicate on the "to_state" field.
func ToStateNEQ(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNEQ(FieldToState, v))
}

// ToStateIn applies the In predicate on the "to_state" field.
func ToStateIn(vs ...int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldIn(FieldToState, vs...))
}

// ToStateNotIn applies the NotIn predicate on the "to_state" field.
func ToStateNotIn(vs ...int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNotIn(FieldToState, vs...))
}

// ToStateGT applies the GT predicate on the "to_state" field.
func ToStateGT(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGT(FieldToState, v))
}

// ToStateGTE applies the GTE predicate on the "to_state" field.
func ToStateGTE(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGTE(FieldToState, v))
}

// ToStateLT applies the LT predicate on the "to_state" field.
func ToStateLT(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLT(FieldToState, v))
}

// ToStateLTE applies the LTE predicate on the "to_state" field.
func ToStateLTE(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLTE(FieldToState, v))
}

// SuppressedEQ applies the EQ predicate on the "suppressed" field.
func SuppressedEQ(v bool) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldSuppressed, v))
}

// SuppressedNEQ applies the NEQ predicate on the "suppressed" field.
func SuppressedNEQ(v bool) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNEQ(FieldSuppressed, v))
}

// TauEQ applies the EQ predicate on the "tau" field.
func TauEQ(v float64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldTau, v))
}

// TauNEQ applies the NEQ predicate on the "tau" field.
func TauNEQ(v float64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNEQ(FieldTau, v))
}

// TauIn applies the In predicate on the "tau" field.
func TauIn(vs ...float64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldIn(FieldTau, vs...))
}

// TauNotIn applies the NotIn predicate on the "tau" field.
func TauNotIn(vs ...float64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNotIn(FieldTau, vs...))
}

// TauGT applies the GT predicate on the "tau" field.
func TauGT(v float64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGT(FieldTau, v))
}

// TauGTE applies the GTE predicate on the "tau" field.
func TauGTE(v float64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGTE(FieldTau, v))
}

// TauLT applies the LT predicate on the "tau" field.
func TauLT(v float64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLT(FieldTau, v))
}

// TauLTE applies the LTE predicate on the "tau" field.
func TauLTE(v float64) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLTE(FieldTau, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.FieldLTE(FieldIntervalDays, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LifecycleEvent) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LifecycleEvent) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LifecycleEvent) predicate.LifecycleEvent {
	return predicate.LifecycleEvent(sql.NotPredicates(p))
}
