// Code generated by ent, DO NOT EDIT.

package scheduledsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/hartmut/reprise/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldSessionID, v))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldProfileID, v))
}

// SectionID applies equality check predicate on the "section_id" field. It's identical to SectionIDEQ.
func SectionID(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldSectionID, v))
}

// PieceID applies equality check predicate on the "piece_id" field. It's identical to PieceIDEQ.
func PieceID(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldPieceID, v))
}

// ScheduledDate applies equality check predicate on the "scheduled_date" field. It's identical to ScheduledDateEQ.
func ScheduledDate(v time.Time) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldScheduledDate, v))
}

// EstimatedMinutes applies equality check predicate on the "estimated_minutes" field. It's identical to EstimatedMinutesEQ.
func EstimatedMinutes(v int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldEstimatedMinutes, v))
}

// Tau applies equality check predicate on the "tau" field. It's identical to TauEQ.
func Tau(v float64) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldTau, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldContainsFold(FieldSessionID, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNotIn(FieldProfileID, vs...))
}

// ProfileIDGT applies the GT predicate on the "profile_id" field.
func ProfileIDGT(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGT(FieldProfileID, v))
}

// ProfileIDGTE applies the GTE predicate on the "profile_id" field.
func ProfileIDGTE(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGTE(FieldProfileID, v))
}

// ProfileIDLT applies the LT predicate on the "profile_id" field.
func ProfileIDLT(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLT(FieldProfileID, v))
}

// ProfileIDLTE applies the LTE predicate on the "profile_id" field.
func ProfileIDLTE(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLTE(FieldProfileID, v))
}

// ProfileIDContains applies the Contains predicate on the "profile_id" field.
func ProfileIDContains(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldContains(FieldProfileID, v))
}

// ProfileIDHasPrefix applies the HasPrefix predicate on the "profile_id" field.
func ProfileIDHasPrefix(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldHasPrefix(FieldProfileID, v))
}

// ProfileIDHasSuffix applies the HasSuffix predicate on the "profile_id" field.
func ProfileIDHasSuffix(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldHasSuffix(FieldProfileID, v))
}

// ProfileIDEqualFold applies the EqualFold predicate on the "profile_id" field.
func ProfileIDEqualFold(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEqualFold(FieldProfileID, v))
}

// ProfileIDContainsFold applies the ContainsFold predicate on the "profile_id" field.
func ProfileIDContainsFold(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldContainsFold(FieldProfileID, v))
}

// SectionIDEQ applies the EQ predicate on the "section_id" field.
func SectionIDEQ(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldSectionID, v))
}

// SectionIDNEQ applies the NEQ predicate on the "section_id" field.
func SectionIDNEQ(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNEQ(FieldSectionID, v))
}

// SectionIDIn applies the In predicate on the "section_id" field.
func SectionIDIn(vs ...string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldIn(FieldSectionID, vs...))
}

// SectionIDNotIn applies the NotIn predicate on the "section_id" field.
func SectionIDNotIn(vs ...string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNotIn(FieldSectionID, vs...))
}

// SectionIDGT applies the GT predicate on the "section_id" field.
func SectionIDGT(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGT(FieldSectionID, v))
}

// SectionIDGTE applies the GTE predicate on the "section_id" field.
func SectionIDGTE(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGTE(FieldSectionID, v))
}

// SectionIDLT applies the LT predicate on the "section_id" field.
func SectionIDLT(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLT(FieldSectionID, v))
}

// SectionIDLTE applies the LTE predicate on the "section_id" field.
func SectionIDLTE(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLTE(FieldSectionID, v))
}

// SectionIDContains applies the Contains predicate on the "section_id" field.
func SectionIDContains(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldContains(FieldSectionID, v))
}

// SectionIDHasPrefix applies the HasPrefix predicate on the "section_id" field.
func SectionIDHasPrefix(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldHasPrefix(FieldSectionID, v))
}

// SectionIDHasSuffix applies the HasSuffix predicate on the "section_id" field.
func SectionIDHasSuffix(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldHasSuffix(FieldSectionID, v))
}

// SectionIDEqualFold applies the EqualFold predicate on the "section_id" field.
func SectionIDEqualFold(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEqualFold(FieldSectionID, v))
}

// SectionIDContainsFold applies the ContainsFold predicate on the "section_id" field.
func SectionIDContainsFold(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldContainsFold(FieldSectionID, v))
}

// PieceIDEQ applies the EQ predicate on the "piece_id" field.
func PieceIDEQ(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldPieceID, v))
}

// PieceIDNEQ applies the NEQ predicate on the "piece_id" field.
func PieceIDNEQ(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNEQ(FieldPieceID, v))
}

// PieceIDIn applies the In predicate on the "piece_id" field.
func PieceIDIn(vs ...string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldIn(FieldPieceID, vs...))
}

// PieceIDNotIn applies the NotIn predicate on the "piece_id" field.
func PieceIDNotIn(vs ...string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNotIn(FieldPieceID, vs...))
}

// PieceIDGT applies the GT predicate on the "piece_id" field.
func PieceIDGT(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGT(FieldPieceID, v))
}

// PieceIDGTE applies the GTE predicate on the "piece_id" field.
func PieceIDGTE(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGTE(FieldPieceID, v))
}

// PieceIDLT applies the LT predicate on the "piece_id" field.
func PieceIDLT(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLT(FieldPieceID, v))
}

// PieceIDLTE applies the LTE predicate on the "piece_id" field.
func PieceIDLTE(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLTE(FieldPieceID, v))
}

// PieceIDContains applies the Contains predicate on the "piece_id" field.
func PieceIDContains(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldContains(FieldPieceID, v))
}

// PieceIDHasPrefix applies the HasPrefix predicate on the "piece_id" field.
func PieceIDHasPrefix(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldHasPrefix(FieldPieceID, v))
}

// PieceIDHasSuffix applies the HasSuffix predicate on the "piece_id" field.
func PieceIDHasSuffix(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldHasSuffix(FieldPieceID, v))
}

// PieceIDIsNil applies the IsNil predicate on the "piece_id" field.
func PieceIDIsNil() predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldIsNull(FieldPieceID))
}

// PieceIDNotNil applies the NotNil predicate on the "piece_id" field.
func PieceIDNotNil() predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNotNull(FieldPieceID))
}

// PieceIDEqualFold applies the EqualFold predicate on the "piece_id" field.
func PieceIDEqualFold(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEqualFold(FieldPieceID, v))
}

// PieceIDContainsFold applies the ContainsFold predicate on the "piece_id" field.
func PieceIDContainsFold(v string) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldContainsFold(FieldPieceID, v))
}

// ScheduledDateEQ applies the EQ predicate on the "scheduled_date" field.
func ScheduledDateEQ(v time.Time) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldScheduledDate, v))
}

// ScheduledDateNEQ applies the NEQ predicate on the "scheduled_date" field.
func ScheduledDateNEQ(v time.Time) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNEQ(FieldScheduledDate, v))
}

// ScheduledDateIn applies the In predicate on the "scheduled_date" field.
func ScheduledDateIn(vs ...time.Time) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldIn(FieldScheduledDate, vs...))
}

// ScheduledDateNotIn applies the NotIn predicate on the "scheduled_date" field.
func ScheduledDateNotIn(vs ...time.Time) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNotIn(FieldScheduledDate, vs...))
}

// ScheduledDateGT applies the GT predicate on the "scheduled_date" field.
func ScheduledDateGT(v time.Time) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGT(FieldScheduledDate, v))
}

// ScheduledDateGTE applies the GTE predicate on the "scheduled_date" field.
func ScheduledDateGTE(v time.Time) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGTE(FieldScheduledDate, v))
}

// ScheduledDateLT applies the LT predicate on the "scheduled_date" field.
func ScheduledDateLT(v time.Time) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLT(FieldScheduledDate, v))
}

// ScheduledDateLTE applies the LTE predicate on the "scheduled_date" field.
func ScheduledDateLTE(v time.Time) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLTE(FieldScheduledDate, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNotIn(FieldStatus, vs...))
}

// EstimatedMinutesEQ applies the EQ predicate on the "estimated_minutes" field.
func EstimatedMinutesEQ(v int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldEstimatedMinutes, v))
}

// EstimatedMinutesNEQ applies the NEQ predicate on the "estimated_minutes" field.
func EstimatedMinutesNEQ(v int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNEQ(FieldEstimatedMinutes, v))
}

// EstimatedMinutesIn applies the In predicate on the "estimated_minutes" field.
func EstimatedMinutesIn(vs ...int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldIn(FieldEstimatedMinutes, vs...))
}

// EstimatedMinutesNotIn applies the NotIn predicate on the "estimated_minutes" field.
func EstimatedMinutesNotIn(vs ...int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNotIn(FieldEstimatedMinutes, vs...))
}

// EstimatedMinutesGT applies the GT predicate on the "estimated_minutes" field.
func EstimatedMinutesGT(v int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGT(FieldEstimatedMinutes, v))
}

// EstimatedMinutesGTE applies the GTE predicate on the "estimated_minutes" field.
func EstimatedMinutesGTE(v int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGTE(FieldEstimatedMinutes, v))
}

// EstimatedMinutesLT applies the LT predicate on the "estimated_minutes" field.
func EstimatedMinutesLT(v int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLT(FieldEstimatedMinutes, v))
}

// EstimatedMinutesLTE applies the LTE predicate on the "estimated_minutes" field.
func EstimatedMinutesLTE(v int) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLTE(FieldEstimatedMinutes, v))
}

// TauEQ applies the EQ predicate on the "tau" field.
func TauEQ(v float64) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldEQ(FieldTau, v))
}

// TauNEQ applies the NEQ predicate on the "tau" field.
func TauNEQ(v float64) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNEQ(FieldTau, v))
}

// TauIn applies the In predicate on the "tau" field.
func TauIn(vs ...float64) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldIn(FieldTau, vs...))
}

// TauNotIn applies the NotIn predicate on the "tau" field.
func TauNotIn(vs ...float64) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldNotIn(FieldTau, vs...))
}

// TauGT applies the GT predicate on the "tau" field.
func TauGT(v float64) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGT(FieldTau, v))
}

// TauGTE applies the GTE predicate on the "tau" field.
func TauGTE(v float64) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldGTE(FieldTau, v))
}

// TauLT applies the LT predicate on the "tau" field.
func TauLT(v float64) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLT(FieldTau, v))
}

// TauLTE applies the LTE predicate on the "tau" field.
func TauLTE(v float64) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.FieldLTE(FieldTau, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduledSession) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduledSession) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduledSession) predicate.ScheduledSession {
	return predicate.ScheduledSession(sql.NotPredicates(p))
}
