// Code generated by ent, DO NOT EDIT.

package scheduledsession

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the scheduledsession type in the database.
	Label = "scheduled_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldProfileID holds the string denoting the profile_id field in the database.
	FieldProfileID = "profile_id"
	// FieldSectionID holds the string denoting the section_id field in the database.
	FieldSectionID = "section_id"
	// FieldPieceID holds the string denoting the piece_id field in the database.
	FieldPieceID = "piece_id"
	// FieldScheduledDate holds the string denoting the scheduled_date field in the database.
	FieldScheduledDate = "scheduled_date"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldEstimatedMinutes holds the string denoting the estimated_minutes field in the database.
	FieldEstimatedMinutes = "estimated_minutes"
	// FieldTau holds the string denoting the tau field in the database.
	FieldTau = "tau"
	// Table holds the table name of the scheduledsession in the database.
	Table = "scheduled_sessions"
)

// Columns holds all SQL columns for scheduledsession fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldProfileID,
	FieldSectionID,
	FieldPieceID,
	FieldScheduledDate,
	FieldStatus,
	FieldEstimatedMinutes,
	FieldTau,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	ProfileIDValidator func(string) error
	// SectionIDValidator is a validator for the "section_id" field. It is called by the builders before save.
	SectionIDValidator func(string) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPlanned is the default value of the Status enum.
const DefaultStatus = StatusPlanned

// Status values.
const (
	StatusPlanned   Status = "Planned"
	StatusCompleted Status = "Completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPlanned, StatusCompleted:
		return nil
	default:
		return fmt.Errorf("scheduledsession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ScheduledSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByProfileID orders the results by the profile_id field.
func ByProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileID, opts...).ToFunc()
}

// BySectionID orders the results by the section_id field.
func BySectionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSectionID, opts...).ToFunc()
}

// ByPieceID orders the results by the piece_id field.
func ByPieceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPieceID, opts...).ToFunc()
}

// ByScheduledDate orders the results by the scheduled_date field.
func ByScheduledDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScheduledDate, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByEstimatedMinutes orders the results by the estimated_minutes field.
func ByEstimatedMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedMinutes, opts...).ToFunc()
}

// ByTau orders the results by the tau field.
func ByTau(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTau, opts...).ToFunc()
}
