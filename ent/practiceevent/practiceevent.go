// Code generated by ent, DO NOT EDIT.

package practiceevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the practiceevent type in the database.
	Label = "practice_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldProfileID holds the string denoting the profile_id field in the database.
	FieldProfileID = "profile_id"
	// FieldSectionID holds the string denoting the section_id field in the database.
	FieldSectionID = "section_id"
	// FieldPieceID holds the string denoting the piece_id field in the database.
	FieldPieceID = "piece_id"
	// FieldPerformance holds the string denoting the performance field in the database.
	FieldPerformance = "performance"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldRepetitions holds the string denoting the repetitions field in the database.
	FieldRepetitions = "repetitions"
	// FieldExecutionFailures holds the string denoting the execution_failures field in the database.
	FieldExecutionFailures = "execution_failures"
	// FieldMemoryFailures holds the string denoting the memory_failures field in the database.
	FieldMemoryFailures = "memory_failures"
	// FieldDeleted holds the string denoting the deleted field in the database.
	FieldDeleted = "deleted"
	// Table holds the table name of the practiceevent in the database.
	Table = "practice_events"
)

// Columns holds all SQL columns for practiceevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldProfileID,
	FieldSectionID,
	FieldPieceID,
	FieldPerformance,
	FieldScore,
	FieldRepetitions,
	FieldExecutionFailures,
	FieldMemoryFailures,
	FieldDeleted,
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
	// ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	ProfileIDValidator func(string) error
	// SectionIDValidator is a validator for the "section_id" field. It is called by the builders before save.
	SectionIDValidator func(string) error
	// PerformanceValidator is a validator for the "performance" field. It is called by the builders before save.
	PerformanceValidator func(string) error
	// DefaultDeleted holds the default value on creation for the "deleted" field.
	DefaultDeleted bool
)

// OrderOption defines the ordering options for the PracticeEvent queries.
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

// ByPerformance orders the results by the performance field.
func ByPerformance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPerformance, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByRepetitions orders the results by the repetitions field.
func ByRepetitions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepetitions, opts...).ToFunc()
}

// ByExecutionFailures orders the results by the execution_failures field.
func ByExecutionFailures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionFailures, opts...).ToFunc()
}

// ByMemoryFailures orders the results by the memory_failures field.
func ByMemoryFailures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoryFailures, opts...).ToFunc()
}

// ByDeleted orders the results by the deleted field.
func ByDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeleted, opts...).ToFunc()
}
