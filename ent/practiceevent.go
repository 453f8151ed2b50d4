// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hartmut/reprise/ent/practiceevent"
)

// PracticeEvent is the model entity for the PracticeEvent schema.
type PracticeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID string `json:"profile_id,omitempty"`
	// SectionID holds the value of the "section_id" field.
	SectionID string `json:"section_id,omitempty"`
	// PieceID holds the value of the "piece_id" field.
	PieceID string `json:"piece_id,omitempty"`
	// Performance holds the value of the "performance" field.
	Performance string `json:"performance,omitempty"`
	// Score holds the value of the "score" field.
	Score float64 `json:"score,omitempty"`
	// Repetitions holds the value of the "repetitions" field.
	Repetitions int `json:"repetitions,omitempty"`
	// ExecutionFailures holds the value of the "execution_failures" field.
	ExecutionFailures int `json:"execution_failures,omitempty"`
	// MemoryFailures holds the value of the "memory_failures" field.
	MemoryFailures int `json:"memory_failures,omitempty"`
	// Deleted holds the value of the "deleted" field.
	Deleted      bool `json:"deleted,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PracticeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case practiceevent.FieldDeleted:
			values[i] = new(sql.NullBool)
		case practiceevent.FieldScore:
			values[i] = new(sql.NullFloat64)
		case practiceevent.FieldID, practiceevent.FieldSequence, practiceevent.FieldRepetitions, practiceevent.FieldExecutionFailures, practiceevent.FieldMemoryFailures:
			values[i] = new(sql.NullInt64)
		case practiceevent.FieldProfileID, practiceevent.FieldSectionID, practiceevent.FieldPieceID, practiceevent.FieldPerformance:
			values[i] = new(sql.NullString)
		case practiceevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PracticeEvent fields.
func (pe *PracticeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case practiceevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			pe.ID = int(value.Int64)
		case practiceevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				pe.Sequence = value.Int64
			}
		case practiceevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				pe.Timestamp = value.Time
			}
		case practiceevent.FieldProfileID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value.Valid {
				pe.ProfileID = value.String
			}
		case practiceevent.FieldSectionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section_id", values[i])
			} else if value.Valid {
				pe.SectionID = value.String
			}
		case practiceevent.FieldPieceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field piece_id", values[i])
			} else if value.Valid {
				pe.PieceID = value.String
			}
		case practiceevent.FieldPerformance:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field performance", values[i])
			} else if value.Valid {
				pe.Performance = value.String
			}
		case practiceevent.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				pe.Score = value.Float64
			}
		case practiceevent.FieldRepetitions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repetitions", values[i])
			} else if value.Valid {
				pe.Repetitions = int(value.Int64)
			}
		case practiceevent.FieldExecutionFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field execution_failures", values[i])
			} else if value.Valid {
				pe.ExecutionFailures = int(value.Int64)
			}
		case practiceevent.FieldMemoryFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field memory_failures", values[i])
			} else if value.Valid {
				pe.MemoryFailures = int(value.Int64)
			}
		case practiceevent.FieldDeleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field deleted", values[i])
			} else if value.Valid {
				pe.Deleted = value.Bool
			}
		default:
			pe.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PracticeEvent.
// This includes values selected through modifiers, order, etc.
func (pe *PracticeEvent) Value(name string) (ent.Value, error) {
	return pe.selectValues.Get(name)
}

// Update returns a builder for updating this PracticeEvent.
// Note that you need to call PracticeEvent.Unwrap() before calling this method if this PracticeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (pe *PracticeEvent) Update() *PracticeEventUpdateOne {
	return NewPracticeEventClient(pe.config).UpdateOne(pe)
}

// Unwrap unwraps the PracticeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (pe *PracticeEvent) Unwrap() *PracticeEvent {
	_tx, ok := pe.config.driver.(*txDriver)
	if !ok {
		panic("ent: PracticeEvent is not a transactional entity")
	}
	pe.config.driver = _tx.drv
	return pe
}

// String implements the fmt.Stringer.
func (pe *PracticeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PracticeEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", pe.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", pe.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(pe.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("profile_id=")
	builder.WriteString(pe.ProfileID)
	builder.WriteString(", ")
	builder.WriteString("section_id=")
	builder.WriteString(pe.SectionID)
	builder.WriteString(", ")
	builder.WriteString("piece_id=")
	builder.WriteString(pe.PieceID)
	builder.WriteString(", ")
	builder.WriteString("performance=")
	builder.WriteString(pe.Performance)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", pe.Score))
	builder.WriteString(", ")
	builder.WriteString("repetitions=")
	builder.WriteString(fmt.Sprintf("%v", pe.Repetitions))
	builder.WriteString(", ")
	builder.WriteString("execution_failures=")
	builder.WriteString(fmt.Sprintf("%v", pe.ExecutionFailures))
	builder.WriteString(", ")
	builder.WriteString("memory_failures=")
	builder.WriteString(fmt.Sprintf("%v", pe.MemoryFailures))
	builder.WriteString(", ")
	builder.WriteString("deleted=")
	builder.WriteString(fmt.Sprintf("%v", pe.Deleted))
	builder.WriteByte(')')
	return builder.String()
}

// PracticeEvents is a parsable slice of PracticeEvent.
type PracticeEvents []*PracticeEvent
