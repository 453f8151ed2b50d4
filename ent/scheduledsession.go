// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hartmut/reprise/ent/scheduledsession"
)

// ScheduledSession is the model entity for the ScheduledSession schema.
type ScheduledSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Caller-assigned UUID
	SessionID string `json:"session_id,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID string `json:"profile_id,omitempty"`
	// SectionID holds the value of the "section_id" field.
	SectionID string `json:"section_id,omitempty"`
	// PieceID holds the value of the "piece_id" field.
	PieceID string `json:"piece_id,omitempty"`
	// ScheduledDate holds the value of the "scheduled_date" field.
	ScheduledDate time.Time `json:"scheduled_date,omitempty"`
	// Status holds the value of the "status" field.
	Status scheduledsession.Status `json:"status,omitempty"`
	// EstimatedMinutes holds the value of the "estimated_minutes" field.
	EstimatedMinutes int `json:"estimated_minutes,omitempty"`
	// Tau used to produce the interval; 0 for maintenance
	Tau          float64 `json:"tau,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScheduledSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scheduledsession.FieldTau:
			values[i] = new(sql.NullFloat64)
		case scheduledsession.FieldID, scheduledsession.FieldEstimatedMinutes:
			values[i] = new(sql.NullInt64)
		case scheduledsession.FieldSessionID, scheduledsession.FieldProfileID, scheduledsession.FieldSectionID, scheduledsession.FieldPieceID, scheduledsession.FieldStatus:
			values[i] = new(sql.NullString)
		case scheduledsession.FieldScheduledDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScheduledSession fields.
func (ss *ScheduledSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scheduledsession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ss.ID = int(value.Int64)
		case scheduledsession.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				ss.SessionID = value.String
			}
		case scheduledsession.FieldProfileID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value.Valid {
				ss.ProfileID = value.String
			}
		case scheduledsession.FieldSectionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section_id", values[i])
			} else if value.Valid {
				ss.SectionID = value.String
			}
		case scheduledsession.FieldPieceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field piece_id", values[i])
			} else if value.Valid {
				ss.PieceID = value.String
			}
		case scheduledsession.FieldScheduledDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_date", values[i])
			} else if value.Valid {
				ss.ScheduledDate = value.Time
			}
		case scheduledsession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				ss.Status = scheduledsession.Status(value.String)
			}
		case scheduledsession.FieldEstimatedMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_minutes", values[i])
			} else if value.Valid {
				ss.EstimatedMinutes = int(value.Int64)
			}
		case scheduledsession.FieldTau:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field tau", values[i])
			} else if value.Valid {
				ss.Tau = value.Float64
			}
		default:
			ss.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScheduledSession.
// This includes values selected through modifiers, order, etc.
func (ss *ScheduledSession) Value(name string) (ent.Value, error) {
	return ss.selectValues.Get(name)
}

// Update returns a builder for updating this ScheduledSession.
// Note that you need to call ScheduledSession.Unwrap() before calling this method if this ScheduledSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (ss *ScheduledSession) Update() *ScheduledSessionUpdateOne {
	return NewScheduledSessionClient(ss.config).UpdateOne(ss)
}

// Unwrap unwraps the ScheduledSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ss *ScheduledSession) Unwrap() *ScheduledSession {
	_tx, ok := ss.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScheduledSession is not a transactional entity")
	}
	ss.config.driver = _tx.drv
	return ss
}

// String implements the fmt.Stringer.
func (ss *ScheduledSession) String() string {
	var builder strings.Builder
	builder.WriteString("ScheduledSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ss.ID))
	builder.WriteString("session_id=")
	builder.WriteString(ss.SessionID)
	builder.WriteString(", ")
	builder.WriteString("profile_id=")
	builder.WriteString(ss.ProfileID)
	builder.WriteString(", ")
	builder.WriteString("section_id=")
	builder.WriteString(ss.SectionID)
	builder.WriteString(", ")
	builder.WriteString("piece_id=")
	builder.WriteString(ss.PieceID)
	builder.WriteString(", ")
	builder.WriteString("scheduled_date=")
	builder.WriteString(ss.ScheduledDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", ss.Status))
	builder.WriteString(", ")
	builder.WriteString("estimated_minutes=")
	builder.WriteString(fmt.Sprintf("%v", ss.EstimatedMinutes))
	builder.WriteString(", ")
	builder.WriteString("tau=")
	builder.WriteString(fmt.Sprintf("%v", ss.Tau))
	builder.WriteByte(')')
	return builder.String()
}

// ScheduledSessions is a parsable slice of ScheduledSession.
type ScheduledSessions []*ScheduledSession
