// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hartmut/reprise/ent/lifecycleevent"
)

// LifecycleEvent is the model entity for the LifecycleEvent schema.
type LifecycleEvent struct {
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
	// FromState holds the value of the "from_state" field.
	FromState int `json:"from_state,omitempty"`
	// ToState holds the value of the "to_state" field.
	ToState int `json:"to_state,omitempty"`
	// Suppressed holds the value of the "suppressed" field.
	Suppressed bool `json:"suppressed,omitempty"`
	// Tau holds the value of the "tau" field.
	Tau float64 `json:"tau,omitempty"`
	// IntervalDays holds the value of the "interval_days" field.
	IntervalDays int `json:"interval_days,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LifecycleEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lifecycleevent.FieldSuppressed:
			values[i] = new(sql.NullBool)
		case lifecycleevent.FieldTau:
			values[i] = new(sql.NullFloat64)
		case lifecycleevent.FieldID, lifecycleevent.FieldSequence, lifecycleevent.FieldFromState, lifecycleevent.FieldToState, lifecycleevent.FieldIntervalDays:
			values[i] = new(sql.NullInt64)
		case lifecycleevent.FieldProfileID, lifecycleevent.FieldSectionID:
			values[i] = new(sql.NullString)
		case lifecycleevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LifecycleEvent fields.
func (le *LifecycleEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lifecycleevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			le.ID = int(value.Int64)
		case lifecycleevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				le.Sequence = value.Int64
			}
		case lifecycleevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				le.Timestamp = value.Time
			}
		case lifecycleevent.FieldProfileID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value.Valid {
				le.ProfileID = value.String
			}
		case lifecycleevent.FieldSectionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section_id", values[i])
			} else if value.Valid {
				le.SectionID = value.String
			}
		case lifecycleevent.FieldFromState:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field from_state", values[i])
			} else if value.Valid {
				le.FromState = int(value.Int64)
			}
		case lifecycleevent.FieldToState:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field to_state", values[i])
			} else if value.Valid {
				le.ToState = int(value.Int64)
			}
		case lifecycleevent.FieldSuppressed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field suppressed", values[i])
			} else if value.Valid {
				le.Suppressed = value.Bool
			}
		case lifecycleevent.FieldTau:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field tau", values[i])
			} else if value.Valid {
				le.Tau = value.Float64
			}
		case lifecycleevent.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				le.IntervalDays = int(value.Int64)
			}
		default:
			le.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LifecycleEvent.
// This includes values selected through modifiers, order, etc.
func (le *LifecycleEvent) Value(name string) (ent.Value, error) {
	return le.selectValues.Get(name)
}

// Update returns a builder for updating this LifecycleEvent.
// Note that you need to call LifecycleEvent.Unwrap() before calling this method if this LifecycleEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (le *LifecycleEvent) Update() *LifecycleEventUpdateOne {
	return NewLifecycleEventClient(le.config).UpdateOne(le)
}

// Unwrap unwraps the LifecycleEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (le *LifecycleEvent) Unwrap() *LifecycleEvent {
	_tx, ok := le.config.driver.(*txDriver)
	if !ok {
		panic("ent: LifecycleEvent is not a transactional entity")
	}
	le.config.driver = _tx.drv
	return le
}

// String implements the fmt.Stringer.
func (le *LifecycleEvent) String() string {
	var builder strings.Builder
	builder.WriteString("LifecycleEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", le.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", le.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(le.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("profile_id=")
	builder.WriteString(le.ProfileID)
	builder.WriteString(", ")
	builder.WriteString("section_id=")
	builder.WriteString(le.SectionID)
	builder.WriteString(", ")
	builder.WriteString("from_state=")
	builder.WriteString(fmt.Sprintf("%v", le.FromState))
	builder.WriteString(", ")
	builder.WriteString("to_state=")
	builder.WriteString(fmt.Sprintf("%v", le.ToState))
	builder.WriteString(", ")
	builder.WriteString("suppressed=")
	builder.WriteString(fmt.Sprintf("%v", le.Suppressed))
	builder.WriteString(", ")
	builder.WriteString("tau=")
	builder.WriteString(fmt.Sprintf("%v", le.Tau))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", le.IntervalDays))
	builder.WriteByte(')')
	return builder.String()
}

// LifecycleEvents is a parsable slice of LifecycleEvent.
type LifecycleEvents []*LifecycleEvent
