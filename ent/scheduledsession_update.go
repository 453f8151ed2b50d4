// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hartmut/reprise/ent/predicate"
	"github.com/hartmut/reprise/ent/scheduledsession"
)

// ScheduledSessionUpdate is the builder for updating ScheduledSession entities.
type ScheduledSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduledSessionMutation
}

// Where appends a list predicates to the ScheduledSessionUpdate builder.
func (ssu *ScheduledSessionUpdate) Where(ps ...predicate.ScheduledSession) *ScheduledSessionUpdate {
	ssu.mutation.Where(ps...)
	return ssu
}

// SetSessionID sets the "session_id" field.
func (ssu *ScheduledSessionUpdate) SetSessionID(s string) *ScheduledSessionUpdate {
	ssu.mutation.SetSessionID(s)
	return ssu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (ssu *ScheduledSessionUpdate) SetNillableSessionID(s *string) *ScheduledSessionUpdate {
	if s != nil {
		ssu.SetSessionID(*s)
	}
	return ssu
}

// SetProfileID sets the "profile_id" field.
func (ssu *ScheduledSessionUpdate) SetProfileID(s string) *ScheduledSessionUpdate {
	ssu.mutation.SetProfileID(s)
	return ssu
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (ssu *ScheduledSessionUpdate) SetNillableProfileID(s *string) *ScheduledSessionUpdate {
	if s != nil {
		ssu.SetProfileID(*s)
	}
	return ssu
}

// SetSectionID sets the "section_id" field.
func (ssu *ScheduledSessionUpdate) SetSectionID(s string) *ScheduledSessionUpdate {
	ssu.mutation.SetSectionID(s)
	return ssu
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (ssu *ScheduledSessionUpdate) SetNillableSectionID(s *string) *ScheduledSessionUpdate {
	if s != nil {
		ssu.SetSectionID(*s)
	}
	return ssu
}

// SetPieceID sets the "piece_id" field.
func (ssu *ScheduledSessionUpdate) SetPieceID(s string) *ScheduledSessionUpdate {
	ssu.mutation.SetPieceID(s)
	return ssu
}

// SetNillablePieceID sets the "piece_id" field if the given value is not nil.
func (ssu *ScheduledSessionUpdate) SetNillablePieceID(s *string) *ScheduledSessionUpdate {
	if s != nil {
		ssu.SetPieceID(*s)
	}
	return ssu
}

// ClearPieceID clears the value of the "piece_id" field.
func (ssu *ScheduledSessionUpdate) ClearPieceID() *ScheduledSessionUpdate {
	ssu.mutation.ClearPieceID()
	return ssu
}

// SetScheduledDate sets the "scheduled_date" field.
func (ssu *ScheduledSessionUpdate) SetScheduledDate(t time.Time) *ScheduledSessionUpdate {
	ssu.mutation.SetScheduledDate(t)
	return ssu
}

// SetNillableScheduledDate sets the "scheduled_date" field if the given value is not nil.
func (ssu *ScheduledSessionUpdate) SetNillableScheduledDate(t *time.Time) *ScheduledSessionUpdate {
	if t != nil {
		ssu.SetScheduledDate(*t)
	}
	return ssu
}

// SetStatus sets the "status" field.
func (ssu *ScheduledSessionUpdate) SetStatus(s scheduledsession.Status) *ScheduledSessionUpdate {
	ssu.mutation.SetStatus(s)
	return ssu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ssu *ScheduledSessionUpdate) SetNillableStatus(s *scheduledsession.Status) *ScheduledSessionUpdate {
	if s != nil {
		ssu.SetStatus(*s)
	}
	return ssu
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (ssu *ScheduledSessionUpdate) SetEstimatedMinutes(i int) *ScheduledSessionUpdate {
	ssu.mutation.ResetEstimatedMinutes()
	ssu.mutation.SetEstimatedMinutes(i)
	return ssu
}

// SetNillableEstimatedMinutes sets the "estimated_minutes" field if the given value is not nil.
func (ssu *ScheduledSessionUpdate) SetNillableEstimatedMinutes(i *int) *ScheduledSessionUpdate {
	if i != nil {
		ssu.SetEstimatedMinutes(*i)
	}
	return ssu
}

// AddEstimatedMinutes adds i to the "estimated_minutes" field.
func (ssu *ScheduledSessionUpdate) AddEstimatedMinutes(i int) *ScheduledSessionUpdate {
	ssu.mutation.AddEstimatedMinutes(i)
	return ssu
}

// SetTau sets the "tau" field.
func (ssu *ScheduledSessionUpdate) SetTau(f float64) *ScheduledSessionUpdate {
	ssu.mutation.ResetTau()
	ssu.mutation.SetTau(f)
	return ssu
}

// SetNillableTau sets the "tau" field if the given value is not nil.
func (ssu *ScheduledSessionUpdate) SetNillableTau(f *float64) *ScheduledSessionUpdate {
	if f != nil {
		ssu.SetTau(*f)
	}
	return ssu
}

// AddTau adds f to the "tau" field.
func (ssu *ScheduledSessionUpdate) AddTau(f float64) *ScheduledSessionUpdate {
	ssu.mutation.AddTau(f)
	return ssu
}

// Mutation returns the ScheduledSessionMutation object of the builder.
func (ssu *ScheduledSessionUpdate) Mutation() *ScheduledSessionMutation {
	return ssu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ssu *ScheduledSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ssu.sqlSave, ssu.mutation, ssu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ssu *ScheduledSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := ssu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ssu *ScheduledSessionUpdate) Exec(ctx context.Context) error {
	_, err := ssu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ssu *ScheduledSessionUpdate) ExecX(ctx context.Context) {
	if err := ssu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ssu *ScheduledSessionUpdate) check() error {
	if v, ok := ssu.mutation.SessionID(); ok {
		if err := scheduledsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledSession.session_id": %w`, err)}
		}
	}
	if v, ok := ssu.mutation.ProfileID(); ok {
		if err := scheduledsession.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledSession.profile_id": %w`, err)}
		}
	}
	if v, ok := ssu.mutation.SectionID(); ok {
		if err := scheduledsession.SectionIDValidator(v); err != nil {
			return &ValidationError{Name: "section_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledSession.section_id": %w`, err)}
		}
	}
	if v, ok := ssu.mutation.Status(); ok {
		if err := scheduledsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledSession.status": %w`, err)}
		}
	}
	return nil
}

func (ssu *ScheduledSessionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ssu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledsession.Table, scheduledsession.Columns, sqlgraph.NewFieldSpec(scheduledsession.FieldID, field.TypeInt))
	if ps := ssu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ssu.mutation.SessionID(); ok {
		_spec.SetField(scheduledsession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := ssu.mutation.ProfileID(); ok {
		_spec.SetField(scheduledsession.FieldProfileID, field.TypeString, value)
	}
	if value, ok := ssu.mutation.SectionID(); ok {
		_spec.SetField(scheduledsession.FieldSectionID, field.TypeString, value)
	}
	if value, ok := ssu.mutation.PieceID(); ok {
		_spec.SetField(scheduledsession.FieldPieceID, field.TypeString, value)
	}
	if ssu.mutation.PieceIDCleared() {
		_spec.ClearField(scheduledsession.FieldPieceID, field.TypeString)
	}
	if value, ok := ssu.mutation.ScheduledDate(); ok {
		_spec.SetField(scheduledsession.FieldScheduledDate, field.TypeTime, value)
	}
	if value, ok := ssu.mutation.Status(); ok {
		_spec.SetField(scheduledsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := ssu.mutation.EstimatedMinutes(); ok {
		_spec.SetField(scheduledsession.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := ssu.mutation.AddedEstimatedMinutes(); ok {
		_spec.AddField(scheduledsession.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := ssu.mutation.Tau(); ok {
		_spec.SetField(scheduledsession.FieldTau, field.TypeFloat64, value)
	}
	if value, ok := ssu.mutation.AddedTau(); ok {
		_spec.AddField(scheduledsession.FieldTau, field.TypeFloat64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ssu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ssu.mutation.done = true
	return n, nil
}

// ScheduledSessionUpdateOne is the builder for updating a single ScheduledSession entity.
type ScheduledSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduledSessionMutation
}

// SetSessionID sets the "session_id" field.
func (ssuo *ScheduledSessionUpdateOne) SetSessionID(s string) *ScheduledSessionUpdateOne {
	ssuo.mutation.SetSessionID(s)
	return ssuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (ssuo *ScheduledSessionUpdateOne) SetNillableSessionID(s *string) *ScheduledSessionUpdateOne {
	if s != nil {
		ssuo.SetSessionID(*s)
	}
	return ssuo
}

// SetProfileID sets the "profile_id" field.
func (ssuo *ScheduledSessionUpdateOne) SetProfileID(s string) *ScheduledSessionUpdateOne {
	ssuo.mutation.SetProfileID(s)
	return ssuo
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (ssuo *ScheduledSessionUpdateOne) SetNillableProfileID(s *string) *ScheduledSessionUpdateOne {
	if s != nil {
		ssuo.SetProfileID(*s)
	}
	return ssuo
}

// SetSectionID sets the "section_id" field.
func (ssuo *ScheduledSessionUpdateOne) SetSectionID(s string) *ScheduledSessionUpdateOne {
	ssuo.mutation.SetSectionID(s)
	return ssuo
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (ssuo *ScheduledSessionUpdateOne) SetNillableSectionID(s *string) *ScheduledSessionUpdateOne {
	if s != nil {
		ssuo.SetSectionID(*s)
	}
	return ssuo
}

// SetPieceID sets the "piece_id" field.
func (ssuo *ScheduledSessionUpdateOne) SetPieceID(s string) *ScheduledSessionUpdateOne {
	ssuo.mutation.SetPieceID(s)
	return ssuo
}

// SetNillablePieceID sets the "piece_id" field if the given value is not nil.
func (ssuo *ScheduledSessionUpdateOne) SetNillablePieceID(s *string) *ScheduledSessionUpdateOne {
	if s != nil {
		ssuo.SetPieceID(*s)
	}
	return ssuo
}

// ClearPieceID clears the value of the "piece_id" field.
func (ssuo *ScheduledSessionUpdateOne) ClearPieceID() *ScheduledSessionUpdateOne {
	ssuo.mutation.ClearPieceID()
	return ssuo
}

// SetScheduledDate sets the "scheduled_date" field.
func (ssuo *ScheduledSessionUpdateOne) SetScheduledDate(t time.Time) *ScheduledSessionUpdateOne {
	ssuo.mutation.SetScheduledDate(t)
	return ssuo
}

// SetNillableScheduledDate sets the "scheduled_date" field if the given value is not nil.
func (ssuo *ScheduledSessionUpdateOne) SetNillableScheduledDate(t *time.Time) *ScheduledSessionUpdateOne {
	if t != nil {
		ssuo.SetScheduledDate(*t)
	}
	return ssuo
}

// SetStatus sets the "status" field.
func (ssuo *ScheduledSessionUpdateOne) SetStatus(s scheduledsession.Status) *ScheduledSessionUpdateOne {
	ssuo.mutation.SetStatus(s)
	return ssuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ssuo *ScheduledSessionUpdateOne) SetNillableStatus(s *scheduledsession.Status) *ScheduledSessionUpdateOne {
	if s != nil {
		ssuo.SetStatus(*s)
	}
	return ssuo
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (ssuo *ScheduledSessionUpdateOne) SetEstimatedMinutes(i int) *ScheduledSessionUpdateOne {
	ssuo.mutation.ResetEstimatedMinutes()
	ssuo.mutation.SetEstimatedMinutes(i)
	return ssuo
}

// SetNillableEstimatedMinutes sets the "estimated_minutes" field if the given value is not nil.
func (ssuo *ScheduledSessionUpdateOne) SetNillableEstimatedMinutes(i *int) *ScheduledSessionUpdateOne {
	if i != nil {
		ssuo.SetEstimatedMinutes(*i)
	}
	return ssuo
}

// AddEstimatedMinutes adds i to the "estimated_minutes" field.
func (ssuo *ScheduledSessionUpdateOne) AddEstimatedMinutes(i int) *ScheduledSessionUpdateOne {
	ssuo.mutation.AddEstimatedMinutes(i)
	return ssuo
}

// SetTau sets the "tau" field.
func (ssuo *ScheduledSessionUpdateOne) SetTau(f float64) *ScheduledSessionUpdateOne {
	ssuo.mutation.ResetTau()
	ssuo.mutation.SetTau(f)
	return ssuo
}

// SetNillableTau sets the "tau" field if the given value is not nil.
func (ssuo *ScheduledSessionUpdateOne) SetNillableTau(f *float64) *ScheduledSessionUpdateOne {
	if f != nil {
		ssuo.SetTau(*f)
	}
	return ssuo
}

// AddTau adds f to the "tau" field.
func (ssuo *ScheduledSessionUpdateOne) AddTau(f float64) *ScheduledSessionUpdateOne {
	ssuo.mutation.AddTau(f)
	return ssuo
}

// Mutation returns the ScheduledSessionMutation object of the builder.
func (ssuo *ScheduledSessionUpdateOne) Mutation() *ScheduledSessionMutation {
	return ssuo.mutation
}

// Where appends a list predicates to the ScheduledSessionUpdate builder.
func (ssuo *ScheduledSessionUpdateOne) Where(ps ...predicate.ScheduledSession) *ScheduledSessionUpdateOne {
	ssuo.mutation.Where(ps...)
	return ssuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ssuo *ScheduledSessionUpdateOne) Select(field string, fields ...string) *ScheduledSessionUpdateOne {
	ssuo.fields = append([]string{field}, fields...)
	return ssuo
}

// Save executes the query and returns the updated ScheduledSession entity.
func (ssuo *ScheduledSessionUpdateOne) Save(ctx context.Context) (*ScheduledSession, error) {
	return withHooks(ctx, ssuo.sqlSave, ssuo.mutation, ssuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ssuo *ScheduledSessionUpdateOne) SaveX(ctx context.Context) *ScheduledSession {
	node, err := ssuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ssuo *ScheduledSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := ssuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ssuo *ScheduledSessionUpdateOne) ExecX(ctx context.Context) {
	if err := ssuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ssuo *ScheduledSessionUpdateOne) check() error {
	if v, ok := ssuo.mutation.SessionID(); ok {
		if err := scheduledsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledSession.session_id": %w`, err)}
		}
	}
	if v, ok := ssuo.mutation.ProfileID(); ok {
		if err := scheduledsession.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledSession.profile_id": %w`, err)}
		}
	}
	if v, ok := ssuo.mutation.SectionID(); ok {
		if err := scheduledsession.SectionIDValidator(v); err != nil {
			return &ValidationError{Name: "section_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledSession.section_id": %w`, err)}
		}
	}
	if v, ok := ssuo.mutation.Status(); ok {
		if err := scheduledsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledSession.status": %w`, err)}
		}
	}
	return nil
}

func (ssuo *ScheduledSessionUpdateOne) sqlSave(ctx context.Context) (_node *ScheduledSession, err error) {
	if err := ssuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledsession.Table, scheduledsession.Columns, sqlgraph.NewFieldSpec(scheduledsession.FieldID, field.TypeInt))
	id, ok := ssuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduledSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ssuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduledsession.FieldID)
		for _, f := range fields {
			if !scheduledsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduledsession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ssuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ssuo.mutation.SessionID(); ok {
		_spec.SetField(scheduledsession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := ssuo.mutation.ProfileID(); ok {
		_spec.SetField(scheduledsession.FieldProfileID, field.TypeString, value)
	}
	if value, ok := ssuo.mutation.SectionID(); ok {
		_spec.SetField(scheduledsession.FieldSectionID, field.TypeString, value)
	}
	if value, ok := ssuo.mutation.PieceID(); ok {
		_spec.SetField(scheduledsession.FieldPieceID, field.TypeString, value)
	}
	if ssuo.mutation.PieceIDCleared() {
		_spec.ClearField(scheduledsession.FieldPieceID, field.TypeString)
	}
	if value, ok := ssuo.mutation.ScheduledDate(); ok {
		_spec.SetField(scheduledsession.FieldScheduledDate, field.TypeTime, value)
	}
	if value, ok := ssuo.mutation.Status(); ok {
		_spec.SetField(scheduledsession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := ssuo.mutation.EstimatedMinutes(); ok {
		_spec.SetField(scheduledsession.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := ssuo.mutation.AddedEstimatedMinutes(); ok {
		_spec.AddField(scheduledsession.FieldEstimatedMinutes, field.TypeInt, value)
	}
	if value, ok := ssuo.mutation.Tau(); ok {
		_spec.SetField(scheduledsession.FieldTau, field.TypeFloat64, value)
	}
	if value, ok := ssuo.mutation.AddedTau(); ok {
		_spec.AddField(scheduledsession.FieldTau, field.TypeFloat64, value)
	}
	_node = &ScheduledSession{config: ssuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ssuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ssuo.mutation.done = true
	return _node, nil
}
