// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hartmut/reprise/ent/practiceevent"
	"github.com/hartmut/reprise/ent/predicate"
)

// PracticeEventUpdate is the builder for updating PracticeEvent entities.
type PracticeEventUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeEventMutation
}

// Where appends a list predicates to the PracticeEventUpdate builder.
func (peu *PracticeEventUpdate) Where(ps ...predicate.PracticeEvent) *PracticeEventUpdate {
	peu.mutation.Where(ps...)
	return peu
}

// SetProfileID sets the "profile_id" field.
func (peu *PracticeEventUpdate) SetProfileID(s string) *PracticeEventUpdate {
	peu.mutation.SetProfileID(s)
	return peu
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (peu *PracticeEventUpdate) SetNillableProfileID(s *string) *PracticeEventUpdate {
	if s != nil {
		peu.SetProfileID(*s)
	}
	return peu
}

// SetSectionID sets the "section_id" field.
func (peu *PracticeEventUpdate) SetSectionID(s string) *PracticeEventUpdate {
	peu.mutation.SetSectionID(s)
	return peu
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (peu *PracticeEventUpdate) SetNillableSectionID(s *string) *PracticeEventUpdate {
	if s != nil {
		peu.SetSectionID(*s)
	}
	return peu
}

// SetPieceID sets the "piece_id" field.
func (peu *PracticeEventUpdate) SetPieceID(s string) *PracticeEventUpdate {
	peu.mutation.SetPieceID(s)
	return peu
}

// SetNillablePieceID sets the "piece_id" field if the given value is not nil.
func (peu *PracticeEventUpdate) SetNillablePieceID(s *string) *PracticeEventUpdate {
	if s != nil {
		peu.SetPieceID(*s)
	}
	return peu
}

// ClearPieceID clears the value of the "piece_id" field.
func (peu *PracticeEventUpdate) ClearPieceID() *PracticeEventUpdate {
	peu.mutation.ClearPieceID()
	return peu
}

// SetPerformance sets the "performance" field.
func (peu *PracticeEventUpdate) SetPerformance(s string) *PracticeEventUpdate {
	peu.mutation.SetPerformance(s)
	return peu
}

// SetNillablePerformance sets the "performance" field if the given value is not nil.
func (peu *PracticeEventUpdate) SetNillablePerformance(s *string) *PracticeEventUpdate {
	if s != nil {
		peu.SetPerformance(*s)
	}
	return peu
}

// SetScore sets the "score" field.
func (peu *PracticeEventUpdate) SetScore(f float64) *PracticeEventUpdate {
	peu.mutation.ResetScore()
	peu.mutation.SetScore(f)
	return peu
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (peu *PracticeEventUpdate) SetNillableScore(f *float64) *PracticeEventUpdate {
	if f != nil {
		peu.SetScore(*f)
	}
	return peu
}

// AddScore adds f to the "score" field.
func (peu *PracticeEventUpdate) AddScore(f float64) *PracticeEventUpdate {
	peu.mutation.AddScore(f)
	return peu
}

// SetRepetitions sets the "repetitions" field.
func (peu *PracticeEventUpdate) SetRepetitions(i int) *PracticeEventUpdate {
	peu.mutation.ResetRepetitions()
	peu.mutation.SetRepetitions(i)
	return peu
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (peu *PracticeEventUpdate) SetNillableRepetitions(i *int) *PracticeEventUpdate {
	if i != nil {
		peu.SetRepetitions(*i)
	}
	return peu
}

// AddRepetitions adds i to the "repetitions" field.
func (peu *PracticeEventUpdate) AddRepetitions(i int) *PracticeEventUpdate {
	peu.mutation.AddRepetitions(i)
	return peu
}

// SetExecutionFailures sets the "execution_failures" field.
func (peu *PracticeEventUpdate) SetExecutionFailures(i int) *PracticeEventUpdate {
	peu.mutation.ResetExecutionFailures()
	peu.mutation.SetExecutionFailures(i)
	return peu
}

// SetNillableExecutionFailures sets the "execution_failures" field if the given value is not nil.
func (peu *PracticeEventUpdate) SetNillableExecutionFailures(i *int) *PracticeEventUpdate {
	if i != nil {
		peu.SetExecutionFailures(*i)
	}
	return peu
}

// AddExecutionFailures adds i to the "execution_failures" field.
func (peu *PracticeEventUpdate) AddExecutionFailures(i int) *PracticeEventUpdate {
	peu.mutation.AddExecutionFailures(i)
	return peu
}

// SetMemoryFailures sets the "memory_failures" field.
func (peu *PracticeEventUpdate) SetMemoryFailures(i int) *PracticeEventUpdate {
	peu.mutation.ResetMemoryFailures()
	peu.mutation.SetMemoryFailures(i)
	return peu
}

// SetNillableMemoryFailures sets the "memory_failures" field if the given value is not nil.
func (peu *PracticeEventUpdate) SetNillableMemoryFailures(i *int) *PracticeEventUpdate {
	if i != nil {
		peu.SetMemoryFailures(*i)
	}
	return peu
}

// AddMemoryFailures adds i to the "memory_failures" field.
func (peu *PracticeEventUpdate) AddMemoryFailures(i int) *PracticeEventUpdate {
	peu.mutation.AddMemoryFailures(i)
	return peu
}

// SetDeleted sets the "deleted" field.
func (peu *PracticeEventUpdate) SetDeleted(b bool) *PracticeEventUpdate {
	peu.mutation.SetDeleted(b)
	return peu
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (peu *PracticeEventUpdate) SetNillableDeleted(b *bool) *PracticeEventUpdate {
	if b != nil {
		peu.SetDeleted(*b)
	}
	return peu
}

// Mutation returns the PracticeEventMutation object of the builder.
func (peu *PracticeEventUpdate) Mutation() *PracticeEventMutation {
	return peu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (peu *PracticeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, peu.sqlSave, peu.mutation, peu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (peu *PracticeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := peu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (peu *PracticeEventUpdate) Exec(ctx context.Context) error {
	_, err := peu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (peu *PracticeEventUpdate) ExecX(ctx context.Context) {
	if err := peu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (peu *PracticeEventUpdate) check() error {
	if v, ok := peu.mutation.ProfileID(); ok {
		if err := practiceevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.profile_id": %w`, err)}
		}
	}
	if v, ok := peu.mutation.SectionID(); ok {
		if err := practiceevent.SectionIDValidator(v); err != nil {
			return &ValidationError{Name: "section_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.section_id": %w`, err)}
		}
	}
	if v, ok := peu.mutation.Performance(); ok {
		if err := practiceevent.PerformanceValidator(v); err != nil {
			return &ValidationError{Name: "performance", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.performance": %w`, err)}
		}
	}
	return nil
}

func (peu *PracticeEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := peu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(practiceevent.Table, practiceevent.Columns, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	if ps := peu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := peu.mutation.ProfileID(); ok {
		_spec.SetField(practiceevent.FieldProfileID, field.TypeString, value)
	}
	if value, ok := peu.mutation.SectionID(); ok {
		_spec.SetField(practiceevent.FieldSectionID, field.TypeString, value)
	}
	if value, ok := peu.mutation.PieceID(); ok {
		_spec.SetField(practiceevent.FieldPieceID, field.TypeString, value)
	}
	if peu.mutation.PieceIDCleared() {
		_spec.ClearField(practiceevent.FieldPieceID, field.TypeString)
	}
	if value, ok := peu.mutation.Performance(); ok {
		_spec.SetField(practiceevent.FieldPerformance, field.TypeString, value)
	}
	if value, ok := peu.mutation.Score(); ok {
		_spec.SetField(practiceevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := peu.mutation.AddedScore(); ok {
		_spec.AddField(practiceevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := peu.mutation.Repetitions(); ok {
		_spec.SetField(practiceevent.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := peu.mutation.AddedRepetitions(); ok {
		_spec.AddField(practiceevent.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := peu.mutation.ExecutionFailures(); ok {
		_spec.SetField(practiceevent.FieldExecutionFailures, field.TypeInt, value)
	}
	if value, ok := peu.mutation.AddedExecutionFailures(); ok {
		_spec.AddField(practiceevent.FieldExecutionFailures, field.TypeInt, value)
	}
	if value, ok := peu.mutation.MemoryFailures(); ok {
		_spec.SetField(practiceevent.FieldMemoryFailures, field.TypeInt, value)
	}
	if value, ok := peu.mutation.AddedMemoryFailures(); ok {
		_spec.AddField(practiceevent.FieldMemoryFailures, field.TypeInt, value)
	}
	if value, ok := peu.mutation.Deleted(); ok {
		_spec.SetField(practiceevent.FieldDeleted, field.TypeBool, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, peu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	peu.mutation.done = true
	return n, nil
}

// PracticeEventUpdateOne is the builder for updating a single PracticeEvent entity.
type PracticeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeEventMutation
}

// SetProfileID sets the "profile_id" field.
func (peuo *PracticeEventUpdateOne) SetProfileID(s string) *PracticeEventUpdateOne {
	peuo.mutation.SetProfileID(s)
	return peuo
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (peuo *PracticeEventUpdateOne) SetNillableProfileID(s *string) *PracticeEventUpdateOne {
	if s != nil {
		peuo.SetProfileID(*s)
	}
	return peuo
}

// SetSectionID sets the "section_id" field.
func (peuo *PracticeEventUpdateOne) SetSectionID(s string) *PracticeEventUpdateOne {
	peuo.mutation.SetSectionID(s)
	return peuo
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (peuo *PracticeEventUpdateOne) SetNillableSectionID(s *string) *PracticeEventUpdateOne {
	if s != nil {
		peuo.SetSectionID(*s)
	}
	return peuo
}

// SetPieceID sets the "piece_id" field.
func (peuo *PracticeEventUpdateOne) SetPieceID(s string) *PracticeEventUpdateOne {
	peuo.mutation.SetPieceID(s)
	return peuo
}

// SetNillablePieceID sets the "piece_id" field if the given value is not nil.
func (peuo *PracticeEventUpdateOne) SetNillablePieceID(s *string) *PracticeEventUpdateOne {
	if s != nil {
		peuo.SetPieceID(*s)
	}
	return peuo
}

// ClearPieceID clears the value of the "piece_id" field.
func (peuo *PracticeEventUpdateOne) ClearPieceID() *PracticeEventUpdateOne {
	peuo.mutation.ClearPieceID()
	return peuo
}

// SetPerformance sets the "performance" field.
func (peuo *PracticeEventUpdateOne) SetPerformance(s string) *PracticeEventUpdateOne {
	peuo.mutation.SetPerformance(s)
	return peuo
}

// SetNillablePerformance sets the "performance" field if the given value is not nil.
func (peuo *PracticeEventUpdateOne) SetNillablePerformance(s *string) *PracticeEventUpdateOne {
	if s != nil {
		peuo.SetPerformance(*s)
	}
	return peuo
}

// SetScore sets the "score" field.
func (peuo *PracticeEventUpdateOne) SetScore(f float64) *PracticeEventUpdateOne {
	peuo.mutation.ResetScore()
	peuo.mutation.SetScore(f)
	return peuo
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (peuo *PracticeEventUpdateOne) SetNillableScore(f *float64) *PracticeEventUpdateOne {
	if f != nil {
		peuo.SetScore(*f)
	}
	return peuo
}

// AddScore adds f to the "score" field.
func (peuo *PracticeEventUpdateOne) AddScore(f float64) *PracticeEventUpdateOne {
	peuo.mutation.AddScore(f)
	return peuo
}

// SetRepetitions sets the "repetitions" field.
func (peuo *PracticeEventUpdateOne) SetRepetitions(i int) *PracticeEventUpdateOne {
	peuo.mutation.ResetRepetitions()
	peuo.mutation.SetRepetitions(i)
	return peuo
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (peuo *PracticeEventUpdateOne) SetNillableRepetitions(i *int) *PracticeEventUpdateOne {
	if i != nil {
		peuo.SetRepetitions(*i)
	}
	return peuo
}

// AddRepetitions adds i to the "repetitions" field.
func (peuo *PracticeEventUpdateOne) AddRepetitions(i int) *PracticeEventUpdateOne {
	peuo.mutation.AddRepetitions(i)
	return peuo
}

// SetExecutionFailures sets the "execution_failures" field.
func (peuo *PracticeEventUpdateOne) SetExecutionFailures(i int) *PracticeEventUpdateOne {
	peuo.mutation.ResetExecutionFailures()
	peuo.mutation.SetExecutionFailures(i)
	return peuo
}

// SetNillableExecutionFailures sets the "execution_failures" field if the given value is not nil.
func (peuo *PracticeEventUpdateOne) SetNillableExecutionFailures(i *int) *PracticeEventUpdateOne {
	if i != nil {
		peuo.SetExecutionFailures(*i)
	}
	return peuo
}

// AddExecutionFailures adds i to the "execution_failures" field.
func (peuo *PracticeEventUpdateOne) AddExecutionFailures(i int) *PracticeEventUpdateOne {
	peuo.mutation.AddExecutionFailures(i)
	return peuo
}

// SetMemoryFailures sets the "memory_failures" field.
func (peuo *PracticeEventUpdateOne) SetMemoryFailures(i int) *PracticeEventUpdateOne {
	peuo.mutation.ResetMemoryFailures()
	peuo.mutation.SetMemoryFailures(i)
	return peuo
}

// SetNillableMemoryFailures sets the "memory_failures" field if the given value is not nil.
func (peuo *PracticeEventUpdateOne) SetNillableMemoryFailures(i *int) *PracticeEventUpdateOne {
	if i != nil {
		peuo.SetMemoryFailures(*i)
	}
	return peuo
}

// AddMemoryFailures adds i to the "memory_failures" field.
func (peuo *PracticeEventUpdateOne) AddMemoryFailures(i int) *PracticeEventUpdateOne {
	peuo.mutation.AddMemoryFailures(i)
	return peuo
}

// SetDeleted sets the "deleted" field.
func (peuo *PracticeEventUpdateOne) SetDeleted(b bool) *PracticeEventUpdateOne {
	peuo.mutation.SetDeleted(b)
	return peuo
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (peuo *PracticeEventUpdateOne) SetNillableDeleted(b *bool) *PracticeEventUpdateOne {
	if b != nil {
		peuo.SetDeleted(*b)
	}
	return peuo
}

// Mutation returns the PracticeEventMutation object of the builder.
func (peuo *PracticeEventUpdateOne) Mutation() *PracticeEventMutation {
	return peuo.mutation
}

// Where appends a list predicates to the PracticeEventUpdate builder.
func (peuo *PracticeEventUpdateOne) Where(ps ...predicate.PracticeEvent) *PracticeEventUpdateOne {
	peuo.mutation.Where(ps...)
	return peuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (peuo *PracticeEventUpdateOne) Select(field string, fields ...string) *PracticeEventUpdateOne {
	peuo.fields = append([]string{field}, fields...)
	return peuo
}

// Save executes the query and returns the updated PracticeEvent entity.
func (peuo *PracticeEventUpdateOne) Save(ctx context.Context) (*PracticeEvent, error) {
	return withHooks(ctx, peuo.sqlSave, peuo.mutation, peuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (peuo *PracticeEventUpdateOne) SaveX(ctx context.Context) *PracticeEvent {
	node, err := peuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (peuo *PracticeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := peuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (peuo *PracticeEventUpdateOne) ExecX(ctx context.Context) {
	if err := peuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (peuo *PracticeEventUpdateOne) check() error {
	if v, ok := peuo.mutation.ProfileID(); ok {
		if err := practiceevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.profile_id": %w`, err)}
		}
	}
	if v, ok := peuo.mutation.SectionID(); ok {
		if err := practiceevent.SectionIDValidator(v); err != nil {
			return &ValidationError{Name: "section_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.section_id": %w`, err)}
		}
	}
	if v, ok := peuo.mutation.Performance(); ok {
		if err := practiceevent.PerformanceValidator(v); err != nil {
			return &ValidationError{Name: "performance", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.performance": %w`, err)}
		}
	}
	return nil
}

func (peuo *PracticeEventUpdateOne) sqlSave(ctx context.Context) (_node *PracticeEvent, err error) {
	if err := peuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practiceevent.Table, practiceevent.Columns, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	id, ok := peuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := peuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practiceevent.FieldID)
		for _, f := range fields {
			if !practiceevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practiceevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := peuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := peuo.mutation.ProfileID(); ok {
		_spec.SetField(practiceevent.FieldProfileID, field.TypeString, value)
	}
	if value, ok := peuo.mutation.SectionID(); ok {
		_spec.SetField(practiceevent.FieldSectionID, field.TypeString, value)
	}
	if value, ok := peuo.mutation.PieceID(); ok {
		_spec.SetField(practiceevent.FieldPieceID, field.TypeString, value)
	}
	if peuo.mutation.PieceIDCleared() {
		_spec.ClearField(practiceevent.FieldPieceID, field.TypeString)
	}
	if value, ok := peuo.mutation.Performance(); ok {
		_spec.SetField(practiceevent.FieldPerformance, field.TypeString, value)
	}
	if value, ok := peuo.mutation.Score(); ok {
		_spec.SetField(practiceevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := peuo.mutation.AddedScore(); ok {
		_spec.AddField(practiceevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := peuo.mutation.Repetitions(); ok {
		_spec.SetField(practiceevent.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := peuo.mutation.AddedRepetitions(); ok {
		_spec.AddField(practiceevent.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := peuo.mutation.ExecutionFailures(); ok {
		_spec.SetField(practiceevent.FieldExecutionFailures, field.TypeInt, value)
	}
	if value, ok := peuo.mutation.AddedExecutionFailures(); ok {
		_spec.AddField(practiceevent.FieldExecutionFailures, field.TypeInt, value)
	}
	if value, ok := peuo.mutation.MemoryFailures(); ok {
		_spec.SetField(practiceevent.FieldMemoryFailures, field.TypeInt, value)
	}
	if value, ok := peuo.mutation.AddedMemoryFailures(); ok {
		_spec.AddField(practiceevent.FieldMemoryFailures, field.TypeInt, value)
	}
	if value, ok := peuo.mutation.Deleted(); ok {
		_spec.SetField(practiceevent.FieldDeleted, field.TypeBool, value)
	}
	_node = &PracticeEvent{config: peuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, peuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	peuo.mutation.done = true
	return _node, nil
}
