// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hartmut/reprise/ent/lifecycleevent"
	"github.com/hartmut/reprise/ent/predicate"
)

// LifecycleEventUpdate is the builder for updating LifecycleEvent entities.
type LifecycleEventUpdate struct {
	config
	hooks    []Hook
	mutation *LifecycleEventMutation
}

// Where appends a list predicates to the LifecycleEventUpdate builder.
func (leu *LifecycleEventUpdate) Where(ps ...predicate.LifecycleEvent) *LifecycleEventUpdate {
	leu.mutation.Where(ps...)
	return leu
}

// SetProfileID sets the "profile_id" field.
func (leu *LifecycleEventUpdate) SetProfileID(s string) *LifecycleEventUpdate {
	leu.mutation.SetProfileID(s)
	return leu
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (leu *LifecycleEventUpdate) SetNillableProfileID(s *string) *LifecycleEventUpdate {
	if s != nil {
		leu.SetProfileID(*s)
	}
	return leu
}

// SetSectionID sets the "section_id" field.
func (leu *LifecycleEventUpdate) SetSectionID(s string) *LifecycleEventUpdate {
	leu.mutation.SetSectionID(s)
	return leu
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (leu *LifecycleEventUpdate) SetNillableSectionID(s *string) *LifecycleEventUpdate {
	if s != nil {
		leu.SetSectionID(*s)
	}
	return leu
}

// SetFromState sets the "from_state" field.
func (leu *LifecycleEventUpdate) SetFromState(i int) *LifecycleEventUpdate {
	leu.mutation.ResetFromState()
	leu.mutation.SetFromState(i)
	return leu
}

// SetNillableFromState sets the "from_state" field if the given value is not nil.
func (leu *LifecycleEventUpdate) SetNillableFromState(i *int) *LifecycleEventUpdate {
	if i != nil {
		leu.SetFromState(*i)
	}
	return leu
}

// AddFromState adds i to the "from_state" field.
func (leu *LifecycleEventUpdate) AddFromState(i int) *LifecycleEventUpdate {
	leu.mutation.AddFromState(i)
	return leu
}

// SetToState sets the "to_state" field.
func (leu *LifecycleEventUpdate) SetToState(i int) *LifecycleEventUpdate {
	leu.mutation.ResetToState()
	leu.mutation.SetToState(i)
	return leu
}

// SetNillableToState sets the "to_state" field if the given value is not nil.
func (leu *LifecycleEventUpdate) SetNillableToState(i *int) *LifecycleEventUpdate {
	if i != nil {
		leu.SetToState(*i)
	}
	return leu
}

// AddToState adds i to the "to_state" field.
func (leu *LifecycleEventUpdate) AddToState(i int) *LifecycleEventUpdate {
	leu.mutation.AddToState(i)
	return leu
}

// SetSuppressed sets the "suppressed" field.
func (leu *LifecycleEventUpdate) SetSuppressed(b bool) *LifecycleEventUpdate {
	leu.mutation.SetSuppressed(b)
	return leu
}

// SetNillableSuppressed sets the "suppressed" field if the given value is not nil.
func (leu *LifecycleEventUpdate) SetNillableSuppressed(b *bool) *LifecycleEventUpdate {
	if b != nil {
		leu.SetSuppressed(*b)
	}
	return leu
}

// SetTau sets the "tau" field.
func (leu *LifecycleEventUpdate) SetTau(f float64) *LifecycleEventUpdate {
	leu.mutation.ResetTau()
	leu.mutation.SetTau(f)
	return leu
}

// SetNillableTau sets the "tau" field if the given value is not nil.
func (leu *LifecycleEventUpdate) SetNillableTau(f *float64) *LifecycleEventUpdate {
	if f != nil {
		leu.SetTau(*f)
	}
	return leu
}

// AddTau adds f to the "tau" field.
func (leu *LifecycleEventUpdate) AddTau(f float64) *LifecycleEventUpdate {
	leu.mutation.AddTau(f)
	return leu
}

// SetIntervalDays sets the "interval_days" field.
func (leu *LifecycleEventUpdate) SetIntervalDays(i int) *LifecycleEventUpdate {
	leu.mutation.ResetIntervalDays()
	leu.mutation.SetIntervalDays(i)
	return leu
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (leu *LifecycleEventUpdate) SetNillableIntervalDays(i *int) *LifecycleEventUpdate {
	if i != nil {
		leu.SetIntervalDays(*i)
	}
	return leu
}

// AddIntervalDays adds i to the "interval_days" field.
func (leu *LifecycleEventUpdate) AddIntervalDays(i int) *LifecycleEventUpdate {
	leu.mutation.AddIntervalDays(i)
	return leu
}

// Mutation returns the LifecycleEventMutation object of the builder.
func (leu *LifecycleEventUpdate) Mutation() *LifecycleEventMutation {
	return leu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (leu *LifecycleEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, leu.sqlSave, leu.mutation, leu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (leu *LifecycleEventUpdate) SaveX(ctx context.Context) int {
	affected, err := leu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (leu *LifecycleEventUpdate) Exec(ctx context.Context) error {
	_, err := leu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (leu *LifecycleEventUpdate) ExecX(ctx context.Context) {
	if err := leu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (leu *LifecycleEventUpdate) check() error {
	if v, ok := leu.mutation.ProfileID(); ok {
		if err := lifecycleevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "LifecycleEvent.profile_id": %w`, err)}
		}
	}
	if v, ok := leu.mutation.SectionID(); ok {
		if err := lifecycleevent.SectionIDValidator(v); err != nil {
			return &ValidationError{Name: "section_id", err: fmt.Errorf(`ent: validator failed for field "LifecycleEvent.section_id": %w`, err)}
		}
	}
	return nil
}

func (leu *LifecycleEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := leu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(lifecycleevent.Table, lifecycleevent.Columns, sqlgraph.NewFieldSpec(lifecycleevent.FieldID, field.TypeInt))
	if ps := leu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := leu.mutation.ProfileID(); ok {
		_spec.SetField(lifecycleevent.FieldProfileID, field.TypeString, value)
	}
	if value, ok := leu.mutation.SectionID(); ok {
		_spec.SetField(lifecycleevent.FieldSectionID, field.TypeString, value)
	}
	if value, ok := leu.mutation.FromState(); ok {
		_spec.SetField(lifecycleevent.FieldFromState, field.TypeInt, value)
	}
	if value, ok := leu.mutation.AddedFromState(); ok {
		_spec.AddField(lifecycleevent.FieldFromState, field.TypeInt, value)
	}
	if value, ok := leu.mutation.ToState(); ok {
		_spec.SetField(lifecycleevent.FieldToState, field.TypeInt, value)
	}
	if value, ok := leu.mutation.AddedToState(); ok {
		_spec.AddField(lifecycleevent.FieldToState, field.TypeInt, value)
	}
	if value, ok := leu.mutation.Suppressed(); ok {
		_spec.SetField(lifecycleevent.FieldSuppressed, field.TypeBool, value)
	}
	if value, ok := leu.mutation.Tau(); ok {
		_spec.SetField(lifecycleevent.FieldTau, field.TypeFloat64, value)
	}
	if value, ok := leu.mutation.AddedTau(); ok {
		_spec.AddField(lifecycleevent.FieldTau, field.TypeFloat64, value)
	}
	if value, ok := leu.mutation.IntervalDays(); ok {
		_spec.SetField(lifecycleevent.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := leu.mutation.AddedIntervalDays(); ok {
		_spec.AddField(lifecycleevent.FieldIntervalDays, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, leu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lifecycleevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	leu.mutation.done = true
	return n, nil
}

// LifecycleEventUpdateOne is the builder for updating a single LifecycleEvent entity.
type LifecycleEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LifecycleEventMutation
}

// SetProfileID sets the "profile_id" field.
func (leuo *LifecycleEventUpdateOne) SetProfileID(s string) *LifecycleEventUpdateOne {
	leuo.mutation.SetProfileID(s)
	return leuo
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (leuo *LifecycleEventUpdateOne) SetNillableProfileID(s *string) *LifecycleEventUpdateOne {
	if s != nil {
		leuo.SetProfileID(*s)
	}
	return leuo
}

// SetSectionID sets the "section_id" field.
func (leuo *LifecycleEventUpdateOne) SetSectionID(s string) *LifecycleEventUpdateOne {
	leuo.mutation.SetSectionID(s)
	return leuo
}

// SetNillableSectionID sets the "section_id" field if the given value is not nil.
func (leuo *LifecycleEventUpdateOne) SetNillableSectionID(s *string) *LifecycleEventUpdateOne {
	if s != nil {
		leuo.SetSectionID(*s)
	}
	return leuo
}

// SetFromState sets the "from_state" field.
func (leuo *LifecycleEventUpdateOne) SetFromState(i int) *LifecycleEventUpdateOne {
	leuo.mutation.ResetFromState()
	leuo.mutation.SetFromState(i)
	return leuo
}

// SetNillableFromState sets the "from_state" field if the given value is not nil.
func (leuo *LifecycleEventUpdateOne) SetNillableFromState(i *int) *LifecycleEventUpdateOne {
	if i != nil {
		leuo.SetFromState(*i)
	}
	return leuo
}

// AddFromState adds i to the "from_state" field.
func (leuo *LifecycleEventUpdateOne) AddFromState(i int) *LifecycleEventUpdateOne {
	leuo.mutation.AddFromState(i)
	return leuo
}

// SetToState sets the "to_state" field.
func (leuo *LifecycleEventUpdateOne) SetToState(i int) *LifecycleEventUpdateOne {
	leuo.mutation.ResetToState()
	leuo.mutation.SetToState(i)
	return leuo
}

// SetNillableToState sets the "to_state" field if the given value is not nil.
func (leuo *LifecycleEventUpdateOne) SetNillableToState(i *int) *LifecycleEventUpdateOne {
	if i != nil {
		leuo.SetToState(*i)
	}
	return leuo
}

// AddToState adds i to the "to_state" field.
func (leuo *LifecycleEventUpdateOne) AddToState(i int) *LifecycleEventUpdateOne {
	leuo.mutation.AddToState(i)
	return leuo
}

// SetSuppressed sets the "suppressed" field.
func (leuo *LifecycleEventUpdateOne) SetSuppressed(b bool) *LifecycleEventUpdateOne {
	leuo.mutation.SetSuppressed(b)
	return leuo
}

// SetNillableSuppressed sets the "suppressed" field if the given value is not nil.
func (leuo *LifecycleEventUpdateOne) SetNillableSuppressed(b *bool) *LifecycleEventUpdateOne {
	if b != nil {
		leuo.SetSuppressed(*b)
	}
	return leuo
}

// SetTau sets the "tau" field.
func (leuo *LifecycleEventUpdateOne) SetTau(f float64) *LifecycleEventUpdateOne {
	leuo.mutation.ResetTau()
	leuo.mutation.SetTau(f)
	return leuo
}

// SetNillableTau sets the "tau" field if the given value is not nil.
func (leuo *LifecycleEventUpdateOne) SetNillableTau(f *float64) *LifecycleEventUpdateOne {
	if f != nil {
		leuo.SetTau(*f)
	}
	return leuo
}

// AddTau adds f to the "tau" field.
func (leuo *LifecycleEventUpdateOne) AddTau(f float64) *LifecycleEventUpdateOne {
	leuo.mutation.AddTau(f)
	return leuo
}

// SetIntervalDays sets the "interval_days" field.
func (leuo *LifecycleEventUpdateOne) SetIntervalDays(i int) *LifecycleEventUpdateOne {
	leuo.mutation.ResetIntervalDays()
	leuo.mutation.SetIntervalDays(i)
	return leuo
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (leuo *LifecycleEventUpdateOne) SetNillableIntervalDays(i *int) *LifecycleEventUpdateOne {
	if i != nil {
		leuo.SetIntervalDays(*i)
	}
	return leuo
}

// AddIntervalDays adds i to the "interval_days" field.
func (leuo *LifecycleEventUpdateOne) AddIntervalDays(i int) *LifecycleEventUpdateOne {
	leuo.mutation.AddIntervalDays(i)
	return leuo
}

// Mutation returns the LifecycleEventMutation object of the builder.
func (leuo *LifecycleEventUpdateOne) Mutation() *LifecycleEventMutation {
	return leuo.mutation
}

// Where appends a list predicates to the LifecycleEventUpdate builder.
func (leuo *LifecycleEventUpdateOne) Where(ps ...predicate.LifecycleEvent) *LifecycleEventUpdateOne {
	leuo.mutation.Where(ps...)
	return leuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (leuo *LifecycleEventUpdateOne) Select(field string, fields ...string) *LifecycleEventUpdateOne {
	leuo.fields = append([]string{field}, fields...)
	return leuo
}

// Save executes the query and returns the updated LifecycleEvent entity.
func (leuo *LifecycleEventUpdateOne) Save(ctx context.Context) (*LifecycleEvent, error) {
	return withHooks(ctx, leuo.sqlSave, leuo.mutation, leuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (leuo *LifecycleEventUpdateOne) SaveX(ctx context.Context) *LifecycleEvent {
	node, err := leuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (leuo *LifecycleEventUpdateOne) Exec(ctx context.Context) error {
	_, err := leuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (leuo *LifecycleEventUpdateOne) ExecX(ctx context.Context) {
	if err := leuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (leuo *LifecycleEventUpdateOne) check() error {
	if v, ok := leuo.mutation.ProfileID(); ok {
		if err := lifecycleevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "LifecycleEvent.profile_id": %w`, err)}
		}
	}
	if v, ok := leuo.mutation.SectionID(); ok {
		if err := lifecycleevent.SectionIDValidator(v); err != nil {
			return &ValidationError{Name: "section_id", err: fmt.Errorf(`ent: validator failed for field "LifecycleEvent.section_id": %w`, err)}
		}
	}
	return nil
}

func (leuo *LifecycleEventUpdateOne) sqlSave(ctx context.Context) (_node *LifecycleEvent, err error) {
	if err := leuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lifecycleevent.Table, lifecycleevent.Columns, sqlgraph.NewFieldSpec(lifecycleevent.FieldID, field.TypeInt))
	id, ok := leuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LifecycleEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := leuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lifecycleevent.FieldID)
		for _, f := range fields {
			if !lifecycleevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lifecycleevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := leuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := leuo.mutation.ProfileID(); ok {
		_spec.SetField(lifecycleevent.FieldProfileID, field.TypeString, value)
	}
	if value, ok := leuo.mutation.SectionID(); ok {
		_spec.SetField(lifecycleevent.FieldSectionID, field.TypeString, value)
	}
	if value, ok := leuo.mutation.FromState(); ok {
		_spec.SetField(lifecycleevent.FieldFromState, field.TypeInt, value)
	}
	if value, ok := leuo.mutation.AddedFromState(); ok {
		_spec.AddField(lifecycleevent.FieldFromState, field.TypeInt, value)
	}
	if value, ok := leuo.mutation.ToState(); ok {
		_spec.SetField(lifecycleevent.FieldToState, field.TypeInt, value)
	}
	if value, ok := leuo.mutation.AddedToState(); ok {
		_spec.AddField(lifecycleevent.FieldToState, field.TypeInt, value)
	}
	if value, ok := leuo.mutation.Suppressed(); ok {
		_spec.SetField(lifecycleevent.FieldSuppressed, field.TypeBool, value)
	}
	if value, ok := leuo.mutation.Tau(); ok {
		_spec.SetField(lifecycleevent.FieldTau, field.TypeFloat64, value)
	}
	if value, ok := leuo.mutation.AddedTau(); ok {
		_spec.AddField(lifecycleevent.FieldTau, field.TypeFloat64, value)
	}
	if value, ok := leuo.mutation.IntervalDays(); ok {
		_spec.SetField(lifecycleevent.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := leuo.mutation.AddedIntervalDays(); ok {
		_spec.AddField(lifecycleevent.FieldIntervalDays, field.TypeInt, value)
	}
	_node = &LifecycleEvent{config: leuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, leuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lifecycleevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	leuo.mutation.done = true
	return _node, nil
}
