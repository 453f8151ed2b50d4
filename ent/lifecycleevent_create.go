// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hartmut/reprise/ent/lifecycleevent"
)

// LifecycleEventCreate is the builder for creating a LifecycleEvent entity.
type LifecycleEventCreate struct {
	config
	mutation *LifecycleEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (lec *LifecycleEventCreate) SetSequence(i int64) *LifecycleEventCreate {
	lec.mutation.SetSequence(i)
	return lec
}

// SetTimestamp sets the "timestamp" field.
func (lec *LifecycleEventCreate) SetTimestamp(t time.Time) *LifecycleEventCreate {
	lec.mutation.SetTimestamp(t)
	return lec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (lec *LifecycleEventCreate) SetNillableTimestamp(t *time.Time) *LifecycleEventCreate {
	if t != nil {
		lec.SetTimestamp(*t)
	}
	return lec
}

// SetProfileID sets the "profile_id" field.
func (lec *LifecycleEventCreate) SetProfileID(s string) *LifecycleEventCreate {
	lec.mutation.SetProfileID(s)
	return lec
}

// SetSectionID sets the "section_id" field.
func (lec *LifecycleEventCreate) SetSectionID(s string) *LifecycleEventCreate {
	lec.mutation.SetSectionID(s)
	return lec
}

// SetFromState sets the "from_state" field.
func (lec *LifecycleEventCreate) SetFromState(i int) *LifecycleEventCreate {
	lec.mutation.SetFromState(i)
	return lec
}

// SetToState sets the "to_state" field.
func (lec *LifecycleEventCreate) SetToState(i int) *LifecycleEventCreate {
	lec.mutation.SetToState(i)
	return lec
}

// SetSuppressed sets the "suppressed" field.
func (lec *LifecycleEventCreate) SetSuppressed(b bool) *LifecycleEventCreate {
	lec.mutation.SetSuppressed(b)
	return lec
}

// SetNillableSuppressed sets the "suppressed" field if the given value is not nil.
func (lec *LifecycleEventCreate) SetNillableSuppressed(b *bool) *LifecycleEventCreate {
	if b != nil {
		lec.SetSuppressed(*b)
	}
	return lec
}

// SetTau sets the "tau" field.
func (lec *LifecycleEventCreate) SetTau(f float64) *LifecycleEventCreate {
	lec.mutation.SetTau(f)
	return lec
}

// SetNillableTau sets the "tau" field if the given value is not nil.
func (lec *LifecycleEventCreate) SetNillableTau(f *float64) *LifecycleEventCreate {
	if f != nil {
		lec.SetTau(*f)
	}
	return lec
}

// SetIntervalDays sets the "interval_days" field.
func (lec *LifecycleEventCreate) SetIntervalDays(i int) *LifecycleEventCreate {
	lec.mutation.SetIntervalDays(i)
	return lec
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (lec *LifecycleEventCreate) SetNillableIntervalDays(i *int) *LifecycleEventCreate {
	if i != nil {
		lec.SetIntervalDays(*i)
	}
	return lec
}

// Mutation returns the LifecycleEventMutation object of the builder.
func (lec *LifecycleEventCreate) Mutation() *LifecycleEventMutation {
	return lec.mutation
}

// Save creates the LifecycleEvent in the database.
func (lec *LifecycleEventCreate) Save(ctx context.Context) (*LifecycleEvent, error) {
	lec.defaults()
	return withHooks(ctx, lec.sqlSave, lec.mutation, lec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (lec *LifecycleEventCreate) SaveX(ctx context.Context) *LifecycleEvent {
	v, err := lec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lec *LifecycleEventCreate) Exec(ctx context.Context) error {
	_, err := lec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lec *LifecycleEventCreate) ExecX(ctx context.Context) {
	if err := lec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (lec *LifecycleEventCreate) defaults() {
	if _, ok := lec.mutation.Timestamp(); !ok {
		v := lifecycleevent.DefaultTimestamp()
		lec.mutation.SetTimestamp(v)
	}
	if _, ok := lec.mutation.Suppressed(); !ok {
		v := lifecycleevent.DefaultSuppressed
		lec.mutation.SetSuppressed(v)
	}
	if _, ok := lec.mutation.Tau(); !ok {
		v := lifecycleevent.DefaultTau
		lec.mutation.SetTau(v)
	}
	if _, ok := lec.mutation.IntervalDays(); !ok {
		v := lifecycleevent.DefaultIntervalDays
		lec.mutation.SetIntervalDays(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lec *LifecycleEventCreate) check() error {
	if _, ok := lec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "LifecycleEvent.sequence"`)}
	}
	if _, ok := lec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LifecycleEvent.timestamp"`)}
	}
	if _, ok := lec.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "LifecycleEvent.profile_id"`)}
	}
	if v, ok := lec.mutation.ProfileID(); ok {
		if err := lifecycleevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "LifecycleEvent.profile_id": %w`, err)}
		}
	}
	if _, ok := lec.mutation.SectionID(); !ok {
		return &ValidationError{Name: "section_id", err: errors.New(`ent: missing required field "LifecycleEvent.section_id"`)}
	}
	if v, ok := lec.mutation.SectionID(); ok {
		if err := lifecycleevent.SectionIDValidator(v); err != nil {
			return &ValidationError{Name: "section_id", err: fmt.Errorf(`ent: validator failed for field "LifecycleEvent.section_id": %w`, err)}
		}
	}
	if _, ok := lec.mutation.FromState(); !ok {
		return &ValidationError{Name: "from_state", err: errors.New(`ent: missing required field "LifecycleEvent.from_state"`)}
	}
	if _, ok := lec.mutation.ToState(); !ok {
		return &ValidationError{Name: "to_state", err: errors.New(`ent: missing required field "LifecycleEvent.to_state"`)}
	}
	if _, ok := lec.mutation.Suppressed(); !ok {
		return &ValidationError{Name: "suppressed", err: errors.New(`ent: missing required field "LifecycleEvent.suppressed"`)}
	}
	if _, ok := lec.mutation.Tau(); !ok {
		return &ValidationError{Name: "tau", err: errors.New(`ent: missing required field "LifecycleEvent.tau"`)}
	}
	if _, ok := lec.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "LifecycleEvent.interval_days"`)}
	}
	return nil
}

func (lec *LifecycleEventCreate) sqlSave(ctx context.Context) (*LifecycleEvent, error) {
	if err := lec.check(); err != nil {
		return nil, err
	}
	_node, _spec := lec.createSpec()
	if err := sqlgraph.CreateNode(ctx, lec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	lec.mutation.id = &_node.ID
	lec.mutation.done = true
	return _node, nil
}

func (lec *LifecycleEventCreate) createSpec() (*LifecycleEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &LifecycleEvent{config: lec.config}
		_spec = sqlgraph.NewCreateSpec(lifecycleevent.Table, sqlgraph.NewFieldSpec(lifecycleevent.FieldID, field.TypeInt))
	)
	if value, ok := lec.mutation.Sequence(); ok {
		_spec.SetField(lifecycleevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := lec.mutation.Timestamp(); ok {
		_spec.SetField(lifecycleevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := lec.mutation.ProfileID(); ok {
		_spec.SetField(lifecycleevent.FieldProfileID, field.TypeString, value)
		_node.ProfileID = value
	}
	if value, ok := lec.mutation.SectionID(); ok {
		_spec.SetField(lifecycleevent.FieldSectionID, field.TypeString, value)
		_node.SectionID = value
	}
	if value, ok := lec.mutation.FromState(); ok {
		_spec.SetField(lifecycleevent.FieldFromState, field.TypeInt, value)
		_node.FromState = value
	}
	if value, ok := lec.mutation.ToState(); ok {
		_spec.SetField(lifecycleevent.FieldToState, field.TypeInt, value)
		_node.ToState = value
	}
	if value, ok := lec.mutation.Suppressed(); ok {
		_spec.SetField(lifecycleevent.FieldSuppressed, field.TypeBool, value)
		_node.Suppressed = value
	}
	if value, ok := lec.mutation.Tau(); ok {
		_spec.SetField(lifecycleevent.FieldTau, field.TypeFloat64, value)
		_node.Tau = value
	}
	if value, ok := lec.mutation.IntervalDays(); ok {
		_spec.SetField(lifecycleevent.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	return _node, _spec
}

// LifecycleEventCreateBulk is the builder for creating many LifecycleEvent entities in bulk.
type LifecycleEventCreateBulk struct {
	config
	err      error
	builders []*LifecycleEventCreate
}

// Save creates the LifecycleEvent entities in the database.
func (lecb *LifecycleEventCreateBulk) Save(ctx context.Context) ([]*LifecycleEvent, error) {
	if lecb.err != nil {
		return nil, lecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(lecb.builders))
	nodes := make([]*LifecycleEvent, len(lecb.builders))
	mutators := make([]Mutator, len(lecb.builders))
	for i := range lecb.builders {
		func(i int, root context.Context) {
			builder := lecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LifecycleEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, lecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, lecb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, lecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (lecb *LifecycleEventCreateBulk) SaveX(ctx context.Context) []*LifecycleEvent {
	v, err := lecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lecb *LifecycleEventCreateBulk) Exec(ctx context.Context) error {
	_, err := lecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lecb *LifecycleEventCreateBulk) ExecX(ctx context.Context) {
	if err := lecb.Exec(ctx); err != nil {
		panic(err)
	}
}
