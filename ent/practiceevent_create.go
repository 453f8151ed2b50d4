// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hartmut/reprise/ent/practiceevent"
)

// PracticeEventCreate is the builder for creating a PracticeEvent entity.
type PracticeEventCreate struct {
	config
	mutation *PracticeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (pec *PracticeEventCreate) SetSequence(i int64) *PracticeEventCreate {
	pec.mutation.SetSequence(i)
	return pec
}

// SetTimestamp sets the "timestamp" field.
func (pec *PracticeEventCreate) SetTimestamp(t time.Time) *PracticeEventCreate {
	pec.mutation.SetTimestamp(t)
	return pec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (pec *PracticeEventCreate) SetNillableTimestamp(t *time.Time) *PracticeEventCreate {
	if t != nil {
		pec.SetTimestamp(*t)
	}
	return pec
}

// SetProfileID sets the "profile_id" field.
func (pec *PracticeEventCreate) SetProfileID(s string) *PracticeEventCreate {
	pec.mutation.SetProfileID(s)
	return pec
}

// SetSectionID sets the "section_id" field.
func (pec *PracticeEventCreate) SetSectionID(s string) *PracticeEventCreate {
	pec.mutation.SetSectionID(s)
	return pec
}

// SetPieceID sets the "piece_id" field.
func (pec *PracticeEventCreate) SetPieceID(s string) *PracticeEventCreate {
	pec.mutation.SetPieceID(s)
	return pec
}

// SetNillablePieceID sets the "piece_id" field if the given value is not nil.
func (pec *PracticeEventCreate) SetNillablePieceID(s *string) *PracticeEventCreate {
	if s != nil {
		pec.SetPieceID(*s)
	}
	return pec
}

// SetPerformance sets the "performance" field.
func (pec *PracticeEventCreate) SetPerformance(s string) *PracticeEventCreate {
	pec.mutation.SetPerformance(s)
	return pec
}

// SetScore sets the "score" field.
func (pec *PracticeEventCreate) SetScore(f float64) *PracticeEventCreate {
	pec.mutation.SetScore(f)
	return pec
}

// SetRepetitions sets the "repetitions" field.
func (pec *PracticeEventCreate) SetRepetitions(i int) *PracticeEventCreate {
	pec.mutation.SetRepetitions(i)
	return pec
}

// SetExecutionFailures sets the "execution_failures" field.
func (pec *PracticeEventCreate) SetExecutionFailures(i int) *PracticeEventCreate {
	pec.mutation.SetExecutionFailures(i)
	return pec
}

// SetMemoryFailures sets the "memory_failures" field.
func (pec *PracticeEventCreate) SetMemoryFailures(i int) *PracticeEventCreate {
	pec.mutation.SetMemoryFailures(i)
	return pec
}

// SetDeleted sets the "deleted" field.
func (pec *PracticeEventCreate) SetDeleted(b bool) *PracticeEventCreate {
	pec.mutation.SetDeleted(b)
	return pec
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (pec *PracticeEventCreate) SetNillableDeleted(b *bool) *PracticeEventCreate {
	if b != nil {
		pec.SetDeleted(*b)
	}
	return pec
}

// Mutation returns the PracticeEventMutation object of the builder.
func (pec *PracticeEventCreate) Mutation() *PracticeEventMutation {
	return pec.mutation
}

// Save creates the PracticeEvent in the database.
func (pec *PracticeEventCreate) Save(ctx context.Context) (*PracticeEvent, error) {
	pec.defaults()
	return withHooks(ctx, pec.sqlSave, pec.mutation, pec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (pec *PracticeEventCreate) SaveX(ctx context.Context) *PracticeEvent {
	v, err := pec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pec *PracticeEventCreate) Exec(ctx context.Context) error {
	_, err := pec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pec *PracticeEventCreate) ExecX(ctx context.Context) {
	if err := pec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pec *PracticeEventCreate) defaults() {
	if _, ok := pec.mutation.Timestamp(); !ok {
		v := practiceevent.DefaultTimestamp()
		pec.mutation.SetTimestamp(v)
	}
	if _, ok := pec.mutation.Deleted(); !ok {
		v := practiceevent.DefaultDeleted
		pec.mutation.SetDeleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pec *PracticeEventCreate) check() error {
	if _, ok := pec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PracticeEvent.sequence"`)}
	}
	if _, ok := pec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PracticeEvent.timestamp"`)}
	}
	if _, ok := pec.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "PracticeEvent.profile_id"`)}
	}
	if v, ok := pec.mutation.ProfileID(); ok {
		if err := practiceevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.profile_id": %w`, err)}
		}
	}
	if _, ok := pec.mutation.SectionID(); !ok {
		return &ValidationError{Name: "section_id", err: errors.New(`ent: missing required field "PracticeEvent.section_id"`)}
	}
	if v, ok := pec.mutation.SectionID(); ok {
		if err := practiceevent.SectionIDValidator(v); err != nil {
			return &ValidationError{Name: "section_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.section_id": %w`, err)}
		}
	}
	if _, ok := pec.mutation.Performance(); !ok {
		return &ValidationError{Name: "performance", err: errors.New(`ent: missing required field "PracticeEvent.performance"`)}
	}
	if v, ok := pec.mutation.Performance(); ok {
		if err := practiceevent.PerformanceValidator(v); err != nil {
			return &ValidationError{Name: "performance", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.performance": %w`, err)}
		}
	}
	if _, ok := pec.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "PracticeEvent.score"`)}
	}
	if _, ok := pec.mutation.Repetitions(); !ok {
		return &ValidationError{Name: "repetitions", err: errors.New(`ent: missing required field "PracticeEvent.repetitions"`)}
	}
	if _, ok := pec.mutation.ExecutionFailures(); !ok {
		return &ValidationError{Name: "execution_failures", err: errors.New(`ent: missing required field "PracticeEvent.execution_failures"`)}
	}
	if _, ok := pec.mutation.MemoryFailures(); !ok {
		return &ValidationError{Name: "memory_failures", err: errors.New(`ent: missing required field "PracticeEvent.memory_failures"`)}
	}
	if _, ok := pec.mutation.Deleted(); !ok {
		return &ValidationError{Name: "deleted", err: errors.New(`ent: missing required field "PracticeEvent.deleted"`)}
	}
	return nil
}

func (pec *PracticeEventCreate) sqlSave(ctx context.Context) (*PracticeEvent, error) {
	if err := pec.check(); err != nil {
		return nil, err
	}
	_node, _spec := pec.createSpec()
	if err := sqlgraph.CreateNode(ctx, pec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	pec.mutation.id = &_node.ID
	pec.mutation.done = true
	return _node, nil
}

func (pec *PracticeEventCreate) createSpec() (*PracticeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeEvent{config: pec.config}
		_spec = sqlgraph.NewCreateSpec(practiceevent.Table, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	)
	if value, ok := pec.mutation.Sequence(); ok {
		_spec.SetField(practiceevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := pec.mutation.Timestamp(); ok {
		_spec.SetField(practiceevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := pec.mutation.ProfileID(); ok {
		_spec.SetField(practiceevent.FieldProfileID, field.TypeString, value)
		_node.ProfileID = value
	}
	if value, ok := pec.mutation.SectionID(); ok {
		_spec.SetField(practiceevent.FieldSectionID, field.TypeString, value)
		_node.SectionID = value
	}
	if value, ok := pec.mutation.PieceID(); ok {
		_spec.SetField(practiceevent.FieldPieceID, field.TypeString, value)
		_node.PieceID = value
	}
	if value, ok := pec.mutation.Performance(); ok {
		_spec.SetField(practiceevent.FieldPerformance, field.TypeString, value)
		_node.Performance = value
	}
	if value, ok := pec.mutation.Score(); ok {
		_spec.SetField(practiceevent.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := pec.mutation.Repetitions(); ok {
		_spec.SetField(practiceevent.FieldRepetitions, field.TypeInt, value)
		_node.Repetitions = value
	}
	if value, ok := pec.mutation.ExecutionFailures(); ok {
		_spec.SetField(practiceevent.FieldExecutionFailures, field.TypeInt, value)
		_node.ExecutionFailures = value
	}
	if value, ok := pec.mutation.MemoryFailures(); ok {
		_spec.SetField(practiceevent.FieldMemoryFailures, field.TypeInt, value)
		_node.MemoryFailures = value
	}
	if value, ok := pec.mutation.Deleted(); ok {
		_spec.SetField(practiceevent.FieldDeleted, field.TypeBool, value)
		_node.Deleted = value
	}
	return _node, _spec
}

// PracticeEventCreateBulk is the builder for creating many PracticeEvent entities in bulk.
type PracticeEventCreateBulk struct {
	config
	err      error
	builders []*PracticeEventCreate
}

// Save creates the PracticeEvent entities in the database.
func (pecb *PracticeEventCreateBulk) Save(ctx context.Context) ([]*PracticeEvent, error) {
	if pecb.err != nil {
		return nil, pecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pecb.builders))
	nodes := make([]*PracticeEvent, len(pecb.builders))
	mutators := make([]Mutator, len(pecb.builders))
	for i := range pecb.builders {
		func(i int, root context.Context) {
			builder := pecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeEventMutation)
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
					_, err = mutators[i+1].Mutate(root, pecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, pecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pecb *PracticeEventCreateBulk) SaveX(ctx context.Context) []*PracticeEvent {
	v, err := pecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pecb *PracticeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := pecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pecb *PracticeEventCreateBulk) ExecX(ctx context.Context) {
	if err := pecb.Exec(ctx); err != nil {
		panic(err)
	}
}
