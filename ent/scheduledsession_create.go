// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hartmut/reprise/ent/scheduledsession"
)

// ScheduledSessionCreate is the builder for creating a ScheduledSession entity.
type ScheduledSessionCreate struct {
	config
	mutation *ScheduledSessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (ssc *ScheduledSessionCreate) SetSessionID(s string) *ScheduledSessionCreate {
	ssc.mutation.SetSessionID(s)
	return ssc
}

// SetProfileID sets the "profile_id" field.
func (ssc *ScheduledSessionCreate) SetProfileID(s string) *ScheduledSessionCreate {
	ssc.mutation.SetProfileID(s)
	return ssc
}

// SetSectionID sets the "section_id" field.
func (ssc *ScheduledSessionCreate) SetSectionID(s string) *ScheduledSessionCreate {
	ssc.mutation.SetSectionID(s)
	return ssc
}

// SetPieceID sets the "piece_id" field.
func (ssc *ScheduledSessionCreate) SetPieceID(s string) *ScheduledSessionCreate {
	ssc.mutation.SetPieceID(s)
	return ssc
}

// SetNillablePieceID sets the "piece_id" field if the given value is not nil.
func (ssc *ScheduledSessionCreate) SetNillablePieceID(s *string) *ScheduledSessionCreate {
	if s != nil {
		ssc.SetPieceID(*s)
	}
	return ssc
}

// SetScheduledDate sets the "scheduled_date" field.
func (ssc *ScheduledSessionCreate) SetScheduledDate(t time.Time) *ScheduledSessionCreate {
	ssc.mutation.SetScheduledDate(t)
	return ssc
}

// SetStatus sets the "status" field.
func (ssc *ScheduledSessionCreate) SetStatus(s scheduledsession.Status) *ScheduledSessionCreate {
	ssc.mutation.SetStatus(s)
	return ssc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ssc *ScheduledSessionCreate) SetNillableStatus(s *scheduledsession.Status) *ScheduledSessionCreate {
	if s != nil {
		ssc.SetStatus(*s)
	}
	return ssc
}

// SetEstimatedMinutes sets the "estimated_minutes" field.
func (ssc *ScheduledSessionCreate) SetEstimatedMinutes(i int) *ScheduledSessionCreate {
	ssc.mutation.SetEstimatedMinutes(i)
	return ssc
}

// SetTau sets the "tau" field.
func (ssc *ScheduledSessionCreate) SetTau(f float64) *ScheduledSessionCreate {
	ssc.mutation.SetTau(f)
	return ssc
}

// Mutation returns the ScheduledSessionMutation object of the builder.
func (ssc *ScheduledSessionCreate) Mutation() *ScheduledSessionMutation {
	return ssc.mutation
}

// Save creates the ScheduledSession in the database.
func (ssc *ScheduledSessionCreate) Save(ctx context.Context) (*ScheduledSession, error) {
	ssc.defaults()
	return withHooks(ctx, ssc.sqlSave, ssc.mutation, ssc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ssc *ScheduledSessionCreate) SaveX(ctx context.Context) *ScheduledSession {
	v, err := ssc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ssc *ScheduledSessionCreate) Exec(ctx context.Context) error {
	_, err := ssc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ssc *ScheduledSessionCreate) ExecX(ctx context.Context) {
	if err := ssc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ssc *ScheduledSessionCreate) defaults() {
	if _, ok := ssc.mutation.Status(); !ok {
		v := scheduledsession.DefaultStatus
		ssc.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ssc *ScheduledSessionCreate) check() error {
	if _, ok := ssc.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ScheduledSession.session_id"`)}
	}
	if v, ok := ssc.mutation.SessionID(); ok {
		if err := scheduledsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledSession.session_id": %w`, err)}
		}
	}
	if _, ok := ssc.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "ScheduledSession.profile_id"`)}
	}
	if v, ok := ssc.mutation.ProfileID(); ok {
		if err := scheduledsession.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledSession.profile_id": %w`, err)}
		}
	}
	if _, ok := ssc.mutation.SectionID(); !ok {
		return &ValidationError{Name: "section_id", err: errors.New(`ent: missing required field "ScheduledSession.section_id"`)}
	}
	if v, ok := ssc.mutation.SectionID(); ok {
		if err := scheduledsession.SectionIDValidator(v); err != nil {
			return &ValidationError{Name: "section_id", err: fmt.Errorf(`ent: validator failed for field "ScheduledSession.section_id": %w`, err)}
		}
	}
	if _, ok := ssc.mutation.ScheduledDate(); !ok {
		return &ValidationError{Name: "scheduled_date", err: errors.New(`ent: missing required field "ScheduledSession.scheduled_date"`)}
	}
	if _, ok := ssc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScheduledSession.status"`)}
	}
	if v, ok := ssc.mutation.Status(); ok {
		if err := scheduledsession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledSession.status": %w`, err)}
		}
	}
	if _, ok := ssc.mutation.EstimatedMinutes(); !ok {
		return &ValidationError{Name: "estimated_minutes", err: errors.New(`ent: missing required field "ScheduledSession.estimated_minutes"`)}
	}
	if _, ok := ssc.mutation.Tau(); !ok {
		return &ValidationError{Name: "tau", err: errors.New(`ent: missing required field "ScheduledSession.tau"`)}
	}
	return nil
}

func (ssc *ScheduledSessionCreate) sqlSave(ctx context.Context) (*ScheduledSession, error) {
	if err := ssc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ssc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ssc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ssc.mutation.id = &_node.ID
	ssc.mutation.done = true
	return _node, nil
}

func (ssc *ScheduledSessionCreate) createSpec() (*ScheduledSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduledSession{config: ssc.config}
		_spec = sqlgraph.NewCreateSpec(scheduledsession.Table, sqlgraph.NewFieldSpec(scheduledsession.FieldID, field.TypeInt))
	)
	if value, ok := ssc.mutation.SessionID(); ok {
		_spec.SetField(scheduledsession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := ssc.mutation.ProfileID(); ok {
		_spec.SetField(scheduledsession.FieldProfileID, field.TypeString, value)
		_node.ProfileID = value
	}
	if value, ok := ssc.mutation.SectionID(); ok {
		_spec.SetField(scheduledsession.FieldSectionID, field.TypeString, value)
		_node.SectionID = value
	}
	if value, ok := ssc.mutation.PieceID(); ok {
		_spec.SetField(scheduledsession.FieldPieceID, field.TypeString, value)
		_node.PieceID = value
	}
	if value, ok := ssc.mutation.ScheduledDate(); ok {
		_spec.SetField(scheduledsession.FieldScheduledDate, field.TypeTime, value)
		_node.ScheduledDate = value
	}
	if value, ok := ssc.mutation.Status(); ok {
		_spec.SetField(scheduledsession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := ssc.mutation.EstimatedMinutes(); ok {
		_spec.SetField(scheduledsession.FieldEstimatedMinutes, field.TypeInt, value)
		_node.EstimatedMinutes = value
	}
	if value, ok := ssc.mutation.Tau(); ok {
		_spec.SetField(scheduledsession.FieldTau, field.TypeFloat64, value)
		_node.Tau = value
	}
	return _node, _spec
}

// ScheduledSessionCreateBulk is the builder for creating many ScheduledSession entities in bulk.
type ScheduledSessionCreateBulk struct {
	config
	err      error
	builders []*ScheduledSessionCreate
}

// Save creates the ScheduledSession entities in the database.
func (sscb *ScheduledSessionCreateBulk) Save(ctx context.Context) ([]*ScheduledSession, error) {
	if sscb.err != nil {
		return nil, sscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(sscb.builders))
	nodes := make([]*ScheduledSession, len(sscb.builders))
	mutators := make([]Mutator, len(sscb.builders))
	for i := range sscb.builders {
		func(i int, root context.Context) {
			builder := sscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduledSessionMutation)
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
					_, err = mutators[i+1].Mutate(root, sscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, sscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, sscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (sscb *ScheduledSessionCreateBulk) SaveX(ctx context.Context) []*ScheduledSession {
	v, err := sscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sscb *ScheduledSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := sscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sscb *ScheduledSessionCreateBulk) ExecX(ctx context.Context) {
	if err := sscb.Exec(ctx); err != nil {
		panic(err)
	}
}
