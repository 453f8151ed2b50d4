// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hartmut/reprise/ent/predicate"
	"github.com/hartmut/reprise/ent/scheduledsession"
)

// ScheduledSessionDelete is the builder for deleting a ScheduledSession entity.
type ScheduledSessionDelete struct {
	config
	hooks    []Hook
	mutation *ScheduledSessionMutation
}

// Where appends a list predicates to the ScheduledSessionDelete builder.
func (ssd *ScheduledSessionDelete) Where(ps ...predicate.ScheduledSession) *ScheduledSessionDelete {
	ssd.mutation.Where(ps...)
	return ssd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ssd *ScheduledSessionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ssd.sqlExec, ssd.mutation, ssd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ssd *ScheduledSessionDelete) ExecX(ctx context.Context) int {
	n, err := ssd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ssd *ScheduledSessionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(scheduledsession.Table, sqlgraph.NewFieldSpec(scheduledsession.FieldID, field.TypeInt))
	if ps := ssd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ssd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ssd.mutation.done = true
	return affected, err
}

// ScheduledSessionDeleteOne is the builder for deleting a single ScheduledSession entity.
type ScheduledSessionDeleteOne struct {
	ssd *ScheduledSessionDelete
}

// Where appends a list predicates to the ScheduledSessionDelete builder.
func (ssdo *ScheduledSessionDeleteOne) Where(ps ...predicate.ScheduledSession) *ScheduledSessionDeleteOne {
	ssdo.ssd.mutation.Where(ps...)
	return ssdo
}

// Exec executes the deletion query.
func (ssdo *ScheduledSessionDeleteOne) Exec(ctx context.Context) error {
	n, err := ssdo.ssd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{scheduledsession.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (ssdo *ScheduledSessionDeleteOne) ExecX(ctx context.Context) {
	if err := ssdo.Exec(ctx); err != nil {
		panic(err)
	}
}
