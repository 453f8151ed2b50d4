// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hartmut/reprise/ent/lifecycleevent"
	"github.com/hartmut/reprise/ent/predicate"
)

// LifecycleEventDelete is the builder for deleting a LifecycleEvent entity.
type LifecycleEventDelete struct {
	config
	hooks    []Hook
	mutation *LifecycleEventMutation
}

// Where appends a list predicates to the LifecycleEventDelete builder.
func (led *LifecycleEventDelete) Where(ps ...predicate.LifecycleEvent) *LifecycleEventDelete {
	led.mutation.Where(ps...)
	return led
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (led *LifecycleEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, led.sqlExec, led.mutation, led.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (led *LifecycleEventDelete) ExecX(ctx context.Context) int {
	n, err := led.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (led *LifecycleEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(lifecycleevent.Table, sqlgraph.NewFieldSpec(lifecycleevent.FieldID, field.TypeInt))
	if ps := led.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, led.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	led.mutation.done = true
	return affected, err
}

// LifecycleEventDeleteOne is the builder for deleting a single LifecycleEvent entity.
type LifecycleEventDeleteOne struct {
	led *LifecycleEventDelete
}

// Where appends a list predicates to the LifecycleEventDelete builder.
func (ledo *LifecycleEventDeleteOne) Where(ps ...predicate.LifecycleEvent) *LifecycleEventDeleteOne {
	ledo.led.mutation.Where(ps...)
	return ledo
}

// Exec executes the deletion query.
func (ledo *LifecycleEventDeleteOne) Exec(ctx context.Context) error {
	n, err := ledo.led.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{lifecycleevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (ledo *LifecycleEventDeleteOne) ExecX(ctx context.Context) {
	if err := ledo.Exec(ctx); err != nil {
		panic(err)
	}
}
