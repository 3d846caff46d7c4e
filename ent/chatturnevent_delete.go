// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/doubtbox/ent/chatturnevent"
	"github.com/abhisek/doubtbox/ent/predicate"
)

// ChatTurnEventDelete is the builder for deleting a ChatTurnEvent entity.
type ChatTurnEventDelete struct {
	config
	hooks    []Hook
	mutation *ChatTurnEventMutation
}

// Where appends a list predicates to the ChatTurnEventDelete builder.
func (_d *ChatTurnEventDelete) Where(ps ...predicate.ChatTurnEvent) *ChatTurnEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ChatTurnEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChatTurnEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ChatTurnEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(chatturnevent.Table, sqlgraph.NewFieldSpec(chatturnevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ChatTurnEventDeleteOne is the builder for deleting a single ChatTurnEvent entity.
type ChatTurnEventDeleteOne struct {
	_d *ChatTurnEventDelete
}

// Where appends a list predicates to the ChatTurnEventDelete builder.
func (_d *ChatTurnEventDeleteOne) Where(ps ...predicate.ChatTurnEvent) *ChatTurnEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ChatTurnEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{chatturnevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChatTurnEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
