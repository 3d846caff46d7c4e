// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/doubtbox/ent/predicate"
	"github.com/abhisek/doubtbox/ent/quizresultevent"
)

// QuizResultEventDelete is the builder for deleting a QuizResultEvent entity.
type QuizResultEventDelete struct {
	config
	hooks    []Hook
	mutation *QuizResultEventMutation
}

// Where appends a list predicates to the QuizResultEventDelete builder.
func (_d *QuizResultEventDelete) Where(ps ...predicate.QuizResultEvent) *QuizResultEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *QuizResultEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuizResultEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *QuizResultEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(quizresultevent.Table, sqlgraph.NewFieldSpec(quizresultevent.FieldID, field.TypeInt))
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

// QuizResultEventDeleteOne is the builder for deleting a single QuizResultEvent entity.
type QuizResultEventDeleteOne struct {
	_d *QuizResultEventDelete
}

// Where appends a list predicates to the QuizResultEventDelete builder.
func (_d *QuizResultEventDeleteOne) Where(ps ...predicate.QuizResultEvent) *QuizResultEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *QuizResultEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{quizresultevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuizResultEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
