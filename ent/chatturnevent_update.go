// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/doubtbox/ent/chatturnevent"
	"github.com/abhisek/doubtbox/ent/predicate"
)

// ChatTurnEventUpdate is the builder for updating ChatTurnEvent entities.
type ChatTurnEventUpdate struct {
	config
	hooks    []Hook
	mutation *ChatTurnEventMutation
}

// Where appends a list predicates to the ChatTurnEventUpdate builder.
func (_u *ChatTurnEventUpdate) Where(ps ...predicate.ChatTurnEvent) *ChatTurnEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ChatTurnEventUpdate) SetSubject(v string) *ChatTurnEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ChatTurnEventUpdate) SetNillableSubject(v *string) *ChatTurnEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetResponseKind sets the "response_kind" field.
func (_u *ChatTurnEventUpdate) SetResponseKind(v string) *ChatTurnEventUpdate {
	_u.mutation.SetResponseKind(v)
	return _u
}

// SetNillableResponseKind sets the "response_kind" field if the given value is not nil.
func (_u *ChatTurnEventUpdate) SetNillableResponseKind(v *string) *ChatTurnEventUpdate {
	if v != nil {
		_u.SetResponseKind(*v)
	}
	return _u
}

// SetMcqCount sets the "mcq_count" field.
func (_u *ChatTurnEventUpdate) SetMcqCount(v int) *ChatTurnEventUpdate {
	_u.mutation.ResetMcqCount()
	_u.mutation.SetMcqCount(v)
	return _u
}

// SetNillableMcqCount sets the "mcq_count" field if the given value is not nil.
func (_u *ChatTurnEventUpdate) SetNillableMcqCount(v *int) *ChatTurnEventUpdate {
	if v != nil {
		_u.SetMcqCount(*v)
	}
	return _u
}

// AddMcqCount adds value to the "mcq_count" field.
func (_u *ChatTurnEventUpdate) AddMcqCount(v int) *ChatTurnEventUpdate {
	_u.mutation.AddMcqCount(v)
	return _u
}

// SetHadImage sets the "had_image" field.
func (_u *ChatTurnEventUpdate) SetHadImage(v bool) *ChatTurnEventUpdate {
	_u.mutation.SetHadImage(v)
	return _u
}

// SetNillableHadImage sets the "had_image" field if the given value is not nil.
func (_u *ChatTurnEventUpdate) SetNillableHadImage(v *bool) *ChatTurnEventUpdate {
	if v != nil {
		_u.SetHadImage(*v)
	}
	return _u
}

// Mutation returns the ChatTurnEventMutation object of the builder.
func (_u *ChatTurnEventUpdate) Mutation() *ChatTurnEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatTurnEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatTurnEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatTurnEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatTurnEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChatTurnEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(chatturnevent.Table, chatturnevent.Columns, sqlgraph.NewFieldSpec(chatturnevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(chatturnevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseKind(); ok {
		_spec.SetField(chatturnevent.FieldResponseKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.McqCount(); ok {
		_spec.SetField(chatturnevent.FieldMcqCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMcqCount(); ok {
		_spec.AddField(chatturnevent.FieldMcqCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HadImage(); ok {
		_spec.SetField(chatturnevent.FieldHadImage, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatturnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatTurnEventUpdateOne is the builder for updating a single ChatTurnEvent entity.
type ChatTurnEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatTurnEventMutation
}

// SetSubject sets the "subject" field.
func (_u *ChatTurnEventUpdateOne) SetSubject(v string) *ChatTurnEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ChatTurnEventUpdateOne) SetNillableSubject(v *string) *ChatTurnEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetResponseKind sets the "response_kind" field.
func (_u *ChatTurnEventUpdateOne) SetResponseKind(v string) *ChatTurnEventUpdateOne {
	_u.mutation.SetResponseKind(v)
	return _u
}

// SetNillableResponseKind sets the "response_kind" field if the given value is not nil.
func (_u *ChatTurnEventUpdateOne) SetNillableResponseKind(v *string) *ChatTurnEventUpdateOne {
	if v != nil {
		_u.SetResponseKind(*v)
	}
	return _u
}

// SetMcqCount sets the "mcq_count" field.
func (_u *ChatTurnEventUpdateOne) SetMcqCount(v int) *ChatTurnEventUpdateOne {
	_u.mutation.ResetMcqCount()
	_u.mutation.SetMcqCount(v)
	return _u
}

// SetNillableMcqCount sets the "mcq_count" field if the given value is not nil.
func (_u *ChatTurnEventUpdateOne) SetNillableMcqCount(v *int) *ChatTurnEventUpdateOne {
	if v != nil {
		_u.SetMcqCount(*v)
	}
	return _u
}

// AddMcqCount adds value to the "mcq_count" field.
func (_u *ChatTurnEventUpdateOne) AddMcqCount(v int) *ChatTurnEventUpdateOne {
	_u.mutation.AddMcqCount(v)
	return _u
}

// SetHadImage sets the "had_image" field.
func (_u *ChatTurnEventUpdateOne) SetHadImage(v bool) *ChatTurnEventUpdateOne {
	_u.mutation.SetHadImage(v)
	return _u
}

// SetNillableHadImage sets the "had_image" field if the given value is not nil.
func (_u *ChatTurnEventUpdateOne) SetNillableHadImage(v *bool) *ChatTurnEventUpdateOne {
	if v != nil {
		_u.SetHadImage(*v)
	}
	return _u
}

// Mutation returns the ChatTurnEventMutation object of the builder.
func (_u *ChatTurnEventUpdateOne) Mutation() *ChatTurnEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChatTurnEventUpdate builder.
func (_u *ChatTurnEventUpdateOne) Where(ps ...predicate.ChatTurnEvent) *ChatTurnEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatTurnEventUpdateOne) Select(field string, fields ...string) *ChatTurnEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatTurnEvent entity.
func (_u *ChatTurnEventUpdateOne) Save(ctx context.Context) (*ChatTurnEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatTurnEventUpdateOne) SaveX(ctx context.Context) *ChatTurnEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatTurnEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatTurnEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ChatTurnEventUpdateOne) sqlSave(ctx context.Context) (_node *ChatTurnEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(chatturnevent.Table, chatturnevent.Columns, sqlgraph.NewFieldSpec(chatturnevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatTurnEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatturnevent.FieldID)
		for _, f := range fields {
			if !chatturnevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatturnevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(chatturnevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseKind(); ok {
		_spec.SetField(chatturnevent.FieldResponseKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.McqCount(); ok {
		_spec.SetField(chatturnevent.FieldMcqCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMcqCount(); ok {
		_spec.AddField(chatturnevent.FieldMcqCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HadImage(); ok {
		_spec.SetField(chatturnevent.FieldHadImage, field.TypeBool, value)
	}
	_node = &ChatTurnEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatturnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
