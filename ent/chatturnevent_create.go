// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/doubtbox/ent/chatturnevent"
)

// ChatTurnEventCreate is the builder for creating a ChatTurnEvent entity.
type ChatTurnEventCreate struct {
	config
	mutation *ChatTurnEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ChatTurnEventCreate) SetSequence(v int64) *ChatTurnEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ChatTurnEventCreate) SetTimestamp(v time.Time) *ChatTurnEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ChatTurnEventCreate) SetNillableTimestamp(v *time.Time) *ChatTurnEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *ChatTurnEventCreate) SetSubject(v string) *ChatTurnEventCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetResponseKind sets the "response_kind" field.
func (_c *ChatTurnEventCreate) SetResponseKind(v string) *ChatTurnEventCreate {
	_c.mutation.SetResponseKind(v)
	return _c
}

// SetMcqCount sets the "mcq_count" field.
func (_c *ChatTurnEventCreate) SetMcqCount(v int) *ChatTurnEventCreate {
	_c.mutation.SetMcqCount(v)
	return _c
}

// SetNillableMcqCount sets the "mcq_count" field if the given value is not nil.
func (_c *ChatTurnEventCreate) SetNillableMcqCount(v *int) *ChatTurnEventCreate {
	if v != nil {
		_c.SetMcqCount(*v)
	}
	return _c
}

// SetHadImage sets the "had_image" field.
func (_c *ChatTurnEventCreate) SetHadImage(v bool) *ChatTurnEventCreate {
	_c.mutation.SetHadImage(v)
	return _c
}

// SetNillableHadImage sets the "had_image" field if the given value is not nil.
func (_c *ChatTurnEventCreate) SetNillableHadImage(v *bool) *ChatTurnEventCreate {
	if v != nil {
		_c.SetHadImage(*v)
	}
	return _c
}

// Mutation returns the ChatTurnEventMutation object of the builder.
func (_c *ChatTurnEventCreate) Mutation() *ChatTurnEventMutation {
	return _c.mutation
}

// Save creates the ChatTurnEvent in the database.
func (_c *ChatTurnEventCreate) Save(ctx context.Context) (*ChatTurnEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatTurnEventCreate) SaveX(ctx context.Context) *ChatTurnEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatTurnEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatTurnEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatTurnEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := chatturnevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.McqCount(); !ok {
		v := chatturnevent.DefaultMcqCount
		_c.mutation.SetMcqCount(v)
	}
	if _, ok := _c.mutation.HadImage(); !ok {
		v := chatturnevent.DefaultHadImage
		_c.mutation.SetHadImage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatTurnEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ChatTurnEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ChatTurnEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "ChatTurnEvent.subject"`)}
	}
	if _, ok := _c.mutation.ResponseKind(); !ok {
		return &ValidationError{Name: "response_kind", err: errors.New(`ent: missing required field "ChatTurnEvent.response_kind"`)}
	}
	if _, ok := _c.mutation.McqCount(); !ok {
		return &ValidationError{Name: "mcq_count", err: errors.New(`ent: missing required field "ChatTurnEvent.mcq_count"`)}
	}
	if _, ok := _c.mutation.HadImage(); !ok {
		return &ValidationError{Name: "had_image", err: errors.New(`ent: missing required field "ChatTurnEvent.had_image"`)}
	}
	return nil
}

func (_c *ChatTurnEventCreate) sqlSave(ctx context.Context) (*ChatTurnEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatTurnEventCreate) createSpec() (*ChatTurnEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatTurnEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatturnevent.Table, sqlgraph.NewFieldSpec(chatturnevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(chatturnevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(chatturnevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(chatturnevent.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.ResponseKind(); ok {
		_spec.SetField(chatturnevent.FieldResponseKind, field.TypeString, value)
		_node.ResponseKind = value
	}
	if value, ok := _c.mutation.McqCount(); ok {
		_spec.SetField(chatturnevent.FieldMcqCount, field.TypeInt, value)
		_node.McqCount = value
	}
	if value, ok := _c.mutation.HadImage(); ok {
		_spec.SetField(chatturnevent.FieldHadImage, field.TypeBool, value)
		_node.HadImage = value
	}
	return _node, _spec
}

// ChatTurnEventCreateBulk is the builder for creating many ChatTurnEvent entities in bulk.
type ChatTurnEventCreateBulk struct {
	config
	err      error
	builders []*ChatTurnEventCreate
}

// Save creates the ChatTurnEvent entities in the database.
func (_c *ChatTurnEventCreateBulk) Save(ctx context.Context) ([]*ChatTurnEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatTurnEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatTurnEventMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ChatTurnEventCreateBulk) SaveX(ctx context.Context) []*ChatTurnEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatTurnEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatTurnEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
