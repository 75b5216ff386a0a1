// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/emissary-bot/emissary/ent/processedupdate"
)

// ProcessedUpdateCreate is the builder for creating a ProcessedUpdate entity.
type ProcessedUpdateCreate struct {
	config
	mutation *ProcessedUpdateMutation
	hooks    []Hook
}

// SetPayload sets the "payload" field.
func (_c *ProcessedUpdateCreate) SetPayload(v map[string]interface{}) *ProcessedUpdateCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProcessedUpdateCreate) SetStatus(v processedupdate.Status) *ProcessedUpdateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProcessedUpdateCreate) SetNillableStatus(v *processedupdate.Status) *ProcessedUpdateCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *ProcessedUpdateCreate) SetReceivedAt(v time.Time) *ProcessedUpdateCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *ProcessedUpdateCreate) SetNillableReceivedAt(v *time.Time) *ProcessedUpdateCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetHandledAt sets the "handled_at" field.
func (_c *ProcessedUpdateCreate) SetHandledAt(v time.Time) *ProcessedUpdateCreate {
	_c.mutation.SetHandledAt(v)
	return _c
}

// SetNillableHandledAt sets the "handled_at" field if the given value is not nil.
func (_c *ProcessedUpdateCreate) SetNillableHandledAt(v *time.Time) *ProcessedUpdateCreate {
	if v != nil {
		_c.SetHandledAt(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *ProcessedUpdateCreate) SetError(v string) *ProcessedUpdateCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *ProcessedUpdateCreate) SetNillableError(v *string) *ProcessedUpdateCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessedUpdateCreate) SetID(v int64) *ProcessedUpdateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProcessedUpdateMutation object of the builder.
func (_c *ProcessedUpdateCreate) Mutation() *ProcessedUpdateMutation {
	return _c.mutation
}

// Save creates the ProcessedUpdate in the database.
func (_c *ProcessedUpdateCreate) Save(ctx context.Context) (*ProcessedUpdate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessedUpdateCreate) SaveX(ctx context.Context) *ProcessedUpdate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessedUpdateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessedUpdateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessedUpdateCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := processedupdate.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := processedupdate.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessedUpdateCreate) check() error {
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "ProcessedUpdate.payload"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProcessedUpdate.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := processedupdate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessedUpdate.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "ProcessedUpdate.received_at"`)}
	}
	return nil
}

func (_c *ProcessedUpdateCreate) sqlSave(ctx context.Context) (*ProcessedUpdate, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProcessedUpdateCreate) createSpec() (*ProcessedUpdate, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessedUpdate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processedupdate.Table, sqlgraph.NewFieldSpec(processedupdate.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(processedupdate.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(processedupdate.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(processedupdate.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if value, ok := _c.mutation.HandledAt(); ok {
		_spec.SetField(processedupdate.FieldHandledAt, field.TypeTime, value)
		_node.HandledAt = &value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(processedupdate.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	return _node, _spec
}

// ProcessedUpdateCreateBulk is the builder for creating many ProcessedUpdate entities in bulk.
type ProcessedUpdateCreateBulk struct {
	config
	err      error
	builders []*ProcessedUpdateCreate
}

// Save creates the ProcessedUpdate entities in the database.
func (_c *ProcessedUpdateCreateBulk) Save(ctx context.Context) ([]*ProcessedUpdate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessedUpdate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessedUpdateMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
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
func (_c *ProcessedUpdateCreateBulk) SaveX(ctx context.Context) []*ProcessedUpdate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessedUpdateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessedUpdateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
