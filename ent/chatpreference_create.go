// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/emissary-bot/emissary/ent/chatpreference"
)

// ChatPreferenceCreate is the builder for creating a ChatPreference entity.
type ChatPreferenceCreate struct {
	config
	mutation *ChatPreferenceMutation
	hooks    []Hook
}

// SetResponseStyle sets the "response_style" field.
func (_c *ChatPreferenceCreate) SetResponseStyle(v chatpreference.ResponseStyle) *ChatPreferenceCreate {
	_c.mutation.SetResponseStyle(v)
	return _c
}

// SetNillableResponseStyle sets the "response_style" field if the given value is not nil.
func (_c *ChatPreferenceCreate) SetNillableResponseStyle(v *chatpreference.ResponseStyle) *ChatPreferenceCreate {
	if v != nil {
		_c.SetResponseStyle(*v)
	}
	return _c
}

// SetRiskProfile sets the "risk_profile" field.
func (_c *ChatPreferenceCreate) SetRiskProfile(v chatpreference.RiskProfile) *ChatPreferenceCreate {
	_c.mutation.SetRiskProfile(v)
	return _c
}

// SetNillableRiskProfile sets the "risk_profile" field if the given value is not nil.
func (_c *ChatPreferenceCreate) SetNillableRiskProfile(v *chatpreference.RiskProfile) *ChatPreferenceCreate {
	if v != nil {
		_c.SetRiskProfile(*v)
	}
	return _c
}

// SetNetwork sets the "network" field.
func (_c *ChatPreferenceCreate) SetNetwork(v string) *ChatPreferenceCreate {
	_c.mutation.SetNetwork(v)
	return _c
}

// SetNillableNetwork sets the "network" field if the given value is not nil.
func (_c *ChatPreferenceCreate) SetNillableNetwork(v *string) *ChatPreferenceCreate {
	if v != nil {
		_c.SetNetwork(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChatPreferenceCreate) SetUpdatedAt(v time.Time) *ChatPreferenceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChatPreferenceCreate) SetNillableUpdatedAt(v *time.Time) *ChatPreferenceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChatPreferenceCreate) SetID(v int64) *ChatPreferenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ChatPreferenceMutation object of the builder.
func (_c *ChatPreferenceCreate) Mutation() *ChatPreferenceMutation {
	return _c.mutation
}

// Save creates the ChatPreference in the database.
func (_c *ChatPreferenceCreate) Save(ctx context.Context) (*ChatPreference, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatPreferenceCreate) SaveX(ctx context.Context) *ChatPreference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatPreferenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatPreferenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatPreferenceCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := chatpreference.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatPreferenceCreate) check() error {
	if v, ok := _c.mutation.ResponseStyle(); ok {
		if err := chatpreference.ResponseStyleValidator(v); err != nil {
			return &ValidationError{Name: "response_style", err: fmt.Errorf(`ent: validator failed for field "ChatPreference.response_style": %w`, err)}
		}
	}
	if v, ok := _c.mutation.RiskProfile(); ok {
		if err := chatpreference.RiskProfileValidator(v); err != nil {
			return &ValidationError{Name: "risk_profile", err: fmt.Errorf(`ent: validator failed for field "ChatPreference.risk_profile": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ChatPreference.updated_at"`)}
	}
	return nil
}

func (_c *ChatPreferenceCreate) sqlSave(ctx context.Context) (*ChatPreference, error) {
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

func (_c *ChatPreferenceCreate) createSpec() (*ChatPreference, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatPreference{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatpreference.Table, sqlgraph.NewFieldSpec(chatpreference.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ResponseStyle(); ok {
		_spec.SetField(chatpreference.FieldResponseStyle, field.TypeEnum, value)
		_node.ResponseStyle = &value
	}
	if value, ok := _c.mutation.RiskProfile(); ok {
		_spec.SetField(chatpreference.FieldRiskProfile, field.TypeEnum, value)
		_node.RiskProfile = &value
	}
	if value, ok := _c.mutation.Network(); ok {
		_spec.SetField(chatpreference.FieldNetwork, field.TypeString, value)
		_node.Network = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(chatpreference.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ChatPreferenceCreateBulk is the builder for creating many ChatPreference entities in bulk.
type ChatPreferenceCreateBulk struct {
	config
	err      error
	builders []*ChatPreferenceCreate
}

// Save creates the ChatPreference entities in the database.
func (_c *ChatPreferenceCreateBulk) Save(ctx context.Context) ([]*ChatPreference, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatPreference, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatPreferenceMutation)
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
func (_c *ChatPreferenceCreateBulk) SaveX(ctx context.Context) []*ChatPreference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatPreferenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatPreferenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
