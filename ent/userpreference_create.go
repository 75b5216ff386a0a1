// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/emissary-bot/emissary/ent/userpreference"
)

// UserPreferenceCreate is the builder for creating a UserPreference entity.
type UserPreferenceCreate struct {
	config
	mutation *UserPreferenceMutation
	hooks    []Hook
}

// SetResponseStyle sets the "response_style" field.
func (_c *UserPreferenceCreate) SetResponseStyle(v userpreference.ResponseStyle) *UserPreferenceCreate {
	_c.mutation.SetResponseStyle(v)
	return _c
}

// SetNillableResponseStyle sets the "response_style" field if the given value is not nil.
func (_c *UserPreferenceCreate) SetNillableResponseStyle(v *userpreference.ResponseStyle) *UserPreferenceCreate {
	if v != nil {
		_c.SetResponseStyle(*v)
	}
	return _c
}

// SetRiskProfile sets the "risk_profile" field.
func (_c *UserPreferenceCreate) SetRiskProfile(v userpreference.RiskProfile) *UserPreferenceCreate {
	_c.mutation.SetRiskProfile(v)
	return _c
}

// SetNillableRiskProfile sets the "risk_profile" field if the given value is not nil.
func (_c *UserPreferenceCreate) SetNillableRiskProfile(v *userpreference.RiskProfile) *UserPreferenceCreate {
	if v != nil {
		_c.SetRiskProfile(*v)
	}
	return _c
}

// SetNetwork sets the "network" field.
func (_c *UserPreferenceCreate) SetNetwork(v string) *UserPreferenceCreate {
	_c.mutation.SetNetwork(v)
	return _c
}

// SetNillableNetwork sets the "network" field if the given value is not nil.
func (_c *UserPreferenceCreate) SetNillableNetwork(v *string) *UserPreferenceCreate {
	if v != nil {
		_c.SetNetwork(*v)
	}
	return _c
}

// SetWalletAddress sets the "wallet_address" field.
func (_c *UserPreferenceCreate) SetWalletAddress(v string) *UserPreferenceCreate {
	_c.mutation.SetWalletAddress(v)
	return _c
}

// SetNillableWalletAddress sets the "wallet_address" field if the given value is not nil.
func (_c *UserPreferenceCreate) SetNillableWalletAddress(v *string) *UserPreferenceCreate {
	if v != nil {
		_c.SetWalletAddress(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserPreferenceCreate) SetUpdatedAt(v time.Time) *UserPreferenceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserPreferenceCreate) SetNillableUpdatedAt(v *time.Time) *UserPreferenceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserPreferenceCreate) SetID(v int64) *UserPreferenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UserPreferenceMutation object of the builder.
func (_c *UserPreferenceCreate) Mutation() *UserPreferenceMutation {
	return _c.mutation
}

// Save creates the UserPreference in the database.
func (_c *UserPreferenceCreate) Save(ctx context.Context) (*UserPreference, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserPreferenceCreate) SaveX(ctx context.Context) *UserPreference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserPreferenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserPreferenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserPreferenceCreate) defaults() {
	if _, ok := _c.mutation.ResponseStyle(); !ok {
		v := userpreference.DefaultResponseStyle
		_c.mutation.SetResponseStyle(v)
	}
	if _, ok := _c.mutation.RiskProfile(); !ok {
		v := userpreference.DefaultRiskProfile
		_c.mutation.SetRiskProfile(v)
	}
	if _, ok := _c.mutation.Network(); !ok {
		v := userpreference.DefaultNetwork
		_c.mutation.SetNetwork(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := userpreference.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserPreferenceCreate) check() error {
	if _, ok := _c.mutation.ResponseStyle(); !ok {
		return &ValidationError{Name: "response_style", err: errors.New(`ent: missing required field "UserPreference.response_style"`)}
	}
	if v, ok := _c.mutation.ResponseStyle(); ok {
		if err := userpreference.ResponseStyleValidator(v); err != nil {
			return &ValidationError{Name: "response_style", err: fmt.Errorf(`ent: validator failed for field "UserPreference.response_style": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiskProfile(); !ok {
		return &ValidationError{Name: "risk_profile", err: errors.New(`ent: missing required field "UserPreference.risk_profile"`)}
	}
	if v, ok := _c.mutation.RiskProfile(); ok {
		if err := userpreference.RiskProfileValidator(v); err != nil {
			return &ValidationError{Name: "risk_profile", err: fmt.Errorf(`ent: validator failed for field "UserPreference.risk_profile": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Network(); !ok {
		return &ValidationError{Name: "network", err: errors.New(`ent: missing required field "UserPreference.network"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UserPreference.updated_at"`)}
	}
	return nil
}

func (_c *UserPreferenceCreate) sqlSave(ctx context.Context) (*UserPreference, error) {
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

func (_c *UserPreferenceCreate) createSpec() (*UserPreference, *sqlgraph.CreateSpec) {
	var (
		_node = &UserPreference{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(userpreference.Table, sqlgraph.NewFieldSpec(userpreference.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ResponseStyle(); ok {
		_spec.SetField(userpreference.FieldResponseStyle, field.TypeEnum, value)
		_node.ResponseStyle = value
	}
	if value, ok := _c.mutation.RiskProfile(); ok {
		_spec.SetField(userpreference.FieldRiskProfile, field.TypeEnum, value)
		_node.RiskProfile = value
	}
	if value, ok := _c.mutation.Network(); ok {
		_spec.SetField(userpreference.FieldNetwork, field.TypeString, value)
		_node.Network = value
	}
	if value, ok := _c.mutation.WalletAddress(); ok {
		_spec.SetField(userpreference.FieldWalletAddress, field.TypeString, value)
		_node.WalletAddress = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(userpreference.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// UserPreferenceCreateBulk is the builder for creating many UserPreference entities in bulk.
type UserPreferenceCreateBulk struct {
	config
	err      error
	builders []*UserPreferenceCreate
}

// Save creates the UserPreference entities in the database.
func (_c *UserPreferenceCreateBulk) Save(ctx context.Context) ([]*UserPreference, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UserPreference, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserPreferenceMutation)
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
func (_c *UserPreferenceCreateBulk) SaveX(ctx context.Context) []*UserPreference {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserPreferenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserPreferenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
