// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/emissary-bot/emissary/ent/predicate"
	"github.com/emissary-bot/emissary/ent/userpreference"
)

// UserPreferenceUpdate is the builder for updating UserPreference entities.
type UserPreferenceUpdate struct {
	config
	hooks    []Hook
	mutation *UserPreferenceMutation
}

// Where appends a list predicates to the UserPreferenceUpdate builder.
func (_u *UserPreferenceUpdate) Where(ps ...predicate.UserPreference) *UserPreferenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResponseStyle sets the "response_style" field.
func (_u *UserPreferenceUpdate) SetResponseStyle(v userpreference.ResponseStyle) *UserPreferenceUpdate {
	_u.mutation.SetResponseStyle(v)
	return _u
}

// SetNillableResponseStyle sets the "response_style" field if the given value is not nil.
func (_u *UserPreferenceUpdate) SetNillableResponseStyle(v *userpreference.ResponseStyle) *UserPreferenceUpdate {
	if v != nil {
		_u.SetResponseStyle(*v)
	}
	return _u
}

// SetRiskProfile sets the "risk_profile" field.
func (_u *UserPreferenceUpdate) SetRiskProfile(v userpreference.RiskProfile) *UserPreferenceUpdate {
	_u.mutation.SetRiskProfile(v)
	return _u
}

// SetNillableRiskProfile sets the "risk_profile" field if the given value is not nil.
func (_u *UserPreferenceUpdate) SetNillableRiskProfile(v *userpreference.RiskProfile) *UserPreferenceUpdate {
	if v != nil {
		_u.SetRiskProfile(*v)
	}
	return _u
}

// SetNetwork sets the "network" field.
func (_u *UserPreferenceUpdate) SetNetwork(v string) *UserPreferenceUpdate {
	_u.mutation.SetNetwork(v)
	return _u
}

// SetNillableNetwork sets the "network" field if the given value is not nil.
func (_u *UserPreferenceUpdate) SetNillableNetwork(v *string) *UserPreferenceUpdate {
	if v != nil {
		_u.SetNetwork(*v)
	}
	return _u
}

// SetWalletAddress sets the "wallet_address" field.
func (_u *UserPreferenceUpdate) SetWalletAddress(v string) *UserPreferenceUpdate {
	_u.mutation.SetWalletAddress(v)
	return _u
}

// SetNillableWalletAddress sets the "wallet_address" field if the given value is not nil.
func (_u *UserPreferenceUpdate) SetNillableWalletAddress(v *string) *UserPreferenceUpdate {
	if v != nil {
		_u.SetWalletAddress(*v)
	}
	return _u
}

// ClearWalletAddress clears the value of the "wallet_address" field.
func (_u *UserPreferenceUpdate) ClearWalletAddress() *UserPreferenceUpdate {
	_u.mutation.ClearWalletAddress()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserPreferenceUpdate) SetUpdatedAt(v time.Time) *UserPreferenceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserPreferenceMutation object of the builder.
func (_u *UserPreferenceUpdate) Mutation() *UserPreferenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserPreferenceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserPreferenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserPreferenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserPreferenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserPreferenceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userpreference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserPreferenceUpdate) check() error {
	if v, ok := _u.mutation.ResponseStyle(); ok {
		if err := userpreference.ResponseStyleValidator(v); err != nil {
			return &ValidationError{Name: "response_style", err: fmt.Errorf(`ent: validator failed for field "UserPreference.response_style": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskProfile(); ok {
		if err := userpreference.RiskProfileValidator(v); err != nil {
			return &ValidationError{Name: "risk_profile", err: fmt.Errorf(`ent: validator failed for field "UserPreference.risk_profile": %w`, err)}
		}
	}
	return nil
}

func (_u *UserPreferenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userpreference.Table, userpreference.Columns, sqlgraph.NewFieldSpec(userpreference.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ResponseStyle(); ok {
		_spec.SetField(userpreference.FieldResponseStyle, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RiskProfile(); ok {
		_spec.SetField(userpreference.FieldRiskProfile, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Network(); ok {
		_spec.SetField(userpreference.FieldNetwork, field.TypeString, value)
	}
	if value, ok := _u.mutation.WalletAddress(); ok {
		_spec.SetField(userpreference.FieldWalletAddress, field.TypeString, value)
	}
	if _u.mutation.WalletAddressCleared() {
		_spec.ClearField(userpreference.FieldWalletAddress, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userpreference.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userpreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserPreferenceUpdateOne is the builder for updating a single UserPreference entity.
type UserPreferenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserPreferenceMutation
}

// SetResponseStyle sets the "response_style" field.
func (_u *UserPreferenceUpdateOne) SetResponseStyle(v userpreference.ResponseStyle) *UserPreferenceUpdateOne {
	_u.mutation.SetResponseStyle(v)
	return _u
}

// SetNillableResponseStyle sets the "response_style" field if the given value is not nil.
func (_u *UserPreferenceUpdateOne) SetNillableResponseStyle(v *userpreference.ResponseStyle) *UserPreferenceUpdateOne {
	if v != nil {
		_u.SetResponseStyle(*v)
	}
	return _u
}

// SetRiskProfile sets the "risk_profile" field.
func (_u *UserPreferenceUpdateOne) SetRiskProfile(v userpreference.RiskProfile) *UserPreferenceUpdateOne {
	_u.mutation.SetRiskProfile(v)
	return _u
}

// SetNillableRiskProfile sets the "risk_profile" field if the given value is not nil.
func (_u *UserPreferenceUpdateOne) SetNillableRiskProfile(v *userpreference.RiskProfile) *UserPreferenceUpdateOne {
	if v != nil {
		_u.SetRiskProfile(*v)
	}
	return _u
}

// SetNetwork sets the "network" field.
func (_u *UserPreferenceUpdateOne) SetNetwork(v string) *UserPreferenceUpdateOne {
	_u.mutation.SetNetwork(v)
	return _u
}

// SetNillableNetwork sets the "network" field if the given value is not nil.
func (_u *UserPreferenceUpdateOne) SetNillableNetwork(v *string) *UserPreferenceUpdateOne {
	if v != nil {
		_u.SetNetwork(*v)
	}
	return _u
}

// SetWalletAddress sets the "wallet_address" field.
func (_u *UserPreferenceUpdateOne) SetWalletAddress(v string) *UserPreferenceUpdateOne {
	_u.mutation.SetWalletAddress(v)
	return _u
}

// SetNillableWalletAddress sets the "wallet_address" field if the given value is not nil.
func (_u *UserPreferenceUpdateOne) SetNillableWalletAddress(v *string) *UserPreferenceUpdateOne {
	if v != nil {
		_u.SetWalletAddress(*v)
	}
	return _u
}

// ClearWalletAddress clears the value of the "wallet_address" field.
func (_u *UserPreferenceUpdateOne) ClearWalletAddress() *UserPreferenceUpdateOne {
	_u.mutation.ClearWalletAddress()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserPreferenceUpdateOne) SetUpdatedAt(v time.Time) *UserPreferenceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the UserPreferenceMutation object of the builder.
func (_u *UserPreferenceUpdateOne) Mutation() *UserPreferenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserPreferenceUpdate builder.
func (_u *UserPreferenceUpdateOne) Where(ps ...predicate.UserPreference) *UserPreferenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserPreferenceUpdateOne) Select(field string, fields ...string) *UserPreferenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserPreference entity.
func (_u *UserPreferenceUpdateOne) Save(ctx context.Context) (*UserPreference, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserPreferenceUpdateOne) SaveX(ctx context.Context) *UserPreference {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserPreferenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserPreferenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserPreferenceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := userpreference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserPreferenceUpdateOne) check() error {
	if v, ok := _u.mutation.ResponseStyle(); ok {
		if err := userpreference.ResponseStyleValidator(v); err != nil {
			return &ValidationError{Name: "response_style", err: fmt.Errorf(`ent: validator failed for field "UserPreference.response_style": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskProfile(); ok {
		if err := userpreference.RiskProfileValidator(v); err != nil {
			return &ValidationError{Name: "risk_profile", err: fmt.Errorf(`ent: validator failed for field "UserPreference.risk_profile": %w`, err)}
		}
	}
	return nil
}

func (_u *UserPreferenceUpdateOne) sqlSave(ctx context.Context) (_node *UserPreference, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(userpreference.Table, userpreference.Columns, sqlgraph.NewFieldSpec(userpreference.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserPreference.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userpreference.FieldID)
		for _, f := range fields {
			if !userpreference.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userpreference.FieldID {
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
	if value, ok := _u.mutation.ResponseStyle(); ok {
		_spec.SetField(userpreference.FieldResponseStyle, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RiskProfile(); ok {
		_spec.SetField(userpreference.FieldRiskProfile, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Network(); ok {
		_spec.SetField(userpreference.FieldNetwork, field.TypeString, value)
	}
	if value, ok := _u.mutation.WalletAddress(); ok {
		_spec.SetField(userpreference.FieldWalletAddress, field.TypeString, value)
	}
	if _u.mutation.WalletAddressCleared() {
		_spec.ClearField(userpreference.FieldWalletAddress, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(userpreference.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UserPreference{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userpreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
