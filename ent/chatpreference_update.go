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
	"github.com/emissary-bot/emissary/ent/chatpreference"
	"github.com/emissary-bot/emissary/ent/predicate"
)

// ChatPreferenceUpdate is the builder for updating ChatPreference entities.
type ChatPreferenceUpdate struct {
	config
	hooks    []Hook
	mutation *ChatPreferenceMutation
}

// Where appends a list predicates to the ChatPreferenceUpdate builder.
func (_u *ChatPreferenceUpdate) Where(ps ...predicate.ChatPreference) *ChatPreferenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResponseStyle sets the "response_style" field.
func (_u *ChatPreferenceUpdate) SetResponseStyle(v chatpreference.ResponseStyle) *ChatPreferenceUpdate {
	_u.mutation.SetResponseStyle(v)
	return _u
}

// SetNillableResponseStyle sets the "response_style" field if the given value is not nil.
func (_u *ChatPreferenceUpdate) SetNillableResponseStyle(v *chatpreference.ResponseStyle) *ChatPreferenceUpdate {
	if v != nil {
		_u.SetResponseStyle(*v)
	}
	return _u
}

// ClearResponseStyle clears the value of the "response_style" field.
func (_u *ChatPreferenceUpdate) ClearResponseStyle() *ChatPreferenceUpdate {
	_u.mutation.ClearResponseStyle()
	return _u
}

// SetRiskProfile sets the "risk_profile" field.
func (_u *ChatPreferenceUpdate) SetRiskProfile(v chatpreference.RiskProfile) *ChatPreferenceUpdate {
	_u.mutation.SetRiskProfile(v)
	return _u
}

// SetNillableRiskProfile sets the "risk_profile" field if the given value is not nil.
func (_u *ChatPreferenceUpdate) SetNillableRiskProfile(v *chatpreference.RiskProfile) *ChatPreferenceUpdate {
	if v != nil {
		_u.SetRiskProfile(*v)
	}
	return _u
}

// ClearRiskProfile clears the value of the "risk_profile" field.
func (_u *ChatPreferenceUpdate) ClearRiskProfile() *ChatPreferenceUpdate {
	_u.mutation.ClearRiskProfile()
	return _u
}

// SetNetwork sets the "network" field.
func (_u *ChatPreferenceUpdate) SetNetwork(v string) *ChatPreferenceUpdate {
	_u.mutation.SetNetwork(v)
	return _u
}

// SetNillableNetwork sets the "network" field if the given value is not nil.
func (_u *ChatPreferenceUpdate) SetNillableNetwork(v *string) *ChatPreferenceUpdate {
	if v != nil {
		_u.SetNetwork(*v)
	}
	return _u
}

// ClearNetwork clears the value of the "network" field.
func (_u *ChatPreferenceUpdate) ClearNetwork() *ChatPreferenceUpdate {
	_u.mutation.ClearNetwork()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatPreferenceUpdate) SetUpdatedAt(v time.Time) *ChatPreferenceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChatPreferenceMutation object of the builder.
func (_u *ChatPreferenceUpdate) Mutation() *ChatPreferenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatPreferenceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatPreferenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatPreferenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatPreferenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatPreferenceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatpreference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatPreferenceUpdate) check() error {
	if v, ok := _u.mutation.ResponseStyle(); ok {
		if err := chatpreference.ResponseStyleValidator(v); err != nil {
			return &ValidationError{Name: "response_style", err: fmt.Errorf(`ent: validator failed for field "ChatPreference.response_style": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskProfile(); ok {
		if err := chatpreference.RiskProfileValidator(v); err != nil {
			return &ValidationError{Name: "risk_profile", err: fmt.Errorf(`ent: validator failed for field "ChatPreference.risk_profile": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatPreferenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatpreference.Table, chatpreference.Columns, sqlgraph.NewFieldSpec(chatpreference.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ResponseStyle(); ok {
		_spec.SetField(chatpreference.FieldResponseStyle, field.TypeEnum, value)
	}
	if _u.mutation.ResponseStyleCleared() {
		_spec.ClearField(chatpreference.FieldResponseStyle, field.TypeEnum)
	}
	if value, ok := _u.mutation.RiskProfile(); ok {
		_spec.SetField(chatpreference.FieldRiskProfile, field.TypeEnum, value)
	}
	if _u.mutation.RiskProfileCleared() {
		_spec.ClearField(chatpreference.FieldRiskProfile, field.TypeEnum)
	}
	if value, ok := _u.mutation.Network(); ok {
		_spec.SetField(chatpreference.FieldNetwork, field.TypeString, value)
	}
	if _u.mutation.NetworkCleared() {
		_spec.ClearField(chatpreference.FieldNetwork, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatpreference.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatpreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatPreferenceUpdateOne is the builder for updating a single ChatPreference entity.
type ChatPreferenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatPreferenceMutation
}

// SetResponseStyle sets the "response_style" field.
func (_u *ChatPreferenceUpdateOne) SetResponseStyle(v chatpreference.ResponseStyle) *ChatPreferenceUpdateOne {
	_u.mutation.SetResponseStyle(v)
	return _u
}

// SetNillableResponseStyle sets the "response_style" field if the given value is not nil.
func (_u *ChatPreferenceUpdateOne) SetNillableResponseStyle(v *chatpreference.ResponseStyle) *ChatPreferenceUpdateOne {
	if v != nil {
		_u.SetResponseStyle(*v)
	}
	return _u
}

// ClearResponseStyle clears the value of the "response_style" field.
func (_u *ChatPreferenceUpdateOne) ClearResponseStyle() *ChatPreferenceUpdateOne {
	_u.mutation.ClearResponseStyle()
	return _u
}

// SetRiskProfile sets the "risk_profile" field.
func (_u *ChatPreferenceUpdateOne) SetRiskProfile(v chatpreference.RiskProfile) *ChatPreferenceUpdateOne {
	_u.mutation.SetRiskProfile(v)
	return _u
}

// SetNillableRiskProfile sets the "risk_profile" field if the given value is not nil.
func (_u *ChatPreferenceUpdateOne) SetNillableRiskProfile(v *chatpreference.RiskProfile) *ChatPreferenceUpdateOne {
	if v != nil {
		_u.SetRiskProfile(*v)
	}
	return _u
}

// ClearRiskProfile clears the value of the "risk_profile" field.
func (_u *ChatPreferenceUpdateOne) ClearRiskProfile() *ChatPreferenceUpdateOne {
	_u.mutation.ClearRiskProfile()
	return _u
}

// SetNetwork sets the "network" field.
func (_u *ChatPreferenceUpdateOne) SetNetwork(v string) *ChatPreferenceUpdateOne {
	_u.mutation.SetNetwork(v)
	return _u
}

// SetNillableNetwork sets the "network" field if the given value is not nil.
func (_u *ChatPreferenceUpdateOne) SetNillableNetwork(v *string) *ChatPreferenceUpdateOne {
	if v != nil {
		_u.SetNetwork(*v)
	}
	return _u
}

// ClearNetwork clears the value of the "network" field.
func (_u *ChatPreferenceUpdateOne) ClearNetwork() *ChatPreferenceUpdateOne {
	_u.mutation.ClearNetwork()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatPreferenceUpdateOne) SetUpdatedAt(v time.Time) *ChatPreferenceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChatPreferenceMutation object of the builder.
func (_u *ChatPreferenceUpdateOne) Mutation() *ChatPreferenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChatPreferenceUpdate builder.
func (_u *ChatPreferenceUpdateOne) Where(ps ...predicate.ChatPreference) *ChatPreferenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatPreferenceUpdateOne) Select(field string, fields ...string) *ChatPreferenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatPreference entity.
func (_u *ChatPreferenceUpdateOne) Save(ctx context.Context) (*ChatPreference, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatPreferenceUpdateOne) SaveX(ctx context.Context) *ChatPreference {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatPreferenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatPreferenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatPreferenceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatpreference.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatPreferenceUpdateOne) check() error {
	if v, ok := _u.mutation.ResponseStyle(); ok {
		if err := chatpreference.ResponseStyleValidator(v); err != nil {
			return &ValidationError{Name: "response_style", err: fmt.Errorf(`ent: validator failed for field "ChatPreference.response_style": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskProfile(); ok {
		if err := chatpreference.RiskProfileValidator(v); err != nil {
			return &ValidationError{Name: "risk_profile", err: fmt.Errorf(`ent: validator failed for field "ChatPreference.risk_profile": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatPreferenceUpdateOne) sqlSave(ctx context.Context) (_node *ChatPreference, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatpreference.Table, chatpreference.Columns, sqlgraph.NewFieldSpec(chatpreference.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatPreference.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatpreference.FieldID)
		for _, f := range fields {
			if !chatpreference.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatpreference.FieldID {
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
		_spec.SetField(chatpreference.FieldResponseStyle, field.TypeEnum, value)
	}
	if _u.mutation.ResponseStyleCleared() {
		_spec.ClearField(chatpreference.FieldResponseStyle, field.TypeEnum)
	}
	if value, ok := _u.mutation.RiskProfile(); ok {
		_spec.SetField(chatpreference.FieldRiskProfile, field.TypeEnum, value)
	}
	if _u.mutation.RiskProfileCleared() {
		_spec.ClearField(chatpreference.FieldRiskProfile, field.TypeEnum)
	}
	if value, ok := _u.mutation.Network(); ok {
		_spec.SetField(chatpreference.FieldNetwork, field.TypeString, value)
	}
	if _u.mutation.NetworkCleared() {
		_spec.ClearField(chatpreference.FieldNetwork, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatpreference.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ChatPreference{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatpreference.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
