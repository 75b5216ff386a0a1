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
	"github.com/emissary-bot/emissary/ent/approval"
	"github.com/emissary-bot/emissary/ent/predicate"
)

// ApprovalUpdate is the builder for updating Approval entities.
type ApprovalUpdate struct {
	config
	hooks    []Hook
	mutation *ApprovalMutation
}

// Where appends a list predicates to the ApprovalUpdate builder.
func (_u *ApprovalUpdate) Where(ps ...predicate.Approval) *ApprovalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRiskLevel sets the "risk_level" field.
func (_u *ApprovalUpdate) SetRiskLevel(v approval.RiskLevel) *ApprovalUpdate {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableRiskLevel(v *approval.RiskLevel) *ApprovalUpdate {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetRiskConfidence sets the "risk_confidence" field.
func (_u *ApprovalUpdate) SetRiskConfidence(v approval.RiskConfidence) *ApprovalUpdate {
	_u.mutation.SetRiskConfidence(v)
	return _u
}

// SetNillableRiskConfidence sets the "risk_confidence" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableRiskConfidence(v *approval.RiskConfidence) *ApprovalUpdate {
	if v != nil {
		_u.SetRiskConfidence(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalUpdate) SetStatus(v approval.Status) *ApprovalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableStatus(v *approval.Status) *ApprovalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ApprovalUpdate) SetExpiresAt(v time.Time) *ApprovalUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableExpiresAt(v *time.Time) *ApprovalUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *ApprovalUpdate) SetDecidedBy(v int64) *ApprovalUpdate {
	_u.mutation.ResetDecidedBy()
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableDecidedBy(v *int64) *ApprovalUpdate {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// AddDecidedBy adds value to the "decided_by" field.
func (_u *ApprovalUpdate) AddDecidedBy(v int64) *ApprovalUpdate {
	_u.mutation.AddDecidedBy(v)
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *ApprovalUpdate) ClearDecidedBy() *ApprovalUpdate {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *ApprovalUpdate) SetDecidedAt(v time.Time) *ApprovalUpdate {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillableDecidedAt(v *time.Time) *ApprovalUpdate {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *ApprovalUpdate) ClearDecidedAt() *ApprovalUpdate {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetPromptMessageID sets the "prompt_message_id" field.
func (_u *ApprovalUpdate) SetPromptMessageID(v int64) *ApprovalUpdate {
	_u.mutation.ResetPromptMessageID()
	_u.mutation.SetPromptMessageID(v)
	return _u
}

// SetNillablePromptMessageID sets the "prompt_message_id" field if the given value is not nil.
func (_u *ApprovalUpdate) SetNillablePromptMessageID(v *int64) *ApprovalUpdate {
	if v != nil {
		_u.SetPromptMessageID(*v)
	}
	return _u
}

// AddPromptMessageID adds value to the "prompt_message_id" field.
func (_u *ApprovalUpdate) AddPromptMessageID(v int64) *ApprovalUpdate {
	_u.mutation.AddPromptMessageID(v)
	return _u
}

// ClearPromptMessageID clears the value of the "prompt_message_id" field.
func (_u *ApprovalUpdate) ClearPromptMessageID() *ApprovalUpdate {
	_u.mutation.ClearPromptMessageID()
	return _u
}

// Mutation returns the ApprovalMutation object of the builder.
func (_u *ApprovalUpdate) Mutation() *ApprovalMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApprovalUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApprovalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalUpdate) check() error {
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := approval.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "Approval.risk_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskConfidence(); ok {
		if err := approval.RiskConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "risk_confidence", err: fmt.Errorf(`ent: validator failed for field "Approval.risk_confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := approval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Approval.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approval.Table, approval.Columns, sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(approval.FieldRiskLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RiskConfidence(); ok {
		_spec.SetField(approval.FieldRiskConfidence, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approval.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(approval.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(approval.FieldDecidedBy, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDecidedBy(); ok {
		_spec.AddField(approval.FieldDecidedBy, field.TypeInt64, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(approval.FieldDecidedBy, field.TypeInt64)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(approval.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(approval.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PromptMessageID(); ok {
		_spec.SetField(approval.FieldPromptMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPromptMessageID(); ok {
		_spec.AddField(approval.FieldPromptMessageID, field.TypeInt64, value)
	}
	if _u.mutation.PromptMessageIDCleared() {
		_spec.ClearField(approval.FieldPromptMessageID, field.TypeInt64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApprovalUpdateOne is the builder for updating a single Approval entity.
type ApprovalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApprovalMutation
}

// SetRiskLevel sets the "risk_level" field.
func (_u *ApprovalUpdateOne) SetRiskLevel(v approval.RiskLevel) *ApprovalUpdateOne {
	_u.mutation.SetRiskLevel(v)
	return _u
}

// SetNillableRiskLevel sets the "risk_level" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableRiskLevel(v *approval.RiskLevel) *ApprovalUpdateOne {
	if v != nil {
		_u.SetRiskLevel(*v)
	}
	return _u
}

// SetRiskConfidence sets the "risk_confidence" field.
func (_u *ApprovalUpdateOne) SetRiskConfidence(v approval.RiskConfidence) *ApprovalUpdateOne {
	_u.mutation.SetRiskConfidence(v)
	return _u
}

// SetNillableRiskConfidence sets the "risk_confidence" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableRiskConfidence(v *approval.RiskConfidence) *ApprovalUpdateOne {
	if v != nil {
		_u.SetRiskConfidence(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalUpdateOne) SetStatus(v approval.Status) *ApprovalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableStatus(v *approval.Status) *ApprovalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ApprovalUpdateOne) SetExpiresAt(v time.Time) *ApprovalUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableExpiresAt(v *time.Time) *ApprovalUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetDecidedBy sets the "decided_by" field.
func (_u *ApprovalUpdateOne) SetDecidedBy(v int64) *ApprovalUpdateOne {
	_u.mutation.ResetDecidedBy()
	_u.mutation.SetDecidedBy(v)
	return _u
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableDecidedBy(v *int64) *ApprovalUpdateOne {
	if v != nil {
		_u.SetDecidedBy(*v)
	}
	return _u
}

// AddDecidedBy adds value to the "decided_by" field.
func (_u *ApprovalUpdateOne) AddDecidedBy(v int64) *ApprovalUpdateOne {
	_u.mutation.AddDecidedBy(v)
	return _u
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (_u *ApprovalUpdateOne) ClearDecidedBy() *ApprovalUpdateOne {
	_u.mutation.ClearDecidedBy()
	return _u
}

// SetDecidedAt sets the "decided_at" field.
func (_u *ApprovalUpdateOne) SetDecidedAt(v time.Time) *ApprovalUpdateOne {
	_u.mutation.SetDecidedAt(v)
	return _u
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillableDecidedAt(v *time.Time) *ApprovalUpdateOne {
	if v != nil {
		_u.SetDecidedAt(*v)
	}
	return _u
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (_u *ApprovalUpdateOne) ClearDecidedAt() *ApprovalUpdateOne {
	_u.mutation.ClearDecidedAt()
	return _u
}

// SetPromptMessageID sets the "prompt_message_id" field.
func (_u *ApprovalUpdateOne) SetPromptMessageID(v int64) *ApprovalUpdateOne {
	_u.mutation.ResetPromptMessageID()
	_u.mutation.SetPromptMessageID(v)
	return _u
}

// SetNillablePromptMessageID sets the "prompt_message_id" field if the given value is not nil.
func (_u *ApprovalUpdateOne) SetNillablePromptMessageID(v *int64) *ApprovalUpdateOne {
	if v != nil {
		_u.SetPromptMessageID(*v)
	}
	return _u
}

// AddPromptMessageID adds value to the "prompt_message_id" field.
func (_u *ApprovalUpdateOne) AddPromptMessageID(v int64) *ApprovalUpdateOne {
	_u.mutation.AddPromptMessageID(v)
	return _u
}

// ClearPromptMessageID clears the value of the "prompt_message_id" field.
func (_u *ApprovalUpdateOne) ClearPromptMessageID() *ApprovalUpdateOne {
	_u.mutation.ClearPromptMessageID()
	return _u
}

// Mutation returns the ApprovalMutation object of the builder.
func (_u *ApprovalUpdateOne) Mutation() *ApprovalMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApprovalUpdate builder.
func (_u *ApprovalUpdateOne) Where(ps ...predicate.Approval) *ApprovalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApprovalUpdateOne) Select(field string, fields ...string) *ApprovalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Approval entity.
func (_u *ApprovalUpdateOne) Save(ctx context.Context) (*Approval, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalUpdateOne) SaveX(ctx context.Context) *Approval {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApprovalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalUpdateOne) check() error {
	if v, ok := _u.mutation.RiskLevel(); ok {
		if err := approval.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "Approval.risk_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiskConfidence(); ok {
		if err := approval.RiskConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "risk_confidence", err: fmt.Errorf(`ent: validator failed for field "Approval.risk_confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := approval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Approval.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalUpdateOne) sqlSave(ctx context.Context) (_node *Approval, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approval.Table, approval.Columns, sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Approval.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approval.FieldID)
		for _, f := range fields {
			if !approval.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != approval.FieldID {
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
	if value, ok := _u.mutation.RiskLevel(); ok {
		_spec.SetField(approval.FieldRiskLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RiskConfidence(); ok {
		_spec.SetField(approval.FieldRiskConfidence, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approval.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(approval.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DecidedBy(); ok {
		_spec.SetField(approval.FieldDecidedBy, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDecidedBy(); ok {
		_spec.AddField(approval.FieldDecidedBy, field.TypeInt64, value)
	}
	if _u.mutation.DecidedByCleared() {
		_spec.ClearField(approval.FieldDecidedBy, field.TypeInt64)
	}
	if value, ok := _u.mutation.DecidedAt(); ok {
		_spec.SetField(approval.FieldDecidedAt, field.TypeTime, value)
	}
	if _u.mutation.DecidedAtCleared() {
		_spec.ClearField(approval.FieldDecidedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PromptMessageID(); ok {
		_spec.SetField(approval.FieldPromptMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedPromptMessageID(); ok {
		_spec.AddField(approval.FieldPromptMessageID, field.TypeInt64, value)
	}
	if _u.mutation.PromptMessageIDCleared() {
		_spec.ClearField(approval.FieldPromptMessageID, field.TypeInt64)
	}
	_node = &Approval{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approval.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
