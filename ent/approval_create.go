// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/emissary-bot/emissary/ent/approval"
)

// ApprovalCreate is the builder for creating a Approval entity.
type ApprovalCreate struct {
	config
	mutation *ApprovalMutation
	hooks    []Hook
}

// SetCallbackToken sets the "callback_token" field.
func (_c *ApprovalCreate) SetCallbackToken(v string) *ApprovalCreate {
	_c.mutation.SetCallbackToken(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ApprovalCreate) SetSessionID(v string) *ApprovalCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetChatID sets the "chat_id" field.
func (_c *ApprovalCreate) SetChatID(v int64) *ApprovalCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ApprovalCreate) SetUserID(v int64) *ApprovalCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *ApprovalCreate) SetToolName(v string) *ApprovalCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetToolCallID sets the "tool_call_id" field.
func (_c *ApprovalCreate) SetToolCallID(v string) *ApprovalCreate {
	_c.mutation.SetToolCallID(v)
	return _c
}

// SetToolInput sets the "tool_input" field.
func (_c *ApprovalCreate) SetToolInput(v map[string]interface{}) *ApprovalCreate {
	_c.mutation.SetToolInput(v)
	return _c
}

// SetRiskLevel sets the "risk_level" field.
func (_c *ApprovalCreate) SetRiskLevel(v approval.RiskLevel) *ApprovalCreate {
	_c.mutation.SetRiskLevel(v)
	return _c
}

// SetRiskConfidence sets the "risk_confidence" field.
func (_c *ApprovalCreate) SetRiskConfidence(v approval.RiskConfidence) *ApprovalCreate {
	_c.mutation.SetRiskConfidence(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ApprovalCreate) SetStatus(v approval.Status) *ApprovalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableStatus(v *approval.Status) *ApprovalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ApprovalCreate) SetExpiresAt(v time.Time) *ApprovalCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetDecidedBy sets the "decided_by" field.
func (_c *ApprovalCreate) SetDecidedBy(v int64) *ApprovalCreate {
	_c.mutation.SetDecidedBy(v)
	return _c
}

// SetNillableDecidedBy sets the "decided_by" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableDecidedBy(v *int64) *ApprovalCreate {
	if v != nil {
		_c.SetDecidedBy(*v)
	}
	return _c
}

// SetDecidedAt sets the "decided_at" field.
func (_c *ApprovalCreate) SetDecidedAt(v time.Time) *ApprovalCreate {
	_c.mutation.SetDecidedAt(v)
	return _c
}

// SetNillableDecidedAt sets the "decided_at" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableDecidedAt(v *time.Time) *ApprovalCreate {
	if v != nil {
		_c.SetDecidedAt(*v)
	}
	return _c
}

// SetPromptMessageID sets the "prompt_message_id" field.
func (_c *ApprovalCreate) SetPromptMessageID(v int64) *ApprovalCreate {
	_c.mutation.SetPromptMessageID(v)
	return _c
}

// SetNillablePromptMessageID sets the "prompt_message_id" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillablePromptMessageID(v *int64) *ApprovalCreate {
	if v != nil {
		_c.SetPromptMessageID(*v)
	}
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *ApprovalCreate) SetCorrelationID(v string) *ApprovalCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApprovalCreate) SetCreatedAt(v time.Time) *ApprovalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApprovalCreate) SetNillableCreatedAt(v *time.Time) *ApprovalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalCreate) SetID(v string) *ApprovalCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApprovalMutation object of the builder.
func (_c *ApprovalCreate) Mutation() *ApprovalMutation {
	return _c.mutation
}

// Save creates the Approval in the database.
func (_c *ApprovalCreate) Save(ctx context.Context) (*Approval, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalCreate) SaveX(ctx context.Context) *Approval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := approval.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := approval.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalCreate) check() error {
	if _, ok := _c.mutation.CallbackToken(); !ok {
		return &ValidationError{Name: "callback_token", err: errors.New(`ent: missing required field "Approval.callback_token"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Approval.session_id"`)}
	}
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "Approval.chat_id"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Approval.user_id"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "Approval.tool_name"`)}
	}
	if _, ok := _c.mutation.ToolCallID(); !ok {
		return &ValidationError{Name: "tool_call_id", err: errors.New(`ent: missing required field "Approval.tool_call_id"`)}
	}
	if _, ok := _c.mutation.ToolInput(); !ok {
		return &ValidationError{Name: "tool_input", err: errors.New(`ent: missing required field "Approval.tool_input"`)}
	}
	if _, ok := _c.mutation.RiskLevel(); !ok {
		return &ValidationError{Name: "risk_level", err: errors.New(`ent: missing required field "Approval.risk_level"`)}
	}
	if v, ok := _c.mutation.RiskLevel(); ok {
		if err := approval.RiskLevelValidator(v); err != nil {
			return &ValidationError{Name: "risk_level", err: fmt.Errorf(`ent: validator failed for field "Approval.risk_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiskConfidence(); !ok {
		return &ValidationError{Name: "risk_confidence", err: errors.New(`ent: missing required field "Approval.risk_confidence"`)}
	}
	if v, ok := _c.mutation.RiskConfidence(); ok {
		if err := approval.RiskConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "risk_confidence", err: fmt.Errorf(`ent: validator failed for field "Approval.risk_confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Approval.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := approval.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Approval.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "Approval.expires_at"`)}
	}
	if _, ok := _c.mutation.CorrelationID(); !ok {
		return &ValidationError{Name: "correlation_id", err: errors.New(`ent: missing required field "Approval.correlation_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Approval.created_at"`)}
	}
	return nil
}

func (_c *ApprovalCreate) sqlSave(ctx context.Context) (*Approval, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Approval.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalCreate) createSpec() (*Approval, *sqlgraph.CreateSpec) {
	var (
		_node = &Approval{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approval.Table, sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CallbackToken(); ok {
		_spec.SetField(approval.FieldCallbackToken, field.TypeString, value)
		_node.CallbackToken = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(approval.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(approval.FieldChatID, field.TypeInt64, value)
		_node.ChatID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(approval.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(approval.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.ToolCallID(); ok {
		_spec.SetField(approval.FieldToolCallID, field.TypeString, value)
		_node.ToolCallID = value
	}
	if value, ok := _c.mutation.ToolInput(); ok {
		_spec.SetField(approval.FieldToolInput, field.TypeJSON, value)
		_node.ToolInput = value
	}
	if value, ok := _c.mutation.RiskLevel(); ok {
		_spec.SetField(approval.FieldRiskLevel, field.TypeEnum, value)
		_node.RiskLevel = value
	}
	if value, ok := _c.mutation.RiskConfidence(); ok {
		_spec.SetField(approval.FieldRiskConfidence, field.TypeEnum, value)
		_node.RiskConfidence = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(approval.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(approval.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.DecidedBy(); ok {
		_spec.SetField(approval.FieldDecidedBy, field.TypeInt64, value)
		_node.DecidedBy = &value
	}
	if value, ok := _c.mutation.DecidedAt(); ok {
		_spec.SetField(approval.FieldDecidedAt, field.TypeTime, value)
		_node.DecidedAt = &value
	}
	if value, ok := _c.mutation.PromptMessageID(); ok {
		_spec.SetField(approval.FieldPromptMessageID, field.TypeInt64, value)
		_node.PromptMessageID = &value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(approval.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(approval.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ApprovalCreateBulk is the builder for creating many Approval entities in bulk.
type ApprovalCreateBulk struct {
	config
	err      error
	builders []*ApprovalCreate
}

// Save creates the Approval entities in the database.
func (_c *ApprovalCreateBulk) Save(ctx context.Context) ([]*Approval, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Approval, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalMutation)
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
func (_c *ApprovalCreateBulk) SaveX(ctx context.Context) []*Approval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
