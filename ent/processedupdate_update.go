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
	"github.com/emissary-bot/emissary/ent/processedupdate"
)

// ProcessedUpdateUpdate is the builder for updating ProcessedUpdate entities.
type ProcessedUpdateUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessedUpdateMutation
}

// Where appends a list predicates to the ProcessedUpdateUpdate builder.
func (_u *ProcessedUpdateUpdate) Where(ps ...predicate.ProcessedUpdate) *ProcessedUpdateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ProcessedUpdateUpdate) SetPayload(v map[string]interface{}) *ProcessedUpdateUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessedUpdateUpdate) SetStatus(v processedupdate.Status) *ProcessedUpdateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessedUpdateUpdate) SetNillableStatus(v *processedupdate.Status) *ProcessedUpdateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetHandledAt sets the "handled_at" field.
func (_u *ProcessedUpdateUpdate) SetHandledAt(v time.Time) *ProcessedUpdateUpdate {
	_u.mutation.SetHandledAt(v)
	return _u
}

// SetNillableHandledAt sets the "handled_at" field if the given value is not nil.
func (_u *ProcessedUpdateUpdate) SetNillableHandledAt(v *time.Time) *ProcessedUpdateUpdate {
	if v != nil {
		_u.SetHandledAt(*v)
	}
	return _u
}

// ClearHandledAt clears the value of the "handled_at" field.
func (_u *ProcessedUpdateUpdate) ClearHandledAt() *ProcessedUpdateUpdate {
	_u.mutation.ClearHandledAt()
	return _u
}

// SetError sets the "error" field.
func (_u *ProcessedUpdateUpdate) SetError(v string) *ProcessedUpdateUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ProcessedUpdateUpdate) SetNillableError(v *string) *ProcessedUpdateUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ProcessedUpdateUpdate) ClearError() *ProcessedUpdateUpdate {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the ProcessedUpdateMutation object of the builder.
func (_u *ProcessedUpdateUpdate) Mutation() *ProcessedUpdateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessedUpdateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessedUpdateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessedUpdateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessedUpdateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessedUpdateUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := processedupdate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessedUpdate.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessedUpdateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processedupdate.Table, processedupdate.Columns, sqlgraph.NewFieldSpec(processedupdate.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(processedupdate.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processedupdate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.HandledAt(); ok {
		_spec.SetField(processedupdate.FieldHandledAt, field.TypeTime, value)
	}
	if _u.mutation.HandledAtCleared() {
		_spec.ClearField(processedupdate.FieldHandledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(processedupdate.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(processedupdate.FieldError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processedupdate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessedUpdateUpdateOne is the builder for updating a single ProcessedUpdate entity.
type ProcessedUpdateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessedUpdateMutation
}

// SetPayload sets the "payload" field.
func (_u *ProcessedUpdateUpdateOne) SetPayload(v map[string]interface{}) *ProcessedUpdateUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessedUpdateUpdateOne) SetStatus(v processedupdate.Status) *ProcessedUpdateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessedUpdateUpdateOne) SetNillableStatus(v *processedupdate.Status) *ProcessedUpdateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetHandledAt sets the "handled_at" field.
func (_u *ProcessedUpdateUpdateOne) SetHandledAt(v time.Time) *ProcessedUpdateUpdateOne {
	_u.mutation.SetHandledAt(v)
	return _u
}

// SetNillableHandledAt sets the "handled_at" field if the given value is not nil.
func (_u *ProcessedUpdateUpdateOne) SetNillableHandledAt(v *time.Time) *ProcessedUpdateUpdateOne {
	if v != nil {
		_u.SetHandledAt(*v)
	}
	return _u
}

// ClearHandledAt clears the value of the "handled_at" field.
func (_u *ProcessedUpdateUpdateOne) ClearHandledAt() *ProcessedUpdateUpdateOne {
	_u.mutation.ClearHandledAt()
	return _u
}

// SetError sets the "error" field.
func (_u *ProcessedUpdateUpdateOne) SetError(v string) *ProcessedUpdateUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ProcessedUpdateUpdateOne) SetNillableError(v *string) *ProcessedUpdateUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ProcessedUpdateUpdateOne) ClearError() *ProcessedUpdateUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the ProcessedUpdateMutation object of the builder.
func (_u *ProcessedUpdateUpdateOne) Mutation() *ProcessedUpdateMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProcessedUpdateUpdate builder.
func (_u *ProcessedUpdateUpdateOne) Where(ps ...predicate.ProcessedUpdate) *ProcessedUpdateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessedUpdateUpdateOne) Select(field string, fields ...string) *ProcessedUpdateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessedUpdate entity.
func (_u *ProcessedUpdateUpdateOne) Save(ctx context.Context) (*ProcessedUpdate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessedUpdateUpdateOne) SaveX(ctx context.Context) *ProcessedUpdate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessedUpdateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessedUpdateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessedUpdateUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := processedupdate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessedUpdate.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessedUpdateUpdateOne) sqlSave(ctx context.Context) (_node *ProcessedUpdate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processedupdate.Table, processedupdate.Columns, sqlgraph.NewFieldSpec(processedupdate.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessedUpdate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processedupdate.FieldID)
		for _, f := range fields {
			if !processedupdate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processedupdate.FieldID {
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
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(processedupdate.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processedupdate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.HandledAt(); ok {
		_spec.SetField(processedupdate.FieldHandledAt, field.TypeTime, value)
	}
	if _u.mutation.HandledAtCleared() {
		_spec.ClearField(processedupdate.FieldHandledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(processedupdate.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(processedupdate.FieldError, field.TypeString)
	}
	_node = &ProcessedUpdate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processedupdate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
