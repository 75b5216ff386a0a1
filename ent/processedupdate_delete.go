// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/emissary-bot/emissary/ent/predicate"
	"github.com/emissary-bot/emissary/ent/processedupdate"
)

// ProcessedUpdateDelete is the builder for deleting a ProcessedUpdate entity.
type ProcessedUpdateDelete struct {
	config
	hooks    []Hook
	mutation *ProcessedUpdateMutation
}

// Where appends a list predicates to the ProcessedUpdateDelete builder.
func (_d *ProcessedUpdateDelete) Where(ps ...predicate.ProcessedUpdate) *ProcessedUpdateDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProcessedUpdateDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProcessedUpdateDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProcessedUpdateDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(processedupdate.Table, sqlgraph.NewFieldSpec(processedupdate.FieldID, field.TypeInt64))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ProcessedUpdateDeleteOne is the builder for deleting a single ProcessedUpdate entity.
type ProcessedUpdateDeleteOne struct {
	_d *ProcessedUpdateDelete
}

// Where appends a list predicates to the ProcessedUpdateDelete builder.
func (_d *ProcessedUpdateDeleteOne) Where(ps ...predicate.ProcessedUpdate) *ProcessedUpdateDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProcessedUpdateDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{processedupdate.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProcessedUpdateDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
