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
	"github.com/Dolphin-ZAAZ/Coderil-sub000/ent/predicate"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/ent/progress"
)

// ProgressUpdate is the builder for updating Progress entities.
type ProgressUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressMutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdate) Where(ps ...predicate.Progress) *ProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ProgressUpdate) SetSlug(v string) *ProgressUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableSlug(v *string) *ProgressUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *ProgressUpdate) SetBestScore(v float64) *ProgressUpdate {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableBestScore(v *float64) *ProgressUpdate {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *ProgressUpdate) AddBestScore(v float64) *ProgressUpdate {
	_u.mutation.AddBestScore(v)
	return _u
}

// SetLastScore sets the "last_score" field.
func (_u *ProgressUpdate) SetLastScore(v float64) *ProgressUpdate {
	_u.mutation.ResetLastScore()
	_u.mutation.SetLastScore(v)
	return _u
}

// SetNillableLastScore sets the "last_score" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableLastScore(v *float64) *ProgressUpdate {
	if v != nil {
		_u.SetLastScore(*v)
	}
	return _u
}

// AddLastScore adds value to the "last_score" field.
func (_u *ProgressUpdate) AddLastScore(v float64) *ProgressUpdate {
	_u.mutation.AddLastScore(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ProgressUpdate) SetAttempts(v int) *ProgressUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableAttempts(v *int) *ProgressUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ProgressUpdate) AddAttempts(v int) *ProgressUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ProgressUpdate) SetCompleted(v bool) *ProgressUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ProgressUpdate) SetNillableCompleted(v *bool) *ProgressUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_u *ProgressUpdate) SetLastAttemptAt(v time.Time) *ProgressUpdate {
	_u.mutation.SetLastAttemptAt(v)
	return _u
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdate) Mutation() *ProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressUpdate) defaults() {
	if _, ok := _u.mutation.LastAttemptAt(); !ok {
		v := progress.UpdateDefaultLastAttemptAt()
		_u.mutation.SetLastAttemptAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdate) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := progress.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Progress.slug": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(progress.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(progress.FieldBestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(progress.FieldBestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastScore(); ok {
		_spec.SetField(progress.FieldLastScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLastScore(); ok {
		_spec.AddField(progress.FieldLastScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(progress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(progress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(progress.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastAttemptAt(); ok {
		_spec.SetField(progress.FieldLastAttemptAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressUpdateOne is the builder for updating a single Progress entity.
type ProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressMutation
}

// SetSlug sets the "slug" field.
func (_u *ProgressUpdateOne) SetSlug(v string) *ProgressUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableSlug(v *string) *ProgressUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetBestScore sets the "best_score" field.
func (_u *ProgressUpdateOne) SetBestScore(v float64) *ProgressUpdateOne {
	_u.mutation.ResetBestScore()
	_u.mutation.SetBestScore(v)
	return _u
}

// SetNillableBestScore sets the "best_score" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableBestScore(v *float64) *ProgressUpdateOne {
	if v != nil {
		_u.SetBestScore(*v)
	}
	return _u
}

// AddBestScore adds value to the "best_score" field.
func (_u *ProgressUpdateOne) AddBestScore(v float64) *ProgressUpdateOne {
	_u.mutation.AddBestScore(v)
	return _u
}

// SetLastScore sets the "last_score" field.
func (_u *ProgressUpdateOne) SetLastScore(v float64) *ProgressUpdateOne {
	_u.mutation.ResetLastScore()
	_u.mutation.SetLastScore(v)
	return _u
}

// SetNillableLastScore sets the "last_score" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableLastScore(v *float64) *ProgressUpdateOne {
	if v != nil {
		_u.SetLastScore(*v)
	}
	return _u
}

// AddLastScore adds value to the "last_score" field.
func (_u *ProgressUpdateOne) AddLastScore(v float64) *ProgressUpdateOne {
	_u.mutation.AddLastScore(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ProgressUpdateOne) SetAttempts(v int) *ProgressUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableAttempts(v *int) *ProgressUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ProgressUpdateOne) AddAttempts(v int) *ProgressUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ProgressUpdateOne) SetCompleted(v bool) *ProgressUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ProgressUpdateOne) SetNillableCompleted(v *bool) *ProgressUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_u *ProgressUpdateOne) SetLastAttemptAt(v time.Time) *ProgressUpdateOne {
	_u.mutation.SetLastAttemptAt(v)
	return _u
}

// Mutation returns the ProgressMutation object of the builder.
func (_u *ProgressUpdateOne) Mutation() *ProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressUpdate builder.
func (_u *ProgressUpdateOne) Where(ps ...predicate.Progress) *ProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressUpdateOne) Select(field string, fields ...string) *ProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Progress entity.
func (_u *ProgressUpdateOne) Save(ctx context.Context) (*Progress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressUpdateOne) SaveX(ctx context.Context) *Progress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.LastAttemptAt(); !ok {
		v := progress.UpdateDefaultLastAttemptAt()
		_u.mutation.SetLastAttemptAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressUpdateOne) check() error {
	if v, ok := _u.mutation.Slug(); ok {
		if err := progress.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Progress.slug": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressUpdateOne) sqlSave(ctx context.Context) (_node *Progress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progress.Table, progress.Columns, sqlgraph.NewFieldSpec(progress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Progress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progress.FieldID)
		for _, f := range fields {
			if !progress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progress.FieldID {
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
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(progress.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.BestScore(); ok {
		_spec.SetField(progress.FieldBestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBestScore(); ok {
		_spec.AddField(progress.FieldBestScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastScore(); ok {
		_spec.SetField(progress.FieldLastScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLastScore(); ok {
		_spec.AddField(progress.FieldLastScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(progress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(progress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(progress.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastAttemptAt(); ok {
		_spec.SetField(progress.FieldLastAttemptAt, field.TypeTime, value)
	}
	_node = &Progress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
