// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/ent/attemptevent"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptEventUpdate) SetAttemptID(v string) *AttemptEventUpdate {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAttemptID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *AttemptEventUpdate) SetSlug(v string) *AttemptEventUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSlug(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetKataType sets the "kata_type" field.
func (_u *AttemptEventUpdate) SetKataType(v string) *AttemptEventUpdate {
	_u.mutation.SetKataType(v)
	return _u
}

// SetNillableKataType sets the "kata_type" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableKataType(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetKataType(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptEventUpdate) SetScore(v float64) *AttemptEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableScore(v *float64) *AttemptEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptEventUpdate) AddScore(v float64) *AttemptEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *AttemptEventUpdate) SetPassed(v bool) *AttemptEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillablePassed(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetUngraded sets the "ungraded" field.
func (_u *AttemptEventUpdate) SetUngraded(v bool) *AttemptEventUpdate {
	_u.mutation.SetUngraded(v)
	return _u
}

// SetNillableUngraded sets the "ungraded" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableUngraded(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetUngraded(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AttemptEventUpdate) SetDurationMs(v int64) *AttemptEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableDurationMs(v *int64) *AttemptEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AttemptEventUpdate) AddDurationMs(v int64) *AttemptEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetMessage sets the "message" field.
func (_u *AttemptEventUpdate) SetMessage(v string) *AttemptEventUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableMessage(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetSubResults sets the "sub_results" field.
func (_u *AttemptEventUpdate) SetSubResults(v []map[string]interface{}) *AttemptEventUpdate {
	_u.mutation.SetSubResults(v)
	return _u
}

// AppendSubResults appends value to the "sub_results" field.
func (_u *AttemptEventUpdate) AppendSubResults(v []map[string]interface{}) *AttemptEventUpdate {
	_u.mutation.AppendSubResults(v)
	return _u
}

// ClearSubResults clears the value of the "sub_results" field.
func (_u *AttemptEventUpdate) ClearSubResults() *AttemptEventUpdate {
	_u.mutation.ClearSubResults()
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := attemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := attemptevent.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KataType(); ok {
		if err := attemptevent.KataTypeValidator(v); err != nil {
			return &ValidationError{Name: "kata_type", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.kata_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(attemptevent.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.KataType(); ok {
		_spec.SetField(attemptevent.FieldKataType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(attemptevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Ungraded(); ok {
		_spec.SetField(attemptevent.FieldUngraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(attemptevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(attemptevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(attemptevent.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubResults(); ok {
		_spec.SetField(attemptevent.FieldSubResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldSubResults, value)
		})
	}
	if _u.mutation.SubResultsCleared() {
		_spec.ClearField(attemptevent.FieldSubResults, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetAttemptID sets the "attempt_id" field.
func (_u *AttemptEventUpdateOne) SetAttemptID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetAttemptID(v)
	return _u
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAttemptID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAttemptID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *AttemptEventUpdateOne) SetSlug(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSlug(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetKataType sets the "kata_type" field.
func (_u *AttemptEventUpdateOne) SetKataType(v string) *AttemptEventUpdateOne {
	_u.mutation.SetKataType(v)
	return _u
}

// SetNillableKataType sets the "kata_type" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableKataType(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetKataType(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptEventUpdateOne) SetScore(v float64) *AttemptEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableScore(v *float64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptEventUpdateOne) AddScore(v float64) *AttemptEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *AttemptEventUpdateOne) SetPassed(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillablePassed(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetUngraded sets the "ungraded" field.
func (_u *AttemptEventUpdateOne) SetUngraded(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetUngraded(v)
	return _u
}

// SetNillableUngraded sets the "ungraded" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableUngraded(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetUngraded(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AttemptEventUpdateOne) SetDurationMs(v int64) *AttemptEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableDurationMs(v *int64) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AttemptEventUpdateOne) AddDurationMs(v int64) *AttemptEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetMessage sets the "message" field.
func (_u *AttemptEventUpdateOne) SetMessage(v string) *AttemptEventUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableMessage(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetSubResults sets the "sub_results" field.
func (_u *AttemptEventUpdateOne) SetSubResults(v []map[string]interface{}) *AttemptEventUpdateOne {
	_u.mutation.SetSubResults(v)
	return _u
}

// AppendSubResults appends value to the "sub_results" field.
func (_u *AttemptEventUpdateOne) AppendSubResults(v []map[string]interface{}) *AttemptEventUpdateOne {
	_u.mutation.AppendSubResults(v)
	return _u
}

// ClearSubResults clears the value of the "sub_results" field.
func (_u *AttemptEventUpdateOne) ClearSubResults() *AttemptEventUpdateOne {
	_u.mutation.ClearSubResults()
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptID(); ok {
		if err := attemptevent.AttemptIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := attemptevent.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.KataType(); ok {
		if err := attemptevent.KataTypeValidator(v); err != nil {
			return &ValidationError{Name: "kata_type", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.kata_type": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
	if value, ok := _u.mutation.AttemptID(); ok {
		_spec.SetField(attemptevent.FieldAttemptID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(attemptevent.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.KataType(); ok {
		_spec.SetField(attemptevent.FieldKataType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(attemptevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Ungraded(); ok {
		_spec.SetField(attemptevent.FieldUngraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(attemptevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(attemptevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(attemptevent.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubResults(); ok {
		_spec.SetField(attemptevent.FieldSubResults, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubResults(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldSubResults, value)
		})
	}
	if _u.mutation.SubResultsCleared() {
		_spec.ClearField(attemptevent.FieldSubResults, field.TypeJSON)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
