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
	"github.com/jheine/lernbox/ent/predicate"
	"github.com/jheine/lernbox/ent/questionprogress"
)

// QuestionProgressUpdate is the builder for updating QuestionProgress entities.
type QuestionProgressUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionProgressMutation
}

// Where appends a list predicates to the QuestionProgressUpdate builder.
func (_u *QuestionProgressUpdate) Where(ps ...predicate.QuestionProgress) *QuestionProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (_u *QuestionProgressUpdate) SetCorrectAttempts(v int) *QuestionProgressUpdate {
	_u.mutation.ResetCorrectAttempts()
	_u.mutation.SetCorrectAttempts(v)
	return _u
}

// SetNillableCorrectAttempts sets the "correct_attempts" field if the given value is not nil.
func (_u *QuestionProgressUpdate) SetNillableCorrectAttempts(v *int) *QuestionProgressUpdate {
	if v != nil {
		_u.SetCorrectAttempts(*v)
	}
	return _u
}

// AddCorrectAttempts adds value to the "correct_attempts" field.
func (_u *QuestionProgressUpdate) AddCorrectAttempts(v int) *QuestionProgressUpdate {
	_u.mutation.AddCorrectAttempts(v)
	return _u
}

// SetWrongAttempts sets the "wrong_attempts" field.
func (_u *QuestionProgressUpdate) SetWrongAttempts(v int) *QuestionProgressUpdate {
	_u.mutation.ResetWrongAttempts()
	_u.mutation.SetWrongAttempts(v)
	return _u
}

// SetNillableWrongAttempts sets the "wrong_attempts" field if the given value is not nil.
func (_u *QuestionProgressUpdate) SetNillableWrongAttempts(v *int) *QuestionProgressUpdate {
	if v != nil {
		_u.SetWrongAttempts(*v)
	}
	return _u
}

// AddWrongAttempts adds value to the "wrong_attempts" field.
func (_u *QuestionProgressUpdate) AddWrongAttempts(v int) *QuestionProgressUpdate {
	_u.mutation.AddWrongAttempts(v)
	return _u
}

// SetLastAttempt sets the "last_attempt" field.
func (_u *QuestionProgressUpdate) SetLastAttempt(v time.Time) *QuestionProgressUpdate {
	_u.mutation.SetLastAttempt(v)
	return _u
}

// SetNillableLastAttempt sets the "last_attempt" field if the given value is not nil.
func (_u *QuestionProgressUpdate) SetNillableLastAttempt(v *time.Time) *QuestionProgressUpdate {
	if v != nil {
		_u.SetLastAttempt(*v)
	}
	return _u
}

// ClearLastAttempt clears the value of the "last_attempt" field.
func (_u *QuestionProgressUpdate) ClearLastAttempt() *QuestionProgressUpdate {
	_u.mutation.ClearLastAttempt()
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *QuestionProgressUpdate) SetNextReview(v time.Time) *QuestionProgressUpdate {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *QuestionProgressUpdate) SetNillableNextReview(v *time.Time) *QuestionProgressUpdate {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// ClearNextReview clears the value of the "next_review" field.
func (_u *QuestionProgressUpdate) ClearNextReview() *QuestionProgressUpdate {
	_u.mutation.ClearNextReview()
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *QuestionProgressUpdate) SetMasteryLevel(v int) *QuestionProgressUpdate {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *QuestionProgressUpdate) SetNillableMasteryLevel(v *int) *QuestionProgressUpdate {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *QuestionProgressUpdate) AddMasteryLevel(v int) *QuestionProgressUpdate {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// Mutation returns the QuestionProgressMutation object of the builder.
func (_u *QuestionProgressUpdate) Mutation() *QuestionProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionProgressUpdate) check() error {
	if v, ok := _u.mutation.CorrectAttempts(); ok {
		if err := questionprogress.CorrectAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "correct_attempts", err: fmt.Errorf(`ent: validator failed for field "QuestionProgress.correct_attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WrongAttempts(); ok {
		if err := questionprogress.WrongAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "wrong_attempts", err: fmt.Errorf(`ent: validator failed for field "QuestionProgress.wrong_attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MasteryLevel(); ok {
		if err := questionprogress.MasteryLevelValidator(v); err != nil {
			return &ValidationError{Name: "mastery_level", err: fmt.Errorf(`ent: validator failed for field "QuestionProgress.mastery_level": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionprogress.Table, questionprogress.Columns, sqlgraph.NewFieldSpec(questionprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CorrectAttempts(); ok {
		_spec.SetField(questionprogress.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAttempts(); ok {
		_spec.AddField(questionprogress.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WrongAttempts(); ok {
		_spec.SetField(questionprogress.FieldWrongAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrongAttempts(); ok {
		_spec.AddField(questionprogress.FieldWrongAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAttempt(); ok {
		_spec.SetField(questionprogress.FieldLastAttempt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptCleared() {
		_spec.ClearField(questionprogress.FieldLastAttempt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(questionprogress.FieldNextReview, field.TypeTime, value)
	}
	if _u.mutation.NextReviewCleared() {
		_spec.ClearField(questionprogress.FieldNextReview, field.TypeTime)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(questionprogress.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(questionprogress.FieldMasteryLevel, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionProgressUpdateOne is the builder for updating a single QuestionProgress entity.
type QuestionProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionProgressMutation
}

// SetCorrectAttempts sets the "correct_attempts" field.
func (_u *QuestionProgressUpdateOne) SetCorrectAttempts(v int) *QuestionProgressUpdateOne {
	_u.mutation.ResetCorrectAttempts()
	_u.mutation.SetCorrectAttempts(v)
	return _u
}

// SetNillableCorrectAttempts sets the "correct_attempts" field if the given value is not nil.
func (_u *QuestionProgressUpdateOne) SetNillableCorrectAttempts(v *int) *QuestionProgressUpdateOne {
	if v != nil {
		_u.SetCorrectAttempts(*v)
	}
	return _u
}

// AddCorrectAttempts adds value to the "correct_attempts" field.
func (_u *QuestionProgressUpdateOne) AddCorrectAttempts(v int) *QuestionProgressUpdateOne {
	_u.mutation.AddCorrectAttempts(v)
	return _u
}

// SetWrongAttempts sets the "wrong_attempts" field.
func (_u *QuestionProgressUpdateOne) SetWrongAttempts(v int) *QuestionProgressUpdateOne {
	_u.mutation.ResetWrongAttempts()
	_u.mutation.SetWrongAttempts(v)
	return _u
}

// SetNillableWrongAttempts sets the "wrong_attempts" field if the given value is not nil.
func (_u *QuestionProgressUpdateOne) SetNillableWrongAttempts(v *int) *QuestionProgressUpdateOne {
	if v != nil {
		_u.SetWrongAttempts(*v)
	}
	return _u
}

// AddWrongAttempts adds value to the "wrong_attempts" field.
func (_u *QuestionProgressUpdateOne) AddWrongAttempts(v int) *QuestionProgressUpdateOne {
	_u.mutation.AddWrongAttempts(v)
	return _u
}

// SetLastAttempt sets the "last_attempt" field.
func (_u *QuestionProgressUpdateOne) SetLastAttempt(v time.Time) *QuestionProgressUpdateOne {
	_u.mutation.SetLastAttempt(v)
	return _u
}

// SetNillableLastAttempt sets the "last_attempt" field if the given value is not nil.
func (_u *QuestionProgressUpdateOne) SetNillableLastAttempt(v *time.Time) *QuestionProgressUpdateOne {
	if v != nil {
		_u.SetLastAttempt(*v)
	}
	return _u
}

// ClearLastAttempt clears the value of the "last_attempt" field.
func (_u *QuestionProgressUpdateOne) ClearLastAttempt() *QuestionProgressUpdateOne {
	_u.mutation.ClearLastAttempt()
	return _u
}

// SetNextReview sets the "next_review" field.
func (_u *QuestionProgressUpdateOne) SetNextReview(v time.Time) *QuestionProgressUpdateOne {
	_u.mutation.SetNextReview(v)
	return _u
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (_u *QuestionProgressUpdateOne) SetNillableNextReview(v *time.Time) *QuestionProgressUpdateOne {
	if v != nil {
		_u.SetNextReview(*v)
	}
	return _u
}

// ClearNextReview clears the value of the "next_review" field.
func (_u *QuestionProgressUpdateOne) ClearNextReview() *QuestionProgressUpdateOne {
	_u.mutation.ClearNextReview()
	return _u
}

// SetMasteryLevel sets the "mastery_level" field.
func (_u *QuestionProgressUpdateOne) SetMasteryLevel(v int) *QuestionProgressUpdateOne {
	_u.mutation.ResetMasteryLevel()
	_u.mutation.SetMasteryLevel(v)
	return _u
}

// SetNillableMasteryLevel sets the "mastery_level" field if the given value is not nil.
func (_u *QuestionProgressUpdateOne) SetNillableMasteryLevel(v *int) *QuestionProgressUpdateOne {
	if v != nil {
		_u.SetMasteryLevel(*v)
	}
	return _u
}

// AddMasteryLevel adds value to the "mastery_level" field.
func (_u *QuestionProgressUpdateOne) AddMasteryLevel(v int) *QuestionProgressUpdateOne {
	_u.mutation.AddMasteryLevel(v)
	return _u
}

// Mutation returns the QuestionProgressMutation object of the builder.
func (_u *QuestionProgressUpdateOne) Mutation() *QuestionProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionProgressUpdate builder.
func (_u *QuestionProgressUpdateOne) Where(ps ...predicate.QuestionProgress) *QuestionProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionProgressUpdateOne) Select(field string, fields ...string) *QuestionProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionProgress entity.
func (_u *QuestionProgressUpdateOne) Save(ctx context.Context) (*QuestionProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionProgressUpdateOne) SaveX(ctx context.Context) *QuestionProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionProgressUpdateOne) check() error {
	if v, ok := _u.mutation.CorrectAttempts(); ok {
		if err := questionprogress.CorrectAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "correct_attempts", err: fmt.Errorf(`ent: validator failed for field "QuestionProgress.correct_attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WrongAttempts(); ok {
		if err := questionprogress.WrongAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "wrong_attempts", err: fmt.Errorf(`ent: validator failed for field "QuestionProgress.wrong_attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MasteryLevel(); ok {
		if err := questionprogress.MasteryLevelValidator(v); err != nil {
			return &ValidationError{Name: "mastery_level", err: fmt.Errorf(`ent: validator failed for field "QuestionProgress.mastery_level": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionProgressUpdateOne) sqlSave(ctx context.Context) (_node *QuestionProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionprogress.Table, questionprogress.Columns, sqlgraph.NewFieldSpec(questionprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionprogress.FieldID)
		for _, f := range fields {
			if !questionprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionprogress.FieldID {
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
	if value, ok := _u.mutation.CorrectAttempts(); ok {
		_spec.SetField(questionprogress.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAttempts(); ok {
		_spec.AddField(questionprogress.FieldCorrectAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WrongAttempts(); ok {
		_spec.SetField(questionprogress.FieldWrongAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWrongAttempts(); ok {
		_spec.AddField(questionprogress.FieldWrongAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAttempt(); ok {
		_spec.SetField(questionprogress.FieldLastAttempt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptCleared() {
		_spec.ClearField(questionprogress.FieldLastAttempt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReview(); ok {
		_spec.SetField(questionprogress.FieldNextReview, field.TypeTime, value)
	}
	if _u.mutation.NextReviewCleared() {
		_spec.ClearField(questionprogress.FieldNextReview, field.TypeTime)
	}
	if value, ok := _u.mutation.MasteryLevel(); ok {
		_spec.SetField(questionprogress.FieldMasteryLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryLevel(); ok {
		_spec.AddField(questionprogress.FieldMasteryLevel, field.TypeInt, value)
	}
	_node = &QuestionProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
