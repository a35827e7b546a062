// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jheine/lernbox/ent/predicate"
	"github.com/jheine/lernbox/ent/topicprogress"
)

// TopicProgressUpdate is the builder for updating TopicProgress entities.
type TopicProgressUpdate struct {
	config
	hooks    []Hook
	mutation *TopicProgressMutation
}

// Where appends a list predicates to the TopicProgressUpdate builder.
func (_u *TopicProgressUpdate) Where(ps ...predicate.TopicProgress) *TopicProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *TopicProgressUpdate) SetTotalQuestions(v int) *TopicProgressUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableTotalQuestions(v *int) *TopicProgressUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *TopicProgressUpdate) AddTotalQuestions(v int) *TopicProgressUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *TopicProgressUpdate) SetCorrectAnswers(v int) *TopicProgressUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableCorrectAnswers(v *int) *TopicProgressUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *TopicProgressUpdate) AddCorrectAnswers(v int) *TopicProgressUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetMasteryPercentage sets the "mastery_percentage" field.
func (_u *TopicProgressUpdate) SetMasteryPercentage(v float64) *TopicProgressUpdate {
	_u.mutation.ResetMasteryPercentage()
	_u.mutation.SetMasteryPercentage(v)
	return _u
}

// SetNillableMasteryPercentage sets the "mastery_percentage" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableMasteryPercentage(v *float64) *TopicProgressUpdate {
	if v != nil {
		_u.SetMasteryPercentage(*v)
	}
	return _u
}

// AddMasteryPercentage adds value to the "mastery_percentage" field.
func (_u *TopicProgressUpdate) AddMasteryPercentage(v float64) *TopicProgressUpdate {
	_u.mutation.AddMasteryPercentage(v)
	return _u
}

// Mutation returns the TopicProgressMutation object of the builder.
func (_u *TopicProgressUpdate) Mutation() *TopicProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicProgressUpdate) check() error {
	if v, ok := _u.mutation.TotalQuestions(); ok {
		if err := topicprogress.TotalQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "total_questions", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.total_questions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswers(); ok {
		if err := topicprogress.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.correct_answers": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicprogress.Table, topicprogress.Columns, sqlgraph.NewFieldSpec(topicprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(topicprogress.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(topicprogress.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(topicprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(topicprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryPercentage(); ok {
		_spec.SetField(topicprogress.FieldMasteryPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryPercentage(); ok {
		_spec.AddField(topicprogress.FieldMasteryPercentage, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicProgressUpdateOne is the builder for updating a single TopicProgress entity.
type TopicProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicProgressMutation
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *TopicProgressUpdateOne) SetTotalQuestions(v int) *TopicProgressUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableTotalQuestions(v *int) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *TopicProgressUpdateOne) AddTotalQuestions(v int) *TopicProgressUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *TopicProgressUpdateOne) SetCorrectAnswers(v int) *TopicProgressUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableCorrectAnswers(v *int) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *TopicProgressUpdateOne) AddCorrectAnswers(v int) *TopicProgressUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetMasteryPercentage sets the "mastery_percentage" field.
func (_u *TopicProgressUpdateOne) SetMasteryPercentage(v float64) *TopicProgressUpdateOne {
	_u.mutation.ResetMasteryPercentage()
	_u.mutation.SetMasteryPercentage(v)
	return _u
}

// SetNillableMasteryPercentage sets the "mastery_percentage" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableMasteryPercentage(v *float64) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetMasteryPercentage(*v)
	}
	return _u
}

// AddMasteryPercentage adds value to the "mastery_percentage" field.
func (_u *TopicProgressUpdateOne) AddMasteryPercentage(v float64) *TopicProgressUpdateOne {
	_u.mutation.AddMasteryPercentage(v)
	return _u
}

// Mutation returns the TopicProgressMutation object of the builder.
func (_u *TopicProgressUpdateOne) Mutation() *TopicProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the TopicProgressUpdate builder.
func (_u *TopicProgressUpdateOne) Where(ps ...predicate.TopicProgress) *TopicProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicProgressUpdateOne) Select(field string, fields ...string) *TopicProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TopicProgress entity.
func (_u *TopicProgressUpdateOne) Save(ctx context.Context) (*TopicProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicProgressUpdateOne) SaveX(ctx context.Context) *TopicProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicProgressUpdateOne) check() error {
	if v, ok := _u.mutation.TotalQuestions(); ok {
		if err := topicprogress.TotalQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "total_questions", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.total_questions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswers(); ok {
		if err := topicprogress.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.correct_answers": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicProgressUpdateOne) sqlSave(ctx context.Context) (_node *TopicProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicprogress.Table, topicprogress.Columns, sqlgraph.NewFieldSpec(topicprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicprogress.FieldID)
		for _, f := range fields {
			if !topicprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topicprogress.FieldID {
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
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(topicprogress.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(topicprogress.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(topicprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(topicprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryPercentage(); ok {
		_spec.SetField(topicprogress.FieldMasteryPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryPercentage(); ok {
		_spec.AddField(topicprogress.FieldMasteryPercentage, field.TypeFloat64, value)
	}
	_node = &TopicProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
