// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jheine/lernbox/ent/topicprogress"
)

// TopicProgressCreate is the builder for creating a TopicProgress entity.
type TopicProgressCreate struct {
	config
	mutation *TopicProgressMutation
	hooks    []Hook
}

// SetTopicName sets the "topic_name" field.
func (_c *TopicProgressCreate) SetTopicName(v string) *TopicProgressCreate {
	_c.mutation.SetTopicName(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *TopicProgressCreate) SetTotalQuestions(v int) *TopicProgressCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableTotalQuestions(v *int) *TopicProgressCreate {
	if v != nil {
		_c.SetTotalQuestions(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *TopicProgressCreate) SetCorrectAnswers(v int) *TopicProgressCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableCorrectAnswers(v *int) *TopicProgressCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetMasteryPercentage sets the "mastery_percentage" field.
func (_c *TopicProgressCreate) SetMasteryPercentage(v float64) *TopicProgressCreate {
	_c.mutation.SetMasteryPercentage(v)
	return _c
}

// SetNillableMasteryPercentage sets the "mastery_percentage" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableMasteryPercentage(v *float64) *TopicProgressCreate {
	if v != nil {
		_c.SetMasteryPercentage(*v)
	}
	return _c
}

// Mutation returns the TopicProgressMutation object of the builder.
func (_c *TopicProgressCreate) Mutation() *TopicProgressMutation {
	return _c.mutation
}

// Save creates the TopicProgress in the database.
func (_c *TopicProgressCreate) Save(ctx context.Context) (*TopicProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicProgressCreate) SaveX(ctx context.Context) *TopicProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicProgressCreate) defaults() {
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		v := topicprogress.DefaultTotalQuestions
		_c.mutation.SetTotalQuestions(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := topicprogress.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.MasteryPercentage(); !ok {
		v := topicprogress.DefaultMasteryPercentage
		_c.mutation.SetMasteryPercentage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicProgressCreate) check() error {
	if _, ok := _c.mutation.TopicName(); !ok {
		return &ValidationError{Name: "topic_name", err: errors.New(`ent: missing required field "TopicProgress.topic_name"`)}
	}
	if v, ok := _c.mutation.TopicName(); ok {
		if err := topicprogress.TopicNameValidator(v); err != nil {
			return &ValidationError{Name: "topic_name", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.topic_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "TopicProgress.total_questions"`)}
	}
	if v, ok := _c.mutation.TotalQuestions(); ok {
		if err := topicprogress.TotalQuestionsValidator(v); err != nil {
			return &ValidationError{Name: "total_questions", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.total_questions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "TopicProgress.correct_answers"`)}
	}
	if v, ok := _c.mutation.CorrectAnswers(); ok {
		if err := topicprogress.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.correct_answers": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasteryPercentage(); !ok {
		return &ValidationError{Name: "mastery_percentage", err: errors.New(`ent: missing required field "TopicProgress.mastery_percentage"`)}
	}
	return nil
}

func (_c *TopicProgressCreate) sqlSave(ctx context.Context) (*TopicProgress, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TopicProgressCreate) createSpec() (*TopicProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topicprogress.Table, sqlgraph.NewFieldSpec(topicprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TopicName(); ok {
		_spec.SetField(topicprogress.FieldTopicName, field.TypeString, value)
		_node.TopicName = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(topicprogress.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(topicprogress.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.MasteryPercentage(); ok {
		_spec.SetField(topicprogress.FieldMasteryPercentage, field.TypeFloat64, value)
		_node.MasteryPercentage = value
	}
	return _node, _spec
}

// TopicProgressCreateBulk is the builder for creating many TopicProgress entities in bulk.
type TopicProgressCreateBulk struct {
	config
	err      error
	builders []*TopicProgressCreate
}

// Save creates the TopicProgress entities in the database.
func (_c *TopicProgressCreateBulk) Save(ctx context.Context) ([]*TopicProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TopicProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicProgressMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *TopicProgressCreateBulk) SaveX(ctx context.Context) []*TopicProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
