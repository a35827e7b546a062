// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jheine/lernbox/ent/learningsession"
)

// LearningSessionCreate is the builder for creating a LearningSession entity.
type LearningSessionCreate struct {
	config
	mutation *LearningSessionMutation
	hooks    []Hook
}

// SetDate sets the "date" field.
func (_c *LearningSessionCreate) SetDate(v time.Time) *LearningSessionCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableDate(v *time.Time) *LearningSessionCreate {
	if v != nil {
		_c.SetDate(*v)
	}
	return _c
}

// SetDurationMinutes sets the "duration_minutes" field.
func (_c *LearningSessionCreate) SetDurationMinutes(v int) *LearningSessionCreate {
	_c.mutation.SetDurationMinutes(v)
	return _c
}

// SetNillableDurationMinutes sets the "duration_minutes" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableDurationMinutes(v *int) *LearningSessionCreate {
	if v != nil {
		_c.SetDurationMinutes(*v)
	}
	return _c
}

// SetQuestionsAnswered sets the "questions_answered" field.
func (_c *LearningSessionCreate) SetQuestionsAnswered(v int) *LearningSessionCreate {
	_c.mutation.SetQuestionsAnswered(v)
	return _c
}

// SetNillableQuestionsAnswered sets the "questions_answered" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableQuestionsAnswered(v *int) *LearningSessionCreate {
	if v != nil {
		_c.SetQuestionsAnswered(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *LearningSessionCreate) SetCorrectAnswers(v int) *LearningSessionCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableCorrectAnswers(v *int) *LearningSessionCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetTopics sets the "topics" field.
func (_c *LearningSessionCreate) SetTopics(v string) *LearningSessionCreate {
	_c.mutation.SetTopics(v)
	return _c
}

// SetNillableTopics sets the "topics" field if the given value is not nil.
func (_c *LearningSessionCreate) SetNillableTopics(v *string) *LearningSessionCreate {
	if v != nil {
		_c.SetTopics(*v)
	}
	return _c
}

// Mutation returns the LearningSessionMutation object of the builder.
func (_c *LearningSessionCreate) Mutation() *LearningSessionMutation {
	return _c.mutation
}

// Save creates the LearningSession in the database.
func (_c *LearningSessionCreate) Save(ctx context.Context) (*LearningSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningSessionCreate) SaveX(ctx context.Context) *LearningSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningSessionCreate) defaults() {
	if _, ok := _c.mutation.Date(); !ok {
		v := learningsession.DefaultDate()
		_c.mutation.SetDate(v)
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		v := learningsession.DefaultDurationMinutes
		_c.mutation.SetDurationMinutes(v)
	}
	if _, ok := _c.mutation.QuestionsAnswered(); !ok {
		v := learningsession.DefaultQuestionsAnswered
		_c.mutation.SetQuestionsAnswered(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := learningsession.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.Topics(); !ok {
		v := learningsession.DefaultTopics
		_c.mutation.SetTopics(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningSessionCreate) check() error {
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "LearningSession.date"`)}
	}
	if _, ok := _c.mutation.DurationMinutes(); !ok {
		return &ValidationError{Name: "duration_minutes", err: errors.New(`ent: missing required field "LearningSession.duration_minutes"`)}
	}
	if v, ok := _c.mutation.DurationMinutes(); ok {
		if err := learningsession.DurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "duration_minutes", err: fmt.Errorf(`ent: validator failed for field "LearningSession.duration_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionsAnswered(); !ok {
		return &ValidationError{Name: "questions_answered", err: errors.New(`ent: missing required field "LearningSession.questions_answered"`)}
	}
	if v, ok := _c.mutation.QuestionsAnswered(); ok {
		if err := learningsession.QuestionsAnsweredValidator(v); err != nil {
			return &ValidationError{Name: "questions_answered", err: fmt.Errorf(`ent: validator failed for field "LearningSession.questions_answered": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "LearningSession.correct_answers"`)}
	}
	if v, ok := _c.mutation.CorrectAnswers(); ok {
		if err := learningsession.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "LearningSession.correct_answers": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topics(); !ok {
		return &ValidationError{Name: "topics", err: errors.New(`ent: missing required field "LearningSession.topics"`)}
	}
	return nil
}

func (_c *LearningSessionCreate) sqlSave(ctx context.Context) (*LearningSession, error) {
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

func (_c *LearningSessionCreate) createSpec() (*LearningSession, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningsession.Table, sqlgraph.NewFieldSpec(learningsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(learningsession.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.DurationMinutes(); ok {
		_spec.SetField(learningsession.FieldDurationMinutes, field.TypeInt, value)
		_node.DurationMinutes = value
	}
	if value, ok := _c.mutation.QuestionsAnswered(); ok {
		_spec.SetField(learningsession.FieldQuestionsAnswered, field.TypeInt, value)
		_node.QuestionsAnswered = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(learningsession.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.Topics(); ok {
		_spec.SetField(learningsession.FieldTopics, field.TypeString, value)
		_node.Topics = value
	}
	return _node, _spec
}

// LearningSessionCreateBulk is the builder for creating many LearningSession entities in bulk.
type LearningSessionCreateBulk struct {
	config
	err      error
	builders []*LearningSessionCreate
}

// Save creates the LearningSession entities in the database.
func (_c *LearningSessionCreateBulk) Save(ctx context.Context) ([]*LearningSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningSessionMutation)
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
func (_c *LearningSessionCreateBulk) SaveX(ctx context.Context) []*LearningSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
