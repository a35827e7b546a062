// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jheine/lernbox/ent/subjectscript"
)

// SubjectScriptCreate is the builder for creating a SubjectScript entity.
type SubjectScriptCreate struct {
	config
	mutation *SubjectScriptMutation
	hooks    []Hook
}

// SetSubjectName sets the "subject_name" field.
func (_c *SubjectScriptCreate) SetSubjectName(v string) *SubjectScriptCreate {
	_c.mutation.SetSubjectName(v)
	return _c
}

// SetScriptName sets the "script_name" field.
func (_c *SubjectScriptCreate) SetScriptName(v string) *SubjectScriptCreate {
	_c.mutation.SetScriptName(v)
	return _c
}

// Mutation returns the SubjectScriptMutation object of the builder.
func (_c *SubjectScriptCreate) Mutation() *SubjectScriptMutation {
	return _c.mutation
}

// Save creates the SubjectScript in the database.
func (_c *SubjectScriptCreate) Save(ctx context.Context) (*SubjectScript, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubjectScriptCreate) SaveX(ctx context.Context) *SubjectScript {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubjectScriptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubjectScriptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubjectScriptCreate) check() error {
	if _, ok := _c.mutation.SubjectName(); !ok {
		return &ValidationError{Name: "subject_name", err: errors.New(`ent: missing required field "SubjectScript.subject_name"`)}
	}
	if v, ok := _c.mutation.SubjectName(); ok {
		if err := subjectscript.SubjectNameValidator(v); err != nil {
			return &ValidationError{Name: "subject_name", err: fmt.Errorf(`ent: validator failed for field "SubjectScript.subject_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScriptName(); !ok {
		return &ValidationError{Name: "script_name", err: errors.New(`ent: missing required field "SubjectScript.script_name"`)}
	}
	if v, ok := _c.mutation.ScriptName(); ok {
		if err := subjectscript.ScriptNameValidator(v); err != nil {
			return &ValidationError{Name: "script_name", err: fmt.Errorf(`ent: validator failed for field "SubjectScript.script_name": %w`, err)}
		}
	}
	return nil
}

func (_c *SubjectScriptCreate) sqlSave(ctx context.Context) (*SubjectScript, error) {
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

func (_c *SubjectScriptCreate) createSpec() (*SubjectScript, *sqlgraph.CreateSpec) {
	var (
		_node = &SubjectScript{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subjectscript.Table, sqlgraph.NewFieldSpec(subjectscript.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SubjectName(); ok {
		_spec.SetField(subjectscript.FieldSubjectName, field.TypeString, value)
		_node.SubjectName = value
	}
	if value, ok := _c.mutation.ScriptName(); ok {
		_spec.SetField(subjectscript.FieldScriptName, field.TypeString, value)
		_node.ScriptName = value
	}
	return _node, _spec
}

// SubjectScriptCreateBulk is the builder for creating many SubjectScript entities in bulk.
type SubjectScriptCreateBulk struct {
	config
	err      error
	builders []*SubjectScriptCreate
}

// Save creates the SubjectScript entities in the database.
func (_c *SubjectScriptCreateBulk) Save(ctx context.Context) ([]*SubjectScript, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubjectScript, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubjectScriptMutation)
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
func (_c *SubjectScriptCreateBulk) SaveX(ctx context.Context) []*SubjectScript {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubjectScriptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubjectScriptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
