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
	"github.com/jheine/lernbox/ent/subjectscript"
)

// SubjectScriptUpdate is the builder for updating SubjectScript entities.
type SubjectScriptUpdate struct {
	config
	hooks    []Hook
	mutation *SubjectScriptMutation
}

// Where appends a list predicates to the SubjectScriptUpdate builder.
func (_u *SubjectScriptUpdate) Where(ps ...predicate.SubjectScript) *SubjectScriptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubjectName sets the "subject_name" field.
func (_u *SubjectScriptUpdate) SetSubjectName(v string) *SubjectScriptUpdate {
	_u.mutation.SetSubjectName(v)
	return _u
}

// SetNillableSubjectName sets the "subject_name" field if the given value is not nil.
func (_u *SubjectScriptUpdate) SetNillableSubjectName(v *string) *SubjectScriptUpdate {
	if v != nil {
		_u.SetSubjectName(*v)
	}
	return _u
}

// SetScriptName sets the "script_name" field.
func (_u *SubjectScriptUpdate) SetScriptName(v string) *SubjectScriptUpdate {
	_u.mutation.SetScriptName(v)
	return _u
}

// SetNillableScriptName sets the "script_name" field if the given value is not nil.
func (_u *SubjectScriptUpdate) SetNillableScriptName(v *string) *SubjectScriptUpdate {
	if v != nil {
		_u.SetScriptName(*v)
	}
	return _u
}

// Mutation returns the SubjectScriptMutation object of the builder.
func (_u *SubjectScriptUpdate) Mutation() *SubjectScriptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubjectScriptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubjectScriptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubjectScriptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubjectScriptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubjectScriptUpdate) check() error {
	if v, ok := _u.mutation.SubjectName(); ok {
		if err := subjectscript.SubjectNameValidator(v); err != nil {
			return &ValidationError{Name: "subject_name", err: fmt.Errorf(`ent: validator failed for field "SubjectScript.subject_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScriptName(); ok {
		if err := subjectscript.ScriptNameValidator(v); err != nil {
			return &ValidationError{Name: "script_name", err: fmt.Errorf(`ent: validator failed for field "SubjectScript.script_name": %w`, err)}
		}
	}
	return nil
}

func (_u *SubjectScriptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subjectscript.Table, subjectscript.Columns, sqlgraph.NewFieldSpec(subjectscript.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SubjectName(); ok {
		_spec.SetField(subjectscript.FieldSubjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScriptName(); ok {
		_spec.SetField(subjectscript.FieldScriptName, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subjectscript.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubjectScriptUpdateOne is the builder for updating a single SubjectScript entity.
type SubjectScriptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubjectScriptMutation
}

// SetSubjectName sets the "subject_name" field.
func (_u *SubjectScriptUpdateOne) SetSubjectName(v string) *SubjectScriptUpdateOne {
	_u.mutation.SetSubjectName(v)
	return _u
}

// SetNillableSubjectName sets the "subject_name" field if the given value is not nil.
func (_u *SubjectScriptUpdateOne) SetNillableSubjectName(v *string) *SubjectScriptUpdateOne {
	if v != nil {
		_u.SetSubjectName(*v)
	}
	return _u
}

// SetScriptName sets the "script_name" field.
func (_u *SubjectScriptUpdateOne) SetScriptName(v string) *SubjectScriptUpdateOne {
	_u.mutation.SetScriptName(v)
	return _u
}

// SetNillableScriptName sets the "script_name" field if the given value is not nil.
func (_u *SubjectScriptUpdateOne) SetNillableScriptName(v *string) *SubjectScriptUpdateOne {
	if v != nil {
		_u.SetScriptName(*v)
	}
	return _u
}

// Mutation returns the SubjectScriptMutation object of the builder.
func (_u *SubjectScriptUpdateOne) Mutation() *SubjectScriptMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubjectScriptUpdate builder.
func (_u *SubjectScriptUpdateOne) Where(ps ...predicate.SubjectScript) *SubjectScriptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubjectScriptUpdateOne) Select(field string, fields ...string) *SubjectScriptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubjectScript entity.
func (_u *SubjectScriptUpdateOne) Save(ctx context.Context) (*SubjectScript, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubjectScriptUpdateOne) SaveX(ctx context.Context) *SubjectScript {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubjectScriptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubjectScriptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubjectScriptUpdateOne) check() error {
	if v, ok := _u.mutation.SubjectName(); ok {
		if err := subjectscript.SubjectNameValidator(v); err != nil {
			return &ValidationError{Name: "subject_name", err: fmt.Errorf(`ent: validator failed for field "SubjectScript.subject_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScriptName(); ok {
		if err := subjectscript.ScriptNameValidator(v); err != nil {
			return &ValidationError{Name: "script_name", err: fmt.Errorf(`ent: validator failed for field "SubjectScript.script_name": %w`, err)}
		}
	}
	return nil
}

func (_u *SubjectScriptUpdateOne) sqlSave(ctx context.Context) (_node *SubjectScript, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subjectscript.Table, subjectscript.Columns, sqlgraph.NewFieldSpec(subjectscript.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubjectScript.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subjectscript.FieldID)
		for _, f := range fields {
			if !subjectscript.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subjectscript.FieldID {
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
	if value, ok := _u.mutation.SubjectName(); ok {
		_spec.SetField(subjectscript.FieldSubjectName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScriptName(); ok {
		_spec.SetField(subjectscript.FieldScriptName, field.TypeString, value)
	}
	_node = &SubjectScript{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subjectscript.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
