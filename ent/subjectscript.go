// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jheine/lernbox/ent/subjectscript"
)

// SubjectScript is the model entity for the SubjectScript schema.
type SubjectScript struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SubjectName holds the value of the "subject_name" field.
	SubjectName string `json:"subject_name,omitempty"`
	// ScriptName holds the value of the "script_name" field.
	ScriptName   string `json:"script_name,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubjectScript) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subjectscript.FieldID:
			values[i] = new(sql.NullInt64)
		case subjectscript.FieldSubjectName, subjectscript.FieldScriptName:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubjectScript fields.
func (_m *SubjectScript) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subjectscript.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case subjectscript.FieldSubjectName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_name", values[i])
			} else if value.Valid {
				_m.SubjectName = value.String
			}
		case subjectscript.FieldScriptName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field script_name", values[i])
			} else if value.Valid {
				_m.ScriptName = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SubjectScript.
// This includes values selected through modifiers, order, etc.
func (_m *SubjectScript) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SubjectScript.
// Note that you need to call SubjectScript.Unwrap() before calling this method if this SubjectScript
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SubjectScript) Update() *SubjectScriptUpdateOne {
	return NewSubjectScriptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SubjectScript entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SubjectScript) Unwrap() *SubjectScript {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubjectScript is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SubjectScript) String() string {
	var builder strings.Builder
	builder.WriteString("SubjectScript(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("subject_name=")
	builder.WriteString(_m.SubjectName)
	builder.WriteString(", ")
	builder.WriteString("script_name=")
	builder.WriteString(_m.ScriptName)
	builder.WriteByte(')')
	return builder.String()
}

// SubjectScripts is a parsable slice of SubjectScript.
type SubjectScripts []*SubjectScript
