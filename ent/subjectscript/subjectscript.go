// Code generated by ent, DO NOT EDIT.

package subjectscript

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the subjectscript type in the database.
	Label = "subject_script"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSubjectName holds the string denoting the subject_name field in the database.
	FieldSubjectName = "subject_name"
	// FieldScriptName holds the string denoting the script_name field in the database.
	FieldScriptName = "script_name"
	// Table holds the table name of the subjectscript in the database.
	Table = "subject_scripts"
)

// Columns holds all SQL columns for subjectscript fields.
var Columns = []string{
	FieldID,
	FieldSubjectName,
	FieldScriptName,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SubjectNameValidator is a validator for the "subject_name" field. It is called by the builders before save.
	SubjectNameValidator func(string) error
	// ScriptNameValidator is a validator for the "script_name" field. It is called by the builders before save.
	ScriptNameValidator func(string) error
)

// OrderOption defines the ordering options for the SubjectScript queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySubjectName orders the results by the subject_name field.
func BySubjectName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectName, opts...).ToFunc()
}

// ByScriptName orders the results by the script_name field.
func ByScriptName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScriptName, opts...).ToFunc()
}
