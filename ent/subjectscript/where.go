// Code generated by ent, DO NOT EDIT.

package subjectscript

import (
	"entgo.io/ent/dialect/sql"
	"github.com/jheine/lernbox/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldLTE(FieldID, id))
}

// SubjectName applies equality check predicate on the "subject_name" field. It's identical to SubjectNameEQ.
func SubjectName(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldEQ(FieldSubjectName, v))
}

// ScriptName applies equality check predicate on the "script_name" field. It's identical to ScriptNameEQ.
func ScriptName(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldEQ(FieldScriptName, v))
}

// SubjectNameEQ applies the EQ predicate on the "subject_name" field.
func SubjectNameEQ(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldEQ(FieldSubjectName, v))
}

// SubjectNameNEQ applies the NEQ predicate on the "subject_name" field.
func SubjectNameNEQ(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldNEQ(FieldSubjectName, v))
}

// SubjectNameIn applies the In predicate on the "subject_name" field.
func SubjectNameIn(vs ...string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldIn(FieldSubjectName, vs...))
}

// SubjectNameNotIn applies the NotIn predicate on the "subject_name" field.
func SubjectNameNotIn(vs ...string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldNotIn(FieldSubjectName, vs...))
}

// SubjectNameGT applies the GT predicate on the "subject_name" field.
func SubjectNameGT(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldGT(FieldSubjectName, v))
}

// SubjectNameGTE applies the GTE predicate on the "subject_name" field.
func SubjectNameGTE(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldGTE(FieldSubjectName, v))
}

// SubjectNameLT applies the LT predicate on the "subject_name" field.
func SubjectNameLT(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldLT(FieldSubjectName, v))
}

// SubjectNameLTE applies the LTE predicate on the "subject_name" field.
func SubjectNameLTE(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldLTE(FieldSubjectName, v))
}

// SubjectNameContains applies the Contains predicate on the "subject_name" field.
func SubjectNameContains(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldContains(FieldSubjectName, v))
}

// SubjectNameHasPrefix applies the HasPrefix predicate on the "subject_name" field.
func SubjectNameHasPrefix(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldHasPrefix(FieldSubjectName, v))
}

// SubjectNameHasSuffix applies the HasSuffix predicate on the "subject_name" field.
func SubjectNameHasSuffix(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldHasSuffix(FieldSubjectName, v))
}

// SubjectNameEqualFold applies the EqualFold predicate on the "subject_name" field.
func SubjectNameEqualFold(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldEqualFold(FieldSubjectName, v))
}

// SubjectNameContainsFold applies the ContainsFold predicate on the "subject_name" field.
func SubjectNameContainsFold(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldContainsFold(FieldSubjectName, v))
}

// ScriptNameEQ applies the EQ predicate on the "script_name" field.
func ScriptNameEQ(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldEQ(FieldScriptName, v))
}

// ScriptNameNEQ applies the NEQ predicate on the "script_name" field.
func ScriptNameNEQ(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldNEQ(FieldScriptName, v))
}

// ScriptNameIn applies the In predicate on the "script_name" field.
func ScriptNameIn(vs ...string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldIn(FieldScriptName, vs...))
}

// ScriptNameNotIn applies the NotIn predicate on the "script_name" field.
func ScriptNameNotIn(vs ...string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldNotIn(FieldScriptName, vs...))
}

// ScriptNameGT applies the GT predicate on the "script_name" field.
func ScriptNameGT(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldGT(FieldScriptName, v))
}

// ScriptNameGTE applies the GTE predicate on the "script_name" field.
func ScriptNameGTE(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldGTE(FieldScriptName, v))
}

// ScriptNameLT applies the LT predicate on the "script_name" field.
func ScriptNameLT(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldLT(FieldScriptName, v))
}

// ScriptNameLTE applies the LTE predicate on the "script_name" field.
func ScriptNameLTE(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldLTE(FieldScriptName, v))
}

// ScriptNameContains applies the Contains predicate on the "script_name" field.
func ScriptNameContains(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldContains(FieldScriptName, v))
}

// ScriptNameHasPrefix applies the HasPrefix predicate on the "script_name" field.
func ScriptNameHasPrefix(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldHasPrefix(FieldScriptName, v))
}

// ScriptNameHasSuffix applies the HasSuffix predicate on the "script_name" field.
func ScriptNameHasSuffix(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldHasSuffix(FieldScriptName, v))
}

// ScriptNameEqualFold applies the EqualFold predicate on the "script_name" field.
func ScriptNameEqualFold(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldEqualFold(FieldScriptName, v))
}

// ScriptNameContainsFold applies the ContainsFold predicate on the "script_name" field.
func ScriptNameContainsFold(v string) predicate.SubjectScript {
	return predicate.SubjectScript(sql.FieldContainsFold(FieldScriptName, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubjectScript) predicate.SubjectScript {
	return predicate.SubjectScript(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubjectScript) predicate.SubjectScript {
	return predicate.SubjectScript(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubjectScript) predicate.SubjectScript {
	return predicate.SubjectScript(sql.NotPredicates(p))
}
