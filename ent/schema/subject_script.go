package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubjectScript is a (subject, script) pair extracted from question
// source references. Used to populate filter choices; rebuilt on
// every full refresh.
type SubjectScript struct {
	ent.Schema
}

func (SubjectScript) Fields() []ent.Field {
	return []ent.Field{
		field.String("subject_name").
			NotEmpty(),
		field.String("script_name").
			NotEmpty(),
	}
}

func (SubjectScript) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_name", "script_name").
			Unique(),
	}
}
