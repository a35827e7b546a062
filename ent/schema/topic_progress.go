package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// TopicProgress aggregates mastery per topic tag across the catalog.
// total_questions mirrors the catalog count for the topic and is
// reconciled on every full refresh; correct_answers accumulates over
// answers and survives refreshes.
type TopicProgress struct {
	ent.Schema
}

func (TopicProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic_name").
			NotEmpty().
			Unique().
			Immutable(),
		field.Int("total_questions").
			Default(0).
			NonNegative(),
		field.Int("correct_answers").
			Default(0).
			NonNegative(),
		field.Float("mastery_percentage").
			Default(0).
			Comment("correct_answers * 100 / total_questions"),
	}
}
