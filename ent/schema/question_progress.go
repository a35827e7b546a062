package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestionProgress tracks per-question attempt counters and the
// spaced repetition review state. One row per question, created
// lazily on the first answer.
type QuestionProgress struct {
	ent.Schema
}

func (QuestionProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Catalog question identifier"),
		field.Int("correct_attempts").
			Default(0).
			NonNegative(),
		field.Int("wrong_attempts").
			Default(0).
			NonNegative(),
		field.Time("last_attempt").
			Optional().
			Comment("Wall-clock time of the most recent answer"),
		field.Time("next_review").
			Optional().
			Comment("When the question becomes due again"),
		field.Int("mastery_level").
			Default(0).
			Min(0).
			Max(5).
			Comment("0-5 proficiency driving the review interval"),
	}
}

func (QuestionProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("next_review"),
		index.Fields("mastery_level"),
	}
}
