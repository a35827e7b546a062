package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningSession is the append-only log of completed quiz runs.
// Rows are immutable once written.
type LearningSession struct {
	ent.Schema
}

func (LearningSession) Fields() []ent.Field {
	return []ent.Field{
		field.Time("date").
			Default(time.Now).
			Immutable(),
		field.Int("duration_minutes").
			Default(0).
			NonNegative().
			Immutable(),
		field.Int("questions_answered").
			Default(0).
			NonNegative().
			Immutable(),
		field.Int("correct_answers").
			Default(0).
			NonNegative().
			Immutable(),
		field.String("topics").
			Default("").
			Immutable().
			Comment("Comma-joined topic list for the session"),
	}
}

func (LearningSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("date"),
	}
}
