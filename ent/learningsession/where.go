// Code generated by ent, DO NOT EDIT.

package learningsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jheine/lernbox/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldID, id))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldDate, v))
}

// DurationMinutes applies equality check predicate on the "duration_minutes" field. It's identical to DurationMinutesEQ.
func DurationMinutes(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldDurationMinutes, v))
}

// QuestionsAnswered applies equality check predicate on the "questions_answered" field. It's identical to QuestionsAnsweredEQ.
func QuestionsAnswered(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldCorrectAnswers, v))
}

// Topics applies equality check predicate on the "topics" field. It's identical to TopicsEQ.
func Topics(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldTopics, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldDate, v))
}

// DurationMinutesEQ applies the EQ predicate on the "duration_minutes" field.
func DurationMinutesEQ(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldDurationMinutes, v))
}

// DurationMinutesNEQ applies the NEQ predicate on the "duration_minutes" field.
func DurationMinutesNEQ(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldDurationMinutes, v))
}

// DurationMinutesIn applies the In predicate on the "duration_minutes" field.
func DurationMinutesIn(vs ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldDurationMinutes, vs...))
}

// DurationMinutesNotIn applies the NotIn predicate on the "duration_minutes" field.
func DurationMinutesNotIn(vs ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldDurationMinutes, vs...))
}

// DurationMinutesGT applies the GT predicate on the "duration_minutes" field.
func DurationMinutesGT(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldDurationMinutes, v))
}

// DurationMinutesGTE applies the GTE predicate on the "duration_minutes" field.
func DurationMinutesGTE(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldDurationMinutes, v))
}

// DurationMinutesLT applies the LT predicate on the "duration_minutes" field.
func DurationMinutesLT(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldDurationMinutes, v))
}

// DurationMinutesLTE applies the LTE predicate on the "duration_minutes" field.
func DurationMinutesLTE(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldDurationMinutes, v))
}

// QuestionsAnsweredEQ applies the EQ predicate on the "questions_answered" field.
func QuestionsAnsweredEQ(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredNEQ applies the NEQ predicate on the "questions_answered" field.
func QuestionsAnsweredNEQ(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredIn applies the In predicate on the "questions_answered" field.
func QuestionsAnsweredIn(vs ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredNotIn applies the NotIn predicate on the "questions_answered" field.
func QuestionsAnsweredNotIn(vs ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldQuestionsAnswered, vs...))
}

// QuestionsAnsweredGT applies the GT predicate on the "questions_answered" field.
func QuestionsAnsweredGT(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredGTE applies the GTE predicate on the "questions_answered" field.
func QuestionsAnsweredGTE(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLT applies the LT predicate on the "questions_answered" field.
func QuestionsAnsweredLT(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldQuestionsAnswered, v))
}

// QuestionsAnsweredLTE applies the LTE predicate on the "questions_answered" field.
func QuestionsAnsweredLTE(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldQuestionsAnswered, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldCorrectAnswers, v))
}

// TopicsEQ applies the EQ predicate on the "topics" field.
func TopicsEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEQ(FieldTopics, v))
}

// TopicsNEQ applies the NEQ predicate on the "topics" field.
func TopicsNEQ(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNEQ(FieldTopics, v))
}

// TopicsIn applies the In predicate on the "topics" field.
func TopicsIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldIn(FieldTopics, vs...))
}

// TopicsNotIn applies the NotIn predicate on the "topics" field.
func TopicsNotIn(vs ...string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldNotIn(FieldTopics, vs...))
}

// TopicsGT applies the GT predicate on the "topics" field.
func TopicsGT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGT(FieldTopics, v))
}

// TopicsGTE applies the GTE predicate on the "topics" field.
func TopicsGTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldGTE(FieldTopics, v))
}

// TopicsLT applies the LT predicate on the "topics" field.
func TopicsLT(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLT(FieldTopics, v))
}

// TopicsLTE applies the LTE predicate on the "topics" field.
func TopicsLTE(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldLTE(FieldTopics, v))
}

// TopicsContains applies the Contains predicate on the "topics" field.
func TopicsContains(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContains(FieldTopics, v))
}

// TopicsHasPrefix applies the HasPrefix predicate on the "topics" field.
func TopicsHasPrefix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasPrefix(FieldTopics, v))
}

// TopicsHasSuffix applies the HasSuffix predicate on the "topics" field.
func TopicsHasSuffix(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldHasSuffix(FieldTopics, v))
}

// TopicsEqualFold applies the EqualFold predicate on the "topics" field.
func TopicsEqualFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldEqualFold(FieldTopics, v))
}

// TopicsContainsFold applies the ContainsFold predicate on the "topics" field.
func TopicsContainsFold(v string) predicate.LearningSession {
	return predicate.LearningSession(sql.FieldContainsFold(FieldTopics, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearningSession) predicate.LearningSession {
	return predicate.LearningSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearningSession) predicate.LearningSession {
	return predicate.LearningSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearningSession) predicate.LearningSession {
	return predicate.LearningSession(sql.NotPredicates(p))
}
