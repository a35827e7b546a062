// Code generated by ent, DO NOT EDIT.

package topicprogress

import (
	"entgo.io/ent/dialect/sql"
	"github.com/jheine/lernbox/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldID, id))
}

// TopicName applies equality check predicate on the "topic_name" field. It's identical to TopicNameEQ.
func TopicName(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldTopicName, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldTotalQuestions, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldCorrectAnswers, v))
}

// MasteryPercentage applies equality check predicate on the "mastery_percentage" field. It's identical to MasteryPercentageEQ.
func MasteryPercentage(v float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldMasteryPercentage, v))
}

// TopicNameEQ applies the EQ predicate on the "topic_name" field.
func TopicNameEQ(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldTopicName, v))
}

// TopicNameNEQ applies the NEQ predicate on the "topic_name" field.
func TopicNameNEQ(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldTopicName, v))
}

// TopicNameIn applies the In predicate on the "topic_name" field.
func TopicNameIn(vs ...string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldTopicName, vs...))
}

// TopicNameNotIn applies the NotIn predicate on the "topic_name" field.
func TopicNameNotIn(vs ...string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldTopicName, vs...))
}

// TopicNameGT applies the GT predicate on the "topic_name" field.
func TopicNameGT(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldTopicName, v))
}

// TopicNameGTE applies the GTE predicate on the "topic_name" field.
func TopicNameGTE(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldTopicName, v))
}

// TopicNameLT applies the LT predicate on the "topic_name" field.
func TopicNameLT(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldTopicName, v))
}

// TopicNameLTE applies the LTE predicate on the "topic_name" field.
func TopicNameLTE(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldTopicName, v))
}

// TopicNameContains applies the Contains predicate on the "topic_name" field.
func TopicNameContains(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldContains(FieldTopicName, v))
}

// TopicNameHasPrefix applies the HasPrefix predicate on the "topic_name" field.
func TopicNameHasPrefix(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldHasPrefix(FieldTopicName, v))
}

// TopicNameHasSuffix applies the HasSuffix predicate on the "topic_name" field.
func TopicNameHasSuffix(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldHasSuffix(FieldTopicName, v))
}

// TopicNameEqualFold applies the EqualFold predicate on the "topic_name" field.
func TopicNameEqualFold(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEqualFold(FieldTopicName, v))
}

// TopicNameContainsFold applies the ContainsFold predicate on the "topic_name" field.
func TopicNameContainsFold(v string) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldContainsFold(FieldTopicName, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldTotalQuestions, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldCorrectAnswers, v))
}

// MasteryPercentageEQ applies the EQ predicate on the "mastery_percentage" field.
func MasteryPercentageEQ(v float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldEQ(FieldMasteryPercentage, v))
}

// MasteryPercentageNEQ applies the NEQ predicate on the "mastery_percentage" field.
func MasteryPercentageNEQ(v float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNEQ(FieldMasteryPercentage, v))
}

// MasteryPercentageIn applies the In predicate on the "mastery_percentage" field.
func MasteryPercentageIn(vs ...float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldIn(FieldMasteryPercentage, vs...))
}

// MasteryPercentageNotIn applies the NotIn predicate on the "mastery_percentage" field.
func MasteryPercentageNotIn(vs ...float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldNotIn(FieldMasteryPercentage, vs...))
}

// MasteryPercentageGT applies the GT predicate on the "mastery_percentage" field.
func MasteryPercentageGT(v float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGT(FieldMasteryPercentage, v))
}

// MasteryPercentageGTE applies the GTE predicate on the "mastery_percentage" field.
func MasteryPercentageGTE(v float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldGTE(FieldMasteryPercentage, v))
}

// MasteryPercentageLT applies the LT predicate on the "mastery_percentage" field.
func MasteryPercentageLT(v float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLT(FieldMasteryPercentage, v))
}

// MasteryPercentageLTE applies the LTE predicate on the "mastery_percentage" field.
func MasteryPercentageLTE(v float64) predicate.TopicProgress {
	return predicate.TopicProgress(sql.FieldLTE(FieldMasteryPercentage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TopicProgress) predicate.TopicProgress {
	return predicate.TopicProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TopicProgress) predicate.TopicProgress {
	return predicate.TopicProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TopicProgress) predicate.TopicProgress {
	return predicate.TopicProgress(sql.NotPredicates(p))
}
