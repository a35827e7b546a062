// Code generated by ent, DO NOT EDIT.

package questionprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jheine/lernbox/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLTE(FieldID, id))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldQuestionID, v))
}

// CorrectAttempts applies equality check predicate on the "correct_attempts" field. It's identical to CorrectAttemptsEQ.
func CorrectAttempts(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldCorrectAttempts, v))
}

// WrongAttempts applies equality check predicate on the "wrong_attempts" field. It's identical to WrongAttemptsEQ.
func WrongAttempts(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldWrongAttempts, v))
}

// LastAttempt applies equality check predicate on the "last_attempt" field. It's identical to LastAttemptEQ.
func LastAttempt(v time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldLastAttempt, v))
}

// NextReview applies equality check predicate on the "next_review" field. It's identical to NextReviewEQ.
func NextReview(v time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldNextReview, v))
}

// MasteryLevel applies equality check predicate on the "mastery_level" field. It's identical to MasteryLevelEQ.
func MasteryLevel(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldMasteryLevel, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldContainsFold(FieldQuestionID, v))
}

// CorrectAttemptsEQ applies the EQ predicate on the "correct_attempts" field.
func CorrectAttemptsEQ(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldCorrectAttempts, v))
}

// CorrectAttemptsNEQ applies the NEQ predicate on the "correct_attempts" field.
func CorrectAttemptsNEQ(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNEQ(FieldCorrectAttempts, v))
}

// CorrectAttemptsIn applies the In predicate on the "correct_attempts" field.
func CorrectAttemptsIn(vs ...int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldIn(FieldCorrectAttempts, vs...))
}

// CorrectAttemptsNotIn applies the NotIn predicate on the "correct_attempts" field.
func CorrectAttemptsNotIn(vs ...int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNotIn(FieldCorrectAttempts, vs...))
}

// CorrectAttemptsGT applies the GT predicate on the "correct_attempts" field.
func CorrectAttemptsGT(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGT(FieldCorrectAttempts, v))
}

// CorrectAttemptsGTE applies the GTE predicate on the "correct_attempts" field.
func CorrectAttemptsGTE(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGTE(FieldCorrectAttempts, v))
}

// CorrectAttemptsLT applies the LT predicate on the "correct_attempts" field.
func CorrectAttemptsLT(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLT(FieldCorrectAttempts, v))
}

// CorrectAttemptsLTE applies the LTE predicate on the "correct_attempts" field.
func CorrectAttemptsLTE(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLTE(FieldCorrectAttempts, v))
}

// WrongAttemptsEQ applies the EQ predicate on the "wrong_attempts" field.
func WrongAttemptsEQ(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldWrongAttempts, v))
}

// WrongAttemptsNEQ applies the NEQ predicate on the "wrong_attempts" field.
func WrongAttemptsNEQ(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNEQ(FieldWrongAttempts, v))
}

// WrongAttemptsIn applies the In predicate on the "wrong_attempts" field.
func WrongAttemptsIn(vs ...int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldIn(FieldWrongAttempts, vs...))
}

// WrongAttemptsNotIn applies the NotIn predicate on the "wrong_attempts" field.
func WrongAttemptsNotIn(vs ...int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNotIn(FieldWrongAttempts, vs...))
}

// WrongAttemptsGT applies the GT predicate on the "wrong_attempts" field.
func WrongAttemptsGT(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGT(FieldWrongAttempts, v))
}

// WrongAttemptsGTE applies the GTE predicate on the "wrong_attempts" field.
func WrongAttemptsGTE(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGTE(FieldWrongAttempts, v))
}

// WrongAttemptsLT applies the LT predicate on the "wrong_attempts" field.
func WrongAttemptsLT(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLT(FieldWrongAttempts, v))
}

// WrongAttemptsLTE applies the LTE predicate on the "wrong_attempts" field.
func WrongAttemptsLTE(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLTE(FieldWrongAttempts, v))
}

// LastAttemptEQ applies the EQ predicate on the "last_attempt" field.
func LastAttemptEQ(v time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldLastAttempt, v))
}

// LastAttemptNEQ applies the NEQ predicate on the "last_attempt" field.
func LastAttemptNEQ(v time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNEQ(FieldLastAttempt, v))
}

// LastAttemptIn applies the In predicate on the "last_attempt" field.
func LastAttemptIn(vs ...time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldIn(FieldLastAttempt, vs...))
}

// LastAttemptNotIn applies the NotIn predicate on the "last_attempt" field.
func LastAttemptNotIn(vs ...time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNotIn(FieldLastAttempt, vs...))
}

// LastAttemptGT applies the GT predicate on the "last_attempt" field.
func LastAttemptGT(v time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGT(FieldLastAttempt, v))
}

// LastAttemptGTE applies the GTE predicate on the "last_attempt" field.
func LastAttemptGTE(v time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGTE(FieldLastAttempt, v))
}

// LastAttemptLT applies the LT predicate on the "last_attempt" field.
func LastAttemptLT(v time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLT(FieldLastAttempt, v))
}

// LastAttemptLTE applies the LTE predicate on the "last_attempt" field.
func LastAttemptLTE(v time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLTE(FieldLastAttempt, v))
}

// LastAttemptIsNil applies the IsNil predicate on the "last_attempt" field.
func LastAttemptIsNil() predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldIsNull(FieldLastAttempt))
}

// LastAttemptNotNil applies the NotNil predicate on the "last_attempt" field.
func LastAttemptNotNil() predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNotNull(FieldLastAttempt))
}

// NextReviewEQ applies the EQ predicate on the "next_review" field.
func NextReviewEQ(v time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldNextReview, v))
}

// NextReviewNEQ applies the NEQ predicate on the "next_review" field.
func NextReviewNEQ(v time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNEQ(FieldNextReview, v))
}

// NextReviewIn applies the In predicate on the "next_review" field.
func NextReviewIn(vs ...time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldIn(FieldNextReview, vs...))
}

// NextReviewNotIn applies the NotIn predicate on the "next_review" field.
func NextReviewNotIn(vs ...time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNotIn(FieldNextReview, vs...))
}

// NextReviewGT applies the GT predicate on the "next_review" field.
func NextReviewGT(v time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGT(FieldNextReview, v))
}

// NextReviewGTE applies the GTE predicate on the "next_review" field.
func NextReviewGTE(v time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGTE(FieldNextReview, v))
}

// NextReviewLT applies the LT predicate on the "next_review" field.
func NextReviewLT(v time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLT(FieldNextReview, v))
}

// NextReviewLTE applies the LTE predicate on the "next_review" field.
func NextReviewLTE(v time.Time) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLTE(FieldNextReview, v))
}

// NextReviewIsNil applies the IsNil predicate on the "next_review" field.
func NextReviewIsNil() predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldIsNull(FieldNextReview))
}

// NextReviewNotNil applies the NotNil predicate on the "next_review" field.
func NextReviewNotNil() predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNotNull(FieldNextReview))
}

// MasteryLevelEQ applies the EQ predicate on the "mastery_level" field.
func MasteryLevelEQ(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldEQ(FieldMasteryLevel, v))
}

// MasteryLevelNEQ applies the NEQ predicate on the "mastery_level" field.
func MasteryLevelNEQ(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNEQ(FieldMasteryLevel, v))
}

// MasteryLevelIn applies the In predicate on the "mastery_level" field.
func MasteryLevelIn(vs ...int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldIn(FieldMasteryLevel, vs...))
}

// MasteryLevelNotIn applies the NotIn predicate on the "mastery_level" field.
func MasteryLevelNotIn(vs ...int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldNotIn(FieldMasteryLevel, vs...))
}

// MasteryLevelGT applies the GT predicate on the "mastery_level" field.
func MasteryLevelGT(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGT(FieldMasteryLevel, v))
}

// MasteryLevelGTE applies the GTE predicate on the "mastery_level" field.
func MasteryLevelGTE(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldGTE(FieldMasteryLevel, v))
}

// MasteryLevelLT applies the LT predicate on the "mastery_level" field.
func MasteryLevelLT(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLT(FieldMasteryLevel, v))
}

// MasteryLevelLTE applies the LTE predicate on the "mastery_level" field.
func MasteryLevelLTE(v int) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.FieldLTE(FieldMasteryLevel, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestionProgress) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestionProgress) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestionProgress) predicate.QuestionProgress {
	return predicate.QuestionProgress(sql.NotPredicates(p))
}
