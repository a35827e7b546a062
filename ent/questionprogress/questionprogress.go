// Code generated by ent, DO NOT EDIT.

package questionprogress

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the questionprogress type in the database.
	Label = "question_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQuestionID holds the string denoting the question_id field in the database.
	FieldQuestionID = "question_id"
	// FieldCorrectAttempts holds the string denoting the correct_attempts field in the database.
	FieldCorrectAttempts = "correct_attempts"
	// FieldWrongAttempts holds the string denoting the wrong_attempts field in the database.
	FieldWrongAttempts = "wrong_attempts"
	// FieldLastAttempt holds the string denoting the last_attempt field in the database.
	FieldLastAttempt = "last_attempt"
	// FieldNextReview holds the string denoting the next_review field in the database.
	FieldNextReview = "next_review"
	// FieldMasteryLevel holds the string denoting the mastery_level field in the database.
	FieldMasteryLevel = "mastery_level"
	// Table holds the table name of the questionprogress in the database.
	Table = "question_progresses"
)

// Columns holds all SQL columns for questionprogress fields.
var Columns = []string{
	FieldID,
	FieldQuestionID,
	FieldCorrectAttempts,
	FieldWrongAttempts,
	FieldLastAttempt,
	FieldNextReview,
	FieldMasteryLevel,
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
	// QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	QuestionIDValidator func(string) error
	// DefaultCorrectAttempts holds the default value on creation for the "correct_attempts" field.
	DefaultCorrectAttempts int
	// CorrectAttemptsValidator is a validator for the "correct_attempts" field. It is called by the builders before save.
	CorrectAttemptsValidator func(int) error
	// DefaultWrongAttempts holds the default value on creation for the "wrong_attempts" field.
	DefaultWrongAttempts int
	// WrongAttemptsValidator is a validator for the "wrong_attempts" field. It is called by the builders before save.
	WrongAttemptsValidator func(int) error
	// DefaultMasteryLevel holds the default value on creation for the "mastery_level" field.
	DefaultMasteryLevel int
	// MasteryLevelValidator is a validator for the "mastery_level" field. It is called by the builders before save.
	MasteryLevelValidator func(int) error
)

// OrderOption defines the ordering options for the QuestionProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQuestionID orders the results by the question_id field.
func ByQuestionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionID, opts...).ToFunc()
}

// ByCorrectAttempts orders the results by the correct_attempts field.
func ByCorrectAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAttempts, opts...).ToFunc()
}

// ByWrongAttempts orders the results by the wrong_attempts field.
func ByWrongAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWrongAttempts, opts...).ToFunc()
}

// ByLastAttempt orders the results by the last_attempt field.
func ByLastAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAttempt, opts...).ToFunc()
}

// ByNextReview orders the results by the next_review field.
func ByNextReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReview, opts...).ToFunc()
}

// ByMasteryLevel orders the results by the mastery_level field.
func ByMasteryLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryLevel, opts...).ToFunc()
}
