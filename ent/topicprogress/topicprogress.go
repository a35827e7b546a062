// Code generated by ent, DO NOT EDIT.

package topicprogress

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the topicprogress type in the database.
	Label = "topic_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTopicName holds the string denoting the topic_name field in the database.
	FieldTopicName = "topic_name"
	// FieldTotalQuestions holds the string denoting the total_questions field in the database.
	FieldTotalQuestions = "total_questions"
	// FieldCorrectAnswers holds the string denoting the correct_answers field in the database.
	FieldCorrectAnswers = "correct_answers"
	// FieldMasteryPercentage holds the string denoting the mastery_percentage field in the database.
	FieldMasteryPercentage = "mastery_percentage"
	// Table holds the table name of the topicprogress in the database.
	Table = "topic_progresses"
)

// Columns holds all SQL columns for topicprogress fields.
var Columns = []string{
	FieldID,
	FieldTopicName,
	FieldTotalQuestions,
	FieldCorrectAnswers,
	FieldMasteryPercentage,
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
	// TopicNameValidator is a validator for the "topic_name" field. It is called by the builders before save.
	TopicNameValidator func(string) error
	// DefaultTotalQuestions holds the default value on creation for the "total_questions" field.
	DefaultTotalQuestions int
	// TotalQuestionsValidator is a validator for the "total_questions" field. It is called by the builders before save.
	TotalQuestionsValidator func(int) error
	// DefaultCorrectAnswers holds the default value on creation for the "correct_answers" field.
	DefaultCorrectAnswers int
	// CorrectAnswersValidator is a validator for the "correct_answers" field. It is called by the builders before save.
	CorrectAnswersValidator func(int) error
	// DefaultMasteryPercentage holds the default value on creation for the "mastery_percentage" field.
	DefaultMasteryPercentage float64
)

// OrderOption defines the ordering options for the TopicProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTopicName orders the results by the topic_name field.
func ByTopicName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicName, opts...).ToFunc()
}

// ByTotalQuestions orders the results by the total_questions field.
func ByTotalQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuestions, opts...).ToFunc()
}

// ByCorrectAnswers orders the results by the correct_answers field.
func ByCorrectAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswers, opts...).ToFunc()
}

// ByMasteryPercentage orders the results by the mastery_percentage field.
func ByMasteryPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryPercentage, opts...).ToFunc()
}
