// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jheine/lernbox/ent/topicprogress"
)

// TopicProgress is the model entity for the TopicProgress schema.
type TopicProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TopicName holds the value of the "topic_name" field.
	TopicName string `json:"topic_name,omitempty"`
	// TotalQuestions holds the value of the "total_questions" field.
	TotalQuestions int `json:"total_questions,omitempty"`
	// CorrectAnswers holds the value of the "correct_answers" field.
	CorrectAnswers int `json:"correct_answers,omitempty"`
	// correct_answers * 100 / total_questions
	MasteryPercentage float64 `json:"mastery_percentage,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TopicProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case topicprogress.FieldMasteryPercentage:
			values[i] = new(sql.NullFloat64)
		case topicprogress.FieldID, topicprogress.FieldTotalQuestions, topicprogress.FieldCorrectAnswers:
			values[i] = new(sql.NullInt64)
		case topicprogress.FieldTopicName:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TopicProgress fields.
func (_m *TopicProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case topicprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case topicprogress.FieldTopicName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_name", values[i])
			} else if value.Valid {
				_m.TopicName = value.String
			}
		case topicprogress.FieldTotalQuestions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions", values[i])
			} else if value.Valid {
				_m.TotalQuestions = int(value.Int64)
			}
		case topicprogress.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				_m.CorrectAnswers = int(value.Int64)
			}
		case topicprogress.FieldMasteryPercentage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_percentage", values[i])
			} else if value.Valid {
				_m.MasteryPercentage = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TopicProgress.
// This includes values selected through modifiers, order, etc.
func (_m *TopicProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TopicProgress.
// Note that you need to call TopicProgress.Unwrap() before calling this method if this TopicProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TopicProgress) Update() *TopicProgressUpdateOne {
	return NewTopicProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TopicProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TopicProgress) Unwrap() *TopicProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TopicProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TopicProgress) String() string {
	var builder strings.Builder
	builder.WriteString("TopicProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("topic_name=")
	builder.WriteString(_m.TopicName)
	builder.WriteString(", ")
	builder.WriteString("total_questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestions))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswers))
	builder.WriteString(", ")
	builder.WriteString("mastery_percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryPercentage))
	builder.WriteByte(')')
	return builder.String()
}

// TopicProgresses is a parsable slice of TopicProgress.
type TopicProgresses []*TopicProgress
