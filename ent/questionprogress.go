// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/jheine/lernbox/ent/questionprogress"
)

// QuestionProgress is the model entity for the QuestionProgress schema.
type QuestionProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Catalog question identifier
	QuestionID string `json:"question_id,omitempty"`
	// CorrectAttempts holds the value of the "correct_attempts" field.
	CorrectAttempts int `json:"correct_attempts,omitempty"`
	// WrongAttempts holds the value of the "wrong_attempts" field.
	WrongAttempts int `json:"wrong_attempts,omitempty"`
	// Wall-clock time of the most recent answer
	LastAttempt time.Time `json:"last_attempt,omitempty"`
	// When the question becomes due again
	NextReview time.Time `json:"next_review,omitempty"`
	// 0-5 proficiency driving the review interval
	MasteryLevel int `json:"mastery_level,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestionProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionprogress.FieldID, questionprogress.FieldCorrectAttempts, questionprogress.FieldWrongAttempts, questionprogress.FieldMasteryLevel:
			values[i] = new(sql.NullInt64)
		case questionprogress.FieldQuestionID:
			values[i] = new(sql.NullString)
		case questionprogress.FieldLastAttempt, questionprogress.FieldNextReview:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestionProgress fields.
func (_m *QuestionProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case questionprogress.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case questionprogress.FieldCorrectAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_attempts", values[i])
			} else if value.Valid {
				_m.CorrectAttempts = int(value.Int64)
			}
		case questionprogress.FieldWrongAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field wrong_attempts", values[i])
			} else if value.Valid {
				_m.WrongAttempts = int(value.Int64)
			}
		case questionprogress.FieldLastAttempt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_attempt", values[i])
			} else if value.Valid {
				_m.LastAttempt = value.Time
			}
		case questionprogress.FieldNextReview:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review", values[i])
			} else if value.Valid {
				_m.NextReview = value.Time
			}
		case questionprogress.FieldMasteryLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_level", values[i])
			} else if value.Valid {
				_m.MasteryLevel = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuestionProgress.
// This includes values selected through modifiers, order, etc.
func (_m *QuestionProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuestionProgress.
// Note that you need to call QuestionProgress.Unwrap() before calling this method if this QuestionProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuestionProgress) Update() *QuestionProgressUpdateOne {
	return NewQuestionProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuestionProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuestionProgress) Unwrap() *QuestionProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuestionProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuestionProgress) String() string {
	var builder strings.Builder
	builder.WriteString("QuestionProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("correct_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAttempts))
	builder.WriteString(", ")
	builder.WriteString("wrong_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.WrongAttempts))
	builder.WriteString(", ")
	builder.WriteString("last_attempt=")
	builder.WriteString(_m.LastAttempt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("next_review=")
	builder.WriteString(_m.NextReview.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("mastery_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.MasteryLevel))
	builder.WriteByte(')')
	return builder.String()
}

// QuestionProgresses is a parsable slice of QuestionProgress.
type QuestionProgresses []*QuestionProgress
