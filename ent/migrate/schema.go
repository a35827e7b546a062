// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LearningSessionsColumns holds the columns for the "learning_sessions" table.
	LearningSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "date", Type: field.TypeTime},
		{Name: "duration_minutes", Type: field.TypeInt, Default: 0},
		{Name: "questions_answered", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "topics", Type: field.TypeString, Default: ""},
	}
	// LearningSessionsTable holds the schema information for the "learning_sessions" table.
	LearningSessionsTable = &schema.Table{
		Name:       "learning_sessions",
		Columns:    LearningSessionsColumns,
		PrimaryKey: []*schema.Column{LearningSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningsession_date",
				Unique:  false,
				Columns: []*schema.Column{LearningSessionsColumns[1]},
			},
		},
	}
	// QuestionProgressesColumns holds the columns for the "question_progresses" table.
	QuestionProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "correct_attempts", Type: field.TypeInt, Default: 0},
		{Name: "wrong_attempts", Type: field.TypeInt, Default: 0},
		{Name: "last_attempt", Type: field.TypeTime, Nullable: true},
		{Name: "next_review", Type: field.TypeTime, Nullable: true},
		{Name: "mastery_level", Type: field.TypeInt, Default: 0},
	}
	// QuestionProgressesTable holds the schema information for the "question_progresses" table.
	QuestionProgressesTable = &schema.Table{
		Name:       "question_progresses",
		Columns:    QuestionProgressesColumns,
		PrimaryKey: []*schema.Column{QuestionProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionprogress_next_review",
				Unique:  false,
				Columns: []*schema.Column{QuestionProgressesColumns[5]},
			},
			{
				Name:    "questionprogress_mastery_level",
				Unique:  false,
				Columns: []*schema.Column{QuestionProgressesColumns[6]},
			},
		},
	}
	// SubjectScriptsColumns holds the columns for the "subject_scripts" table.
	SubjectScriptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "subject_name", Type: field.TypeString},
		{Name: "script_name", Type: field.TypeString},
	}
	// SubjectScriptsTable holds the schema information for the "subject_scripts" table.
	SubjectScriptsTable = &schema.Table{
		Name:       "subject_scripts",
		Columns:    SubjectScriptsColumns,
		PrimaryKey: []*schema.Column{SubjectScriptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subjectscript_subject_name_script_name",
				Unique:  true,
				Columns: []*schema.Column{SubjectScriptsColumns[1], SubjectScriptsColumns[2]},
			},
		},
	}
	// TopicProgressesColumns holds the columns for the "topic_progresses" table.
	TopicProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic_name", Type: field.TypeString, Unique: true},
		{Name: "total_questions", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "mastery_percentage", Type: field.TypeFloat64, Default: 0},
	}
	// TopicProgressesTable holds the schema information for the "topic_progresses" table.
	TopicProgressesTable = &schema.Table{
		Name:       "topic_progresses",
		Columns:    TopicProgressesColumns,
		PrimaryKey: []*schema.Column{TopicProgressesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LearningSessionsTable,
		QuestionProgressesTable,
		SubjectScriptsTable,
		TopicProgressesTable,
	}
)

func init() {
}
