// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jheine/lernbox/ent/learningsession"
	"github.com/jheine/lernbox/ent/questionprogress"
	"github.com/jheine/lernbox/ent/schema"
	"github.com/jheine/lernbox/ent/subjectscript"
	"github.com/jheine/lernbox/ent/topicprogress"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	learningsessionFields := schema.LearningSession{}.Fields()
	_ = learningsessionFields
	// learningsessionDescDate is the schema descriptor for date field.
	learningsessionDescDate := learningsessionFields[0].Descriptor()
	// learningsession.DefaultDate holds the default value on creation for the date field.
	learningsession.DefaultDate = learningsessionDescDate.Default.(func() time.Time)
	// learningsessionDescDurationMinutes is the schema descriptor for duration_minutes field.
	learningsessionDescDurationMinutes := learningsessionFields[1].Descriptor()
	// learningsession.DefaultDurationMinutes holds the default value on creation for the duration_minutes field.
	learningsession.DefaultDurationMinutes = learningsessionDescDurationMinutes.Default.(int)
	// learningsession.DurationMinutesValidator is a validator for the "duration_minutes" field. It is called by the builders before save.
	learningsession.DurationMinutesValidator = learningsessionDescDurationMinutes.Validators[0].(func(int) error)
	// learningsessionDescQuestionsAnswered is the schema descriptor for questions_answered field.
	learningsessionDescQuestionsAnswered := learningsessionFields[2].Descriptor()
	// learningsession.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	learningsession.DefaultQuestionsAnswered = learningsessionDescQuestionsAnswered.Default.(int)
	// learningsession.QuestionsAnsweredValidator is a validator for the "questions_answered" field. It is called by the builders before save.
	learningsession.QuestionsAnsweredValidator = learningsessionDescQuestionsAnswered.Validators[0].(func(int) error)
	// learningsessionDescCorrectAnswers is the schema descriptor for correct_answers field.
	learningsessionDescCorrectAnswers := learningsessionFields[3].Descriptor()
	// learningsession.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	learningsession.DefaultCorrectAnswers = learningsessionDescCorrectAnswers.Default.(int)
	// learningsession.CorrectAnswersValidator is a validator for the "correct_answers" field. It is called by the builders before save.
	learningsession.CorrectAnswersValidator = learningsessionDescCorrectAnswers.Validators[0].(func(int) error)
	// learningsessionDescTopics is the schema descriptor for topics field.
	learningsessionDescTopics := learningsessionFields[4].Descriptor()
	// learningsession.DefaultTopics holds the default value on creation for the topics field.
	learningsession.DefaultTopics = learningsessionDescTopics.Default.(string)
	questionprogressFields := schema.QuestionProgress{}.Fields()
	_ = questionprogressFields
	// questionprogressDescQuestionID is the schema descriptor for question_id field.
	questionprogressDescQuestionID := questionprogressFields[0].Descriptor()
	// questionprogress.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	questionprogress.QuestionIDValidator = questionprogressDescQuestionID.Validators[0].(func(string) error)
	// questionprogressDescCorrectAttempts is the schema descriptor for correct_attempts field.
	questionprogressDescCorrectAttempts := questionprogressFields[1].Descriptor()
	// questionprogress.DefaultCorrectAttempts holds the default value on creation for the correct_attempts field.
	questionprogress.DefaultCorrectAttempts = questionprogressDescCorrectAttempts.Default.(int)
	// questionprogress.CorrectAttemptsValidator is a validator for the "correct_attempts" field. It is called by the builders before save.
	questionprogress.CorrectAttemptsValidator = questionprogressDescCorrectAttempts.Validators[0].(func(int) error)
	// questionprogressDescWrongAttempts is the schema descriptor for wrong_attempts field.
	questionprogressDescWrongAttempts := questionprogressFields[2].Descriptor()
	// questionprogress.DefaultWrongAttempts holds the default value on creation for the wrong_attempts field.
	questionprogress.DefaultWrongAttempts = questionprogressDescWrongAttempts.Default.(int)
	// questionprogress.WrongAttemptsValidator is a validator for the "wrong_attempts" field. It is called by the builders before save.
	questionprogress.WrongAttemptsValidator = questionprogressDescWrongAttempts.Validators[0].(func(int) error)
	// questionprogressDescMasteryLevel is the schema descriptor for mastery_level field.
	questionprogressDescMasteryLevel := questionprogressFields[5].Descriptor()
	// questionprogress.DefaultMasteryLevel holds the default value on creation for the mastery_level field.
	questionprogress.DefaultMasteryLevel = questionprogressDescMasteryLevel.Default.(int)
	// questionprogress.MasteryLevelValidator is a validator for the "mastery_level" field. It is called by the builders before save.
	questionprogress.MasteryLevelValidator = func() func(int) error {
		validators := questionprogressDescMasteryLevel.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(mastery_level int) error {
			for _, fn := range fns {
				if err := fn(mastery_level); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	subjectscriptFields := schema.SubjectScript{}.Fields()
	_ = subjectscriptFields
	// subjectscriptDescSubjectName is the schema descriptor for subject_name field.
	subjectscriptDescSubjectName := subjectscriptFields[0].Descriptor()
	// subjectscript.SubjectNameValidator is a validator for the "subject_name" field. It is called by the builders before save.
	subjectscript.SubjectNameValidator = subjectscriptDescSubjectName.Validators[0].(func(string) error)
	// subjectscriptDescScriptName is the schema descriptor for script_name field.
	subjectscriptDescScriptName := subjectscriptFields[1].Descriptor()
	// subjectscript.ScriptNameValidator is a validator for the "script_name" field. It is called by the builders before save.
	subjectscript.ScriptNameValidator = subjectscriptDescScriptName.Validators[0].(func(string) error)
	topicprogressFields := schema.TopicProgress{}.Fields()
	_ = topicprogressFields
	// topicprogressDescTopicName is the schema descriptor for topic_name field.
	topicprogressDescTopicName := topicprogressFields[0].Descriptor()
	// topicprogress.TopicNameValidator is a validator for the "topic_name" field. It is called by the builders before save.
	topicprogress.TopicNameValidator = topicprogressDescTopicName.Validators[0].(func(string) error)
	// topicprogressDescTotalQuestions is the schema descriptor for total_questions field.
	topicprogressDescTotalQuestions := topicprogressFields[1].Descriptor()
	// topicprogress.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	topicprogress.DefaultTotalQuestions = topicprogressDescTotalQuestions.Default.(int)
	// topicprogress.TotalQuestionsValidator is a validator for the "total_questions" field. It is called by the builders before save.
	topicprogress.TotalQuestionsValidator = topicprogressDescTotalQuestions.Validators[0].(func(int) error)
	// topicprogressDescCorrectAnswers is the schema descriptor for correct_answers field.
	topicprogressDescCorrectAnswers := topicprogressFields[2].Descriptor()
	// topicprogress.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	topicprogress.DefaultCorrectAnswers = topicprogressDescCorrectAnswers.Default.(int)
	// topicprogress.CorrectAnswersValidator is a validator for the "correct_answers" field. It is called by the builders before save.
	topicprogress.CorrectAnswersValidator = topicprogressDescCorrectAnswers.Validators[0].(func(int) error)
	// topicprogressDescMasteryPercentage is the schema descriptor for mastery_percentage field.
	topicprogressDescMasteryPercentage := topicprogressFields[3].Descriptor()
	// topicprogress.DefaultMasteryPercentage holds the default value on creation for the mastery_percentage field.
	topicprogress.DefaultMasteryPercentage = topicprogressDescMasteryPercentage.Default.(float64)
}
