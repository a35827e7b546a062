// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LearningSession is the predicate function for learningsession builders.
type LearningSession func(*sql.Selector)

// QuestionProgress is the predicate function for questionprogress builders.
type QuestionProgress func(*sql.Selector)

// SubjectScript is the predicate function for subjectscript builders.
type SubjectScript func(*sql.Selector)

// TopicProgress is the predicate function for topicprogress builders.
type TopicProgress func(*sql.Selector)
