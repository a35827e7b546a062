// Package bank holds the in-memory question catalog: questions loaded
// from JSON bank files, their topic/source/subject indices, and
// filtered lookup. The catalog is read-heavy and only mutated by a
// full reload; persistent progress lives in internal/store.
package bank

import "strings"

// QuestionType discriminates the two question variants.
type QuestionType string

const (
	// TypeMultipleChoice means the learner picks one of the options.
	TypeMultipleChoice QuestionType = "multiple_choice"

	// TypeText means the learner writes a free-text answer graded
	// against keywords or the model answer.
	TypeText QuestionType = "text"
)

// Question is a single catalog entry. Immutable once loaded.
type Question struct {
	// ID uniquely identifies the question. Generated at import time
	// when the bank file provides none.
	ID string `json:"id"`

	// Text is the prompt displayed to the learner.
	Text string `json:"question"`

	// Type selects the variant. Defaults to multiple_choice when the
	// bank file omits it.
	Type QuestionType `json:"type"`

	// Options and CorrectIndex are populated for multiple choice.
	// CorrectIndex is zero-based into Options.
	Options      []string `json:"options,omitempty"`
	CorrectIndex int      `json:"correct_answer"`

	// ModelAnswer and Keywords are populated for text questions.
	// When Keywords is non-empty, grading is keyword coverage;
	// otherwise similarity against ModelAnswer.
	ModelAnswer string   `json:"model_answer,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`

	// Explanation is shown after answering. May be empty.
	Explanation string `json:"explanation,omitempty"`

	// SourceReference is free text; the first whitespace token is the
	// subject and the remainder the script.
	SourceReference string `json:"source_reference,omitempty"`

	// Topics are the topic tags. A question may carry none.
	Topics []string `json:"topics,omitempty"`

	// Difficulty is a free-form label normalized through the synonym
	// table at filter time.
	Difficulty string `json:"difficulty,omitempty"`
}

// HasTopic reports whether the question carries the given topic tag.
func (q *Question) HasTopic(topic string) bool {
	for _, t := range q.Topics {
		if t == topic {
			return true
		}
	}
	return false
}

// Subject returns the subject token of the source reference, or "".
func (q *Question) Subject() string {
	s, _ := SplitSourceReference(q.SourceReference)
	return s
}

// Script returns the script part of the source reference, or "".
func (q *Question) Script() string {
	_, s := SplitSourceReference(q.SourceReference)
	return s
}

// SplitSourceReference splits a source reference into its subject and
// script parts: the first whitespace-separated token is the subject,
// the rest (joined) is the script. Anything after a comma is ignored.
// Returns empty strings when there are fewer than two tokens.
func SplitSourceReference(ref string) (subject, script string) {
	if i := strings.IndexByte(ref, ','); i >= 0 {
		ref = ref[:i]
	}
	parts := strings.Fields(ref)
	if len(parts) < 2 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// BankFile is the on-disk shape of a question bank document.
type BankFile struct {
	Metadata  *BankMetadata `json:"metadata,omitempty"`
	Questions []Question    `json:"questions"`
}

// BankMetadata carries optional document-level fields.
type BankMetadata struct {
	Source string `json:"source,omitempty"`
}
