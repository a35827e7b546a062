package quiz

import (
	"strconv"
	"strings"

	"github.com/jheine/lernbox/internal/bank"
)

// UnknownAnswer is the display label used when a multiple-choice
// question stores a correct index outside its options list.
const UnknownAnswer = "Unknown"

const (
	// keywordCoverage is the fraction of a question's keywords that a
	// free-text answer must contain to count as correct.
	keywordCoverage = 0.6

	// similarityThreshold is the minimum match ratio against the model
	// answer when a text question defines no keywords.
	similarityThreshold = 0.7
)

// Evaluate grades an answer against the question's correct-answer
// definition and returns the verdict together with a display label for
// the correct answer.
//
// Multiple choice compares the submitted option index with the stored
// one; numeric strings are accepted. Text questions pass on keyword
// coverage when keywords are defined, otherwise on similarity to the
// model answer. Both text checks are case-insensitive.
func Evaluate(q *bank.Question, answer string) (correct bool, correctAnswer string) {
	if q.Type == bank.TypeText {
		return evaluateText(q, answer), q.ModelAnswer
	}
	return evaluateChoice(q, answer)
}

func evaluateChoice(q *bank.Question, answer string) (bool, string) {
	label := UnknownAnswer
	if q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options) {
		label = q.Options[q.CorrectIndex]
	}
	idx, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return false, label
	}
	return idx == q.CorrectIndex, label
}

func evaluateText(q *bank.Question, answer string) bool {
	lower := strings.ToLower(answer)
	if len(q.Keywords) > 0 {
		found := 0
		for _, kw := range q.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				found++
			}
		}
		return float64(found) >= keywordCoverage*float64(len(q.Keywords))
	}
	return matchRatio(lower, strings.ToLower(q.ModelAnswer)) >= similarityThreshold
}
