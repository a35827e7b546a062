package bank

import "strings"

// Difficulty is a normalized difficulty class.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// difficultySynonyms maps the free-form labels found in bank files to
// their normalized class. Bank files in the wild mix English and
// German labels, so both are accepted.
var difficultySynonyms = map[string]Difficulty{
	"easy":      DifficultyEasy,
	"leicht":    DifficultyEasy,
	"einfach":   DifficultyEasy,
	"medium":    DifficultyMedium,
	"mittel":    DifficultyMedium,
	"average":   DifficultyMedium,
	"hard":      DifficultyHard,
	"schwer":    DifficultyHard,
	"difficult": DifficultyHard,
}

// NormalizeDifficulty maps a free-form difficulty label to its class.
// The second return is false when the label is not in the synonym
// table; callers then fall back to raw case-insensitive comparison.
func NormalizeDifficulty(label string) (Difficulty, bool) {
	d, ok := difficultySynonyms[strings.ToLower(strings.TrimSpace(label))]
	return d, ok
}

// MatchesDifficulty reports whether a question's difficulty label
// matches the requested one, either through the synonym table or by
// raw case-insensitive equality.
func MatchesDifficulty(questionLabel, requested string) bool {
	if requested == "" {
		return true
	}
	qc, qok := NormalizeDifficulty(questionLabel)
	rc, rok := NormalizeDifficulty(requested)
	if qok && rok {
		return qc == rc
	}
	return strings.EqualFold(strings.TrimSpace(questionLabel), strings.TrimSpace(requested))
}
