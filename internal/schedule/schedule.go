// Package schedule implements the spaced repetition math: the review
// interval table keyed by mastery level and the level transitions on
// answers. Everything here is a pure function of its inputs; the
// store persists the results.
package schedule

import "time"

// Intervals defines the review interval in days for each mastery
// level. Level 0 reviews tomorrow, level 5 in a month.
var Intervals = []int{1, 2, 4, 7, 14, 30}

// MaxLevel is the highest mastery level.
const MaxLevel = 5

// NextReview computes when a question becomes due again, given its
// mastery level after the current answer. Levels outside [0,5] are
// clamped. A zero lastReviewed falls back to now.
func NextReview(masteryLevel int, lastReviewed, now time.Time) time.Time {
	if lastReviewed.IsZero() {
		lastReviewed = now
	}
	if masteryLevel < 0 {
		masteryLevel = 0
	}
	if masteryLevel > MaxLevel {
		masteryLevel = MaxLevel
	}
	return lastReviewed.AddDate(0, 0, Intervals[masteryLevel])
}

// NextLevel returns the mastery level after an answer: +1 on correct
// capped at MaxLevel, -1 on incorrect floored at 0.
func NextLevel(level int, correct bool) int {
	if correct {
		if level >= MaxLevel {
			return MaxLevel
		}
		return level + 1
	}
	if level <= 0 {
		return 0
	}
	return level - 1
}

// InitialLevel returns the mastery level for a question's very first
// answer. A first correct answer starts at 1; a first wrong answer
// starts at 0. The asymmetry is intentional.
func InitialLevel(correct bool) int {
	if correct {
		return 1
	}
	return 0
}
