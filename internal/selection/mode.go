package selection

// Mode names a question-selection policy.
type Mode string

const (
	// ModeNormal picks uniformly at random from the filtered pool.
	ModeNormal Mode = "normal"

	// ModeWeakSpots prioritizes questions with the lowest success
	// rate. Never-attempted questions score a neutral 50, so they
	// rank between known-weak and known-strong questions. Whether
	// unseen should instead outrank known-weak is an open product
	// question; the documented behavior is kept as-is.
	ModeWeakSpots Mode = "weak_spots"

	// ModeSpacedRepetition serves the due-review queue.
	ModeSpacedRepetition Mode = "spaced_repetition"

	// ModeExam balances coverage across topics via round-robin.
	ModeExam Mode = "exam"
)

// ParseMode maps a mode name to its Mode. Unknown names fall back to
// ModeNormal; the second return reports whether the name was known so
// the boundary can warn.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeNormal, ModeWeakSpots, ModeSpacedRepetition, ModeExam:
		return Mode(s), true
	}
	return ModeNormal, false
}
