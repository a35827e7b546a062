package quiz

import (
	"math"
	"testing"
)

func TestMatchRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"", "", 1},
		{"abc", "abc", 1},
		{"abc", "", 0},
		{"abcd", "bcde", 0.75},
		{"abcd", "xyz", 0},
		// Two blocks: "ab" and "cd", 4 matched of 12 characters.
		{"qabxcd", "abycdf", 2.0 * 4 / 12},
	}
	for _, tt := range tests {
		got := matchRatio(tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("matchRatio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMatchRatioSymmetricOnEqualInputs(t *testing.T) {
	a, b := "pulmonary circulation", "pulmonary ventilation"
	if ab, ba := matchRatio(a, b), matchRatio(b, a); math.Abs(ab-ba) > 1e-9 {
		t.Errorf("ratio not symmetric for equal-length inputs: %v vs %v", ab, ba)
	}
}

func TestLongestMatch(t *testing.T) {
	ai, bi, size := longestMatch([]rune("foo bar baz"), []rune("the bar is"))
	if size != 5 {
		t.Fatalf("size = %d, want 5", size)
	}
	if got := "foo bar baz"[ai : ai+size]; got != " bar " {
		t.Errorf("block in a = %q, want %q", got, " bar ")
	}
	if got := "the bar is"[bi : bi+size]; got != " bar " {
		t.Errorf("block in b = %q, want %q", got, " bar ")
	}
}
