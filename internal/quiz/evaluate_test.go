package quiz

import (
	"testing"

	"github.com/jheine/lernbox/internal/bank"
)

func TestEvaluateMultipleChoice(t *testing.T) {
	q := &bank.Question{
		Type:         bank.TypeMultipleChoice,
		Options:      []string{"trachea", "bronchi", "alveoli"},
		CorrectIndex: 1,
	}

	tests := []struct {
		answer string
		want   bool
	}{
		{"1", true},
		{" 1 ", true},
		{"0", false},
		{"2", false},
		{"bronchi", false},
		{"", false},
	}
	for _, tt := range tests {
		correct, label := Evaluate(q, tt.answer)
		if correct != tt.want {
			t.Errorf("Evaluate(%q) = %v, want %v", tt.answer, correct, tt.want)
		}
		if label != "bronchi" {
			t.Errorf("correct answer label = %q, want %q", label, "bronchi")
		}
	}
}

func TestEvaluateOutOfRangeIndexYieldsUnknown(t *testing.T) {
	q := &bank.Question{
		Type:         bank.TypeMultipleChoice,
		Options:      []string{"a", "b"},
		CorrectIndex: 7,
	}
	correct, label := Evaluate(q, "7")
	if !correct {
		t.Error("matching index must still evaluate correct")
	}
	if label != UnknownAnswer {
		t.Errorf("label = %q, want %q", label, UnknownAnswer)
	}

	q.CorrectIndex = -1
	_, label = Evaluate(q, "0")
	if label != UnknownAnswer {
		t.Errorf("label for negative index = %q, want %q", label, UnknownAnswer)
	}
}

func TestEvaluateKeywordCoverage(t *testing.T) {
	q := &bank.Question{
		Type:     bank.TypeText,
		Keywords: []string{"oxygen", "diffusion", "membrane", "gradient", "capillary"},
	}

	// 3 of 5 meets the 60% bar, 2 of 5 does not.
	correct, _ := Evaluate(q, "Oxygen crosses the membrane by diffusion.")
	if !correct {
		t.Error("3 of 5 keywords must pass")
	}
	correct, _ = Evaluate(q, "oxygen moves along a gradient")
	if correct {
		t.Error("2 of 5 keywords must fail")
	}
}

func TestEvaluateKeywordThresholdIsExact(t *testing.T) {
	// 2 of 3 found: 2 >= 0.6*3 = 1.8, so it passes without rounding.
	q := &bank.Question{
		Type:     bank.TypeText,
		Keywords: []string{"heart", "valve", "aorta"},
	}
	correct, _ := Evaluate(q, "the heart pumps through the aorta")
	if !correct {
		t.Error("2 of 3 keywords must pass the exact 1.8 threshold")
	}
}

func TestEvaluateKeywordsCaseInsensitive(t *testing.T) {
	q := &bank.Question{
		Type:     bank.TypeText,
		Keywords: []string{"ALVEOLI"},
	}
	correct, label := Evaluate(q, "gas exchange happens in the alveoli")
	if !correct {
		t.Error("keyword match must ignore case")
	}
	if label != q.ModelAnswer {
		t.Errorf("text label = %q, want model answer", label)
	}
}

func TestEvaluateSimilarityFallback(t *testing.T) {
	q := &bank.Question{
		Type:        bank.TypeText,
		ModelAnswer: "The diaphragm contracts and flattens during inhalation",
	}

	correct, label := Evaluate(q, "the diaphragm contracts and flattens during inhalation")
	if !correct {
		t.Error("case-insensitive exact match must pass")
	}
	if label != q.ModelAnswer {
		t.Errorf("label = %q, want model answer", label)
	}

	correct, _ = Evaluate(q, "the diaphragm contracts during inhalation")
	if !correct {
		t.Error("near match must clear the 0.7 ratio")
	}

	correct, _ = Evaluate(q, "no idea")
	if correct {
		t.Error("unrelated answer must fail")
	}
}
