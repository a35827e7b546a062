package bank

import "testing"

func TestValidateBankAcceptsWellFormed(t *testing.T) {
	raw := []byte(`{
		"metadata": {"source": "Anatomie Skript 3"},
		"questions": [
			{
				"id": "q1",
				"question": "Which bone is the longest?",
				"type": "multiple_choice",
				"options": ["Femur", "Tibia", "Humerus"],
				"correct_answer": 0,
				"topics": ["bones"]
			},
			{
				"question": "Describe the function of the alveoli.",
				"type": "text",
				"model_answer": "Gas exchange between air and blood.",
				"keywords": ["gas", "exchange", "blood"]
			}
		]
	}`)
	if err := ValidateBank(raw); err != nil {
		t.Fatalf("ValidateBank() = %v, want nil", err)
	}
}

func TestValidateBankRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not JSON", `{{`},
		{"top level array", `[{"question": "x"}]`},
		{"missing questions", `{"metadata": {"source": "s"}}`},
		{"question missing text", `{"questions": [{"type": "text", "model_answer": "a"}]}`},
		{"mc missing options", `{"questions": [{"question": "x", "type": "multiple_choice", "correct_answer": 1}]}`},
		{"mc missing correct index", `{"questions": [{"question": "x", "type": "multiple_choice", "options": ["a", "b"]}]}`},
		{"text missing model answer", `{"questions": [{"question": "x", "type": "text"}]}`},
		{"unknown type", `{"questions": [{"question": "x", "type": "cloze"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateBank([]byte(tt.raw)); err == nil {
				t.Errorf("ValidateBank accepted %s", tt.name)
			}
		})
	}
}

func TestValidateBankRejectsWholesale(t *testing.T) {
	// One good question plus one bad one must fail the entire file.
	raw := []byte(`{
		"questions": [
			{"question": "fine", "type": "text", "model_answer": "a"},
			{"question": "broken", "type": "multiple_choice"}
		]
	}`)
	if err := ValidateBank(raw); err == nil {
		t.Fatal("expected rejection of file containing one malformed question")
	}
}
