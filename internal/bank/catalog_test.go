package bank

import (
	"reflect"
	"testing"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := NewCatalog()
	c.Add(&BankFile{Questions: []Question{
		{
			ID: "q1", Text: "Longest bone?", Type: TypeMultipleChoice,
			Options: []string{"Femur", "Tibia"}, CorrectIndex: 0,
			Topics: []string{"bones"}, Difficulty: "leicht",
			SourceReference: "Anatomie Skript 3",
		},
		{
			ID: "q2", Text: "Alveoli function?", Type: TypeText,
			ModelAnswer: "Gas exchange.", Topics: []string{"lungs"},
			Difficulty: "hard", SourceReference: "Physiologie Skript 1",
		},
		{
			ID: "q3", Text: "Heart chambers?", Type: TypeMultipleChoice,
			Options: []string{"2", "3", "4"}, CorrectIndex: 2,
			Topics: []string{"heart", "bones"}, Difficulty: "medium",
			SourceReference: "Anatomie Skript 4",
		},
	}}, "anatomy.json")
	return c
}

func filteredIDs(qs []*Question) []string {
	ids := make([]string, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	return ids
}

func TestCatalogAccessors(t *testing.T) {
	c := testCatalog(t)

	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
	if _, ok := c.Get("q2"); !ok {
		t.Error("Get(q2) not found")
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) unexpectedly found")
	}

	wantTopics := []string{"bones", "heart", "lungs"}
	if got := c.Topics(); !reflect.DeepEqual(got, wantTopics) {
		t.Errorf("Topics() = %v, want %v", got, wantTopics)
	}
	if got := c.Sources(); !reflect.DeepEqual(got, []string{"anatomy.json"}) {
		t.Errorf("Sources() = %v", got)
	}
}

func TestFilterByTopic(t *testing.T) {
	c := testCatalog(t)
	got := filteredIDs(c.Filter(Filter{Topics: []string{"bones"}}))
	want := []string{"q1", "q3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter(bones) = %v, want %v", got, want)
	}
}

func TestFilterByDifficultySynonym(t *testing.T) {
	c := testCatalog(t)
	// "easy" must match the German label "leicht".
	got := filteredIDs(c.Filter(Filter{Difficulty: "easy"}))
	if !reflect.DeepEqual(got, []string{"q1"}) {
		t.Errorf("Filter(easy) = %v, want [q1]", got)
	}
	// And "schwer" must match "hard".
	got = filteredIDs(c.Filter(Filter{Difficulty: "schwer"}))
	if !reflect.DeepEqual(got, []string{"q2"}) {
		t.Errorf("Filter(schwer) = %v, want [q2]", got)
	}
}

func TestFilterBySubjectAndScript(t *testing.T) {
	c := testCatalog(t)
	got := filteredIDs(c.Filter(Filter{Subject: "Anatomie"}))
	if !reflect.DeepEqual(got, []string{"q1", "q3"}) {
		t.Errorf("Filter(subject Anatomie) = %v", got)
	}
	got = filteredIDs(c.Filter(Filter{Subject: "Anatomie", Script: "Skript 4"}))
	if !reflect.DeepEqual(got, []string{"q3"}) {
		t.Errorf("Filter(subject+script) = %v", got)
	}
}

func TestFilterByType(t *testing.T) {
	c := testCatalog(t)
	got := filteredIDs(c.Filter(Filter{Type: TypeText}))
	if !reflect.DeepEqual(got, []string{"q2"}) {
		t.Errorf("Filter(text) = %v", got)
	}
}

func TestFilterEmptyReturnsAll(t *testing.T) {
	c := testCatalog(t)
	if got := len(c.Filter(Filter{})); got != 3 {
		t.Errorf("empty filter returned %d questions, want 3", got)
	}
}

func TestFilterNoMatches(t *testing.T) {
	c := testCatalog(t)
	if got := c.Filter(Filter{Topics: []string{"nonexistent"}}); len(got) != 0 {
		t.Errorf("expected empty result, got %v", filteredIDs(got))
	}
}

func TestTopicCounts(t *testing.T) {
	c := testCatalog(t)
	got := c.TopicCounts()
	want := map[string]int{"bones": 2, "lungs": 1, "heart": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopicCounts() = %v, want %v", got, want)
	}
}

func TestSubjectScripts(t *testing.T) {
	c := testCatalog(t)
	got := c.SubjectScripts()
	if len(got) != 3 {
		t.Fatalf("SubjectScripts() returned %d pairs, want 3", len(got))
	}
}

func TestSplitSourceReference(t *testing.T) {
	tests := []struct {
		ref     string
		subject string
		script  string
	}{
		{"Anatomie Skript 3", "Anatomie", "Skript 3"},
		{"Anatomie Skript 3, Seite 12", "Anatomie", "Skript 3"},
		{"Anatomie", "", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		subject, script := SplitSourceReference(tt.ref)
		if subject != tt.subject || script != tt.script {
			t.Errorf("SplitSourceReference(%q) = (%q, %q), want (%q, %q)",
				tt.ref, subject, script, tt.subject, tt.script)
		}
	}
}
