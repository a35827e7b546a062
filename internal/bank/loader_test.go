package bank

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleBank = `{
	"metadata": {"source": "Anatomie Skript 3"},
	"questions": [
		{
			"question": "Longest bone?",
			"type": "multiple_choice",
			"options": ["Femur", "Tibia"],
			"correct_answer": 0,
			"topics": ["bones"]
		},
		{
			"id": "q-alveoli",
			"question": "Alveoli function?",
			"type": "text",
			"model_answer": "Gas exchange."
		}
	]
}`

func TestImportAssignsIDsAndPersists(t *testing.T) {
	src := filepath.Join(t.TempDir(), "anatomy.json")
	if err := os.WriteFile(src, []byte(sampleBank), 0o644); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	catalog := NewCatalog()
	count, err := Import(catalog, dir, src)
	if err != nil {
		t.Fatalf("Import() = %v", err)
	}
	if count != 2 {
		t.Errorf("imported %d questions, want 2", count)
	}
	if catalog.Len() != 2 {
		t.Errorf("catalog has %d questions, want 2", catalog.Len())
	}

	// The question without an ID got one generated.
	for _, q := range catalog.All() {
		if q.ID == "" {
			t.Error("question left without an ID after import")
		}
	}

	// A reload from the stored copy sees the same IDs.
	reloaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if reloaded.Len() != 2 {
		t.Errorf("reloaded %d questions, want 2", reloaded.Len())
	}
	for _, id := range catalog.IDs() {
		if _, ok := reloaded.Get(id); !ok {
			t.Errorf("question %s missing after reload", id)
		}
	}
}

func TestImportRejectsMalformedFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "broken.json")
	bad := `{"questions": [{"question": "x", "type": "multiple_choice"}]}`
	if err := os.WriteFile(src, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	catalog := NewCatalog()
	if _, err := Import(catalog, dir, src); err == nil {
		t.Fatal("expected import failure for malformed file")
	}

	// Catalog untouched, nothing copied.
	if catalog.Len() != 0 {
		t.Errorf("catalog has %d questions after failed import, want 0", catalog.Len())
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("questions dir has %d files after failed import, want 0", len(entries))
	}
}

func TestLoadSkipsInvalidFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "good.json"), []byte(sampleBank), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{{`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	catalog, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	// Only the IDed question from good.json loads; the ID-less one is
	// skipped at load time (IDs are assigned at import, not load).
	if _, ok := catalog.Get("q-alveoli"); !ok {
		t.Error("expected q-alveoli from good.json")
	}
}

func TestLoadMissingDirIsEmpty(t *testing.T) {
	catalog, err := Load(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if catalog.Len() != 0 {
		t.Errorf("catalog has %d questions, want 0", catalog.Len())
	}
}

func TestNewQuestionID(t *testing.T) {
	id := NewQuestionID()
	if !strings.HasPrefix(id, "q") || len(id) != 9 {
		t.Errorf("NewQuestionID() = %q, want q + 8 hex chars", id)
	}
	if id == NewQuestionID() {
		t.Error("consecutive IDs collided")
	}
}
