package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jheine/lernbox/internal/bank"
)

func exportCatalog() *bank.Catalog {
	c := bank.NewCatalog()
	c.Add(&bank.BankFile{Questions: []bank.Question{
		{
			ID: "q-mc", Text: "Where does gas exchange happen?",
			Type:    bank.TypeMultipleChoice,
			Options: []string{"trachea", "alveoli"}, CorrectIndex: 1,
			Explanation: "The alveolar membrane is one cell thick.",
		},
		{
			ID: "q-text", Text: "Name the main inspiratory muscle.",
			Type: bank.TypeText, ModelAnswer: "The diaphragm",
		},
		{
			ID: "q-bad", Text: "Broken question",
			Type:    bank.TypeMultipleChoice,
			Options: []string{"a"}, CorrectIndex: 5,
		},
	}}, "test.json")
	return c
}

func TestWriteAnki(t *testing.T) {
	var sb strings.Builder
	n, err := WriteAnki(&sb, exportCatalog(), []string{"q-mc", "q-text", "q-missing"})
	if err != nil {
		t.Fatalf("WriteAnki: %v", err)
	}
	if n != 2 {
		t.Fatalf("wrote %d cards, want 2", n)
	}

	out := sb.String()
	wantMC := "Where does gas exchange happen?; alveoli\n\nThe alveolar membrane is one cell thick.\n"
	if !strings.Contains(out, wantMC) {
		t.Errorf("multiple-choice card missing or malformed:\n%s", out)
	}
	if !strings.Contains(out, "Name the main inspiratory muscle.; The diaphragm\n") {
		t.Errorf("text card missing or malformed:\n%s", out)
	}
}

func TestWriteAnkiInvalidIndex(t *testing.T) {
	var sb strings.Builder
	if _, err := WriteAnki(&sb, exportCatalog(), []string{"q-bad"}); err != nil {
		t.Fatalf("WriteAnki: %v", err)
	}
	if !strings.Contains(sb.String(), "Broken question; "+invalidIndexMarker) {
		t.Errorf("invalid index not marked:\n%s", sb.String())
	}
}

func TestAnkiFile(t *testing.T) {
	dir := t.TempDir()

	path, n, err := AnkiFile(exportCatalog(), []string{"q-text"}, filepath.Join(dir, "cards.txt"), "")
	if err != nil {
		t.Fatalf("AnkiFile: %v", err)
	}
	if n != 1 {
		t.Fatalf("wrote %d cards, want 1", n)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "Name the main inspiratory muscle.; The diaphragm\n" {
		t.Errorf("file content = %q", got)
	}
}

func TestAnkiFileDefaultPath(t *testing.T) {
	dir := t.TempDir()
	path, _, err := AnkiFile(exportCatalog(), []string{"q-text"}, "", dir)
	if err != nil {
		t.Fatalf("AnkiFile: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("default path %q not under %q", path, dir)
	}
	if !strings.HasPrefix(filepath.Base(path), "anki_export_") {
		t.Errorf("unexpected default name %q", filepath.Base(path))
	}
}
