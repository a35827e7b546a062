package bank

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ParseBank validates and decodes one bank document. The whole
// document is rejected when any question is malformed.
func ParseBank(raw []byte) (*BankFile, error) {
	if err := ValidateBank(raw); err != nil {
		return nil, err
	}

	var file BankFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode question file: %w", err)
	}

	// Default the variant for legacy files that omit it.
	for i := range file.Questions {
		if file.Questions[i].Type == "" {
			file.Questions[i].Type = TypeMultipleChoice
		}
	}
	return &file, nil
}

// NewQuestionID generates an identifier for a question that arrived
// without one: "q" plus the first 8 hex digits of a UUID.
func NewQuestionID() string {
	return "q" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// Load reads every *.json bank file in dir into a fresh catalog.
// Invalid files and questions without IDs are skipped; loading never
// fails on bad content, only on I/O errors reading the directory.
func Load(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return NewCatalog(), nil
		}
		return nil, fmt.Errorf("read questions dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	catalog := NewCatalog()
	for _, name := range names {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		file, err := ParseBank(raw)
		if err != nil {
			// Invalid files already in the store directory are
			// skipped rather than failing the whole load.
			continue
		}
		source := name
		if file.Metadata != nil && file.Metadata.Source != "" {
			source = file.Metadata.Source
		}
		catalog.Add(file, source)
	}
	return catalog, nil
}

// Import validates the bank file at srcPath, assigns IDs to questions
// that lack one, stores the normalized document in dir, and adds the
// questions to the catalog. Returns the number of questions imported.
func Import(catalog *Catalog, dir, srcPath string) (int, error) {
	raw, err := os.ReadFile(srcPath)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", srcPath, err)
	}

	file, err := ParseBank(raw)
	if err != nil {
		return 0, err
	}

	for i := range file.Questions {
		if file.Questions[i].ID == "" {
			file.Questions[i].ID = NewQuestionID()
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create questions dir: %w", err)
	}

	// Write the normalized document so generated IDs survive reloads.
	normalized, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encode question file: %w", err)
	}
	dest := filepath.Join(dir, filepath.Base(srcPath))
	if err := os.WriteFile(dest, normalized, 0o644); err != nil {
		return 0, fmt.Errorf("store question file: %w", err)
	}

	source := filepath.Base(srcPath)
	if file.Metadata != nil && file.Metadata.Source != "" {
		source = file.Metadata.Source
	}
	catalog.Add(file, source)

	return len(file.Questions), nil
}

// DefaultQuestionsDir resolves the bank-file directory in priority
// order: LERNBOX_QUESTIONS env var, then $XDG_DATA_HOME/lernbox/questions,
// then ~/.local/share/lernbox/questions.
func DefaultQuestionsDir() (string, error) {
	if p := os.Getenv("LERNBOX_QUESTIONS"); p != "" {
		return p, os.MkdirAll(p, 0o755)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "lernbox", "questions")
	return p, os.MkdirAll(p, 0o755)
}
