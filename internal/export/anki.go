// Package export writes catalog questions to flashcard import formats.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jheine/lernbox/internal/bank"
)

// invalidIndexMarker replaces the answer side when a multiple-choice
// question stores a correct index outside its options list.
const invalidIndexMarker = "Error: Invalid correct answer index"

// WriteAnki writes one "front; back" line per question, the import
// format Anki's text importer reads. Identifiers that do not resolve
// in the catalog are skipped; the count of written lines is returned.
func WriteAnki(w io.Writer, catalog *bank.Catalog, ids []string) (int, error) {
	written := 0
	for _, id := range ids {
		q, ok := catalog.Get(id)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s; %s\n", q.Text, ankiBack(q)); err != nil {
			return written, fmt.Errorf("write card: %w", err)
		}
		written++
	}
	return written, nil
}

func ankiBack(q *bank.Question) string {
	if q.Type != bank.TypeMultipleChoice {
		return q.ModelAnswer
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return invalidIndexMarker
	}
	back := q.Options[q.CorrectIndex]
	if q.Explanation != "" {
		back += "\n\n" + q.Explanation
	}
	return back
}

// AnkiFile exports the questions to path, creating parent directories
// as needed. An empty path picks a timestamped file in dir.
func AnkiFile(catalog *bank.Catalog, ids []string, path, dir string) (string, int, error) {
	if path == "" {
		path = filepath.Join(dir, fmt.Sprintf("anki_export_%s.txt", time.Now().Format("20060102_150405")))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", 0, fmt.Errorf("create export dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	n, err := WriteAnki(f, catalog, ids)
	if err != nil {
		return "", n, err
	}
	if err := f.Close(); err != nil {
		return "", n, fmt.Errorf("close export file: %w", err)
	}
	return path, n, nil
}
