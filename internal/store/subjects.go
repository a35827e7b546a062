package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/jheine/lernbox/ent"
	"github.com/jheine/lernbox/ent/subjectscript"
)

// SubjectScript is one (subject, script) filter pair.
type SubjectScript struct {
	Subject string
	Script  string
}

// SubjectRepo manages the subject/script filter index.
type SubjectRepo interface {
	// Add inserts a pair; an already-known pair is a no-op.
	Add(ctx context.Context, subject, script string) error

	// Rebuild replaces the whole table with the given pairs.
	Rebuild(ctx context.Context, pairs []SubjectScript) error

	// List returns all pairs, ordered by subject then script.
	List(ctx context.Context) ([]SubjectScript, error)

	// Subjects returns the distinct subject names, sorted.
	Subjects(ctx context.Context) ([]string, error)

	// ScriptsFor returns the scripts recorded for one subject, sorted.
	ScriptsFor(ctx context.Context, subject string) ([]string, error)
}

type subjectRepo struct {
	client *ent.Client
	mu     *sync.Mutex
}

func (r *subjectRepo) Add(ctx context.Context, subject, script string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.add(ctx, r.client, subject, script)
}

func (r *subjectRepo) add(ctx context.Context, client *ent.Client, subject, script string) error {
	exists, err := client.SubjectScript.Query().
		Where(
			subjectscript.SubjectName(subject),
			subjectscript.ScriptName(script),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("query subject/script: %w", err)
	}
	if exists {
		return nil
	}
	_, err = client.SubjectScript.Create().
		SetSubjectName(subject).
		SetScriptName(script).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("insert subject/script: %w", err)
	}
	return nil
}

func (r *subjectRepo) Rebuild(ctx context.Context, pairs []SubjectScript) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin rebuild: %w", err)
	}
	if err := rebuildPairs(ctx, tx, pairs); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rebuild: %w", err)
	}
	return nil
}

func rebuildPairs(ctx context.Context, tx *ent.Tx, pairs []SubjectScript) error {
	if _, err := tx.SubjectScript.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear subject/script table: %w", err)
	}
	seen := make(map[SubjectScript]bool, len(pairs))
	for _, p := range pairs {
		if p.Subject == "" || p.Script == "" || seen[p] {
			continue
		}
		seen[p] = true
		_, err := tx.SubjectScript.Create().
			SetSubjectName(p.Subject).
			SetScriptName(p.Script).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("insert subject/script: %w", err)
		}
	}
	return nil
}

func (r *subjectRepo) List(ctx context.Context) ([]SubjectScript, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.client.SubjectScript.Query().
		Order(
			ent.Asc(subjectscript.FieldSubjectName),
			ent.Asc(subjectscript.FieldScriptName),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query subject/script pairs: %w", err)
	}
	out := make([]SubjectScript, len(rows))
	for i, row := range rows {
		out[i] = SubjectScript{Subject: row.SubjectName, Script: row.ScriptName}
	}
	return out, nil
}

func (r *subjectRepo) Subjects(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subjects, err := r.client.SubjectScript.Query().
		Unique(true).
		Order(ent.Asc(subjectscript.FieldSubjectName)).
		Select(subjectscript.FieldSubjectName).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query subjects: %w", err)
	}
	return subjects, nil
}

func (r *subjectRepo) ScriptsFor(ctx context.Context, subject string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	scripts, err := r.client.SubjectScript.Query().
		Where(subjectscript.SubjectName(subject)).
		Order(ent.Asc(subjectscript.FieldScriptName)).
		Select(subjectscript.FieldScriptName).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query scripts for %q: %w", subject, err)
	}
	return scripts, nil
}
