package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jheine/lernbox/ent"
	"github.com/jheine/lernbox/ent/topicprogress"
)

// TopicProgress is the per-topic mastery aggregate.
type TopicProgress struct {
	TopicName         string
	TotalQuestions    int
	CorrectAnswers    int
	MasteryPercentage float64
}

// TopicRepo manages topic-progress rows.
type TopicRepo interface {
	// List returns all topic rows sorted by topic name.
	List(ctx context.Context) ([]TopicProgress, error)

	// Refresh reconciles the table against the catalog's per-topic
	// question counts: stale topics are deleted, counts are reset to
	// the catalog totals, and correct/mastery values of surviving
	// topics are preserved.
	Refresh(ctx context.Context, catalogCounts map[string]int) error
}

// ReconcileTopics computes the refresh delta as a pure function of
// the catalog counts and the existing rows: topics absent from the
// catalog are deleted, every catalog topic is upserted with its fresh
// total, and survivors keep their correct counters and mastery.
func ReconcileTopics(catalogCounts map[string]int, existing []TopicProgress) (toDelete []string, toUpsert []TopicProgress) {
	byName := make(map[string]TopicProgress, len(existing))
	for _, row := range existing {
		byName[row.TopicName] = row
		if _, live := catalogCounts[row.TopicName]; !live {
			toDelete = append(toDelete, row.TopicName)
		}
	}

	names := make([]string, 0, len(catalogCounts))
	for name := range catalogCounts {
		names = append(names, name)
	}
	sort.Strings(names)
	sort.Strings(toDelete)

	for _, name := range names {
		row := TopicProgress{TopicName: name, TotalQuestions: catalogCounts[name]}
		if prev, ok := byName[name]; ok {
			row.CorrectAnswers = prev.CorrectAnswers
			row.MasteryPercentage = prev.MasteryPercentage
		}
		toUpsert = append(toUpsert, row)
	}
	return toDelete, toUpsert
}

type topicRepo struct {
	client *ent.Client
	mu     *sync.Mutex
}

func (r *topicRepo) List(ctx context.Context) ([]TopicProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list(ctx)
}

func (r *topicRepo) list(ctx context.Context) ([]TopicProgress, error) {
	rows, err := r.client.TopicProgress.Query().
		Order(ent.Asc(topicprogress.FieldTopicName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topic progress: %w", err)
	}
	out := make([]TopicProgress, len(rows))
	for i, row := range rows {
		out[i] = TopicProgress{
			TopicName:         row.TopicName,
			TotalQuestions:    row.TotalQuestions,
			CorrectAnswers:    row.CorrectAnswers,
			MasteryPercentage: row.MasteryPercentage,
		}
	}
	return out, nil
}

func (r *topicRepo) Refresh(ctx context.Context, catalogCounts map[string]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.list(ctx)
	if err != nil {
		return err
	}
	toDelete, toUpsert := ReconcileTopics(catalogCounts, existing)

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin refresh: %w", err)
	}
	if err := applyReconciliation(ctx, tx, toDelete, toUpsert); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit refresh: %w", err)
	}
	return nil
}

func applyReconciliation(ctx context.Context, tx *ent.Tx, toDelete []string, toUpsert []TopicProgress) error {
	if len(toDelete) > 0 {
		_, err := tx.TopicProgress.Delete().
			Where(topicprogress.TopicNameIn(toDelete...)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete stale topics: %w", err)
		}
	}

	for _, row := range toUpsert {
		existing, err := tx.TopicProgress.Query().
			Where(topicprogress.TopicName(row.TopicName)).
			Only(ctx)
		switch {
		case ent.IsNotFound(err):
			_, err = tx.TopicProgress.Create().
				SetTopicName(row.TopicName).
				SetTotalQuestions(row.TotalQuestions).
				SetCorrectAnswers(row.CorrectAnswers).
				SetMasteryPercentage(row.MasteryPercentage).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("insert topic %q: %w", row.TopicName, err)
			}
		case err != nil:
			return fmt.Errorf("query topic %q: %w", row.TopicName, err)
		default:
			_, err = tx.TopicProgress.UpdateOne(existing).
				SetTotalQuestions(row.TotalQuestions).
				SetCorrectAnswers(row.CorrectAnswers).
				SetMasteryPercentage(row.MasteryPercentage).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("update topic %q: %w", row.TopicName, err)
			}
		}
	}
	return nil
}
