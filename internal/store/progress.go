package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jheine/lernbox/ent"
	"github.com/jheine/lernbox/ent/questionprogress"
	"github.com/jheine/lernbox/ent/topicprogress"
	"github.com/jheine/lernbox/internal/schedule"
)

// Progress is the persisted review state of one question.
type Progress struct {
	QuestionID      string
	CorrectAttempts int
	WrongAttempts   int
	LastAttempt     time.Time
	NextReview      time.Time
	MasteryLevel    int
}

// SuccessRate returns the percentage of correct attempts, or -1 when
// the question has never been attempted.
func (p *Progress) SuccessRate() float64 {
	total := p.CorrectAttempts + p.WrongAttempts
	if total == 0 {
		return -1
	}
	return float64(p.CorrectAttempts) / float64(total) * 100
}

// ProgressRepo manages per-question progress rows.
type ProgressRepo interface {
	// Get returns the progress for a question, or nil if the question
	// has never been attempted. An unknown ID is not an error.
	Get(ctx context.Context, questionID string) (*Progress, error)

	// GetAll returns every progress row, keyed by question ID.
	GetAll(ctx context.Context) (map[string]*Progress, error)

	// Update applies one answer in a single transaction: counters and
	// mastery level adjust, next_review is recomputed from the new
	// level, and on a correct answer every listed topic's correct
	// count and mastery percentage advance. Any failure rolls the
	// whole update back.
	Update(ctx context.Context, questionID string, topics []string, correct bool, now time.Time) error

	// Due returns up to limit question IDs due for review at now
	// (next_review at or before now, or no recorded review date),
	// ordered by mastery level then last attempt, oldest first.
	// When fewer than limit are due, never-attempted IDs from
	// catalogIDs fill the remainder in unspecified order.
	Due(ctx context.Context, limit int, catalogIDs []string, now time.Time) ([]string, error)
}

type progressRepo struct {
	client *ent.Client
	mu     *sync.Mutex
}

func (r *progressRepo) Get(ctx context.Context, questionID string) (*Progress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, err := r.client.QuestionProgress.Query().
		Where(questionprogress.QuestionID(questionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query question progress: %w", err)
	}
	return progressFromRow(row), nil
}

func (r *progressRepo) GetAll(ctx context.Context) (map[string]*Progress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.client.QuestionProgress.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query all question progress: %w", err)
	}
	out := make(map[string]*Progress, len(rows))
	for _, row := range rows {
		out[row.QuestionID] = progressFromRow(row)
	}
	return out, nil
}

func (r *progressRepo) Update(ctx context.Context, questionID string, topics []string, correct bool, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin update: %w", err)
	}

	if err := applyAnswer(ctx, tx, questionID, topics, correct, now); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update: %w", err)
	}
	return nil
}

// applyAnswer performs the read-modify-write inside tx.
func applyAnswer(ctx context.Context, tx *ent.Tx, questionID string, topics []string, correct bool, now time.Time) error {
	row, err := tx.QuestionProgress.Query().
		Where(questionprogress.QuestionID(questionID)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		level := schedule.InitialLevel(correct)
		correctAttempts, wrongAttempts := 0, 1
		if correct {
			correctAttempts, wrongAttempts = 1, 0
		}
		_, err = tx.QuestionProgress.Create().
			SetQuestionID(questionID).
			SetCorrectAttempts(correctAttempts).
			SetWrongAttempts(wrongAttempts).
			SetLastAttempt(now).
			SetNextReview(schedule.NextReview(level, now, now)).
			SetMasteryLevel(level).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create question progress: %w", err)
		}

	case err != nil:
		return fmt.Errorf("query question progress: %w", err)

	default:
		level := schedule.NextLevel(row.MasteryLevel, correct)
		upd := tx.QuestionProgress.UpdateOne(row).
			SetLastAttempt(now).
			SetNextReview(schedule.NextReview(level, now, now)).
			SetMasteryLevel(level)
		if correct {
			upd.SetCorrectAttempts(row.CorrectAttempts + 1)
		} else {
			upd.SetWrongAttempts(row.WrongAttempts + 1)
		}
		if _, err := upd.Save(ctx); err != nil {
			return fmt.Errorf("update question progress: %w", err)
		}
	}

	if !correct {
		return nil
	}

	// Correct answers advance every topic the question carries.
	for _, topic := range topics {
		trow, err := tx.TopicProgress.Query().
			Where(topicprogress.TopicName(topic)).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				// Topic not yet reconciled into the table; skip.
				continue
			}
			return fmt.Errorf("query topic %q: %w", topic, err)
		}
		answers := trow.CorrectAnswers + 1
		mastery := trow.MasteryPercentage
		if trow.TotalQuestions > 0 {
			mastery = float64(answers) * 100 / float64(trow.TotalQuestions)
		}
		_, err = tx.TopicProgress.UpdateOne(trow).
			SetCorrectAnswers(answers).
			SetMasteryPercentage(mastery).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update topic %q: %w", topic, err)
		}
	}
	return nil
}

func (r *progressRepo) Due(ctx context.Context, limit int, catalogIDs []string, now time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 {
		return nil, nil
	}

	rows, err := r.client.QuestionProgress.Query().
		Where(questionprogress.Or(
			questionprogress.NextReviewLTE(now),
			questionprogress.NextReviewIsNil(),
		)).
		Order(
			ent.Asc(questionprogress.FieldMasteryLevel),
			ent.Asc(questionprogress.FieldLastAttempt),
		).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due questions: %w", err)
	}

	ids := make([]string, 0, limit)
	for _, row := range rows {
		ids = append(ids, row.QuestionID)
	}
	if len(ids) >= limit {
		return ids, nil
	}

	// Backfill with questions that have no progress row at all.
	attempted, err := r.client.QuestionProgress.Query().
		Select(questionprogress.FieldQuestionID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempted questions: %w", err)
	}
	seen := make(map[string]bool, len(attempted)+len(ids))
	for _, id := range attempted {
		seen[id] = true
	}
	for _, id := range ids {
		seen[id] = true
	}
	for _, id := range catalogIDs {
		if len(ids) >= limit {
			break
		}
		if !seen[id] {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func progressFromRow(row *ent.QuestionProgress) *Progress {
	return &Progress{
		QuestionID:      row.QuestionID,
		CorrectAttempts: row.CorrectAttempts,
		WrongAttempts:   row.WrongAttempts,
		LastAttempt:     row.LastAttempt,
		NextReview:      row.NextReview,
		MasteryLevel:    row.MasteryLevel,
	}
}
