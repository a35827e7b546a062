package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jheine/lernbox/ent"
	"github.com/jheine/lernbox/ent/learningsession"
)

// Session is one completed (or explicitly ended) quiz run.
type Session struct {
	ID                int
	Date              time.Time
	DurationMinutes   int
	QuestionsAnswered int
	CorrectAnswers    int
	Topics            []string
}

// SessionRepo appends and reads the immutable session log.
type SessionRepo interface {
	// Record appends one session row.
	Record(ctx context.Context, durationMinutes, questionsAnswered, correctAnswers int, topics []string) error

	// List returns sessions newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]Session, error)
}

type sessionRepo struct {
	client *ent.Client
	mu     *sync.Mutex
}

func (r *sessionRepo) Record(ctx context.Context, durationMinutes, questionsAnswered, correctAnswers int, topics []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.client.LearningSession.Create().
		SetDate(time.Now()).
		SetDurationMinutes(durationMinutes).
		SetQuestionsAnswered(questionsAnswered).
		SetCorrectAnswers(correctAnswers).
		SetTopics(strings.Join(topics, ",")).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("record session: %w", err)
	}
	return nil
}

func (r *sessionRepo) List(ctx context.Context, limit int) ([]Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q := r.client.LearningSession.Query().
		Order(ent.Desc(learningsession.FieldDate))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	out := make([]Session, len(rows))
	for i, row := range rows {
		var topics []string
		if row.Topics != "" {
			topics = strings.Split(row.Topics, ",")
		}
		out[i] = Session{
			ID:                row.ID,
			Date:              row.Date,
			DurationMinutes:   row.DurationMinutes,
			QuestionsAnswered: row.QuestionsAnswered,
			CorrectAnswers:    row.CorrectAnswers,
			Topics:            topics,
		}
	}
	return out, nil
}
