package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jheine/lernbox/ent"
)

func TestGetUnknownQuestionIsNotAnError(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p, err := s.Progress().Get(ctx, "never-seen")
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestUpdateFirstAnswerCorrect(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.Progress().Update(ctx, "q1", nil, true, now))

	p, err := s.Progress().Get(ctx, "q1")
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, 1, p.CorrectAttempts)
	require.Equal(t, 0, p.WrongAttempts)
	require.Equal(t, 1, p.MasteryLevel)
	// Level 1 reviews after 2 days.
	require.Equal(t, now.AddDate(0, 0, 2), p.NextReview.UTC())
}

func TestUpdateFirstAnswerWrong(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.Progress().Update(ctx, "q1", nil, false, now))

	p, err := s.Progress().Get(ctx, "q1")
	require.NoError(t, err)
	require.Equal(t, 0, p.CorrectAttempts)
	require.Equal(t, 1, p.WrongAttempts)
	require.Equal(t, 0, p.MasteryLevel)
	require.Equal(t, now.AddDate(0, 0, 1), p.NextReview.UTC())
}

func TestMasteryMonotonicAndClamped(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	prev := 0
	for i := 0; i < 8; i++ {
		require.NoError(t, s.Progress().Update(ctx, "q1", nil, true, now))
		p, err := s.Progress().Get(ctx, "q1")
		require.NoError(t, err)
		require.GreaterOrEqual(t, p.MasteryLevel, prev, "mastery must not decrease on correct")
		require.LessOrEqual(t, p.MasteryLevel, 5)
		prev = p.MasteryLevel
	}
	require.Equal(t, 5, prev)

	for i := 0; i < 8; i++ {
		require.NoError(t, s.Progress().Update(ctx, "q1", nil, false, now))
		p, err := s.Progress().Get(ctx, "q1")
		require.NoError(t, err)
		require.LessOrEqual(t, p.MasteryLevel, prev, "mastery must not increase on wrong")
		require.GreaterOrEqual(t, p.MasteryLevel, 0)
		prev = p.MasteryLevel
	}
	require.Equal(t, 0, prev)
}

func TestCorrectAnswerAdvancesTopics(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Topics().Refresh(ctx, map[string]int{"bones": 4, "heart": 2}))
	require.NoError(t, s.Progress().Update(ctx, "q1", []string{"bones", "heart"}, true, time.Now()))

	topics, err := s.Topics().List(ctx)
	require.NoError(t, err)
	require.Len(t, topics, 2)
	require.Equal(t, "bones", topics[0].TopicName)
	require.Equal(t, 1, topics[0].CorrectAnswers)
	require.InDelta(t, 25.0, topics[0].MasteryPercentage, 1e-9)
	require.Equal(t, 1, topics[1].CorrectAnswers)
	require.InDelta(t, 50.0, topics[1].MasteryPercentage, 1e-9)
}

func TestWrongAnswerLeavesTopicsUntouched(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Topics().Refresh(ctx, map[string]int{"bones": 4}))
	require.NoError(t, s.Progress().Update(ctx, "q1", []string{"bones"}, false, time.Now()))

	topics, err := s.Topics().List(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, topics[0].CorrectAnswers)
}

func TestUpdateIsAtomic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Topics().Refresh(ctx, map[string]int{"bones": 4}))

	// Inject a failure into the topic half of the transaction; the
	// question-progress half must roll back with it.
	s.Client().Use(func(next ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(ctx context.Context, m ent.Mutation) (ent.Value, error) {
			if m.Type() == "TopicProgress" && m.Op().Is(ent.OpUpdateOne) {
				return nil, errors.New("injected persistence failure")
			}
			return next.Mutate(ctx, m)
		})
	})

	err := s.Progress().Update(ctx, "q1", []string{"bones"}, true, time.Now())
	require.Error(t, err)

	p, err := s.Progress().Get(ctx, "q1")
	require.NoError(t, err)
	require.Nil(t, p, "partial counter write must not be visible after rollback")

	topics, err := s.Topics().List(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, topics[0].CorrectAnswers)
}

func TestDueOrderingAndBackfill(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Progress()

	base := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	// q-weak answered wrong long ago (level 0, due), q-strong answered
	// correct recently enough to also be due, q-future is not due.
	require.NoError(t, repo.Update(ctx, "q-weak", nil, false, base.AddDate(0, 0, -10)))
	require.NoError(t, repo.Update(ctx, "q-strong", nil, true, base.AddDate(0, 0, -5)))
	require.NoError(t, repo.Update(ctx, "q-future", nil, true, base))
	require.NoError(t, repo.Update(ctx, "q-future", nil, true, base))

	catalog := []string{"q-weak", "q-strong", "q-future", "q-unseen1", "q-unseen2"}
	due, err := repo.Due(ctx, 4, catalog, base.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, due, 4)

	// Lowest mastery first.
	require.Equal(t, "q-weak", due[0])
	require.Equal(t, "q-strong", due[1])
	// Backfill comes only from never-attempted questions.
	require.ElementsMatch(t, []string{"q-unseen1", "q-unseen2"}, due[2:])
}

func TestDueRespectsLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Progress()
	now := time.Now()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Update(ctx, id, nil, false, now.AddDate(0, 0, -2)))
	}

	due, err := repo.Due(ctx, 2, []string{"a", "b", "c", "d"}, now)
	require.NoError(t, err)
	require.Len(t, due, 2)
}

func TestSuccessRate(t *testing.T) {
	p := &Progress{CorrectAttempts: 1, WrongAttempts: 4}
	require.InDelta(t, 20.0, p.SuccessRate(), 1e-9)

	unseen := &Progress{}
	require.Equal(t, -1.0, unseen.SuccessRate())
}
