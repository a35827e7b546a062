package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReconcileTopicsDiff(t *testing.T) {
	existing := []TopicProgress{
		{TopicName: "bones", TotalQuestions: 3, CorrectAnswers: 2, MasteryPercentage: 66.7},
		{TopicName: "stale", TotalQuestions: 5, CorrectAnswers: 1, MasteryPercentage: 20},
	}
	counts := map[string]int{"bones": 4, "lungs": 2}

	toDelete, toUpsert := ReconcileTopics(counts, existing)

	require.Equal(t, []string{"stale"}, toDelete)
	require.Len(t, toUpsert, 2)

	// Surviving topic: fresh total, prior correct/mastery preserved.
	require.Equal(t, "bones", toUpsert[0].TopicName)
	require.Equal(t, 4, toUpsert[0].TotalQuestions)
	require.Equal(t, 2, toUpsert[0].CorrectAnswers)
	require.InDelta(t, 66.7, toUpsert[0].MasteryPercentage, 1e-9)

	// New topic starts from zero.
	require.Equal(t, "lungs", toUpsert[1].TopicName)
	require.Equal(t, 2, toUpsert[1].TotalQuestions)
	require.Equal(t, 0, toUpsert[1].CorrectAnswers)
	require.Zero(t, toUpsert[1].MasteryPercentage)
}

func TestReconcileTopicsEmptyInputs(t *testing.T) {
	toDelete, toUpsert := ReconcileTopics(nil, nil)
	require.Empty(t, toDelete)
	require.Empty(t, toUpsert)

	toDelete, toUpsert = ReconcileTopics(nil, []TopicProgress{{TopicName: "gone"}})
	require.Equal(t, []string{"gone"}, toDelete)
	require.Empty(t, toUpsert)
}

func TestRefreshAppliesDiff(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Topics()

	require.NoError(t, repo.Refresh(ctx, map[string]int{"bones": 2, "stale": 1}))

	// Accumulate some correct answers on bones.
	require.NoError(t, s.Progress().Update(ctx, "q1", []string{"bones"}, true, time.Now()))

	// Catalog changed: stale disappeared, lungs appeared, bones grew.
	require.NoError(t, repo.Refresh(ctx, map[string]int{"bones": 3, "lungs": 1}))

	topics, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, topics, 2)

	require.Equal(t, "bones", topics[0].TopicName)
	require.Equal(t, 3, topics[0].TotalQuestions)
	require.Equal(t, 1, topics[0].CorrectAnswers, "correct count survives refresh")

	require.Equal(t, "lungs", topics[1].TopicName)
	require.Equal(t, 0, topics[1].CorrectAnswers)
}
