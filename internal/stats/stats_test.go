package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jheine/lernbox/internal/bank"
	"github.com/jheine/lernbox/internal/store"
)

func testService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	catalog := bank.NewCatalog()
	catalog.Add(&bank.BankFile{Questions: []bank.Question{
		{ID: "q1", Text: "a", Difficulty: "easy", Topics: []string{"lungs"}},
		{ID: "q2", Text: "b", Difficulty: "easy", Topics: []string{"lungs"}},
		{ID: "q3", Text: "c", Difficulty: "hard", Topics: []string{"heart"}},
		{ID: "q4", Text: "d", Topics: []string{"heart"}},
	}}, "test.json")

	return New(catalog, s.Topics(), s.Sessions()), s
}

func TestOverviewEmpty(t *testing.T) {
	svc, _ := testService(t)

	ov, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, ov.TotalSessions)
	require.Equal(t, 0.0, ov.Accuracy)
	require.True(t, ov.LastSession.IsZero())
	require.Equal(t, map[string]int{"easy": 2, "hard": 1, "unspecified": 1}, ov.DifficultyCounts)
}

func TestOverviewAggregatesSessions(t *testing.T) {
	svc, st := testService(t)
	ctx := context.Background()

	require.NoError(t, st.Sessions().Record(ctx, 10, 8, 6, []string{"lungs"}))
	require.NoError(t, st.Sessions().Record(ctx, 5, 2, 2, []string{"heart"}))

	ov, err := svc.Overview(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, ov.TotalSessions)
	require.Equal(t, 10, ov.QuestionsAnswered)
	require.Equal(t, 8, ov.CorrectAnswers)
	require.Equal(t, 15, ov.MinutesSpent)
	require.InDelta(t, 80.0, ov.Accuracy, 0.001)
	require.False(t, ov.LastSession.IsZero())
}

func TestOverviewCountsMasteredTopics(t *testing.T) {
	svc, st := testService(t)
	ctx := context.Background()

	counts := map[string]int{"lungs": 2, "heart": 2}
	require.NoError(t, st.Topics().Refresh(ctx, counts))
	// Two correct answers out of two questions push lungs to 100%.
	require.NoError(t, st.Progress().Update(ctx, "q1", []string{"lungs"}, true, time.Now()))
	require.NoError(t, st.Progress().Update(ctx, "q2", []string{"lungs"}, true, time.Now()))

	ov, err := svc.Overview(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, ov.TopicCount)
	require.Equal(t, 1, ov.TopicsMastered)
	require.InDelta(t, 100.0, ov.MasteryByTopic["lungs"], 0.001)
	require.InDelta(t, 0.0, ov.MasteryByTopic["heart"], 0.001)
}

func TestTopicMastery(t *testing.T) {
	svc, st := testService(t)
	ctx := context.Background()

	require.NoError(t, st.Topics().Refresh(ctx, map[string]int{"lungs": 2}))

	m, err := svc.TopicMastery(ctx)
	require.NoError(t, err)
	require.Len(t, m, 1)
	require.Contains(t, m, "lungs")
}

func TestRecentPerformanceGroupsByDay(t *testing.T) {
	svc, st := testService(t)
	ctx := context.Background()

	require.NoError(t, st.Sessions().Record(ctx, 10, 4, 2, nil))
	require.NoError(t, st.Sessions().Record(ctx, 20, 6, 4, nil))

	days, err := svc.RecentPerformance(ctx, 30)
	require.NoError(t, err)
	require.Len(t, days, 1)
	require.Equal(t, 10, days[0].Questions)
	require.Equal(t, 6, days[0].Correct)
	require.Equal(t, 30, days[0].Minutes)
	require.InDelta(t, 60.0, days[0].Accuracy, 0.001)
}

func TestRecentPerformanceHonorsCutoff(t *testing.T) {
	svc, st := testService(t)
	ctx := context.Background()

	require.NoError(t, st.Sessions().Record(ctx, 10, 4, 2, nil))

	// Move the clock far enough that today falls outside the window.
	svc.now = func() time.Time { return time.Now().AddDate(0, 0, 90) }

	days, err := svc.RecentPerformance(ctx, 30)
	require.NoError(t, err)
	require.Empty(t, days)
}

func TestReport(t *testing.T) {
	svc, st := testService(t)
	ctx := context.Background()

	require.NoError(t, st.Sessions().Record(ctx, 10, 5, 4, []string{"lungs"}))

	rep, err := svc.Report(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, rep.Overview.TotalSessions)
	require.Len(t, rep.History, 1)
	require.Equal(t, 5, rep.Weekly.Questions)
	require.Equal(t, 4, rep.Weekly.Correct)
	require.InDelta(t, 80.0, rep.Weekly.Accuracy, 0.001)
	require.Len(t, rep.Recent, 1)
}

func TestWeekStart(t *testing.T) {
	// 2026-03-04 is a Wednesday; its week opens Monday 2026-03-02.
	wed := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)
	got := weekStart(wed)
	require.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), got)

	// A Monday opens its own week.
	mon := time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), weekStart(mon))

	// Sunday belongs to the week opened six days earlier.
	sun := time.Date(2026, 3, 8, 23, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), weekStart(sun))
}
