package quiz

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jheine/lernbox/internal/bank"
	"github.com/jheine/lernbox/internal/selection"
	"github.com/jheine/lernbox/internal/store"
)

func testCatalog(n int) *bank.Catalog {
	questions := make([]bank.Question, n)
	for i := range questions {
		questions[i] = bank.Question{
			ID:           fmt.Sprintf("q%d", i),
			Text:         fmt.Sprintf("prompt %d", i),
			Type:         bank.TypeMultipleChoice,
			Options:      []string{"right", "wrong"},
			CorrectIndex: 0,
			Topics:       []string{"anatomy"},
		}
	}
	c := bank.NewCatalog()
	c.Add(&bank.BankFile{Questions: questions}, "test.json")
	return c
}

func testSession(t *testing.T, catalog *bank.Catalog) (*Session, *store.Store) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	engine := selection.New(catalog, s.Progress())
	return NewSession(catalog, engine, s.Progress(), s.Sessions()), s
}

func TestSessionEndToEnd(t *testing.T) {
	catalog := testCatalog(5)
	sess, st := testSession(t, catalog)
	ctx := context.Background()

	n, err := sess.Start(ctx, Config{Mode: selection.ModeNormal, Count: 5})
	require.NoError(t, err)
	require.Equal(t, 5, n)

	// Answer 3 correct, 2 wrong.
	for i := 0; i < 5; i++ {
		q := sess.NextQuestion()
		require.NotNil(t, q)

		answer := "0"
		if i >= 3 {
			answer = "1"
		}
		res, err := sess.Submit(ctx, answer)
		require.NoError(t, err)
		require.Equal(t, i < 3, res.Correct)
		require.Equal(t, q.ID, res.QuestionID)
		require.Equal(t, "right", res.CorrectAnswer)
	}
	require.Nil(t, sess.NextQuestion())

	sum, err := sess.End(ctx)
	require.NoError(t, err)
	require.NotNil(t, sum)
	require.Equal(t, 5, sum.Answered)
	require.Equal(t, 3, sum.Correct)
	require.InDelta(t, 60.0, sum.Accuracy, 0.001)
	require.Len(t, sum.Results, 5)

	rows, err := st.Sessions().List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 5, rows[0].QuestionsAnswered)
	require.Equal(t, 3, rows[0].CorrectAnswers)
}

func TestEndTwiceWritesOneRecord(t *testing.T) {
	sess, st := testSession(t, testCatalog(2))
	ctx := context.Background()

	_, err := sess.Start(ctx, Config{Mode: selection.ModeNormal, Count: 2})
	require.NoError(t, err)

	sum, err := sess.End(ctx)
	require.NoError(t, err)
	require.NotNil(t, sum)

	again, err := sess.End(ctx)
	require.NoError(t, err)
	require.Nil(t, again)

	rows, err := st.Sessions().List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestEndWhenIdleReturnsNothing(t *testing.T) {
	sess, _ := testSession(t, testCatalog(1))
	sum, err := sess.End(context.Background())
	require.NoError(t, err)
	require.Nil(t, sum)
}

func TestStartEndsActiveSession(t *testing.T) {
	sess, st := testSession(t, testCatalog(3))
	ctx := context.Background()

	_, err := sess.Start(ctx, Config{Mode: selection.ModeNormal, Count: 3})
	require.NoError(t, err)
	require.NotNil(t, sess.NextQuestion())
	_, err = sess.Submit(ctx, "0")
	require.NoError(t, err)

	// The second Start persists the partial first run.
	_, err = sess.Start(ctx, Config{Mode: selection.ModeNormal, Count: 3})
	require.NoError(t, err)

	rows, err := st.Sessions().List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 1, rows[0].QuestionsAnswered)

	snap, ok := sess.Progress()
	require.True(t, ok)
	require.Equal(t, 0, snap.Answered)
	require.Equal(t, 3, snap.Remaining)
}

func TestSubmitWithoutQuestion(t *testing.T) {
	sess, _ := testSession(t, testCatalog(2))
	ctx := context.Background()

	_, err := sess.Submit(ctx, "0")
	require.ErrorIs(t, err, ErrNoSession)

	_, err = sess.Start(ctx, Config{Mode: selection.ModeNormal, Count: 2})
	require.NoError(t, err)

	_, err = sess.Submit(ctx, "0")
	require.ErrorIs(t, err, ErrNoQuestion)

	require.NotNil(t, sess.NextQuestion())
	_, err = sess.Submit(ctx, "0")
	require.NoError(t, err)

	// A question answers once.
	_, err = sess.Submit(ctx, "0")
	require.ErrorIs(t, err, ErrNoQuestion)
}

func TestNextQuestionSkipsStaleIDs(t *testing.T) {
	catalog := testCatalog(3)
	sess, _ := testSession(t, catalog)
	ctx := context.Background()

	n, err := sess.Start(ctx, Config{Mode: selection.ModeNormal, Count: 3})
	require.NoError(t, err)
	require.Equal(t, 3, n)

	// Shrink the catalog to a single question after selection.
	shrunk := bank.NewCatalog()
	shrunk.Add(&bank.BankFile{Questions: []bank.Question{{
		ID: "q1", Text: "prompt 1", Type: bank.TypeMultipleChoice,
		Options: []string{"right", "wrong"}, CorrectIndex: 0,
	}}}, "test.json")
	catalog.Replace(shrunk)

	q := sess.NextQuestion()
	require.NotNil(t, q)
	require.Equal(t, "q1", q.ID)
	require.Nil(t, sess.NextQuestion())
}

func TestTimeLimitEndsQueue(t *testing.T) {
	sess, _ := testSession(t, testCatalog(3))
	ctx := context.Background()

	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	sess.now = func() time.Time { return clock }

	_, err := sess.Start(ctx, Config{
		Mode:      selection.ModeNormal,
		Count:     3,
		TimeLimit: 10 * time.Minute,
	})
	require.NoError(t, err)
	require.NotNil(t, sess.NextQuestion())
	_, err = sess.Submit(ctx, "0")
	require.NoError(t, err)

	// The deadline is only checked here, not mid-question.
	clock = clock.Add(11 * time.Minute)
	require.Nil(t, sess.NextQuestion())

	sum, err := sess.End(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, sum.Answered)
	require.Equal(t, 11, sum.DurationMinutes)
}

func TestZeroQuestionSession(t *testing.T) {
	sess, _ := testSession(t, testCatalog(3))
	ctx := context.Background()

	n, err := sess.Start(ctx, Config{
		Mode:   selection.ModeNormal,
		Filter: bank.Filter{Topics: []string{"missing"}},
		Count:  5,
	})
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.Nil(t, sess.NextQuestion())

	sum, err := sess.End(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, sum.Answered)
	require.Equal(t, 0.0, sum.Accuracy)
}

func TestSubmitUpdatesProgress(t *testing.T) {
	sess, st := testSession(t, testCatalog(1))
	ctx := context.Background()

	_, err := sess.Start(ctx, Config{Mode: selection.ModeNormal, Count: 1})
	require.NoError(t, err)
	q := sess.NextQuestion()
	require.NotNil(t, q)

	_, err = sess.Submit(ctx, strconv.Itoa(q.CorrectIndex))
	require.NoError(t, err)

	p, err := st.Progress().Get(ctx, q.ID)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, 1, p.CorrectAttempts)
	require.Equal(t, 1, p.MasteryLevel)
}
