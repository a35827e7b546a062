package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Sessions()

	require.NoError(t, repo.Record(ctx, 10, 5, 3, []string{"bones"}))
	require.NoError(t, repo.Record(ctx, 20, 8, 8, []string{"lungs", "heart"}))

	sessions, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.False(t, sessions[0].Date.Before(sessions[1].Date), "newest first")
	require.Equal(t, []string{"lungs", "heart"}, sessions[0].Topics)
}

func TestSessionsLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Sessions()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Record(ctx, 1, 1, 1, nil))
	}
	sessions, err := repo.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, sessions, 3)
}

func TestSessionEmptyTopics(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Sessions().Record(ctx, 1, 0, 0, nil))
	sessions, err := s.Sessions().List(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, sessions[0].Topics)
}

func TestSubjectsAddAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Subjects()

	require.NoError(t, repo.Add(ctx, "Anatomie", "Skript 3"))
	require.NoError(t, repo.Add(ctx, "Anatomie", "Skript 3")) // duplicate is a no-op
	require.NoError(t, repo.Add(ctx, "Anatomie", "Skript 4"))
	require.NoError(t, repo.Add(ctx, "Physiologie", "Skript 1"))

	pairs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, pairs, 3)

	subjects, err := repo.Subjects(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Anatomie", "Physiologie"}, subjects)

	scripts, err := repo.ScriptsFor(ctx, "Anatomie")
	require.NoError(t, err)
	require.Equal(t, []string{"Skript 3", "Skript 4"}, scripts)
}

func TestSubjectsRebuild(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Subjects()

	require.NoError(t, repo.Add(ctx, "Old", "Script"))
	require.NoError(t, repo.Rebuild(ctx, []SubjectScript{
		{Subject: "Anatomie", Script: "Skript 3"},
		{Subject: "Anatomie", Script: "Skript 3"}, // dedup inside rebuild
		{Subject: "", Script: "ignored"},
	}))

	pairs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []SubjectScript{{Subject: "Anatomie", Script: "Skript 3"}}, pairs)
}
