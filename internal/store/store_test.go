package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		require.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestRepositoriesShareStore(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// A smoke pass across every repo against one database.
	require.NoError(t, s.Topics().Refresh(ctx, map[string]int{"bones": 2}))
	require.NoError(t, s.Subjects().Add(ctx, "Anatomie", "Skript 3"))
	require.NoError(t, s.Sessions().Record(ctx, 5, 4, 3, []string{"bones"}))

	topics, err := s.Topics().List(ctx)
	require.NoError(t, err)
	require.Len(t, topics, 1)

	sessions, err := s.Sessions().List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
}

func TestResetProgress(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Progress().Update(ctx, "q1", []string{"bones"}, true, time.Now()))
	require.NoError(t, s.Topics().Refresh(ctx, map[string]int{"bones": 1}))
	require.NoError(t, s.Sessions().Record(ctx, 5, 1, 1, []string{"bones"}))
	require.NoError(t, s.Subjects().Add(ctx, "Anatomie", "Skript 3"))

	require.NoError(t, s.ResetProgress(ctx))

	p, err := s.Progress().Get(ctx, "q1")
	require.NoError(t, err)
	require.Nil(t, p)

	topics, err := s.Topics().List(ctx)
	require.NoError(t, err)
	require.Empty(t, topics)

	sessions, err := s.Sessions().List(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, sessions)

	subjects, err := s.Subjects().List(ctx)
	require.NoError(t, err)
	require.Empty(t, subjects)
}
