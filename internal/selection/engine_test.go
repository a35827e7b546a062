package selection

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/jheine/lernbox/internal/bank"
	"github.com/jheine/lernbox/internal/store"
)

func testStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// testEngine builds an engine with a fixed seed over the given catalog.
func testEngine(t *testing.T, catalog *bank.Catalog) (*Engine, *store.Store) {
	t.Helper()
	s := testStore(t)
	e := New(catalog, s.Progress())
	e.rng = rand.New(rand.NewSource(1))
	return e, s
}

func mcQuestion(id string, topics ...string) bank.Question {
	return bank.Question{
		ID: id, Text: "prompt " + id, Type: bank.TypeMultipleChoice,
		Options: []string{"a", "b"}, CorrectIndex: 0, Topics: topics,
	}
}

func catalogOf(questions ...bank.Question) *bank.Catalog {
	c := bank.NewCatalog()
	c.Add(&bank.BankFile{Questions: questions}, "test.json")
	return c
}

func assertValidSelection(t *testing.T, ids []string, pool map[string]bool, wantLen int) {
	t.Helper()
	if len(ids) != wantLen {
		t.Fatalf("selected %d questions, want %d", len(ids), wantLen)
	}
	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate selection: %s", id)
		}
		seen[id] = true
		if !pool[id] {
			t.Errorf("selected %s outside the filtered pool", id)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in    string
		want  Mode
		known bool
	}{
		{"normal", ModeNormal, true},
		{"weak_spots", ModeWeakSpots, true},
		{"spaced_repetition", ModeSpacedRepetition, true},
		{"exam", ModeExam, true},
		{"turbo", ModeNormal, false},
		{"", ModeNormal, false},
	}
	for _, tt := range tests {
		got, known := ParseMode(tt.in)
		if got != tt.want || known != tt.known {
			t.Errorf("ParseMode(%q) = (%v, %v), want (%v, %v)", tt.in, got, known, tt.want, tt.known)
		}
	}
}

func TestAllModesRespectPoolAndCount(t *testing.T) {
	questions := make([]bank.Question, 6)
	pool := make(map[string]bool)
	for i := range questions {
		id := fmt.Sprintf("q%d", i)
		questions[i] = mcQuestion(id, "topic")
		pool[id] = true
	}
	catalog := catalogOf(questions...)
	ctx := context.Background()

	for _, mode := range []Mode{ModeNormal, ModeWeakSpots, ModeSpacedRepetition, ModeExam} {
		t.Run(string(mode), func(t *testing.T) {
			e, _ := testEngine(t, catalog)

			// count below pool size
			ids, err := e.Select(ctx, mode, bank.Filter{}, 4)
			if err != nil {
				t.Fatalf("Select: %v", err)
			}
			assertValidSelection(t, ids, pool, 4)

			// count above pool size
			ids, err = e.Select(ctx, mode, bank.Filter{}, 10)
			if err != nil {
				t.Fatalf("Select: %v", err)
			}
			assertValidSelection(t, ids, pool, 6)
		})
	}
}

func TestEmptyPoolReturnsEmpty(t *testing.T) {
	catalog := catalogOf(mcQuestion("q1", "bones"))
	ctx := context.Background()

	for _, mode := range []Mode{ModeNormal, ModeWeakSpots, ModeSpacedRepetition, ModeExam} {
		e, _ := testEngine(t, catalog)
		ids, err := e.Select(ctx, mode, bank.Filter{Topics: []string{"no-such-topic"}}, 5)
		if err != nil {
			t.Fatalf("Select(%s): %v", mode, err)
		}
		if len(ids) != 0 {
			t.Errorf("Select(%s) on empty pool = %v, want empty", mode, ids)
		}
	}
}

func TestUnknownModeFallsBackToNormal(t *testing.T) {
	catalog := catalogOf(mcQuestion("q1"), mcQuestion("q2"))
	e, _ := testEngine(t, catalog)

	ids, err := e.Select(context.Background(), Mode("turbo"), bank.Filter{}, 2)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("fallback selection returned %d questions, want 2", len(ids))
	}
}

func TestWeakSpotsOrdersBySuccessRate(t *testing.T) {
	catalog := catalogOf(
		mcQuestion("q-low"),
		mcQuestion("q-high"),
		mcQuestion("q-unseen"),
	)
	e, s := testEngine(t, catalog)
	ctx := context.Background()
	now := time.Now()

	// q-low: 1 of 5 correct (20%), q-high: 4 of 5 correct (80%).
	repo := s.Progress()
	mustUpdate := func(id string, correct bool) {
		t.Helper()
		if err := repo.Update(ctx, id, nil, correct, now); err != nil {
			t.Fatalf("update %s: %v", id, err)
		}
	}
	mustUpdate("q-low", true)
	for i := 0; i < 4; i++ {
		mustUpdate("q-low", false)
		mustUpdate("q-high", true)
	}
	mustUpdate("q-high", false)

	ids, err := e.Select(ctx, ModeWeakSpots, bank.Filter{}, 3)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}

	want := []string{"q-low", "q-unseen", "q-high"}
	for i, id := range want {
		if ids[i] != id {
			t.Fatalf("weak-spot order = %v, want %v", ids, want)
		}
	}
}

func TestWeakSpotsTiesKeepPoolOrder(t *testing.T) {
	// All unseen: every score is 50, so the stable sort must keep
	// catalog insertion order.
	catalog := catalogOf(mcQuestion("a"), mcQuestion("b"), mcQuestion("c"))
	e, _ := testEngine(t, catalog)

	ids, err := e.Select(context.Background(), ModeWeakSpots, bank.Filter{}, 3)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	want := []string{"a", "b", "c"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("tie order = %v, want %v", ids, want)
		}
	}
}

func TestSpacedRepetitionPrefersDueThenTopsUp(t *testing.T) {
	catalog := catalogOf(
		mcQuestion("A"), mcQuestion("B"), mcQuestion("C"), mcQuestion("D"),
	)
	e, s := testEngine(t, catalog)
	ctx := context.Background()
	repo := s.Progress()

	past := time.Now().AddDate(0, 0, -30)
	// A and B are overdue; C and D were answered just now and review
	// in the future.
	for _, id := range []string{"A", "B"} {
		if err := repo.Update(ctx, id, nil, false, past); err != nil {
			t.Fatal(err)
		}
	}
	for _, id := range []string{"C", "D"} {
		if err := repo.Update(ctx, id, nil, true, time.Now()); err != nil {
			t.Fatal(err)
		}
	}

	ids, err := e.Select(ctx, ModeSpacedRepetition, bank.Filter{}, 3)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("selected %d, want 3", len(ids))
	}

	got := make(map[string]bool)
	for _, id := range ids {
		got[id] = true
	}
	if !got["A"] || !got["B"] {
		t.Errorf("due questions A and B must both be selected, got %v", ids)
	}
	if got["C"] == got["D"] {
		t.Errorf("exactly one of C/D must top up the selection, got %v", ids)
	}
}

func TestExamCoversTopicsEvenly(t *testing.T) {
	var questions []bank.Question
	topicOf := make(map[string]string)
	for _, topic := range []string{"alpha", "beta", "gamma"} {
		for i := 0; i < 5; i++ {
			id := fmt.Sprintf("%s-%d", topic, i)
			questions = append(questions, mcQuestion(id, topic))
			topicOf[id] = topic
		}
	}
	catalog := catalogOf(questions...)
	e, _ := testEngine(t, catalog)

	ids, err := e.Select(context.Background(), ModeExam, bank.Filter{}, 9)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(ids) != 9 {
		t.Fatalf("selected %d, want 9", len(ids))
	}

	counts := make(map[string]int)
	for _, id := range ids {
		counts[topicOf[id]]++
	}
	min, max := 9, 0
	for _, topic := range []string{"alpha", "beta", "gamma"} {
		n := counts[topic]
		if n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}
	if max-min > 1 {
		t.Errorf("topic coverage uneven: %v", counts)
	}
}

func TestExamTopsUpWhenGroupsExhaust(t *testing.T) {
	// Two tagged questions, three untagged. Count 4 forces a top-up
	// from the untagged remainder.
	catalog := catalogOf(
		mcQuestion("t1", "alpha"),
		mcQuestion("t2", "beta"),
		mcQuestion("u1"), mcQuestion("u2"), mcQuestion("u3"),
	)
	e, _ := testEngine(t, catalog)

	ids, err := e.Select(context.Background(), ModeExam, bank.Filter{}, 4)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	pool := map[string]bool{"t1": true, "t2": true, "u1": true, "u2": true, "u3": true}
	assertValidSelection(t, ids, pool, 4)

	got := make(map[string]bool)
	for _, id := range ids {
		got[id] = true
	}
	if !got["t1"] || !got["t2"] {
		t.Errorf("tagged questions must be selected first, got %v", ids)
	}
}
