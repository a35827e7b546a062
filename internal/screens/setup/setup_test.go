package setup

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jheine/lernbox/internal/bank"
	"github.com/jheine/lernbox/internal/quiz"
	"github.com/jheine/lernbox/internal/selection"
	"github.com/jheine/lernbox/internal/store"
)

func testSetup(t *testing.T) *SetupScreen {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	catalog := bank.NewCatalog()
	catalog.Add(&bank.BankFile{Questions: []bank.Question{
		{ID: "q1", Text: "prompt", Type: bank.TypeMultipleChoice,
			Options: []string{"a", "b"}, CorrectIndex: 0,
			Topics: []string{"anatomy"}, Difficulty: "easy"},
	}}, "test.json")

	engine := selection.New(catalog, st.Progress())
	sess := quiz.NewSession(catalog, engine, st.Progress(), st.Sessions())
	return New(catalog, sess)
}

func enter() tea.Msg { return tea.KeyPressMsg{Code: tea.KeyEnter} }
func down() tea.Msg  { return tea.KeyPressMsg{Code: 'j', Text: "j"} }
func esc() tea.Msg   { return tea.KeyPressMsg{Code: tea.KeyEscape} }

func TestSetupWalksAllSteps(t *testing.T) {
	s := testSetup(t)
	if s.step != stepMode {
		t.Fatalf("step = %d, want mode", s.step)
	}

	// Weak Spots is the second mode entry.
	s.Update(down())
	s.Update(enter())
	if s.step != stepTopic {
		t.Fatalf("step = %d, want topic", s.step)
	}

	// Skip "All Topics" and pick the only real topic.
	s.Update(down())
	s.Update(enter())
	if s.step != stepDifficulty {
		t.Fatalf("step = %d, want difficulty", s.step)
	}

	// Easy is the second difficulty entry.
	s.Update(down())
	s.Update(enter())
	if s.step != stepCount {
		t.Fatalf("step = %d, want count", s.step)
	}

	cfg := s.Config()
	if cfg.Mode != selection.ModeWeakSpots {
		t.Errorf("mode = %q, want weak spots", cfg.Mode)
	}
	if len(cfg.Filter.Topics) != 1 || cfg.Filter.Topics[0] != "anatomy" {
		t.Errorf("topics = %v, want [anatomy]", cfg.Filter.Topics)
	}
	if cfg.Filter.Difficulty != "easy" {
		t.Errorf("difficulty = %q, want easy", cfg.Filter.Difficulty)
	}
	if cfg.Count != DefaultCount {
		t.Errorf("count = %d, want %d", cfg.Count, DefaultCount)
	}
}

func TestSetupEscWalksBackwards(t *testing.T) {
	s := testSetup(t)
	s.Update(enter()) // mode
	s.Update(enter()) // topic
	s.Update(enter()) // difficulty
	if s.step != stepCount {
		t.Fatalf("step = %d, want count", s.step)
	}

	s.Update(esc())
	if s.step != stepDifficulty {
		t.Fatalf("step = %d, want difficulty", s.step)
	}
	s.Update(esc())
	if s.step != stepTopic {
		t.Fatalf("step = %d, want topic", s.step)
	}
	s.Update(esc())
	if s.step != stepMode {
		t.Fatalf("step = %d, want mode", s.step)
	}
}
