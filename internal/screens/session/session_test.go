package session

import (
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/jheine/lernbox/internal/bank"
	"github.com/jheine/lernbox/internal/quiz"
	"github.com/jheine/lernbox/internal/router"
	"github.com/jheine/lernbox/internal/selection"
	"github.com/jheine/lernbox/internal/store"
)

func testScreen(t *testing.T, questions int) *QuizScreen {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	qs := make([]bank.Question, questions)
	for i := range qs {
		qs[i] = bank.Question{
			ID:           fmt.Sprintf("q%d", i),
			Text:         fmt.Sprintf("prompt %d", i),
			Type:         bank.TypeMultipleChoice,
			Options:      []string{"right", "wrong"},
			CorrectIndex: 0,
		}
	}
	catalog := bank.NewCatalog()
	catalog.Add(&bank.BankFile{Questions: qs}, "test.json")

	engine := selection.New(catalog, st.Progress())
	sess := quiz.NewSession(catalog, engine, st.Progress(), st.Sessions())
	return New(sess, quiz.Config{Mode: selection.ModeNormal, Count: questions})
}

// drive runs a command and feeds the resulting message back.
func drive(t *testing.T, s *QuizScreen, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	_, next := s.Update(msg)
	return next
}

func TestQuizScreenFlow(t *testing.T) {
	s := testScreen(t, 2)

	drive(t, s, s.Init())
	if s.phase != phaseQuestion {
		t.Fatalf("phase = %d, want question", s.phase)
	}
	if s.question == nil {
		t.Fatal("expected a current question")
	}

	// Enter submits the preselected first option, which is correct.
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	drive(t, s, cmd)
	if s.phase != phaseFeedback {
		t.Fatalf("phase = %d, want feedback", s.phase)
	}
	if s.result == nil || !s.result.Correct {
		t.Fatal("expected a correct result")
	}

	// Next question.
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		drive(t, s, cmd)
	}
	if s.phase != phaseQuestion {
		t.Fatalf("phase = %d, want question", s.phase)
	}
}

func TestQuizScreenEndsAfterLastQuestion(t *testing.T) {
	s := testScreen(t, 1)

	drive(t, s, s.Init())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	drive(t, s, cmd)

	// Advancing past the last question must hand over to the summary.
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected end command")
	}
	msg := cmd()
	_, cmd = s.Update(msg)
	if cmd == nil {
		t.Fatal("expected replace command after session end")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg carrying the summary screen")
	}
}

func TestQuizScreenEmptySelection(t *testing.T) {
	s := testScreen(t, 1)
	s.cfg.Filter = bank.Filter{Topics: []string{"missing"}}

	drive(t, s, s.Init())
	if s.phase != phaseEmpty {
		t.Fatalf("phase = %d, want empty", s.phase)
	}

	view := s.View(80, 24)
	if view == "" {
		t.Error("expected empty-selection message")
	}
}

func TestQuizScreenEscEndsSession(t *testing.T) {
	s := testScreen(t, 2)
	drive(t, s, s.Init())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected end command on esc")
	}
	msg := cmd()
	if _, ok := msg.(endedMsg); !ok {
		t.Fatalf("expected endedMsg, got %T", msg)
	}
}
