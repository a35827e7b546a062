package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/jheine/lernbox/internal/quiz"
	"github.com/jheine/lernbox/internal/selection"
)

func testSummary() *quiz.Summary {
	return &quiz.Summary{
		Mode:            selection.ModeNormal,
		DurationMinutes: 12,
		Total:           5,
		Answered:        5,
		Correct:         3,
		Accuracy:        60,
		Results: []quiz.Result{
			{QuestionID: "q-alveoli", Correct: true, TimeTaken: 8 * time.Second},
			{QuestionID: "q-trachea", Correct: false, CorrectAnswer: "trachea"},
			{QuestionID: "q-pleura", Correct: true},
			{QuestionID: "q-larynx", Correct: false, CorrectAnswer: "larynx"},
			{QuestionID: "q-bronchi", Correct: true},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	if !strings.Contains(view, "3/5") {
		t.Errorf("expected headline with 3/5 correct, got:\n%s", view)
	}
	if !strings.Contains(view, "60%") {
		t.Errorf("expected accuracy in headline, got:\n%s", view)
	}
}

func TestSummaryScreen_NilSummary(t *testing.T) {
	s := New(nil)
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected placeholder view for nil summary")
	}
}

func TestSummaryScreen_PopOnEnter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_RefreshesDueOnInit(t *testing.T) {
	s := New(testSummary())
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected init command")
	}
}
