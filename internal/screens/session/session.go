// Package session drives a running quiz inside the TUI.
package session

import (
	"context"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/jheine/lernbox/internal/bank"
	"github.com/jheine/lernbox/internal/quiz"
	"github.com/jheine/lernbox/internal/router"
	"github.com/jheine/lernbox/internal/screen"
	"github.com/jheine/lernbox/internal/screens/summary"
	"github.com/jheine/lernbox/internal/ui/components"
	"github.com/jheine/lernbox/internal/ui/layout"
)

type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseFeedback
	phaseEmpty
)

type startedMsg struct {
	count int
	err   error
}

type answeredMsg struct {
	result *quiz.Result
	err    error
}

type endedMsg struct {
	summary *quiz.Summary
}

// QuizScreen presents questions one at a time and shows feedback after
// each answer. When the queue runs out it replaces itself with the
// summary screen.
type QuizScreen struct {
	sess *quiz.Session
	cfg  quiz.Config

	phase    phase
	question *bank.Question
	choice   components.MultiChoice
	textIn   components.TextInput
	result   *quiz.Result
	errMsg   string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen for the given configuration. The quiz
// itself starts in Init.
func New(sess *quiz.Session, cfg quiz.Config) *QuizScreen {
	return &QuizScreen{
		sess: sess,
		cfg:  cfg,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return func() tea.Msg {
		n, err := s.sess.Start(context.Background(), s.cfg)
		return startedMsg{count: n, err: err}
	}
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "End quiz"},
		}
	case phaseQuestion:
		if s.question != nil && s.question.Type == bank.TypeText {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Submit"},
				{Key: "Esc", Description: "End quiz"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "End quiz"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
	}
}

// advance pulls the next question or ends the session when the queue
// is exhausted or the time limit has passed.
func (s *QuizScreen) advance() tea.Cmd {
	q := s.sess.NextQuestion()
	if q == nil {
		return s.endCmd()
	}
	s.question = q
	s.result = nil
	s.phase = phaseQuestion
	if q.Type == bank.TypeText {
		s.textIn = components.NewTextInput("your answer", false, 0)
		return s.textIn.Init()
	}
	s.choice = components.NewMultiChoice(q.Text, q.Options, q.CorrectIndex)
	return nil
}

func (s *QuizScreen) endCmd() tea.Cmd {
	return func() tea.Msg {
		sum, _ := s.sess.End(context.Background())
		return endedMsg{summary: sum}
	}
}

func (s *QuizScreen) submitCmd(answer string) tea.Cmd {
	return func() tea.Msg {
		res, err := s.sess.Submit(context.Background(), answer)
		return answeredMsg{result: res, err: err}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		if msg.count == 0 {
			s.phase = phaseEmpty
			return s, nil
		}
		return s, s.advance()

	case answeredMsg:
		if msg.result != nil {
			s.result = msg.result
			if s.question != nil && s.question.Type == bank.TypeText {
				s.textIn.Submit(msg.result.Correct)
			}
		}
		// A failed progress write still shows the verdict; the quiz
		// keeps going.
		s.phase = phaseFeedback
		return s, nil

	case endedMsg:
		sumScreen := summary.New(msg.summary)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: sumScreen} }

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if s.phase == phaseEmpty {
				// Nothing ran, nothing to record.
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return s, s.endCmd()
		case "enter":
			switch s.phase {
			case phaseFeedback:
				return s, s.advance()
			case phaseEmpty:
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			case phaseQuestion:
				if s.question.Type == bank.TypeText {
					return s, s.submitCmd(s.textIn.Value())
				}
			}
		}
	}

	if s.phase == phaseQuestion && s.question != nil {
		var cmd tea.Cmd
		if s.question.Type == bank.TypeText {
			s.textIn, cmd = s.textIn.Update(msg)
			return s, cmd
		}
		wasSubmitted := s.choice.Submitted
		s.choice, cmd = s.choice.Update(msg)
		if !wasSubmitted && s.choice.Submitted {
			return s, s.submitCmd(strconv.Itoa(s.choice.ChosenIndex))
		}
		return s, cmd
	}
	return s, nil
}
