// Package setup lets the learner configure a quiz before starting it.
package setup

import (
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jheine/lernbox/internal/bank"
	"github.com/jheine/lernbox/internal/quiz"
	"github.com/jheine/lernbox/internal/router"
	"github.com/jheine/lernbox/internal/screen"
	"github.com/jheine/lernbox/internal/screens/session"
	"github.com/jheine/lernbox/internal/selection"
	"github.com/jheine/lernbox/internal/ui/components"
	"github.com/jheine/lernbox/internal/ui/layout"
	"github.com/jheine/lernbox/internal/ui/theme"
)

// DefaultCount is the question count preselected in the setup form.
const DefaultCount = 10

type step int

const (
	stepMode step = iota
	stepTopic
	stepDifficulty
	stepCount
)

// SetupScreen walks through mode, topic, difficulty, and question count.
type SetupScreen struct {
	catalog *bank.Catalog
	sess    *quiz.Session

	step      step
	modeMenu  components.Menu
	topicMenu components.Menu
	diffMenu  components.Menu
	countIn   components.TextInput

	mode       selection.Mode
	topic      string
	difficulty string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the setup screen.
func New(catalog *bank.Catalog, sess *quiz.Session) *SetupScreen {
	s := &SetupScreen{
		catalog: catalog,
		sess:    sess,
		countIn: components.NewTextInput("10", true, 3),
	}

	pick := func(m selection.Mode) func() tea.Cmd {
		return func() tea.Cmd {
			s.mode = m
			s.step = stepTopic
			return nil
		}
	}
	s.modeMenu = components.NewMenu([]components.MenuItem{
		{Label: "Normal", Description: "random questions", Action: pick(selection.ModeNormal)},
		{Label: "Weak Spots", Description: "lowest success rate first", Action: pick(selection.ModeWeakSpots)},
		{Label: "Spaced Repetition", Description: "questions due for review", Action: pick(selection.ModeSpacedRepetition)},
		{Label: "Exam", Description: "even coverage across topics", Action: pick(selection.ModeExam)},
	})

	pickTopic := func(topic string) func() tea.Cmd {
		return func() tea.Cmd {
			s.topic = topic
			s.step = stepDifficulty
			return nil
		}
	}
	items := []components.MenuItem{
		{Label: "All Topics", Action: pickTopic("")},
	}
	for _, topic := range catalog.Topics() {
		items = append(items, components.MenuItem{Label: topic, Action: pickTopic(topic)})
	}
	s.topicMenu = components.NewMenu(items)

	pickDifficulty := func(diff string) func() tea.Cmd {
		return func() tea.Cmd {
			s.difficulty = diff
			s.step = stepCount
			return s.countIn.Init()
		}
	}
	s.diffMenu = components.NewMenu([]components.MenuItem{
		{Label: "Any", Action: pickDifficulty("")},
		{Label: "Easy", Action: pickDifficulty("easy")},
		{Label: "Medium", Action: pickDifficulty("medium")},
		{Label: "Hard", Action: pickDifficulty("hard")},
	})

	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Quiz"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

// Config assembles the quiz configuration from the chosen values.
func (s *SetupScreen) Config() quiz.Config {
	count := DefaultCount
	if n, err := s.countIn.NumericValue(); err == nil && n > 0 {
		count = n
	}
	cfg := quiz.Config{
		Mode:  s.mode,
		Count: count,
	}
	if s.topic != "" {
		cfg.Filter.Topics = []string{s.topic}
	}
	cfg.Filter.Difficulty = s.difficulty
	return cfg
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		// Walk the form backwards before popping the screen.
		switch s.step {
		case stepCount:
			s.step = stepDifficulty
			return s, nil
		case stepDifficulty:
			s.step = stepTopic
			return s, nil
		case stepTopic:
			s.step = stepMode
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	switch s.step {
	case stepMode:
		s.modeMenu, cmd = s.modeMenu.Update(msg)
	case stepTopic:
		s.topicMenu, cmd = s.topicMenu.Update(msg)
	case stepDifficulty:
		s.diffMenu, cmd = s.diffMenu.Update(msg)
	case stepCount:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			quizScreen := session.New(s.sess, s.Config())
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: quizScreen} }
		}
		s.countIn, cmd = s.countIn.Update(msg)
	}
	return s, cmd
}

func (s *SetupScreen) View(width, height int) string {
	var heading, body string
	switch s.step {
	case stepMode:
		heading = "Choose a quiz mode"
		body = s.modeMenu.View()
	case stepTopic:
		heading = "Choose a topic"
		body = s.topicMenu.View()
	case stepDifficulty:
		heading = "Choose a difficulty"
		body = s.diffMenu.View()
	case stepCount:
		heading = "How many questions?"
		body = s.countIn.View() + "\n\n" +
			theme.Hint.Render("Enter to start, empty for "+strconv.Itoa(DefaultCount))
	}

	head := theme.Title.Width(width).Render(heading)
	content := lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
	return "\n\n" + head + "\n\n" + content
}
