// Package home renders the entry screen with the main menu.
package home

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jheine/lernbox/internal/bank"
	"github.com/jheine/lernbox/internal/quiz"
	"github.com/jheine/lernbox/internal/router"
	"github.com/jheine/lernbox/internal/screen"
	"github.com/jheine/lernbox/internal/screens/history"
	"github.com/jheine/lernbox/internal/screens/setup"
	"github.com/jheine/lernbox/internal/screens/statistics"
	"github.com/jheine/lernbox/internal/screens/topics"
	"github.com/jheine/lernbox/internal/stats"
	"github.com/jheine/lernbox/internal/store"
	"github.com/jheine/lernbox/internal/ui/components"
	"github.com/jheine/lernbox/internal/ui/theme"
)

// HomeScreen is the landing screen with the main menu.
type HomeScreen struct {
	catalog *bank.Catalog
	menu    components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen and its menu.
func New(catalog *bank.Catalog, sess *quiz.Session, svc *stats.Service, st *store.Store) *HomeScreen {
	push := func(s screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}

	items := []components.MenuItem{
		{
			Label:       "Start Quiz",
			Description: "pick a mode and topic",
			Action:      push(setup.New(catalog, sess)),
			Disabled:    catalog.Len() == 0,
		},
		{
			Label:       "Topic Mastery",
			Description: "progress per topic",
			Action:      push(topics.New(svc)),
		},
		{
			Label:       "Statistics",
			Description: "overall performance",
			Action:      push(statistics.New(svc)),
		},
		{
			Label:       "History",
			Description: "past sessions",
			Action:      push(history.New(st.Sessions())),
		},
		{
			Label:  "Quit",
			Action: func() tea.Cmd { return tea.Quit },
		},
	}

	return &HomeScreen{
		catalog: catalog,
		menu:    components.NewMenu(items),
	}
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render("LERNBOX")
	subtitle := theme.Subtitle.Width(width).Render("flashcards with spaced repetition")

	info := fmt.Sprintf("%d questions · %d topics", s.catalog.Len(), len(s.catalog.Topics()))
	if s.catalog.Len() == 0 {
		info = "No questions loaded. Import a question bank to get started."
	}
	infoLine := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(width).
		Align(lipgloss.Center).
		Render(info)

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View())

	return "\n" + title + "\n" + subtitle + "\n\n" + infoLine + "\n\n" + menu
}
