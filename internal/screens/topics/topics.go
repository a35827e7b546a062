// Package topics shows mastery progress per topic.
package topics

import (
	"context"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jheine/lernbox/internal/router"
	"github.com/jheine/lernbox/internal/screen"
	"github.com/jheine/lernbox/internal/stats"
	"github.com/jheine/lernbox/internal/ui/components"
	"github.com/jheine/lernbox/internal/ui/theme"
)

type loadedMsg struct {
	mastery map[string]float64
	err     error
}

// TopicsScreen renders a mastery bar per tracked topic.
type TopicsScreen struct {
	svc     *stats.Service
	mastery map[string]float64
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*TopicsScreen)(nil)

// New creates the topic mastery screen.
func New(svc *stats.Service) *TopicsScreen {
	return &TopicsScreen{svc: svc}
}

func (s *TopicsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		m, err := s.svc.TopicMastery(context.Background())
		return loadedMsg{mastery: m, err: err}
	}
}

func (s *TopicsScreen) Title() string {
	return "Topic Mastery"
}

func (s *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.mastery = msg.mastery
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *TopicsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\nError: " + s.errMsg)
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading...")
	}
	if len(s.mastery) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No topic progress yet. Answer some questions first.")
	}

	// Strongest topics first.
	names := make([]string, 0, len(s.mastery))
	labelWidth := 0
	for name := range s.mastery {
		names = append(names, name)
		if len(name) > labelWidth {
			labelWidth = len(name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		if s.mastery[names[i]] != s.mastery[names[j]] {
			return s.mastery[names[i]] > s.mastery[names[j]]
		}
		return names[i] < names[j]
	})

	barWidth := width / 2
	if barWidth > 60 {
		barWidth = 60
	}

	var b strings.Builder
	b.WriteString("\n")
	for _, name := range names {
		label := name + strings.Repeat(" ", labelWidth-len(name))
		bar := components.NewProgressBar(label, s.mastery[name]/100, true, barWidth)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}

	return b.String()
}
