// Package statistics renders the overall performance overview.
package statistics

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jheine/lernbox/internal/router"
	"github.com/jheine/lernbox/internal/screen"
	"github.com/jheine/lernbox/internal/stats"
	"github.com/jheine/lernbox/internal/ui/theme"
)

type loadedMsg struct {
	report *stats.Report
	err    error
}

// StatisticsScreen shows lifetime totals, the current week, and recent
// daily performance.
type StatisticsScreen struct {
	svc    *stats.Service
	report *stats.Report
	loaded bool
	errMsg string
}

var _ screen.Screen = (*StatisticsScreen)(nil)

// New creates the statistics screen.
func New(svc *stats.Service) *StatisticsScreen {
	return &StatisticsScreen{svc: svc}
}

func (s *StatisticsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		rep, err := s.svc.Report(context.Background())
		return loadedMsg{report: rep, err: err}
	}
}

func (s *StatisticsScreen) Title() string {
	return "Statistics"
}

func (s *StatisticsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
		} else {
			s.report = msg.report
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

func (s *StatisticsScreen) View(width, height int) string {
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

	ov := s.report.Overview
	var b strings.Builder
	b.WriteString("\n")

	lines := []string{
		fmt.Sprintf("Sessions          %d", ov.TotalSessions),
		fmt.Sprintf("Questions         %d", ov.QuestionsAnswered),
		fmt.Sprintf("Accuracy          %.1f%%", ov.Accuracy),
		fmt.Sprintf("Time spent        %d min", ov.MinutesSpent),
		fmt.Sprintf("Topics mastered   %d of %d", ov.TopicsMastered, ov.TopicCount),
	}
	if !ov.LastSession.IsZero() {
		lines = append(lines, fmt.Sprintf("Last session      %s", ov.LastSession.Format("Jan 02, 2006")))
	}
	lines = append(lines, "",
		fmt.Sprintf("This week         %d questions, %.1f%% accuracy",
			s.report.Weekly.Questions, s.report.Weekly.Accuracy))

	if len(ov.DifficultyCounts) > 0 {
		lines = append(lines, "", "Questions by difficulty")
		diffs := make([]string, 0, len(ov.DifficultyCounts))
		for d := range ov.DifficultyCounts {
			diffs = append(diffs, d)
		}
		sort.Strings(diffs)
		for _, d := range diffs {
			lines = append(lines, fmt.Sprintf("  %-12s %d", d, ov.DifficultyCounts[d]))
		}
	}

	if len(s.report.Recent) > 0 {
		lines = append(lines, "", "Last 30 days")
		for _, day := range s.report.Recent {
			lines = append(lines, fmt.Sprintf("  %s  %3d questions  %.0f%%",
				day.Date.Format("Jan 02"), day.Questions, day.Accuracy))
		}
	}

	card := theme.Card.Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	return b.String()
}
