// Package summary shows the results of a finished quiz.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jheine/lernbox/internal/quiz"
	"github.com/jheine/lernbox/internal/router"
	"github.com/jheine/lernbox/internal/screen"
	"github.com/jheine/lernbox/internal/ui/layout"
	"github.com/jheine/lernbox/internal/ui/theme"
)

// SummaryScreen displays the outcome of one quiz session.
type SummaryScreen struct {
	summary  *quiz.Summary
	selected int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen for the given session summary, which
// may be nil when nothing was recorded.
func New(sum *quiz.Summary) *SummaryScreen {
	return &SummaryScreen{summary: sum}
}

func (s *SummaryScreen) Init() tea.Cmd {
	// Progress changed during the quiz, the header count is stale.
	return func() tea.Msg { return screen.RefreshDueMsg{} }
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll results"},
		{Key: "Enter/Esc", Description: "Done"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.summary != nil && s.selected < len(s.summary.Results)-1 {
			s.selected++
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.summary == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Nothing to show.")
	}

	sum := s.summary
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Quiz Complete"))
	b.WriteString("\n\n")

	headline := fmt.Sprintf("%d/%d correct · %.0f%% accuracy · %d min",
		sum.Correct, sum.Answered, sum.Accuracy, sum.DurationMinutes)
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render(headline))
	b.WriteString("\n\n")

	if len(sum.Results) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No questions answered."))
		return b.String()
	}

	// Show a window of results around the selection.
	visible := height - 8
	if visible < 3 {
		visible = 3
	}
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}
	end := start + visible
	if end > len(sum.Results) {
		end = len(sum.Results)
	}

	for i := start; i < end; i++ {
		res := sum.Results[i]
		mark := theme.Correct.Render("✓")
		if !res.Correct {
			mark = theme.Incorrect.Render("✗")
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %s", prefix, mark, res.QuestionID)
		if !res.Correct {
			line += lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("  answer: " + res.CorrectAnswer)
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
