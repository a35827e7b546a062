package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jheine/lernbox/internal/bank"
	"github.com/jheine/lernbox/internal/ui/components"
	"github.com/jheine/lernbox/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\nError: " + s.errMsg)
	}

	switch s.phase {
	case phaseLoading:
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Selecting questions...")
	case phaseEmpty:
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No questions match this selection.\n  Try another topic or mode.")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.progressLine(width)))
	b.WriteString("\n\n")

	card := s.questionCard(width)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))

	if s.phase == phaseFeedback && s.result != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.feedback(width)))
	}

	return b.String()
}

func (s *QuizScreen) progressLine(width int) string {
	snap, ok := s.sess.Progress()
	if !ok {
		return ""
	}
	barWidth := width / 2
	if barWidth > 60 {
		barWidth = 60
	}
	var percent float64
	if snap.Total > 0 {
		percent = float64(snap.Answered) / float64(snap.Total)
	}
	label := fmt.Sprintf("%d/%d", snap.Answered, snap.Total)
	bar := components.NewProgressBar(label, percent, false, barWidth)

	line := bar.View()
	if snap.TimeLimit > 0 {
		remaining := snap.TimeLimit - snap.Elapsed
		if remaining < 0 {
			remaining = 0
		}
		line += lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("  %d:%02d left", int(remaining.Minutes()), int(remaining.Seconds())%60))
	}
	return line
}

func (s *QuizScreen) questionCard(width int) string {
	if s.question == nil {
		return ""
	}

	cardWidth := width - 8
	if cardWidth > 76 {
		cardWidth = 76
	}

	var body string
	if s.question.Type == bank.TypeText {
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.question.Text)
		body = prompt + "\n\n" + s.textIn.View()
	} else {
		body = s.choice.View()
	}

	return theme.Card.Width(cardWidth).Render(body)
}

func (s *QuizScreen) feedback(width int) string {
	var b strings.Builder

	if s.result.Correct {
		b.WriteString(theme.Correct.Render("✓ Correct"))
	} else {
		b.WriteString(theme.Incorrect.Render("✗ Incorrect"))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("Answer: " + s.result.CorrectAnswer))
	}
	if s.result.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(s.result.Explanation))
	}
	if s.result.SourceReference != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Source: " + s.result.SourceReference))
	}

	boxWidth := width - 8
	if boxWidth > 76 {
		boxWidth = 76
	}
	return lipgloss.NewStyle().Width(boxWidth).Render(b.String())
}
