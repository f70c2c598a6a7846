package practice

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/kata"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/ui/components"
	"github.com/Dolphin-ZAAZ/Coderil-sub000/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	switch s.phase {
	case phaseRunnerInfo:
		return s.renderRunnerInfo(width)
	case phaseJudging:
		return s.renderJudging(width)
	case phaseResult, phaseCountdown:
		return s.renderResult(width)
	default:
		return s.renderAnswering(width)
	}
}

func (s *PracticeScreen) renderAnswering(width int) string {
	var b strings.Builder

	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	statement := s.statement
	if statement == "" {
		statement = s.kata.Title
	}
	if s.kata.Type == kata.TypeMultiQuestion && s.qIndex < len(s.kata.Questions) {
		q := s.kata.Questions[s.qIndex]
		statement = fmt.Sprintf("Question %d of %d\n\n%s", s.qIndex+1, len(s.kata.Questions), q.Prompt)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Render("  " + strings.ReplaceAll(statement, "\n", "\n  ")))
	b.WriteString("\n\n")

	switch {
	case s.currentKind() == kata.KindMultipleChoice:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
	case s.usesTextarea():
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.area.View()))
	default:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View()))
	}

	submitKey := "Enter"
	if s.usesTextarea() {
		submitKey = "Ctrl+S"
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.NewButton("Submit ("+submitKey+")", true, nil).View()))

	return b.String()
}

func (s *PracticeScreen) renderInfoLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", s.kata.Title))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %s · %s", s.kata.Type, s.kata.Difficulty, s.kata.Language))

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

func (s *PracticeScreen) renderRunnerInfo(width int) string {
	msg := fmt.Sprintf(
		"%q is a %s kata.\n\nSolve it in your editor, run its test suites, then grade it with:\n\n  coderil submit %s --public public.json --hidden hidden.json",
		s.kata.Title, s.kata.Type, s.kata.Slug,
	)
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("\n\n" + msg)
}

func (s *PracticeScreen) renderJudging(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n  Judging your submission...")
}

func (s *PracticeScreen) renderResult(width int) string {
	res := s.result
	if res == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	verdict := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Bold(true)
	switch {
	case res.Ungraded:
		b.WriteString(verdict.Foreground(theme.Accent).Render("Ungraded"))
	case res.Passed:
		b.WriteString(verdict.Foreground(theme.Success).Render("Passed!"))
	default:
		b.WriteString(verdict.Foreground(theme.Error).Render("Not yet"))
	}
	b.WriteString("\n")

	barWidth := min(width-12, 48)
	bar := components.NewProgressBar("Score", res.Score/100, true, barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	for _, sub := range res.SubResults {
		mark := lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		if sub.Passed {
			mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		}
		line := fmt.Sprintf("  %s %s", mark, sub.Name)
		if sub.Message != "" {
			line += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + sub.Message)
		}
		b.WriteString(line + "\n")
	}

	if res.Message != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Foreground(theme.TextDim).
			Render("  " + res.Message))
		b.WriteString("\n")
	}

	if s.storeWarn != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("  " + s.storeWarn))
		b.WriteString("\n")
	}

	if s.phase == phaseCountdown && s.notif != nil {
		remaining := time.Until(s.deadline)
		if remaining < 0 {
			remaining = 0
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Primary).
			Bold(true).
			Render(fmt.Sprintf("%s (%.0fs — press any key to stay)", s.notif.Message, remaining.Seconds())))
	}

	return b.String()
}
