package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcquiz/internal/ui/components"
	"github.com/abhisek/mcquiz/internal/ui/layout"
	"github.com/abhisek/mcquiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.mode == modeQuitConfirm {
		return renderQuitConfirm(width)
	}

	var b strings.Builder
	b.WriteString(s.renderFilterBar(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if len(s.questions) == 0 {
		b.WriteString(layout.Centered(theme.Hint, width, "No questions match this filter"))
		b.WriteString("\n\n")
	} else {
		b.WriteString(s.renderQuestion(width))
	}

	b.WriteString(s.renderActions(width))
	return b.String()
}

func (s *QuizScreen) renderFilterBar(width int) string {
	f := s.session.Filter()
	field := func(label, value string) string {
		return theme.FilterLabel.Render(label+": ") + theme.FilterValue.Render(value)
	}

	left := "  " + strings.Join([]string{
		field("Skill", f.Skill),
		field("Difficulty", f.Difficulty),
		field("Count", fmt.Sprint(f.Count)),
	}, "   ")

	right := theme.FilterLabel.Render(fmt.Sprintf("%d sampled", len(s.questions)))
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		return left
	}
	return left + strings.Repeat(" ", pad) + right
}

func (s *QuizScreen) renderQuestion(width int) string {
	q := s.questions[s.current]
	var b strings.Builder

	position := fmt.Sprintf("Question %d of %d  ·  %s  ·  answered %d",
		s.current+1, len(s.questions), q.Skill, len(s.session.Answers()))
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width, position))
	b.WriteString("\n\n")

	block := lipgloss.NewStyle().Width(min(width-8, 76)).Render(s.choice.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
	b.WriteString("\n")

	if s.showFeedback && s.choice.Chosen() {
		if s.choice.IsCorrect() {
			b.WriteString(layout.Centered(theme.Correct, width, "Correct!"))
		} else {
			b.WriteString(layout.Centered(theme.Incorrect, width, "Incorrect. Answer: "+q.Correct))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (s *QuizScreen) renderActions(width int) string {
	var b strings.Builder

	if s.mode == modeExportPrompt {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	} else {
		label := fmt.Sprintf("Download %d Questions as Excel", len(s.questions))
		btn := components.NewButton(label, "x", len(s.questions) > 0)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, btn.View()))
	}
	b.WriteString("\n")

	if s.status != "" {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if s.failed {
			style = style.Foreground(theme.Error)
		}
		b.WriteString("\n")
		b.WriteString(layout.Centered(style, width, s.status))
	}
	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Text).Bold(true), width, "End this quiz?"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width, "Your answers are kept in history."))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Success), width, "[Y] Yes, show summary"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Primary), width, "[N] No, keep going"))
	return b.String()
}
