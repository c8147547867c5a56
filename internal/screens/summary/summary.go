package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcquiz/internal/quiz"
	"github.com/abhisek/mcquiz/internal/router"
	"github.com/abhisek/mcquiz/internal/screen"
	"github.com/abhisek/mcquiz/internal/ui/components"
	"github.com/abhisek/mcquiz/internal/ui/layout"
	"github.com/abhisek/mcquiz/internal/ui/theme"
)

// SummaryScreen displays the result of a finished quiz.
type SummaryScreen struct {
	summary  quiz.Summary
	duration time.Duration
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.StatusProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary quiz.Summary, duration time.Duration) *SummaryScreen {
	return &SummaryScreen{summary: summary, duration: duration}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Quiz Summary"
}

func (s *SummaryScreen) Status() string {
	return fmt.Sprintf("Score %d/%d", s.summary.Correct, s.summary.Questions)
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	var b strings.Builder

	b.WriteString(layout.Centered(theme.Title, width, "Quiz complete!"))
	b.WriteString("\n\n")

	f := sum.Filter
	filterLine := fmt.Sprintf("%s · %s · %d requested", f.Skill, f.Difficulty, f.Count)
	b.WriteString(layout.Centered(theme.Subtitle, width, filterLine))
	b.WriteString("\n")

	mins := int(s.duration.Minutes())
	secs := int(s.duration.Seconds()) % 60
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width,
		fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Questions: %d        Answered: %d        Correct: %d        Accuracy: %.0f%%",
		sum.Questions, sum.Answered, sum.Correct, sum.Accuracy*100)
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Text), width, statsLine))
	b.WriteString("\n\n")

	if len(sum.Skills) == 0 {
		b.WriteString(layout.Centered(theme.Hint, width, "No questions were sampled."))
		return b.String()
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Skills")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, layout.Divider(width, 60)))
	b.WriteString("\n\n")

	barWidth := min(width-8, 60)
	for _, sr := range sum.Skills {
		label := fmt.Sprintf("%-12s", sr.Skill)
		bar := components.NewProgressBar(label, sr.Correct, sr.Questions, barWidth)
		style := lipgloss.NewStyle()
		if sr.Questions > 0 && sr.Correct == sr.Questions {
			style = style.Foreground(theme.Success)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(bar.View())))
		b.WriteString("\n")
	}

	return b.String()
}
