package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcquiz/internal/router"
	"github.com/abhisek/mcquiz/internal/screen"
	"github.com/abhisek/mcquiz/internal/store"
	"github.com/abhisek/mcquiz/internal/ui/layout"
	"github.com/abhisek/mcquiz/internal/ui/theme"
)

const sessionLimit = 50

type historyLoadedMsg struct {
	Sessions []store.SessionRecord
	Err      error
}

type answersLoadedMsg struct {
	SessionID string
	Answers   []store.AnswerRecord
	Err       error
}

// HistoryScreen lists finished quizzes; Enter expands one to its answers.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionRecord
	answers   map[string][]store.AnswerRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		answers:   make(map[string][]store.AnswerRecord),
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sessions, err := s.eventRepo.QuerySessions(context.Background(), store.QueryOpts{Limit: sessionLimit})
		return historyLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answers"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case answersLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.answers[msg.SessionID] = msg.Answers
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			return s, s.toggle()
		}
	}
	return s, nil
}

// toggle expands or collapses the selected session, loading its answers
// the first time it is expanded.
func (s *HistoryScreen) toggle() tea.Cmd {
	if s.selected >= len(s.sessions) {
		return nil
	}
	s.expanded[s.selected] = !s.expanded[s.selected]
	id := s.sessions[s.selected].SessionID
	if _, ok := s.answers[id]; ok || !s.expanded[s.selected] {
		return nil
	}
	return func() tea.Msg {
		answers, err := s.eventRepo.SessionAnswers(context.Background(), id)
		return answersLoadedMsg{SessionID: id, Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes yet. Start one from the home screen!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(prefix+FormatSession(sess))))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderAnswers(sess.SessionID, width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderAnswers(sessionID string, width int) string {
	answers, ok := s.answers[sessionID]
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	switch {
	case !ok:
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("    Loading answers...")) + "\n"
	case len(answers) == 0:
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("    No answers recorded")) + "\n"
	}

	var b strings.Builder
	for _, a := range answers {
		style := theme.Correct
		if !a.Correct {
			style = theme.Incorrect
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.UnsetBold().Render("    "+FormatAnswer(a))))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatSession renders one finished session as a single line.
func FormatSession(sess store.SessionRecord) string {
	var accuracy float64
	if sess.Answered > 0 {
		accuracy = float64(sess.CorrectAnswers) / float64(sess.Answered) * 100
	}
	line := fmt.Sprintf("%s  %d:%02d  %s/%s  %d/%d correct  %.0f%% accuracy",
		sess.Timestamp.Local().Format("Jan 02, 2006 15:04"),
		sess.DurationSecs/60, sess.DurationSecs%60,
		sess.Skill, sess.Difficulty,
		sess.CorrectAnswers, sess.QuestionsServed, accuracy)
	if sess.Exports > 0 {
		line += fmt.Sprintf("  %d export", sess.Exports)
		if sess.Exports > 1 {
			line += "s"
		}
	}
	return line
}

// FormatAnswer renders one recorded answer as a single line.
func FormatAnswer(a store.AnswerRecord) string {
	mark := "✓"
	if !a.Correct {
		mark = "✗"
	}
	line := fmt.Sprintf("%s Q%d %s: %s", mark, a.QuestionIndex+1, a.Skill, a.SelectedAnswer)
	if !a.Correct {
		line += fmt.Sprintf(" (answer: %s)", a.CorrectAnswer)
	}
	return line
}
