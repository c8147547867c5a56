// Package skillmap lists the bank's skills with per-difficulty question
// counts and lifetime accuracy. Enter starts a quiz on the selected pair.
package skillmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcquiz/internal/bank"
	"github.com/abhisek/mcquiz/internal/quiz"
	"github.com/abhisek/mcquiz/internal/router"
	"github.com/abhisek/mcquiz/internal/screen"
	quizscreen "github.com/abhisek/mcquiz/internal/screens/quiz"
	"github.com/abhisek/mcquiz/internal/store"
	"github.com/abhisek/mcquiz/internal/ui/layout"
	"github.com/abhisek/mcquiz/internal/ui/theme"
)

type rowKind int

const (
	rowSkillHeader rowKind = iota
	rowDifficulty
)

type row struct {
	kind       rowKind
	skill      string
	difficulty string
	count      int
}

// SkillMapScreen displays skills grouped with their difficulties.
type SkillMapScreen struct {
	cfg          quizscreen.Config
	rows         []row
	cursor       int
	scrollOffset int
	accuracy     map[string]store.SkillAccuracy
}

var _ screen.Screen = (*SkillMapScreen)(nil)
var _ screen.KeyHintProvider = (*SkillMapScreen)(nil)

// New creates a new SkillMapScreen. Quizzes started from it inherit cfg
// with the filter replaced by the selected skill and difficulty.
func New(cfg quizscreen.Config, acc []store.SkillAccuracy) *SkillMapScreen {
	accuracy := make(map[string]store.SkillAccuracy, len(acc))
	for _, a := range acc {
		accuracy[a.Skill] = a
	}

	difficulties := bank.Difficulties(cfg.Bank)
	var rows []row
	for _, skill := range bank.Skills(cfg.Bank) {
		rows = append(rows, row{kind: rowSkillHeader, skill: skill})
		for _, d := range difficulties {
			rows = append(rows, row{
				kind:       rowDifficulty,
				skill:      skill,
				difficulty: d,
				count:      bank.Count(cfg.Bank, skill, d),
			})
		}
	}

	s := &SkillMapScreen{
		cfg:      cfg,
		rows:     rows,
		accuracy: accuracy,
	}

	// Set cursor to first selectable row
	for i, r := range s.rows {
		if r.kind == rowDifficulty {
			s.cursor = i
			break
		}
	}

	return s
}

func (s *SkillMapScreen) Init() tea.Cmd {
	return nil
}

func (s *SkillMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextSkill()
		case "shift+tab":
			s.prevSkill()
		case "enter":
			return s, s.startQuiz()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SkillMapScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\nThe question bank is empty.")
	}

	s.adjustScroll(height)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}

		switch r.kind {
		case rowSkillHeader:
			lines = append(lines, s.renderSkillHeader(r.skill, width))
		case rowDifficulty:
			lines = append(lines, s.renderDifficultyRow(r, i == s.cursor, width))
		}
		visible++
	}

	return strings.Join(lines, "\n")
}

func (s *SkillMapScreen) Title() string {
	return "Skill Map"
}

func (s *SkillMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Skill"},
		{Key: "Enter", Description: "Start quiz"},
		{Key: "Esc", Description: "Back"},
	}
}

// moveCursor moves the cursor by delta, skipping skill headers.
func (s *SkillMapScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowDifficulty {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextSkill jumps the cursor to the first difficulty of the next skill.
func (s *SkillMapScreen) nextSkill() {
	current := s.rows[s.cursor].skill
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowDifficulty && s.rows[i].skill != current {
			s.cursor = i
			return
		}
	}
}

// prevSkill jumps the cursor to the first difficulty of the previous skill.
func (s *SkillMapScreen) prevSkill() {
	current := s.rows[s.cursor].skill

	prev := ""
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].skill != current {
			prev = s.rows[i].skill
			break
		}
	}
	if prev == "" {
		return
	}
	for i, r := range s.rows {
		if r.kind == rowDifficulty && r.skill == prev {
			s.cursor = i
			return
		}
	}
}

// adjustScroll keeps the cursor and its skill header in the viewport.
func (s *SkillMapScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow].kind != rowSkillHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

// startQuiz pushes a quiz filtered to the selected row. Empty pairs are
// not selectable.
func (s *SkillMapScreen) startQuiz() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowDifficulty || r.count == 0 {
		return nil
	}

	cfg := s.cfg
	cfg.Filter = quiz.Filter{Skill: r.skill, Difficulty: r.difficulty, Count: quiz.DefaultCount}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: quizscreen.New(cfg)}
	}
}

func (s *SkillMapScreen) renderSkillHeader(skill string, width int) string {
	name := strings.ToUpper(skill)
	if a, ok := s.accuracy[skill]; ok && a.Answered > 0 {
		name += lipgloss.NewStyle().Foreground(theme.TextDim).Bold(false).
			Render(fmt.Sprintf("  %.0f%% of %d answered", a.Accuracy()*100, a.Answered))
	}
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(name)
}

func (s *SkillMapScreen) renderDifficultyRow(r row, selected bool, width int) string {
	nameWidth := width - 4 - 16
	if nameWidth < 10 {
		nameWidth = 10
	}

	var nameStyle, countStyle lipgloss.Style
	switch {
	case selected:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		countStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	case r.count == 0:
		nameStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
		countStyle = nameStyle
	default:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
		countStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	return fmt.Sprintf("  %s%s  %s",
		cursor,
		nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, r.difficulty)),
		countStyle.Render(fmt.Sprintf("%3d questions", r.count)),
	)
}
