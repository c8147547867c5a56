package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcquiz/internal/ui/theme"
)

// MultiChoice renders a question with numbered options. Choosing is left to
// the owning screen; the component tracks the cursor, the chosen option and
// whether correctness is revealed.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Cursor       int
	ChosenIndex  int
	Reveal       bool
}

// NewMultiChoice creates a new multiple-choice component with nothing chosen.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update moves the cursor.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	}
	return m, nil
}

// Choose marks option i as chosen and moves the cursor to it.
func (m *MultiChoice) Choose(i int) {
	if i < 0 || i >= len(m.Options) {
		return
	}
	m.ChosenIndex = i
	m.Cursor = i
}

// Chosen reports whether an option has been chosen.
func (m MultiChoice) Chosen() bool {
	return m.ChosenIndex >= 0
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	questionStyle := theme.Body.Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	reveal := m.Reveal && m.Chosen()
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}
		marker := " "
		if i == m.ChosenIndex {
			marker = "•"
		}
		line := fmt.Sprintf("%s%d) %s %s", prefix, i+1, marker, opt)

		switch {
		case reveal && i == m.CorrectIndex:
			s += theme.Correct.Render(line+"  ✓") + "\n"
		case reveal && i == m.ChosenIndex:
			s += theme.Incorrect.Render(line+"  ✗") + "\n"
		case i == m.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}

// IsCorrect returns true if the chosen option is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Chosen() && m.ChosenIndex == m.CorrectIndex
}
