package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcquiz/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with mcquiz styling.
type TextInput struct {
	Model     textinput.Model
	Label     string
	submitted bool
	valid     bool
}

// NewTextInput creates a focused text input prefilled with value.
func NewTextInput(label, value string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = label
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	ti.SetValue(value)
	ti.CursorEnd()
	ti.Focus()

	return TextInput{
		Model: ti,
		Label: label,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.Label != "" {
		view = lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.Label+": ") + view
	}
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Submit marks the input as submitted with a validation result.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
