package components

import (
	"github.com/abhisek/mcquiz/internal/ui/theme"
)

// Button is a styled call-to-action with a shortcut key. The owning screen
// handles the key; Button only renders.
type Button struct {
	Label  string
	Key    string
	Active bool
}

// NewButton creates a new button.
func NewButton(label, key string, active bool) Button {
	return Button{
		Label:  label,
		Key:    key,
		Active: active,
	}
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Key != "" {
		label = "[" + b.Key + "] " + label
	}
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
