package components

import (
	"strconv"

	tea "charm.land/bubbletea/v2"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu. Rendering is left to the owning
// screen; Menu only tracks the selection.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items}
	for i, item := range items {
		if !item.Disabled {
			m.Selected = i
			break
		}
	}
	return m
}

// Update handles keyboard navigation. Up/down wrap around and skip
// disabled items; digits 1-9 select and activate the matching item.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		m.step(-1)
	case "down", "j":
		m.step(1)
	case "enter":
		return m, m.activate(m.Selected)
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Items) && n <= 9 {
			if m.Items[n-1].Disabled {
				return m, nil
			}
			m.Selected = n - 1
			return m, m.activate(m.Selected)
		}
	}

	return m, nil
}

// Labels returns the item labels in order.
func (m Menu) Labels() []string {
	labels := make([]string, len(m.Items))
	for i, item := range m.Items {
		labels[i] = item.Label
	}
	return labels
}

// IsDisabled reports whether item i is disabled.
func (m Menu) IsDisabled(i int) bool {
	return i >= 0 && i < len(m.Items) && m.Items[i].Disabled
}

func (m *Menu) step(delta int) {
	n := len(m.Items)
	for i := 1; i < n; i++ {
		next := ((m.Selected+delta*i)%n + n) % n
		if !m.Items[next].Disabled {
			m.Selected = next
			return
		}
	}
}

func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	item := m.Items[i]
	if item.Action == nil || item.Disabled {
		return nil
	}
	return item.Action()
}
