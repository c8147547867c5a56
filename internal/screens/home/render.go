package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcquiz/internal/ui/components"
	"github.com/abhisek/mcquiz/internal/ui/theme"
)

const titleFull = ` ██████╗███████╗███████╗    ███╗   ███╗ ██████╗ ██████╗
██╔════╝██╔════╝██╔════╝    ████╗ ████║██╔════╝██╔═══██╗
██║     ███████╗███████╗    ██╔████╔██║██║     ██║   ██║
██║     ╚════██║╚════██║    ██║╚██╔╝██║██║     ██║▄▄ ██║
╚██████╗███████║███████║    ██║ ╚═╝ ██║╚██████╗╚██████╔╝
 ╚═════╝╚══════╝╚══════╝    ╚═╝     ╚═╝ ╚═════╝ ╚══▀▀═╝`

const titleCompact = "C · S · S   M · C · Q"

// contentWidth returns the uniform inner width used for all sections so
// the boxes line up.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	title := titleFull
	if compact {
		title = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders bank size and lifetime accuracy in a bordered box.
func renderStatsBar(st stats, cw int, compact bool) string {
	bankStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	accStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	accuracy := dimStyle.Render("no answers yet")
	if st.answered > 0 {
		pct := float64(st.correct) / float64(st.answered) * 100
		accuracy = accStyle.Render(fmt.Sprintf("%.0f%% of %d answered", pct, st.answered))
	}

	var line string
	if compact {
		line = fmt.Sprintf("%s  %s",
			bankStyle.Render(fmt.Sprintf("%dQ/%dS", st.questions, st.skills)),
			accuracy)
	} else {
		line = fmt.Sprintf("%s  %s",
			bankStyle.Render(fmt.Sprintf("%d QUESTIONS · %d SKILLS", st.questions, st.skills)),
			accuracy)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(menu components.Menu, cw int) string {
	base := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	selectedBtn := base.
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		BorderForeground(theme.Primary)
	normalBtn := base.Foreground(theme.Text)
	disabledBtn := base.Foreground(theme.TextDim)

	var buttons []string
	for i, label := range menu.Labels() {
		switch {
		case menu.IsDisabled(i):
			buttons = append(buttons, disabledBtn.Render(label))
		case i == menu.Selected:
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		default:
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as plain lines for small terminals
// where bordered buttons would overflow.
func renderMenuCompact(menu components.Menu, cw int) string {
	var lines []string
	for i, label := range menu.Labels() {
		switch {
		case menu.IsDisabled(i):
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render("   "+label))
		case i == menu.Selected:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ "+label+" "))
		default:
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.Text).Render("   "+label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderFrame centers content inside a double border filling the area.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
