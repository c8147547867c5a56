package app

import (
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcquiz/internal/bank"
	"github.com/abhisek/mcquiz/internal/quiz"
	"github.com/abhisek/mcquiz/internal/router"
	"github.com/abhisek/mcquiz/internal/screen"
	"github.com/abhisek/mcquiz/internal/screens/home"
	quizscreen "github.com/abhisek/mcquiz/internal/screens/quiz"
	"github.com/abhisek/mcquiz/internal/store"
	"github.com/abhisek/mcquiz/internal/ui/layout"
)

// Options configures the interactive program.
type Options struct {
	Bank      bank.Bank
	Events    store.EventRepo // optional; disables history when nil
	ExportDir string
	Filter    quiz.Filter
	// Direct skips the home screen and opens a quiz immediately.
	Direct bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
	// quitOnRootPop ends the program when the root screen asks to go back.
	quitOnRootPop bool
}

// newAppModel creates a new AppModel rooted at the home screen, or at a
// quiz when opts.Direct is set.
func newAppModel(opts Options) AppModel {
	cfg := quizscreen.Config{
		Bank:      opts.Bank,
		Events:    opts.Events,
		ExportDir: opts.ExportDir,
		Filter:    opts.Filter,
	}
	var root screen.Screen = home.New(cfg)
	if opts.Direct {
		root = quizscreen.New(cfg)
	}
	return AppModel{
		router:        router.New(root),
		quitOnRootPop: opts.Direct,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.PopScreenMsg:
		if m.quitOnRootPop && m.router.Depth() <= 1 {
			return m, tea.Quit
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		return kp.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Bank == nil {
		return errors.New("app: no question bank")
	}
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
