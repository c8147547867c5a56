package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcquiz/internal/bank"
	"github.com/abhisek/mcquiz/internal/router"
	"github.com/abhisek/mcquiz/internal/screen"
	"github.com/abhisek/mcquiz/internal/screens/history"
	quizscreen "github.com/abhisek/mcquiz/internal/screens/quiz"
	"github.com/abhisek/mcquiz/internal/screens/skillmap"
	"github.com/abhisek/mcquiz/internal/store"
	"github.com/abhisek/mcquiz/internal/ui/components"
	"github.com/abhisek/mcquiz/internal/ui/layout"
)

const (
	itemStart = iota
	itemSkills
	itemHistory
	itemExit
)

// HomeScreen is the landing screen: bank stats and the main menu.
type HomeScreen struct {
	menu  components.Menu
	stats stats
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// stats is what the dashboard bar shows.
type stats struct {
	questions int
	skills    int
	answered  int
	correct   int
}

// New creates a new HomeScreen. cfg is handed to every quiz started from
// the menu; without cfg.Events the history entry is disabled.
func New(cfg quizscreen.Config) *HomeScreen {
	st := stats{
		questions: bank.Count(cfg.Bank, "", ""),
		skills:    len(bank.Skills(cfg.Bank)),
	}
	var acc []store.SkillAccuracy
	if cfg.Events != nil {
		acc, _ = cfg.Events.SkillAccuracy(context.Background())
		for _, a := range acc {
			st.answered += a.Answered
			st.correct += a.Correct
		}
	}

	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(cfg)}
			}
		}},
		{Label: "SKILL MAP", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: skillmap.New(cfg, acc)}
			}
		}},
		{Label: "HISTORY", Disabled: cfg.Events == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(cfg.Events)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:  components.NewMenu(items),
		stats: st,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer.
	compact := height+8 < 30 || width < 100
	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(h.stats, cw, compact),
	}
	if compact {
		sections = append(sections, renderMenuCompact(h.menu, cw))
	} else {
		sections = append(sections, renderMenu(h.menu, cw))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
