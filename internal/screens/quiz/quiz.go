// Package quiz implements the interactive quiz screen: filter controls, the
// current question, inline feedback and the export prompt.
package quiz

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/mcquiz/internal/bank"
	"github.com/abhisek/mcquiz/internal/export"
	qz "github.com/abhisek/mcquiz/internal/quiz"
	"github.com/abhisek/mcquiz/internal/router"
	"github.com/abhisek/mcquiz/internal/screen"
	"github.com/abhisek/mcquiz/internal/screens/summary"
	"github.com/abhisek/mcquiz/internal/store"
	"github.com/abhisek/mcquiz/internal/ui/components"
	"github.com/abhisek/mcquiz/internal/ui/layout"
)

const exportTimeout = 30 * time.Second

type mode int

const (
	modeAnswering mode = iota
	modeExportPrompt
	modeQuitConfirm
)

// Config holds the quiz screen dependencies.
type Config struct {
	Bank      bank.Bank
	Events    store.EventRepo // optional
	ExportDir string
	Filter    qz.Filter
	Rand      qz.RandSource // optional
}

// QuizScreen drives one quiz session.
type QuizScreen struct {
	session   *qz.Session
	events    store.EventRepo
	exportDir string
	sessionID string
	startedAt time.Time
	exports   int // successful exports in the current history session

	skills       []string
	difficulties []string

	questions    []bank.Question
	current      int
	choice       components.MultiChoice
	showFeedback bool

	mode   mode
	input  components.TextInput
	status string
	failed bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.EscHandler = (*QuizScreen)(nil)

// New creates a QuizScreen and draws the first sample from cfg.Filter.
func New(cfg Config) *QuizScreen {
	var opts []qz.Option
	if cfg.Rand != nil {
		opts = append(opts, qz.WithRandSource(cfg.Rand))
	}
	if cfg.Filter != (qz.Filter{}) {
		opts = append(opts, qz.WithFilter(cfg.Filter))
	}

	s := &QuizScreen{
		session:      qz.NewSession(cfg.Bank, opts...),
		events:       cfg.Events,
		exportDir:    cfg.ExportDir,
		skills:       append([]string{qz.AllSkills}, bank.Skills(cfg.Bank)...),
		difficulties: bank.Difficulties(cfg.Bank),
		showFeedback: true,
	}
	s.resample()
	s.beginHistory()
	return s
}

// Session returns the quiz session driven by this screen.
func (s *QuizScreen) Session() *qz.Session {
	return s.session
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Status() string {
	return fmt.Sprintf("Score %d/%d", s.session.Score(), s.session.Len())
}

func (s *QuizScreen) HandlesEsc() bool {
	return true
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeExportPrompt:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Export"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "←→", Description: "Question"},
		{Key: "s/d/[]", Description: "Filter"},
		{Key: "f", Description: "Feedback"},
		{Key: "x", Description: "Export"},
		{Key: "Esc", Description: "End"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		return s.handleExportDone(msg)

	case tea.KeyMsg:
		switch s.mode {
		case modeExportPrompt:
			return s.handleExportKey(msg)
		case modeQuitConfirm:
			return s.handleQuitKey(msg)
		}
		return s.handleKey(msg)
	}

	if s.mode == modeExportPrompt {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	f := s.session.Filter()

	switch key {
	case "esc":
		s.mode = modeQuitConfirm
		return s, nil
	case "s":
		s.restart(qz.WithSkill(cycle(s.skills, f.Skill)))
	case "d":
		if len(s.difficulties) > 0 {
			s.restart(qz.WithDifficulty(cycle(s.difficulties, f.Difficulty)))
		}
	case "]":
		s.restart(qz.WithCount(qz.NextCount(f.Count)))
	case "[":
		s.restart(qz.WithCount(qz.PrevCount(f.Count)))
	case "r":
		s.restart()
	case "right", "l", "n", "tab":
		s.goTo(s.current + 1)
	case "left", "h", "p", "shift+tab":
		s.goTo(s.current - 1)
	case "f":
		s.showFeedback = !s.showFeedback
		s.choice.Reveal = s.showFeedback
	case "x":
		s.mode = modeExportPrompt
		s.input = components.NewTextInput("File name", s.session.FileNameHint(), 128)
		return s, s.input.Init()
	case "enter":
		return s.answer(s.choice.Cursor)
	case "1", "2", "3", "4":
		return s.answer(int(key[0] - '1'))
	default:
		s.choice, _ = s.choice.Update(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleExportKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeAnswering
		return s, nil
	case "enter":
		name := strings.TrimSpace(s.input.Value())
		if name == "" {
			s.input.Submit(false)
			return s, nil
		}
		s.mode = modeAnswering
		s.setStatus("Exporting...", false)
		return s, s.exportCmd(name)
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *QuizScreen) handleQuitKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return s, s.finish()
	case "n", "N", "esc":
		s.mode = modeAnswering
	}
	return s, nil
}

// restart draws a new sample and opens a new history session for it. The
// previous history session is closed first when it saw any answers or
// exports; untouched samples leave only a start event behind.
func (s *QuizScreen) restart(opts ...qz.FilterOption) {
	sum := s.session.Summary()
	elapsed := time.Since(s.startedAt)
	active := sum.Answered > 0 || s.exports > 0

	s.resample(opts...)
	if active {
		s.recordEnd(sum, elapsed)
	}
	s.beginHistory()
}

// beginHistory assigns a fresh history session id and records its start.
func (s *QuizScreen) beginHistory() {
	s.sessionID = uuid.NewString()
	s.startedAt = time.Now()
	s.exports = 0

	f := s.session.Filter()
	s.persist(func(ctx context.Context) error {
		return s.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:  s.sessionID,
			Action:     store.ActionStart,
			Skill:      f.Skill,
			Difficulty: f.Difficulty,
			Count:      f.Count,
		})
	})
}

func (s *QuizScreen) recordEnd(sum qz.Summary, elapsed time.Duration) {
	s.persist(func(ctx context.Context) error {
		return s.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:       s.sessionID,
			Action:          store.ActionEnd,
			Skill:           sum.Filter.Skill,
			Difficulty:      sum.Filter.Difficulty,
			Count:           sum.Filter.Count,
			QuestionsServed: sum.Questions,
			Answered:        sum.Answered,
			CorrectAnswers:  sum.Correct,
			DurationSecs:    int(elapsed.Seconds()),
		})
	})
}

// resample applies opts through SetFilter, which always draws a new sample
// and clears answers, and resets the question cursor.
func (s *QuizScreen) resample(opts ...qz.FilterOption) {
	s.questions = s.session.SetFilter(opts...)
	s.current = 0
	s.loadChoice()
	s.status = ""
}

func (s *QuizScreen) goTo(i int) {
	if len(s.questions) == 0 {
		return
	}
	s.current = min(max(i, 0), len(s.questions)-1)
	s.loadChoice()
}

// loadChoice rebuilds the option list for the current question, restoring
// any answer already recorded for it.
func (s *QuizScreen) loadChoice() {
	if len(s.questions) == 0 {
		s.choice = components.MultiChoice{}
		return
	}
	q := s.questions[s.current]
	s.choice = components.NewMultiChoice(q.Question, q.Options, q.CorrectIndex())
	s.choice.Reveal = s.showFeedback
	if a, ok := s.session.AnswerAt(s.current); ok {
		s.choice.Choose(slices.Index(q.Options, a.Selected))
	}
}

func (s *QuizScreen) answer(option int) (screen.Screen, tea.Cmd) {
	if len(s.questions) == 0 || option < 0 || option >= len(s.choice.Options) {
		return s, nil
	}
	q := s.questions[s.current]
	selected := q.Options[option]

	a, err := s.session.SubmitAnswer(s.current, selected)
	if err != nil {
		s.setStatus(err.Error(), true)
		return s, nil
	}
	s.choice.Choose(option)
	s.status = ""

	s.persist(func(ctx context.Context) error {
		return s.events.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:      s.sessionID,
			QuestionIndex:  s.current,
			Skill:          q.Skill,
			Difficulty:     q.Difficulty,
			QuestionText:   q.Question,
			CorrectAnswer:  q.Correct,
			SelectedAnswer: a.Selected,
			Correct:        a.Correct,
		})
	})
	return s, nil
}

// exportCmd snapshots the session now and writes it off the update loop.
func (s *QuizScreen) exportCmd(name string) tea.Cmd {
	rows := s.session.ExportSnapshot()
	sink := export.ForFile(s.exportDir, name)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()
		path, err := sink.Export(ctx, name, rows)
		return exportDoneMsg{Path: path, Questions: len(rows) - 1, Err: err}
	}
}

func (s *QuizScreen) handleExportDone(msg exportDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.setStatus("Export failed: "+msg.Err.Error(), true)
		return s, nil
	}
	s.setStatus(fmt.Sprintf("Exported %d questions to %s", msg.Questions, msg.Path), false)
	s.exports++

	s.persist(func(ctx context.Context) error {
		return s.events.AppendExportEvent(ctx, store.ExportEventData{
			SessionID: s.sessionID,
			Path:      msg.Path,
			Format:    strings.TrimPrefix(strings.ToLower(filepath.Ext(msg.Path)), "."),
			Rows:      msg.Questions,
		})
	})
	return s, nil
}

// finish records the end event and hands over to the summary screen.
func (s *QuizScreen) finish() tea.Cmd {
	sum := s.session.Summary()
	elapsed := time.Since(s.startedAt)
	s.recordEnd(sum, elapsed)

	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum, elapsed)}
	}
}

// persist runs fn against the event repo, if one is configured. Failures
// are shown on the status line; the quiz itself never depends on history.
func (s *QuizScreen) persist(fn func(ctx context.Context) error) {
	if s.events == nil {
		return
	}
	if err := fn(context.Background()); err != nil {
		s.setStatus("warning: "+err.Error(), true)
	}
}

func (s *QuizScreen) setStatus(msg string, failed bool) {
	s.status = msg
	s.failed = failed
}

// cycle returns the element after cur in values, wrapping around. An
// unknown cur yields the first element.
func cycle(values []string, cur string) string {
	i := slices.Index(values, cur)
	return values[(i+1)%len(values)]
}
