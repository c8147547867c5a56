package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcquiz/internal/bank"
	"github.com/abhisek/mcquiz/internal/router"
	"github.com/abhisek/mcquiz/internal/screens/history"
	quizscreen "github.com/abhisek/mcquiz/internal/screens/quiz"
	"github.com/abhisek/mcquiz/internal/screens/skillmap"
	"github.com/abhisek/mcquiz/internal/store"
)

type accuracyRepo struct {
	store.EventRepo
	acc []store.SkillAccuracy
}

func (r *accuracyRepo) SkillAccuracy(context.Context) ([]store.SkillAccuracy, error) {
	return r.acc, nil
}

func (r *accuracyRepo) AppendSessionEvent(context.Context, store.SessionEventData) error {
	return nil
}

func press(h *HomeScreen, msg tea.Msg) tea.Msg {
	_, cmd := h.Update(msg)
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestHomeScreen_StartQuizPushesQuiz(t *testing.T) {
	h := New(quizscreen.Config{Bank: bank.Default()})

	msg := press(h, tea.KeyPressMsg{Code: tea.KeyEnter})
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want PushScreenMsg", msg)
	}
	if _, ok := push.Screen.(*quizscreen.QuizScreen); !ok {
		t.Errorf("pushed %T, want *quiz.QuizScreen", push.Screen)
	}
}

func TestHomeScreen_HistoryDisabledWithoutRepo(t *testing.T) {
	h := New(quizscreen.Config{Bank: bank.Default()})

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if h.menu.Selected != itemExit {
		t.Errorf("selected = %d, want %d (history skipped)", h.menu.Selected, itemExit)
	}
}

func TestHomeScreen_HistoryPushesHistory(t *testing.T) {
	repo := &accuracyRepo{}
	h := New(quizscreen.Config{Bank: bank.Default(), Events: repo})

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	msg := press(h, tea.KeyPressMsg{Code: tea.KeyEnter})
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want PushScreenMsg", msg)
	}
	if _, ok := push.Screen.(*history.HistoryScreen); !ok {
		t.Errorf("pushed %T, want *history.HistoryScreen", push.Screen)
	}
}

func TestHomeScreen_Stats(t *testing.T) {
	b := bank.Default()
	repo := &accuracyRepo{acc: []store.SkillAccuracy{
		{Skill: "Grid", Answered: 3, Correct: 2},
		{Skill: "Flexbox", Answered: 1, Correct: 1},
	}}
	h := New(quizscreen.Config{Bank: b, Events: repo})

	if h.stats.questions != bank.Count(b, "", "") {
		t.Errorf("questions = %d, want %d", h.stats.questions, bank.Count(b, "", ""))
	}
	if h.stats.answered != 4 || h.stats.correct != 3 {
		t.Errorf("answered/correct = %d/%d, want 4/3", h.stats.answered, h.stats.correct)
	}
	if view := h.View(120, 40); !strings.Contains(view, "75% of 4 answered") {
		t.Errorf("view missing accuracy:\n%s", view)
	}
}

func TestHomeScreen_CompactView(t *testing.T) {
	h := New(quizscreen.Config{Bank: bank.Default()})
	if view := h.View(80, 16); !strings.Contains(view, titleCompact) {
		t.Error("expected compact title on small terminal")
	}
}

func TestHomeScreen_SkillMapPushesSkillMap(t *testing.T) {
	h := New(quizscreen.Config{Bank: bank.Default()})

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	msg := press(h, tea.KeyPressMsg{Code: tea.KeyEnter})
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want PushScreenMsg", msg)
	}
	if _, ok := push.Screen.(*skillmap.SkillMapScreen); !ok {
		t.Errorf("pushed %T, want *skillmap.SkillMapScreen", push.Screen)
	}
}

func TestHomeScreen_ExitQuits(t *testing.T) {
	h := New(quizscreen.Config{Bank: bank.Default()})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
