package history

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcquiz/internal/store"
)

type fakeRepo struct {
	store.EventRepo
	sessions    []store.SessionRecord
	answers     map[string][]store.AnswerRecord
	answerCalls int
}

func (f *fakeRepo) QuerySessions(context.Context, store.QueryOpts) ([]store.SessionRecord, error) {
	return f.sessions, nil
}

func (f *fakeRepo) SessionAnswers(_ context.Context, id string) ([]store.AnswerRecord, error) {
	f.answerCalls++
	return f.answers[id], nil
}

func testRepo() *fakeRepo {
	return &fakeRepo{
		sessions: []store.SessionRecord{
			{SessionID: "b", Timestamp: time.Now(), Skill: "Grid", Difficulty: "Beginner", QuestionsServed: 7, Answered: 4, CorrectAnswers: 3, DurationSecs: 75, Exports: 2},
			{SessionID: "a", Timestamp: time.Now(), Skill: "All", Difficulty: "Advanced", QuestionsServed: 10},
		},
		answers: map[string][]store.AnswerRecord{
			"b": {{AnswerEventData: store.AnswerEventData{SessionID: "b", QuestionIndex: 0, Skill: "Grid", SelectedAnswer: "display: flex", CorrectAnswer: "display: grid"}}},
		},
	}
}

func load(t *testing.T, s *HistoryScreen) *HistoryScreen {
	t.Helper()
	scr, _ := s.Update(s.Init()())
	return scr.(*HistoryScreen)
}

func TestHistoryScreen_LoadsSessions(t *testing.T) {
	s := load(t, New(testRepo()))
	if !s.loaded || len(s.sessions) != 2 {
		t.Fatalf("loaded = %v sessions = %d", s.loaded, len(s.sessions))
	}
	view := s.View(120, 30)
	if !strings.Contains(view, "Grid/Beginner") || !strings.Contains(view, "2 exports") {
		t.Errorf("view missing session details:\n%s", view)
	}
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := load(t, New(&fakeRepo{}))
	if !strings.Contains(s.View(120, 30), "No quizzes yet") {
		t.Error("expected empty message")
	}
}

func TestHistoryScreen_ExpandLoadsAnswersOnce(t *testing.T) {
	repo := testRepo()
	s := load(t, New(repo))

	scr, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected load command on first expand")
	}
	scr, _ = scr.Update(cmd())
	s = scr.(*HistoryScreen)
	if !strings.Contains(s.View(120, 30), "(answer: display: grid)") {
		t.Error("expected expanded answers")
	}

	// Collapse and expand again: answers are cached.
	scr, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, cmd = scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no reload for cached answers")
	}
	if repo.answerCalls != 1 {
		t.Errorf("SessionAnswers calls = %d, want 1", repo.answerCalls)
	}
}

func TestHistoryScreen_NavigationBounds(t *testing.T) {
	s := load(t, New(testRepo()))
	for i := 0; i < 5; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.selected != 0 {
		t.Errorf("selected = %d, want 0", s.selected)
	}
}

func TestFormatSessionZeroAnswered(t *testing.T) {
	line := FormatSession(store.SessionRecord{Skill: "All", Difficulty: "Beginner", QuestionsServed: 10})
	if !strings.Contains(line, "0% accuracy") {
		t.Errorf("line = %q", line)
	}
}
