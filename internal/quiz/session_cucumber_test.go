//go:build cucumber

package quiz

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/cucumber/godog"

	"github.com/abhisek/mcquiz/internal/bank"
)

// TestQuizSessionScenarios runs the quiz session feature scenarios.
func TestQuizSessionScenarios(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "quiz-session",
		ScenarioInitializer: InitializeSessionScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{filepath.Join("..", "..", "features", "quiz_session.feature")},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeSessionScenario wires steps for the quiz session feature.
func InitializeSessionScenario(ctx *godog.ScenarioContext) {
	state := &sessionScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.Step(`^a question bank with these questions:$`, state.givenBank)
	ctx.Step(`^I set the filter to skill "([^"]*)", difficulty "([^"]*)", count (\d+)$`, state.setFilter)
	ctx.Step(`^I answer question (-?\d+) with option (\d+)$`, state.answerWithOption)
	ctx.Step(`^I answer question (\d+) with the correct option$`, state.answerCorrectly)
	ctx.Step(`^the sample has (\d+) questions$`, state.thenSampleSize)
	ctx.Step(`^every sampled question has skill "([^"]*)"$`, state.thenAllSkill)
	ctx.Step(`^the sampled questions are distinct$`, state.thenDistinct)
	ctx.Step(`^answer (\d+) is incorrect$`, state.thenAnswerIncorrect)
	ctx.Step(`^the score is (\d+)$`, state.thenScore)
	ctx.Step(`^there are no answers$`, state.thenNoAnswers)
	ctx.Step(`^the answer is rejected as an invalid index$`, state.thenRejected)
	ctx.Step(`^the export has only the header row$`, state.thenHeaderOnly)
}

// sessionScenarioState holds scenario state for the quiz session feature.
type sessionScenarioState struct {
	session *Session
	sampled []bank.Question
	lastErr error
}

func (s *sessionScenarioState) reset() {
	s.session = nil
	s.sampled = nil
	s.lastErr = nil
}

// givenBank builds a bank from the table; option 1 of every row is correct.
func (s *sessionScenarioState) givenBank(table *godog.Table) error {
	var questions []bank.Question
	for i, row := range table.Rows {
		if i == 0 {
			continue
		}
		if len(row.Cells) != 3 {
			return fmt.Errorf("row %d: want 3 cells, got %d", i, len(row.Cells))
		}
		text := row.Cells[2].Value
		questions = append(questions, bank.Question{
			Skill:      row.Cells[0].Value,
			Difficulty: row.Cells[1].Value,
			Question:   text,
			Options:    []string{text + "-a", text + "-b", text + "-c", text + "-d"},
			Correct:    text + "-a",
		})
	}
	s.session = NewSession(bank.New(questions))
	return nil
}

func (s *sessionScenarioState) setFilter(skill, difficulty string, count int) error {
	s.sampled = s.session.SetFilter(WithSkill(skill), WithDifficulty(difficulty), WithCount(count))
	return nil
}

func (s *sessionScenarioState) answerWithOption(index, option int) error {
	opt := fmt.Sprintf("option-%d", option)
	if index >= 0 && index < len(s.sampled) {
		opt = s.sampled[index].Options[option-1]
	}
	_, s.lastErr = s.session.SubmitAnswer(index, opt)
	return nil
}

func (s *sessionScenarioState) answerCorrectly(index int) error {
	if index >= len(s.sampled) {
		return fmt.Errorf("question %d not sampled", index)
	}
	_, err := s.session.SubmitAnswer(index, s.sampled[index].Correct)
	return err
}

func (s *sessionScenarioState) thenSampleSize(want int) error {
	if got := len(s.sampled); got != want {
		return fmt.Errorf("sample size = %d, want %d", got, want)
	}
	return nil
}

func (s *sessionScenarioState) thenAllSkill(skill string) error {
	for i, q := range s.sampled {
		if q.Skill != skill {
			return fmt.Errorf("sampled[%d].Skill = %q, want %q", i, q.Skill, skill)
		}
	}
	return nil
}

func (s *sessionScenarioState) thenDistinct() error {
	seen := make(map[string]bool)
	for _, q := range s.sampled {
		if seen[q.Question] {
			return fmt.Errorf("duplicate question %q", q.Question)
		}
		seen[q.Question] = true
	}
	return nil
}

func (s *sessionScenarioState) thenAnswerIncorrect(index int) error {
	if s.lastErr != nil {
		return fmt.Errorf("submit failed: %w", s.lastErr)
	}
	a, ok := s.session.AnswerAt(index)
	if !ok {
		return fmt.Errorf("no answer recorded for %d", index)
	}
	if a.Correct {
		return fmt.Errorf("answer %d recorded as correct", index)
	}
	return nil
}

func (s *sessionScenarioState) thenScore(want int) error {
	if got := s.session.Score(); got != want {
		return fmt.Errorf("score = %d, want %d", got, want)
	}
	return nil
}

func (s *sessionScenarioState) thenNoAnswers() error {
	if n := len(s.session.Answers()); n != 0 {
		return fmt.Errorf("answers = %d, want 0", n)
	}
	return nil
}

func (s *sessionScenarioState) thenRejected() error {
	if !errors.Is(s.lastErr, ErrInvalidIndex) {
		return fmt.Errorf("error = %v, want ErrInvalidIndex", s.lastErr)
	}
	return nil
}

func (s *sessionScenarioState) thenHeaderOnly() error {
	rows := s.session.ExportSnapshot()
	if len(rows) != 1 {
		return fmt.Errorf("export rows = %d, want 1", len(rows))
	}
	return nil
}
