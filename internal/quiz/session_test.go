package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mcquiz/internal/bank"
)

// scriptedSource returns pre-recorded draws in order.
type scriptedSource struct {
	draws []int
	calls []int // n passed to each IntN call
}

func (s *scriptedSource) IntN(n int) int {
	s.calls = append(s.calls, n)
	v := s.draws[0]
	s.draws = s.draws[1:]
	return v
}

func q(skill, difficulty, text string) bank.Question {
	return bank.Question{
		Skill:      skill,
		Difficulty: difficulty,
		Question:   text,
		Options:    []string{text + " right", text + " wrong 1", text + " wrong 2", text + " wrong 3"},
		Correct:    text + " right",
	}
}

// fiveQuestionBank has 3 Selectors and 2 Box Model questions, all Beginner.
func fiveQuestionBank() bank.Bank {
	return bank.New([]bank.Question{
		q("Selectors", "Beginner", "s1"),
		q("Selectors", "Beginner", "s2"),
		q("Selectors", "Beginner", "s3"),
		q("Box Model", "Beginner", "b1"),
		q("Box Model", "Beginner", "b2"),
	})
}

func seeded(seed uint64) RandSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestNewSessionIsIdle(t *testing.T) {
	s := NewSession(fiveQuestionBank())
	assert.Equal(t, PhaseIdle, s.Phase())
	assert.Empty(t, s.Sampled())
	assert.Empty(t, s.Answers())
	assert.Equal(t, DefaultFilter(), s.Filter())
	assert.Equal(t, 0, s.Score())
}

func TestScenario_SkillFilterSmallerThanCount(t *testing.T) {
	s := NewSession(fiveQuestionBank(), WithRandSource(seeded(1)))
	sampled := s.SetFilter(WithSkill("Selectors"), WithDifficulty("Beginner"), WithCount(10))

	require.Len(t, sampled, 3)
	for _, got := range sampled {
		assert.Equal(t, "Selectors", got.Skill)
	}
	assert.Equal(t, PhaseActive, s.Phase())
}

func TestScenario_AllSkillsCountTwo(t *testing.T) {
	b := fiveQuestionBank()
	s := NewSession(b, WithRandSource(seeded(2)))
	sampled := s.SetFilter(WithSkill(AllSkills), WithDifficulty("Beginner"), WithCount(2))

	require.Len(t, sampled, 2)
	assert.NotEqual(t, sampled[0].Question, sampled[1].Question)
	for _, got := range sampled {
		assert.Contains(t, b.All(), got)
	}
}

func TestScenario_WrongAnswerScoresZero(t *testing.T) {
	s := NewSession(fiveQuestionBank(), WithRandSource(seeded(3)))
	sampled := s.SetFilter(WithSkill(AllSkills), WithDifficulty("Beginner"), WithCount(2))
	require.NotEqual(t, sampled[0].Correct, sampled[0].Options[1])

	a, err := s.SubmitAnswer(0, sampled[0].Options[1])
	require.NoError(t, err)
	assert.False(t, a.Correct)

	got, ok := s.AnswerAt(0)
	require.True(t, ok)
	assert.False(t, got.Correct)
	assert.Equal(t, 0, s.Score())
}

func TestScenario_UnknownSkillExportsHeaderOnly(t *testing.T) {
	s := NewSession(fiveQuestionBank())
	sampled := s.SetFilter(WithSkill("Nonexistent"), WithDifficulty("Beginner"), WithCount(10))

	assert.Empty(t, sampled)
	rows := s.ExportSnapshot()
	require.Len(t, rows, 1)
	assert.Equal(t, ExportHeader, rows[0])
	assert.Equal(t, PhaseActive, s.Phase())
}

func TestSampleSizeAndUniqueness(t *testing.T) {
	b := bank.Default()
	for seed := uint64(0); seed < 25; seed++ {
		for _, skill := range append([]string{AllSkills, "Missing"}, bank.Skills(b)...) {
			for _, diff := range bank.Difficulties(b) {
				for _, count := range AllowedCounts {
					s := NewSession(b, WithRandSource(seeded(seed)))
					sampled := s.SetFilter(WithSkill(skill), WithDifficulty(diff), WithCount(count))

					skillArg := skill
					if skill == AllSkills {
						skillArg = ""
					}
					pool := bank.Count(b, skillArg, diff)
					if skill == "Missing" {
						pool = 0
					}
					name := fmt.Sprintf("seed=%d skill=%s diff=%s count=%d", seed, skill, diff, count)
					require.Len(t, sampled, min(count, pool), name)

					seen := make(map[string]bool)
					for _, got := range sampled {
						require.False(t, seen[got.Question], "%s: duplicate %q", name, got.Question)
						seen[got.Question] = true
						require.True(t, s.Filter().Matches(got), name)
					}
				}
			}
		}
	}
}

func TestSampleWithScriptedSource(t *testing.T) {
	pool := []bank.Question{q("S", "B", "a"), q("S", "B", "b"), q("S", "B", "c"), q("S", "B", "d")}
	src := &scriptedSource{draws: []int{3, 0}}

	got := sample(pool, 2, src)

	require.Len(t, got, 2)
	assert.Equal(t, "d", got[0].Question)
	assert.Equal(t, "b", got[1].Question)
	assert.Equal(t, []int{4, 3}, src.calls, "one bounded draw per selected record")
}

func TestSampleWholePoolTerminates(t *testing.T) {
	pool := []bank.Question{q("S", "B", "a"), q("S", "B", "b"), q("S", "B", "c")}
	src := &scriptedSource{draws: []int{0, 0, 0}}

	got := sample(pool, 10, src)

	assert.Len(t, got, 3)
	assert.ElementsMatch(t, pool, got)
	assert.Equal(t, []int{3, 2, 1}, src.calls)
}

func TestSampleEmptyPool(t *testing.T) {
	assert.Empty(t, sample(nil, 10, &scriptedSource{}))
	assert.Empty(t, sample([]bank.Question{q("S", "B", "a")}, 0, &scriptedSource{}))
}

func TestSetFilterKeepsUnspecifiedFields(t *testing.T) {
	s := NewSession(fiveQuestionBank(), WithRandSource(seeded(4)))
	s.SetFilter(WithSkill("Box Model"), WithCount(20))
	s.SetFilter(WithDifficulty("Beginner"))

	assert.Equal(t, Filter{Skill: "Box Model", Difficulty: "Beginner", Count: 20}, s.Filter())
	assert.Len(t, s.Sampled(), 2)
}

func TestSetFilterClearsAnswers(t *testing.T) {
	s := NewSession(fiveQuestionBank(), WithRandSource(seeded(5)))
	sampled := s.SetFilter(WithCount(10))
	for i, got := range sampled {
		_, err := s.SubmitAnswer(i, got.Correct)
		require.NoError(t, err)
	}
	require.Equal(t, len(sampled), s.Score())

	// A count-only change still resamples and resets.
	s.SetFilter(WithCount(20))
	assert.Empty(t, s.Answers())
	assert.Equal(t, 0, s.Score())

	s.SetFilter()
	assert.Empty(t, s.Answers())
}

func TestSubmitAnswerRecordsCorrectness(t *testing.T) {
	s := NewSession(fiveQuestionBank(), WithRandSource(seeded(6)))
	sampled := s.SetFilter()

	for i, got := range sampled {
		for _, opt := range got.Options {
			a, err := s.SubmitAnswer(i, opt)
			require.NoError(t, err)
			assert.Equal(t, opt == got.Correct, a.Correct)
			assert.Equal(t, opt, a.Selected)

			stored, ok := s.AnswerAt(i)
			require.True(t, ok)
			assert.Equal(t, a, stored)
		}
	}
}

func TestSubmitAnswerInvalidIndex(t *testing.T) {
	s := NewSession(fiveQuestionBank(), WithRandSource(seeded(7)))

	// Idle session: nothing sampled.
	_, err := s.SubmitAnswer(0, "x")
	require.ErrorIs(t, err, ErrInvalidIndex)

	sampled := s.SetFilter(WithCount(10))
	_, err = s.SubmitAnswer(0, sampled[0].Correct)
	require.NoError(t, err)
	before := s.Answers()

	for _, idx := range []int{-1, len(sampled), len(sampled) + 5} {
		_, err := s.SubmitAnswer(idx, "x")
		assert.True(t, errors.Is(err, ErrInvalidIndex), "index %d: %v", idx, err)
	}
	assert.Equal(t, before, s.Answers(), "rejected submissions must not touch answers")
}

func TestSubmitAnswerStaleIndexAfterResample(t *testing.T) {
	s := NewSession(fiveQuestionBank(), WithRandSource(seeded(8)))
	s.SetFilter(WithSkill(AllSkills), WithCount(10))
	require.Len(t, s.Sampled(), 5)

	s.SetFilter(WithSkill("Box Model"))
	_, err := s.SubmitAnswer(4, "x")
	require.ErrorIs(t, err, ErrInvalidIndex)
	assert.Empty(t, s.Answers())
}

func TestResubmitOverwrites(t *testing.T) {
	s := NewSession(fiveQuestionBank(), WithRandSource(seeded(9)))
	sampled := s.SetFilter()

	_, err := s.SubmitAnswer(1, sampled[1].Options[2])
	require.NoError(t, err)
	_, err = s.SubmitAnswer(1, sampled[1].Correct)
	require.NoError(t, err)

	answers := s.Answers()
	assert.Len(t, answers, 1)
	assert.Equal(t, sampled[1].Correct, answers[1].Selected)
	assert.Equal(t, 1, s.Score())

	_, err = s.SubmitAnswer(1, sampled[1].Options[3])
	require.NoError(t, err)
	assert.Len(t, s.Answers(), 1)
	assert.Equal(t, 0, s.Score())
}

func TestScoreMatchesAnswers(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 43))
	s := NewSession(bank.Default(), WithRandSource(seeded(10)))
	sampled := s.SetFilter(WithDifficulty(bank.DifficultyBeginner), WithCount(40))
	require.NotEmpty(t, sampled)

	for step := 0; step < 200; step++ {
		i := r.IntN(len(sampled))
		opt := sampled[i].Options[r.IntN(len(sampled[i].Options))]
		_, err := s.SubmitAnswer(i, opt)
		require.NoError(t, err)

		want := 0
		for _, a := range s.Answers() {
			if a.Correct {
				want++
			}
		}
		require.Equal(t, want, s.Score(), "step %d", step)
	}
}

func TestSampledReturnsCopy(t *testing.T) {
	s := NewSession(fiveQuestionBank(), WithRandSource(seeded(11)))
	sampled := s.SetFilter()
	sampled[0].Correct = "tampered"
	sampled[0].Options[0] = "tampered"

	fresh := s.Sampled()
	assert.NotEqual(t, "tampered", fresh[0].Correct)
	assert.NotEqual(t, "tampered", fresh[0].Options[0])

	answers := s.Answers()
	answers[0] = Answer{Selected: "x", Correct: true}
	assert.Empty(t, s.Answers())
}

func TestConcurrentOperations(t *testing.T) {
	s := NewSession(bank.Default(), WithRandSource(seeded(12)))
	s.SetFilter(WithCount(40))

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				if g == 0 && i%10 == 0 {
					s.SetFilter(WithCount(AllowedCounts[i%len(AllowedCounts)]))
					continue
				}
				_, err := s.SubmitAnswer(i%20, "x")
				if err != nil && !errors.Is(err, ErrInvalidIndex) {
					t.Errorf("unexpected error: %v", err)
				}
				_ = s.Score()
			}
		}(g)
	}
	wg.Wait()

	n := s.Len()
	for idx := range s.Answers() {
		assert.Less(t, idx, n)
	}
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "active", PhaseActive.String())
	assert.Equal(t, "Phase(7)", Phase(7).String())
}
