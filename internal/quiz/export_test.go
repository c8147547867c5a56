package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mcquiz/internal/bank"
)

func TestExportSnapshotRows(t *testing.T) {
	s := NewSession(bank.Default(), WithRandSource(seeded(20)))
	sampled := s.SetFilter(WithSkill("Selectors"), WithDifficulty(bank.DifficultyBeginner), WithCount(10))
	require.NotEmpty(t, sampled)

	rows := s.ExportSnapshot()
	require.Len(t, rows, len(sampled)+1)
	assert.Equal(t, ExportHeader, rows[0])

	for i, got := range sampled {
		row := rows[i+1]
		require.Len(t, row, len(ExportHeader))
		assert.Equal(t, got.Skill, row[0])
		assert.Equal(t, got.Difficulty, row[1])
		assert.Equal(t, got.Question, row[2])
		assert.Equal(t, got.Options, row[3:7])
		assert.Equal(t, got.Correct, row[7], "column 8 is the correct answer")
	}
}

func TestExportSnapshotIgnoresAnswers(t *testing.T) {
	s := NewSession(bank.Default(), WithRandSource(seeded(21)))
	sampled := s.SetFilter()
	before := s.ExportSnapshot()

	_, err := s.SubmitAnswer(0, sampled[0].Options[1])
	require.NoError(t, err)
	assert.Equal(t, before, s.ExportSnapshot())
}

func TestExportSnapshotHeaderIsCopy(t *testing.T) {
	s := NewSession(bank.Default())
	rows := s.ExportSnapshot()
	rows[0][0] = "tampered"
	assert.Equal(t, "Skill Name", ExportHeader[0])
}

func TestExportSnapshotIdleSession(t *testing.T) {
	rows := NewSession(bank.Default()).ExportSnapshot()
	assert.Equal(t, [][]string{ExportHeader}, rows)
}

func TestFileNameHint(t *testing.T) {
	tests := []struct {
		skill string
		count int
		want  string
	}{
		{AllSkills, 10, "MCQ_All_10.xlsx"},
		{"Box Model", 20, "MCQ_Box_Model_20.xlsx"},
		{"C++ / Templates!", 30, "MCQ_C_Templates_30.xlsx"},
		{"***", 40, "MCQ_Skill_40.xlsx"},
	}
	for _, tt := range tests {
		s := NewSession(bank.New(nil), WithFilter(Filter{Skill: tt.skill, Difficulty: "Beginner", Count: tt.count}))
		assert.Equal(t, tt.want, s.FileNameHint(), "skill %q", tt.skill)
	}
}

func TestValidateCount(t *testing.T) {
	for _, c := range AllowedCounts {
		assert.NoError(t, ValidateCount(c))
	}
	for _, c := range []int{0, 5, 15, 50, -10} {
		assert.Error(t, ValidateCount(c), "count %d", c)
	}
}

func TestCountStepping(t *testing.T) {
	assert.Equal(t, 20, NextCount(10))
	assert.Equal(t, 10, NextCount(40))
	assert.Equal(t, 10, NextCount(7))
	assert.Equal(t, 30, PrevCount(40))
	assert.Equal(t, 40, PrevCount(10))
	assert.Equal(t, 40, PrevCount(7))
}

func TestFilterMatches(t *testing.T) {
	f := Filter{Skill: AllSkills, Difficulty: "Beginner"}
	assert.True(t, f.Matches(bank.Question{Skill: "Grid", Difficulty: "Beginner"}))
	assert.False(t, f.Matches(bank.Question{Skill: "Grid", Difficulty: "Advanced"}))

	f.Skill = "Grid"
	assert.True(t, f.Matches(bank.Question{Skill: "Grid", Difficulty: "Beginner"}))
	assert.False(t, f.Matches(bank.Question{Skill: "Flexbox", Difficulty: "Beginner"}))
}
