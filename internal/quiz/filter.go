package quiz

import (
	"fmt"
	"slices"

	"github.com/abhisek/mcquiz/internal/bank"
)

// AllSkills is the skill sentinel meaning "no skill filter".
const AllSkills = "All"

// DefaultCount is the question count a new session starts with.
const DefaultCount = 10

// AllowedCounts are the question counts offered on the configuration surface.
var AllowedCounts = []int{10, 20, 30, 40}

// Filter selects which bank records are eligible and how many are sampled.
type Filter struct {
	Skill      string
	Difficulty string
	Count      int
}

// DefaultFilter returns the filter a new session starts with.
func DefaultFilter() Filter {
	return Filter{
		Skill:      AllSkills,
		Difficulty: bank.DifficultyBeginner,
		Count:      DefaultCount,
	}
}

// Matches reports whether q is in the pool selected by f.
func (f Filter) Matches(q bank.Question) bool {
	if f.Skill != AllSkills && q.Skill != f.Skill {
		return false
	}
	return q.Difficulty == f.Difficulty
}

// FilterOption changes one field of a Filter.
type FilterOption func(*Filter)

// WithSkill selects a skill label, or AllSkills.
func WithSkill(skill string) FilterOption {
	return func(f *Filter) { f.Skill = skill }
}

// WithDifficulty selects a difficulty label.
func WithDifficulty(difficulty string) FilterOption {
	return func(f *Filter) { f.Difficulty = difficulty }
}

// WithCount sets the requested number of questions.
func WithCount(count int) FilterOption {
	return func(f *Filter) { f.Count = count }
}

// ValidateCount checks count against AllowedCounts.
func ValidateCount(count int) error {
	if !slices.Contains(AllowedCounts, count) {
		return fmt.Errorf("invalid question count %d: must be one of %v", count, AllowedCounts)
	}
	return nil
}

// NextCount returns the allowed count after count, wrapping around.
func NextCount(count int) int {
	i := slices.Index(AllowedCounts, count)
	return AllowedCounts[(i+1)%len(AllowedCounts)]
}

// PrevCount returns the allowed count before count, wrapping around.
func PrevCount(count int) int {
	i := slices.Index(AllowedCounts, count)
	if i <= 0 {
		return AllowedCounts[len(AllowedCounts)-1]
	}
	return AllowedCounts[i-1]
}
