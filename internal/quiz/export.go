package quiz

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abhisek/mcquiz/internal/bank"
)

// ExportHeader is the first row of every export snapshot.
var ExportHeader = []string{
	"Skill Name",
	"Difficulty Level",
	"Question",
	"Option 1",
	"Option 2",
	"Option 3",
	"Option 4",
	"Correct Answer",
}

// ExportSnapshot returns the header row followed by one row per sampled
// question, in sample order. Answers are not included.
func (s *Session) ExportSnapshot() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([][]string, 0, len(s.sampled)+1)
	rows = append(rows, append([]string(nil), ExportHeader...))
	for _, q := range s.sampled {
		rows = append(rows, exportRow(q))
	}
	return rows
}

func exportRow(q bank.Question) []string {
	row := make([]string, 0, len(ExportHeader))
	row = append(row, q.Skill, q.Difficulty, q.Question)
	for i := 0; i < bank.OptionCount; i++ {
		opt := ""
		if i < len(q.Options) {
			opt = q.Options[i]
		}
		row = append(row, opt)
	}
	return append(row, q.Correct)
}

var nonWord = regexp.MustCompile(`[^A-Za-z0-9]+`)

// FileNameHint suggests an export file name built from the skill filter and
// count, e.g. "MCQ_Box_Model_20.xlsx". A skill with no letters or digits
// becomes "Skill".
func (s *Session) FileNameHint() string {
	f := s.Filter()
	skill := strings.Trim(nonWord.ReplaceAllString(f.Skill, "_"), "_")
	if skill == "" {
		skill = "Skill"
	}
	return fmt.Sprintf("MCQ_%s_%d.xlsx", skill, f.Count)
}
