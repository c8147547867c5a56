package bank

import "slices"

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// Question is a single multiple-choice question record.
type Question struct {
	Skill      string   `json:"skill" yaml:"skill"`
	Difficulty string   `json:"difficulty" yaml:"difficulty"`
	Question   string   `json:"question" yaml:"question"`
	Options    []string `json:"options" yaml:"options"`
	Correct    string   `json:"correct" yaml:"correct"`
}

// CorrectIndex returns the position of the correct option, or -1 if the
// record is malformed.
func (q Question) CorrectIndex() int {
	return slices.Index(q.Options, q.Correct)
}

// Bank is a read-only source of question records.
type Bank interface {
	// All returns every record in bank order. Callers may not retain
	// references into the bank's own storage.
	All() []Question
}

// staticBank is an immutable in-memory bank.
type staticBank struct {
	questions []Question
}

// New returns a Bank over a private copy of questions.
func New(questions []Question) Bank {
	cp := make([]Question, len(questions))
	for i, q := range questions {
		q.Options = slices.Clone(q.Options)
		cp[i] = q
	}
	return &staticBank{questions: cp}
}

func (b *staticBank) All() []Question {
	out := make([]Question, len(b.questions))
	for i, q := range b.questions {
		q.Options = slices.Clone(q.Options)
		out[i] = q
	}
	return out
}

// Skills returns the distinct skill labels of b in first-seen order.
func Skills(b Bank) []string {
	return distinct(b, func(q Question) string { return q.Skill })
}

// Difficulties returns the distinct difficulty labels of b in first-seen order.
func Difficulties(b Bank) []string {
	return distinct(b, func(q Question) string { return q.Difficulty })
}

// Count returns how many records match skill and difficulty. An empty
// argument matches any value.
func Count(b Bank, skill, difficulty string) int {
	n := 0
	for _, q := range b.All() {
		if skill != "" && q.Skill != skill {
			continue
		}
		if difficulty != "" && q.Difficulty != difficulty {
			continue
		}
		n++
	}
	return n
}

func distinct(b Bank, key func(Question) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range b.All() {
		k := key(q)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
