package quiz

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/abhisek/mcquiz/internal/bank"
)

// ErrInvalidIndex is returned when an answer is submitted for a position
// outside the current sample.
var ErrInvalidIndex = errors.New("invalid question index")

// Phase is the lifecycle phase of a session.
type Phase int

const (
	PhaseIdle   Phase = iota // No filter applied yet, nothing sampled
	PhaseActive              // A filter has been applied at least once
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Answer is the recorded choice for one sampled question.
type Answer struct {
	Selected string
	Correct  bool
}

// Option configures a Session.
type Option func(*Session)

// WithRandSource sets the random source used for sampling.
func WithRandSource(src RandSource) Option {
	return func(s *Session) { s.src = src }
}

// WithFilter sets the filter the session starts from. It does not sample;
// the session stays idle until SetFilter is called.
func WithFilter(f Filter) Option {
	return func(s *Session) { s.filter = f }
}

// Session is the quiz state machine. It is safe to call from several
// goroutines; every operation is applied atomically in call order.
type Session struct {
	mu      sync.Mutex
	bank    bank.Bank
	src     RandSource
	filter  Filter
	phase   Phase
	sampled []bank.Question
	answers map[int]Answer
}

// NewSession creates an idle session over b.
func NewSession(b bank.Bank, opts ...Option) *Session {
	s := &Session{
		bank:    b,
		src:     globalRand{},
		filter:  DefaultFilter(),
		answers: make(map[int]Answer),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetFilter applies opts to the current filter, draws a fresh sample and
// clears all answers. Fields not named by opts keep their value. It returns
// a copy of the new sample, which is empty when no record matches.
func (s *Session) SetFilter(opts ...FilterOption) []bank.Question {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, opt := range opts {
		opt(&s.filter)
	}

	var pool []bank.Question
	for _, q := range s.bank.All() {
		if s.filter.Matches(q) {
			pool = append(pool, q)
		}
	}

	s.sampled = sample(pool, s.filter.Count, s.src)
	clear(s.answers)
	s.phase = PhaseActive

	return cloneQuestions(s.sampled)
}

// SubmitAnswer records option as the answer for the sampled question at
// index, replacing any earlier answer for it.
func (s *Session) SubmitAnswer(index int, option string) (Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.sampled) {
		return Answer{}, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidIndex, index, len(s.sampled))
	}

	a := Answer{
		Selected: option,
		Correct:  option == s.sampled[index].Correct,
	}
	s.answers[index] = a
	return a, nil
}

// Score returns the number of correctly answered questions.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, a := range s.answers {
		if a.Correct {
			n++
		}
	}
	return n
}

// Filter returns the current filter.
func (s *Session) Filter() Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Phase returns the lifecycle phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Sampled returns a copy of the current sample.
func (s *Session) Sampled() []bank.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneQuestions(s.sampled)
}

// Len returns the size of the current sample.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sampled)
}

// Answers returns a copy of the recorded answers keyed by sample index.
func (s *Session) Answers() map[int]Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.answers)
}

// AnswerAt returns the answer recorded for index, if any.
func (s *Session) AnswerAt(index int) (Answer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.answers[index]
	return a, ok
}

func cloneQuestions(qs []bank.Question) []bank.Question {
	if qs == nil {
		return nil
	}
	out := make([]bank.Question, len(qs))
	for i, q := range qs {
		q.Options = slices.Clone(q.Options)
		out[i] = q
	}
	return out
}
