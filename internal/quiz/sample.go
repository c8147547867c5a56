package quiz

import (
	"math/rand/v2"

	"github.com/abhisek/mcquiz/internal/bank"
)

// RandSource yields uniformly distributed indices in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

// globalRand draws from the math/rand/v2 top-level generator.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// sample draws min(count, len(pool)) distinct records from pool using a
// partial Fisher-Yates shuffle over pool indices. It performs exactly one
// draw per selected record, so it terminates for any pool size.
func sample(pool []bank.Question, count int, src RandSource) []bank.Question {
	n := min(count, len(pool))
	if n <= 0 {
		return nil
	}

	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + src.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	out := make([]bank.Question, n)
	for i := 0; i < n; i++ {
		out[i] = pool[idx[i]]
	}
	return out
}
