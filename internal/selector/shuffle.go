package selector

import (
	"math/rand/v2"

	"github.com/abhisek/sprinklerprep/internal/bank"
)

// Shuffle returns a new slice holding an unbiased random permutation
// of qs (Fisher-Yates). The input is never mutated.
func Shuffle(qs []bank.Question) []bank.Question {
	out := make([]bank.Question, len(qs))
	copy(out, qs)
	for i := len(out) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ShuffleOptions returns a new slice holding a random permutation of
// the given answer options.
func ShuffleOptions(options []string) []string {
	out := make([]string, len(options))
	copy(out, options)
	for i := len(out) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
