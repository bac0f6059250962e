package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Between returns a random int in [lo, hi].
func (r *RNG) Between(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Pick returns a random element of items. It panics on an empty slice.
func Pick[T any](r *RNG, items []T) T {
	return items[r.r.IntN(len(items))]
}

// Lines returns rows random rows of cols characters drawn from alphabet.
func (r *RNG) Lines(rows, cols int, alphabet string) []string {
	runes := []rune(alphabet)
	out := make([]string, rows)
	buf := make([]rune, cols)
	for i := range out {
		for j := range buf {
			buf[j] = runes[r.r.IntN(len(runes))]
		}
		out[i] = string(buf)
	}
	return out
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
