package wheel

import (
	"math/rand/v2"
	"time"
)

// Source is the randomness provider for spins. *rand.Rand from math/rand/v2
// satisfies it directly.
type Source interface {
	// IntN returns a uniform int in [0, n). n must be positive.
	IntN(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// NewSource returns a deterministic source for the given seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewTimeSource returns a source seeded from the wall clock.
func NewTimeSource() Source {
	return NewSource(uint64(time.Now().UnixNano()))
}

// SpinCount picks a whole number of extra turns in [min, max].
func SpinCount(src Source, min, max int) int {
	if max <= min {
		return min
	}
	return min + src.IntN(max-min+1)
}

// SpinOffset picks the fractional landing angle in [0, 360).
func SpinOffset(src Source) float64 {
	off := src.Float64() * FullTurn
	if off >= FullTurn {
		off = 0
	}
	return off
}
