package sim

import (
	"fmt"
	"math/rand"
)

// EstimatePi approximates π with the Monte Carlo method: it draws
// iterations points uniformly in [0,1)², counts the fraction whose
// squared distance from the origin is at most 1, and scales by 4.
// The result always lies in [0, 4].
//
// iterations must be >= 1. A zero-trial estimate is rejected with
// ErrInvalidArgument rather than defined as 0 — asking for an estimate
// from no samples is a caller bug, not a degenerate run.
func EstimatePi(rng *rand.Rand, iterations int) (float64, error) {
	if iterations < 1 {
		return 0, fmt.Errorf("iterations must be >= 1, got %d: %w", iterations, ErrInvalidArgument)
	}
	inside := 0
	for i := 0; i < iterations; i++ {
		x, y := rng.Float64(), rng.Float64()
		if x*x+y*y <= 1 {
			inside++
		}
	}
	return 4 * float64(inside) / float64(iterations), nil
}
