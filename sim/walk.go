package sim

import (
	"fmt"
	"math/rand"
)

// RandomWalk performs a one-dimensional symmetric random walk: the
// position starts at 0 and moves +1 or -1 with equal probability on
// each step. It returns the final position, whose parity always
// matches steps and whose magnitude never exceeds steps.
//
// steps == 0 returns 0 deterministically; steps < 0 fails with
// ErrInvalidArgument.
func RandomWalk(rng *rand.Rand, steps int) (int, error) {
	if steps < 0 {
		return 0, fmt.Errorf("steps must be non-negative, got %d: %w", steps, ErrInvalidArgument)
	}
	position := 0
	for i := 0; i < steps; i++ {
		if rng.Float64() < 0.5 {
			position++
		} else {
			position--
		}
	}
	return position, nil
}
