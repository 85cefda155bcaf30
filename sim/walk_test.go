package sim

import (
	"errors"
	"math/rand"
	"testing"
)

func TestRandomWalk_ParityAndBound(t *testing.T) {
	tests := []struct {
		name  string
		steps int
	}{
		{"one step", 1},
		{"two steps", 2},
		{"odd walk", 7},
		{"hundred steps", 100},
		{"long odd walk", 1001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			pos, err := RandomWalk(rng, tt.steps)
			if err != nil {
				t.Fatal(err)
			}
			// |position| never exceeds the step count
			if pos > tt.steps || pos < -tt.steps {
				t.Errorf("RandomWalk(%d) = %d, want |position| <= %d", tt.steps, pos, tt.steps)
			}
			// position parity always matches step parity
			if (pos%2+2)%2 != tt.steps%2 {
				t.Errorf("RandomWalk(%d) = %d, parity mismatch", tt.steps, pos)
			}
		})
	}
}

func TestRandomWalk_ZeroSteps(t *testing.T) {
	// GIVEN zero steps
	rng := rand.New(rand.NewSource(42))

	// WHEN the walk runs
	pos, err := RandomWalk(rng, 0)

	// THEN the position is 0 with no error and no randomness consumed
	if err != nil {
		t.Fatal(err)
	}
	if pos != 0 {
		t.Errorf("RandomWalk(0) = %d, want 0", pos)
	}
	if rng.Float64() != rand.New(rand.NewSource(42)).Float64() {
		t.Error("RandomWalk(0) consumed randomness")
	}
}

func TestRandomWalk_NegativeSteps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	_, err := RandomWalk(rng, -1)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("RandomWalk(-1) error = %v, want ErrInvalidArgument", err)
	}
}

func TestRandomWalk_Deterministic(t *testing.T) {
	pos1, err := RandomWalk(rand.New(rand.NewSource(7)), 500)
	if err != nil {
		t.Fatal(err)
	}
	pos2, err := RandomWalk(rand.New(rand.NewSource(7)), 500)
	if err != nil {
		t.Fatal(err)
	}
	if pos1 != pos2 {
		t.Errorf("identically seeded walks diverged: %d vs %d", pos1, pos2)
	}
}
