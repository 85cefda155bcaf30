package sim

import (
	"hash/fnv"
	"math/rand"
)

// === ExperimentKey ===

// ExperimentKey uniquely identifies a reproducible set of experiment
// runs. Two runs with the same ExperimentKey and identical parameters
// MUST produce bit-for-bit identical results.
type ExperimentKey int64

// NewExperimentKey creates an ExperimentKey from a seed value.
func NewExperimentKey(seed int64) ExperimentKey {
	return ExperimentKey(seed)
}

// === Experiment Constants ===

const (
	// ExperimentMonteCarlo is the random stream for π estimation.
	ExperimentMonteCarlo = "montecarlo"

	// ExperimentWalk is the random stream for the random walk.
	ExperimentWalk = "walk"

	// ExperimentQueue is the random stream for the M/M/1 simulation.
	ExperimentQueue = "queue"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per
// experiment. Each named experiment draws from its own stream seeded
// with masterSeed XOR fnv1a64(name), so draws consumed by one
// experiment never shift the sequence seen by another.
//
// Thread-safety: NOT thread-safe. Must be called from a single
// goroutine; concurrent runs should each build their own PartitionedRNG.
type PartitionedRNG struct {
	key         ExperimentKey
	experiments map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from an ExperimentKey.
func NewPartitionedRNG(key ExperimentKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:         key,
		experiments: make(map[string]*rand.Rand),
	}
}

// ForExperiment returns a deterministically-seeded RNG for the named
// experiment. The same name always returns the same *rand.Rand
// instance (cached). Never returns nil.
func (p *PartitionedRNG) ForExperiment(name string) *rand.Rand {
	if rng, ok := p.experiments[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(int64(p.key) ^ fnv1a64(name)))
	p.experiments[name] = rng
	return rng
}

// Key returns the ExperimentKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() ExperimentKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// Exp draws an exponentially distributed variate with the given rate
// (mean 1/rate). The caller must guarantee rate > 0; SimulateMM1
// validates rates before any draw happens.
func Exp(rng *rand.Rand, rate float64) float64 {
	return rng.ExpFloat64() / rate
}
