// Package sim provides three classic stochastic simulations used to
// explore probability and queueing theory: Monte Carlo estimation of π,
// a one-dimensional random walk, and a discrete-event M/M/1 queue.
//
// # Reading Guide
//
// Start with these files to understand the package:
//   - rng.go: deterministic, per-experiment random streams
//   - montecarlo.go, walk.go: the two sampling experiments
//   - event.go: arrival/departure events that drive the queue
//   - simulator.go: the event loop, event heap, and SimulateMM1
//
// # Determinism
//
// Every routine takes an explicit *rand.Rand. Two calls with
// identically seeded generators and identical parameters produce
// bit-for-bit identical results. PartitionedRNG derives an isolated
// stream per experiment so running one experiment never perturbs the
// draws of another.
//
// # Errors
//
// Parameters outside their valid domain (non-positive rates, negative
// step counts) fail with an error wrapping ErrInvalidArgument. There
// are no other failure modes; the routines perform no I/O.
package sim
