package sim

import (
	"errors"
	"math"
	"math/rand"
)

// ErrDemandExhausted is returned by finite demand sources when asked for
// more draws than they hold. The engine propagates it without producing
// a partial run.
var ErrDemandExhausted = errors.New("demand source exhausted")

// DemandSource generates one day's demand per call.
// Implementations wrap an injected RNG rather than global randomness so
// runs are reproducible from a seed.
type DemandSource interface {
	// Draw returns the next daily demand (>= 0).
	Draw() (int, error)
}

// PoissonSource draws integer daily demand from a Poisson distribution.
type PoissonSource struct {
	mean float64
	rng  *rand.Rand
}

// NewPoissonSource creates a Poisson demand source with the given mean.
// A mean of 0 is valid and always draws 0.
func NewPoissonSource(mean float64, rng *rand.Rand) *PoissonSource {
	return &PoissonSource{mean: mean, rng: rng}
}

func (s *PoissonSource) Draw() (int, error) {
	return poissonRand(s.rng, s.mean), nil
}

// poissonChunk caps the rate handled by a single Knuth pass. exp(-mean)
// underflows to 0 for large means, so bigger rates are split into chunks
// and summed (Poisson additivity keeps the result exact).
const poissonChunk = 30.0

// poissonRand samples from Poisson(mean) using Knuth's multiplication method.
func poissonRand(rng *rand.Rand, mean float64) int {
	if mean <= 0 {
		return 0
	}
	total := 0
	for mean > poissonChunk {
		total += knuthPoisson(rng, poissonChunk)
		mean -= poissonChunk
	}
	return total + knuthPoisson(rng, mean)
}

func knuthPoisson(rng *rand.Rand, mean float64) int {
	limit := math.Exp(-mean)
	k := 0
	p := rng.Float64()
	for p > limit {
		k++
		p *= rng.Float64()
	}
	return k
}

// ConstantSource yields the same demand every day. Useful for pinning down
// boundary behavior without any randomness.
type ConstantSource struct {
	demand int
}

// NewConstantSource creates a source that always draws the given demand.
func NewConstantSource(demand int) *ConstantSource {
	return &ConstantSource{demand: demand}
}

func (s *ConstantSource) Draw() (int, error) {
	return s.demand, nil
}

// SequenceSource replays a fixed list of draws, then fails with
// ErrDemandExhausted. Intended for tests that script exact demand.
type SequenceSource struct {
	draws []int
	next  int
}

// NewSequenceSource creates a finite source over the given draws.
func NewSequenceSource(draws ...int) *SequenceSource {
	return &SequenceSource{draws: draws}
}

func (s *SequenceSource) Draw() (int, error) {
	if s.next >= len(s.draws) {
		return 0, ErrDemandExhausted
	}
	d := s.draws[s.next]
	s.next++
	return d, nil
}
