package sim

import "math/rand"

// UniformSource returns samples uniformly distributed in [0, 1).
// (*rand.Rand).Float64 satisfies it; tests inject scripted sources.
type UniformSource func() float64

// NewDemandSource returns the demand stream for seed. Two sources built from
// the same seed yield identical sequences, so a seed reproduces a run exactly.
// The returned source is not safe for concurrent use.
func NewDemandSource(seed int64) UniformSource {
	return rand.New(rand.NewSource(seed)).Float64
}
