package physics

import "math/rand/v2"

// Rand is the shared pseudo-random stream consumed by the simulation.
// Values are non-negative and only ever used via modulo, so tests can
// inject scripted sequences to pin decisions.
type Rand interface {
	Next() int
}

type pcgRand struct {
	src *rand.Rand
}

// NewRand returns the default seeded stream. The same seed always yields
// the same sequence across runs.
func NewRand(seed uint64) Rand {
	return &pcgRand{src: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *pcgRand) Next() int {
	return int(r.src.Uint64() >> 1)
}
