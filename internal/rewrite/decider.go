package rewrite

import (
	"math/rand/v2"
)

// InsertProbability is the chance a qualifying sentence gets a casual lead-in.
const InsertProbability = 0.3

// Decider supplies the random choices of the casual-insertion step.
type Decider interface {
	// Insert reports whether the current sentence gets a lead-in.
	Insert() bool
	// Pick returns an index in [0, n).
	Pick(n int) int
}

// RandomDecider is the default Decider. It is not safe for concurrent use;
// give each goroutine its own.
type RandomDecider struct {
	rng         *rand.Rand
	probability float64
}

func NewRandomDecider(seed uint64) *RandomDecider {
	return &RandomDecider{
		rng:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		probability: InsertProbability,
	}
}

// NewUnseededDecider draws its seed from the runtime's global source.
func NewUnseededDecider() *RandomDecider {
	return NewRandomDecider(rand.Uint64())
}

func (d *RandomDecider) Insert() bool {
	return d.rng.Float64() < d.probability
}

func (d *RandomDecider) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	return d.rng.IntN(n)
}
