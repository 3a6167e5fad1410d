package shared

import "math/rand"

// Rand is the random source consulted by valuation and AI decision logic.
// Injecting it keeps negotiation outcomes reproducible under a fixed seed.
type Rand interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0)
	Float64() float64

	// Between returns a pseudo-random number in [lo, hi)
	Between(lo, hi float64) float64
}

// SeededRand implements Rand on top of math/rand with an explicit seed
type SeededRand struct {
	rng *rand.Rand
}

// NewSeededRand creates a Rand seeded with the given value
func NewSeededRand(seed int64) *SeededRand {
	return &SeededRand{rng: rand.New(rand.NewSource(seed))}
}

func (r *SeededRand) Float64() float64 {
	return r.rng.Float64()
}

func (r *SeededRand) Between(lo, hi float64) float64 {
	return lo + r.rng.Float64()*(hi-lo)
}

// FixedRand always returns the same value, for deterministic tests
type FixedRand struct {
	Value float64
}

func (r *FixedRand) Float64() float64 {
	return r.Value
}

func (r *FixedRand) Between(lo, hi float64) float64 {
	return lo + r.Value*(hi-lo)
}
