package core

import (
	"math/rand"
	"time"
)

// RNG produces uniformly distributed integers.
type RNG interface {
	// IntRange returns a value in [low, high). If high <= low it returns low.
	IntRange(low, high int) int
}

// Random is the seeded RNG used by the engines.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a generator with a fixed seed, for reproducible runs.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// IntRange implements RNG.
func (r *Random) IntRange(low, high int) int {
	if high <= low {
		return low
	}
	return low + r.rng.Intn(high-low)
}

// EntropySeed returns a seed drawn from the wall clock. A seed of zero on the
// command line means "use EntropySeed".
func EntropySeed() int64 {
	return time.Now().UnixNano()
}
