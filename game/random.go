package game

import "math/rand/v2"

// Random supplies uniform integer draws over inclusive ranges
// Used for the CPU aiming error, serve angle and serve height
type Random interface {
	IntRange(lo, hi int) int
}

type pcgRandom struct {
	r *rand.Rand
}

// NewRandom returns a seeded PCG-backed source; equal seeds replay equal matches
func NewRandom(seed uint64) Random {
	return &pcgRandom{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntRange returns a uniform integer in [lo, hi]; returns lo when hi <= lo
func (p *pcgRandom) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + p.r.IntN(hi-lo+1)
}
