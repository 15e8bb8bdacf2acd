package seedrand

// Park-Miller multiplicative congruential generator (MINSTD). The whole
// mock dataset depends on this producing the same stream for the same
// seed on every platform, so the recurrence is fixed here rather than
// delegated to math/rand.
const (
	modulus    = 2147483647 // 2^31 - 1, prime
	multiplier = 16807
)

// Rand is a deterministic pseudo-random source. It is not safe for
// concurrent use; each dataset build owns its own instance.
type Rand struct {
	state int64
}

// New returns a generator seeded with the given value. The seed is
// normalized into [1, modulus-1]; zero and negative seeds are valid input.
func New(seed int64) *Rand {
	s := seed % modulus
	if s <= 0 {
		s += modulus - 1
	}
	return &Rand{state: s}
}

// Next advances the state and returns a float in [0, 1). The multiply
// stays well below 2^63, so int64 arithmetic is exact.
func (r *Rand) Next() float64 {
	r.state = r.state * multiplier % modulus
	return float64(r.state-1) / float64(modulus-1)
}

// NextInt returns an integer in [min, max] inclusive.
func (r *Rand) NextInt(min, max int) int {
	return int(r.Next()*float64(max-min+1)) + min
}
