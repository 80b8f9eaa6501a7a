package datastream

import "math/rand"

// Uniform draws every index with equal probability.
type Uniform struct {
	n   int
	rng *rand.Rand
}

func NewUniform(n int, seed int64) *Uniform {
	return &Uniform{
		n:   n,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Next returns an index in [0, n).
func (u *Uniform) Next() int {
	return u.rng.Intn(u.n)
}
