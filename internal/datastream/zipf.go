package datastream

import (
	"math"
	"math/rand"
)

// Zipf draws indices from a generalized Zipf distribution with weights
// 1/(rank+b)^a. The weights are shuffled once at construction so the hot
// indices are not clustered at the low end of the key space.
type Zipf struct {
	n   int
	cdf []float64
	rng *rand.Rand
}

func NewZipf(n int, a, b float64, seed int64) *Zipf {
	rng := rand.New(rand.NewSource(seed))

	weights := make([]float64, n)
	var sum float64
	for i := 1; i <= n; i++ {
		weights[i-1] = 1.0 / math.Pow(float64(i)+b, a)
		sum += weights[i-1]
	}
	for i := range weights {
		weights[i] /= sum
	}
	rng.Shuffle(len(weights), func(i, j int) {
		weights[i], weights[j] = weights[j], weights[i]
	})

	cdf := make([]float64, n)
	cdf[0] = weights[0]
	for i := 1; i < n; i++ {
		cdf[i] = cdf[i-1] + weights[i]
	}

	return &Zipf{
		n:   n,
		cdf: cdf,
		rng: rng,
	}
}

// Next returns an index in [0, n) by binary search over the CDF.
func (z *Zipf) Next() int {
	r := z.rng.Float64()
	lo, hi := 0, z.n-1
	for lo < hi {
		mid := (lo + hi) / 2
		if r > z.cdf[mid] {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
