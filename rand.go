package skipindex

import (
	"math/bits"

	"github.com/valyala/fastrand"
)

// levelGenerator draws node levels from a Binomial(maxLevel-1, p)
// distribution: level 0 is always present and each draw is independent of
// every other. The generator is held by the mutation path only; search never
// touches it and stays side-effect-free.
type levelGenerator struct {
	trials int
	p      float64
	rng    fastrand.RNG
}

func newLevelGenerator(maxLevel int, p float64) *levelGenerator {
	g := &levelGenerator{
		trials: maxLevel - 1,
		p:      p,
	}
	g.rng.Seed(fastrand.Uint32())
	return g
}

const probabilityUnit = 1.0 / (1 << 32)

// next returns a draw in [0, trials]. For p = 1/2 the draw is the popcount
// of trials random bits, which is exactly Binomial(trials, 1/2); other
// probabilities fall back to per-trial Bernoulli sampling.
func (g *levelGenerator) next() int {
	if g.trials <= 0 {
		return 0
	}

	if g.p == 0.5 {
		successes := 0
		remaining := g.trials
		for remaining > 0 {
			width := remaining
			if width > 32 {
				width = 32
			}
			word := g.rng.Uint32()
			if width < 32 {
				word &= (1 << uint(width)) - 1
			}
			successes += bits.OnesCount32(word)
			remaining -= width
		}
		return successes
	}

	successes := 0
	for i := 0; i < g.trials; i++ {
		if float64(g.rng.Uint32())*probabilityUnit < g.p {
			successes++
		}
	}
	return successes
}
