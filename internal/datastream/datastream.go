// Package datastream generates key workloads for exercising the skip list
// under different access distributions.
package datastream

// Generator produces a stream of key indices in [0, n).
type Generator interface {
	Next() int
}

// Sequence drains k draws from g into a slice.
func Sequence(g Generator, k int) []int {
	out := make([]int, k)
	for i := range out {
		out[i] = g.Next()
	}
	return out
}
