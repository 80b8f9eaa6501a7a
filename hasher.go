package skipindex

import "github.com/cespare/xxhash/v2"

// Hasher derives the ordering key for a value. It must be pure,
// deterministic, and total: equal values always yield equal keys, and every
// value yields a key. Distinct values may collide; colliding values share a
// node and coexist in its multiset.
type Hasher[V comparable] func(V) uint64

// StringHasher keys string values by their xxhash digest.
func StringHasher(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Uint64Hasher keys uint64 values by themselves, so traversal order matches
// numeric order.
func Uint64Hasher(v uint64) uint64 {
	return v
}

// IntHasher keys int values by their uint64 conversion. Negative values wrap
// to the upper half of the key space and therefore sort after all
// non-negative values.
func IntHasher(v int) uint64 {
	return uint64(v)
}
