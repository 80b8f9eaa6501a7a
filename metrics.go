package skipindex

// Stats aggregates the mutation counters of a list. The counters are plain
// integers updated inline by the single-threaded mutation path; searches
// never touch them.
type Stats struct {
	// Inserts counts Insert calls, including collisions.
	Inserts uint64

	// Collisions counts inserts that landed on an existing key and only
	// grew its multiset.
	Collisions uint64

	// Erases counts value removals that succeeded.
	Erases uint64

	// Unlinks counts erases that emptied a multiset and removed its node.
	Unlinks uint64

	// Misses counts erases that found neither the key nor the value.
	Misses uint64
}
