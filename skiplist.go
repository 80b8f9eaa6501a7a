// Package skipindex implements a probabilistic ordered associative container:
// a skip list that stores values keyed by a scalar derived from each value,
// typically a hash. Distinct values whose derivations collide share a single
// node and coexist in that node's multiset. Search and mutation run in
// expected O(log n).
//
// The container is single-threaded. Callers that share a list across
// goroutines must serialize access externally; the list provides no internal
// synchronization.
package skipindex

// SkipList is a sorted multiset index over values of type V, ordered by the
// key a Hasher derives from each value.
//
// A SkipList must not be copied by value after first use: the forward links
// are internal positional state that a shallow copy would corrupt. Transfer
// ownership by handing off the pointer.
type SkipList[V comparable] struct {
	config Config
	hasher Hasher[V]
	head   *node[V]
	tail   *node[V]
	length int
	values int
	gen    *levelGenerator
	stats  Stats
}

// New returns an empty SkipList keyed by hasher. Construction fails fast on
// an invalid configuration; no partially built list is returned.
func New[V comparable](hasher Hasher[V], opts ...Option) (*SkipList[V], error) {
	if hasher == nil {
		return nil, ErrNilHasher
	}

	cfg := NewConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	head, tail := newSentinels[V](cfg.maxLevel)
	return &SkipList[V]{
		config: cfg,
		hasher: hasher,
		head:   head,
		tail:   tail,
		gen:    newLevelGenerator(cfg.maxLevel, cfg.probability),
	}, nil
}

// FromSlice builds a list and inserts every value in order. It covers both
// the sequence and the literal-list construction forms.
func FromSlice[V comparable](hasher Hasher[V], values []V, opts ...Option) (*SkipList[V], error) {
	list, err := New(hasher, opts...)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		list.Insert(v)
	}
	return list, nil
}

// Config returns the construction parameters the list was built with.
func (l *SkipList[V]) Config() Config {
	return l.config
}

// Len returns the number of real nodes, which is the number of distinct keys
// currently stored. Sentinels are excluded; colliding values do not add
// nodes.
func (l *SkipList[V]) Len() int {
	return l.length
}

// Empty reports whether the list holds no real nodes.
func (l *SkipList[V]) Empty() bool {
	return l.length == 0
}

// NumValues returns the total number of stored values across all nodes. It
// exceeds Len exactly when keys collide.
func (l *SkipList[V]) NumValues() int {
	return l.values
}

// Height returns the number of levels currently in use: the highest level at
// which the head still reaches a real node, plus one. An empty list has
// height 0.
func (l *SkipList[V]) Height() int {
	for i := l.config.maxLevel - 1; i >= 0; i-- {
		if l.head.forwards[i] != l.tail {
			return i + 1
		}
	}
	return 0
}

// Stats returns a snapshot of the mutation counters.
func (l *SkipList[V]) Stats() Stats {
	return l.stats
}
