package skipindex

// node is the unit of storage: one derived key, the multiset of values that
// all map to that key, and one forward link per level the node participates
// in. The key is computed once at insertion and never recomputed.
type node[V comparable] struct {
	key      uint64
	values   []V
	forwards []*node[V]
	backward *node[V]
}

func newNode[V comparable](key uint64, level int) *node[V] {
	return &node[V]{
		key:      key,
		forwards: make([]*node[V], level),
	}
}

// newSentinels creates the permanent head and tail boundary nodes. The head
// carries maxLevel forward slots, all pointing at the tail while the list is
// empty; the tail never has outgoing forwards. Sentinels are recognized by
// identity rather than key, so a value hashing to 0 or MaxUint64 cannot be
// confused with a boundary.
func newSentinels[V comparable](maxLevel int) (head, tail *node[V]) {
	tail = &node[V]{}
	head = &node[V]{forwards: make([]*node[V], maxLevel)}
	for i := range head.forwards {
		head.forwards[i] = tail
	}
	tail.backward = head
	return head, tail
}
