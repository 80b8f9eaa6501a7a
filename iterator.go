package skipindex

// Iterator is a cursor over the list's real nodes in ascending key order.
// Sentinels are never exposed. A fresh iterator starts positioned before the
// first node; the first Next lands on it. The backbone is doubly traversable,
// so Prev walks backward from any position, including after exhaustion.
//
// Iterators are positional views into the list; a structural mutation
// invalidates every outstanding iterator.
type Iterator[V comparable] struct {
	list    *SkipList[V]
	current *node[V]
	valid   bool
}

// Iterator returns a cursor positioned before the first node.
func (l *SkipList[V]) Iterator() *Iterator[V] {
	return &Iterator[V]{list: l, current: l.head}
}

// Valid reports whether the cursor currently points at a real node.
func (it *Iterator[V]) Valid() bool {
	if it == nil {
		return false
	}
	return it.valid
}

// Key returns the derived key at the cursor's node. It should only be called
// when Valid reports true.
func (it *Iterator[V]) Key() uint64 {
	if !it.Valid() {
		return 0
	}
	return it.current.key
}

// Values returns a copy of the multiset stored at the cursor's node. The
// values share a key; their order within the slice carries no meaning.
func (it *Iterator[V]) Values() []V {
	if !it.Valid() {
		return nil
	}
	out := make([]V, len(it.current.values))
	copy(out, it.current.values)
	return out
}

// Value returns one value from the cursor's node. With a collision-free
// hasher it is the node's only value.
func (it *Iterator[V]) Value() V {
	var zero V
	if !it.Valid() || len(it.current.values) == 0 {
		return zero
	}
	return it.current.values[0]
}

// Next advances the cursor and reports whether it landed on a real node.
// From the initial position it moves to the logically first node.
func (it *Iterator[V]) Next() bool {
	if it == nil || it.list == nil || it.current == nil {
		return false
	}
	if it.current == it.list.tail {
		return false
	}

	next := it.current.forwards[0]
	it.current = next
	it.valid = next != it.list.tail
	return it.valid
}

// Prev moves the cursor backward and reports whether it landed on a real
// node. Calling Prev on an exhausted iterator positions it at the logically
// last node.
func (it *Iterator[V]) Prev() bool {
	if it == nil || it.list == nil || it.current == nil {
		return false
	}

	prev := it.current.backward
	if prev == nil || prev == it.list.head {
		it.current = it.list.head
		it.valid = false
		return false
	}

	it.current = prev
	it.valid = true
	return true
}

// SeekGE positions the cursor at the first node whose key is greater than or
// equal to key, reporting whether such a node exists.
func (it *Iterator[V]) SeekGE(key uint64) bool {
	if it == nil || it.list == nil {
		return false
	}

	l := it.list
	x := l.head
	for i := l.config.maxLevel - 1; i >= 0; i-- {
		for next := x.forwards[i]; next != l.tail && next.key < key; next = x.forwards[i] {
			x = next
		}
	}

	next := x.forwards[0]
	if next == l.tail {
		it.current = l.tail
		it.valid = false
		return false
	}

	it.current = next
	it.valid = true
	return true
}
