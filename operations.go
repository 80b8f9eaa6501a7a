package skipindex

// Insert stores value under its derived key. A value whose key is already
// present is appended into the existing node's multiset with no structural
// change; a new key allocates a node with a freshly drawn level and splices
// it through the captured predecessors. All forward links for a new node are
// installed before Insert returns, so a failed allocation leaves the list as
// it was.
func (l *SkipList[V]) Insert(value V) {
	key := l.hasher(value)
	floor, preds := l.findFloor(key)

	l.stats.Inserts++

	if floor != l.head && floor.key == key {
		floor.values = append(floor.values, value)
		l.values++
		l.stats.Collisions++
		return
	}

	level := l.gen.next() + 1
	n := newNode[V](key, level)
	n.values = append(n.values, value)

	for i := 0; i < level; i++ {
		n.forwards[i] = preds[i].forwards[i]
		preds[i].forwards[i] = n
	}

	// The backbone stays doubly traversable: hook the new node in right
	// after its level-0 predecessor.
	n.backward = preds[0]
	n.forwards[0].backward = n

	l.length++
	l.values++
}

// Erase removes exactly one occurrence of value from the node keyed by its
// hash. The node is unlinked only when its multiset empties; removing one of
// several colliding values leaves the structure untouched.
//
// Erase returns ErrNotFound when the key is absent, and also when the key is
// present but the specific value is not in its multiset. That state only
// arises from an inconsistent hasher and must not corrupt the list.
func (l *SkipList[V]) Erase(value V) error {
	key := l.hasher(value)
	floor, preds := l.findFloor(key)

	if floor == l.head || floor.key != key {
		l.stats.Misses++
		return ErrNotFound
	}

	idx := -1
	for i, v := range floor.values {
		if v == value {
			idx = i
			break
		}
	}
	if idx < 0 {
		l.stats.Misses++
		return ErrNotFound
	}

	floor.values = append(floor.values[:idx], floor.values[idx+1:]...)
	l.values--
	l.stats.Erases++

	if len(floor.values) > 0 {
		return nil
	}

	for i := range floor.forwards {
		if preds[i].forwards[i] == floor {
			preds[i].forwards[i] = floor.forwards[i]
		}
	}

	floor.forwards[0].backward = floor.backward
	floor.backward = nil

	l.length--
	l.stats.Unlinks++
	return nil
}

// Find locates the node keyed by hash(value). The returned iterator is
// positioned on that node when the key is present, and is invalid otherwise.
// Find has no side effects; repeated calls return equal results.
//
// Locating the node means the key matched; the specific value is presumed
// present in the node's multiset and is not re-verified here.
func (l *SkipList[V]) Find(value V) *Iterator[V] {
	it := &Iterator[V]{list: l, current: l.tail}
	if n := l.seek(l.hasher(value)); n != nil {
		it.current = n
		it.valid = true
	}
	return it
}

// Contains reports whether a node keyed by hash(value) exists.
func (l *SkipList[V]) Contains(value V) bool {
	return l.seek(l.hasher(value)) != nil
}
