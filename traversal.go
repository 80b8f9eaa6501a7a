package skipindex

// findFloor locates the last node whose key is <= key and captures, for every
// level, the predecessor: the last node visited at that level before the
// descent dropped down. The predecessors are the splice points for structural
// mutation. On an empty list the floor is the head and every predecessor is
// the head.
//
// The descent advances with a strict key comparison, so each predecessor lies
// strictly before the target key; the exact-match candidate is the level-0
// successor of the lowest predecessor.
func (l *SkipList[V]) findFloor(key uint64) (floor *node[V], preds []*node[V]) {
	preds = make([]*node[V], l.config.maxLevel)

	x := l.head
	for i := l.config.maxLevel - 1; i >= 0; i-- {
		for next := x.forwards[i]; next != l.tail && next.key < key; next = x.forwards[i] {
			x = next
		}
		preds[i] = x
	}

	floor = x
	if next := x.forwards[0]; next != l.tail && next.key == key {
		floor = next
	}
	return floor, preds
}

// seek returns the node holding key, or nil when the key is absent. It is the
// predecessor-free descent used by lookups.
func (l *SkipList[V]) seek(key uint64) *node[V] {
	x := l.head
	for i := l.config.maxLevel - 1; i >= 0; i-- {
		for next := x.forwards[i]; next != l.tail && next.key < key; next = x.forwards[i] {
			x = next
		}
	}

	if next := x.forwards[0]; next != l.tail && next.key == key {
		return next
	}
	return nil
}
