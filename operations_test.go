package skipindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertFindRoundTrip(t *testing.T) {
	t.Parallel()
	list, err := New(identityHasher)
	require.NoError(t, err)

	list.Insert(42)

	it := list.Find(42)
	require.True(t, it.Valid())
	assert.Equal(t, uint64(42), it.Key())
	assert.Equal(t, []int{42}, it.Values())

	require.NoError(t, list.Erase(42))
	assert.False(t, list.Find(42).Valid())
	assert.True(t, list.Empty())
}

func TestFindIsIdempotent(t *testing.T) {
	t.Parallel()
	list, err := FromSlice(identityHasher, []int{5, 1, 9})
	require.NoError(t, err)

	before := collectKeys(list)
	for i := 0; i < 10; i++ {
		it := list.Find(5)
		require.True(t, it.Valid())
		require.Equal(t, uint64(5), it.Key())
		require.False(t, list.Find(6).Valid())
	}
	assert.Equal(t, 3, list.Len())
	assert.Equal(t, before, collectKeys(list))
}

func TestCollidingValuesShareOneNode(t *testing.T) {
	t.Parallel()
	list, err := New(collidingHasher)
	require.NoError(t, err)

	list.Insert(3)
	require.Equal(t, 1, list.Len())

	// 11 % 8 == 3: same key, no new node.
	list.Insert(11)
	assert.Equal(t, 1, list.Len(), "a colliding insert must not add a node")
	assert.Equal(t, 2, list.NumValues())

	it := list.Find(3)
	require.True(t, it.Valid())
	assert.ElementsMatch(t, []int{3, 11}, it.Values())

	// A distinct key adds exactly one node.
	list.Insert(4)
	assert.Equal(t, 2, list.Len())

	stats := list.Stats()
	assert.Equal(t, uint64(3), stats.Inserts)
	assert.Equal(t, uint64(1), stats.Collisions)

	assertOrdered(t, list)
	assertLevelConsistency(t, list)
}

func TestEraseRemovesOneOccurrence(t *testing.T) {
	t.Parallel()
	list, err := New(collidingHasher)
	require.NoError(t, err)

	list.Insert(3)
	list.Insert(11)

	// Removing one colliding value keeps the node alive.
	require.NoError(t, list.Erase(11))
	assert.Equal(t, 1, list.Len())
	assert.Equal(t, 1, list.NumValues())
	it := list.Find(3)
	require.True(t, it.Valid())
	assert.Equal(t, []int{3}, it.Values())

	// Removing the last value unlinks the node.
	require.NoError(t, list.Erase(3))
	assert.Equal(t, 0, list.Len())
	assert.False(t, list.Find(3).Valid())
	assertOrdered(t, list)

	stats := list.Stats()
	assert.Equal(t, uint64(2), stats.Erases)
	assert.Equal(t, uint64(1), stats.Unlinks)
}

func TestEraseDuplicateValueInstances(t *testing.T) {
	t.Parallel()
	list, err := New(identityHasher)
	require.NoError(t, err)

	list.Insert(7)
	list.Insert(7)
	require.Equal(t, 1, list.Len())
	require.Equal(t, 2, list.NumValues())

	require.NoError(t, list.Erase(7))
	assert.Equal(t, 1, list.Len(), "one instance must remain")
	assert.Equal(t, 1, list.NumValues())

	require.NoError(t, list.Erase(7))
	assert.True(t, list.Empty())
}

func TestEraseMisses(t *testing.T) {
	t.Parallel()

	t.Run("absent key", func(t *testing.T) {
		t.Parallel()
		list, err := FromSlice(identityHasher, []int{1, 2, 3})
		require.NoError(t, err)

		require.ErrorIs(t, list.Erase(9), ErrNotFound)
		assert.Equal(t, 3, list.Len())
		assert.Equal(t, uint64(1), list.Stats().Misses)
		assertOrdered(t, list)
	})

	t.Run("key present but value absent", func(t *testing.T) {
		t.Parallel()
		// The colliding hasher maps 3 and 11 to the same key; only 3 is
		// stored, so erasing 11 must report not found without mutating.
		list, err := New(collidingHasher)
		require.NoError(t, err)
		list.Insert(3)

		require.ErrorIs(t, list.Erase(11), ErrNotFound)
		assert.Equal(t, 1, list.Len())
		assert.Equal(t, 1, list.NumValues())
		require.True(t, list.Find(3).Valid())
		assertOrdered(t, list)
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()
		list, err := New(identityHasher)
		require.NoError(t, err)
		require.ErrorIs(t, list.Erase(1), ErrNotFound)
	})
}

func TestEraseEndpoints(t *testing.T) {
	t.Parallel()
	list, err := FromSlice(identityHasher, []int{10, 20, 30, 40})
	require.NoError(t, err)

	require.NoError(t, list.Erase(10))
	assert.Equal(t, []uint64{20, 30, 40}, collectKeys(list))
	assertOrdered(t, list)
	assertLevelConsistency(t, list)

	require.NoError(t, list.Erase(40))
	assert.Equal(t, []uint64{20, 30}, collectKeys(list))
	assertOrdered(t, list)
	assertLevelConsistency(t, list)
}

// The reference scenario: maxLevel 4, probability 0.5, hashes inserted as
// 50, 10, 90, 30.
func TestReferenceScenario(t *testing.T) {
	t.Parallel()

	list, err := FromSlice(identityHasher, []int{50, 10, 90, 30},
		WithMaxLevel(4), WithProbability(0.5))
	require.NoError(t, err)

	assert.Equal(t, []uint64{10, 30, 50, 90}, collectKeys(list))
	assert.Equal(t, 4, list.Len())

	require.True(t, list.Find(30).Valid())
	require.False(t, list.Find(40).Valid())

	require.NoError(t, list.Erase(50))
	assert.Equal(t, []uint64{10, 30, 90}, collectKeys(list))
	assert.Equal(t, 3, list.Len())

	assertOrdered(t, list)
	assertLevelConsistency(t, list)
}

func TestInsertEraseChurnKeepsInvariants(t *testing.T) {
	t.Parallel()

	list, err := New(identityHasher, WithMaxLevel(10))
	require.NoError(t, err)

	for i := 0; i < 500; i++ {
		list.Insert(i)
	}
	for i := 0; i < 500; i += 2 {
		require.NoError(t, list.Erase(i))
	}
	for i := 1; i < 500; i += 4 {
		list.Insert(i) // duplicate instances on existing keys
	}

	assertOrdered(t, list)
	assertLevelConsistency(t, list)
	assert.Equal(t, 250, list.Len())
}
