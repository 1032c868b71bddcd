package linked_hashmap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireConsistent[K comparable, V any](t *testing.T, lhm *LinkedHashmap[K, V]) {
	t.Helper()
	require.NoError(t, lhm.checkInvariants())
}

func TestLinkedHashmapBasic(t *testing.T) {
	sizeEst := 10
	lhm := NewLinkedHashmap[string, int](sizeEst)

	numElems := 8
	keys := make([]string, numElems)
	vals := make([]int, numElems)
	for i := range keys {
		keys[i] = fmt.Sprintf("key%d", i)
		vals[i] = i
	}
	for i, key := range keys {
		lhm.Put(key, vals[i])
		assert.Equal(t, i+1, lhm.Len())

		_, val, ok := lhm.Front()
		assert.True(t, ok)
		assert.Equal(t, 0, val)
	}
	requireConsistent(t, lhm)

	// We can retrieve any element by key.
	for i, key := range keys {
		val, ok := lhm.Get(key)
		assert.True(t, ok)
		assert.Equal(t, vals[i], val)
	}

	// We can't retrieve invalid keys.
	_, ok := lhm.Get("invalidKey")
	assert.False(t, ok)

	// Removing an invalid key is a no-op.
	_, ok = lhm.Remove("invalidKey")
	assert.False(t, ok)
	assert.Equal(t, keys, lhm.Keys())

	// Now keep removing elements from our list, in order, until its empty.
	for i := range vals {
		_, front, _ := lhm.Front()
		assert.Equal(t, vals[i], front)

		key, val, ok := lhm.PopFront()
		assert.True(t, ok)
		assert.Equal(t, keys[i], key)
		assert.Equal(t, vals[i], val)

		_, ok = lhm.Get(key)
		assert.False(t, ok)
		requireConsistent(t, lhm)
	}

	// If our list is empty, we report absence.
	_, _, ok = lhm.Front()
	assert.False(t, ok)
	_, _, ok = lhm.PopFront()
	assert.False(t, ok)
	_, _, ok = lhm.PopBack()
	assert.False(t, ok)

	for i, key := range keys {
		lhm.Put(key, vals[i])
		assert.Equal(t, i+1, lhm.Len())
	}

	// Remove a random element and make sure it works as expected.
	val, ok := lhm.Remove(keys[3])
	assert.True(t, ok)
	assert.Equal(t, vals[3], val)

	_, ok = lhm.Get(keys[3])
	assert.False(t, ok)

	// Pop the last element off the array.
	key, val, ok := lhm.PopBack()
	assert.True(t, ok)
	assert.Equal(t, keys[len(keys)-1], key)
	assert.Equal(t, vals[len(vals)-1], val)

	_, ok = lhm.Get(key)
	assert.False(t, ok)

	_, front, _ := lhm.Front()
	assert.Equal(t, vals[0], front)

	assert.True(t, lhm.MoveToFront(keys[4]))
	_, front, _ = lhm.Front()
	assert.Equal(t, vals[4], front)
	assert.False(t, lhm.MoveToFront(keys[3]))
	requireConsistent(t, lhm)
}

func TestInsertionOrderScenario(t *testing.T) {
	lhm := NewLinkedHashmap[string, int](0)
	lhm.Put("First", 5)
	lhm.Put("Second", 8)
	lhm.Put("Third", 9)
	lhm.Put("Fourth", 11)
	lhm.Put("Fifth", 15)
	lhm.Put("Sixth", 20)

	assert.Equal(t, []Item[string, int]{
		{"First", 5}, {"Second", 8}, {"Third", 9},
		{"Fourth", 11}, {"Fifth", 15}, {"Sixth", 20},
	}, lhm.Items())

	val, ok := lhm.Remove("Third")
	assert.True(t, ok)
	assert.Equal(t, 9, val)
	val, ok = lhm.Remove("Fourth")
	assert.True(t, ok)
	assert.Equal(t, 11, val)
	requireConsistent(t, lhm)

	assert.Equal(t, []Item[string, int]{
		{"First", 5}, {"Second", 8}, {"Fifth", 15}, {"Sixth", 20},
	}, lhm.Items())

	val, ok = lhm.Get("Fifth")
	assert.True(t, ok)
	assert.Equal(t, 15, val)

	_, ok = lhm.Remove("Garbage")
	assert.False(t, ok)
	assert.Equal(t, 4, lhm.Len())

	var drained []string
	cur := lhm.Iter()
	for cur.Next() {
		_, ok := lhm.Remove(cur.Key())
		require.True(t, ok)
		drained = append(drained, cur.Key())
		requireConsistent(t, lhm)
	}
	require.NoError(t, cur.Err())
	assert.Equal(t, []string{"First", "Second", "Fifth", "Sixth"}, drained)

	_, ok = lhm.Remove("Garbage")
	assert.False(t, ok)
	assert.Empty(t, lhm.Items())
	assert.False(t, lhm.Iter().Next())
	assert.Equal(t, 0, lhm.Len())
}

func TestPutExistingKeyUpdatesInPlace(t *testing.T) {
	lhm := NewLinkedHashmap[string, int](4)
	lhm.Put("a", 1)
	lhm.Put("b", 2)
	lhm.Put("c", 3)

	lhm.Put("a", 10)
	requireConsistent(t, lhm)
	assert.Equal(t, 3, lhm.Len())
	assert.Equal(t, []string{"a", "b", "c"}, lhm.Keys())
	val, _ := lhm.Get("a")
	assert.Equal(t, 10, val)

	lhm.PushFront("c", 30)
	assert.Equal(t, []string{"a", "b", "c"}, lhm.Keys())
	assert.Equal(t, []int{10, 2, 30}, lhm.Values())
}

func TestPutBackRefreshesPosition(t *testing.T) {
	lhm := NewLinkedHashmap[string, int](4)
	lhm.Put("a", 1)
	lhm.Put("b", 2)
	lhm.Put("c", 3)

	lhm.PutBack("a", 10)
	requireConsistent(t, lhm)
	assert.Equal(t, []string{"b", "c", "a"}, lhm.Keys())
	key, val, _ := lhm.Back()
	assert.Equal(t, "a", key)
	assert.Equal(t, 10, val)

	lhm.PutBack("d", 4)
	assert.Equal(t, []string{"b", "c", "a", "d"}, lhm.Keys())

	// Refreshing the newest entry keeps it last.
	lhm.PutBack("d", 40)
	assert.Equal(t, []string{"b", "c", "a", "d"}, lhm.Keys())
	requireConsistent(t, lhm)
}

func TestPushFrontAndMoves(t *testing.T) {
	lhm := NewLinkedHashmap[int, string](0)
	lhm.PushFront(1, "one")
	lhm.PushFront(2, "two")
	lhm.Put(3, "three")
	assert.Equal(t, []int{2, 1, 3}, lhm.Keys())
	requireConsistent(t, lhm)

	assert.True(t, lhm.MoveToBack(2))
	assert.Equal(t, []int{1, 3, 2}, lhm.Keys())
	assert.True(t, lhm.MoveToBack(2))
	assert.Equal(t, []int{1, 3, 2}, lhm.Keys())
	assert.True(t, lhm.MoveToFront(3))
	assert.Equal(t, []int{3, 1, 2}, lhm.Keys())
	assert.False(t, lhm.MoveToBack(4))
	requireConsistent(t, lhm)

	key, _, _ := lhm.Front()
	assert.Equal(t, 3, key)
	key, _, _ = lhm.Back()
	assert.Equal(t, 2, key)
}

func TestRemoveEdges(t *testing.T) {
	lhm := NewLinkedHashmap[string, int](0)
	lhm.Put("only", 1)

	val, ok := lhm.Remove("only")
	assert.True(t, ok)
	assert.Equal(t, 1, val)
	requireConsistent(t, lhm)
	assert.Equal(t, nilSlot, lhm.chain.first)
	assert.Equal(t, nilSlot, lhm.chain.last)

	lhm.Put("a", 1)
	lhm.Put("b", 2)
	lhm.Put("c", 3)

	// Tail removal moves last back.
	lhm.Remove("c")
	key, _, _ := lhm.Back()
	assert.Equal(t, "b", key)

	// Head removal moves first forward.
	lhm.Remove("a")
	key, _, _ = lhm.Front()
	assert.Equal(t, "b", key)
	requireConsistent(t, lhm)

	lhm.Put("d", 4)
	assert.Equal(t, []string{"b", "d"}, lhm.Keys())
	requireConsistent(t, lhm)
}

func TestRemoveAbsentLeavesMapUnchanged(t *testing.T) {
	lhm := NewLinkedHashmap[string, int](0)
	for i := 0; i < 5; i++ {
		lhm.Put(fmt.Sprintf("k%d", i), i)
	}
	lhm.Remove("k2")

	before := lhm.Items()
	first, last, free := lhm.chain.first, lhm.chain.last, lhm.chain.free

	_, ok := lhm.Remove("k2")
	assert.False(t, ok)
	_, ok = lhm.Remove("missing")
	assert.False(t, ok)

	assert.Equal(t, before, lhm.Items())
	assert.Equal(t, first, lhm.chain.first)
	assert.Equal(t, last, lhm.chain.last)
	assert.Equal(t, free, lhm.chain.free)
	assert.Equal(t, 4, lhm.Len())
}

func TestSlotsAreReused(t *testing.T) {
	lhm := NewLinkedHashmap[int, int](0)
	for i := 0; i < 100; i++ {
		lhm.Put(i, i)
		lhm.Remove(i)
	}
	requireConsistent(t, lhm)
	assert.Equal(t, 1, len(lhm.chain.nodes))

	for i := 0; i < 10; i++ {
		lhm.Put(i, i)
	}
	for i := 0; i < 10; i += 2 {
		lhm.Remove(i)
	}
	for i := 10; i < 15; i++ {
		lhm.Put(i, i)
	}
	requireConsistent(t, lhm)
	assert.Equal(t, 10, len(lhm.chain.nodes))
	assert.Equal(t, []int{1, 3, 5, 7, 9, 10, 11, 12, 13, 14}, lhm.Keys())
}

func TestRemovedValuesAreNotRetained(t *testing.T) {
	lhm := NewLinkedHashmap[string, *int](0)
	v := 7
	lhm.Put("a", &v)
	lhm.Remove("a")
	assert.Nil(t, lhm.chain.nodes[0].value)
	assert.Equal(t, "", lhm.chain.nodes[0].key)
}

func TestZeroValue(t *testing.T) {
	var lhm LinkedHashmap[string, int]
	_, ok := lhm.Get("a")
	assert.False(t, ok)
	_, ok = lhm.Remove("a")
	assert.False(t, ok)
	assert.False(t, lhm.Iter().Next())
	assert.Equal(t, 0, lhm.Len())
	requireConsistent(t, &lhm)

	lhm.Put("a", 1)
	lhm.Put("b", 2)
	assert.Equal(t, []string{"a", "b"}, lhm.Keys())
	requireConsistent(t, &lhm)
}

func TestClear(t *testing.T) {
	lhm := NewLinkedHashmap[string, int](0)
	lhm.Put("a", 1)
	lhm.Put("b", 2)
	lhm.Remove("a")

	lhm.Clear()
	requireConsistent(t, lhm)
	assert.Equal(t, 0, lhm.Len())
	assert.Empty(t, lhm.Keys())
	assert.False(t, lhm.Contains("b"))

	lhm.Put("c", 3)
	assert.Equal(t, []string{"c"}, lhm.Keys())
	requireConsistent(t, lhm)
}

func TestString(t *testing.T) {
	lhm := NewLinkedHashmap[string, int](0)
	assert.Equal(t, "map[]", lhm.String())
	lhm.Put("z", 26)
	lhm.Put("a", 1)
	assert.Equal(t, "map[z:26 a:1]", lhm.String())
}

func TestCheckInvariantsDetectsCorruption(t *testing.T) {
	lhm := NewLinkedHashmap[string, int](0)
	lhm.Put("a", 1)
	lhm.Put("b", 2)
	lhm.Put("c", 3)
	requireConsistent(t, lhm)

	// Index slot overwritten without unlinking the old node.
	lhm.hashMap["a"] = 2
	assert.Error(t, lhm.checkInvariants())
	lhm.hashMap["a"] = 0
	requireConsistent(t, lhm)

	// Asymmetric prev link.
	lhm.chain.nodes[2].prev = 0
	assert.Error(t, lhm.checkInvariants())
	lhm.chain.nodes[2].prev = 1
	requireConsistent(t, lhm)

	// Stale last pointer.
	lhm.chain.last = 1
	assert.Error(t, lhm.checkInvariants())
}
