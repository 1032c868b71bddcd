package linked_hashmap

import (
	"fmt"
	"iter"

	"github.com/ordered/linkedmap/errors"
)

// ErrCursorInvalidated is reported by a Cursor whose next entry was removed
// from the map after the cursor reached it, or whose map had an entry moved
// while the cursor still had entries to visit.
var ErrCursorInvalidated = fmt.Errorf("linked_hashmap: map changed under cursor")

// Cursor walks a LinkedHashmap from its oldest to its newest entry by
// following the live chain links, so entries removed ahead of the cursor are
// skipped and entries appended before the cursor runs off the end are seen.
//
// Removing the entry the cursor most recently yielded is always safe:
//
//	cur := m.Iter()
//	for cur.Next() {
//		m.Remove(cur.Key())
//	}
//
// Removing the entry the cursor is parked on (the one the next call to Next
// would yield) ends the iteration and Err returns ErrCursorInvalidated. So
// does moving any entry (MoveToFront, MoveToBack, PutBack) before the cursor
// is exhausted, since a move can make the cursor revisit or skip entries.
type Cursor[K comparable, V any] struct {
	owner *LinkedHashmap[K, V]
	at    slotID
	gen   uint32
	moves uint64

	key   K
	value V
	err   error
}

// Iter returns a cursor positioned before the oldest entry. Every call
// returns an independent cursor.
func (l *LinkedHashmap[K, V]) Iter() *Cursor[K, V] {
	l.lazyInit()
	c := &Cursor[K, V]{owner: l, moves: l.chain.moves}
	c.park(l.chain.first)
	return c
}

func (c *Cursor[K, V]) park(id slotID) {
	c.at = id
	if id != nilSlot {
		c.gen = c.owner.chain.at(id).gen
	}
}

// Next advances the cursor and reports whether an entry is available
// through Key and Value.
func (c *Cursor[K, V]) Next() bool {
	if c.err != nil || c.at == nilSlot {
		c.clearCurrent()
		return false
	}

	if c.owner.chain.moves != c.moves {
		c.invalidate()
		return false
	}
	nodes := c.owner.chain.nodes
	if int(c.at) >= len(nodes) || !nodes[c.at].live || nodes[c.at].gen != c.gen {
		c.invalidate()
		return false
	}
	n := &nodes[c.at]

	c.key = n.key
	c.value = n.value
	c.park(n.next)
	return true
}

func (c *Cursor[K, V]) invalidate() {
	c.err = errors.Wrapf(
		ErrCursorInvalidated, "slot %d generation %d moves %d", c.at, c.gen, c.moves)
	c.at = nilSlot
	c.clearCurrent()
}

func (c *Cursor[K, V]) clearCurrent() {
	var zeroK K
	var zeroV V
	c.key = zeroK
	c.value = zeroV
}

// Key of the entry yielded by the last successful call to Next.
func (c *Cursor[K, V]) Key() K {
	return c.key
}

// Value of the entry yielded by the last successful call to Next.
func (c *Cursor[K, V]) Value() V {
	return c.value
}

// Err returns an error wrapping ErrCursorInvalidated if iteration stopped
// because the map was modified under the cursor, nil otherwise.
func (c *Cursor[K, V]) Err() error {
	return c.err
}

// All returns a sequence over the live entries in insertion order, with the
// same mutation rules as Cursor. A sequence which is invalidated mid-way
// simply stops.
func (l *LinkedHashmap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		cur := l.Iter()
		for cur.Next() {
			if !yield(cur.Key(), cur.Value()) {
				return
			}
		}
	}
}

// Item is a key value pair copied out of the map.
type Item[K comparable, V any] struct {
	Key   K
	Value V
}

// Items returns a snapshot of every entry in insertion order. The snapshot
// is not affected by later changes to the map.
func (l *LinkedHashmap[K, V]) Items() []Item[K, V] {
	items := make([]Item[K, V], 0, l.Len())
	for k, v := range l.All() {
		items = append(items, Item[K, V]{Key: k, Value: v})
	}
	return items
}

// Keys returns a snapshot of the keys in insertion order.
func (l *LinkedHashmap[K, V]) Keys() []K {
	keys := make([]K, 0, l.Len())
	for k := range l.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns a snapshot of the values in insertion order.
func (l *LinkedHashmap[K, V]) Values() []V {
	values := make([]V, 0, l.Len())
	for _, v := range l.All() {
		values = append(values, v)
	}
	return values
}
