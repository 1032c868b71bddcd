// Package linked_hashmap provides a hash map which remembers the order in
// which keys were first inserted.
package linked_hashmap

import (
	"bytes"
	"fmt"
)

// LinkedHashmap provides a basic linked hashmap container. It maintains insertion order
// via a doubly linked list stored in a slice arena. This gives O(1) runtime to push a new
// element to the back of the list and O(1) to remove any element in the list. The additional
// hashmap allows O(1) lookup or removal of any element by key.
//
// Putting a key which is already present updates its value in place; the key keeps its
// position in the iteration order. Use PutBack to refresh a key to the newest position.
//
// The zero value is an empty map ready to use.
// Not threadsafe.
type LinkedHashmap[K comparable, V any] struct {
	chain   chain[K, V]
	hashMap map[K]slotID
}

func NewLinkedHashmap[K comparable, V any](sizeEst int) *LinkedHashmap[K, V] {
	l := &LinkedHashmap[K, V]{}
	l.init(sizeEst)
	return l
}

func (l *LinkedHashmap[K, V]) init(sizeEst int) {
	if sizeEst < 0 {
		sizeEst = 0
	}
	l.chain.init(sizeEst)
	l.hashMap = make(map[K]slotID, sizeEst)
}

func (l *LinkedHashmap[K, V]) lazyInit() {
	if l.hashMap == nil {
		l.init(0)
	}
}

// Put associates value with key. A new key is appended as the newest entry.
// An existing key has its value replaced without changing its position.
func (l *LinkedHashmap[K, V]) Put(key K, value V) {
	l.lazyInit()
	if id, ok := l.hashMap[key]; ok {
		l.chain.at(id).value = value
		return
	}
	id := l.chain.alloc(key, value)
	l.chain.linkBack(id)
	l.hashMap[key] = id
}

// PutBack associates value with key and makes key the newest entry, moving
// it to the back of the iteration order if it was already present. Moving an
// entry invalidates cursors which have entries left to visit.
func (l *LinkedHashmap[K, V]) PutBack(key K, value V) {
	l.lazyInit()
	if id, ok := l.hashMap[key]; ok {
		l.chain.at(id).value = value
		l.chain.moveBack(id)
		return
	}
	l.Put(key, value)
}

// PushFront associates value with key. A new key is prepended as the oldest
// entry. An existing key has its value replaced without changing its position.
func (l *LinkedHashmap[K, V]) PushFront(key K, value V) {
	l.lazyInit()
	if id, ok := l.hashMap[key]; ok {
		l.chain.at(id).value = value
		return
	}
	id := l.chain.alloc(key, value)
	l.chain.linkFront(id)
	l.hashMap[key] = id
}

// Same semantics as the golang map -- returns the element + true if the key exists
// in the map and the zero value, false otherwise.
func (l *LinkedHashmap[K, V]) Get(key K) (V, bool) {
	id, ok := l.hashMap[key]
	if !ok {
		var zero V
		return zero, false
	}
	return l.chain.at(id).value, true
}

func (l *LinkedHashmap[K, V]) Contains(key K) bool {
	_, ok := l.hashMap[key]
	return ok
}

// Remove deletes key and returns the value it held. Removing a key which is
// not in the map returns the zero value, false and leaves the map untouched.
func (l *LinkedHashmap[K, V]) Remove(key K) (V, bool) {
	id, ok := l.hashMap[key]
	if !ok {
		var zero V
		return zero, false
	}
	value := l.chain.at(id).value
	l.chain.unlink(id)
	delete(l.hashMap, key)
	l.chain.release(id)
	return value, true
}

// Returns the oldest entry, or false if the map is empty.
func (l *LinkedHashmap[K, V]) Front() (key K, value V, ok bool) {
	l.lazyInit()
	return l.entryAt(l.chain.first)
}

// Returns the newest entry, or false if the map is empty.
func (l *LinkedHashmap[K, V]) Back() (key K, value V, ok bool) {
	l.lazyInit()
	return l.entryAt(l.chain.last)
}

func (l *LinkedHashmap[K, V]) entryAt(id slotID) (key K, value V, ok bool) {
	if id == nilSlot {
		return key, value, false
	}
	n := l.chain.at(id)
	return n.key, n.value, true
}

// Removes and returns the oldest entry, or false if the map is empty.
func (l *LinkedHashmap[K, V]) PopFront() (key K, value V, ok bool) {
	key, _, ok = l.Front()
	if !ok {
		return key, value, false
	}
	value, _ = l.Remove(key)
	return key, value, true
}

// Removes and returns the newest entry, or false if the map is empty.
func (l *LinkedHashmap[K, V]) PopBack() (key K, value V, ok bool) {
	key, _, ok = l.Back()
	if !ok {
		return key, value, false
	}
	value, _ = l.Remove(key)
	return key, value, true
}

// MoveToFront makes key the oldest entry. Returns false if key is not in
// the map. Moving an entry invalidates cursors which have entries left to
// visit.
func (l *LinkedHashmap[K, V]) MoveToFront(key K) bool {
	id, ok := l.hashMap[key]
	if !ok {
		return false
	}
	l.chain.moveFront(id)
	return true
}

// MoveToBack makes key the newest entry. Returns false if key is not in
// the map. Moving an entry invalidates cursors which have entries left to
// visit.
func (l *LinkedHashmap[K, V]) MoveToBack(key K) bool {
	id, ok := l.hashMap[key]
	if !ok {
		return false
	}
	l.chain.moveBack(id)
	return true
}

func (l *LinkedHashmap[K, V]) Len() int {
	return len(l.hashMap)
}

// Clear removes every entry. Cursors created before Clear report
// ErrCursorInvalidated if they had entries left to visit.
func (l *LinkedHashmap[K, V]) Clear() {
	l.lazyInit()
	l.chain.reset()
	clear(l.hashMap)
}

// Renders the map in insertion order, e.g. map[a:1 b:2].
func (l *LinkedHashmap[K, V]) String() string {
	buf := bytes.NewBufferString("map[")
	cur := l.Iter()
	for i := 0; cur.Next(); i++ {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%v:%v", cur.Key(), cur.Value())
	}
	buf.WriteByte(']')
	return buf.String()
}
