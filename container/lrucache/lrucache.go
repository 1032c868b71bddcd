// Package lrucache is a standard LRU cache.
package lrucache

import "github.com/ordered/linkedmap/container/linked_hashmap"

// LRUCache keeps the most recently used entry at the front of its linked
// hashmap and evicts from the back.
// Not threadsafe.
type LRUCache[K comparable, V any] struct {
	lhm     *linked_hashmap.LinkedHashmap[K, V]
	maxSize int
}

func New[K comparable, V any](maxSize int) *LRUCache[K, V] {
	if maxSize < 1 {
		panic("nonsensical LRU cache size specified")
	}

	return &LRUCache[K, V]{
		lhm:     linked_hashmap.NewLinkedHashmap[K, V](maxSize),
		maxSize: maxSize,
	}
}

func (cache *LRUCache[K, V]) Set(key K, val V) {
	if cache.lhm.Contains(key) {
		// item already exists, so move it to the front of the list and update the data
		cache.lhm.PushFront(key, val)
		cache.lhm.MoveToFront(key)
		return
	}

	// item doesn't exist, so add it to front of list
	cache.lhm.PushFront(key, val)

	// evict LRU entry if the cache is full
	if cache.lhm.Len() > cache.maxSize {
		cache.lhm.PopBack()
	}
}

func (cache *LRUCache[K, V]) Get(key K) (val V, ok bool) {
	val, ok = cache.lhm.Get(key)
	if !ok {
		return val, false
	}

	// item exists, so move it to front of list and return it
	cache.lhm.MoveToFront(key)
	return val, ok
}

// Peek returns the cached value without marking it as recently used.
func (cache *LRUCache[K, V]) Peek(key K) (val V, ok bool) {
	return cache.lhm.Get(key)
}

func (cache *LRUCache[K, V]) Len() int {
	return cache.lhm.Len()
}

func (cache *LRUCache[K, V]) Delete(key K) (val V, existed bool) {
	return cache.lhm.Remove(key)
}

// Keys returns the cached keys, most recently used first.
func (cache *LRUCache[K, V]) Keys() []K {
	return cache.lhm.Keys()
}

func (cache *LRUCache[K, V]) Clear() {
	cache.lhm.Clear()
}

func (cache *LRUCache[K, V]) MaxSize() int {
	return cache.maxSize
}
