// SizedLRUCache is a size-bounded (rather than entry-count-bounded) LRU cache.
// Not threadsafe.
package lrucache

import (
	"github.com/ordered/linkedmap/container/linked_hashmap"
)

type sizedEntry[V any] struct {
	val  V
	size int
}

type SizedLRUCache[V any] struct {
	lhm          *linked_hashmap.LinkedHashmap[string, sizedEntry[V]]
	size         int
	maxSizeBytes int
	sizeFunc     func(val V) int
}

// Takes a function that returns the number of bytes in an arbitrary cache value.
func NewSized[V any](maxSizeBytes int, sizeFunc func(val V) int) *SizedLRUCache[V] {
	if maxSizeBytes < 1 {
		panic("nonsensical LRU cache size specified")
	}

	return &SizedLRUCache[V]{
		lhm:          linked_hashmap.NewLinkedHashmap[string, sizedEntry[V]](10), // Arbitrary size estimate.
		maxSizeBytes: maxSizeBytes,
		sizeFunc:     sizeFunc,
	}
}

// If a size hint is passed, use it as the entry's size rather than calling sizeFunc.
// The key's length always counts towards the entry's size.
func (cache *SizedLRUCache[V]) Set(key string, val V, sizeHint int) {
	if old, ok := cache.lhm.Remove(key); ok {
		cache.size -= old.size
	}

	entrySize := sizeHint
	if entrySize == 0 {
		entrySize = cache.sizeFunc(val)
	}
	entrySize += len(key)

	// Evict LRU entries until the new item fits.
	for cache.size+entrySize > cache.maxSizeBytes && cache.Len() > 0 {
		_, evicted, _ := cache.lhm.PopBack()
		cache.size -= evicted.size
	}

	// Add the item to the front of the list.
	cache.lhm.PushFront(key, sizedEntry[V]{val: val, size: entrySize})
	cache.size += entrySize
}

func (cache *SizedLRUCache[V]) Get(key string) (val V, ok bool) {
	entry, ok := cache.lhm.Get(key)
	if !ok {
		return val, false
	}

	// item exists, so move it to front of list and return it
	cache.lhm.MoveToFront(key)
	return entry.val, true
}

func (cache *SizedLRUCache[V]) Delete(key string) (val V, existed bool) {
	entry, existed := cache.lhm.Remove(key)
	if !existed {
		return val, false
	}
	cache.size -= entry.size
	return entry.val, true
}

func (cache *SizedLRUCache[V]) Len() int {
	return cache.lhm.Len()
}

func (cache *SizedLRUCache[V]) Size() int {
	return cache.size
}

func (cache *SizedLRUCache[V]) MaxSize() int {
	return cache.maxSizeBytes
}
