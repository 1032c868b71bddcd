package concurrent

import (
	"sync"

	"github.com/ordered/linkedmap/container/lrucache"
)

// A thread-safe version of LRUCache
type LRUCache[K comparable, V any] interface {
	// Retrieves multiple items from the cache
	GetMultiple(keys []K) []CacheResult[V]
	// Retrieves a single item from the cache and whether it exists
	Get(key K) (v V, found bool)
	// Sets a single item in the cache
	Set(key K, v V)
	// Sets multiple items in the cache
	SetMultiple(keyValues map[K]V)
	// Deletes one or more keys
	Delete(keys ...K)
	// Clears the cache
	Clear()
	// Number of cached items
	Len() int
	// Retrieves the maximum size of the cache
	MaxSize() int
}

// Represents value in cache and whether it exists or not
type CacheResult[V any] struct {
	// Result value
	V V
	// Indicates whether it exists in the cache or not
	Found bool
}

type concurrentLruCacheImp[K comparable, V any] struct {
	cache *lrucache.LRUCache[K, V]
	lock  sync.RWMutex
}

func NewLRUCache[K comparable, V any](size int) LRUCache[K, V] {
	return &concurrentLruCacheImp[K, V]{
		cache: lrucache.New[K, V](size),
	}
}

func (p *concurrentLruCacheImp[K, V]) Get(key K) (v V, found bool) {
	res := p.GetMultiple([]K{key})

	return res[0].V, res[0].Found
}

func (p *concurrentLruCacheImp[K, V]) GetMultiple(keys []K) []CacheResult[V] {
	// the LRU cache get alters the cache. Therefore, we should
	// acquire the write lock and not the read lock
	p.lock.Lock()
	defer p.lock.Unlock()

	res := make([]CacheResult[V], len(keys))

	for i, key := range keys {
		res[i].V, res[i].Found = p.cache.Get(key)
	}

	return res
}

func (p *concurrentLruCacheImp[K, V]) Set(key K, value V) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.cache.Set(key, value)
}

func (p *concurrentLruCacheImp[K, V]) SetMultiple(keyValues map[K]V) {
	p.lock.Lock()
	defer p.lock.Unlock()

	for key, value := range keyValues {
		p.cache.Set(key, value)
	}
}

func (p *concurrentLruCacheImp[K, V]) Delete(keys ...K) {
	p.lock.Lock()
	defer p.lock.Unlock()

	for _, key := range keys {
		p.cache.Delete(key)
	}
}

func (p *concurrentLruCacheImp[K, V]) Clear() {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.cache.Clear()
}

func (p *concurrentLruCacheImp[K, V]) Len() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.cache.Len()
}

func (p *concurrentLruCacheImp[K, V]) MaxSize() int {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.cache.MaxSize()
}
