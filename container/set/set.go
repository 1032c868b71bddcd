package set

import "github.com/ordered/linkedmap/container/linked_hashmap"

// A collection of unique elements which remembers the order in which elements were first
// added. Lookups, insertions and deletions are O(1); iteration visits elements oldest first.
// It is not guaranteed to be thread-safe.
type Set[T comparable] interface {
	// Returns a new Set that contains exactly the same elements, in the same order.
	Copy() Set[T]

	// Returns the cardinality of this set.
	Len() int

	// Returns true if and only if this set contains v (according to Go equality rules).
	Contains(v T) bool
	// Inserts v at the end of this set. Adding an element already present keeps its position.
	Add(v T)
	// Removes v from this set, if it is present.  Returns true if and only if v was present.
	Remove(v T) bool

	// Executes f(v) for every element v in this set, in order.  f may remove the element it
	// was handed.
	Do(f func(T))
	// Executes f(v) once for every element v in the set, in order, aborting if f ever
	// returns false.
	DoWhile(f func(T) bool)
	// Returns the elements in order.
	Items() []T

	// Adds every element in s into this set.
	Union(s Set[T])
	// Removes every element not in s from this set.
	Intersect(s Set[T])
	// Removes every element in s from this set.
	Subtract(s Set[T])
	// Removes all elements from the set.
	Init()
	// Returns true if and only if all elements in this set are elements in s.
	IsSubset(s Set[T]) bool
	// Returns true if and only if all elements in s are elements in this set.
	IsSuperset(s Set[T]) bool
	// Returns true if and only if this set and s contain exactly the same elements.
	IsEqual(s Set[T]) bool
	// Removes all elements v from this set that satisfy f(v) == true.
	RemoveIf(f func(T) bool)
}

// Returns a new Set pre-populated with the given items
func NewSet[T comparable](items ...T) Set[T] {
	res := &setImpl[T]{
		data: linked_hashmap.NewLinkedHashmap[T, struct{}](len(items)),
	}
	for _, item := range items {
		res.Add(item)
	}
	return res
}

type setImpl[T comparable] struct {
	data *linked_hashmap.LinkedHashmap[T, struct{}]
}

func (s *setImpl[T]) Len() int {
	return s.data.Len()
}

func (s *setImpl[T]) Copy() Set[T] {
	res := NewSet[T]()
	res.Union(s)
	return res
}

func (s *setImpl[T]) Init() {
	s.data.Clear()
}

func (s *setImpl[T]) Contains(v T) bool {
	return s.data.Contains(v)
}

func (s *setImpl[T]) Add(v T) {
	s.data.Put(v, struct{}{})
}

func (s *setImpl[T]) Remove(v T) bool {
	_, ok := s.data.Remove(v)
	return ok
}

func (s *setImpl[T]) Do(f func(T)) {
	cur := s.data.Iter()
	for cur.Next() {
		f(cur.Key())
	}
}

func (s *setImpl[T]) DoWhile(f func(T) bool) {
	cur := s.data.Iter()
	for cur.Next() {
		if !f(cur.Key()) {
			break
		}
	}
}

func (s *setImpl[T]) Items() []T {
	return s.data.Keys()
}

func (s *setImpl[T]) Union(s2 Set[T]) {
	s2.Do(func(item T) { s.Add(item) })
}

func (s *setImpl[T]) Intersect(s2 Set[T]) {
	s.RemoveIf(func(item T) bool { return !s2.Contains(item) })
}

func (s *setImpl[T]) Subtract(s2 Set[T]) {
	s2.Do(func(item T) { s.Remove(item) })
}

func (s *setImpl[T]) IsSubset(s2 Set[T]) (isSubset bool) {
	isSubset = true
	s.DoWhile(func(item T) bool {
		if !s2.Contains(item) {
			isSubset = false
		}
		return isSubset
	})
	return
}

func (s *setImpl[T]) IsSuperset(s2 Set[T]) bool {
	return s2.IsSubset(s)
}

func (s *setImpl[T]) IsEqual(s2 Set[T]) bool {
	if s.Len() != s2.Len() {
		return false
	}

	return s.IsSubset(s2)
}

func (s *setImpl[T]) RemoveIf(f func(T) bool) {
	// Removing the element just yielded keeps the cursor valid.
	cur := s.data.Iter()
	for cur.Next() {
		if f(cur.Key()) {
			s.data.Remove(cur.Key())
		}
	}
}
