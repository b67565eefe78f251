package domain

import (
	"maps"
	"slices"
)

// Set is an unordered collection of distinct values.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding the given values.
func NewSet[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v and reports whether it was absent.
func (s Set[T]) Add(v T) bool {
	if _, ok := s[v]; ok {
		return false
	}
	s[v] = struct{}{}
	return true
}

// Has reports whether v is in the set. A nil set holds nothing.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of elements.
func (s Set[T]) Len() int {
	return len(s)
}

// Equal reports whether both sets hold the same elements.
func (s Set[T]) Equal(other Set[T]) bool {
	return maps.Equal(s, other)
}

// Sorted returns the elements ordered by cmp. The result is never nil.
func (s Set[T]) Sorted(cmp func(a, b T) int) []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.SortFunc(out, cmp)
	return out
}
