// Package order provides the three-way comparator used by every engine in
// this module.
//
// None of the tree engines ever compare keys with == or < directly; they
// route every ordering decision through a Comparator. This means a reversed
// or domain-specific ordering can be swapped in at construction time without
// touching engine code.
package order

import "cmp"

// Comparator imposes a strict total order over K.
//
// cmp(a, b) must return a negative number if a < b, zero if a == b, and a
// positive number if a > b. Implementations must be total, antisymmetric,
// and transitive, and must satisfy cmp(a, a) == 0.
type Comparator[K any] func(a, b K) int

// Natural returns the Comparator induced by K's built-in ordering.
func Natural[K cmp.Ordered]() Comparator[K] {
	return cmp.Compare[K]
}

// Reverse returns a Comparator that inverts the ordering imposed by c.
func Reverse[K any](c Comparator[K]) Comparator[K] {
	return func(a, b K) int {
		return -c(a, b)
	}
}

// Equal reports whether a and b are equal under c.
func Equal[K any](c Comparator[K], a, b K) bool {
	return c(a, b) == 0
}

// Less reports whether a is strictly less than b under c.
func Less[K any](c Comparator[K], a, b K) bool {
	return c(a, b) < 0
}
