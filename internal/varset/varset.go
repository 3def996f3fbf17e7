// Package varset is a thin wrapper around a generic integer set, used to
// track the set of variables a clause touches without hand-rolling a
// map[int]struct{} at every call site.
package varset

import mapset "github.com/deckarep/golang-set/v2"

// Set is a set of 1-indexed variables.
type Set mapset.Set[int]

// New returns an empty Set.
func New() Set {
	return Set(mapset.NewThreadUnsafeSet[int]())
}

// Add inserts v into the set.
func Add(s Set, v int) {
	mapset.Set[int](s).Add(v)
}

// Contains reports whether v is in the set.
func Contains(s Set, v int) bool {
	return mapset.Set[int](s).Contains(v)
}

// Len returns the number of variables in the set.
func Len(s Set) int {
	return mapset.Set[int](s).Cardinality()
}

// Slice returns the set's members in unspecified order.
func Slice(s Set) []int {
	return mapset.Set[int](s).ToSlice()
}
