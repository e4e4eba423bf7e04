// Package sealed holds the ground predicates every sizetrait constraint is
// derived from. It lives under internal/ so that no code outside this module
// can name, embed or re-declare them.
package sealed

import "golang.org/x/exp/constraints"

// SizeLessThan marks a type whose size compared against S with < yields C.
type SizeLessThan[S, C any] interface{}

// SizeGreaterThan marks a type whose size compared against S with > yields C.
type SizeGreaterThan[S, C any] interface{}

// Size marks a type whose size is exactly S.
type Size[S any] interface{}

// ZeroSize marks a type whose size compared against zero yields Z.
type ZeroSize[Z any] interface{}

// LessThan reports whether the claim check matches size < bound.
func LessThan[N constraints.Integer](size, bound N, check bool) bool {
	return (size < bound) == check
}

// GreaterThan reports whether the claim check matches size > bound.
func GreaterThan[N constraints.Integer](size, bound N, check bool) bool {
	return (size > bound) == check
}

// Equal reports whether size == bound.
func Equal[N constraints.Integer](size, bound N) bool {
	return size == bound
}

// Zero reports whether the claim zero matches size == 0.
func Zero[N constraints.Integer](size N, zero bool) bool {
	return (size == 0) == zero
}
