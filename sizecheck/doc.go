// Package sizecheck defines an Analyzer that enforces sizetrait constraints.
//
// # Analyzer sizecheck
//
// sizecheck: check byte-size constraints on generic type arguments
//
// Go accepts any type argument for a sizetrait constraint, because the
// constraint interfaces have empty method sets. sizecheck supplies the
// missing half: it computes the size of every concrete type argument with
// the build's types.Sizes and reports the ones whose size breaks the claim.
//
//	type Small[T sizetrait.SizeLessThan[[10]byte, sizetrait.True]] struct{ V T }
//
//	var _ Small[[11]byte] // [11]byte (11 bytes) does not satisfy sizetrait.SizeLessThan[[10]byte, True]: requires size < 10
//
// The checks are:
//   - instantiations of generic functions and types whose type parameters
//     carry sizetrait constraints, directly, through embedded interfaces or
//     through user-declared constraint interfaces;
//   - type parameters passed on to such instantiations, whose own declared
//     constraints must imply the callee's;
//   - conversions of concrete values to sizetrait interface types, in
//     declarations, assignments, explicit conversions, call arguments and
//     return statements;
//   - size bounds not written as [N]byte;
//   - with -strict-bounds, constraints no size can satisfy;
//   - with -config, size rules for package-level named types.
//
// A type argument whose size depends on a type parameter, such as [2]T, is
// reported as unverifiable.
package sizecheck
