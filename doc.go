// Package sizetrait declares size constraints for generic type parameters.
//
// A constraint names an obligation on the byte size of a type argument:
//
//	SizeLessThan[[N]byte, C]     (size < N) == C
//	SizeGreaterThan[[N]byte, C]  (size > N) == C
//	Size[[N]byte]                size == N
//	ZeroSize[C]                  (size == 0) == C
//	MaxSize[[N]byte]             size <= N
//	MinSize[[N]byte]             size >= N
//	BoundedSize[[A]byte, [B]byte] A <= size <= B
//
// Bounds are written as byte arrays because an array length is the only
// integer constant a Go type argument can carry; C is True or False.
//
// The interfaces have empty method sets, so the Go compiler accepts any type
// argument. The obligations are enforced statically by the sizecheck
// analyzer (go vet -vettool=$(which sizecheck), or sizetrait check) and, if
// wanted, by the array-length assertions sizetrait gen writes next to the
// code; both fail before the program runs. Nothing is checked or stored at
// run time.
//
// The ground predicates behind every constraint are internal to this module,
// so a size claim can only ever be decided by the type's real size: a false
// claim written as an interface assertion such as
//
//	var _ sizetrait.MaxSize[[5]byte] = TenBytes{}
//
// is reported the same way as a false instantiation.
package sizetrait
