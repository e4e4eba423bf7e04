//go:generate go run github.com/dmarkham/enumer -type=Kind -trimprefix=Kind
package predicate

// Kind names one of the public sizetrait constraints.
type Kind int

const (
	KindSizeLessThan Kind = iota
	KindSizeGreaterThan
	KindSize
	KindZeroSize
	KindMaxSize
	KindMinSize
	KindBoundedSize
)

// Arity is the number of type arguments the constraint takes.
func (k Kind) Arity() int {
	switch k {
	case KindSizeLessThan, KindSizeGreaterThan, KindBoundedSize:
		return 2
	default:
		return 1
	}
}

// HasClaim reports whether the constraint carries a claimed boolean.
func (k Kind) HasClaim() bool {
	switch k {
	case KindSizeLessThan, KindSizeGreaterThan, KindZeroSize:
		return true
	default:
		return false
	}
}

// IsCompound reports whether the constraint is derived from others rather
// than from a ground predicate.
func (k Kind) IsCompound() bool {
	switch k {
	case KindMaxSize, KindMinSize, KindBoundedSize:
		return true
	default:
		return false
	}
}
