package predicate

import (
	"fmt"

	"github.com/vipcxj/sizetrait/internal/sealed"
	"github.com/vipcxj/sizetrait/internal/sizerange"
)

// Constraint is one size obligation with its parameters resolved to
// constants. Size is the bound of the single-bound kinds, Min and Max the
// bounds of BoundedSize, and Claim the claimed boolean of SizeLessThan,
// SizeGreaterThan and ZeroSize.
type Constraint struct {
	Kind  Kind
	Size  int64
	Min   int64
	Max   int64
	Claim bool
}

// LessThan is SizeLessThan[[size]byte, claim].
func LessThan(size int64, claim bool) Constraint {
	return Constraint{Kind: KindSizeLessThan, Size: size, Claim: claim}
}

// GreaterThan is SizeGreaterThan[[size]byte, claim].
func GreaterThan(size int64, claim bool) Constraint {
	return Constraint{Kind: KindSizeGreaterThan, Size: size, Claim: claim}
}

// Exactly is Size[[size]byte].
func Exactly(size int64) Constraint {
	return Constraint{Kind: KindSize, Size: size}
}

// Zero is ZeroSize[claim].
func Zero(claim bool) Constraint {
	return Constraint{Kind: KindZeroSize, Claim: claim}
}

// AtMost is MaxSize[[size]byte].
func AtMost(size int64) Constraint {
	return Constraint{Kind: KindMaxSize, Size: size}
}

// AtLeast is MinSize[[size]byte].
func AtLeast(size int64) Constraint {
	return Constraint{Kind: KindMinSize, Size: size}
}

// Between is BoundedSize[[min]byte, [max]byte]. min may exceed max.
func Between(min, max int64) Constraint {
	return Constraint{Kind: KindBoundedSize, Min: min, Max: max}
}

// Leaves returns the ground constraints c is the conjunction of. A ground
// constraint is its own only leaf.
func (c Constraint) Leaves() []Constraint {
	if !c.Kind.IsCompound() {
		return []Constraint{c}
	}
	switch c.Kind {
	case KindMaxSize:
		return []Constraint{GreaterThan(c.Size, false)}
	case KindMinSize:
		return []Constraint{LessThan(c.Size, false)}
	default:
		return append(AtLeast(c.Min).Leaves(), AtMost(c.Max).Leaves()...)
	}
}

func (c Constraint) holds(size int64) bool {
	switch c.Kind {
	case KindSizeLessThan:
		return sealed.LessThan(size, c.Size, c.Claim)
	case KindSizeGreaterThan:
		return sealed.GreaterThan(size, c.Size, c.Claim)
	case KindSize:
		return sealed.Equal(size, c.Size)
	case KindZeroSize:
		return sealed.Zero(size, c.Claim)
	default:
		panic(fmt.Sprintf("predicate: %s is not a ground constraint", c.Kind))
	}
}

// Satisfied reports whether a type of the given size meets c.
func (c Constraint) Satisfied(size int64) bool {
	_, failed := c.Failing(size)
	return !failed
}

// Failing returns the first leaf of c that a type of the given size does
// not meet.
func (c Constraint) Failing(size int64) (Constraint, bool) {
	for _, leaf := range c.Leaves() {
		if !leaf.holds(size) {
			return leaf, true
		}
	}
	return Constraint{}, false
}

func (c Constraint) accepts() sizerange.Range {
	switch c.Kind {
	case KindSizeLessThan:
		if c.Claim {
			return sizerange.Below(c.Size)
		}
		return sizerange.AtLeast(c.Size)
	case KindSizeGreaterThan:
		if c.Claim {
			return sizerange.Above(c.Size)
		}
		return sizerange.AtMost(c.Size)
	case KindSize:
		return sizerange.Single(c.Size)
	case KindZeroSize:
		if c.Claim {
			return sizerange.Single(0)
		}
		return sizerange.AtLeast(1)
	default:
		panic(fmt.Sprintf("predicate: %s is not a ground constraint", c.Kind))
	}
}

// Accepts returns the sizes that satisfy c. The range is invalid when no
// size does.
func (c Constraint) Accepts() sizerange.Range {
	r := sizerange.Natural()
	for _, leaf := range c.Leaves() {
		r = r.Intersect(leaf.accepts())
	}
	return r
}

// Unsatisfiable reports whether no type of any size meets c, as with an
// inverted BoundedSize or SizeLessThan[[0]byte, True].
func (c Constraint) Unsatisfiable() bool {
	return !c.Accepts().IsValid()
}

// Entails reports whether every size accepted by all of have is accepted by
// want. If have accepts nothing it entails anything.
func Entails(have []Constraint, want Constraint) bool {
	acc := sizerange.Natural()
	for _, h := range have {
		acc = acc.Intersect(h.Accepts())
	}
	return acc.Covers(want.Accepts())
}

// Requirement renders the relation c demands, e.g. "size <= 9".
func (c Constraint) Requirement() string {
	switch c.Kind {
	case KindSizeLessThan:
		if c.Claim {
			return fmt.Sprintf("size < %d", c.Size)
		}
		return fmt.Sprintf("size >= %d", c.Size)
	case KindSizeGreaterThan:
		if c.Claim {
			return fmt.Sprintf("size > %d", c.Size)
		}
		return fmt.Sprintf("size <= %d", c.Size)
	case KindSize:
		return fmt.Sprintf("size == %d", c.Size)
	case KindZeroSize:
		if c.Claim {
			return "size == 0"
		}
		return "size != 0"
	case KindMaxSize:
		return fmt.Sprintf("size <= %d", c.Size)
	case KindMinSize:
		return fmt.Sprintf("size >= %d", c.Size)
	case KindBoundedSize:
		return fmt.Sprintf("%d <= size <= %d", c.Min, c.Max)
	}
	return c.Kind.String()
}

func claimName(claim bool) string {
	if claim {
		return "True"
	}
	return "False"
}

// String renders c the way it is written in Go, without the package
// qualifier: SizeLessThan[[10]byte, True], BoundedSize[[1]byte, [16]byte].
func (c Constraint) String() string {
	switch c.Kind {
	case KindSizeLessThan, KindSizeGreaterThan:
		return fmt.Sprintf("%s[[%d]byte, %s]", c.Kind, c.Size, claimName(c.Claim))
	case KindZeroSize:
		return fmt.Sprintf("%s[%s]", c.Kind, claimName(c.Claim))
	case KindBoundedSize:
		return fmt.Sprintf("%s[[%d]byte, [%d]byte]", c.Kind, c.Min, c.Max)
	default:
		return fmt.Sprintf("%s[[%d]byte]", c.Kind, c.Size)
	}
}

// Expr renders c in the short form Parse reads: SizeLessThan[10, true].
func (c Constraint) Expr() string {
	switch c.Kind {
	case KindSizeLessThan, KindSizeGreaterThan:
		return fmt.Sprintf("%s[%d, %t]", c.Kind, c.Size, c.Claim)
	case KindZeroSize:
		return fmt.Sprintf("%s[%t]", c.Kind, c.Claim)
	case KindBoundedSize:
		return fmt.Sprintf("%s[%d, %d]", c.Kind, c.Min, c.Max)
	default:
		return fmt.Sprintf("%s[%d]", c.Kind, c.Size)
	}
}
