package instances

import "github.com/vipcxj/sizetrait"

type LessThan10Bytes[T sizetrait.SizeLessThan[[10]byte, sizetrait.True]] struct{ V T }

var _ LessThan10Bytes[[5]byte]
var _ LessThan10Bytes[[9]byte]
var _ LessThan10Bytes[[11]byte] // want `^\[11\]byte \(11 bytes\) does not satisfy sizetrait.SizeLessThan\[\[10\]byte, True\]: requires size < 10$`
var _ LessThan10Bytes[[10]byte] // want `\[10\]byte \(10 bytes\) does not satisfy`

type GreaterThan10Bytes[T sizetrait.SizeGreaterThan[[10]byte, sizetrait.True]] struct{ V T }

var _ GreaterThan10Bytes[[11]byte]
var _ GreaterThan10Bytes[[2]uint64]
var _ GreaterThan10Bytes[struct{}] // want `^struct\{\} \(0 bytes\) does not satisfy sizetrait.SizeGreaterThan\[\[10\]byte, True\]: requires size > 10$`

type FourBytes[T sizetrait.Size[[4]byte]] struct{ V T }

var _ FourBytes[uint32]
var _ FourBytes[[4]byte]
var _ FourBytes[uint8] // want `^uint8 \(1 byte\) does not satisfy sizetrait.Size\[\[4\]byte\]: requires size == 4$`

type Marker[T sizetrait.ZeroSize[sizetrait.True]] struct{ V T }

var _ Marker[struct{}]
var _ Marker[[0]uint64]
var _ Marker[byte] // want `^byte \(1 byte\) does not satisfy sizetrait.ZeroSize\[True\]: requires size == 0$`

type NonZero[T sizetrait.ZeroSize[sizetrait.False]] struct{ V T }

var _ NonZero[bool]
var _ NonZero[struct{}] // want `requires size != 0`

type AtMost9[T sizetrait.MaxSize[[9]byte]] struct{ V T }

var _ AtMost9[[9]byte]
var _ AtMost9[[16]byte] // want `^\[16\]byte \(16 bytes\) does not satisfy sizetrait.MaxSize\[\[9\]byte\]: requires size <= 9$`

type AtLeast10[T sizetrait.MinSize[[10]byte]] struct{ V T }

var _ AtLeast10[[16]byte]
var _ AtLeast10[[10]byte]
var _ AtLeast10[uint64] // want `^uint64 \(8 bytes\) does not satisfy sizetrait.MinSize\[\[10\]byte\]: requires size >= 10$`

type Between1And16[T sizetrait.BoundedSize[[1]byte, [16]byte]] struct{ V T }

var _ Between1And16[[16]byte]
var _ Between1And16[uint8]
var _ Between1And16[struct{}] // want `^struct\{\} \(0 bytes\) does not satisfy sizetrait.BoundedSize\[\[1\]byte, \[16\]byte\]: requires 1 <= size <= 16$`
var _ Between1And16[[17]byte] // want `requires 1 <= size <= 16`

// Header is twelve bytes on every platform.
type Header struct {
	A, B uint32
	C    [4]byte
}

var _ AtMost9[Header] // want `^Header \(12 bytes\) does not satisfy sizetrait.MaxSize\[\[9\]byte\]`

func Pack[T sizetrait.MaxSize[[8]byte]](v T) {}

func use() {
	Pack(int64(1))
	Pack([8]byte{})
	Pack([9]byte{}) // want `^\[9\]byte \(9 bytes\) does not satisfy sizetrait.MaxSize\[\[8\]byte\]`
	Pack[uint16](2)
	Pack[complex128](0) // want `^complex128 \(16 bytes\)`
}

// Small is a constraint declared in terms of a sizetrait constraint.
type Small interface {
	sizetrait.MaxSize[[4]byte]
}

type Box[T Small] struct{ V T }

var _ Box[uint32]
var _ Box[int64] // want `^int64 \(8 bytes\) does not satisfy sizetrait.MaxSize\[\[4\]byte\]: requires size <= 4$`

type Under[S any] interface {
	sizetrait.MaxSize[S]
	comparable
}

type Keyed[K Under[[2]byte]] struct{}

var _ Keyed[uint16]
var _ Keyed[uint32] // want `^uint32 \(4 bytes\) does not satisfy sizetrait.MaxSize\[\[2\]byte\]`

type Both[T interface {
	sizetrait.MinSize[[2]byte]
	sizetrait.MaxSize[[4]byte]
}] struct{}

var _ Both[uint16]
var _ Both[uint64] // want `requires size <= 4`

type Pair[S any, T sizetrait.MaxSize[S]] struct{}

var _ Pair[[4]byte, uint32]
var _ Pair[[2]byte, uint32] // want `^uint32 \(4 bytes\) does not satisfy sizetrait.MaxSize\[\[2\]byte\]: requires size <= 2$`

type Unconstrained[T any] struct{}

var _ Unconstrained[[1 << 20]byte]
