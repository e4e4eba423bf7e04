package sizetrait

import "github.com/vipcxj/sizetrait/internal/sealed"

// Claim limits the claimed-boolean parameter of SizeLessThan,
// SizeGreaterThan and ZeroSize to True or False.
type Claim interface {
	True | False
}

// True claims that a size comparison holds.
type True struct{}

// False claims that a size comparison does not hold.
type False struct{}

// SizeLessThan describes a type whose size compared with S using < yields C.
//
// S is an array type [N]byte whose length N is the bound in bytes.
//
//	type LessThan10Bytes[T sizetrait.SizeLessThan[[10]byte, sizetrait.True]] struct{ V T }
//
//	var _ LessThan10Bytes[[5]byte]  // ok
//	var _ LessThan10Bytes[[11]byte] // sizecheck: [11]byte (11 bytes) does not satisfy ...
type SizeLessThan[S any, C Claim] interface {
	sealed.SizeLessThan[S, C]
}

// SizeGreaterThan describes a type whose size compared with S using > yields C.
//
//	type GreaterThan10Bytes[T sizetrait.SizeGreaterThan[[10]byte, sizetrait.True]] struct{ V T }
//
//	var _ GreaterThan10Bytes[[11]byte] // ok
//	var _ GreaterThan10Bytes[struct{}] // sizecheck: struct{} (0 bytes) does not satisfy ...
type SizeGreaterThan[S any, C Claim] interface {
	sealed.SizeGreaterThan[S, C]
}

// Size describes a type whose size is exactly N bytes, where S is [N]byte.
//
//	type FourBytes[T sizetrait.Size[[4]byte]] struct{ V T }
//
//	var _ FourBytes[uint32]  // ok
//	var _ FourBytes[[4]byte] // ok
type Size[S any] interface {
	sealed.Size[S]
}

// ZeroSize describes a type whose size compared with zero yields C.
//
//	type Marker[T sizetrait.ZeroSize[sizetrait.True]] struct{ V T }
//
//	var _ Marker[struct{}]   // ok
//	var _ Marker[[0]uint64]  // ok
//	var _ Marker[byte]       // sizecheck: byte (1 byte) does not satisfy ...
type ZeroSize[C Claim] interface {
	sealed.ZeroSize[C]
}

// MaxSize describes a type whose size is at most N bytes, where S is [N]byte.
// It holds exactly when SizeGreaterThan[S, False] holds.
type MaxSize[S any] interface {
	SizeGreaterThan[S, False]
}

// MinSize describes a type whose size is at least N bytes, where S is [N]byte.
// It holds exactly when SizeLessThan[S, False] holds.
type MinSize[S any] interface {
	SizeLessThan[S, False]
}

// BoundedSize describes a type whose size lies between the lengths of Min
// and Max, both inclusive. A range whose minimum exceeds its maximum is
// accepted as written and can never be satisfied.
type BoundedSize[Min, Max any] interface {
	MinSize[Min]
	MaxSize[Max]
}
