package bounds

import "github.com/vipcxj/sizetrait"

type Word[T sizetrait.MaxSize[int]] struct{} // want `^sizetrait.MaxSize\[int\]: malformed bound int: want \[N\]byte$`

type Wide[T sizetrait.MinSize[[4]uint16]] struct{} // want `^sizetrait.MinSize\[\[4\]uint16\]: malformed bound \[4\]uint16: want \[N\]byte$`

type Flat[T sizetrait.BoundedSize[[1]byte, string]] struct{} // want `malformed bound string`

var _ Word[int64]

// Bytes has byte elements under another name, which is still a byte array.
type Bytes[T sizetrait.MaxSize[[4]uint8]] struct{}

var _ Bytes[uint32]
var _ Bytes[uint64] // want `requires size <= 4`

type Inverted[T sizetrait.BoundedSize[[100]byte, [15]byte]] struct{}

var _ Inverted[[20]byte] // want `^\[20\]byte \(20 bytes\) does not satisfy sizetrait.BoundedSize\[\[100\]byte, \[15\]byte\]: requires 100 <= size <= 15$`
