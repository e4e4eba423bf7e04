package strict

import "github.com/vipcxj/sizetrait"

type Inverted[T sizetrait.BoundedSize[[100]byte, [15]byte]] struct{} // want `^sizetrait.BoundedSize\[\[100\]byte, \[15\]byte\] can never be satisfied: requires 100 <= size <= 15$`

type Never[T sizetrait.SizeLessThan[[0]byte, sizetrait.True]] struct{} // want `^sizetrait.SizeLessThan\[\[0\]byte, True\] can never be satisfied: requires size < 0$`

type Point[T sizetrait.BoundedSize[[15]byte, [15]byte]] struct{}

type Empty[T sizetrait.MaxSize[[0]byte]] struct{}

type Pair[S any, T sizetrait.MaxSize[S]] struct{}
