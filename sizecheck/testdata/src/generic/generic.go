package generic

import "github.com/vipcxj/sizetrait"

func Sixteen[T sizetrait.MaxSize[[16]byte]]() {}

func NonZero[T sizetrait.ZeroSize[sizetrait.False]]() {}

func Tighter[T sizetrait.MaxSize[[8]byte]]() { Sixteen[T]() }

func Looser[T sizetrait.MaxSize[[32]byte]]() {
	Sixteen[T]() // want `^T does not satisfy sizetrait.MaxSize\[\[16\]byte\]: constraints of T do not imply size <= 16$`
}

func Any[T any]() {
	Sixteen[T]() // want `constraints of T do not imply size <= 16`
}

func Strict[T sizetrait.SizeLessThan[[9]byte, sizetrait.True]]() { Sixteen[T]() }

func Zero[T sizetrait.ZeroSize[sizetrait.True]]() { Sixteen[T]() }

func Range[T sizetrait.BoundedSize[[2]byte, [4]byte]]() {
	Sixteen[T]()
	NonZero[T]()
}

func FromZero[T sizetrait.BoundedSize[[0]byte, [4]byte]]() {
	NonZero[T]() // want `^T does not satisfy sizetrait.ZeroSize\[False\]: constraints of T do not imply size != 0$`
}

func Doubled[T sizetrait.MaxSize[[8]byte]]() {
	Sixteen[[2]T]() // want `^cannot verify sizetrait.MaxSize\[\[16\]byte\] for \[2\]T: size depends on a type parameter$`
}

type wrap[T any] struct{ v T }

func Wrapped[T sizetrait.MaxSize[[8]byte]]() {
	Sixteen[wrap[T]]() // want `cannot verify sizetrait.MaxSize\[\[16\]byte\] for wrap\[T\]`
}

func Pointer[T any]() {
	Sixteen[*T]()
	Sixteen[map[string]T]()
}

type List[T sizetrait.MaxSize[[8]byte]] struct {
	next *List[T]
	v    T
}

func (l *List[T]) Next() *List[T] { return l.next }

type Pair[S any, T sizetrait.MaxSize[S]] struct{ v T }

func (p Pair[S, T]) Get() T { return p.v }

func UsePair[S any, T sizetrait.MaxSize[S]]() {
	_ = Pair[S, T]{}
}

func Unbound[S any, T any]() {
	_ = Pair[S, T]{} // want `^cannot verify sizetrait.MaxSize\[S\] for T: bound S: not known until instantiation$`
}
