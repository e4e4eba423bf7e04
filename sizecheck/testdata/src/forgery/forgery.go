package forgery

import "github.com/vipcxj/sizetrait"

type TenBytes struct{ a [10]byte }

var _ sizetrait.MaxSize[[16]byte] = TenBytes{}
var _ sizetrait.MaxSize[[5]byte] = TenBytes{} // want `^TenBytes \(10 bytes\) does not satisfy sizetrait.MaxSize\[\[5\]byte\]: requires size <= 5$`

type ElevenBytes [11]byte

var _ sizetrait.SizeLessThan[[12]byte, sizetrait.True] = ElevenBytes{}
var _ sizetrait.SizeLessThan[[10]byte, sizetrait.True] = ElevenBytes{} // want `^ElevenBytes \(11 bytes\) does not satisfy sizetrait.SizeLessThan\[\[10\]byte, True\]: requires size < 10$`
var _ sizetrait.Size[[10]byte] = TenBytes{}
var _ sizetrait.Size[[11]byte] = TenBytes{} // want `^TenBytes \(10 bytes\) does not satisfy sizetrait.Size\[\[11\]byte\]: requires size == 11$`
var _ sizetrait.BoundedSize[[1]byte, [2]byte] = uint16(0)
var _ sizetrait.BoundedSize[[15]byte, [100]byte] = uint16(0) // want `^uint16 \(2 bytes\) does not satisfy sizetrait.BoundedSize\[\[15\]byte, \[100\]byte\]: requires 15 <= size <= 100$`

var (
	_ sizetrait.MinSize[[10]byte] = TenBytes{}
	_ sizetrait.MinSize[[15]byte] = TenBytes{}                         // want `requires size >= 15`
	_ sizetrait.SizeGreaterThan[[10]byte, sizetrait.True] = TenBytes{} // want `requires size > 10`
)

func take(v sizetrait.ZeroSize[sizetrait.True]) {}

func takeAll(vs ...sizetrait.MaxSize[[4]byte]) {}

func use() {
	take(struct{}{})
	take(TenBytes{}) // want `^TenBytes \(10 bytes\) does not satisfy sizetrait.ZeroSize\[True\]: requires size == 0$`

	var small sizetrait.MaxSize[[1]byte]
	small = uint8(1)
	small = uint16(1) // want `^uint16 \(2 bytes\) does not satisfy sizetrait.MaxSize\[\[1\]byte\]`
	small = nil

	var anything any = TenBytes{}
	small = anything // want `^cannot verify sizetrait.MaxSize\[\[1\]byte\] for any: constraints of any do not imply size <= 1$`
	_ = small

	_ = sizetrait.MinSize[[4]byte](TenBytes{})
	_ = sizetrait.MinSize[[11]byte](TenBytes{}) // want `^TenBytes \(10 bytes\) does not satisfy sizetrait.MinSize\[\[11\]byte\]`

	takeAll(uint8(1), uint32(2))
	takeAll(uint8(1), uint64(2)) // want `^uint64 \(8 bytes\)`
	takeAll([]sizetrait.MaxSize[[4]byte]{}...)

	f := func() sizetrait.MaxSize[[2]byte] {
		return uint32(0) // want `^uint32 \(4 bytes\) does not satisfy sizetrait.MaxSize\[\[2\]byte\]`
	}
	_ = f
}

func ret() sizetrait.MaxSize[[2]byte] {
	return TenBytes{} // want `^TenBytes \(10 bytes\) does not satisfy sizetrait.MaxSize\[\[2\]byte\]: requires size <= 2$`
}

func retOK() sizetrait.MaxSize[[2]byte] {
	return uint16(0)
}

// Tiny is a user interface built on a sizetrait constraint.
type Tiny interface {
	sizetrait.MaxSize[[1]byte]
}

func keep(Tiny) {}

func useTiny() {
	keep(true)
	keep(1.5) // want `^float64 \(8 bytes\) does not satisfy sizetrait.MaxSize\[\[1\]byte\]`
}

func generic[T sizetrait.MaxSize[[2]byte]](v T) sizetrait.MaxSize[[4]byte] {
	return v
}

func genericBad[T any](v T) sizetrait.MaxSize[[4]byte] {
	return v // want `^T does not satisfy sizetrait.MaxSize\[\[4\]byte\]: constraints of T do not imply size <= 4$`
}

// Values passed on from one sizetrait interface to another keep only what
// the source constraints imply.
func passOn() {
	var big sizetrait.MaxSize[[100]byte] = TenBytes{}
	var small sizetrait.MaxSize[[5]byte] = big // want `^cannot verify sizetrait.MaxSize\[\[5\]byte\] for sizetrait.MaxSize\[\[100\]byte\]: constraints of sizetrait.MaxSize\[\[100\]byte\] do not imply size <= 5$`
	var wider sizetrait.MaxSize[[200]byte] = big
	var same sizetrait.MaxSize[[5]byte] = small

	var bounded sizetrait.BoundedSize[[2]byte, [4]byte] = uint32(0)
	var nonZero sizetrait.ZeroSize[sizetrait.False] = bounded
	var tiny Tiny = bounded // want `constraints of sizetrait.BoundedSize\[\[2\]byte, \[4\]byte\] do not imply size <= 1`
	_, _, _, _ = wider, same, nonZero, tiny
}

type Holder struct {
	V sizetrait.MaxSize[[5]byte]
	N int
}

func literals() {
	_ = Holder{V: uint8(1), N: 1 << 20}
	_ = Holder{V: TenBytes{}} // want `^TenBytes \(10 bytes\) does not satisfy sizetrait.MaxSize\[\[5\]byte\]: requires size <= 5$`
	_ = Holder{TenBytes{}, 1} // want `^TenBytes \(10 bytes\)`
	_ = &Holder{V: [6]byte{}} // want `^\[6\]byte \(6 bytes\)`

	_ = []sizetrait.MaxSize[[5]byte]{uint8(1), TenBytes{}}     // want `^TenBytes \(10 bytes\)`
	_ = [2]sizetrait.MaxSize[[5]byte]{1: TenBytes{}}           // want `^TenBytes \(10 bytes\)`
	_ = map[string]sizetrait.MaxSize[[5]byte]{"a": TenBytes{}} // want `^TenBytes \(10 bytes\)`
	_ = map[sizetrait.MaxSize[[1]byte]]int{uint16(1): 1}       // want `^uint16 \(2 bytes\)`
	_ = []Holder{{V: TenBytes{}}}                              // want `^TenBytes \(10 bytes\)`
}

func send(ch chan sizetrait.MaxSize[[5]byte], out chan<- sizetrait.MaxSize[[5]byte]) {
	ch <- uint32(1)
	ch <- TenBytes{}  // want `^TenBytes \(10 bytes\) does not satisfy sizetrait.MaxSize\[\[5\]byte\]`
	out <- TenBytes{} // want `^TenBytes \(10 bytes\)`
}

func bytePair() (uint8, uint8) { return 1, 2 }

func tenPair() (TenBytes, TenBytes) { return TenBytes{}, TenBytes{} }

func tuples() {
	var a, b sizetrait.MaxSize[[1]byte] = bytePair()
	var c, d sizetrait.MaxSize[[1]byte] = tenPair() // want `^TenBytes \(10 bytes\) does not satisfy sizetrait.MaxSize\[\[1\]byte\]` `^TenBytes \(10 bytes\) does not satisfy sizetrait.MaxSize\[\[1\]byte\]`
	a, b = bytePair()
	c, d = tenPair() // want `^TenBytes \(10 bytes\)` `^TenBytes \(10 bytes\)`
	_, _, _, _ = a, b, c, d

	var x sizetrait.MaxSize[[1]byte]
	var n int
	x, n = tenPair2() // want `^TenBytes \(10 bytes\)`
	_, _ = x, n

	takeAll(bytePair())
	takeAll(tenPair()) // want `^TenBytes \(10 bytes\) does not satisfy sizetrait.MaxSize\[\[4\]byte\]` `^TenBytes \(10 bytes\)`
}

func tenPair2() (TenBytes, int) { return TenBytes{}, 0 }

func pairOut() (sizetrait.MaxSize[[1]byte], sizetrait.MaxSize[[1]byte]) {
	if true {
		return bytePair()
	}
	return tenPair() // want `^TenBytes \(10 bytes\)` `^TenBytes \(10 bytes\)`
}
