package rules

type WireHeader struct { // want `^WireHeader \(12 bytes\) does not satisfy sizetrait.MaxSize\[\[8\]byte\]: requires size <= 8 \(rule "rules.\*Header"\)$`
	a, b, c uint32
}

type SmallHeader struct {
	a uint32
}

type EmptyHeader struct{} // want `^EmptyHeader \(0 bytes\) does not satisfy sizetrait.ZeroSize\[False\]: requires size != 0`

type Body [100]byte

type GenericHeader[T any] struct{ v T }

type AliasHeader = Body

func local() {
	type LocalHeader [64]byte
	_ = LocalHeader{}
}
