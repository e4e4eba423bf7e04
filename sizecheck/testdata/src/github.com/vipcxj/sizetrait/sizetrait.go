// Package sizetrait mirrors the public constraints for analyzer tests.
package sizetrait

import "github.com/vipcxj/sizetrait/internal/sealed"

type Claim interface {
	True | False
}

type True struct{}

type False struct{}

type SizeLessThan[S any, C Claim] interface {
	sealed.SizeLessThan[S, C]
}

type SizeGreaterThan[S any, C Claim] interface {
	sealed.SizeGreaterThan[S, C]
}

type Size[S any] interface {
	sealed.Size[S]
}

type ZeroSize[C Claim] interface {
	sealed.ZeroSize[C]
}

type MaxSize[S any] interface {
	SizeGreaterThan[S, False]
}

type MinSize[S any] interface {
	SizeLessThan[S, False]
}

type BoundedSize[Min, Max any] interface {
	MinSize[Min]
	MaxSize[Max]
}
