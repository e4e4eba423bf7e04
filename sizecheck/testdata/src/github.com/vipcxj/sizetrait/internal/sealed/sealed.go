package sealed

type SizeLessThan[S, C any] interface{}

type SizeGreaterThan[S, C any] interface{}

type Size[S any] interface{}

type ZeroSize[Z any] interface{}
