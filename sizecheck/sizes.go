package sizecheck

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

func sizesOf(pass *analysis.Pass) types.Sizes {
	if pass.TypesSizes != nil {
		return pass.TypesSizes
	}
	return types.SizesFor("gc", "amd64")
}

func formatSize(n int64) string {
	if n == 1 {
		return "1 byte"
	}
	return fmt.Sprintf("%d bytes", n)
}
