// The sizecheck command runs the sizecheck analyzer standalone or as a
// vet tool:
//
//	go vet -vettool=$(which sizecheck) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/vipcxj/sizetrait/sizecheck"
)

func main() {
	singlechecker.Main(sizecheck.Analyzer)
}
