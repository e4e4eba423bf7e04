package predicate

import (
	"flag"
	"testing"

	"github.com/vipcxj/sizetrait/internal/oracle"
)

var update = flag.Bool("update", false, "rewrite oracle expectations with observed results")

func TestOracle(t *testing.T) {
	suite, err := oracle.Read("testdata/oracle")
	if err != nil {
		t.Fatal(err)
	}
	suite.RunWithUpdate(t, *update, func(c oracle.Case) (bool, error) {
		k, err := Parse(c.Constraint)
		if err != nil {
			return false, err
		}
		return k.Satisfied(c.Size), nil
	})
}
