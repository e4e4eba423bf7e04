package sizetrait_test

import (
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sealedPath = "github.com/vipcxj/sizetrait/internal/sealed"

// The ground predicates are only reachable through the exported constraints
// and the checker that decides them.
func TestSealedImporters(t *testing.T) {
	allowed := map[string]bool{
		".":                  true,
		"internal/predicate": true,
	}

	fset := token.NewFileSet()
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != "." && (strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".") || d.Name() == "testdata") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			return err
		}
		for _, imp := range f.Imports {
			p, err := strconv.Unquote(imp.Path.Value)
			require.NoError(t, err)
			if p == sealedPath {
				assert.True(t, allowed[filepath.ToSlash(filepath.Dir(path))], "%s imports %s", path, sealedPath)
			}
		}
		return nil
	})
	require.NoError(t, err)
}
