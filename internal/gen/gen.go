// Package gen writes build-time size assertions for the concrete
// instantiations of sizetrait-constrained generics in a package.
//
// Each assertion is an array type whose length is a constant computed from
// unsafe.Sizeof. A claim that does not hold makes the length negative, and
// the package stops compiling:
//
//	var (
//		// [11]byte: sizetrait.SizeLessThan[[10]byte, True] (size < 10) at main.go:12:8
//		_ [10 - 1 - int(unsafe.Sizeof(*new([11]byte)))]struct{}
//	)
package gen

import (
	"bytes"
	"cmp"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"go/types"
	"path/filepath"
	"slices"
	"strconv"

	"golang.org/x/tools/go/packages"

	"github.com/vipcxj/sizetrait/internal/predicate"
	"github.com/vipcxj/sizetrait/internal/typeargs"
)

// FileName is the name of the generated file in each package directory.
const FileName = "sizetrait_assert.go"

const header = "// Code generated by sizetrait gen. DO NOT EDIT."

// Assertion is one type checked against one constraint.
type Assertion struct {
	Type       string // as written in the generated file
	Constraint predicate.Constraint
	Pos        token.Position
}

// Skipped is a type argument the generated file cannot name.
type Skipped struct {
	Type   string
	Reason string
	Pos    token.Position
}

// File is the generated file of one package.
type File struct {
	Package    string
	Dir        string
	Assertions []Assertion
	Skipped    []Skipped

	self    *types.Package
	imports map[string]string // path -> local name
	names   map[string]bool
}

// Path is where the file belongs.
func (f *File) Path() string {
	return filepath.Join(f.Dir, FileName)
}

// Empty reports whether there is nothing to assert.
func (f *File) Empty() bool {
	return len(f.Assertions) == 0
}

// Collect finds the concrete instantiations in pkg. pkg must have been
// loaded with syntax and type information.
func Collect(pkg *packages.Package) *File {
	f := &File{
		Package: pkg.Name,
		Dir:     packageDir(pkg),
		self:    pkg.Types,
		imports: map[string]string{"unsafe": "unsafe"},
		names:   map[string]bool{"unsafe": true},
	}

	info := pkg.TypesInfo
	idents := make([]*ast.Ident, 0, len(info.Instances))
	for id := range info.Instances {
		if filepath.Base(pkg.Fset.Position(id.Pos()).Filename) == FileName {
			continue
		}
		idents = append(idents, id)
	}
	slices.SortFunc(idents, func(a, b *ast.Ident) int { return cmp.Compare(a.Pos(), b.Pos()) })

	seen := make(map[string]bool)
	for _, id := range idents {
		obj := info.Uses[id]
		if obj == nil {
			continue
		}
		inst := info.Instances[id]
		tparams := typeargs.TypeParams(obj)
		if tparams == nil || inst.TypeArgs == nil || tparams.Len() != inst.TypeArgs.Len() {
			continue
		}
		subst := typeargs.Subst(tparams, inst.TypeArgs)
		pos := pkg.Fset.Position(id.Pos())

		for i := range tparams.Len() {
			arg := inst.TypeArgs.At(i)
			reqs := typeargs.Collect(tparams.At(i).Constraint(), subst)
			if len(reqs) == 0 || typeargs.SizeDependsOnTypeParam(arg) {
				continue
			}
			if reason := f.unnameable(arg); reason != "" {
				f.Skipped = append(f.Skipped, Skipped{
					Type:   types.TypeString(arg, types.RelativeTo(f.self)),
					Reason: reason,
					Pos:    pos,
				})
				continue
			}
			expr := types.TypeString(arg, f.qualify)
			for _, r := range reqs {
				c, err := r.Resolve(nil)
				if err != nil {
					continue
				}
				key := expr + "\x00" + c.Expr()
				if seen[key] {
					continue
				}
				seen[key] = true
				f.Assertions = append(f.Assertions, Assertion{Type: expr, Constraint: c, Pos: pos})
			}
		}
	}
	return f
}

func packageDir(pkg *packages.Package) string {
	if pkg.Dir != "" {
		return pkg.Dir
	}
	if len(pkg.GoFiles) > 0 {
		return filepath.Dir(pkg.GoFiles[0])
	}
	return "."
}

// qualify names the package of a foreign type, importing it on first use.
func (f *File) qualify(p *types.Package) string {
	if p == f.self {
		return ""
	}
	if name, ok := f.imports[p.Path()]; ok {
		return name
	}
	name := p.Name()
	for i := 2; f.names[name] || f.self.Scope().Lookup(name) != nil; i++ {
		name = p.Name() + strconv.Itoa(i)
	}
	f.imports[p.Path()] = name
	f.names[name] = true
	return name
}

// unnameable explains why t cannot be written in a file of f's package, or
// returns "".
func (f *File) unnameable(t types.Type) string {
	seen := make(map[types.Type]bool)
	var walk func(types.Type) string
	walk = func(t types.Type) string {
		if seen[t] {
			return ""
		}
		seen[t] = true

		switch t := t.(type) {
		case *types.Named:
			if reason := f.unnameableObj(t.Obj()); reason != "" {
				return reason
			}
			return walkList(t.TypeArgs(), walk)
		case *types.Alias:
			if reason := f.unnameableObj(t.Obj()); reason != "" {
				return reason
			}
			return walkList(t.TypeArgs(), walk)
		case *types.Pointer:
			return walk(t.Elem())
		case *types.Slice:
			return walk(t.Elem())
		case *types.Array:
			return walk(t.Elem())
		case *types.Chan:
			return walk(t.Elem())
		case *types.Map:
			if reason := walk(t.Key()); reason != "" {
				return reason
			}
			return walk(t.Elem())
		case *types.Struct:
			for i := range t.NumFields() {
				if reason := walk(t.Field(i).Type()); reason != "" {
					return reason
				}
			}
		case *types.Tuple:
			for i := range t.Len() {
				if reason := walk(t.At(i).Type()); reason != "" {
					return reason
				}
			}
		case *types.Signature:
			if reason := walk(t.Params()); reason != "" {
				return reason
			}
			return walk(t.Results())
		case *types.Interface:
			for i := range t.NumExplicitMethods() {
				if reason := walk(t.ExplicitMethod(i).Type()); reason != "" {
					return reason
				}
			}
			for i := range t.NumEmbeddeds() {
				if reason := walk(t.EmbeddedType(i)); reason != "" {
					return reason
				}
			}
		case *types.TypeParam:
			return "depends on a type parameter"
		}
		return ""
	}
	return walk(t)
}

func walkList(list *types.TypeList, walk func(types.Type) string) string {
	for i := range list.Len() {
		if reason := walk(list.At(i)); reason != "" {
			return reason
		}
	}
	return ""
}

func (f *File) unnameableObj(obj *types.TypeName) string {
	pkg := obj.Pkg()
	switch {
	case pkg == nil:
		return ""
	case obj.Parent() != pkg.Scope():
		return "function-local type"
	case pkg != f.self && !obj.Exported():
		return "unexported type of another package"
	}
	return ""
}

// Source renders the file, gofmt'ed.
func (f *File) Source() ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n\npackage %s\n\n", header, f.Package)

	paths := make([]string, 0, len(f.imports))
	for path := range f.imports {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	buf.WriteString("import (\n")
	for _, path := range paths {
		name := f.imports[path]
		if name == filepath.Base(path) {
			fmt.Fprintf(&buf, "\t%q\n", path)
		} else {
			fmt.Fprintf(&buf, "\t%s %q\n", name, path)
		}
	}
	buf.WriteString(")\n\n")

	if len(f.Skipped) > 0 {
		buf.WriteString("// Not asserted:\n")
		for _, s := range f.Skipped {
			fmt.Fprintf(&buf, "//\t%s (%s) at %s\n", s.Type, s.Reason, shortPos(s.Pos))
		}
		buf.WriteString("\n")
	}

	buf.WriteString("var (\n")
	for _, a := range f.Assertions {
		fmt.Fprintf(&buf, "\t// %s: %s (%s) at %s\n", a.Type, typeargs.Qualified(a.Constraint), a.Constraint.Requirement(), shortPos(a.Pos))
		sz := fmt.Sprintf("int(unsafe.Sizeof(*new(%s)))", a.Type)
		for _, leaf := range a.Constraint.Leaves() {
			fmt.Fprintf(&buf, "\t_ %sstruct{}\n", Lengths(leaf, sz))
		}
	}
	buf.WriteString(")\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", f.Path(), err)
	}
	return src, nil
}

// Lengths returns the array dimensions, e.g. "[9 - sz]", that are all
// non-negative exactly when a type of size sz satisfies the ground
// constraint leaf.
func Lengths(leaf predicate.Constraint, sz string) string {
	n := leaf.Size
	switch leaf.Kind {
	case predicate.KindSizeLessThan:
		if leaf.Claim {
			return fmt.Sprintf("[%d - 1 - %s]", n, sz)
		}
		return fmt.Sprintf("[%s - %d]", sz, n)
	case predicate.KindSizeGreaterThan:
		if leaf.Claim {
			return fmt.Sprintf("[%s - %d - 1]", sz, n)
		}
		return fmt.Sprintf("[%d - %s]", n, sz)
	case predicate.KindSize:
		return fmt.Sprintf("[%d - %s][%s - %d]", n, sz, sz, n)
	case predicate.KindZeroSize:
		if leaf.Claim {
			return fmt.Sprintf("[-%s]", sz)
		}
		return fmt.Sprintf("[%s - 1]", sz)
	}
	panic(fmt.Sprintf("gen: %s is not a ground constraint", leaf.Kind))
}

func shortPos(p token.Position) string {
	return fmt.Sprintf("%s:%d:%d", filepath.Base(p.Filename), p.Line, p.Column)
}
