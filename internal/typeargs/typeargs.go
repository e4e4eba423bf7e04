// Package typeargs finds the sizetrait constraints that apply to the type
// arguments of a generic instantiation.
package typeargs

import (
	"errors"
	"fmt"
	"go/types"
	"strings"

	"github.com/vipcxj/sizetrait/internal/predicate"
)

// Path is the import path of the public constraints.
const Path = "github.com/vipcxj/sizetrait"

var (
	// ErrTypeParam marks a bound or claim that is still a type parameter.
	ErrTypeParam = errors.New("not known until instantiation")
	// ErrMalformed marks a bound that is not [N]byte.
	ErrMalformed = errors.New("malformed")
)

// Requirement is one sizetrait constraint as written, with the type
// parameters of the declaration it was found on replaced by their arguments.
type Requirement struct {
	Kind predicate.Kind
	Args []types.Type
}

// Kind reports which public constraint n instantiates.
func Kind(n *types.Named) (predicate.Kind, bool) {
	obj := n.Obj()
	if obj.Pkg() == nil || obj.Pkg().Path() != Path {
		return 0, false
	}
	k, err := predicate.KindString(obj.Name())
	if err != nil || k.String() != obj.Name() {
		return 0, false
	}
	return k, true
}

// Collect returns the sizetrait constraints carried by t, directly or
// through the embedded interfaces of t and of the constraint interfaces it
// names. subst may be nil.
func Collect(t types.Type, subst map[*types.TypeParam]types.Type) []Requirement {
	var (
		out  []Requirement
		seen = make(map[types.Type]bool)
		walk func(types.Type)
	)
	walk = func(t types.Type) {
		t = types.Unalias(t)
		if seen[t] {
			return
		}
		seen[t] = true

		if n, ok := t.(*types.Named); ok {
			if k, ok := Kind(n); ok {
				targs := n.TypeArgs()
				r := Requirement{Kind: k, Args: make([]types.Type, targs.Len())}
				for i := range targs.Len() {
					r.Args[i] = substitute(targs.At(i), subst)
				}
				out = append(out, r)
				return
			}
		}
		if _, ok := t.(*types.TypeParam); ok {
			return
		}
		iface, ok := t.Underlying().(*types.Interface)
		if !ok {
			return
		}
		for i := range iface.NumEmbeddeds() {
			walk(iface.EmbeddedType(i))
		}
	}
	walk(t)
	return out
}

func substitute(t types.Type, subst map[*types.TypeParam]types.Type) types.Type {
	if tp, ok := types.Unalias(t).(*types.TypeParam); ok {
		if arg, ok := subst[tp]; ok {
			return arg
		}
	}
	return t
}

// TypeParams returns the type parameters of a generic function or type.
func TypeParams(obj types.Object) *types.TypeParamList {
	switch obj := obj.(type) {
	case *types.Func:
		if sig, ok := obj.Type().(*types.Signature); ok {
			return sig.TypeParams()
		}
	case *types.TypeName:
		switch t := obj.Type().(type) {
		case *types.Named:
			return t.TypeParams()
		case *types.Alias:
			return t.TypeParams()
		}
	}
	return nil
}

// Subst maps each of tparams to the matching type argument.
func Subst(tparams *types.TypeParamList, targs *types.TypeList) map[*types.TypeParam]types.Type {
	m := make(map[*types.TypeParam]types.Type, tparams.Len())
	for i := range min(tparams.Len(), targs.Len()) {
		m[tparams.At(i)] = targs.At(i)
	}
	return m
}

// Resolve turns r into a constraint over constants. It fails with
// ErrTypeParam when an argument is a type parameter and with ErrMalformed
// when a bound is not [N]byte. q qualifies the types named in errors.
func (r Requirement) Resolve(q types.Qualifier) (predicate.Constraint, error) {
	c := predicate.Constraint{Kind: r.Kind}
	if len(r.Args) != r.Kind.Arity() {
		return c, fmt.Errorf("%w: %d type arguments", ErrMalformed, len(r.Args))
	}

	var err error
	switch r.Kind {
	case predicate.KindZeroSize:
		c.Claim, err = claimOf(r.Args[0], q)
	case predicate.KindSizeLessThan, predicate.KindSizeGreaterThan:
		if c.Size, err = BoundOf(r.Args[0], q); err == nil {
			c.Claim, err = claimOf(r.Args[1], q)
		}
	case predicate.KindBoundedSize:
		if c.Min, err = BoundOf(r.Args[0], q); err == nil {
			c.Max, err = BoundOf(r.Args[1], q)
		}
	default:
		c.Size, err = BoundOf(r.Args[0], q)
	}
	return c, err
}

// BoundOf returns N for a bound written as [N]byte.
func BoundOf(t types.Type, q types.Qualifier) (int64, error) {
	switch t := types.Unalias(t).(type) {
	case *types.TypeParam:
		return 0, fmt.Errorf("bound %s: %w", t.Obj().Name(), ErrTypeParam)
	case *types.Array:
		if b, ok := types.Unalias(t.Elem()).(*types.Basic); ok && b.Kind() == types.Uint8 {
			return t.Len(), nil
		}
	}
	return 0, fmt.Errorf("%w bound %s: want [N]byte", ErrMalformed, types.TypeString(t, q))
}

func claimOf(t types.Type, q types.Qualifier) (bool, error) {
	switch t := types.Unalias(t).(type) {
	case *types.TypeParam:
		return false, fmt.Errorf("claim %s: %w", t.Obj().Name(), ErrTypeParam)
	case *types.Named:
		if obj := t.Obj(); obj.Pkg() != nil && obj.Pkg().Path() == Path {
			switch obj.Name() {
			case "True":
				return true, nil
			case "False":
				return false, nil
			}
		}
	}
	return false, fmt.Errorf("%w claim %s: want sizetrait.True or sizetrait.False", ErrMalformed, types.TypeString(t, q))
}

// SameAs reports whether r and other are written with identical arguments.
func (r Requirement) SameAs(other Requirement) bool {
	if r.Kind != other.Kind || len(r.Args) != len(other.Args) {
		return false
	}
	for i := range r.Args {
		if !types.Identical(r.Args[i], other.Args[i]) {
			return false
		}
	}
	return true
}

// Format renders r as written, e.g. sizetrait.MaxSize[S].
func (r Requirement) Format(q types.Qualifier) string {
	args := make([]string, len(r.Args))
	for i, a := range r.Args {
		args[i] = types.TypeString(a, q)
	}
	return fmt.Sprintf("sizetrait.%s[%s]", r.Kind, strings.Join(args, ", "))
}

// Declared returns the resolvable sizetrait constraints of tp.
func Declared(tp *types.TypeParam) []predicate.Constraint {
	var out []predicate.Constraint
	for _, r := range Collect(tp.Constraint(), nil) {
		if c, err := r.Resolve(nil); err == nil {
			out = append(out, c)
		}
	}
	return out
}

// Declares reports whether tp is itself constrained by r as written.
func Declares(tp *types.TypeParam, r Requirement) bool {
	for _, have := range Collect(tp.Constraint(), nil) {
		if have.SameAs(r) {
			return true
		}
	}
	return false
}

// SizeDependsOnTypeParam reports whether the size of t cannot be known
// before its enclosing generic declaration is instantiated.
func SizeDependsOnTypeParam(t types.Type) bool {
	seen := make(map[types.Type]bool)
	var walk func(types.Type) bool
	walk = func(t types.Type) bool {
		t = types.Unalias(t)
		if seen[t] {
			return false
		}
		seen[t] = true

		switch t := t.(type) {
		case *types.TypeParam:
			return true
		case *types.Array:
			return walk(t.Elem())
		case *types.Struct:
			for i := range t.NumFields() {
				if walk(t.Field(i).Type()) {
					return true
				}
			}
			return false
		case *types.Named:
			return walk(t.Underlying())
		default:
			// Pointers, slices, maps, channels, funcs and interfaces have a
			// fixed size whatever they refer to.
			return false
		}
	}
	return walk(t)
}

// Qualified renders c with the package qualifier, as in diagnostics.
func Qualified(c predicate.Constraint) string {
	return "sizetrait." + c.String()
}
