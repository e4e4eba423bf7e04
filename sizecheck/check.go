package sizecheck

import (
	"cmp"
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"slices"

	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/vipcxj/sizetrait/internal/predicate"
	"github.com/vipcxj/sizetrait/internal/typeargs"
)

// checkInstances checks the type arguments of every instantiation in the
// package against the sizetrait constraints of the matching type parameters.
func (p *passChecker) checkInstances() {
	info := p.pass.TypesInfo
	idents := make([]*ast.Ident, 0, len(info.Instances))
	for id := range info.Instances {
		idents = append(idents, id)
	}
	slices.SortFunc(idents, func(a, b *ast.Ident) int { return cmp.Compare(a.Pos(), b.Pos()) })

	for _, id := range idents {
		inst := info.Instances[id]
		obj := info.Uses[id]
		if obj == nil {
			continue
		}
		if tn, ok := obj.(*types.TypeName); ok {
			if n, ok := tn.Type().(*types.Named); ok {
				if k, ok := typeargs.Kind(n); ok {
					p.checkBounds(id, k, inst.TypeArgs)
					continue
				}
			}
		}

		tparams := typeargs.TypeParams(obj)
		if tparams == nil || inst.TypeArgs == nil || tparams.Len() != inst.TypeArgs.Len() {
			continue
		}
		subst := typeargs.Subst(tparams, inst.TypeArgs)
		for i := range tparams.Len() {
			reqs := typeargs.Collect(tparams.At(i).Constraint(), subst)
			if len(reqs) > 0 {
				p.checkArg(id.Pos(), inst.TypeArgs.At(i), reqs)
			}
		}
	}
}

// checkBounds checks a written sizetrait constraint such as MaxSize[[9]byte]
// itself, independently of any type it is applied to.
func (p *passChecker) checkBounds(id *ast.Ident, kind predicate.Kind, targs *types.TypeList) {
	r := typeargs.Requirement{Kind: kind, Args: make([]types.Type, targs.Len())}
	for i := range targs.Len() {
		r.Args[i] = targs.At(i)
	}
	c, err := r.Resolve(p.qual)
	switch {
	case errors.Is(err, typeargs.ErrMalformed):
		p.pass.Reportf(id.Pos(), "%s: %v", r.Format(p.qual), err)
	case err == nil && p.strict && c.Unsatisfiable():
		p.pass.Reportf(id.Pos(), "%s can never be satisfied: requires %s", typeargs.Qualified(c), c.Requirement())
	}
}

// checkArg checks one type argument, or the type of one converted value,
// against the requirements it is bound to.
func (p *passChecker) checkArg(pos token.Pos, arg types.Type, reqs []typeargs.Requirement) {
	tp, bare := types.Unalias(arg).(*types.TypeParam)
	for _, r := range reqs {
		want, err := r.Resolve(p.qual)
		if errors.Is(err, typeargs.ErrTypeParam) {
			if bare && typeargs.Declares(tp, r) {
				continue
			}
			p.pass.Reportf(pos, "cannot verify %s for %s: %v", r.Format(p.qual), types.TypeString(arg, p.qual), err)
			continue
		}
		if err != nil {
			// reported where the constraint is written
			continue
		}

		switch {
		case bare:
			if !predicate.Entails(typeargs.Declared(tp), want) {
				name := tp.Obj().Name()
				p.pass.Reportf(pos, "%s does not satisfy %s: constraints of %s do not imply %s",
					name, typeargs.Qualified(want), name, want.Requirement())
			}
		case typeargs.SizeDependsOnTypeParam(arg):
			p.pass.Reportf(pos, "cannot verify %s for %s: size depends on a type parameter",
				typeargs.Qualified(want), types.TypeString(arg, p.qual))
		default:
			size := p.sizes.Sizeof(arg)
			if !want.Satisfied(size) {
				p.pass.Reportf(pos, "%s (%s) does not satisfy %s: requires %s",
					types.TypeString(arg, p.qual), formatSize(size), typeargs.Qualified(want), want.Requirement())
			}
		}
	}
}

// checkConversions finds values converted to interface types that carry
// sizetrait constraints. Such an interface claims a size for every dynamic
// value it holds, so each value put into one is checked.
func (p *passChecker) checkConversions() {
	insp := p.pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	info := p.pass.TypesInfo

	filter := []ast.Node{
		(*ast.ValueSpec)(nil),
		(*ast.AssignStmt)(nil),
		(*ast.CallExpr)(nil),
		(*ast.ReturnStmt)(nil),
		(*ast.CompositeLit)(nil),
		(*ast.SendStmt)(nil),
	}
	insp.WithStack(filter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}
		switch n := n.(type) {
		case *ast.ValueSpec:
			if n.Type == nil {
				break
			}
			target := info.TypeOf(n.Type)
			p.checkValues(n.Values, func(int) types.Type { return target })
		case *ast.AssignStmt:
			if n.Tok != token.ASSIGN {
				break
			}
			p.checkValues(n.Rhs, func(i int) types.Type {
				if i < len(n.Lhs) {
					return info.TypeOf(n.Lhs[i])
				}
				return nil
			})
		case *ast.CallExpr:
			p.checkCall(n)
		case *ast.ReturnStmt:
			sig := enclosingSignature(info, stack)
			if sig == nil {
				break
			}
			p.checkValues(n.Results, func(i int) types.Type {
				if i < sig.Results().Len() {
					return sig.Results().At(i).Type()
				}
				return nil
			})
		case *ast.CompositeLit:
			p.checkCompositeLit(n)
		case *ast.SendStmt:
			if ch, ok := underlying(info.TypeOf(n.Chan)).(*types.Chan); ok {
				p.checkConversion(n.Value, ch.Elem())
			}
		}
		return true
	})
}

// checkValues checks exprs against the targets of their positions. A single
// multi-valued expression is spread over the targets.
func (p *passChecker) checkValues(exprs []ast.Expr, target func(i int) types.Type) {
	if len(exprs) == 1 {
		if tuple, ok := p.pass.TypesInfo.TypeOf(exprs[0]).(*types.Tuple); ok {
			for i := range tuple.Len() {
				p.checkValue(exprs[0].Pos(), tuple.At(i).Type(), target(i))
			}
			return
		}
	}
	for i, e := range exprs {
		p.checkConversion(e, target(i))
	}
}

func (p *passChecker) checkCall(call *ast.CallExpr) {
	info := p.pass.TypesInfo
	tv, ok := info.Types[call.Fun]
	if !ok || tv.IsBuiltin() {
		return
	}
	if tv.IsType() {
		if len(call.Args) == 1 {
			p.checkConversion(call.Args[0], tv.Type)
		}
		return
	}

	sig, ok := tv.Type.Underlying().(*types.Signature)
	if !ok {
		return
	}
	params := sig.Params()
	p.checkValues(call.Args, func(i int) types.Type {
		switch {
		case sig.Variadic() && i >= params.Len()-1:
			if call.Ellipsis.IsValid() {
				return nil
			}
			if s, ok := params.At(params.Len() - 1).Type().(*types.Slice); ok {
				return s.Elem()
			}
			return nil
		case i < params.Len():
			return params.At(i).Type()
		}
		return nil
	})
}

// checkCompositeLit checks the fields, elements and keys of a literal
// against the types they are stored as.
func (p *passChecker) checkCompositeLit(lit *ast.CompositeLit) {
	t := p.pass.TypesInfo.TypeOf(lit)
	if ptr, ok := underlying(t).(*types.Pointer); ok {
		t = ptr.Elem()
	}
	switch u := underlying(t).(type) {
	case *types.Struct:
		for i, elt := range lit.Elts {
			kv, ok := elt.(*ast.KeyValueExpr)
			if !ok {
				if i < u.NumFields() {
					p.checkConversion(elt, u.Field(i).Type())
				}
				continue
			}
			if key, ok := kv.Key.(*ast.Ident); ok {
				if field, ok := p.pass.TypesInfo.Uses[key].(*types.Var); ok {
					p.checkConversion(kv.Value, field.Type())
				}
			}
		}
	case *types.Array:
		p.checkElements(lit.Elts, nil, u.Elem())
	case *types.Slice:
		p.checkElements(lit.Elts, nil, u.Elem())
	case *types.Map:
		p.checkElements(lit.Elts, u.Key(), u.Elem())
	}
}

func (p *passChecker) checkElements(elts []ast.Expr, key, elem types.Type) {
	for _, elt := range elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			p.checkConversion(elt, elem)
			continue
		}
		if key != nil {
			p.checkConversion(kv.Key, key)
		}
		p.checkConversion(kv.Value, elem)
	}
}

func (p *passChecker) checkConversion(expr ast.Expr, target types.Type) {
	tv := p.pass.TypesInfo.Types[expr]
	if tv.IsNil() {
		return
	}
	p.checkValue(expr.Pos(), tv.Type, target)
}

// checkValue checks a value of type src stored as target.
func (p *passChecker) checkValue(pos token.Pos, src, target types.Type) {
	if src == nil || target == nil {
		return
	}
	if _, ok := types.Unalias(target).(*types.TypeParam); ok || !types.IsInterface(target) {
		return
	}
	reqs := typeargs.Collect(target, nil)
	if len(reqs) == 0 {
		return
	}
	if _, ok := types.Unalias(src).(*types.TypeParam); !ok && types.IsInterface(src) {
		p.checkInterface(pos, src, reqs)
		return
	}
	p.checkArg(pos, types.Default(src), reqs)
}

// checkInterface checks a value whose dynamic type is unknown. The
// sizetrait constraints of its interface type must imply every requirement.
func (p *passChecker) checkInterface(pos token.Pos, src types.Type, reqs []typeargs.Requirement) {
	have := typeargs.Collect(src, nil)
	var known []predicate.Constraint
	for _, h := range have {
		if c, err := h.Resolve(p.qual); err == nil {
			known = append(known, c)
		}
	}

	name := types.TypeString(src, p.qual)
	for _, r := range reqs {
		if slices.ContainsFunc(have, r.SameAs) {
			continue
		}
		want, err := r.Resolve(p.qual)
		if errors.Is(err, typeargs.ErrTypeParam) {
			p.pass.Reportf(pos, "cannot verify %s for %s: %v", r.Format(p.qual), name, err)
			continue
		}
		if err != nil {
			continue
		}
		if !predicate.Entails(known, want) {
			p.pass.Reportf(pos, "cannot verify %s for %s: constraints of %s do not imply %s",
				typeargs.Qualified(want), name, name, want.Requirement())
		}
	}
}

func underlying(t types.Type) types.Type {
	if t == nil {
		return nil
	}
	return t.Underlying()
}

func enclosingSignature(info *types.Info, stack []ast.Node) *types.Signature {
	for i := len(stack) - 1; i >= 0; i-- {
		switch fn := stack[i].(type) {
		case *ast.FuncLit:
			sig, _ := info.TypeOf(fn).(*types.Signature)
			return sig
		case *ast.FuncDecl:
			if obj := info.Defs[fn.Name]; obj != nil {
				sig, _ := obj.Type().(*types.Signature)
				return sig
			}
			return nil
		}
	}
	return nil
}
