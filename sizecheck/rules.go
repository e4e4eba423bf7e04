package sizecheck

import (
	"fmt"
	"go/types"

	"github.com/gobwas/glob"

	"github.com/vipcxj/sizetrait/internal/predicate"
	"github.com/vipcxj/sizetrait/internal/typeargs"
)

type compiledRule struct {
	pattern string
	match   glob.Glob
	require []predicate.Constraint
}

func compileRules(rules []Rule) ([]compiledRule, error) {
	out := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		g, err := glob.Compile(r.Type, '/')
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.Type, err)
		}
		require, err := predicate.ParseAll(r.Require)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.Type, err)
		}
		out = append(out, compiledRule{pattern: r.Type, match: g, require: require})
	}
	return out, nil
}

// checkRules checks the package-level, non-generic named types of the
// package against every rule whose pattern matches their qualified name.
func (p *passChecker) checkRules(rules []compiledRule) {
	if len(rules) == 0 {
		return
	}
	scope := p.pass.Pkg.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok || named.TypeParams().Len() > 0 {
			continue
		}

		full := p.pass.Pkg.Path() + "." + name
		var size int64 = -1
		for _, r := range rules {
			if !r.match.Match(full) {
				continue
			}
			if size < 0 {
				size = p.sizes.Sizeof(named)
			}
			for _, c := range r.require {
				if !c.Satisfied(size) {
					p.pass.Reportf(tn.Pos(), "%s (%s) does not satisfy %s: requires %s (rule %q)",
						name, formatSize(size), typeargs.Qualified(c), c.Requirement(), r.pattern)
				}
			}
		}
	}
}
