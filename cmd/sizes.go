/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"go/token"
	"go/types"
	"regexp"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/tools/go/packages"

	"github.com/vipcxj/sizetrait/internal/predicate"
	"github.com/vipcxj/sizetrait/internal/sizerange"
)

// qualifiedType matches import/path.Name.
var qualifiedType = regexp.MustCompile(`^[\w.\-/]+\.[A-Za-z_]\w*$`)

func newSizesCmd(o *rootOptions) *cobra.Command {
	var (
		only      string
		satisfies []string
	)
	sizesCmd := &cobra.Command{
		Use:   "sizes <type>...",
		Short: "Print the size of types on the target platform",
		Long: `sizes prints the size in bytes of each type. A type is either a
package-level named type written as import/path.Name, or a type expression
over predeclared types such as [4]byte or struct{ a uint8; b uint64 }.

--only keeps the types whose size is in a filter such as 0-8, 16- or 1_2_4_8,
or in a single range such as <8, >=16 or [4,16).
--satisfies adds one column per constraint expression.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := sizerange.All()
			if only != "" {
				var err error
				if filter, err = parseOnly(only); err != nil {
					return fmt.Errorf("--only: %w", err)
				}
			}
			if !filter.IsAllNatural() {
				log.Debug().Str("only", filter.String()).Msg("filtering sizes")
			}
			constraints, err := predicate.ParseAll(satisfies)
			if err != nil {
				return fmt.Errorf("--satisfies: %w", err)
			}

			resolved, err := o.resolveTypes(cmd, args)
			if err != nil {
				return err
			}

			sizes := o.sizes()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for i, t := range resolved {
				size := sizes.Sizeof(t)
				if !filter.Test(size) {
					continue
				}
				cells := []string{args[i], fmt.Sprint(size)}
				for _, c := range constraints {
					verdict := "ok"
					if !c.Satisfied(size) {
						verdict = "fails"
					}
					cells = append(cells, c.Expr()+"="+verdict)
				}
				fmt.Fprintln(tw, strings.Join(cells, "\t"))
			}
			return tw.Flush()
		},
	}
	sizesCmd.Flags().StringVar(&only, "only", "", "only print types whose size is in this filter or range")
	sizesCmd.Flags().StringArrayVar(&satisfies, "satisfies", nil, "constraint expression to evaluate for each type (repeatable)")
	return sizesCmd
}

// parseOnly reads a filter, falling back to a single range expression.
func parseOnly(v string) (sizerange.Filter, error) {
	f, err := sizerange.ParseFilter(v)
	if err != nil {
		r, rangeErr := sizerange.Parse(v)
		if rangeErr != nil {
			return sizerange.Filter{}, err
		}
		f = sizerange.Of(r)
	}
	if !f.IsNotEmpty() {
		return sizerange.Filter{}, fmt.Errorf("%q matches no size", v)
	}
	return f, nil
}

// resolveTypes resolves every argument, loading the packages the qualified
// ones name in a single pass.
func (o *rootOptions) resolveTypes(cmd *cobra.Command, args []string) ([]types.Type, error) {
	var paths []string
	seen := make(map[string]bool)
	for _, arg := range args {
		if path, _, ok := splitQualified(arg); ok && !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
	}

	byPath := make(map[string]*types.Package)
	if len(paths) > 0 {
		pkgs, err := o.loadPackages(cmd.Context(), packages.NeedName|packages.NeedTypes, paths)
		if err != nil {
			return nil, err
		}
		for _, p := range pkgs {
			byPath[p.PkgPath] = p.Types
		}
	}

	out := make([]types.Type, len(args))
	for i, arg := range args {
		t, err := resolveType(arg, byPath)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

func splitQualified(arg string) (path, name string, ok bool) {
	if !qualifiedType.MatchString(arg) {
		return "", "", false
	}
	dot := strings.LastIndexByte(arg, '.')
	return arg[:dot], arg[dot+1:], true
}

func resolveType(arg string, byPath map[string]*types.Package) (types.Type, error) {
	path, name, ok := splitQualified(arg)
	if !ok {
		tv, err := types.Eval(token.NewFileSet(), nil, token.NoPos, arg)
		if err != nil {
			return nil, fmt.Errorf("type %q: %w", arg, err)
		}
		if !tv.IsType() {
			return nil, fmt.Errorf("type %q: not a type", arg)
		}
		return tv.Type, nil
	}

	pkg := byPath[path]
	if pkg == nil {
		return nil, fmt.Errorf("type %q: package %s not found", arg, path)
	}
	tn, ok := pkg.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("type %q: no type %s in package %s", arg, name, path)
	}
	if n, ok := tn.Type().(*types.Named); ok && n.TypeParams().Len() > 0 {
		return nil, fmt.Errorf("type %q: generic type needs type arguments", arg)
	}
	return tn.Type(), nil
}
