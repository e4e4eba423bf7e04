/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/checker"
	"golang.org/x/tools/go/packages"

	"github.com/vipcxj/sizetrait/sizecheck"
)

type finding struct {
	file      string
	line, col int
	message   string
}

func newCheckCmd(o *rootOptions) *cobra.Command {
	var strictBounds bool
	checkCmd := &cobra.Command{
		Use:   "check [packages]",
		Short: "Check sizetrait constraints in packages",
		Long: `check loads the packages (default ./...) for the target platform and runs
the sizecheck analyzer on them. Findings are printed as file:line:col:
message and make check exit with status 3. Sizes are those of the gc
compiler for the selected --arch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.compiler != "gc" {
				return fmt.Errorf("--compiler %s: check only knows the gc sizes the go command reports", o.compiler)
			}
			pkgs, err := o.loadPackages(cmd.Context(), packages.LoadAllSyntax, args)
			if err != nil {
				return err
			}

			analyzer := sizecheck.New(sizecheck.Config{
				StrictBounds: strictBounds || o.cfg.StrictBounds,
				Rules:        o.rules(),
			})
			graph, err := checker.Analyze([]*analysis.Analyzer{analyzer}, pkgs, nil)
			if err != nil {
				return fmt.Errorf("analyze: %w", err)
			}

			var findings []finding
			for _, act := range graph.Roots {
				if act.Err != nil {
					return fmt.Errorf("%s: %w", act.Package.PkgPath, act.Err)
				}
				for _, d := range act.Diagnostics {
					pos := act.Package.Fset.Position(d.Pos)
					findings = append(findings, finding{
						file:    relPath(pos.Filename),
						line:    pos.Line,
						col:     pos.Column,
						message: d.Message,
					})
				}
			}
			slices.SortFunc(findings, func(a, b finding) int {
				return cmp.Or(
					cmp.Compare(a.file, b.file),
					cmp.Compare(a.line, b.line),
					cmp.Compare(a.col, b.col),
				)
			})

			out := cmd.OutOrStdout()
			for _, f := range findings {
				fmt.Fprintf(out, "%s:%d:%d: %s\n", f.file, f.line, f.col, f.message)
			}
			log.Debug().Int("packages", len(pkgs)).Int("findings", len(findings)).Msg("check done")
			if len(findings) > 0 {
				return errFindings
			}
			return nil
		},
	}
	checkCmd.Flags().BoolVar(&strictBounds, "strict-bounds", false, "also report constraints that no type can satisfy")
	return checkCmd
}

func (o *rootOptions) rules() []sizecheck.Rule {
	rules := make([]sizecheck.Rule, 0, len(o.cfg.Rules))
	for _, r := range o.cfg.Rules {
		rules = append(rules, sizecheck.Rule{Type: r.Type, Require: r.Require})
	}
	return rules
}
