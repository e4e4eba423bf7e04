/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/tools/go/packages"

	"github.com/vipcxj/sizetrait/internal/gen"
)

func newGenCmd(o *rootOptions) *cobra.Command {
	var stdout bool
	genCmd := &cobra.Command{
		Use:   "gen [packages]",
		Short: "Generate build-time size assertions",
		Long: `gen writes ` + gen.FileName + ` into each package (default ./...) with one
compile-time assertion per concrete instantiation of a sizetrait-constrained
generic. A claim that does not hold for the platform being built makes the
package fail to compile. Packages with nothing to assert get no file, and a
stale file is removed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pkgs, err := o.loadPackages(cmd.Context(), packages.LoadAllSyntax, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, pkg := range pkgs {
				f := gen.Collect(pkg)
				for _, s := range f.Skipped {
					log.Info().Str("type", s.Type).Str("reason", s.Reason).Str("pos", s.Pos.String()).Msg("not asserted")
				}
				path := relPath(f.Path())

				if f.Empty() {
					if stdout {
						continue
					}
					err := os.Remove(f.Path())
					switch {
					case err == nil:
						fmt.Fprintf(out, "removed %s\n", path)
					case errors.Is(err, fs.ErrNotExist):
						fmt.Fprintf(out, "%s: nothing to assert\n", pkg.PkgPath)
					default:
						return fmt.Errorf("remove stale assertions: %w", err)
					}
					continue
				}

				src, err := f.Source()
				if err != nil {
					return err
				}
				if stdout {
					fmt.Fprintf(out, "// %s\n%s", path, src)
					continue
				}
				if err := os.WriteFile(f.Path(), src, 0o644); err != nil {
					return fmt.Errorf("write assertions: %w", err)
				}
				fmt.Fprintf(out, "wrote %s (%d assertions)\n", path, len(f.Assertions))
			}
			return nil
		},
	}
	genCmd.Flags().BoolVar(&stdout, "stdout", false, "print the files instead of writing them")
	return genCmd
}
