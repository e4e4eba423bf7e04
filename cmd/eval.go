/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vipcxj/sizetrait/internal/predicate"
	"github.com/vipcxj/sizetrait/internal/sizerange"
)

func newEvalCmd(o *rootOptions) *cobra.Command {
	var size int64
	evalCmd := &cobra.Command{
		Use:   "eval [--size N] <constraint>...",
		Short: "Evaluate constraint expressions",
		Long: `eval prints the sizes each constraint accepts, e.g.

  sizetrait eval MaxSize[9] SizeLessThan[10,true] BoundedSize[1,16]

With --size it also says whether a type of that many bytes satisfies each
one, and exits with status 3 if any is not satisfied.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			constraints, err := predicate.ParseAll(args)
			if err != nil {
				return err
			}
			withSize := cmd.Flags().Changed("size")
			if withSize && size < 0 {
				return fmt.Errorf("--size %d: not a natural number", size)
			}

			out := cmd.OutOrStdout()
			failed := false
			for _, c := range constraints {
				detail := fmt.Sprintf("requires %s, accepts %s", c.Requirement(), acceptedSet(c))
				if !withSize {
					fmt.Fprintf(out, "%s: %s\n", c, detail)
					continue
				}
				verdict := "ok"
				if leaf, bad := c.Failing(size); bad {
					verdict = "fails " + leaf.String()
					failed = true
				}
				fmt.Fprintf(out, "%s: %s (%s)\n", c, verdict, detail)
			}
			if failed {
				return errFindings
			}
			return nil
		},
	}
	evalCmd.Flags().Int64VarP(&size, "size", "s", 0, "size in bytes to evaluate the constraints against")
	return evalCmd
}

func acceptedSet(c predicate.Constraint) string {
	if c.Unsatisfiable() {
		return "nothing"
	}
	return sizerange.Of(c.Accepts()).String()
}
