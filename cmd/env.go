/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

const envPrefix = "SIZETRAIT_"

func calcEnvName(key string, prefix string) string {
	return prefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// bindEnv gives every flag not set on the command line the value of its
// environment variable, e.g. SIZETRAIT_ARCH for --arch.
func bindEnv(flags *pflag.FlagSet, prefix string) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed {
			return
		}
		name := calcEnvName(f.Name, prefix)
		if v, ok := os.LookupEnv(name); ok {
			if setErr := flags.Set(f.Name, v); setErr != nil {
				err = fmt.Errorf("%s: %w", name, setErr)
			}
		}
	})
	return err
}
