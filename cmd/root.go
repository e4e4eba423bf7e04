/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"go/types"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vipcxj/sizetrait/internal/config"
)

const (
	exitOK       = 0
	exitError    = 1
	exitFindings = 3
)

// errFindings is returned by commands that already printed what failed.
var errFindings = errors.New("constraints not satisfied")

type rootOptions struct {
	arch       string
	compiler   string
	configPath string
	logLevel   string
	verbose    bool

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "sizetrait",
		Short: "Check byte-size constraints on Go generics",
		Long: `sizetrait checks the sizetrait constraints written on generic type
parameters against the sizes of the type arguments they are instantiated
with, and can generate build-time assertions for the same claims.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.arch, "arch", "", "GOARCH whose sizes are used (default: config, then $GOARCH, then the host)")
	flags.StringVar(&o.compiler, "compiler", "", `compiler whose sizes the sizes command uses; check supports only gc (default "gc")`)
	flags.StringVar(&o.configPath, "config", config.DefaultFile, "project config file")
	flags.StringVar(&o.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "shorthand for --log-level=debug")

	rootCmd.AddCommand(
		newCheckCmd(o),
		newSizesCmd(o),
		newEvalCmd(o),
		newGenCmd(o),
	)
	return rootCmd
}

// Execute runs the command line in os.Args and returns the exit code.
func Execute() int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(os.Args[1:])
	err := rootCmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errFindings):
		return exitFindings
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitError
	}
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	if err := bindEnv(cmd.Root().PersistentFlags(), envPrefix); err != nil {
		return err
	}
	if err := setupLogging(o.logLevel, o.verbose); err != nil {
		return err
	}

	var err error
	if cmd.Flags().Changed("config") {
		o.cfg, err = config.Load(o.configPath)
	} else {
		var found bool
		o.cfg, found, err = config.LoadIfExists(o.configPath)
		if found {
			log.Debug().Str("path", o.configPath).Msg("loaded config")
		}
	}
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("arch") {
		o.arch = firstNonEmpty(o.cfg.Arch, os.Getenv("GOARCH"), runtime.GOARCH)
	}
	if !cmd.Flags().Changed("compiler") {
		o.compiler = o.cfg.CompilerOrDefault()
	}
	if o.sizes() == nil {
		return fmt.Errorf("unknown platform %s/%s", o.compiler, o.arch)
	}
	log.Debug().Str("arch", o.arch).Str("compiler", o.compiler).Msg("target platform")
	return nil
}

func (o *rootOptions) sizes() types.Sizes {
	return types.SizesFor(o.compiler, o.arch)
}

func setupLogging(level string, verbose bool) error {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	if verbose {
		logLevel = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(logLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
