/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/tools/go/packages"
)

func (o *rootOptions) loadPackages(ctx context.Context, mode packages.LoadMode, patterns []string) ([]*packages.Package, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	cfg := &packages.Config{
		Context: ctx,
		Mode:    mode,
		Env:     append(os.Environ(), "GOARCH="+o.arch),
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}
	if n := packages.PrintErrors(pkgs); n > 0 {
		return nil, fmt.Errorf("%d error(s) while loading packages", n)
	}
	log.Debug().Strs("patterns", patterns).Int("packages", len(pkgs)).Msg("loaded packages")
	return pkgs, nil
}

// relPath shortens path relative to the working directory when it lies
// beneath it.
func relPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	for _, dir := range []string{wd, evalSymlinks(wd)} {
		if rel, err := filepath.Rel(dir, path); err == nil && !strings.HasPrefix(rel, "..") {
			return rel
		}
	}
	return path
}

func evalSymlinks(path string) string {
	if real, err := filepath.EvalSymlinks(path); err == nil {
		return real
	}
	return path
}
