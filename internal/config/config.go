// Package config reads the .sizetrait.yaml project file.
package config

import (
	"errors"
	"fmt"
	"go/types"
	"io/fs"
	"os"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"github.com/vipcxj/sizetrait/internal/predicate"
)

// DefaultFile is looked up in the working directory when no file is named.
const DefaultFile = ".sizetrait.yaml"

// Config is the project file.
//
//	arch: amd64
//	compiler: gc
//	strictBounds: false
//	rules:
//	  - type: "example.com/wire.*Header"
//	    require: ["MaxSize[64]", "MinSize[8]"]
type Config struct {
	Arch         string `yaml:"arch"`
	Compiler     string `yaml:"compiler"`
	StrictBounds bool   `yaml:"strictBounds"`
	Rules        []Rule `yaml:"rules"`
}

// Rule requires the named types matching Type to satisfy every expression in
// Require.
type Rule struct {
	Type    string   `yaml:"type"`
	Require []string `yaml:"require"`
}

// Load reads and validates the file at path.
func Load(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadIfExists is Load, except that a missing file yields the zero Config
// and found == false.
func LoadIfExists(path string) (cfg Config, found bool, err error) {
	cfg, err = Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, false, nil
	}
	return cfg, err == nil, err
}

// Validate checks the target platform, every rule pattern and every
// constraint expression.
func (c Config) Validate() error {
	if c.Arch != "" && types.SizesFor(c.CompilerOrDefault(), c.Arch) == nil {
		return fmt.Errorf("unknown platform %s/%s", c.CompilerOrDefault(), c.Arch)
	}
	for i, r := range c.Rules {
		if r.Type == "" {
			return fmt.Errorf("rules[%d]: missing type pattern", i)
		}
		if _, err := glob.Compile(r.Type, '/'); err != nil {
			return fmt.Errorf("rules[%d]: type %q: %w", i, r.Type, err)
		}
		if len(r.Require) == 0 {
			return fmt.Errorf("rules[%d]: type %q requires nothing", i, r.Type)
		}
		if _, err := predicate.ParseAll(r.Require); err != nil {
			return fmt.Errorf("rules[%d]: %w", i, err)
		}
	}
	return nil
}

// CompilerOrDefault returns Compiler, or "gc" when it is unset.
func (c Config) CompilerOrDefault() string {
	if c.Compiler == "" {
		return "gc"
	}
	return c.Compiler
}
