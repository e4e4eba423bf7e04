package sizecheck

import (
	"go/types"
	"sync"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"github.com/vipcxj/sizetrait/internal/config"
)

const doc = `check byte-size constraints on generic type arguments

sizecheck computes the size of every concrete type argument bound to a
sizetrait constraint and reports the ones that break it.`

// Rule requires every package-level named type whose qualified name
// (import/path.Name) matches the glob Type to satisfy each constraint
// expression in Require, e.g. "MaxSize[64]".
type Rule struct {
	Type    string
	Require []string
}

// Config adjusts an Analyzer built with New.
type Config struct {
	// StrictBounds reports constraints that no size can satisfy.
	StrictBounds bool
	// ConfigFile names a YAML file whose rules are added to Rules.
	ConfigFile string
	Rules      []Rule
}

// Analyzer checks with the zero Config, adjustable through its flags.
var Analyzer = New(Config{})

// New returns a sizecheck analyzer using cfg as the defaults of its flags.
func New(cfg Config) *analysis.Analyzer {
	c := &checker{cfg: cfg}
	a := &analysis.Analyzer{
		Name:     "sizecheck",
		Doc:      doc,
		URL:      "https://pkg.go.dev/github.com/vipcxj/sizetrait/sizecheck",
		Requires: []*analysis.Analyzer{inspect.Analyzer},
		Run:      c.run,
	}
	a.Flags.BoolVar(&c.cfg.StrictBounds, "strict-bounds", cfg.StrictBounds, "report sizetrait constraints that no type can satisfy")
	a.Flags.StringVar(&c.cfg.ConfigFile, "config", cfg.ConfigFile, "YAML file with size rules for named types")
	return a
}

type checker struct {
	cfg Config

	once     sync.Once
	rules    []compiledRule
	strict   bool
	setupErr error
}

func (c *checker) setup() {
	rules := c.cfg.Rules
	c.strict = c.cfg.StrictBounds
	if c.cfg.ConfigFile != "" {
		file, err := config.Load(c.cfg.ConfigFile)
		if err != nil {
			c.setupErr = err
			return
		}
		for _, r := range file.Rules {
			rules = append(rules, Rule{Type: r.Type, Require: r.Require})
		}
		c.strict = c.strict || file.StrictBounds
	}
	c.rules, c.setupErr = compileRules(rules)
}

func (c *checker) run(pass *analysis.Pass) (any, error) {
	c.once.Do(c.setup)
	if c.setupErr != nil {
		return nil, c.setupErr
	}

	p := &passChecker{
		pass:   pass,
		sizes:  sizesOf(pass),
		strict: c.strict,
	}
	p.qual = func(pkg *types.Package) string {
		if pkg == pass.Pkg {
			return ""
		}
		return pkg.Name()
	}

	p.checkInstances()
	p.checkConversions()
	p.checkRules(c.rules)
	return nil, nil
}

type passChecker struct {
	pass   *analysis.Pass
	sizes  types.Sizes
	qual   types.Qualifier
	strict bool
}
