package sizecheck_test

import (
	"path/filepath"
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/vipcxj/sizetrait/sizecheck"
)

func TestInstances(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), sizecheck.Analyzer, "instances")
}

func TestGeneric(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), sizecheck.Analyzer, "generic")
}

func TestForgery(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), sizecheck.Analyzer, "forgery")
}

func TestBounds(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), sizecheck.Analyzer, "bounds")
}

func TestStrictBounds(t *testing.T) {
	a := sizecheck.New(sizecheck.Config{StrictBounds: true})
	analysistest.Run(t, analysistest.TestData(), a, "strict")
}

func TestRules(t *testing.T) {
	a := sizecheck.New(sizecheck.Config{
		Rules: []sizecheck.Rule{
			{Type: "rules.*Header", Require: []string{"MaxSize[8]", "ZeroSize[false]"}},
		},
	})
	analysistest.Run(t, analysistest.TestData(), a, "rules")
}

func TestRulesFromConfigFile(t *testing.T) {
	a := sizecheck.New(sizecheck.Config{
		ConfigFile: filepath.Join(analysistest.TestData(), "rules.yaml"),
	})
	analysistest.Run(t, analysistest.TestData(), a, "rules")
}

func TestFlags(t *testing.T) {
	a := sizecheck.New(sizecheck.Config{})
	for _, name := range []string{"strict-bounds", "config"} {
		if a.Flags.Lookup(name) == nil {
			t.Errorf("missing flag -%s", name)
		}
	}
	if err := a.Flags.Set("strict-bounds", "true"); err != nil {
		t.Fatal(err)
	}
	analysistest.Run(t, analysistest.TestData(), a, "strict")
}
