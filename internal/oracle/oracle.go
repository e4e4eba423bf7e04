// Package oracle runs YAML tables of size/constraint expectations as Go
// subtests, and can write the observed outcomes back into the files.
package oracle

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"gopkg.in/yaml.v3"
)

// Case is one expectation: a type of Size bytes against Constraint.
type Case struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"` // informational, e.g. "[5]byte"
	Size        int64  `yaml:"size"`
	Constraint  string `yaml:"constraint"`
	Expect      bool   `yaml:"expect"`
}

// Group is the content of one YAML file.
type Group struct {
	Name  string // file name
	Cases []Case `yaml:"cases"`
}

// Evaluator decides a case. An error fails the case regardless of Expect.
type Evaluator func(c Case) (bool, error)

// Suite is every group read from a directory.
type Suite struct {
	groups   []*Group
	backings map[*Group]*groupBacking
	mu       sync.Mutex
}

type groupBacking struct {
	path      string
	root      *yaml.Node
	caseNodes []*yaml.Node
}

// Read loads every .yaml/.yml file under dir.
func Read(dir string) (*Suite, error) {
	suite := &Suite{
		backings: make(map[*Group]*groupBacking),
	}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		var root yaml.Node
		if err := yaml.Unmarshal(content, &root); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		if len(root.Content) == 0 {
			return fmt.Errorf("%s: empty yaml", path)
		}

		casesNode, err := locateCasesNode(root.Content[0])
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		group := &Group{Name: filepath.Base(path)}
		if err := casesNode.Decode(&group.Cases); err != nil {
			return fmt.Errorf("%s: decode cases: %w", path, err)
		}
		if len(casesNode.Content) != len(group.Cases) {
			return fmt.Errorf("%s: cases count mismatch between yaml node and struct", path)
		}

		suite.groups = append(suite.groups, group)
		suite.backings[group] = &groupBacking{
			path:      path,
			root:      &root,
			caseNodes: casesNode.Content,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(suite.groups) == 0 {
		return nil, fmt.Errorf("no yaml files under %s", dir)
	}
	return suite, nil
}

// Groups returns the loaded groups in directory order.
func (s *Suite) Groups() []*Group {
	return s.groups
}

// Run evaluates every case as a subtest.
func (s *Suite) Run(t *testing.T, eval Evaluator) {
	s.RunWithUpdate(t, false, eval)
}

// RunWithUpdate evaluates every case; with update=true mismatching
// expectations are rewritten in place instead of failing.
func (s *Suite) RunWithUpdate(t *testing.T, update bool, eval Evaluator) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, group := range s.groups {
		g := group
		t.Run(g.Name, func(t *testing.T) {
			changed := false
			for i := range g.Cases {
				name := g.Cases[i].Name
				if name == "" {
					name = fmt.Sprintf("Case-%d", i)
				}
				idx := i
				t.Run(name, func(t *testing.T) {
					if s.runSingleCase(t, g, idx, update, eval) {
						changed = true
					}
				})
			}
			if update && changed {
				if err := s.persistGroup(g); err != nil {
					t.Fatalf("persist %s: %v", s.backings[g].path, err)
				}
				fmt.Printf("oracle: updated %s\n", s.backings[g].path)
			}
		})
	}
}

func (s *Suite) runSingleCase(t *testing.T, group *Group, idx int, update bool, eval Evaluator) bool {
	c := &group.Cases[idx]
	got, err := eval(*c)
	if err != nil {
		t.Errorf("%s: %v", c.Constraint, err)
		return false
	}
	if got == c.Expect {
		return false
	}
	if !update {
		t.Errorf("%s (%d bytes) against %s: got %v, want %v", c.Type, c.Size, c.Constraint, got, c.Expect)
		return false
	}

	c.Expect = got
	setBoolScalar(ensureMapValue(s.backings[group].caseNodes[idx], "expect"), got)
	return true
}

func (s *Suite) persistGroup(group *Group) error {
	backing := s.backings[group]
	if backing == nil {
		return fmt.Errorf("no yaml backing for group %s", group.Name)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(backing.root.Content[0]); err != nil {
		enc.Close()
		return err
	}
	enc.Close()
	return os.WriteFile(backing.path, buf.Bytes(), 0o644)
}

func locateCasesNode(doc *yaml.Node) (*yaml.Node, error) {
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		doc = doc.Content[0]
	}
	switch doc.Kind {
	case yaml.MappingNode:
		if val := findMapValue(doc, "cases"); val != nil {
			if val.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("cases must be a sequence")
			}
			return val, nil
		}
		return nil, fmt.Errorf("missing 'cases' key")
	case yaml.SequenceNode:
		return doc, nil
	default:
		return nil, fmt.Errorf("unsupported top-level yaml kind: %v", doc.Kind)
	}
}

func findMapValue(mapNode *yaml.Node, key string) *yaml.Node {
	if mapNode.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value == key {
			return mapNode.Content[i+1]
		}
	}
	return nil
}

func ensureMapValue(mapNode *yaml.Node, key string) *yaml.Node {
	if mapNode.Kind != yaml.MappingNode {
		mapNode.Kind = yaml.MappingNode
		mapNode.Content = nil
	}
	if val := findMapValue(mapNode, key); val != nil {
		return val
	}
	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	valNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "false"}
	mapNode.Content = append(mapNode.Content, keyNode, valNode)
	return valNode
}

func setBoolScalar(node *yaml.Node, val bool) {
	node.Kind = yaml.ScalarNode
	node.Tag = "!!bool"
	node.Style = 0
	node.Value = fmt.Sprintf("%t", val)
}
