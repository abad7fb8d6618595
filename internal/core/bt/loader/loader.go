package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/behaviourtree/internal/core/bt"
)

// LoadJSON decodes a definition from JSON.
func LoadJSON(r io.Reader) (*Definition, error) {
	var d Definition
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return &d, nil
}

// LoadYAML decodes a definition from YAML.
func LoadYAML(r io.Reader) (*Definition, error) {
	var d Definition
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return &d, nil
}

// LoadFile picks the decoder from the file extension: .json is JSON,
// everything else is YAML.
func LoadFile(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSON(f)
	}
	return LoadYAML(f)
}

// Build validates the definition and assembles the tree. Options are
// applied to every node.
func (d *Definition) Build(reg Registry, opts ...bt.Option) (*bt.BehaviourTree, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definition: %w", err)
	}
	tree := bt.NewTree(d.Name, opts...)
	for _, child := range d.Children {
		node, err := buildNode(child, reg, opts)
		if err != nil {
			return nil, err
		}
		tree.AddChild(node)
	}
	return tree, nil
}

func buildNode(def *NodeDefinition, reg Registry, opts []bt.Option) (bt.Node, error) {
	var composite bt.Composite
	switch def.kind() {
	case TypeLeaf:
		return buildLeaf(def, reg, opts)
	case TypeSequence:
		composite = bt.NewSequence(def.Name, opts...)
	case TypeSelector:
		composite = bt.NewSelector(def.Name, opts...)
	default:
		composite = bt.NewNode(def.Name, opts...)
	}

	for _, child := range def.Children {
		node, err := buildNode(child, reg, opts)
		if err != nil {
			return nil, err
		}
		composite.AddChild(node)
	}
	return composite, nil
}

func buildLeaf(def *NodeDefinition, reg Registry, opts []bt.Option) (bt.Node, error) {
	if def.Disabled || def.Action == "" {
		return bt.NewLeaf(def.Name, nil, opts...), nil
	}
	if reg == nil {
		return nil, fmt.Errorf("leaf %s: %w: %s", def.Name, ErrUnknownAction, def.Action)
	}
	fn, err := reg.New(def.Action, def.Params)
	if err != nil {
		return nil, fmt.Errorf("leaf %s: %w", def.Name, err)
	}
	return bt.NewLeaf(def.Name, fn, opts...), nil
}
