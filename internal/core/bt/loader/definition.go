package loader

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyName         = errors.New("node name is required")
	ErrUnknownNodeType   = errors.New("unknown node type")
	ErrUnknownAction     = errors.New("unknown action")
	ErrLeafWithChildren  = errors.New("leaf cannot have children")
	ErrDisabledComposite = errors.New("only leaves can be disabled")
)

// Node types accepted in definitions. Matching is case-insensitive.
const (
	TypeNode     = "node"
	TypeSequence = "sequence"
	TypeSelector = "selector"
	TypeLeaf     = "leaf"
)

// Definition describes a whole tree. Children become the root's top-level
// children in declaration order.
type Definition struct {
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Children    []*NodeDefinition `json:"children" yaml:"children"`
}

// NodeDefinition describes one node and its subtree.
type NodeDefinition struct {
	Name     string            `json:"name" yaml:"name"`
	Type     string            `json:"type" yaml:"type"`
	Action   string            `json:"action,omitempty" yaml:"action,omitempty"`
	Params   map[string]any    `json:"params,omitempty" yaml:"params,omitempty"`
	Children []*NodeDefinition `json:"children,omitempty" yaml:"children,omitempty"`
	// Disabled builds a leaf without its action. Composites reject it.
	Disabled bool              `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// Validate checks names and node types, that leaves carry no children and
// that only leaves are disabled.
// It does not judge the shape of the tree: empty composites are accepted
// and fail at tick time.
func (d *Definition) Validate() error {
	for i, child := range d.Children {
		if err := child.Validate(); err != nil {
			return fmt.Errorf("child %d: %w", i, err)
		}
	}
	return nil
}

func (n *NodeDefinition) Validate() error {
	if n == nil {
		return fmt.Errorf("nil node: %w", ErrEmptyName)
	}
	if strings.TrimSpace(n.Name) == "" {
		return ErrEmptyName
	}

	kind := n.kind()
	switch kind {
	case TypeNode, TypeSequence, TypeSelector:
		if n.Disabled {
			return fmt.Errorf("%s: %w", n.Name, ErrDisabledComposite)
		}
	case TypeLeaf:
		if len(n.Children) > 0 {
			return fmt.Errorf("%s: %w", n.Name, ErrLeafWithChildren)
		}
	default:
		return fmt.Errorf("%s: %w: %q", n.Name, ErrUnknownNodeType, n.Type)
	}

	for i, child := range n.Children {
		if err := child.Validate(); err != nil {
			return fmt.Errorf("%s child %d: %w", n.Name, i, err)
		}
	}
	return nil
}

func (n *NodeDefinition) kind() string {
	return strings.ToLower(strings.TrimSpace(n.Type))
}
