package bt

import (
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/behaviourtree/internal/core/observability/log"
)

// DefaultTreeName is used when a tree is created without a name.
const DefaultTreeName = "Tree"

// BehaviourTree is the root of a tree. Ticking it ticks the top-level child
// under its cursor; it has no aggregation policy of its own, so several
// top-level goals should be wrapped in an explicit Sequence or Selector.
type BehaviourTree struct {
	compositeNode
}

var _ Composite = (*BehaviourTree)(nil)

// NewTree creates an empty root.
func NewTree(name string, opts ...Option) *BehaviourTree {
	if name == "" {
		name = DefaultTreeName
	}
	return &BehaviourTree{compositeNode: newCompositeNode(name, opts...)}
}

func (t *BehaviourTree) Tick() Status {
	child, ok := t.cursorChild("BehaviourTree")
	if !ok {
		return t.report(StatusFailure)
	}
	t.logger.Debug("tick", log.String("tree", t.name), log.String("child", child.Name()))
	return t.report(child.Tick())
}

// SetLogger installs l as the diagnostic sink of every node in the tree.
// Nodes added afterwards keep their own sink.
func (t *BehaviourTree) SetLogger(l log.Log) {
	if l == nil {
		l = log.NewNop()
	}
	Walk(t, func(n Node, _ int) bool {
		if ln, ok := n.(loggable); ok {
			ln.setLogger(l)
		}
		return true
	})
}

// Walk visits the tree in pre-order.
func (t *BehaviourTree) Walk(fn func(n Node, depth int) bool) { Walk(t, fn) }

// Outline returns one line per node in pre-order: depth dashes followed by
// the node name.
func (t *BehaviourTree) Outline() []string { return Outline(t) }

// Dump renders the outline as newline-joined text. It does not tick and
// leaves every cursor untouched.
func (t *BehaviourTree) Dump() string { return Dump(t) }

// Fingerprint hashes the outline. Trees with the same shape and names share
// a fingerprint.
func (t *BehaviourTree) Fingerprint() uint64 { return Fingerprint(t) }

type nodeLevel struct {
	node  Node
	depth int
}

// Walk performs an iterative depth-first pre-order traversal starting at
// root, calling fn with each node and its depth. Children are visited in
// declaration order. Returning false from fn stops the walk.
func Walk(root Node, fn func(n Node, depth int) bool) {
	if root == nil {
		return
	}
	stack := []nodeLevel{{node: root}}
	for len(stack) > 0 {
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(next.node, next.depth) {
			return
		}
		children := next.node.Children()
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, nodeLevel{node: children[i], depth: next.depth + 1})
		}
	}
}

// Outline renders the subtree rooted at root, one line per node.
func Outline(root Node) []string {
	var lines []string
	Walk(root, func(n Node, depth int) bool {
		lines = append(lines, strings.Repeat("-", depth)+n.Name())
		return true
	})
	return lines
}

// Dump joins Outline with newlines.
func Dump(root Node) string {
	return strings.Join(Outline(root), "\n")
}

// Fingerprint returns the xxhash of Dump.
func Fingerprint(root Node) uint64 {
	return xxhash.Sum64String(Dump(root))
}
