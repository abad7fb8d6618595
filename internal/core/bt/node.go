package bt

import (
	"github.com/zeusync/behaviourtree/internal/core/observability/log"
)

// Node is a single element of a behaviour tree.
type Node interface {
	// Tick advances the node by at most one logical step.
	Tick() Status

	// Name returns the diagnostic label given at construction.
	Name() string

	// Children returns the ordered child list. Callers must not modify it.
	Children() []Node

	// CurrentChild returns the cursor the node resumes from on the next tick.
	CurrentChild() int

	// CurrentStatus returns the status reported by the last tick.
	CurrentStatus() Status

	// Reset rewinds the node and its subtree to the state it had before the first tick.
	Reset()
}

// Composite is a node that owns children. Leaves do not implement it.
type Composite interface {
	Node

	// AddChild appends child and takes ownership of it.
	// Children must only be added before the tree starts ticking.
	AddChild(child Node)
}

// Option configures a node at construction time.
type Option func(*baseNode)

// WithLogger sets the diagnostic sink used to report structural misuse.
func WithLogger(l log.Log) Option {
	return func(b *baseNode) {
		if l != nil {
			b.logger = l
		}
	}
}

type loggable interface {
	setLogger(l log.Log)
}

// baseNode holds the state shared by every node kind: the child list,
// the cursor persisting between ticks and the last reported status.
type baseNode struct {
	name     string
	children []Node
	current  int
	status   Status
	logger   log.Log
}

func newBaseNode(name string, opts ...Option) baseNode {
	b := baseNode{name: name, logger: log.NewNop()}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b *baseNode) Name() string          { return b.name }
func (b *baseNode) Children() []Node      { return b.children }
func (b *baseNode) CurrentChild() int     { return b.current }
func (b *baseNode) CurrentStatus() Status { return b.status }

func (b *baseNode) Reset() {
	b.current = 0
	b.status = 0
	for _, ch := range b.children {
		ch.Reset()
	}
}

func (b *baseNode) setLogger(l log.Log) { b.logger = l }

// report records st as the last status and returns it.
func (b *baseNode) report(st Status) Status {
	b.status = st
	return st
}

// PassNode is a structural placeholder: it re-ticks the child under its
// cursor and reports that child's status verbatim.
type PassNode struct {
	compositeNode
}

var _ Composite = (*PassNode)(nil)

// NewNode creates a pass-through node.
func NewNode(name string, opts ...Option) *PassNode {
	return &PassNode{compositeNode: newCompositeNode(name, opts...)}
}

func (n *PassNode) Tick() Status {
	child, ok := n.cursorChild("Node")
	if !ok {
		return n.report(StatusFailure)
	}
	return n.report(child.Tick())
}
