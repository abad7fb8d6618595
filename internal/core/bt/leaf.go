package bt

import (
	"github.com/zeusync/behaviourtree/internal/core/observability/log"
)

// TickFunc is a domain behaviour bound to a Leaf. It runs synchronously on
// the ticking goroutine and must return promptly.
type TickFunc func() Status

// Leaf bridges the tree to host behaviour. It has no children.
type Leaf struct {
	baseNode
	fn     TickFunc
	warned bool
}

var _ Node = (*Leaf)(nil)

// NewLeaf creates a leaf bound to fn. A nil fn gives an unwired leaf that
// always fails.
func NewLeaf(name string, fn TickFunc, opts ...Option) *Leaf {
	return &Leaf{baseNode: newBaseNode(name, opts...), fn: fn}
}

// Bound reports whether a behaviour is attached.
func (l *Leaf) Bound() bool { return l.fn != nil }

func (l *Leaf) Tick() Status {
	if l.fn == nil {
		if !l.warned {
			l.logger.Warn("leaf has no behaviour bound", log.String("node", l.name))
			l.warned = true
		}
		return l.report(StatusFailure)
	}
	return l.report(l.fn())
}
