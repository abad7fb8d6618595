package bt

import (
	"github.com/zeusync/behaviourtree/internal/core/observability/log"
)

// compositeNode adds child management on top of baseNode. Leaf embeds
// baseNode directly so it cannot accept children.
type compositeNode struct {
	baseNode
}

func newCompositeNode(name string, opts ...Option) compositeNode {
	return compositeNode{baseNode: newBaseNode(name, opts...)}
}

func (c *compositeNode) AddChild(child Node) {
	if child == nil {
		return
	}
	c.children = append(c.children, child)
}

// cursorChild returns the child under the cursor. On an empty child list or
// an out-of-range cursor it logs the misuse and returns false; callers
// degrade to Failure.
func (c *compositeNode) cursorChild(kind string) (Node, bool) {
	if len(c.children) == 0 {
		c.logger.Error("composite ticked without children",
			log.String("node", c.name),
			log.String("kind", kind),
		)
		return nil, false
	}
	if c.current < 0 || c.current >= len(c.children) {
		c.logger.Error("cursor out of range",
			log.String("node", c.name),
			log.String("kind", kind),
			log.Int("cursor", c.current),
			log.Int("children", len(c.children)),
		)
		return nil, false
	}
	return c.children[c.current], true
}
