package bt

// Selector succeeds as soon as one child succeeds, trying children in order.
//
// A failing child moves the cursor to the next sibling and the selector
// reports Running; the sibling is tried on the next tick. The cursor returns
// to 0 on Success and once every child has failed.
type Selector struct {
	compositeNode
}

var _ Composite = (*Selector)(nil)

func NewSelector(name string, opts ...Option) *Selector {
	return &Selector{compositeNode: newCompositeNode(name, opts...)}
}

func (s *Selector) Tick() Status {
	child, ok := s.cursorChild("Selector")
	if !ok {
		return s.report(StatusFailure)
	}

	switch child.Tick() {
	case StatusRunning:
		return s.report(StatusRunning)
	case StatusSuccess:
		s.current = 0
		return s.report(StatusSuccess)
	}

	s.current++
	if s.current >= len(s.children) {
		s.current = 0
		return s.report(StatusFailure)
	}
	return s.report(StatusRunning)
}
