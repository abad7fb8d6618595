package bt

// Sequence succeeds when every child has succeeded, left to right.
//
// Each tick advances the cursor by at most one child. A Running child is
// ticked again on the next call. On Failure the cursor stays on the failed
// child, so the next pass resumes there instead of at the first child.
type Sequence struct {
	compositeNode
}

var _ Composite = (*Sequence)(nil)

func NewSequence(name string, opts ...Option) *Sequence {
	return &Sequence{compositeNode: newCompositeNode(name, opts...)}
}

func (s *Sequence) Tick() Status {
	child, ok := s.cursorChild("Sequence")
	if !ok {
		return s.report(StatusFailure)
	}

	switch child.Tick() {
	case StatusRunning:
		return s.report(StatusRunning)
	case StatusSuccess:
	default:
		return s.report(StatusFailure)
	}

	s.current++
	if s.current >= len(s.children) {
		s.current = 0
		return s.report(StatusSuccess)
	}
	return s.report(StatusRunning)
}
