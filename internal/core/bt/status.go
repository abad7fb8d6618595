package bt

// Status is the result of a single tick.
// The zero value means the node has not been ticked yet.
type Status int

const (
	StatusSuccess Status = iota + 1
	StatusFailure
	StatusRunning
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusFailure:
		return "Failure"
	case StatusRunning:
		return "Running"
	default:
		return "Invalid"
	}
}

// Terminal reports whether s concludes the current pass through a node.
func (s Status) Terminal() bool { return s == StatusSuccess || s == StatusFailure }
