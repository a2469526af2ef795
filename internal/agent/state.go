package agent

// State is a step of the review state machine.
type State int

const (
	StateStart State = iota
	StateConfigured
	StateFetched
	StateGenerated
	StatePublished
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateConfigured:
		return "configured"
	case StateFetched:
		return "fetched"
	case StateGenerated:
		return "generated"
	case StatePublished:
		return "published"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition can happen from s.
func (s State) Terminal() bool {
	return s == StatePublished || s == StateFailed
}
