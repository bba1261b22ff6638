package session

// State is the lifecycle state of a single streaming run.
//
//	Idle -> Connecting -> Streaming -> AwaitingResponse -> Completed
//	            |             |               |
//	            +-------------+---------------+-----------> Failed
type State int

const (
	StateIdle State = iota
	StateConnecting
	StateStreaming
	StateAwaitingResponse
	StateCompleted
	StateFailed
)

var stateNames = map[State]string{
	StateIdle:             "idle",
	StateConnecting:       "connecting",
	StateStreaming:        "streaming",
	StateAwaitingResponse: "awaiting-response",
	StateCompleted:        "completed",
	StateFailed:           "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further transition is possible
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}

// validTransition reports whether the state machine may move from s to next.
// States are never re-entered.
func (s State) validTransition(next State) bool {
	switch s {
	case StateIdle:
		return next == StateConnecting
	case StateConnecting:
		return next == StateStreaming || next == StateFailed
	case StateStreaming:
		return next == StateAwaitingResponse || next == StateFailed
	case StateAwaitingResponse:
		return next == StateCompleted || next == StateFailed
	default:
		return false
	}
}
