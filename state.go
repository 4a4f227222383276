package asynckit

// State identifies where a future is in its lifecycle.
// StatePending is the initial state; the other three are terminal and
// mutually exclusive. A future transitions at most once, from pending to
// exactly one terminal state.
type State int32

const (
	StatePending State = iota
	StateSucceeded
	StateFailed
	StateCancelled
)

// Terminal reports whether the state is one of the three terminal states.
func (s State) Terminal() bool {
	return s != StatePending
}

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
