package lifecycle

// State is a stage in the life of a loader.
//
// Loaders move through
// Disconnected -> Connected -> Writing -> Committed|Failed -> Closed.
// Closed is reached from any state, the connection is always released.
type State int

const (
	StateDisconnected State = iota
	StateConnected
	StateWriting
	StateCommitted
	StateFailed
	StateClosed
)

var stateNames = map[State]string{
	StateDisconnected: "disconnected",
	StateConnected:    "connected",
	StateWriting:      "writing",
	StateCommitted:    "committed",
	StateFailed:       "failed",
	StateClosed:       "closed",
}

func (s State) String() string {
	if res, ok := stateNames[s]; ok {
		return res
	}
	return "unknown"
}
