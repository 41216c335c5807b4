package watcher

// State is the state of one artifact expectation.
//
//	waiting -> found      (matching file event or delivered path)
//	waiting -> timed_out  (retries exhausted or caller gone)
//
// found and timed_out are terminal.
type State string

const (
	// StateWaiting indicates no matching file has been seen yet.
	StateWaiting State = "waiting"

	// StateFound indicates a matching file appeared in the output directory.
	StateFound State = "found"

	// StateTimedOut indicates the wait ended without a matching file.
	StateTimedOut State = "timed_out"
)

// AllStates returns all expectation states.
func AllStates() []State {
	return []State{StateWaiting, StateFound, StateTimedOut}
}

// IsValid returns true if the state is a valid State value.
func (s State) IsValid() bool {
	switch s {
	case StateWaiting, StateFound, StateTimedOut:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if the state cannot change anymore.
func (s State) IsTerminal() bool {
	return s == StateFound || s == StateTimedOut
}

// CanTransitionTo returns true if moving from s to target is allowed.
func (s State) CanTransitionTo(target State) bool {
	return s == StateWaiting && target.IsTerminal()
}

// String implements fmt.Stringer.
func (s State) String() string {
	return string(s)
}
