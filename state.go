package pictriage

// AppState represents the current top-level view of the application.
type AppState int

const (
	// StateSorting is the main triage view.
	StateSorting AppState = iota
	// StateQueue is the queue list, toggled over the sorting view.
	StateQueue
	// StateComplete is shown once every image has been dispatched.
	StateComplete
)

// String returns the string representation of the state.
func (s AppState) String() string {
	switch s {
	case StateSorting:
		return "Sorting"
	case StateQueue:
		return "Queue"
	case StateComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}
