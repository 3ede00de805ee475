package constants

// Flight statuses form a closed set with an explicit transition table.
// Arrived and Cancelled are terminal; a flight only reaches Arrived
// through Departed.
const (
	StatusScheduled = "Scheduled"
	StatusDelayed   = "Delayed"
	StatusDeparted  = "Departed"
	StatusArrived   = "Arrived"
	StatusCancelled = "Cancelled"
)

var statusTransitions = map[string][]string{
	StatusScheduled: {StatusDelayed, StatusDeparted, StatusCancelled},
	StatusDelayed:   {StatusDelayed, StatusDeparted, StatusCancelled},
	StatusDeparted:  {StatusArrived},
	StatusArrived:   {},
	StatusCancelled: {},
}

// KnownStatus reports whether s is one of the recognized flight statuses.
func KnownStatus(s string) bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransition reports whether a flight may move from one status to
// another. Setting the same status again is a permitted no-op.
func CanTransition(from, to string) bool {
	if from == to {
		return KnownStatus(from)
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
