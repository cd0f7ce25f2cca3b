package parcel

import "time"

// Snapshot is the part of a parcel the transition rules look at.
type Snapshot struct {
	Status               Status
	LaunchDate           time.Time
	EstimatedArrivalDate time.Time
}

// StatusDecision is the outcome of validating a requested status change.
//
// NewStatus always holds the parsed request, even when Valid is false, so
// callers can log what was attempted; it is Unknown when the request did not
// name a status. Reason is empty for accepted transitions and is otherwise
// surfaced to API callers verbatim.
type StatusDecision struct {
	Valid     bool
	Reason    string
	NewStatus Status
}
