package domain

import "time"

// EventType defines the type of event that occurred.
type EventType string

const (
	EventSelectionBound   EventType = "selection.bound"
	EventSelectionCleared EventType = "selection.cleared"
	EventProbeTransition  EventType = "probe.transition"
)

// Event represents a domain event that occurred in the system.
type Event struct {
	ID        string
	Type      EventType
	Timestamp time.Time
	Hostname  string
	Data      any
}

// ChangeReason explains why the selection changed.
type ChangeReason string

const (
	ChangeInitial    ChangeReason = "initial"
	ChangeRefresh    ChangeReason = "refresh"
	ChangeRevalidate ChangeReason = "revalidate"
	ChangeOverride   ChangeReason = "override"
	ChangeExhausted  ChangeReason = "exhausted"
)

// SelectionChangedPayload contains data for selection.* events.
type SelectionChangedPayload struct {
	Previous *Candidate
	Current  *Candidate
	Reason   ChangeReason
}

// ProbeTransitionPayload contains data for probe.transition events.
type ProbeTransitionPayload struct {
	Hostname string
	Healthy  bool
	Reason   ProbeReason
}
