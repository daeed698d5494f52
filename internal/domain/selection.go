package domain

import "time"

// Selection is the candidate currently bound to the session.
type Selection struct {
	Candidate Candidate
	BoundAt   time.Time
}

// BindingState is the lifecycle state of the session binding.
type BindingState string

const (
	BindingIdle      BindingState = "idle"
	BindingResolving BindingState = "resolving"
	BindingBound     BindingState = "bound"
)

// SessionSnapshot is a point-in-time view of the session binding.
type SessionSnapshot struct {
	State     BindingState
	Selection *Selection
	LastError string
}
