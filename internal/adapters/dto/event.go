package dto

import (
	"time"

	"github.com/bnema/edgeselect/internal/domain"
)

// Event is the wire form of a published event.
type Event struct {
	ID        string    `json:"id" yaml:"id"`
	Type      string    `json:"type" yaml:"type"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Hostname  string    `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	Previous  string    `json:"previous,omitempty" yaml:"previous,omitempty"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
	Healthy   *bool     `json:"healthy,omitempty" yaml:"healthy,omitempty"`
}

// EventsResponse lists recent events.
type EventsResponse struct {
	Events []Event `json:"events" yaml:"events"`
}

// FromEvent converts a domain event.
func FromEvent(e domain.Event) Event {
	out := Event{
		ID:        e.ID,
		Type:      string(e.Type),
		Timestamp: e.Timestamp,
		Hostname:  e.Hostname,
	}

	switch p := e.Data.(type) {
	case domain.SelectionChangedPayload:
		out.Reason = string(p.Reason)
		if p.Previous != nil {
			out.Previous = p.Previous.Hostname
		}
	case domain.ProbeTransitionPayload:
		healthy := p.Healthy
		out.Reason = string(p.Reason)
		out.Healthy = &healthy
	}
	return out
}

// FromEvents converts a list of events.
func FromEvents(es []domain.Event) []Event {
	out := make([]Event, 0, len(es))
	for _, e := range es {
		out = append(out, FromEvent(e))
	}
	return out
}
