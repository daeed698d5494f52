package session

import (
	"context"
	"sync"

	"github.com/bnema/zerowrap"

	"github.com/bnema/edgeselect/internal/boundaries/out"
	"github.com/bnema/edgeselect/internal/domain"
)

// DefaultHistorySize is the number of events kept by a History.
const DefaultHistorySize = 100

var _ out.EventHandler = (*History)(nil)

// History keeps the most recent selection and probe transition events.
type History struct {
	mu      sync.RWMutex
	entries []domain.Event
	next    int
	full    bool
}

// NewHistory creates a history holding up to size events.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{entries: make([]domain.Event, size)}
}

// Handle records event.
func (h *History) Handle(ctx context.Context, event domain.Event) error {
	log := zerowrap.FromCtx(ctx)
	log.Debug().
		Str(zerowrap.FieldHandler, "History").
		Str(zerowrap.FieldEvent, string(event.Type)).
		Str(zerowrap.FieldHost, event.Hostname).
		Msg("event recorded")

	h.mu.Lock()
	h.entries[h.next] = event
	h.next = (h.next + 1) % len(h.entries)
	if h.next == 0 {
		h.full = true
	}
	h.mu.Unlock()
	return nil
}

// CanHandle returns whether this handler can handle the given event type.
func (h *History) CanHandle(eventType domain.EventType) bool {
	switch eventType {
	case domain.EventSelectionBound, domain.EventSelectionCleared, domain.EventProbeTransition:
		return true
	}
	return false
}

// Entries returns recorded events, oldest first.
func (h *History) Entries() []domain.Event {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if !h.full {
		return append([]domain.Event(nil), h.entries[:h.next]...)
	}
	out := make([]domain.Event, 0, len(h.entries))
	out = append(out, h.entries[h.next:]...)
	return append(out, h.entries[:h.next]...)
}
