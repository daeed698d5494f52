package out

import (
	"context"

	"github.com/bnema/edgeselect/internal/domain"
)

// EventHandler reacts to selection and probe events delivered by the bus.
type EventHandler interface {
	Handle(ctx context.Context, event domain.Event) error
	// CanHandle filters which event types reach Handle.
	CanHandle(eventType domain.EventType) bool
}

// EventPublisher emits selection.* and probe.transition events.
// Publish must not block on slow handlers.
type EventPublisher interface {
	Publish(eventType domain.EventType, payload any) error
}

// EventBus fans published events out to subscribed handlers between Start
// and Stop.
type EventBus interface {
	EventPublisher
	Subscribe(handler EventHandler) error
	Unsubscribe(handler EventHandler) error
	Start() error
	Stop() error
}
