// Package eventbus fans selection and probe events out to in-process handlers.
package eventbus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/bnema/edgeselect/internal/adapters/out/telemetry"
	"github.com/bnema/edgeselect/internal/boundaries/out"
	"github.com/bnema/edgeselect/internal/domain"
)

const (
	defaultBufferSize     = 100
	defaultHandlerTimeout = 10 * time.Second
	stopTimeout           = 5 * time.Second
)

var (
	// ErrStopped is returned by Publish once Stop was called.
	ErrStopped = errors.New("event bus stopped")
	// ErrBufferFull is returned when the event could not be queued.
	ErrBufferFull = errors.New("event buffer full")
	// ErrUnknownHandler is returned by Unsubscribe for a handler never subscribed.
	ErrUnknownHandler = errors.New("handler not subscribed")
)

var _ out.EventBus = (*InMemory)(nil)

// InMemory queues events on a buffered channel and delivers them to matching
// handlers from a single goroutine, in publish order. Publish never waits:
// a full buffer drops the event.
type InMemory struct {
	mu       sync.RWMutex
	handlers []out.EventHandler
	metrics  *telemetry.Metrics

	queue          chan domain.Event
	stopped        chan struct{}
	done           chan struct{}
	stopOnce       sync.Once
	handlerTimeout time.Duration
	now            func() time.Time
	log            zerowrap.Logger
}

// NewInMemory creates a bus holding up to bufferSize undelivered events.
func NewInMemory(bufferSize int, log zerowrap.Logger) *InMemory {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}

	return &InMemory{
		queue:          make(chan domain.Event, bufferSize),
		stopped:        make(chan struct{}),
		done:           make(chan struct{}),
		handlerTimeout: defaultHandlerTimeout,
		now:            time.Now,
		log:            log,
	}
}

// SetMetrics counts delivered and dropped events. Call before Start.
func (bus *InMemory) SetMetrics(m *telemetry.Metrics) {
	bus.mu.Lock()
	bus.metrics = m
	bus.mu.Unlock()
}

// Publish queues an event carrying payload. The event hostname is taken from
// the payload: the new host for selection changes, the old one for clears.
func (bus *InMemory) Publish(eventType domain.EventType, payload any) error {
	event := domain.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: bus.now(),
		Hostname:  hostOf(payload),
		Data:      payload,
	}

	select {
	case <-bus.stopped:
		return ErrStopped
	default:
	}

	log := bus.logger(event)

	select {
	case bus.queue <- event:
		log.Trace().Msg("event queued")
		return nil
	default:
		log.Warn().Int("buffer_size", cap(bus.queue)).Msg("event buffer full, dropping event")
		bus.count(event.Type, func(m *telemetry.Metrics) metric.Int64Counter { return m.EventsDropped })
		return fmt.Errorf("%w: %s", ErrBufferFull, event.Type)
	}
}

// Subscribe registers handler for every future event it can handle.
func (bus *InMemory) Subscribe(handler out.EventHandler) error {
	bus.mu.Lock()
	bus.handlers = append(bus.handlers, handler)
	n := len(bus.handlers)
	bus.mu.Unlock()

	bus.log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "eventbus").
		Str(zerowrap.FieldHandler, fmt.Sprintf("%T", handler)).
		Int(zerowrap.FieldCount, n).
		Msg("event handler subscribed")
	return nil
}

// Unsubscribe removes handler.
func (bus *InMemory) Unsubscribe(handler out.EventHandler) error {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	for i, h := range bus.handlers {
		if h == handler {
			bus.handlers = append(bus.handlers[:i], bus.handlers[i+1:]...)
			return nil
		}
	}
	return ErrUnknownHandler
}

// Start launches the delivery loop.
func (bus *InMemory) Start() error {
	go bus.run()
	return nil
}

// Stop ends delivery. Events still queued are discarded.
func (bus *InMemory) Stop() error {
	bus.stopOnce.Do(func() { close(bus.stopped) })

	select {
	case <-bus.done:
		return nil
	case <-time.After(stopTimeout):
		return fmt.Errorf("event bus did not stop within %s", stopTimeout)
	}
}

func (bus *InMemory) run() {
	defer close(bus.done)

	for {
		select {
		case <-bus.stopped:
			return
		case event := <-bus.queue:
			bus.deliver(event)
		}
	}
}

func (bus *InMemory) deliver(event domain.Event) {
	bus.mu.RLock()
	handlers := append([]out.EventHandler(nil), bus.handlers...)
	bus.mu.RUnlock()

	for _, h := range handlers {
		if !h.CanHandle(event.Type) {
			continue
		}
		bus.dispatch(h, event)
	}
}

// dispatch runs one handler under the handler timeout. A handler that
// overruns is abandoned, not waited for.
func (bus *InMemory) dispatch(h out.EventHandler, event domain.Event) {
	log := bus.logger(event).With().Str(zerowrap.FieldHandler, fmt.Sprintf("%T", h)).Logger()

	ctx, cancel := context.WithTimeout(zerowrap.WithCtx(context.Background(), bus.log), bus.handlerTimeout)
	defer cancel()

	result := make(chan error, 1)
	go func() { result <- h.Handle(ctx, event) }()

	select {
	case err := <-result:
		if err != nil {
			log.Error().Err(err).Msg("event handler failed")
			return
		}
		bus.count(event.Type, func(m *telemetry.Metrics) metric.Int64Counter { return m.EventsProcessed })
	case <-ctx.Done():
		log.Warn().Dur("timeout", bus.handlerTimeout).Msg("event handler timed out")
	}
}

func (bus *InMemory) logger(event domain.Event) zerolog.Logger {
	return bus.log.With().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "eventbus").
		Str("event_id", event.ID).
		Str(zerowrap.FieldEvent, string(event.Type)).
		Str(zerowrap.FieldHost, event.Hostname).
		Logger()
}

func (bus *InMemory) count(eventType domain.EventType, counter func(*telemetry.Metrics) metric.Int64Counter) {
	bus.mu.RLock()
	m := bus.metrics
	bus.mu.RUnlock()

	if m == nil {
		return
	}
	counter(m).Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("event_type", string(eventType)),
	))
}

func hostOf(payload any) string {
	switch p := payload.(type) {
	case domain.SelectionChangedPayload:
		if p.Current != nil {
			return p.Current.Hostname
		}
		if p.Previous != nil {
			return p.Previous.Hostname
		}
	case domain.ProbeTransitionPayload:
		return p.Hostname
	}
	return ""
}
