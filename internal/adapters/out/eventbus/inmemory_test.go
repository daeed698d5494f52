package eventbus

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/edgeselect/internal/domain"
)

type recordingHandler struct {
	mu     sync.Mutex
	types  map[domain.EventType]bool
	events []domain.Event
	got    chan struct{}
}

func newRecordingHandler(types ...domain.EventType) *recordingHandler {
	h := &recordingHandler{types: map[domain.EventType]bool{}, got: make(chan struct{}, 10)}
	for _, t := range types {
		h.types[t] = true
	}
	return h
}

func (h *recordingHandler) Handle(_ context.Context, event domain.Event) error {
	h.mu.Lock()
	h.events = append(h.events, event)
	h.mu.Unlock()
	h.got <- struct{}{}
	return nil
}

func (h *recordingHandler) CanHandle(t domain.EventType) bool {
	return h.types[t]
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestInMemory_PublishDeliversToMatchingHandler(t *testing.T) {
	bus := NewInMemory(10, zerowrap.Default())
	require.NoError(t, bus.Start())
	defer bus.Stop()

	selection := newRecordingHandler(domain.EventSelectionBound)
	other := newRecordingHandler(domain.EventProbeTransition)
	require.NoError(t, bus.Subscribe(selection))
	require.NoError(t, bus.Subscribe(other))

	c := domain.Candidate{Hostname: "cdn.example", Priority: 1}
	require.NoError(t, bus.Publish(domain.EventSelectionBound, domain.SelectionChangedPayload{Current: &c, Reason: domain.ChangeInitial}))

	waitFor(t, selection.got)

	selection.mu.Lock()
	defer selection.mu.Unlock()
	require.Len(t, selection.events, 1)
	assert.Equal(t, "cdn.example", selection.events[0].Hostname)
	assert.NotEmpty(t, selection.events[0].ID)

	other.mu.Lock()
	assert.Empty(t, other.events)
	other.mu.Unlock()
}

func TestInMemory_ClearedEventUsesPreviousHost(t *testing.T) {
	bus := NewInMemory(10, zerowrap.Default())
	require.NoError(t, bus.Start())
	defer bus.Stop()

	h := newRecordingHandler(domain.EventSelectionCleared)
	require.NoError(t, bus.Subscribe(h))

	prev := domain.Candidate{Hostname: "old.example"}
	require.NoError(t, bus.Publish(domain.EventSelectionCleared, domain.SelectionChangedPayload{Previous: &prev, Reason: domain.ChangeExhausted}))

	waitFor(t, h.got)
	h.mu.Lock()
	defer h.mu.Unlock()
	assert.Equal(t, "old.example", h.events[0].Hostname)
}

func TestInMemory_Unsubscribe(t *testing.T) {
	bus := NewInMemory(10, zerowrap.Default())
	h := newRecordingHandler(domain.EventSelectionBound)

	require.NoError(t, bus.Subscribe(h))
	require.NoError(t, bus.Unsubscribe(h))
	assert.ErrorIs(t, bus.Unsubscribe(h), ErrUnknownHandler)
}

func TestInMemory_PublishFullChannel(t *testing.T) {
	bus := NewInMemory(1, zerowrap.Default())

	require.NoError(t, bus.Publish(domain.EventProbeTransition, domain.ProbeTransitionPayload{Hostname: "a"}))
	err := bus.Publish(domain.EventProbeTransition, domain.ProbeTransitionPayload{Hostname: "b"})
	assert.ErrorIs(t, err, ErrBufferFull)
}

func TestInMemory_PublishAfterStop(t *testing.T) {
	bus := NewInMemory(1, zerowrap.Default())
	require.NoError(t, bus.Start())
	require.NoError(t, bus.Stop())

	// fill the buffer so only the stopped branch can win
	bus.queue <- domain.Event{}
	err := bus.Publish(domain.EventProbeTransition, domain.ProbeTransitionPayload{Hostname: "b"})
	assert.ErrorIs(t, err, ErrStopped)
	assert.NoError(t, bus.Stop())
}

type slowHandler struct{ release chan struct{} }

func (h *slowHandler) Handle(ctx context.Context, _ domain.Event) error {
	select {
	case <-h.release:
	case <-ctx.Done():
	}
	return nil
}

func (h *slowHandler) CanHandle(domain.EventType) bool { return true }

func TestInMemory_SlowHandlerIsAbandoned(t *testing.T) {
	bus := NewInMemory(10, zerowrap.Default())
	bus.handlerTimeout = 20 * time.Millisecond
	slow := &slowHandler{release: make(chan struct{})}
	defer close(slow.release)

	fast := newRecordingHandler(domain.EventProbeTransition)
	require.NoError(t, bus.Subscribe(slow))
	require.NoError(t, bus.Subscribe(fast))
	require.NoError(t, bus.Start())
	defer bus.Stop()

	require.NoError(t, bus.Publish(domain.EventProbeTransition, domain.ProbeTransitionPayload{Hostname: "a"}))
	waitFor(t, fast.got)
}

func TestInMemory_TimestampFromClock(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	bus := NewInMemory(10, zerowrap.Default())
	bus.now = func() time.Time { return fixed }

	h := newRecordingHandler(domain.EventProbeTransition)
	require.NoError(t, bus.Subscribe(h))
	require.NoError(t, bus.Start())
	defer bus.Stop()

	require.NoError(t, bus.Publish(domain.EventProbeTransition, domain.ProbeTransitionPayload{Hostname: "a"}))
	waitFor(t, h.got)

	h.mu.Lock()
	defer h.mu.Unlock()
	assert.Equal(t, fixed, h.events[0].Timestamp)
	assert.Equal(t, "a", h.events[0].Hostname)
}
