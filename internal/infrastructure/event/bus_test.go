package event

import (
	"context"
	"errors"
	"testing"

	"github.com/artisan/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingHandler struct {
	types    []string
	received []shared.DomainEvent
	fail     bool
	panics   bool
}

func (h *countingHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	if h.panics {
		panic("handler exploded")
	}
	if h.fail {
		return errors.New("handler failed")
	}
	h.received = append(h.received, event)
	return nil
}

func (h *countingHandler) EventTypes() []string {
	return h.types
}

func newEvent(eventType string) shared.DomainEvent {
	e := shared.NewBaseDomainEvent(eventType, "Test", uuid.New())
	return &e
}

func TestInMemoryEventBus_PublishToTypedHandler(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	handler := &countingHandler{types: []string{"CartItemAdded"}}
	bus.Subscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), newEvent("CartItemAdded")))
	require.NoError(t, bus.Publish(context.Background(), newEvent("CartCleared")))

	assert.Len(t, handler.received, 1)
	assert.Equal(t, "CartItemAdded", handler.received[0].EventType())
}

func TestInMemoryEventBus_WildcardHandler(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	handler := &countingHandler{}
	bus.Subscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), newEvent("CartItemAdded"), newEvent("CheckoutConfirmed")))
	assert.Len(t, handler.received, 2)
}

func TestInMemoryEventBus_FailingHandlerDoesNotBlockOthers(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	failing := &countingHandler{types: []string{"CartItemAdded"}, fail: true}
	healthy := &countingHandler{types: []string{"CartItemAdded"}}
	bus.Subscribe(failing)
	bus.Subscribe(healthy)

	require.NoError(t, bus.Publish(context.Background(), newEvent("CartItemAdded")))
	assert.Len(t, healthy.received, 1)
}

func TestInMemoryEventBus_PanickingHandlerIsContained(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	panicking := &countingHandler{types: []string{"CartItemAdded"}, panics: true}
	healthy := &countingHandler{types: []string{"CartItemAdded"}}
	bus.Subscribe(panicking)
	bus.Subscribe(healthy)

	require.NoError(t, bus.Publish(context.Background(), newEvent("CartItemAdded")))
	assert.Len(t, healthy.received, 1)
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	handler := &countingHandler{types: []string{"CartItemAdded"}}
	bus.Subscribe(handler)
	bus.Unsubscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), newEvent("CartItemAdded")))
	assert.Empty(t, handler.received)
}
