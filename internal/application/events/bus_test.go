package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/footsim-go/internal/application/events"
)

func TestBus_PublishDeliversToAllSubscribers(t *testing.T) {
	// Arrange
	bus := events.NewBus()
	received := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		i := i
		bus.Subscribe(events.KindProposalReceived, func(ctx context.Context, e events.Event) error {
			payload := e.(events.ProposalReceived)
			assert.Equal(t, 42, payload.ProposalID)
			received = append(received, i)
			return nil
		})
	}

	// Act
	bus.Publish(context.Background(), events.ProposalReceived{ProposalID: 42})

	// Assert
	assert.Equal(t, []int{0, 1}, received, "handlers run in subscription order")
}

func TestBus_PublishWithoutSubscribersIsANoOp(t *testing.T) {
	bus := events.NewBus()

	bus.Publish(context.Background(), events.TransferCompleted{ProposalID: 1})

	assert.Equal(t, 0, bus.SubscriberCount(events.KindTransferCompleted))
}

func TestBus_KindsAreIsolated(t *testing.T) {
	// Arrange
	bus := events.NewBus()
	var completed int
	bus.Subscribe(events.KindTransferCompleted, func(ctx context.Context, e events.Event) error {
		completed++
		return nil
	})

	// Act
	bus.Publish(context.Background(), events.ProposalReceived{ProposalID: 1})

	// Assert
	assert.Zero(t, completed)
	assert.Equal(t, 1, bus.SubscriberCount(events.KindTransferCompleted))
	assert.Equal(t, 0, bus.SubscriberCount(events.KindProposalReceived))
}

func TestBus_HandlerFailureDoesNotStopFanOut(t *testing.T) {
	// Arrange
	bus := events.NewBus()
	var reached bool
	bus.Subscribe(events.KindTransferCompleted, func(ctx context.Context, e events.Event) error {
		return errors.New("listener broke")
	})
	bus.Subscribe(events.KindTransferCompleted, func(ctx context.Context, e events.Event) error {
		panic("listener exploded")
	})
	bus.Subscribe(events.KindTransferCompleted, func(ctx context.Context, e events.Event) error {
		reached = true
		return nil
	})

	// Act: must not panic and must reach the last handler
	bus.Publish(context.Background(), events.TransferCompleted{ProposalID: 7})

	// Assert
	assert.True(t, reached)
}
