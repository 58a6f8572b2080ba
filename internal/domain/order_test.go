package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatusTransitions(t *testing.T) {
	testCases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusShipping, false},
		{StatusPending, StatusDelivered, false},
		{StatusProcessing, StatusShipping, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusProcessing, StatusDelivered, false},
		{StatusProcessing, StatusPending, false},
		{StatusShipping, StatusDelivered, true},
		{StatusShipping, StatusCancelled, true},
		{StatusShipping, StatusProcessing, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusDelivered, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusDelivered, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, StatusDelivered.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusProcessing.Terminal())
	assert.False(t, StatusShipping.Terminal())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.False(t, OrderStatus("returned").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestAllowedTransitionsIsACopy(t *testing.T) {
	next := StatusPending.AllowedTransitions()
	require.Len(t, next, 2)
	next[0] = StatusDelivered

	again := StatusPending.AllowedTransitions()
	assert.Equal(t, []OrderStatus{StatusProcessing, StatusCancelled}, again)
}

func TestStampStatusTime(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	order := &Order{}
	order.StampStatusTime(StatusProcessing, at)
	require.NotNil(t, order.ProcessingAt)
	assert.Equal(t, at, *order.ProcessingAt)
	assert.Nil(t, order.ShippingAt)
	assert.Nil(t, order.DeliveredAt)
	assert.Nil(t, order.CancelledAt)

	order.StampStatusTime(StatusCancelled, at)
	require.NotNil(t, order.CancelledAt)

	// Pending has no dedicated field.
	fresh := &Order{}
	fresh.StampStatusTime(StatusPending, at)
	assert.Nil(t, fresh.ProcessingAt)
}

func TestHistoryComment(t *testing.T) {
	assert.Equal(t, "Order cancelled by the seller", HistoryComment(StatusCancelled))
	assert.Equal(t, "Order moved to status: Processing", HistoryComment(StatusProcessing))
	assert.Equal(t, "Order moved to status: Out for delivery", HistoryComment(StatusShipping))
	assert.Equal(t, "Order moved to status: Delivered", HistoryComment(StatusDelivered))
}
