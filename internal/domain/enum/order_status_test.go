package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		allowed  bool
	}{
		{OrderStatusPending, OrderStatusPreparing, true},
		{OrderStatusPending, OrderStatusCompleted, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPreparing, OrderStatusCompleted, true},
		{OrderStatusPreparing, OrderStatusCancelled, true},
		{OrderStatusPreparing, OrderStatusPending, false},
		{OrderStatusCompleted, OrderStatusPending, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusCompleted, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatusIsFinished(t *testing.T) {
	assert.False(t, OrderStatusPending.IsFinished())
	assert.False(t, OrderStatusPreparing.IsFinished())
	assert.True(t, OrderStatusCompleted.IsFinished())
	assert.True(t, OrderStatusCancelled.IsFinished())
}

func TestOrderStatusStringNeverPanics(t *testing.T) {
	assert.Equal(t, "pending", OrderStatusPending.String())
	assert.Equal(t, "cancelled", OrderStatusCancelled.String())

	// Scan and the int form of UnmarshalJSON accept raw integers, so an
	// out-of-range value must render rather than crash
	var scanned OrderStatus
	assert.NoError(t, scanned.Scan(int64(99)))
	assert.Equal(t, "unknown", scanned.String())
	assert.Equal(t, "unknown", OrderStatus(-1).String())
}

func TestParseOrderStatus(t *testing.T) {
	status, ok := ParseOrderStatus("preparing")
	assert.True(t, ok)
	assert.Equal(t, OrderStatusPreparing, status)

	_, ok = ParseOrderStatus("shipped")
	assert.False(t, ok)
}

func TestPaymentMethodOrDefault(t *testing.T) {
	assert.Equal(t, PaymentRoomCharge, PaymentMethod("").OrDefault())
	assert.Equal(t, PaymentCash, PaymentCash.OrDefault())
}
