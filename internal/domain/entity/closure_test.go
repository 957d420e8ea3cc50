package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostalia/roomservice-api/internal/domain/enum"
)

func TestPaymentBreakdownRoundTrip(t *testing.T) {
	breakdown := PaymentBreakdown{
		enum.PaymentRoomCharge: {Count: 3, Subtotal: 12345},
		enum.PaymentCard:       {Count: 1, Subtotal: 999},
	}

	data, err := json.Marshal(breakdown)
	require.NoError(t, err)

	// On the wire the subtotal is decimal
	assert.Contains(t, string(data), `"subtotal":123.45`)

	var restored PaymentBreakdown
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, breakdown, restored)
}

func TestPaymentTotalsUnmarshalRoundsToCents(t *testing.T) {
	var totals PaymentTotals
	require.NoError(t, json.Unmarshal([]byte(`{"count":2,"subtotal":10.10}`), &totals))

	assert.Equal(t, 2, totals.Count)
	assert.Equal(t, int64(1010), totals.Subtotal)
}

func TestClosureSnapshotRevenueOnTheWire(t *testing.T) {
	snapshot := ClosureSnapshot{
		TotalOrders:  4,
		TotalRevenue: 3540,
	}

	data, err := json.Marshal(snapshot)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.InDelta(t, 35.40, raw["total_revenue"], 0.001)
}
