package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hostalia/roomservice-api/internal/domain/entity"
	"github.com/hostalia/roomservice-api/internal/domain/enum"
	"github.com/hostalia/roomservice-api/pkg/webhook"
)

func testHotel(url string) *entity.Hotel {
	return &entity.Hotel{
		ID:              uuid.New(),
		Name:            "Hotel Miramar",
		Slug:            "miramar",
		Timezone:        "Europe/Madrid",
		PrintWebhookURL: url,
	}
}

func testSnapshot(hotelID uuid.UUID) *entity.ClosureSnapshot {
	return &entity.ClosureSnapshot{
		ID:              uuid.New(),
		HotelID:         hotelID,
		ClosureDate:     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		TotalOrders:     12,
		CompletedOrders: 10,
		CancelledOrders: 2,
		DeletedOrders:   1,
		TotalRevenue:    45650,
		Breakdown: entity.PaymentBreakdown{
			enum.PaymentRoomCharge: {Count: 6, Subtotal: 30000},
			enum.PaymentCard:       {Count: 4, Subtotal: 15650},
		},
		UpdatedAt: time.Date(2026, 3, 14, 23, 55, 0, 0, time.UTC),
	}
}

func TestSendClosureReportWireFormat(t *testing.T) {
	var raw map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &raw))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	hotel := testHotel(server.URL)
	snapshot := testSnapshot(hotel.ID)
	svc := NewReportService(webhook.NewClient(2*time.Second), nil, "", zap.NewNop())

	err := svc.SendClosureReport(context.Background(), hotel, snapshot, webhook.ReportCierreZ)
	require.NoError(t, err)

	assert.Equal(t, "cierre_z", raw["report_type"])
	assert.Equal(t, hotel.ID.String(), raw["hotel_id"])

	data, ok := raw["report_data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "14/03/2026", data["fecha"])
	assert.Equal(t, "Hotel Miramar", data["hotel_name"])
	assert.EqualValues(t, 12, data["totalPedidos"])
	assert.EqualValues(t, 10, data["pedidosCompletados"])
	assert.EqualValues(t, 2, data["pedidosCancelados"])
	assert.EqualValues(t, 1, data["pedidosEliminados"])
	assert.InDelta(t, 456.50, data["totalDinero"].(float64), 0.001)

	methods, ok := data["metodosDetalle"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, methods, "room_charge")
	assert.Contains(t, methods, "card")
}

func TestSendReportWithoutWebhook(t *testing.T) {
	hotel := testHotel("")
	svc := NewReportService(webhook.NewClient(time.Second), nil, "", zap.NewNop())

	err := svc.SendClosureReport(context.Background(), hotel, testSnapshot(hotel.ID), webhook.ReportCierreZ)
	assert.ErrorIs(t, err, ErrNoWebhookConfigured)
}

func TestSendReportFallsBackToDefaultURL(t *testing.T) {
	var hit bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	hotel := testHotel("")
	svc := NewReportService(webhook.NewClient(time.Second), nil, server.URL, zap.NewNop())

	err := svc.SendClosureReport(context.Background(), hotel, testSnapshot(hotel.ID), webhook.ReportCierreZ)
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestSendOrderTicket(t *testing.T) {
	var payload webhook.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &payload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	hotel := testHotel(server.URL)
	order := &entity.Order{
		ID:         uuid.New(),
		HotelID:    hotel.ID,
		RoomNumber: "204",
		Total:      2450,
		Notes:      "Sin cebolla",
		Items: []entity.OrderItem{
			{Name: "Club Sandwich", Quantity: 2, UnitPrice: 1200, Total: 2400},
			{Name: "Agua mineral", Quantity: 1, UnitPrice: 50, Total: 50},
		},
	}
	svc := NewReportService(webhook.NewClient(time.Second), nil, "", zap.NewNop())

	err := svc.SendOrderTicket(context.Background(), hotel, order)
	require.NoError(t, err)

	assert.Equal(t, webhook.ReportSingleOrder, payload.ReportType)
	require.NotNil(t, payload.ReportData.Pedido)
	assert.Equal(t, "204", payload.ReportData.Pedido.RoomNumber)
	assert.Equal(t, "2x Club Sandwich, 1x Agua mineral", payload.ReportData.Pedido.Items)
	assert.InDelta(t, 24.50, payload.ReportData.Pedido.Total, 0.001)
	assert.Equal(t, "Sin cebolla", payload.ReportData.Pedido.Notes)
}

func TestRenderExtract(t *testing.T) {
	hotel := testHotel("")
	snapshot := testSnapshot(hotel.ID)
	svc := NewReportService(webhook.NewClient(time.Second), nil, "", zap.NewNop())

	text := svc.RenderExtract(hotel, snapshot)

	assert.Contains(t, text, "CIERRE Z")
	assert.Contains(t, text, "HOTEL MIRAMAR")
	assert.Contains(t, text, "14/03/2026")
	assert.Contains(t, text, "456.50")
	assert.Contains(t, text, "Cargo habitación")
	assert.Contains(t, text, "Tarjeta")
	// Cash had no orders that day and is omitted
	assert.NotContains(t, text, "Efectivo")
}

func TestSummarizeItems(t *testing.T) {
	items := []entity.OrderItem{
		{Name: "Club Sandwich", Quantity: 2},
		{Name: "Agua mineral", Quantity: 1},
	}
	assert.Equal(t, "2x Club Sandwich, 1x Agua mineral", summarizeItems(items))

	assert.Equal(t, "", summarizeItems(nil))

	// An item whose menu entry vanished before the name snapshot existed
	orphan := []entity.OrderItem{{Quantity: 1}}
	assert.Equal(t, "1x "+PlaceholderItemName, summarizeItems(orphan))
}
