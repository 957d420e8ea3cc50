package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hostalia/roomservice-api/internal/domain/entity"
	"github.com/hostalia/roomservice-api/internal/domain/enum"
	"github.com/hostalia/roomservice-api/pkg/webhook"
)

type closureFixture struct {
	hotelID uuid.UUID
	userID  uuid.UUID

	orders   *mockOrderRepo
	closures *mockClosureRepo
	archives *mockArchiveRepo
	audits   *mockAuditRepo
	hotels   *mockHotelRepo

	reports *ReportService
	svc     *ClosureService

	mu       sync.Mutex
	archived []entity.ArchivedOrder
	upserted *entity.ClosureSnapshot
	deleted  bool
}

func newClosureFixture(t *testing.T, webhookURL string, dayOrders []entity.Order) *closureFixture {
	t.Helper()

	f := &closureFixture{
		hotelID: uuid.New(),
		userID:  uuid.New(),
	}

	hotel := &entity.Hotel{
		ID:              f.hotelID,
		Name:            "Hotel Miramar",
		Slug:            "miramar",
		Timezone:        "Europe/Madrid",
		PrintWebhookURL: webhookURL,
		Active:          true,
	}

	f.orders = &mockOrderRepo{
		ListBetweenFn: func(ctx context.Context, hotelID uuid.UUID, from, to time.Time, statuses []enum.OrderStatus) ([]entity.Order, error) {
			return dayOrders, nil
		},
		DeleteFinishedBetweenFn: func(ctx context.Context, hotelID uuid.UUID, from, to time.Time) (int64, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.deleted = true
			var n int64
			for _, o := range dayOrders {
				if o.Status.IsFinished() {
					n++
				}
			}
			return n, nil
		},
	}
	f.closures = &mockClosureRepo{
		UpsertFn: func(ctx context.Context, snapshot *entity.ClosureSnapshot) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.upserted = snapshot
			return nil
		},
	}
	f.archives = &mockArchiveRepo{
		InsertFn: func(ctx context.Context, record *entity.ArchivedOrder) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.archived = append(f.archived, *record)
			return nil
		},
	}
	f.audits = &mockAuditRepo{}
	f.hotels = &mockHotelRepo{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
			if id == f.hotelID {
				return hotel, nil
			}
			return nil, nil
		},
		IsMemberFn: func(ctx context.Context, hotelID, userID uuid.UUID) (bool, error) {
			return userID == f.userID, nil
		},
	}

	logger := zap.NewNop()
	f.reports = NewReportService(webhook.NewClient(2*time.Second), f.audits, "", logger)
	f.svc = NewClosureService(f.orders, f.closures, f.archives, f.audits, f.hotels, f.reports, nil, logger)
	return f
}

func makeOrder(status enum.OrderStatus, method enum.PaymentMethod, totalCents int64) entity.Order {
	id := uuid.New()
	return entity.Order{
		ID:            id,
		RoomNumber:    "101",
		Status:        status,
		PaymentMethod: method,
		Total:         totalCents,
		CreatedAt:     time.Now().Add(-2 * time.Hour),
		Items: []entity.OrderItem{
			{OrderID: id, Name: "Club Sandwich", Quantity: 1, UnitPrice: totalCents, Total: totalCents},
		},
	}
}

func TestClosureRequiresConfirmation(t *testing.T) {
	f := newClosureFixture(t, "", nil)

	_, err := f.svc.Run(context.Background(), f.hotelID, f.userID, false, false)

	assert.ErrorIs(t, err, ErrNotConfirmed)
}

func TestClosureForbiddenForNonMember(t *testing.T) {
	f := newClosureFixture(t, "", nil)

	_, err := f.svc.Run(context.Background(), f.hotelID, uuid.New(), false, true)

	require.Error(t, err)
	assert.False(t, f.deleted)
}

func TestClosureNothingToClose(t *testing.T) {
	day := []entity.Order{
		makeOrder(enum.OrderStatusPending, enum.PaymentCash, 500),
		makeOrder(enum.OrderStatusPreparing, enum.PaymentCard, 900),
	}
	f := newClosureFixture(t, "", day)

	result, err := f.svc.Run(context.Background(), f.hotelID, f.userID, false, true)

	assert.ErrorIs(t, err, ErrNothingToClose)
	assert.Equal(t, ClosureAborted, result.State)
	assert.Nil(t, f.upserted)
	assert.Empty(t, f.archived)
	assert.False(t, f.deleted)
}

func TestClosureHappyPath(t *testing.T) {
	var payload webhook.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &payload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	day := []entity.Order{
		makeOrder(enum.OrderStatusCompleted, enum.PaymentRoomCharge, 1000),
		makeOrder(enum.OrderStatusCompleted, enum.PaymentCard, 1550),
		makeOrder(enum.OrderStatusCancelled, enum.PaymentCash, 2000),
		makeOrder(enum.OrderStatusPending, enum.PaymentCash, 700),
	}
	f := newClosureFixture(t, server.URL, day)
	f.audits.CountActionBetweenFn = func(ctx context.Context, hotelID uuid.UUID, action string, from, to time.Time) (int64, error) {
		assert.Equal(t, entity.AuditOrderDeleted, action)
		return 2, nil
	}

	result, err := f.svc.Run(context.Background(), f.hotelID, f.userID, false, true)

	require.NoError(t, err)
	assert.Equal(t, ClosureDone, result.State)
	assert.True(t, result.ReportSent)
	assert.Empty(t, result.Warning)

	// Snapshot covers all orders, including the still-pending one
	require.NotNil(t, f.upserted)
	assert.Equal(t, 4, f.upserted.TotalOrders)
	assert.Equal(t, 2, f.upserted.CompletedOrders)
	assert.Equal(t, 1, f.upserted.CancelledOrders)
	assert.Equal(t, 2, f.upserted.DeletedOrders)
	assert.Equal(t, int64(2550), f.upserted.TotalRevenue)
	assert.Equal(t, f.userID, f.upserted.ClosedBy)

	// Only finished orders are archived and deleted; the pending one stays
	assert.Len(t, f.archived, 3)
	assert.Equal(t, 3, result.ArchivedOrders)
	assert.Equal(t, int64(3), result.DeletedOrders)
	assert.True(t, f.deleted)

	// The print payload carries the snapshot figures
	assert.Equal(t, webhook.ReportCierreZ, payload.ReportType)
	assert.Equal(t, f.hotelID.String(), payload.HotelID)
	assert.Equal(t, 4, payload.ReportData.TotalPedidos)
	assert.Equal(t, 2, payload.ReportData.PedidosCompletados)
	assert.Equal(t, 2, payload.ReportData.PedidosEliminados)
	assert.InDelta(t, 25.50, payload.ReportData.TotalDinero, 0.001)
}

func TestClosureArchiveFailureBlocksDeletion(t *testing.T) {
	day := []entity.Order{
		makeOrder(enum.OrderStatusCompleted, enum.PaymentCash, 1000),
		makeOrder(enum.OrderStatusCompleted, enum.PaymentCard, 2000),
		makeOrder(enum.OrderStatusCancelled, enum.PaymentCash, 500),
	}

	// Whichever order fails to archive, nothing may be deleted
	for i := range day {
		failID := day[i].ID
		f := newClosureFixture(t, "", day)
		f.archives.InsertFn = func(ctx context.Context, record *entity.ArchivedOrder) error {
			if record.OrderID == failID {
				return errors.New("disk full")
			}
			return nil
		}

		result, err := f.svc.Run(context.Background(), f.hotelID, f.userID, false, true)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "archiving orders")
		assert.Equal(t, ClosureAborted, result.State)
		assert.False(t, f.deleted, "live orders must survive an archive failure")
	}
}

func TestClosureDeleteFailureAborts(t *testing.T) {
	day := []entity.Order{makeOrder(enum.OrderStatusCompleted, enum.PaymentCash, 1000)}
	f := newClosureFixture(t, "", day)
	f.orders.DeleteFinishedBetweenFn = func(ctx context.Context, hotelID uuid.UUID, from, to time.Time) (int64, error) {
		return 0, errors.New("connection reset")
	}

	core, logs := observer.New(zap.ErrorLevel)
	f.svc = NewClosureService(f.orders, f.closures, f.archives, f.audits, f.hotels, f.reports, nil, zap.New(core))

	result, err := f.svc.Run(context.Background(), f.hotelID, f.userID, false, true)

	// A delete failure after archival is its own error: archived copies and
	// live originals coexist until the closure is rerun
	require.ErrorIs(t, err, ErrDeleteAfterArchive)
	assert.Equal(t, ClosureAborted, result.State)
	// The snapshot and archive rows are already written; a rerun is safe
	assert.NotNil(t, f.upserted)
	assert.Len(t, f.archived, 1)

	// And it is logged for manual reconciliation, with the hotel and date
	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, f.hotelID.String(), fields["hotel_id"])
	assert.Contains(t, fields, "closure_date")
}

func TestClosureRerunOverwritesSameDay(t *testing.T) {
	day := []entity.Order{
		makeOrder(enum.OrderStatusCompleted, enum.PaymentCash, 1000),
		makeOrder(enum.OrderStatusCompleted, enum.PaymentCard, 1500),
	}
	f := newClosureFixture(t, "", day)

	// Stateful fakes with the real stores' conflict semantics: one snapshot
	// row per hotel and day, archive inserts keyed by order ID
	type dayKey struct {
		hotel uuid.UUID
		date  time.Time
	}
	snapshots := map[dayKey]entity.ClosureSnapshot{}
	f.closures.UpsertFn = func(ctx context.Context, snapshot *entity.ClosureSnapshot) error {
		snapshots[dayKey{snapshot.HotelID, snapshot.ClosureDate}] = *snapshot
		return nil
	}
	archive := map[uuid.UUID]entity.ArchivedOrder{}
	f.archives.InsertFn = func(ctx context.Context, record *entity.ArchivedOrder) error {
		f.mu.Lock()
		defer f.mu.Unlock()
		if _, exists := archive[record.OrderID]; exists {
			return nil
		}
		archive[record.OrderID] = *record
		return nil
	}

	// First run: everything archived, deletion fails
	f.orders.DeleteFinishedBetweenFn = func(ctx context.Context, hotelID uuid.UUID, from, to time.Time) (int64, error) {
		return 0, errors.New("connection reset")
	}

	_, err := f.svc.Run(context.Background(), f.hotelID, f.userID, false, true)
	require.ErrorIs(t, err, ErrDeleteAfterArchive)
	require.Len(t, snapshots, 1)
	require.Len(t, archive, 2)

	// The rerun sees one more finished order and a working delete
	day = append(day, makeOrder(enum.OrderStatusCompleted, enum.PaymentCash, 500))
	f.orders.ListBetweenFn = func(ctx context.Context, hotelID uuid.UUID, from, to time.Time, statuses []enum.OrderStatus) ([]entity.Order, error) {
		return day, nil
	}
	f.orders.DeleteFinishedBetweenFn = func(ctx context.Context, hotelID uuid.UUID, from, to time.Time) (int64, error) {
		return int64(len(day)), nil
	}

	result, err := f.svc.Run(context.Background(), f.hotelID, f.userID, false, true)
	require.NoError(t, err)
	assert.Equal(t, ClosureDone, result.State)

	// Still one row for the hotel and day, now carrying the rerun's figures
	require.Len(t, snapshots, 1)
	for _, snap := range snapshots {
		assert.Equal(t, 3, snap.TotalOrders)
		assert.Equal(t, int64(3000), snap.TotalRevenue)
	}

	// The first run's archive rows were not duplicated
	assert.Len(t, archive, 3)
}

func TestClosureDispatchFailureIsWarning(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	day := []entity.Order{makeOrder(enum.OrderStatusCompleted, enum.PaymentCash, 1000)}
	f := newClosureFixture(t, server.URL, day)

	result, err := f.svc.Run(context.Background(), f.hotelID, f.userID, false, true)

	require.NoError(t, err, "a print failure must not fail the closure")
	assert.Equal(t, ClosureDone, result.State)
	assert.False(t, result.ReportSent)
	assert.NotEmpty(t, result.Warning)
	assert.True(t, f.deleted)
}

func TestClosureRejectsConcurrentRun(t *testing.T) {
	day := []entity.Order{makeOrder(enum.OrderStatusCompleted, enum.PaymentCash, 1000)}
	f := newClosureFixture(t, "", day)

	require.True(t, f.svc.begin(f.hotelID))

	_, err := f.svc.Run(context.Background(), f.hotelID, f.userID, false, true)
	assert.ErrorIs(t, err, ErrClosureInProgress)

	f.svc.end(f.hotelID)

	_, err = f.svc.Run(context.Background(), f.hotelID, f.userID, false, true)
	assert.NoError(t, err)
}

func TestClosureDayBoundariesInHotelTime(t *testing.T) {
	var gotFrom, gotTo time.Time
	day := []entity.Order{makeOrder(enum.OrderStatusCompleted, enum.PaymentCash, 1000)}
	f := newClosureFixture(t, "", day)

	base := f.orders.ListBetweenFn
	f.orders.ListBetweenFn = func(ctx context.Context, hotelID uuid.UUID, from, to time.Time, statuses []enum.OrderStatus) ([]entity.Order, error) {
		gotFrom, gotTo = from, to
		return base(ctx, hotelID, from, to, statuses)
	}

	var deleteFrom, deleteTo time.Time
	baseDelete := f.orders.DeleteFinishedBetweenFn
	f.orders.DeleteFinishedBetweenFn = func(ctx context.Context, hotelID uuid.UUID, from, to time.Time) (int64, error) {
		deleteFrom, deleteTo = from, to
		return baseDelete(ctx, hotelID, from, to)
	}

	_, err := f.svc.Run(context.Background(), f.hotelID, f.userID, false, true)
	require.NoError(t, err)

	assert.Equal(t, 0, gotFrom.Hour())
	assert.Equal(t, 0, gotFrom.Minute())
	assert.Equal(t, gotTo.Location(), gotFrom.Location())
	assert.True(t, gotTo.After(gotFrom))

	// The deletion uses the exact same window captured at the start:
	// orders created mid-run belong to the next business day
	assert.Equal(t, gotFrom, deleteFrom)
	assert.Equal(t, gotTo, deleteTo)
}

func TestClosureArchiveRecordShape(t *testing.T) {
	order := makeOrder(enum.OrderStatusCompleted, enum.PaymentCard, 2400)
	order.Items = []entity.OrderItem{
		{OrderID: order.ID, Name: "Club Sandwich", Quantity: 2, UnitPrice: 1200, Total: 2400},
	}
	f := newClosureFixture(t, "", []entity.Order{order})

	_, err := f.svc.Run(context.Background(), f.hotelID, f.userID, false, true)
	require.NoError(t, err)

	require.Len(t, f.archived, 1)
	rec := f.archived[0]
	assert.Equal(t, order.ID, rec.OrderID)
	assert.Equal(t, f.hotelID, rec.HotelID)
	assert.Equal(t, "2x Club Sandwich", rec.ItemsSummary)
	assert.Equal(t, int64(2400), rec.Total)
	assert.False(t, rec.ArchivedAt.IsZero())

	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.ItemsJSON, &items))
	require.Len(t, items, 1)
	assert.InDelta(t, 12.00, items[0]["unit_price"], 0.001)
}

func TestReprintUnknownClosure(t *testing.T) {
	f := newClosureFixture(t, "", nil)
	f.closures.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.ClosureSnapshot, error) {
		return nil, nil
	}

	err := f.svc.Reprint(context.Background(), f.hotelID, uuid.New())
	require.Error(t, err)
}

func TestReprintOtherHotelsClosureIsNotFound(t *testing.T) {
	f := newClosureFixture(t, "", nil)
	foreign := &entity.ClosureSnapshot{ID: uuid.New(), HotelID: uuid.New()}
	f.closures.GetByIDFn = func(ctx context.Context, id uuid.UUID) (*entity.ClosureSnapshot, error) {
		return foreign, nil
	}

	err := f.svc.Reprint(context.Background(), f.hotelID, foreign.ID)
	require.Error(t, err)
}
