package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hostalia/roomservice-api/internal/domain/entity"
	"github.com/hostalia/roomservice-api/internal/domain/enum"
	"github.com/hostalia/roomservice-api/pkg/apperror"
)

func newOrderService(orders *mockOrderRepo, menu *mockMenuRepo, audits *mockAuditRepo) *OrderService {
	if audits == nil {
		audits = &mockAuditRepo{}
	}
	return NewOrderService(orders, menu, &mockHotelRepo{}, audits, nil, nil, zap.NewNop())
}

func TestCreateOrderSnapshotsPricing(t *testing.T) {
	hotelID := uuid.New()
	sandwich := entity.MenuItem{ID: uuid.New(), HotelID: hotelID, Name: "Club Sandwich", Price: 1200, Available: true}
	water := entity.MenuItem{ID: uuid.New(), HotelID: hotelID, Name: "Agua mineral", Price: 250, Available: true}

	var created *entity.Order
	orders := &mockOrderRepo{
		CreateFn: func(ctx context.Context, order *entity.Order) error {
			created = order
			return nil
		},
	}
	menu := &mockMenuRepo{
		GetByIDsFn: func(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error) {
			return []entity.MenuItem{sandwich, water}, nil
		},
	}
	svc := newOrderService(orders, menu, nil)

	order, err := svc.Create(context.Background(), &CreateOrderInput{
		HotelID:       hotelID,
		RoomNumber:    "204",
		PaymentMethod: enum.PaymentCard,
		Items: []CreateOrderItemInput{
			{MenuItemID: sandwich.ID, Quantity: 2},
			{MenuItemID: water.ID, Quantity: 1},
		},
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, enum.OrderStatusPending, order.Status)
	assert.Equal(t, int64(2650), order.Total)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Club Sandwich", order.Items[0].Name)
	assert.Equal(t, int64(1200), order.Items[0].UnitPrice)
	assert.Equal(t, int64(2400), order.Items[0].Total)
}

func TestCreateOrderRejectsUnknownMenuItem(t *testing.T) {
	menu := &mockMenuRepo{
		GetByIDsFn: func(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error) {
			return nil, nil
		},
	}
	svc := newOrderService(&mockOrderRepo{}, menu, nil)

	_, err := svc.Create(context.Background(), &CreateOrderInput{
		HotelID:    uuid.New(),
		RoomNumber: "101",
		Items:      []CreateOrderItemInput{{MenuItemID: uuid.New(), Quantity: 1}},
	})

	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestCreateOrderRejectsUnavailableItem(t *testing.T) {
	item := entity.MenuItem{ID: uuid.New(), Name: "Paella", Price: 1800, Available: false}
	menu := &mockMenuRepo{
		GetByIDsFn: func(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error) {
			return []entity.MenuItem{item}, nil
		},
	}
	svc := newOrderService(&mockOrderRepo{}, menu, nil)

	_, err := svc.Create(context.Background(), &CreateOrderInput{
		HotelID:    uuid.New(),
		RoomNumber: "101",
		Items:      []CreateOrderItemInput{{MenuItemID: item.ID, Quantity: 1}},
	})
	require.Error(t, err)
}

func TestCreateOrderValidation(t *testing.T) {
	svc := newOrderService(&mockOrderRepo{}, &mockMenuRepo{}, nil)

	_, err := svc.Create(context.Background(), &CreateOrderInput{RoomNumber: "", Items: []CreateOrderItemInput{{MenuItemID: uuid.New(), Quantity: 1}}})
	assert.Error(t, err, "empty room number")

	_, err = svc.Create(context.Background(), &CreateOrderInput{RoomNumber: "101"})
	assert.Error(t, err, "no items")

	_, err = svc.Create(context.Background(), &CreateOrderInput{
		RoomNumber:    "101",
		PaymentMethod: "cheque",
		Items:         []CreateOrderItemInput{{MenuItemID: uuid.New(), Quantity: 1}},
	})
	assert.Error(t, err, "unknown payment method")

	_, err = svc.Create(context.Background(), &CreateOrderInput{
		RoomNumber: "101",
		Items:      []CreateOrderItemInput{{MenuItemID: uuid.New(), Quantity: 0}},
	})
	assert.Error(t, err, "zero quantity")
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	hotelID := uuid.New()
	order := &entity.Order{ID: uuid.New(), HotelID: hotelID, Status: enum.OrderStatusCompleted}
	orders := &mockOrderRepo{
		GetWithItemsFn: func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
			return order, nil
		},
	}
	svc := newOrderService(orders, &mockMenuRepo{}, nil)

	_, err := svc.UpdateStatus(context.Background(), hotelID, order.ID, enum.OrderStatusPending)

	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 409, appErr.Code)
}

func TestUpdateStatusHappyPath(t *testing.T) {
	hotelID := uuid.New()
	order := &entity.Order{ID: uuid.New(), HotelID: hotelID, Status: enum.OrderStatusPending}
	var saved enum.OrderStatus
	orders := &mockOrderRepo{
		GetWithItemsFn: func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
			return order, nil
		},
		UpdateStatusFn: func(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
			saved = status
			return nil
		},
	}
	svc := newOrderService(orders, &mockMenuRepo{}, nil)

	updated, err := svc.UpdateStatus(context.Background(), hotelID, order.ID, enum.OrderStatusPreparing)

	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusPreparing, saved)
	assert.Equal(t, enum.OrderStatusPreparing, updated.Status)
}

func TestDeleteOrderIsAudited(t *testing.T) {
	hotelID := uuid.New()
	userID := uuid.New()
	order := &entity.Order{ID: uuid.New(), HotelID: hotelID, RoomNumber: "305", Total: 1500}

	var deleted bool
	orders := &mockOrderRepo{
		GetWithItemsFn: func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
			return order, nil
		},
		DeleteFn: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	var entry *entity.AuditEntry
	audits := &mockAuditRepo{
		RecordFn: func(ctx context.Context, e *entity.AuditEntry) error {
			entry = e
			return nil
		},
	}
	svc := newOrderService(orders, &mockMenuRepo{}, audits)

	err := svc.Delete(context.Background(), hotelID, order.ID, userID)

	require.NoError(t, err)
	assert.True(t, deleted)
	require.NotNil(t, entry)
	assert.Equal(t, entity.AuditOrderDeleted, entry.Action)
	assert.Equal(t, userID, entry.UserID)
	assert.Contains(t, entry.Detail, "room=305")
}

func TestGetOrderFromOtherHotelIsNotFound(t *testing.T) {
	order := &entity.Order{ID: uuid.New(), HotelID: uuid.New()}
	orders := &mockOrderRepo{
		GetWithItemsFn: func(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
			return order, nil
		},
	}
	svc := newOrderService(orders, &mockMenuRepo{}, nil)

	_, err := svc.GetByID(context.Background(), uuid.New(), order.ID)

	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, 404, appErr.Code)
}
