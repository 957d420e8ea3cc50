package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hostalia/roomservice-api/internal/domain/entity"
	"github.com/hostalia/roomservice-api/internal/domain/enum"
	"github.com/hostalia/roomservice-api/internal/domain/repository"
	"github.com/hostalia/roomservice-api/pkg/apperror"
	"github.com/hostalia/roomservice-api/pkg/pagination"
)

// CreateOrderInput is the service-level input for placing an order
type CreateOrderInput struct {
	HotelID       uuid.UUID
	RoomNumber    string
	PaymentMethod enum.PaymentMethod
	Notes         string
	Items         []CreateOrderItemInput
}

// CreateOrderItemInput is one requested line item
type CreateOrderItemInput struct {
	MenuItemID uuid.UUID
	Quantity   int
}

// OrderService handles live order operations
type OrderService struct {
	orderRepo   repository.OrderRepository
	menuRepo    repository.MenuItemRepository
	hotelRepo   repository.HotelRepository
	auditRepo   repository.AuditRepository
	reports     *ReportService
	broadcaster Broadcaster
	logger      *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	menuRepo repository.MenuItemRepository,
	hotelRepo repository.HotelRepository,
	auditRepo repository.AuditRepository,
	reports *ReportService,
	broadcaster Broadcaster,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		menuRepo:    menuRepo,
		hotelRepo:   hotelRepo,
		auditRepo:   auditRepo,
		reports:     reports,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// Create places a new order. Line items snapshot the menu item's name and
// price at order time, so later menu edits or deletions never change what
// the guest was charged.
func (s *OrderService) Create(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	if input.RoomNumber == "" {
		return nil, apperror.NewBadRequestError("Room number is required")
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("An order needs at least one item")
	}
	if input.PaymentMethod != "" && !input.PaymentMethod.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid payment method")
	}

	ids := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}
		ids = append(ids, item.MenuItemID)
	}

	menuItems, err := s.menuRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*entity.MenuItem, len(menuItems))
	for i := range menuItems {
		byID[menuItems[i].ID] = &menuItems[i]
	}

	order := &entity.Order{
		HotelID:       input.HotelID,
		RoomNumber:    input.RoomNumber,
		Status:        enum.OrderStatusPending,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
	}

	for _, item := range input.Items {
		menuItem, ok := byID[item.MenuItemID]
		if !ok {
			return nil, apperror.NewBadRequestError("Menu item not found: " + item.MenuItemID.String())
		}
		if !menuItem.Available {
			return nil, apperror.NewBadRequestError("Menu item is not available: " + menuItem.Name)
		}

		menuItemID := menuItem.ID
		lineTotal := menuItem.Price * int64(item.Quantity)
		order.Items = append(order.Items, entity.OrderItem{
			MenuItemID: &menuItemID,
			Name:       menuItem.Name,
			Quantity:   item.Quantity,
			UnitPrice:  menuItem.Price,
			Total:      lineTotal,
		})
		order.Total += lineTotal
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.Broadcast(order.HotelID, "order.created", order)
	}
	return order, nil
}

// GetByID returns one order with its items, scoped to the hotel
func (s *OrderService) GetByID(ctx context.Context, hotelID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.HotelID != hotelID {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// List returns live orders matching the filter
func (s *OrderService) List(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(orders, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// UpdateStatus moves an order along its lifecycle. Illegal transitions
// (reopening a completed order, cancelling a cancelled one) are rejected.
func (s *OrderService) UpdateStatus(ctx context.Context, hotelID, orderID uuid.UUID, next enum.OrderStatus) (*entity.Order, error) {
	if !next.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid order status")
	}

	order, err := s.GetByID(ctx, hotelID, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, apperror.NewConflictError(fmt.Sprintf("Cannot move order from %s to %s", order.Status, next))
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, next); err != nil {
		return nil, err
	}
	order.Status = next

	if s.broadcaster != nil {
		s.broadcaster.Broadcast(hotelID, "order.updated", order)
	}
	return order, nil
}

// Delete removes a single order administratively (a mistaken entry, a test
// order). The deletion is audited; the closure reads these audit entries to
// report the day's deleted count.
func (s *OrderService) Delete(ctx context.Context, hotelID, orderID, userID uuid.UUID) error {
	order, err := s.GetByID(ctx, hotelID, orderID)
	if err != nil {
		return err
	}

	if err := s.orderRepo.Delete(ctx, orderID); err != nil {
		return err
	}

	entry := &entity.AuditEntry{
		HotelID: hotelID,
		UserID:  userID,
		Action:  entity.AuditOrderDeleted,
		Detail:  fmt.Sprintf("room=%s total_cents=%d", order.RoomNumber, order.Total),
	}
	if err := s.auditRepo.Record(ctx, entry); err != nil {
		s.logger.Warn("failed to record order deletion",
			zap.String("hotel_id", hotelID.String()),
			zap.String("order_id", orderID.String()),
			zap.Error(err))
	}

	if s.broadcaster != nil {
		s.broadcaster.Broadcast(hotelID, "order.deleted", map[string]string{"id": orderID.String()})
	}
	return nil
}

// PrintTicket sends a single order to the hotel's print webhook as a
// kitchen ticket
func (s *OrderService) PrintTicket(ctx context.Context, hotelID, orderID uuid.UUID) error {
	order, err := s.GetByID(ctx, hotelID, orderID)
	if err != nil {
		return err
	}

	hotel, err := s.hotelRepo.GetByID(ctx, hotelID)
	if err != nil {
		return err
	}
	if hotel == nil {
		return apperror.NewNotFoundError("Hotel")
	}

	return s.reports.SendOrderTicket(ctx, hotel, order)
}
