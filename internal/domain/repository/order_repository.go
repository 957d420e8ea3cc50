package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hostalia/roomservice-api/internal/domain/entity"
	"github.com/hostalia/roomservice-api/internal/domain/enum"
	"github.com/hostalia/roomservice-api/pkg/pagination"
)

// OrderRepository defines the interface for live order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	// ListBetween returns all orders for the hotel created in [from, to),
	// optionally restricted by status, with line items preloaded.
	ListBetween(ctx context.Context, hotelID uuid.UUID, from, to time.Time, statuses []enum.OrderStatus) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteFinishedBetween removes the hotel's finished orders (and their
	// items) created in [from, to). The hotel ID is part of the WHERE clause
	// on top of the tenant scope: this is the closure's destructive step and
	// must be structurally incapable of touching another hotel's rows.
	DeleteFinishedBetween(ctx context.Context, hotelID uuid.UUID, from, to time.Time) (int64, error)
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.OrderStatus
	RoomNumber string
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}
