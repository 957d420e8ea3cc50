package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hostalia/roomservice-api/internal/domain/entity"
	"github.com/hostalia/roomservice-api/internal/domain/enum"
	domainRepo "github.com/hostalia/roomservice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Scopes(HotelScope(ctx)).
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).
		Scopes(HotelScope(ctx)).
		Preload("Items").
		Preload("Items.MenuItem").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{}).Scopes(HotelScope(ctx))

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.RoomNumber != "" {
		query = query.Where("room_number = ?", params.RoomNumber)
	}

	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("created_at < ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order(sortBy + " " + sortOrder).
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepository) ListBetween(ctx context.Context, hotelID uuid.UUID, from, to time.Time, statuses []enum.OrderStatus) ([]entity.Order, error) {
	var orders []entity.Order

	query := r.db.WithContext(ctx).
		Scopes(HotelScope(ctx)).
		Where("hotel_id = ?", hotelID).
		Where("created_at >= ? AND created_at < ?", from, to)

	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	err := query.
		Preload("Items").
		Preload("Items.MenuItem").
		Order("created_at ASC").
		Find(&orders).Error

	return orders, err
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Order{}).
		Scopes(HotelScope(ctx)).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Scopes(HotelScope(ctx)).Delete(&entity.Order{}, "id = ?", id).Error
	})
}

// DeleteFinishedBetween removes finished orders and their items. The status
// filter keeps orders that are still pending or preparing untouched even when
// they fall inside the day range.
func (r *orderRepository) DeleteFinishedBetween(ctx context.Context, hotelID uuid.UUID, from, to time.Time) (int64, error) {
	var deleted int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uuid.UUID
		if err := tx.Model(&entity.Order{}).
			Where("hotel_id = ?", hotelID).
			Where("created_at >= ? AND created_at < ?", from, to).
			Where("status IN ?", []enum.OrderStatus{enum.OrderStatusCompleted, enum.OrderStatusCancelled}).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		if err := tx.Where("order_id IN ?", ids).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}

		res := tx.Where("hotel_id = ?", hotelID).Where("id IN ?", ids).Delete(&entity.Order{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})

	return deleted, err
}
