package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hostalia/roomservice-api/internal/domain/entity"
	domainRepo "github.com/hostalia/roomservice-api/internal/domain/repository"
	"github.com/hostalia/roomservice-api/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type closureRepository struct {
	db *gorm.DB
}

// NewClosureRepository creates a new closure snapshot repository
func NewClosureRepository(db *gorm.DB) domainRepo.ClosureRepository {
	return &closureRepository{db: db}
}

func (r *closureRepository) Upsert(ctx context.Context, snapshot *entity.ClosureSnapshot) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "hotel_id"}, {Name: "closure_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_orders", "completed_orders", "cancelled_orders",
			"deleted_orders", "total_revenue", "breakdown", "closed_by", "updated_at",
		}),
	}).Create(snapshot).Error
}

func (r *closureRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ClosureSnapshot, error) {
	var snapshot entity.ClosureSnapshot
	err := r.db.WithContext(ctx).
		Scopes(HotelScope(ctx)).
		First(&snapshot, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &snapshot, err
}

func (r *closureRepository) GetByDate(ctx context.Context, hotelID uuid.UUID, date time.Time) (*entity.ClosureSnapshot, error) {
	var snapshot entity.ClosureSnapshot
	err := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Where("closure_date = ?", date.Format("2006-01-02")).
		First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &snapshot, err
}

func (r *closureRepository) List(ctx context.Context, hotelID uuid.UUID, params *pagination.PaginationParams) ([]entity.ClosureSnapshot, int64, error) {
	var snapshots []entity.ClosureSnapshot
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ClosureSnapshot{}).
		Scopes(HotelScope(ctx)).
		Where("hotel_id = ?", hotelID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("closure_date DESC").
		Find(&snapshots).Error

	return snapshots, total, err
}

type archiveRepository struct {
	db *gorm.DB
}

// NewArchiveRepository creates a new archived order repository
func NewArchiveRepository(db *gorm.DB) domainRepo.ArchiveRepository {
	return &archiveRepository{db: db}
}

// Insert is idempotent on the original order ID: a retried batch skips rows
// that were already archived instead of duplicating or failing on them.
func (r *archiveRepository) Insert(ctx context.Context, record *entity.ArchivedOrder) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}},
		DoNothing: true,
	}).Create(record).Error
}

func (r *archiveRepository) List(ctx context.Context, hotelID uuid.UUID, from, to time.Time, params *pagination.PaginationParams) ([]entity.ArchivedOrder, int64, error) {
	var records []entity.ArchivedOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ArchivedOrder{}).
		Scopes(HotelScope(ctx)).
		Where("hotel_id = ?", hotelID)

	if !from.IsZero() {
		query = query.Where("ordered_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("ordered_at < ?", to)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("ordered_at DESC").
		Find(&records).Error

	return records, total, err
}

func (r *archiveRepository) CountBetween(ctx context.Context, hotelID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.ArchivedOrder{}).
		Where("hotel_id = ?", hotelID).
		Where("ordered_at >= ? AND ordered_at < ?", from, to).
		Count(&count).Error
	return count, err
}
