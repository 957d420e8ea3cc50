package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hostalia/roomservice-api/internal/domain/entity"
	domainRepo "github.com/hostalia/roomservice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit trail repository
func NewAuditRepository(db *gorm.DB) domainRepo.AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Record(ctx context.Context, entry *entity.AuditEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditRepository) CountActionBetween(ctx context.Context, hotelID uuid.UUID, action string, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.AuditEntry{}).
		Where("hotel_id = ?", hotelID).
		Where("action = ?", action).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	return count, err
}
