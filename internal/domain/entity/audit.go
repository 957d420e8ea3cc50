package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit action tags. Administrative single-order deletions and the closure's
// own batch deletion carry distinct tags so their counts never conflate.
const (
	AuditOrderDeleted = "order.delete"
	AuditClosureRun   = "closure.run"
	AuditReportSent   = "report.sent"
)

// AuditEntry records an operator action for the audit trail.
// Writes are fire-and-forget: an audit failure never masks the triggering error.
type AuditEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	HotelID   uuid.UUID `gorm:"type:uuid;not null;index:idx_audit_hotel_action" json:"hotel_id"`
	UserID    uuid.UUID `gorm:"type:uuid" json:"user_id"`
	Action    string    `gorm:"size:100;not null;index:idx_audit_hotel_action" json:"action"`
	Detail    string    `gorm:"type:text" json:"detail,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new audit entry
func (a *AuditEntry) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AuditEntry model
func (AuditEntry) TableName() string {
	return "audit_entries"
}
