package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hostalia/roomservice-api/internal/domain/entity"
)

// AuditRepository defines the interface for the audit trail
type AuditRepository interface {
	Record(ctx context.Context, entry *entity.AuditEntry) error
	// CountActionBetween counts entries with the given action tag for the
	// hotel in [from, to). Used to report the day's administratively
	// deleted orders in a closure snapshot.
	CountActionBetween(ctx context.Context, hotelID uuid.UUID, action string, from, to time.Time) (int64, error)
}
