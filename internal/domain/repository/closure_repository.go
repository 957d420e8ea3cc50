package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hostalia/roomservice-api/internal/domain/entity"
	"github.com/hostalia/roomservice-api/pkg/pagination"
)

// ClosureRepository defines the interface for closure snapshot persistence
type ClosureRepository interface {
	// Upsert writes the snapshot keyed by (hotel, closure date). Rerunning a
	// closure for the same day overwrites the previous figures instead of
	// inserting a second row.
	Upsert(ctx context.Context, snapshot *entity.ClosureSnapshot) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ClosureSnapshot, error)
	GetByDate(ctx context.Context, hotelID uuid.UUID, date time.Time) (*entity.ClosureSnapshot, error)
	List(ctx context.Context, hotelID uuid.UUID, params *pagination.PaginationParams) ([]entity.ClosureSnapshot, int64, error)
}

// ArchiveRepository defines the interface for the append-only archived order store
type ArchiveRepository interface {
	// Insert writes one archived order. Inserts are idempotent on the
	// original order ID: retrying a partially archived batch never
	// duplicates rows.
	Insert(ctx context.Context, record *entity.ArchivedOrder) error
	List(ctx context.Context, hotelID uuid.UUID, from, to time.Time, params *pagination.PaginationParams) ([]entity.ArchivedOrder, int64, error)
	CountBetween(ctx context.Context, hotelID uuid.UUID, from, to time.Time) (int64, error)
}
