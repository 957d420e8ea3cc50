package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/hostalia/roomservice-api/internal/domain/entity"
)

// HotelRepository defines the interface for hotel (tenant) data operations
type HotelRepository interface {
	Create(ctx context.Context, hotel *entity.Hotel) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Hotel, error)
	Update(ctx context.Context, hotel *entity.Hotel) error
	List(ctx context.Context) ([]entity.Hotel, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]entity.Hotel, error)
	IsMember(ctx context.Context, hotelID, userID uuid.UUID) (bool, error)
	AddMember(ctx context.Context, membership *entity.HotelMembership) error
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
