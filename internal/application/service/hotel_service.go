package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/hostalia/roomservice-api/internal/domain/entity"
	"github.com/hostalia/roomservice-api/internal/domain/repository"
	"github.com/hostalia/roomservice-api/pkg/apperror"
)

// HotelService handles hotel (tenant) administration
type HotelService struct {
	hotelRepo repository.HotelRepository
	userRepo  repository.UserRepository
}

// NewHotelService creates a new hotel service
func NewHotelService(hotelRepo repository.HotelRepository, userRepo repository.UserRepository) *HotelService {
	return &HotelService{
		hotelRepo: hotelRepo,
		userRepo:  userRepo,
	}
}

// RequireAccess verifies the user may operate the hotel. Super admins pass
// unconditionally; everyone else must hold a membership.
func (s *HotelService) RequireAccess(ctx context.Context, hotelID, userID uuid.UUID, superAdmin bool) error {
	if superAdmin {
		return nil
	}
	member, err := s.hotelRepo.IsMember(ctx, hotelID, userID)
	if err != nil {
		return err
	}
	if !member {
		return apperror.ErrForbidden
	}
	return nil
}

// Create registers a new hotel
func (s *HotelService) Create(ctx context.Context, hotel *entity.Hotel) error {
	hotel.Slug = strings.ToLower(strings.TrimSpace(hotel.Slug))
	if hotel.Name == "" || hotel.Slug == "" {
		return apperror.NewBadRequestError("Hotel name and slug are required")
	}

	existing, err := s.hotelRepo.GetBySlug(ctx, hotel.Slug)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperror.NewConflictError("A hotel with this slug already exists")
	}

	return s.hotelRepo.Create(ctx, hotel)
}

// GetByID returns one hotel
func (s *HotelService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	hotel, err := s.hotelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, apperror.NewNotFoundError("Hotel")
	}
	return hotel, nil
}

// GetBySlug returns one hotel by its URL slug
func (s *HotelService) GetBySlug(ctx context.Context, slug string) (*entity.Hotel, error) {
	hotel, err := s.hotelRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, apperror.NewNotFoundError("Hotel")
	}
	return hotel, nil
}

// Update saves hotel settings (name, timezone, print webhook, active flag)
func (s *HotelService) Update(ctx context.Context, hotel *entity.Hotel) error {
	return s.hotelRepo.Update(ctx, hotel)
}

// ListForUser returns the hotels a user can operate; super admins see all
func (s *HotelService) ListForUser(ctx context.Context, userID uuid.UUID, superAdmin bool) ([]entity.Hotel, error) {
	if superAdmin {
		return s.hotelRepo.List(ctx)
	}
	return s.hotelRepo.ListForUser(ctx, userID)
}

// AddMember grants a user access to a hotel with the given role
func (s *HotelService) AddMember(ctx context.Context, hotelID, userID uuid.UUID, role string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	if role == "" {
		role = "operator"
	}
	return s.hotelRepo.AddMember(ctx, &entity.HotelMembership{
		HotelID: hotelID,
		UserID:  userID,
		Role:    role,
	})
}
