package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hostalia/roomservice-api/internal/domain/entity"
	domainRepo "github.com/hostalia/roomservice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type hotelRepository struct {
	db *gorm.DB
}

// NewHotelRepository creates a new hotel repository
func NewHotelRepository(db *gorm.DB) domainRepo.HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) Create(ctx context.Context, hotel *entity.Hotel) error {
	return r.db.WithContext(ctx).Create(hotel).Error
}

func (r *hotelRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	var hotel entity.Hotel
	err := r.db.WithContext(ctx).First(&hotel, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &hotel, err
}

func (r *hotelRepository) GetBySlug(ctx context.Context, slug string) (*entity.Hotel, error) {
	var hotel entity.Hotel
	err := r.db.WithContext(ctx).First(&hotel, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &hotel, err
}

func (r *hotelRepository) Update(ctx context.Context, hotel *entity.Hotel) error {
	return r.db.WithContext(ctx).Save(hotel).Error
}

func (r *hotelRepository) List(ctx context.Context) ([]entity.Hotel, error) {
	var hotels []entity.Hotel
	err := r.db.WithContext(ctx).Order("name ASC").Find(&hotels).Error
	return hotels, err
}

func (r *hotelRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]entity.Hotel, error) {
	var hotels []entity.Hotel
	err := r.db.WithContext(ctx).
		Joins("JOIN hotel_memberships ON hotel_memberships.hotel_id = hotels.id").
		Where("hotel_memberships.user_id = ?", userID).
		Order("hotels.name ASC").
		Find(&hotels).Error
	return hotels, err
}

func (r *hotelRepository) IsMember(ctx context.Context, hotelID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.HotelMembership{}).
		Where("hotel_id = ? AND user_id = ?", hotelID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *hotelRepository) AddMember(ctx context.Context, membership *entity.HotelMembership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}
