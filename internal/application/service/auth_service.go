package service

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hostalia/roomservice-api/internal/domain/entity"
	"github.com/hostalia/roomservice-api/internal/domain/repository"
	"github.com/hostalia/roomservice-api/pkg/apperror"
	"github.com/hostalia/roomservice-api/pkg/utils"
)

// TokenPair carries the freshly issued access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService handles authentication operations
type AuthService struct {
	userRepo   repository.UserRepository
	hotelRepo  repository.HotelRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, hotelRepo repository.HotelRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		hotelRepo:  hotelRepo,
		jwtManager: jwtManager,
	}
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, *TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, apperror.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, apperror.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidToken
	}

	return s.issueTokens(user)
}

// CreateUser registers a new operator account. Only super admins may call
// this; the handler enforces that.
func (s *AuthService) CreateUser(ctx context.Context, firstName, lastName, email, password string, superAdmin bool) (*entity.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A user with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		Password:   string(hashed),
		SuperAdmin: superAdmin,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Profile returns the user and the hotels they can operate
func (s *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*entity.User, []entity.Hotel, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, apperror.NewNotFoundError("User")
	}

	var hotels []entity.Hotel
	if user.SuperAdmin {
		hotels, err = s.hotelRepo.List(ctx)
	} else {
		hotels, err = s.hotelRepo.ListForUser(ctx, userID)
	}
	if err != nil {
		return nil, nil, err
	}
	return user, hotels, nil
}

func (s *AuthService) issueTokens(user *entity.User) (*TokenPair, error) {
	access, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.SuperAdmin)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
