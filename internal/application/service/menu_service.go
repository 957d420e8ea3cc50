package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/hostalia/roomservice-api/internal/domain/entity"
	"github.com/hostalia/roomservice-api/internal/domain/repository"
	"github.com/hostalia/roomservice-api/pkg/apperror"
	"github.com/hostalia/roomservice-api/pkg/pagination"
)

// MenuService handles menu item management
type MenuService struct {
	menuRepo repository.MenuItemRepository
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repository.MenuItemRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// Create adds a menu item to the hotel's catalog
func (s *MenuService) Create(ctx context.Context, item *entity.MenuItem) error {
	if item.Name == "" {
		return apperror.NewBadRequestError("Menu item name is required")
	}
	if item.Price < 0 {
		return apperror.NewBadRequestError("Menu item price cannot be negative")
	}
	return s.menuRepo.Create(ctx, item)
}

// GetByID returns one menu item, scoped to the hotel
func (s *MenuService) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// Update saves changes to a menu item
func (s *MenuService) Update(ctx context.Context, item *entity.MenuItem) error {
	if item.Price < 0 {
		return apperror.NewBadRequestError("Menu item price cannot be negative")
	}
	return s.menuRepo.Update(ctx, item)
}

// Delete removes a menu item. Past orders keep their name and price
// snapshots, so deletion never corrupts order history.
func (s *MenuService) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}
	return s.menuRepo.Delete(ctx, id)
}

// List returns menu items matching the filter
func (s *MenuService) List(ctx context.Context, params *repository.MenuItemFilterParams) (*pagination.PaginatedResult[entity.MenuItem], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	items, total, err := s.menuRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(items, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}
