package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/hostalia/roomservice-api/internal/domain/entity"
	"github.com/hostalia/roomservice-api/internal/domain/repository"
	"github.com/hostalia/roomservice-api/pkg/apperror"
	"github.com/hostalia/roomservice-api/pkg/pagination"
)

// SupplierService handles the hotel's supplier contact book
type SupplierService struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repository.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// Create adds a supplier
func (s *SupplierService) Create(ctx context.Context, supplier *entity.Supplier) error {
	if supplier.Name == "" {
		return apperror.NewBadRequestError("Supplier name is required")
	}
	return s.supplierRepo.Create(ctx, supplier)
}

// GetByID returns one supplier, scoped to the hotel
func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// Update saves changes to a supplier
func (s *SupplierService) Update(ctx context.Context, supplier *entity.Supplier) error {
	return s.supplierRepo.Update(ctx, supplier)
}

// Delete removes a supplier
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return apperror.NewNotFoundError("Supplier")
	}
	return s.supplierRepo.Delete(ctx, id)
}

// List returns suppliers, optionally filtered by a name search
func (s *SupplierService) List(ctx context.Context, search string, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Supplier], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()

	suppliers, total, err := s.supplierRepo.List(ctx, search, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(suppliers, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}
