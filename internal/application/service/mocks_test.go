package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hostalia/roomservice-api/internal/domain/entity"
	"github.com/hostalia/roomservice-api/internal/domain/enum"
	"github.com/hostalia/roomservice-api/internal/domain/repository"
	"github.com/hostalia/roomservice-api/pkg/pagination"
)

type mockOrderRepo struct {
	CreateFn                func(ctx context.Context, order *entity.Order) error
	GetByIDFn               func(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetWithItemsFn          func(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	ListFn                  func(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error)
	ListBetweenFn           func(ctx context.Context, hotelID uuid.UUID, from, to time.Time, statuses []enum.OrderStatus) ([]entity.Order, error)
	UpdateStatusFn          func(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	DeleteFn                func(ctx context.Context, id uuid.UUID) error
	DeleteFinishedBetweenFn func(ctx context.Context, hotelID uuid.UUID, from, to time.Time) (int64, error)
}

func (m *mockOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	return m.CreateFn(ctx, order)
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockOrderRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return m.GetWithItemsFn(ctx, id)
}

func (m *mockOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	return m.ListFn(ctx, params)
}

func (m *mockOrderRepo) ListBetween(ctx context.Context, hotelID uuid.UUID, from, to time.Time, statuses []enum.OrderStatus) ([]entity.Order, error) {
	return m.ListBetweenFn(ctx, hotelID, from, to, statuses)
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	return m.UpdateStatusFn(ctx, id, status)
}

func (m *mockOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

func (m *mockOrderRepo) DeleteFinishedBetween(ctx context.Context, hotelID uuid.UUID, from, to time.Time) (int64, error) {
	return m.DeleteFinishedBetweenFn(ctx, hotelID, from, to)
}

type mockClosureRepo struct {
	UpsertFn    func(ctx context.Context, snapshot *entity.ClosureSnapshot) error
	GetByIDFn   func(ctx context.Context, id uuid.UUID) (*entity.ClosureSnapshot, error)
	GetByDateFn func(ctx context.Context, hotelID uuid.UUID, date time.Time) (*entity.ClosureSnapshot, error)
	ListFn      func(ctx context.Context, hotelID uuid.UUID, params *pagination.PaginationParams) ([]entity.ClosureSnapshot, int64, error)
}

func (m *mockClosureRepo) Upsert(ctx context.Context, snapshot *entity.ClosureSnapshot) error {
	return m.UpsertFn(ctx, snapshot)
}

func (m *mockClosureRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ClosureSnapshot, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockClosureRepo) GetByDate(ctx context.Context, hotelID uuid.UUID, date time.Time) (*entity.ClosureSnapshot, error) {
	return m.GetByDateFn(ctx, hotelID, date)
}

func (m *mockClosureRepo) List(ctx context.Context, hotelID uuid.UUID, params *pagination.PaginationParams) ([]entity.ClosureSnapshot, int64, error) {
	return m.ListFn(ctx, hotelID, params)
}

type mockArchiveRepo struct {
	InsertFn       func(ctx context.Context, record *entity.ArchivedOrder) error
	ListFn         func(ctx context.Context, hotelID uuid.UUID, from, to time.Time, params *pagination.PaginationParams) ([]entity.ArchivedOrder, int64, error)
	CountBetweenFn func(ctx context.Context, hotelID uuid.UUID, from, to time.Time) (int64, error)
}

func (m *mockArchiveRepo) Insert(ctx context.Context, record *entity.ArchivedOrder) error {
	return m.InsertFn(ctx, record)
}

func (m *mockArchiveRepo) List(ctx context.Context, hotelID uuid.UUID, from, to time.Time, params *pagination.PaginationParams) ([]entity.ArchivedOrder, int64, error) {
	return m.ListFn(ctx, hotelID, from, to, params)
}

func (m *mockArchiveRepo) CountBetween(ctx context.Context, hotelID uuid.UUID, from, to time.Time) (int64, error) {
	return m.CountBetweenFn(ctx, hotelID, from, to)
}

type mockAuditRepo struct {
	RecordFn             func(ctx context.Context, entry *entity.AuditEntry) error
	CountActionBetweenFn func(ctx context.Context, hotelID uuid.UUID, action string, from, to time.Time) (int64, error)
}

func (m *mockAuditRepo) Record(ctx context.Context, entry *entity.AuditEntry) error {
	if m.RecordFn == nil {
		return nil
	}
	return m.RecordFn(ctx, entry)
}

func (m *mockAuditRepo) CountActionBetween(ctx context.Context, hotelID uuid.UUID, action string, from, to time.Time) (int64, error) {
	if m.CountActionBetweenFn == nil {
		return 0, nil
	}
	return m.CountActionBetweenFn(ctx, hotelID, action, from, to)
}

type mockHotelRepo struct {
	CreateFn      func(ctx context.Context, hotel *entity.Hotel) error
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*entity.Hotel, error)
	GetBySlugFn   func(ctx context.Context, slug string) (*entity.Hotel, error)
	UpdateFn      func(ctx context.Context, hotel *entity.Hotel) error
	ListFn        func(ctx context.Context) ([]entity.Hotel, error)
	ListForUserFn func(ctx context.Context, userID uuid.UUID) ([]entity.Hotel, error)
	IsMemberFn    func(ctx context.Context, hotelID, userID uuid.UUID) (bool, error)
	AddMemberFn   func(ctx context.Context, membership *entity.HotelMembership) error
}

func (m *mockHotelRepo) Create(ctx context.Context, hotel *entity.Hotel) error {
	return m.CreateFn(ctx, hotel)
}

func (m *mockHotelRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockHotelRepo) GetBySlug(ctx context.Context, slug string) (*entity.Hotel, error) {
	return m.GetBySlugFn(ctx, slug)
}

func (m *mockHotelRepo) Update(ctx context.Context, hotel *entity.Hotel) error {
	return m.UpdateFn(ctx, hotel)
}

func (m *mockHotelRepo) List(ctx context.Context) ([]entity.Hotel, error) {
	return m.ListFn(ctx)
}

func (m *mockHotelRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]entity.Hotel, error) {
	return m.ListForUserFn(ctx, userID)
}

func (m *mockHotelRepo) IsMember(ctx context.Context, hotelID, userID uuid.UUID) (bool, error) {
	return m.IsMemberFn(ctx, hotelID, userID)
}

func (m *mockHotelRepo) AddMember(ctx context.Context, membership *entity.HotelMembership) error {
	return m.AddMemberFn(ctx, membership)
}

type mockMenuRepo struct {
	CreateFn   func(ctx context.Context, item *entity.MenuItem) error
	GetByIDFn  func(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	GetByIDsFn func(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error)
	UpdateFn   func(ctx context.Context, item *entity.MenuItem) error
	DeleteFn   func(ctx context.Context, id uuid.UUID) error
	ListFn     func(ctx context.Context, params *repository.MenuItemFilterParams) ([]entity.MenuItem, int64, error)
}

func (m *mockMenuRepo) Create(ctx context.Context, item *entity.MenuItem) error {
	return m.CreateFn(ctx, item)
}

func (m *mockMenuRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *mockMenuRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error) {
	return m.GetByIDsFn(ctx, ids)
}

func (m *mockMenuRepo) Update(ctx context.Context, item *entity.MenuItem) error {
	return m.UpdateFn(ctx, item)
}

func (m *mockMenuRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

func (m *mockMenuRepo) List(ctx context.Context, params *repository.MenuItemFilterParams) ([]entity.MenuItem, int64, error) {
	return m.ListFn(ctx, params)
}
