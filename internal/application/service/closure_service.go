package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hostalia/roomservice-api/internal/domain/entity"
	"github.com/hostalia/roomservice-api/internal/domain/repository"
	infra "github.com/hostalia/roomservice-api/internal/infrastructure/repository"
	"github.com/hostalia/roomservice-api/pkg/apperror"
	"github.com/hostalia/roomservice-api/pkg/pagination"
	"github.com/hostalia/roomservice-api/pkg/webhook"
)

// ClosureState is the phase a closure run is in. A run either walks the full
// sequence to Done or stops at Aborted; there is no partial success state,
// because every phase before deletion is safe to rerun.
type ClosureState int

const (
	ClosureIdle ClosureState = iota
	ClosureAggregating
	ClosurePersisting
	ClosureArchiving
	ClosureDeleting
	ClosureDispatching
	ClosureDone
	ClosureAborted
)

var closureStateNames = map[ClosureState]string{
	ClosureIdle:        "idle",
	ClosureAggregating: "aggregating",
	ClosurePersisting:  "persisting",
	ClosureArchiving:   "archiving",
	ClosureDeleting:    "deleting",
	ClosureDispatching: "dispatching",
	ClosureDone:        "done",
	ClosureAborted:     "aborted",
}

func (s ClosureState) String() string {
	if name, ok := closureStateNames[s]; ok {
		return name
	}
	return "unknown"
}

var (
	// ErrNotConfirmed is returned when a closure is requested without the
	// operator's explicit confirmation flag
	ErrNotConfirmed = errors.New("closure requires explicit confirmation")
	// ErrClosureInProgress is returned when a second closure is requested
	// for a hotel whose closure is still running
	ErrClosureInProgress = errors.New("a closure is already running for this hotel")
	// ErrNothingToClose is returned when the day has no finished orders
	ErrNothingToClose = errors.New("no finished orders to close")
	// ErrDeleteAfterArchive marks a deletion failure that happened after the
	// archive writes succeeded: archived copies and live originals coexist
	// until the closure is rerun
	ErrDeleteAfterArchive = errors.New("closed orders archived but not deleted")
)

// ClosureResult reports the outcome of a closure run
type ClosureResult struct {
	State          ClosureState            `json:"state"`
	Snapshot       *entity.ClosureSnapshot `json:"snapshot,omitempty"`
	ArchivedOrders int                     `json:"archived_orders"`
	DeletedOrders  int64                   `json:"deleted_orders"`
	ReportSent     bool                    `json:"report_sent"`
	Warning        string                  `json:"warning,omitempty"`
}

// MarshalJSON renders the state by name
func (r ClosureResult) MarshalJSON() ([]byte, error) {
	type Alias ClosureResult
	return json.Marshal(&struct {
		Alias
		State string `json:"state"`
	}{
		Alias: Alias(r),
		State: r.State.String(),
	})
}

// Broadcaster pushes an event to every client watching a hotel
type Broadcaster interface {
	Broadcast(hotelID uuid.UUID, event string, payload interface{})
}

// ClosureService orchestrates the Cierre Z: aggregate the day, persist the
// snapshot, archive finished orders, delete them from the live store, and
// dispatch the report. Archival strictly precedes deletion; an archival
// failure aborts the run with every live order intact.
type ClosureService struct {
	orderRepo   repository.OrderRepository
	closureRepo repository.ClosureRepository
	archiveRepo repository.ArchiveRepository
	auditRepo   repository.AuditRepository
	hotelRepo   repository.HotelRepository
	reports     *ReportService
	broadcaster Broadcaster
	logger      *zap.Logger

	archiveWorkers int

	// inFlight guards against concurrent closures per hotel
	mu       sync.Mutex
	inFlight map[uuid.UUID]struct{}
}

// NewClosureService creates a new closure service
func NewClosureService(
	orderRepo repository.OrderRepository,
	closureRepo repository.ClosureRepository,
	archiveRepo repository.ArchiveRepository,
	auditRepo repository.AuditRepository,
	hotelRepo repository.HotelRepository,
	reports *ReportService,
	broadcaster Broadcaster,
	logger *zap.Logger,
) *ClosureService {
	return &ClosureService{
		orderRepo:      orderRepo,
		closureRepo:    closureRepo,
		archiveRepo:    archiveRepo,
		auditRepo:      auditRepo,
		hotelRepo:      hotelRepo,
		reports:        reports,
		broadcaster:    broadcaster,
		logger:         logger,
		archiveWorkers: 8,
		inFlight:       make(map[uuid.UUID]struct{}),
	}
}

// begin marks a closure as running for the hotel. Returns false when one is
// already in flight.
func (s *ClosureService) begin(hotelID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, running := s.inFlight[hotelID]; running {
		return false
	}
	s.inFlight[hotelID] = struct{}{}
	return true
}

func (s *ClosureService) end(hotelID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, hotelID)
}

// Run executes the full closure for the hotel's current business day.
// The cutoff timestamp is captured once at the start: orders created while
// the closure runs belong to the next business day and are not touched.
func (s *ClosureService) Run(ctx context.Context, hotelID, userID uuid.UUID, superAdmin, confirmed bool) (*ClosureResult, error) {
	if !confirmed {
		return nil, ErrNotConfirmed
	}

	if !superAdmin {
		member, err := s.hotelRepo.IsMember(ctx, hotelID, userID)
		if err != nil {
			return nil, err
		}
		if !member {
			return nil, apperror.ErrForbidden
		}
	}

	if !s.begin(hotelID) {
		return nil, ErrClosureInProgress
	}
	defer s.end(hotelID)

	hotel, err := s.hotelRepo.GetByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, apperror.NewNotFoundError("Hotel")
	}

	ctx = infra.WithHotel(ctx, hotelID)

	cutoff := time.Now().In(hotel.Location())
	from := time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, cutoff.Location())

	result := &ClosureResult{State: ClosureAggregating}

	orders, err := s.orderRepo.ListBetween(ctx, hotelID, from, cutoff, nil)
	if err != nil {
		result.State = ClosureAborted
		return result, fmt.Errorf("loading day orders: %w", err)
	}

	stats := Aggregate(orders)

	finished := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status.IsFinished() {
			finished = append(finished, o)
		}
	}
	if len(finished) == 0 {
		result.State = ClosureAborted
		return result, ErrNothingToClose
	}

	// Administratively deleted orders are long gone from the live store;
	// their count comes from the audit trail. Losing it degrades the
	// snapshot, it does not block the closure.
	deletedCount, err := s.auditRepo.CountActionBetween(ctx, hotelID, entity.AuditOrderDeleted, from, cutoff)
	if err != nil {
		s.logger.Warn("failed to count deleted orders for closure",
			zap.String("hotel_id", hotelID.String()),
			zap.Error(err))
		deletedCount = 0
	}

	result.State = ClosurePersisting
	snapshot := &entity.ClosureSnapshot{
		HotelID:         hotelID,
		ClosureDate:     closureDate(cutoff),
		TotalOrders:     stats.TotalOrders,
		CompletedOrders: stats.CompletedOrders,
		CancelledOrders: stats.CancelledOrders,
		DeletedOrders:   int(deletedCount),
		TotalRevenue:    stats.TotalRevenue,
		Breakdown:       stats.Breakdown,
		ClosedBy:        userID,
	}
	if err := s.closureRepo.Upsert(ctx, snapshot); err != nil {
		result.State = ClosureAborted
		return result, fmt.Errorf("persisting closure snapshot: %w", err)
	}
	result.Snapshot = snapshot

	result.State = ClosureArchiving
	if err := s.archiveBatch(ctx, hotelID, finished, cutoff); err != nil {
		result.State = ClosureAborted
		return result, fmt.Errorf("archiving orders: %w", err)
	}
	result.ArchivedOrders = len(finished)

	result.State = ClosureDeleting
	deleted, err := s.orderRepo.DeleteFinishedBetween(ctx, hotelID, from, cutoff)
	if err != nil {
		// Archive rows are already written and idempotent on order ID,
		// so rerunning the closure is safe after this failure. Until then
		// the archived copies and the live originals coexist, so this is
		// logged for manual reconciliation.
		result.State = ClosureAborted
		s.logger.Error("closure deletion failed after archival, live and archived copies coexist",
			zap.String("hotel_id", hotelID.String()),
			zap.String("closure_date", snapshot.ClosureDate.Format("2006-01-02")),
			zap.Int("archived", result.ArchivedOrders),
			zap.Error(err))
		return result, fmt.Errorf("%w: %v", ErrDeleteAfterArchive, err)
	}
	result.DeletedOrders = deleted

	result.State = ClosureDispatching
	if err := s.reports.SendClosureReport(ctx, hotel, snapshot, webhook.ReportCierreZ); err != nil {
		s.logger.Warn("closure report dispatch failed",
			zap.String("hotel_id", hotelID.String()),
			zap.Error(err))
		result.Warning = "closure completed but the report could not be delivered to the print service"
	} else {
		result.ReportSent = true
	}

	s.recordRun(ctx, hotelID, userID, snapshot, deleted)

	if s.broadcaster != nil {
		s.broadcaster.Broadcast(hotelID, "closure.completed", snapshot)
	}

	result.State = ClosureDone
	s.logger.Info("closure completed",
		zap.String("hotel_id", hotelID.String()),
		zap.String("closure_date", snapshot.ClosureDate.Format("2006-01-02")),
		zap.Int("archived", result.ArchivedOrders),
		zap.Int64("deleted", deleted),
		zap.Bool("report_sent", result.ReportSent))

	return result, nil
}

// archiveBatch copies finished orders into the archive concurrently. All
// writes must succeed before the caller may delete anything; one failure
// cancels the group and aborts the run.
func (s *ClosureService) archiveBatch(ctx context.Context, hotelID uuid.UUID, orders []entity.Order, archivedAt time.Time) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.archiveWorkers)

	for i := range orders {
		order := orders[i]
		g.Go(func() error {
			record, err := buildArchivedOrder(hotelID, &order, archivedAt)
			if err != nil {
				return err
			}
			if err := s.archiveRepo.Insert(ctx, record); err != nil {
				return fmt.Errorf("order %s: %w", order.ID, err)
			}
			return nil
		})
	}

	return g.Wait()
}

// buildArchivedOrder denormalizes an order into its immutable archive record
func buildArchivedOrder(hotelID uuid.UUID, order *entity.Order, archivedAt time.Time) (*entity.ArchivedOrder, error) {
	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("order %s: serializing items: %w", order.ID, err)
	}
	return &entity.ArchivedOrder{
		HotelID:       hotelID,
		OrderID:       order.ID,
		RoomNumber:    order.RoomNumber,
		Status:        order.Status,
		PaymentMethod: order.PaymentMethod.OrDefault(),
		Total:         order.Total,
		ItemsSummary:  summarizeItems(order.Items),
		ItemsJSON:     itemsJSON,
		Notes:         order.Notes,
		OrderedAt:     order.CreatedAt,
		ArchivedAt:    archivedAt,
	}, nil
}

// recordRun writes the closure.run audit entry. Fire and forget.
func (s *ClosureService) recordRun(ctx context.Context, hotelID, userID uuid.UUID, snapshot *entity.ClosureSnapshot, deleted int64) {
	detail := fmt.Sprintf("date=%s orders=%d revenue_cents=%d deleted=%d",
		snapshot.ClosureDate.Format("2006-01-02"), snapshot.TotalOrders, snapshot.TotalRevenue, deleted)
	entry := &entity.AuditEntry{
		HotelID: hotelID,
		UserID:  userID,
		Action:  entity.AuditClosureRun,
		Detail:  detail,
	}
	if err := s.auditRepo.Record(ctx, entry); err != nil {
		s.logger.Warn("failed to record closure audit entry",
			zap.String("hotel_id", hotelID.String()),
			zap.Error(err))
	}
}

// Reprint resends a stored closure snapshot to the print service. Unlike the
// closure run itself, a dispatch failure here is the whole point of the call
// and is surfaced to the operator.
func (s *ClosureService) Reprint(ctx context.Context, hotelID, closureID uuid.UUID) error {
	snapshot, hotel, err := s.snapshotForHotel(ctx, hotelID, closureID)
	if err != nil {
		return err
	}
	return s.reports.SendClosureReport(ctx, hotel, snapshot, webhook.ReportReprint)
}

// Extract renders a stored closure as a plain-text document
func (s *ClosureService) Extract(ctx context.Context, hotelID, closureID uuid.UUID) (string, error) {
	snapshot, hotel, err := s.snapshotForHotel(ctx, hotelID, closureID)
	if err != nil {
		return "", err
	}
	return s.reports.RenderExtract(hotel, snapshot), nil
}

// GetByID returns one closure snapshot, scoped to the hotel
func (s *ClosureService) GetByID(ctx context.Context, hotelID, closureID uuid.UUID) (*entity.ClosureSnapshot, error) {
	snapshot, _, err := s.snapshotForHotel(ctx, hotelID, closureID)
	return snapshot, err
}

// GetByDate returns the hotel's closure for one calendar day, if any
func (s *ClosureService) GetByDate(ctx context.Context, hotelID uuid.UUID, date time.Time) (*entity.ClosureSnapshot, error) {
	snapshot, err := s.closureRepo.GetByDate(ctx, hotelID, closureDate(date))
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, apperror.NewNotFoundError("Closure")
	}
	return snapshot, nil
}

// List returns the hotel's closure history, newest first
func (s *ClosureService) List(ctx context.Context, hotelID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.ClosureSnapshot], error) {
	snapshots, total, err := s.closureRepo.List(ctx, hotelID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(snapshots, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// ListArchived returns archived orders for the hotel in [from, to)
func (s *ClosureService) ListArchived(ctx context.Context, hotelID uuid.UUID, from, to time.Time, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.ArchivedOrder], error) {
	records, total, err := s.archiveRepo.List(ctx, hotelID, from, to, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(records, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// snapshotForHotel loads a snapshot and verifies it belongs to the hotel.
// A snapshot from another hotel is indistinguishable from a missing one.
func (s *ClosureService) snapshotForHotel(ctx context.Context, hotelID, closureID uuid.UUID) (*entity.ClosureSnapshot, *entity.Hotel, error) {
	snapshot, err := s.closureRepo.GetByID(ctx, closureID)
	if err != nil {
		return nil, nil, err
	}
	if snapshot == nil || snapshot.HotelID != hotelID {
		return nil, nil, apperror.NewNotFoundError("Closure")
	}
	hotel, err := s.hotelRepo.GetByID(ctx, hotelID)
	if err != nil {
		return nil, nil, err
	}
	if hotel == nil {
		return nil, nil, apperror.NewNotFoundError("Hotel")
	}
	return snapshot, hotel, nil
}

// closureDate normalizes a local timestamp to its calendar date at UTC
// midnight, the canonical key for a closure row
func closureDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
