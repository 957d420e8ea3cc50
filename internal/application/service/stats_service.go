package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hostalia/roomservice-api/internal/domain/entity"
	"github.com/hostalia/roomservice-api/internal/domain/enum"
	"github.com/hostalia/roomservice-api/internal/domain/repository"
	"github.com/hostalia/roomservice-api/pkg/apperror"
)

// DayStatistics holds the counts and revenue for one hotel's business day.
// It is derived state: recomputed from live orders on demand and therefore
// zero immediately after a successful closure.
type DayStatistics struct {
	TotalOrders     int                     `json:"total_orders"`
	PendingOrders   int                     `json:"pending_orders"`
	PreparingOrders int                     `json:"preparing_orders"`
	CompletedOrders int                     `json:"completed_orders"`
	CancelledOrders int                     `json:"cancelled_orders"`
	TotalRevenue    int64                   `json:"-"` // Stored in cents
	AverageTicket   float64                 `json:"average_ticket"`
	Breakdown       entity.PaymentBreakdown `json:"payment_breakdown"`

	// ArchivedOrders counts today's orders already moved to the archive by
	// an earlier closure. Zero on a normal day; nonzero after a mid-day
	// Cierre Z, when the live counters above have been reset.
	ArchivedOrders int64 `json:"archived_orders"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (s DayStatistics) MarshalJSON() ([]byte, error) {
	type Alias DayStatistics
	return json.Marshal(&struct {
		Alias
		TotalRevenue float64 `json:"total_revenue"`
	}{
		Alias:        Alias(s),
		TotalRevenue: float64(s.TotalRevenue) / 100,
	})
}

// Aggregate folds a day's orders into counts, revenue and the per-payment-method
// breakdown. Pure and deterministic: no I/O, same input always yields the same
// output. Revenue comes from completed orders only; cancelled and in-flight
// orders never contribute. Orders without a payment method count as room charge.
// An empty input yields all-zero statistics, and the average ticket is 0 rather
// than a division by zero when nothing was completed.
func Aggregate(orders []entity.Order) *DayStatistics {
	stats := &DayStatistics{Breakdown: entity.PaymentBreakdown{}}

	for _, o := range orders {
		stats.TotalOrders++
		switch o.Status {
		case enum.OrderStatusPending:
			stats.PendingOrders++
		case enum.OrderStatusPreparing:
			stats.PreparingOrders++
		case enum.OrderStatusCompleted:
			stats.CompletedOrders++
			stats.TotalRevenue += o.Total

			method := o.PaymentMethod.OrDefault()
			totals := stats.Breakdown[method]
			totals.Count++
			totals.Subtotal += o.Total
			stats.Breakdown[method] = totals
		case enum.OrderStatusCancelled:
			stats.CancelledOrders++
		}
	}

	if stats.CompletedOrders > 0 {
		stats.AverageTicket = float64(stats.TotalRevenue) / 100 / float64(stats.CompletedOrders)
	}

	return stats
}

// StatsService computes the operator-facing statistics for the current day
type StatsService struct {
	orderRepo   repository.OrderRepository
	hotelRepo   repository.HotelRepository
	archiveRepo repository.ArchiveRepository
}

// NewStatsService creates a new stats service
func NewStatsService(orderRepo repository.OrderRepository, hotelRepo repository.HotelRepository, archiveRepo repository.ArchiveRepository) *StatsService {
	return &StatsService{
		orderRepo:   orderRepo,
		hotelRepo:   hotelRepo,
		archiveRepo: archiveRepo,
	}
}

// TodayStats folds the hotel's live orders for the current (hotel-local) day
func (s *StatsService) TodayStats(ctx context.Context, hotelID uuid.UUID) (*DayStatistics, error) {
	hotel, err := s.hotelRepo.GetByID(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, apperror.NewNotFoundError("Hotel")
	}

	now := time.Now().In(hotel.Location())
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	orders, err := s.orderRepo.ListBetween(ctx, hotelID, from, now, nil)
	if err != nil {
		return nil, err
	}

	stats := Aggregate(orders)

	archived, err := s.archiveRepo.CountBetween(ctx, hotelID, from, now)
	if err != nil {
		return nil, err
	}
	stats.ArchivedOrders = archived

	return stats, nil
}
