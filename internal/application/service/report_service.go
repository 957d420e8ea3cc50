package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hostalia/roomservice-api/internal/domain/entity"
	"github.com/hostalia/roomservice-api/internal/domain/enum"
	"github.com/hostalia/roomservice-api/internal/domain/repository"
	"github.com/hostalia/roomservice-api/pkg/report"
	"github.com/hostalia/roomservice-api/pkg/webhook"
)

// ErrNoWebhookConfigured is returned when a hotel has no print webhook and
// no global default is configured either
var ErrNoWebhookConfigured = errors.New("no print webhook configured for hotel")

// PlaceholderItemName is rendered for a line item whose menu item was deleted
// before the snapshot name could be taken
const PlaceholderItemName = "Artículo eliminado"

// ReportService builds print payloads and dispatches them to the hotel's
// print webhook. It never retries: delivery guarantees are the print
// service's problem, not ours.
type ReportService struct {
	webhook    *webhook.Client
	auditRepo  repository.AuditRepository
	defaultURL string
	logger     *zap.Logger
}

// NewReportService creates a new report service
func NewReportService(client *webhook.Client, auditRepo repository.AuditRepository, defaultURL string, logger *zap.Logger) *ReportService {
	return &ReportService{
		webhook:    client,
		auditRepo:  auditRepo,
		defaultURL: defaultURL,
		logger:     logger,
	}
}

// webhookURL resolves the destination for a hotel's reports
func (s *ReportService) webhookURL(hotel *entity.Hotel) (string, error) {
	if hotel.PrintWebhookURL != "" {
		return hotel.PrintWebhookURL, nil
	}
	if s.defaultURL != "" {
		return s.defaultURL, nil
	}
	return "", ErrNoWebhookConfigured
}

// SendClosureReport dispatches a closure snapshot to the print service as a
// cierre_z (or reprintClosure) document
func (s *ReportService) SendClosureReport(ctx context.Context, hotel *entity.Hotel, snapshot *entity.ClosureSnapshot, reportType webhook.ReportType) error {
	url, err := s.webhookURL(hotel)
	if err != nil {
		return err
	}

	now := time.Now().In(hotel.Location())
	payload := &webhook.Request{
		HotelID:    hotel.ID.String(),
		ReportType: reportType,
		ReportData: webhook.ReportData{
			Fecha:              snapshot.ClosureDate.Format("02/01/2006"),
			Hora:               now.Format("15:04"),
			HotelName:          hotel.Name,
			TotalPedidos:       snapshot.TotalOrders,
			PedidosCompletados: snapshot.CompletedOrders,
			PedidosCancelados:  snapshot.CancelledOrders,
			PedidosEliminados:  snapshot.DeletedOrders,
			TotalDinero:        float64(snapshot.TotalRevenue) / 100,
			MetodosDetalle:     methodDetails(snapshot.Breakdown),
		},
	}

	if err := s.webhook.Dispatch(ctx, url, payload); err != nil {
		return err
	}

	s.recordDispatch(ctx, hotel.ID, snapshot.ClosedBy, string(reportType))
	return nil
}

// SendDailyReport dispatches an informe_x: the current day's live statistics,
// without closing anything
func (s *ReportService) SendDailyReport(ctx context.Context, hotel *entity.Hotel, stats *DayStatistics) error {
	url, err := s.webhookURL(hotel)
	if err != nil {
		return err
	}

	now := time.Now().In(hotel.Location())
	payload := &webhook.Request{
		HotelID:    hotel.ID.String(),
		ReportType: webhook.ReportInformeX,
		ReportData: webhook.ReportData{
			Fecha:              now.Format("02/01/2006"),
			Hora:               now.Format("15:04"),
			HotelName:          hotel.Name,
			TotalPedidos:       stats.TotalOrders,
			PedidosCompletados: stats.CompletedOrders,
			PedidosCancelados:  stats.CancelledOrders,
			TotalDinero:        float64(stats.TotalRevenue) / 100,
			MetodosDetalle:     methodDetails(stats.Breakdown),
		},
	}

	if err := s.webhook.Dispatch(ctx, url, payload); err != nil {
		return err
	}

	s.recordDispatch(ctx, hotel.ID, uuid.Nil, string(webhook.ReportInformeX))
	return nil
}

// SendOrderTicket dispatches a single order as a pedido_individual kitchen ticket
func (s *ReportService) SendOrderTicket(ctx context.Context, hotel *entity.Hotel, order *entity.Order) error {
	url, err := s.webhookURL(hotel)
	if err != nil {
		return err
	}

	now := time.Now().In(hotel.Location())
	payload := &webhook.Request{
		HotelID:    hotel.ID.String(),
		ReportType: webhook.ReportSingleOrder,
		ReportData: webhook.ReportData{
			Fecha:     now.Format("02/01/2006"),
			Hora:      now.Format("15:04"),
			HotelName: hotel.Name,
			Pedido: &webhook.OrderTicket{
				RoomNumber: order.RoomNumber,
				Items:      summarizeItems(order.Items),
				Total:      float64(order.Total) / 100,
				Notes:      order.Notes,
			},
		},
	}

	return s.webhook.Dispatch(ctx, url, payload)
}

// RenderExtract renders a closure snapshot as a fixed-width plain-text
// document, the offline record a hotel can download and keep
func (s *ReportService) RenderExtract(hotel *entity.Hotel, snapshot *entity.ClosureSnapshot) string {
	b := report.NewBuilder(32)
	b.Title("Cierre Z")
	b.Title(hotel.Name)
	b.Separator('=')
	b.KeyValue("Fecha", snapshot.ClosureDate.Format("02/01/2006"))
	b.KeyValue("Generado", snapshot.UpdatedAt.In(hotel.Location()).Format("02/01/2006 15:04"))
	b.Separator('-')
	b.KeyValue("Pedidos totales", fmt.Sprintf("%d", snapshot.TotalOrders))
	b.KeyValue("Completados", fmt.Sprintf("%d", snapshot.CompletedOrders))
	b.KeyValue("Cancelados", fmt.Sprintf("%d", snapshot.CancelledOrders))
	b.KeyValue("Eliminados", fmt.Sprintf("%d", snapshot.DeletedOrders))
	b.Separator('-')
	for _, method := range []enum.PaymentMethod{enum.PaymentRoomCharge, enum.PaymentCash, enum.PaymentCard} {
		totals, ok := snapshot.Breakdown[method]
		if !ok {
			continue
		}
		b.KeyValue(methodLabel(method), fmt.Sprintf("%d  %.2f", totals.Count, float64(totals.Subtotal)/100))
	}
	b.Separator('=')
	b.KeyValue("TOTAL", fmt.Sprintf("%.2f", float64(snapshot.TotalRevenue)/100))
	b.LineFeed()
	return b.String()
}

// recordDispatch writes a report.sent audit entry. Fire and forget: a failed
// audit write is logged, never surfaced.
func (s *ReportService) recordDispatch(ctx context.Context, hotelID, userID uuid.UUID, reportType string) {
	if s.auditRepo == nil {
		return
	}
	entry := &entity.AuditEntry{
		HotelID: hotelID,
		UserID:  userID,
		Action:  entity.AuditReportSent,
		Detail:  reportType,
	}
	if err := s.auditRepo.Record(ctx, entry); err != nil {
		s.logger.Warn("failed to record report dispatch",
			zap.String("hotel_id", hotelID.String()),
			zap.String("report_type", reportType),
			zap.Error(err))
	}
}

// methodLabel returns the printable Spanish label for a payment method
func methodLabel(method enum.PaymentMethod) string {
	switch method {
	case enum.PaymentRoomCharge:
		return "Cargo habitación"
	case enum.PaymentCash:
		return "Efectivo"
	case enum.PaymentCard:
		return "Tarjeta"
	default:
		return string(method)
	}
}

// methodDetails converts a payment breakdown to the webhook wire shape
func methodDetails(breakdown entity.PaymentBreakdown) map[string]webhook.MethodDetail {
	details := make(map[string]webhook.MethodDetail, len(breakdown))
	for method, totals := range breakdown {
		details[string(method)] = webhook.MethodDetail{
			Count:    totals.Count,
			Subtotal: float64(totals.Subtotal) / 100,
		}
	}
	return details
}

// summarizeItems renders order line items as a single human-readable string,
// e.g. "2x Club Sandwich, 1x Agua mineral"
func summarizeItems(items []entity.OrderItem) string {
	if len(items) == 0 {
		return ""
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		name := item.Name
		if name == "" {
			if item.MenuItem != nil {
				name = item.MenuItem.Name
			} else {
				name = PlaceholderItemName
			}
		}
		parts = append(parts, fmt.Sprintf("%dx %s", item.Quantity, name))
	}
	return strings.Join(parts, ", ")
}
