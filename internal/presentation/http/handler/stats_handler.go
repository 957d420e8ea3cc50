package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/hostalia/roomservice-api/internal/application/service"
	"github.com/hostalia/roomservice-api/internal/domain/entity"
	"github.com/hostalia/roomservice-api/internal/presentation/http/dto/response"
	"github.com/hostalia/roomservice-api/internal/presentation/http/middleware"
)

// StatsHandler handles day statistics endpoints
type StatsHandler struct {
	statsService  *service.StatsService
	reportService *service.ReportService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *service.StatsService, reportService *service.ReportService) *StatsHandler {
	return &StatsHandler{
		statsService:  statsService,
		reportService: reportService,
	}
}

// Today handles GET /api/v1/hotels/:hotelId/stats/today
func (h *StatsHandler) Today(c *gin.Context) {
	stats, err := h.statsService.TodayStats(c.Request.Context(), middleware.GetHotelID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Statistics retrieved", stats)
}

// Report handles POST /api/v1/hotels/:hotelId/stats/today/report — prints
// an informe_x, the mid-day report that closes nothing
func (h *StatsHandler) Report(c *gin.Context) {
	hotelID := middleware.GetHotelID(c)

	stats, err := h.statsService.TodayStats(c.Request.Context(), hotelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	hotelVal, _ := c.Get("hotel")
	hotel, ok := hotelVal.(*entity.Hotel)
	if !ok {
		response.NotFound(c, "Hotel not found")
		return
	}

	if err := h.reportService.SendDailyReport(c.Request.Context(), hotel, stats); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Report sent to printer", nil)
}
