package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hostalia/roomservice-api/internal/application/service"
	"github.com/hostalia/roomservice-api/internal/presentation/http/dto/request"
	"github.com/hostalia/roomservice-api/internal/presentation/http/dto/response"
	"github.com/hostalia/roomservice-api/internal/presentation/http/middleware"
)

// ClosureHandler handles Cierre Z endpoints
type ClosureHandler struct {
	closureService *service.ClosureService
}

// NewClosureHandler creates a new closure handler
func NewClosureHandler(closureService *service.ClosureService) *ClosureHandler {
	return &ClosureHandler{closureService: closureService}
}

// Run handles POST /api/v1/hotels/:hotelId/closures — executes the Cierre Z
func (h *ClosureHandler) Run(c *gin.Context) {
	var req request.RunClosureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.closureService.Run(
		c.Request.Context(),
		middleware.GetHotelID(c),
		middleware.GetUserID(c),
		middleware.IsSuperAdmin(c),
		req.Confirm,
	)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotConfirmed):
			response.BadRequest(c, "Closure requires explicit confirmation")
		case errors.Is(err, service.ErrClosureInProgress):
			response.Conflict(c, "A closure is already running for this hotel")
		case errors.Is(err, service.ErrNothingToClose):
			response.Conflict(c, "No finished orders to close today")
		case errors.Is(err, service.ErrDeleteAfterArchive):
			response.ErrorWithCode(c, 500, "Orders were archived but not deleted from the live store; rerun the closure")
		default:
			response.Error(c, err)
		}
		return
	}

	response.OK(c, "Closure completed", result)
}

// List handles GET /api/v1/hotels/:hotelId/closures.
// With ?date=YYYY-MM-DD it returns that single day's closure instead.
func (h *ClosureHandler) List(c *gin.Context) {
	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		snapshot, err := h.closureService.GetByDate(c.Request.Context(), middleware.GetHotelID(c), date)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Closure retrieved", snapshot)
		return
	}

	result, err := h.closureService.List(c.Request.Context(), middleware.GetHotelID(c), getPagination(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Closures retrieved", result)
}

// Get handles GET /api/v1/hotels/:hotelId/closures/:id
func (h *ClosureHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	snapshot, err := h.closureService.GetByID(c.Request.Context(), middleware.GetHotelID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Closure retrieved", snapshot)
}

// Reprint handles POST /api/v1/hotels/:hotelId/closures/:id/reprint
func (h *ClosureHandler) Reprint(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.closureService.Reprint(c.Request.Context(), middleware.GetHotelID(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Closure sent to printer", nil)
}

// Extract handles GET /api/v1/hotels/:hotelId/closures/:id/extract —
// the plain-text offline record
func (h *ClosureHandler) Extract(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	text, err := h.closureService.Extract(c.Request.Context(), middleware.GetHotelID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=cierre.txt")
	c.Data(200, "text/plain; charset=utf-8", []byte(text))
}

// ListArchived handles GET /api/v1/hotels/:hotelId/archive
func (h *ClosureHandler) ListArchived(c *gin.Context) {
	now := time.Now()
	from := getDateQuery(c, "from", now.AddDate(0, -1, 0))
	to := getDateQuery(c, "to", now)
	// Make the end date inclusive of its whole day
	to = to.AddDate(0, 0, 1)

	result, err := h.closureService.ListArchived(c.Request.Context(), middleware.GetHotelID(c), from, to, getPagination(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Archived orders retrieved", result)
}
