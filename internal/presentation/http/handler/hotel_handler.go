package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hostalia/roomservice-api/internal/application/service"
	"github.com/hostalia/roomservice-api/internal/domain/entity"
	"github.com/hostalia/roomservice-api/internal/presentation/http/dto/request"
	"github.com/hostalia/roomservice-api/internal/presentation/http/dto/response"
	"github.com/hostalia/roomservice-api/internal/presentation/http/middleware"
)

// HotelHandler handles hotel administration endpoints
type HotelHandler struct {
	hotelService *service.HotelService
}

// NewHotelHandler creates a new hotel handler
func NewHotelHandler(hotelService *service.HotelService) *HotelHandler {
	return &HotelHandler{hotelService: hotelService}
}

// List handles GET /api/v1/hotels — the hotels the user can operate
func (h *HotelHandler) List(c *gin.Context) {
	hotels, err := h.hotelService.ListForUser(c.Request.Context(), middleware.GetUserID(c), middleware.IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Hotels retrieved", hotels)
}

// Create handles POST /api/v1/hotels (super admin only)
func (h *HotelHandler) Create(c *gin.Context) {
	var req request.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	hotel := &entity.Hotel{
		Name:            req.Name,
		Slug:            req.Slug,
		Timezone:        req.Timezone,
		PrintWebhookURL: req.PrintWebhookURL,
		Active:          true,
	}
	if err := h.hotelService.Create(c.Request.Context(), hotel); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Hotel created", hotel)
}

// GetBySlug handles GET /api/v1/hotels/by-slug/:slug. The admin front-end
// addresses hotels by slug in its URLs and resolves the ID through here.
func (h *HotelHandler) GetBySlug(c *gin.Context) {
	hotel, err := h.hotelService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.hotelService.RequireAccess(c.Request.Context(), hotel.ID, middleware.GetUserID(c), middleware.IsSuperAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Hotel retrieved", hotel)
}

// Get handles GET /api/v1/hotels/:hotelId
func (h *HotelHandler) Get(c *gin.Context) {
	hotel, err := h.hotelService.GetByID(c.Request.Context(), middleware.GetHotelID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Hotel retrieved", hotel)
}

// Update handles PUT /api/v1/hotels/:hotelId
func (h *HotelHandler) Update(c *gin.Context) {
	var req request.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	hotel, err := h.hotelService.GetByID(c.Request.Context(), middleware.GetHotelID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	if req.Name != nil {
		hotel.Name = *req.Name
	}
	if req.Timezone != nil {
		hotel.Timezone = *req.Timezone
	}
	if req.PrintWebhookURL != nil {
		hotel.PrintWebhookURL = *req.PrintWebhookURL
	}
	if req.Active != nil {
		hotel.Active = *req.Active
	}

	if err := h.hotelService.Update(c.Request.Context(), hotel); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Hotel updated", hotel)
}

// AddMember handles POST /api/v1/hotels/:hotelId/members (super admin only)
func (h *HotelHandler) AddMember(c *gin.Context) {
	var req request.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.hotelService.AddMember(c.Request.Context(), middleware.GetHotelID(c), userID, req.Role); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Member added", nil)
}
