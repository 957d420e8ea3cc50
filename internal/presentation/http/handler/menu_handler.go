package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/hostalia/roomservice-api/internal/application/service"
	"github.com/hostalia/roomservice-api/internal/domain/entity"
	"github.com/hostalia/roomservice-api/internal/domain/repository"
	"github.com/hostalia/roomservice-api/internal/presentation/http/dto/request"
	"github.com/hostalia/roomservice-api/internal/presentation/http/dto/response"
	"github.com/hostalia/roomservice-api/internal/presentation/http/middleware"
)

// MenuHandler handles menu item endpoints
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// List handles GET /api/v1/hotels/:hotelId/menu
func (h *MenuHandler) List(c *gin.Context) {
	params := &repository.MenuItemFilterParams{
		Pagination:    getPagination(c),
		Search:        c.Query("search"),
		Category:      c.Query("category"),
		AvailableOnly: c.Query("available") == "true",
	}

	result, err := h.menuService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Menu items retrieved", result)
}

// Create handles POST /api/v1/hotels/:hotelId/menu
func (h *MenuHandler) Create(c *gin.Context) {
	var req request.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item := &entity.MenuItem{
		HotelID:     middleware.GetHotelID(c),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.PriceCents(),
		Available:   available,
	}
	if err := h.menuService.Create(c.Request.Context(), item); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Menu item created", item)
}

// Get handles GET /api/v1/hotels/:hotelId/menu/:id
func (h *MenuHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.menuService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu item retrieved", item)
}

// Update handles PUT /api/v1/hotels/:hotelId/menu/:id
func (h *MenuHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.menuService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Price != nil {
		item.Price = req.PriceCents()
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := h.menuService.Update(c.Request.Context(), item); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Menu item updated", item)
}

// Delete handles DELETE /api/v1/hotels/:hotelId/menu/:id
func (h *MenuHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.menuService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
