package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hostalia/roomservice-api/internal/application/service"
	"github.com/hostalia/roomservice-api/internal/domain/enum"
	"github.com/hostalia/roomservice-api/internal/domain/repository"
	"github.com/hostalia/roomservice-api/internal/presentation/http/dto/request"
	"github.com/hostalia/roomservice-api/internal/presentation/http/dto/response"
	"github.com/hostalia/roomservice-api/internal/presentation/http/middleware"
)

// OrderHandler handles live order endpoints
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles GET /api/v1/hotels/:hotelId/orders
func (h *OrderHandler) List(c *gin.Context) {
	params := &repository.OrderFilterParams{
		Pagination: getPagination(c),
		RoomNumber: c.Query("room"),
		SortBy:     c.DefaultQuery("sort_by", "created_at"),
		SortOrder:  c.DefaultQuery("sort_order", "desc"),
	}
	if raw := c.Query("status"); raw != "" {
		if status, ok := enum.ParseOrderStatus(raw); ok {
			params.Status = &status
		}
	}

	result, err := h.orderService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Orders retrieved", result)
}

// Create handles POST /api/v1/hotels/:hotelId/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateOrderInput{
		HotelID:       middleware.GetHotelID(c),
		RoomNumber:    req.RoomNumber,
		PaymentMethod: enum.PaymentMethod(req.PaymentMethod),
		Notes:         req.Notes,
	}
	for _, item := range req.Items {
		menuItemID, err := uuid.Parse(item.MenuItemID)
		if err != nil {
			response.BadRequest(c, "Invalid menu item ID")
			return
		}
		input.Items = append(input.Items, service.CreateOrderItemInput{
			MenuItemID: menuItemID,
			Quantity:   item.Quantity,
		})
	}

	order, err := h.orderService.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Order created", order)
}

// Get handles GET /api/v1/hotels/:hotelId/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), middleware.GetHotelID(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order retrieved", order)
}

// UpdateStatus handles PATCH /api/v1/hotels/:hotelId/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status, _ := enum.ParseOrderStatus(req.Status)
	order, err := h.orderService.UpdateStatus(c.Request.Context(), middleware.GetHotelID(c), id, status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order status updated", order)
}

// Delete handles DELETE /api/v1/hotels/:hotelId/orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	err := h.orderService.Delete(c.Request.Context(), middleware.GetHotelID(c), id, middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Print handles POST /api/v1/hotels/:hotelId/orders/:id/print
func (h *OrderHandler) Print(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.orderService.PrintTicket(c.Request.Context(), middleware.GetHotelID(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order ticket sent to printer", nil)
}
