package request

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	RoomNumber    string             `json:"room_number" binding:"required"`
	PaymentMethod string             `json:"payment_method" binding:"omitempty,oneof=room_charge cash card"`
	Notes         string             `json:"notes"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// OrderItemRequest is one requested line item
type OrderItemRequest struct {
	MenuItemID string `json:"menu_item_id" binding:"required,uuid"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
}

// UpdateOrderStatusRequest moves an order along its lifecycle
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending preparing completed cancelled"`
}

// RunClosureRequest represents a Cierre Z execution request. The confirm
// flag is the operator's explicit acknowledgement that live orders will be
// archived and deleted.
type RunClosureRequest struct {
	Confirm bool `json:"confirm"`
}
