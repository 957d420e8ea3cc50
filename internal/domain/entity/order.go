package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hostalia/roomservice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order represents one room-service request from a guest
type Order struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	HotelID       uuid.UUID          `gorm:"type:uuid;not null;index:idx_orders_hotel_created" json:"hotel_id"`
	RoomNumber    string             `gorm:"size:20;not null" json:"room_number"`
	Status        enum.OrderStatus   `gorm:"default:0;index" json:"status"`
	PaymentMethod enum.PaymentMethod `gorm:"size:20" json:"payment_method"`
	Total         int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Notes         string             `gorm:"type:text" json:"notes,omitempty"` // Special instructions from the guest
	CreatedAt     time.Time          `gorm:"index:idx_orders_hotel_created" json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	// Relationships
	Hotel Hotel       `gorm:"foreignKey:HotelID" json:"-"`
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(o),
		Total: float64(o.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem represents a line item in an order
type OrderItem struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	OrderID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"order_id"`
	MenuItemID *uuid.UUID `gorm:"type:uuid;index" json:"menu_item_id,omitempty"` // Nullable: the menu item may be deleted later
	Name       string     `gorm:"size:255;not null" json:"name"`                 // Snapshot of the menu item name at order time
	Quantity   int        `gorm:"not null" json:"quantity"`
	UnitPrice  int64      `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Total      int64      `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt  time.Time  `json:"created_at"`

	// Relationships
	Order    Order     `gorm:"foreignKey:OrderID" json:"-"`
	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID" json:"menu_item,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (oi OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(oi),
		UnitPrice: float64(oi.UnitPrice) / 100,
		Total:     float64(oi.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
