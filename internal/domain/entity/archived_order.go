package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hostalia/roomservice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// ArchivedOrder is the immutable historical copy of a finished order,
// created during Cierre Z. The live order and its items are deleted after
// archival, so the line items are denormalized into ItemsSummary (a human
// readable rendering) and ItemsJSON (the raw records, serialized verbatim).
type ArchivedOrder struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	HotelID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"hotel_id"`
	OrderID       uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex" json:"order_id"`
	RoomNumber    string             `gorm:"size:20;not null" json:"room_number"`
	Status        enum.OrderStatus   `gorm:"not null" json:"status"`
	PaymentMethod enum.PaymentMethod `gorm:"size:20" json:"payment_method"`
	Total         int64              `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	ItemsSummary  string             `gorm:"type:text" json:"items_summary"`
	ItemsJSON     json.RawMessage    `gorm:"type:jsonb" json:"items,omitempty"`
	Notes         string             `gorm:"type:text" json:"notes,omitempty"`
	OrderedAt     time.Time          `gorm:"not null" json:"ordered_at"`
	ArchivedAt    time.Time          `gorm:"not null" json:"archived_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (a ArchivedOrder) MarshalJSON() ([]byte, error) {
	type Alias ArchivedOrder
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(a),
		Total: float64(a.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new archived order
func (a *ArchivedOrder) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ArchivedOrder model
func (ArchivedOrder) TableName() string {
	return "archived_orders"
}
