package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hostalia/roomservice-api/internal/domain/enum"
	"gorm.io/gorm"
)

// PaymentTotals accumulates the completed orders settled with one payment method
type PaymentTotals struct {
	Count    int   `json:"count"`
	Subtotal int64 `json:"-"` // Stored in cents
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p PaymentTotals) MarshalJSON() ([]byte, error) {
	type Alias PaymentTotals
	return json.Marshal(&struct {
		Alias
		Subtotal float64 `json:"subtotal"`
	}{
		Alias:    Alias(p),
		Subtotal: float64(p.Subtotal) / 100,
	})
}

// UnmarshalJSON restores the cents representation from a decimal subtotal
func (p *PaymentTotals) UnmarshalJSON(data []byte) error {
	var raw struct {
		Count    int     `json:"count"`
		Subtotal float64 `json:"subtotal"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Count = raw.Count
	p.Subtotal = int64(raw.Subtotal*100 + 0.5)
	return nil
}

// PaymentBreakdown maps payment methods to their totals over completed orders
type PaymentBreakdown map[enum.PaymentMethod]PaymentTotals

// ClosureSnapshot is the persisted financial summary of one Cierre Z.
// Exactly one row exists per (hotel, closure date); rerunning a closure for
// the same day overwrites the previous figures.
type ClosureSnapshot struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	HotelID         uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_closures_hotel_date" json:"hotel_id"`
	ClosureDate     time.Time        `gorm:"type:date;not null;uniqueIndex:idx_closures_hotel_date" json:"closure_date"`
	TotalOrders     int              `gorm:"default:0" json:"total_orders"`
	CompletedOrders int              `gorm:"default:0" json:"completed_orders"`
	CancelledOrders int              `gorm:"default:0" json:"cancelled_orders"`
	DeletedOrders   int              `gorm:"default:0" json:"deleted_orders"`
	TotalRevenue    int64            `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Breakdown       PaymentBreakdown `gorm:"type:jsonb;serializer:json" json:"payment_breakdown"`
	ClosedBy        uuid.UUID        `gorm:"type:uuid" json:"closed_by"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (c ClosureSnapshot) MarshalJSON() ([]byte, error) {
	type Alias ClosureSnapshot
	return json.Marshal(&struct {
		Alias
		TotalRevenue float64 `json:"total_revenue"`
	}{
		Alias:        Alias(c),
		TotalRevenue: float64(c.TotalRevenue) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new closure snapshot
func (c *ClosureSnapshot) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ClosureSnapshot model
func (ClosureSnapshot) TableName() string {
	return "daily_closures"
}
