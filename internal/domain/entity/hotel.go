package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hotel represents one property (tenant) in the multitenant system.
// All order, menu, supplier and closure data is partitioned by hotel ID.
type Hotel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	Slug            string         `gorm:"size:255;unique;not null" json:"slug"`
	Timezone        string         `gorm:"size:64;default:'Europe/Madrid'" json:"timezone"`
	PrintWebhookURL string         `gorm:"size:512" json:"print_webhook_url"`
	Active          bool           `gorm:"default:true" json:"active"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Members []HotelMembership `gorm:"foreignKey:HotelID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new hotel
func (h *Hotel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Hotel model
func (Hotel) TableName() string {
	return "hotels"
}

// Location resolves the hotel's timezone, falling back to UTC.
// Closure date boundaries are always computed in hotel-local time.
func (h *Hotel) Location() *time.Location {
	loc, err := time.LoadLocation(h.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// HotelMembership represents a user's membership in a hotel
type HotelMembership struct {
	HotelID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"hotel_id"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Role      string    `gorm:"size:50;default:'operator'" json:"role"` // owner, manager, operator
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Hotel Hotel `gorm:"foreignKey:HotelID" json:"-"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`
}

// TableName returns the table name for the HotelMembership model
func (HotelMembership) TableName() string {
	return "hotel_memberships"
}
