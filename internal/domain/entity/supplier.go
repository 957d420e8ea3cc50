package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supplier represents a provider a hotel sources kitchen stock from
type Supplier struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	HotelID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"hotel_id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	ContactName string         `gorm:"size:255" json:"contact_name,omitempty"`
	Phone       string         `gorm:"size:50" json:"phone,omitempty"`
	Email       string         `gorm:"size:255" json:"email,omitempty"`
	Notes       string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new supplier
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}
