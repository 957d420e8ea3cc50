package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

// HotelIDKey is the context key for the current hotel (tenant) ID
const HotelIDKey ctxKey = "hotel_id"

// HotelScope returns a GORM scope that filters by the current hotel.
// This is applied to every query over hotel-scoped entities.
func HotelScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		hotelID, ok := ctx.Value(HotelIDKey).(uuid.UUID)
		if !ok {
			// Fail-safe: return no results if hotel context is missing.
			// This prevents accidental cross-hotel data access.
			return db.Where("1 = 0")
		}
		return db.Where("hotel_id = ?", hotelID)
	}
}

// WithHotel adds the hotel ID to context
func WithHotel(ctx context.Context, hotelID uuid.UUID) context.Context {
	return context.WithValue(ctx, HotelIDKey, hotelID)
}

// GetHotelID extracts the hotel ID from context
func GetHotelID(ctx context.Context) (uuid.UUID, bool) {
	hotelID, ok := ctx.Value(HotelIDKey).(uuid.UUID)
	return hotelID, ok
}
