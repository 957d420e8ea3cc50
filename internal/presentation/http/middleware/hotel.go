package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hostalia/roomservice-api/internal/domain/repository"
	infraRepo "github.com/hostalia/roomservice-api/internal/infrastructure/repository"
	"github.com/hostalia/roomservice-api/internal/presentation/http/dto/response"
)

// HotelMiddleware resolves the hotel addressed by the :hotelId path
// parameter and verifies the authenticated user may operate it. The hotel ID
// is placed both in the Gin context and in the request context, so every
// repository call downstream is scoped to this hotel.
func HotelMiddleware(hotelRepo repository.HotelRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		hotelID, err := uuid.Parse(c.Param("hotelId"))
		if err != nil {
			response.BadRequest(c, "Invalid hotel ID")
			c.Abort()
			return
		}

		hotel, err := hotelRepo.GetByID(c.Request.Context(), hotelID)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if hotel == nil || !hotel.Active {
			response.NotFound(c, "Hotel not found")
			c.Abort()
			return
		}

		if !IsSuperAdmin(c) {
			userID := GetUserID(c)
			member, err := hotelRepo.IsMember(c.Request.Context(), hotelID, userID)
			if err != nil {
				response.Error(c, err)
				c.Abort()
				return
			}
			if !member {
				response.Forbidden(c, "Access denied to this hotel")
				c.Abort()
				return
			}
		}

		c.Set("hotel_id", hotel.ID)
		c.Set("hotel", hotel)

		ctx := infraRepo.WithHotel(c.Request.Context(), hotel.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetHotelID extracts the resolved hotel ID from the Gin context
func GetHotelID(c *gin.Context) uuid.UUID {
	hotelIDVal, exists := c.Get("hotel_id")
	if !exists {
		return uuid.Nil
	}
	hotelID, ok := hotelIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return hotelID
}
