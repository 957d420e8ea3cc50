package request

// CreateHotelRequest represents a hotel creation request
type CreateHotelRequest struct {
	Name            string `json:"name" binding:"required"`
	Slug            string `json:"slug" binding:"required"`
	Timezone        string `json:"timezone"`
	PrintWebhookURL string `json:"print_webhook_url" binding:"omitempty,url"`
}

// UpdateHotelRequest represents a hotel settings update. Absent fields are
// left untouched.
type UpdateHotelRequest struct {
	Name            *string `json:"name"`
	Timezone        *string `json:"timezone"`
	PrintWebhookURL *string `json:"print_webhook_url" binding:"omitempty,url"`
	Active          *bool   `json:"active"`
}

// AddMemberRequest grants a user access to a hotel
type AddMemberRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Role   string `json:"role" binding:"omitempty,oneof=owner manager operator"`
}
