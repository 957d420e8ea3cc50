package request

// CreateMenuItemRequest represents a menu item creation request.
// Price is decimal euros on the wire, stored as cents.
type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Available   *bool   `json:"available"`
}

// PriceCents converts the decimal price to cents
func (r *CreateMenuItemRequest) PriceCents() int64 {
	return int64(r.Price*100 + 0.5)
}

// UpdateMenuItemRequest represents a menu item update. Absent fields are
// left untouched.
type UpdateMenuItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Available   *bool    `json:"available"`
}

// PriceCents converts the decimal price to cents
func (r *UpdateMenuItemRequest) PriceCents() int64 {
	return int64(*r.Price*100 + 0.5)
}
