package seller

import "time"

// Seller is a farmer's store account.
type Seller struct {
	ID            int64     `json:"seller_id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	StoreName     string    `json:"store_name"`
	ContactNumber string    `json:"contact_number"`
	CreatedAt     time.Time `json:"created_at"`
}

// RegisterRequest payload for POST /register-farmer.
// swagger:model RegisterFarmerRequest
type RegisterRequest struct {
	Email         string `json:"email"         binding:"required" example:"farm@example.com"`
	Password      string `json:"password"      binding:"required" example:"s3cret"`
	StoreName     string `json:"storeName"     binding:"required" example:"Green Acres"`
	ContactNumber string `json:"contactNumber" binding:"required" example:"+34 600 000 000"`
}
