package address

import "time"

type Address struct {
	ID          int64     `json:"address_id"`
	UserID      int64     `json:"user_id"`
	AddressLine string    `json:"address_line"`
	City        string    `json:"city"`
	PostalCode  string    `json:"postal_code"`
	Country     string    `json:"country"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
}

// Fields identifies an address by its content rather than its id.
// swagger:model AddressFields
type Fields struct {
	AddressLine string `json:"addressLine" binding:"required" example:"Calle Mayor 1"`
	City        string `json:"city"        binding:"required" example:"Madrid"`
	PostalCode  string `json:"postalCode"  binding:"required" example:"28013"`
	Country     string `json:"country"     binding:"required" example:"ES"`
}

// CreateRequest payload for POST /address.
// swagger:model CreateAddressRequest
type CreateRequest struct {
	UserID int64 `json:"userId" binding:"required" example:"1"`
	Fields
	IsDefault bool `json:"isDefault" example:"true"`
}
