package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64  `json:"product_id"`
	Name        string `json:"product_name"`
	Description string `json:"description"`
	// NUMERIC in Postgres, carried as its text form to avoid rounding
	Price     string    `json:"price"`
	ImageURL  string    `json:"image_url"`
	SellerID  int64     `json:"seller_id"`
	CreatedAt time.Time `json:"created_at"`
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: Failed to fetch products
	Error string `json:"error"`
}

// MessageResponse is the body of writes that return no row.
// swagger:model
type MessageResponse struct {
	// example: Product added successfully
	Message string `json:"message"`
}

// CreateProductRequest payload of creation.
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	Name        string           `json:"product_name" binding:"required" example:"Heirloom tomatoes"`
	Description string           `json:"description"  example:"1kg box"`
	Price       *decimal.Decimal `json:"price"        binding:"required" swaggertype:"string" example:"4.50"`
	ImageURL    string           `json:"image_url"    example:"https://cdn.example.com/tomatoes.jpg"`
	SellerID    int64            `json:"seller_id"    binding:"required" example:"1"`
}
