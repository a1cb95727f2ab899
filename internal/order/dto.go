package order

import (
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/mercado-granja/internal/address"
)

// CreateOrderItem line item submitted together with an order.
// swagger:model CreateOrderItem
type CreateOrderItem struct {
	ProductID int64            `json:"productId" binding:"required" example:"4"`
	Quantity  int              `json:"quantity"  binding:"gt=0" example:"2"`
	Price     *decimal.Decimal `json:"price"     binding:"required" swaggertype:"string" example:"4.50"`
}

// CreateOrderRequest payload of order creation. Address is resolved from
// AddressID, else from Address, else the user's default address.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	UserID     int64             `json:"userId"     binding:"required" example:"1"`
	TotalPrice *decimal.Decimal  `json:"totalPrice" binding:"required" swaggertype:"string" example:"9.00"`
	AddressID  int64             `json:"addressId"  example:"2"`
	Address    *address.Fields   `json:"address"`
	Items      []CreateOrderItem `json:"items"      binding:"omitempty,dive"`
}

// CreateDetailRequest payload of POST /order-details.
// swagger:model CreateDetailRequest
type CreateDetailRequest struct {
	OrderID   int64            `json:"orderId"   binding:"required" example:"1"`
	ProductID int64            `json:"productId" binding:"required" example:"4"`
	Quantity  int              `json:"quantity"  binding:"gt=0" example:"2"`
	Price     *decimal.Decimal `json:"price"     binding:"required" swaggertype:"string" example:"4.50"`
}
