package order

import "time"

type Order struct {
	ID         int64     `json:"order_id"`
	UserID     int64     `json:"user_id"`
	TotalPrice string    `json:"total_price"` // NUMERIC -> string
	AddressID  int64     `json:"address_id"`
	CreatedAt  time.Time `json:"created_at"`
	Items      []Detail  `json:"items,omitempty"`
}

type Detail struct {
	ID        int64     `json:"order_detail_id"`
	OrderID   int64     `json:"order_id"`
	ProductID int64     `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Price     string    `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}
