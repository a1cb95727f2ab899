package cart

type Item struct {
	ID        int64 `json:"cart_id"`
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Line is a cart row joined with its product.
type Line struct {
	CartID      int64  `json:"cart_id"`
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	Quantity    int    `json:"quantity"`
}

// AddRequest payload for POST /cart.
// swagger:model AddCartRequest
type AddRequest struct {
	UserID    int64 `json:"userId"    binding:"required" example:"1"`
	ProductID int64 `json:"productId" binding:"required" example:"4"`
	Quantity  int   `json:"quantity"  binding:"gt=0" example:"2"`
}

// RemoveRequest payload for DELETE /cart.
// swagger:model RemoveCartRequest
type RemoveRequest struct {
	UserID    int64 `json:"userId"    binding:"required" example:"1"`
	ProductID int64 `json:"productId" binding:"required" example:"4"`
}
