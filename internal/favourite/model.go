package favourite

type Favourite struct {
	ID        int64 `json:"favourite_id"`
	UserID    int64 `json:"user_id"`
	ProductID int64 `json:"product_id"`
}

// Line is a favourite joined with its product.
type Line struct {
	FavouriteID int64  `json:"favourite_id"`
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url"`
}

// Request payload for POST and DELETE /favourites.
// swagger:model FavouriteRequest
type Request struct {
	UserID    int64 `json:"userId"    binding:"required" example:"1"`
	ProductID int64 `json:"productId" binding:"required" example:"4"`
}
