package dto

type CartItemResponse struct {
	ID        int64    `json:"id"`
	ProductID int64    `json:"product_id"`
	Quantity  int64    `json:"quantity"`
	Title     string   `json:"title"`
	Price     float64  `json:"price"`
	Category  string   `json:"category"`
	Images    []string `json:"images"`
	SellerID  int64    `json:"seller_id"`
}

// CartMutationResponse returns the affected row (nil when the mutation removed
// it) together with the full refreshed cart.
type CartMutationResponse struct {
	Item *CartItemResponse  `json:"item"`
	Cart []CartItemResponse `json:"cart"`
}
