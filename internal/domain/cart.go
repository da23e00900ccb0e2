package domain

import "github.com/lib/pq"

type CartItem struct {
	ID        int64 `db:"id"`
	UserID    int64 `db:"user_id"`
	ProductID int64 `db:"product_id"`
	Quantity  int64 `db:"quantity"`
	CreatedAt int64 `db:"created_at"`
	UpdatedAt int64 `db:"updated_at"`
}

// CartItemDetail is a cart row joined with the current state of its product.
type CartItemDetail struct {
	CartItem
	ProductTitle    string         `db:"product_title"`
	ProductPrice    float64        `db:"product_price"`
	ProductCategory string         `db:"product_category"`
	ProductImages   pq.StringArray `db:"product_images"`
	SellerID        int64          `db:"seller_id"`
}
