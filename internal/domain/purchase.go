package domain

// Purchase and PurchaseItem are immutable once written. PurchaseItem carries a
// denormalized copy of the product state at checkout time; product_id has no
// foreign key so the snapshot survives later product deletion.
type Purchase struct {
	ID          int64   `db:"id"`
	OrderNumber string  `db:"order_number"`
	UserID      int64   `db:"user_id"`
	TotalAmount float64 `db:"total_amount"`
	CreatedAt   int64   `db:"created_at"`
}

type PurchaseItem struct {
	ID              int64   `db:"id"`
	PurchaseID      int64   `db:"purchase_id"`
	ProductID       int64   `db:"product_id"`
	ProductTitle    string  `db:"product_title"`
	ProductImage    *string `db:"product_image"`
	Quantity        int64   `db:"quantity"`
	PriceAtPurchase float64 `db:"price_at_purchase"`
}
