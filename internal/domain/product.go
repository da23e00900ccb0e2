package domain

import "github.com/lib/pq"

type Product struct {
	ID          int64          `db:"id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Category    string         `db:"category"`
	Price       float64        `db:"price"`
	SellerID    int64          `db:"seller_id"`
	Images      pq.StringArray `db:"images"`
	CreatedAt   int64          `db:"created_at"`
	UpdatedAt   int64          `db:"updated_at"`
}
