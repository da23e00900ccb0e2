package domain

type WishlistItem struct {
	ID        int64 `db:"id"`
	UserID    int64 `db:"user_id"`
	ProductID int64 `db:"product_id"`
	CreatedAt int64 `db:"created_at"`
}
