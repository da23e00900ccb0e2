package repository

import (
	"context"

	"github.com/ecofinds/marketplace-service/internal/domain"
	pkgdto "github.com/ecofinds/marketplace-service/pkg/dto"
)

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (data domain.User, err error)
	GetUserByUsername(ctx context.Context, username string) (data domain.User, err error)
	GetUserByID(ctx context.Context, id int64) (data domain.User, err error)
	AddUser(ctx context.Context, data domain.User) (id int64, err error)
	UpdateUser(ctx context.Context, data domain.User) (err error)
}

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id int64, err error)
	GetProductByID(ctx context.Context, id int64) (data domain.Product, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	// DeleteProduct removes the product row together with every cart and
	// wishlist row referencing it, in one transaction. Purchase item
	// snapshots are intentionally left alone.
	DeleteProduct(ctx context.Context, id int64) (err error)
	GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, err error)
	CountProducts(ctx context.Context, filter pkgdto.Filter) (count int64, err error)
	GetProductsBySellerID(ctx context.Context, sellerID int64) (data []domain.Product, err error)
}

type CartRepository interface {
	GetCartItemDetailsByUserID(ctx context.Context, userID int64) (data []domain.CartItemDetail, err error)
	GetCartItem(ctx context.Context, userID int64, productID int64) (data domain.CartItem, err error)
	AddCartItem(ctx context.Context, data domain.CartItem) (id int64, err error)
	UpdateCartItemQuantity(ctx context.Context, userID int64, productID int64, quantity int64) (err error)
	DeleteCartItem(ctx context.Context, userID int64, productID int64) (err error)
}

type PurchaseRepository interface {
	// HandleTrx runs fn against a repository bound to a single transaction;
	// any error rolls the whole transaction back.
	HandleTrx(ctx context.Context, fn func(ctx context.Context, repo PurchaseRepository) error) error

	GetCartItemsByUserID(ctx context.Context, userID int64) (data []domain.CartItem, err error)
	GetProductsByIDs(ctx context.Context, ids []int64) (data []domain.Product, err error)
	AddPurchase(ctx context.Context, data domain.Purchase) (id int64, err error)
	AddPurchaseItems(ctx context.Context, data []domain.PurchaseItem) (err error)
	DeleteCartItemsByUserID(ctx context.Context, userID int64) (err error)

	GetPurchaseByID(ctx context.Context, id int64) (data domain.Purchase, err error)
	GetPurchasesByUserID(ctx context.Context, userID int64) (data []domain.Purchase, err error)
	GetPurchaseItemsByPurchaseID(ctx context.Context, purchaseID int64) (data []domain.PurchaseItem, err error)
}

type WishlistRepository interface {
	GetWishlistProductsByUserID(ctx context.Context, userID int64) (data []domain.Product, err error)
	GetWishlistItem(ctx context.Context, userID int64, productID int64) (data domain.WishlistItem, err error)
	AddWishlistItem(ctx context.Context, data domain.WishlistItem) (id int64, err error)
	DeleteWishlistItem(ctx context.Context, userID int64, productID int64) (err error)
}
