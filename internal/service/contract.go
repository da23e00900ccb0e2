package service

import (
	"context"
	"mime/multipart"

	"github.com/ecofinds/marketplace-service/internal/dto"
	pkgdto "github.com/ecofinds/marketplace-service/pkg/dto"
)

// ImageStorage is the file storage collaborator for uploaded product images.
// Save rejects files whose extension is not an allowed image type.
type ImageStorage interface {
	Save(file *multipart.FileHeader) (filename string, err error)
	Remove(filename string) error
}

type UserService interface {
	Register(ctx context.Context, payload dto.RegisterRequest) (resp dto.AuthResponse, err error)
	Login(ctx context.Context, payload dto.LoginRequest) (resp dto.AuthResponse, err error)
	Refresh(ctx context.Context, refreshToken string) (resp dto.RefreshResponse, err error)
	GetCurrentUser(ctx context.Context, userID int64) (resp dto.UserResponse, err error)
	UpdateProfile(ctx context.Context, userID int64, payload dto.UpdateProfileRequest) (resp dto.UserResponse, err error)
}

type ProductService interface {
	AddProduct(ctx context.Context, sellerID int64, payload dto.CreateProductRequest) (resp dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, userID int64, productID int64, payload dto.UpdateProductRequest) (resp dto.ProductResponse, err error)
	DeleteProduct(ctx context.Context, userID int64, productID int64) (err error)
	GetProducts(ctx context.Context, filter pkgdto.Filter) (resp dto.ProductListResponse, err error)
	GetProductByID(ctx context.Context, productID int64) (resp dto.ProductResponse, err error)
	GetProductsBySeller(ctx context.Context, sellerID int64) (resp []dto.ProductResponse, err error)
}

type CartService interface {
	GetCart(ctx context.Context, userID int64) (resp []dto.CartItemResponse, err error)
	// AddItem reports created=true when a new cart row was inserted rather
	// than an existing one incremented.
	AddItem(ctx context.Context, userID int64, payload dto.AddCartItemRequest) (resp dto.CartMutationResponse, created bool, err error)
	// UpdateItem treats a quantity below one as removal, not as an error.
	UpdateItem(ctx context.Context, userID int64, productID int64, payload dto.UpdateCartItemRequest) (resp dto.CartMutationResponse, removed bool, err error)
	RemoveItem(ctx context.Context, userID int64, productID int64) (resp dto.CartMutationResponse, err error)
}

type PurchaseService interface {
	Checkout(ctx context.Context, userID int64) (resp dto.CheckoutResponse, err error)
	GetHistory(ctx context.Context, userID int64) (resp []dto.PurchaseResponse, err error)
}

type WishlistService interface {
	GetWishlist(ctx context.Context, userID int64) (resp []dto.ProductResponse, err error)
	AddToWishlist(ctx context.Context, userID int64, productID int64) (err error)
	RemoveFromWishlist(ctx context.Context, userID int64, productID int64) (err error)
}
