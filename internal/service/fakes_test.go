package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/ecofinds/marketplace-service/config"
	"github.com/ecofinds/marketplace-service/internal/domain"
	"github.com/ecofinds/marketplace-service/internal/repository"
	pkgdto "github.com/ecofinds/marketplace-service/pkg/dto"
	"github.com/ecofinds/marketplace-service/pkg/errs"
)

func testConfig() config.Config {
	return config.Config{
		JWTConfig: config.JWTConfig{
			Secret:          "test-secret",
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: 30 * 24 * time.Hour,
		},
		UploadConfig: config.UploadConfig{
			Dir:        "uploads",
			PublicPath: "/uploads",
			BaseURL:    "http://localhost:8080",
		},
	}
}

type fakeUserRepository struct {
	users  []domain.User
	nextID int64
}

func (r *fakeUserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, nil
}

func (r *fakeUserRepository) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, nil
}

func (r *fakeUserRepository) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, nil
}

func (r *fakeUserRepository) AddUser(ctx context.Context, data domain.User) (int64, error) {
	r.nextID++
	data.ID = r.nextID
	data.CreatedAt = time.Now().UnixMilli()
	data.UpdatedAt = data.CreatedAt
	r.users = append(r.users, data)
	return data.ID, nil
}

func (r *fakeUserRepository) UpdateUser(ctx context.Context, data domain.User) error {
	for i, u := range r.users {
		if u.ID == data.ID {
			r.users[i] = data
			return nil
		}
	}
	return nil
}

type fakeProductRepository struct {
	products []domain.Product
	nextID   int64
}

func (r *fakeProductRepository) AddProduct(ctx context.Context, data domain.Product) (int64, error) {
	r.nextID++
	data.ID = r.nextID
	now := time.Now().UnixMilli()
	data.CreatedAt = now
	data.UpdatedAt = now
	r.products = append(r.products, data)
	return data.ID, nil
}

func (r *fakeProductRepository) GetProductByID(ctx context.Context, id int64) (domain.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, nil
}

func (r *fakeProductRepository) UpdateProduct(ctx context.Context, data domain.Product) error {
	for i, p := range r.products {
		if p.ID == data.ID {
			r.products[i] = data
			return nil
		}
	}
	return nil
}

func (r *fakeProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeProductRepository) matches(p domain.Product, filter pkgdto.Filter) bool {
	if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
		return false
	}
	if filter.Q != "" {
		q := strings.ToLower(filter.Q)
		if !strings.Contains(strings.ToLower(p.Title), q) && !strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	return true
}

func (r *fakeProductRepository) GetProducts(ctx context.Context, filter pkgdto.Filter) ([]domain.Product, error) {
	var filtered []domain.Product
	for _, p := range r.products {
		if r.matches(p, filter) {
			filtered = append(filtered, p)
		}
	}

	offset := (filter.Page - 1) * filter.PerPage
	if offset >= len(filtered) {
		return nil, nil
	}
	end := offset + filter.PerPage
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], nil
}

func (r *fakeProductRepository) CountProducts(ctx context.Context, filter pkgdto.Filter) (int64, error) {
	var count int64
	for _, p := range r.products {
		if r.matches(p, filter) {
			count++
		}
	}
	return count, nil
}

func (r *fakeProductRepository) GetProductsBySellerID(ctx context.Context, sellerID int64) ([]domain.Product, error) {
	var data []domain.Product
	for _, p := range r.products {
		if p.SellerID == sellerID {
			data = append(data, p)
		}
	}
	return data, nil
}

type fakeCartRepository struct {
	items       []domain.CartItem
	productRepo *fakeProductRepository
	nextID      int64
}

func (r *fakeCartRepository) GetCartItemDetailsByUserID(ctx context.Context, userID int64) ([]domain.CartItemDetail, error) {
	var data []domain.CartItemDetail
	for _, item := range r.items {
		if item.UserID != userID {
			continue
		}
		product, _ := r.productRepo.GetProductByID(ctx, item.ProductID)
		data = append(data, domain.CartItemDetail{
			CartItem:        item,
			ProductTitle:    product.Title,
			ProductPrice:    product.Price,
			ProductCategory: product.Category,
			ProductImages:   product.Images,
			SellerID:        product.SellerID,
		})
	}
	return data, nil
}

func (r *fakeCartRepository) GetCartItem(ctx context.Context, userID int64, productID int64) (domain.CartItem, error) {
	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			return item, nil
		}
	}
	return domain.CartItem{}, nil
}

func (r *fakeCartRepository) AddCartItem(ctx context.Context, data domain.CartItem) (int64, error) {
	r.nextID++
	data.ID = r.nextID
	now := time.Now().UnixMilli()
	data.CreatedAt = now
	data.UpdatedAt = now
	r.items = append(r.items, data)
	return data.ID, nil
}

func (r *fakeCartRepository) UpdateCartItemQuantity(ctx context.Context, userID int64, productID int64, quantity int64) error {
	for i, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			r.items[i].Quantity = quantity
			r.items[i].UpdatedAt = time.Now().UnixMilli()
			return nil
		}
	}
	return nil
}

func (r *fakeCartRepository) DeleteCartItem(ctx context.Context, userID int64, productID int64) error {
	for i, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakePurchaseRepository models transaction semantics by snapshotting its
// state before running the closure and restoring it on error.
type fakePurchaseRepository struct {
	cartItems     []domain.CartItem
	products      map[int64]domain.Product
	purchases     []domain.Purchase
	purchaseItems []domain.PurchaseItem
	nextID        int64
}

func (r *fakePurchaseRepository) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo repository.PurchaseRepository) error) error {
	snapshot := *r
	snapshot.cartItems = append([]domain.CartItem(nil), r.cartItems...)
	snapshot.purchases = append([]domain.Purchase(nil), r.purchases...)
	snapshot.purchaseItems = append([]domain.PurchaseItem(nil), r.purchaseItems...)

	if err := fn(ctx, r); err != nil {
		*r = snapshot
		return err
	}
	return nil
}

func (r *fakePurchaseRepository) GetCartItemsByUserID(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	var data []domain.CartItem
	for _, item := range r.cartItems {
		if item.UserID == userID {
			data = append(data, item)
		}
	}
	return data, nil
}

func (r *fakePurchaseRepository) GetProductsByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	var data []domain.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			data = append(data, p)
		}
	}
	return data, nil
}

func (r *fakePurchaseRepository) AddPurchase(ctx context.Context, data domain.Purchase) (int64, error) {
	r.nextID++
	data.ID = r.nextID
	data.CreatedAt = time.Now().UnixMilli()
	r.purchases = append(r.purchases, data)
	return data.ID, nil
}

func (r *fakePurchaseRepository) AddPurchaseItems(ctx context.Context, data []domain.PurchaseItem) error {
	r.purchaseItems = append(r.purchaseItems, data...)
	return nil
}

func (r *fakePurchaseRepository) DeleteCartItemsByUserID(ctx context.Context, userID int64) error {
	var remaining []domain.CartItem
	for _, item := range r.cartItems {
		if item.UserID != userID {
			remaining = append(remaining, item)
		}
	}
	r.cartItems = remaining
	return nil
}

func (r *fakePurchaseRepository) GetPurchaseByID(ctx context.Context, id int64) (domain.Purchase, error) {
	for _, p := range r.purchases {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Purchase{}, nil
}

func (r *fakePurchaseRepository) GetPurchasesByUserID(ctx context.Context, userID int64) ([]domain.Purchase, error) {
	var data []domain.Purchase
	for _, p := range r.purchases {
		if p.UserID == userID {
			data = append(data, p)
		}
	}
	return data, nil
}

func (r *fakePurchaseRepository) GetPurchaseItemsByPurchaseID(ctx context.Context, purchaseID int64) ([]domain.PurchaseItem, error) {
	var data []domain.PurchaseItem
	for _, item := range r.purchaseItems {
		if item.PurchaseID == purchaseID {
			data = append(data, item)
		}
	}
	return data, nil
}

type fakeWishlistRepository struct {
	items       []domain.WishlistItem
	productRepo *fakeProductRepository
	nextID      int64
}

func (r *fakeWishlistRepository) GetWishlistProductsByUserID(ctx context.Context, userID int64) ([]domain.Product, error) {
	var data []domain.Product
	for _, item := range r.items {
		if item.UserID != userID {
			continue
		}
		product, _ := r.productRepo.GetProductByID(ctx, item.ProductID)
		if product.ID != 0 {
			data = append(data, product)
		}
	}
	return data, nil
}

func (r *fakeWishlistRepository) GetWishlistItem(ctx context.Context, userID int64, productID int64) (domain.WishlistItem, error) {
	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			return item, nil
		}
	}
	return domain.WishlistItem{}, nil
}

func (r *fakeWishlistRepository) AddWishlistItem(ctx context.Context, data domain.WishlistItem) (int64, error) {
	r.nextID++
	data.ID = r.nextID
	data.CreatedAt = time.Now().UnixMilli()
	r.items = append(r.items, data)
	return data.ID, nil
}

func (r *fakeWishlistRepository) DeleteWishlistItem(ctx context.Context, userID int64, productID int64) error {
	for i, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeStorage names saved files after their upload order and records removals.
type fakeStorage struct {
	saved   []string
	removed []string
}

func (s *fakeStorage) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		return "", errs.ErrNotAnImage
	}

	filename := fmt.Sprintf("stored-%d%s", len(s.saved)+1, ext)
	s.saved = append(s.saved, filename)
	return filename, nil
}

func (s *fakeStorage) Remove(filename string) error {
	s.removed = append(s.removed, filename)
	return nil
}
