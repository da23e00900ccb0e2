package service

import (
	"context"

	"github.com/ecofinds/marketplace-service/config"
	"github.com/ecofinds/marketplace-service/internal/domain"
	"github.com/ecofinds/marketplace-service/internal/dto"
	"github.com/ecofinds/marketplace-service/internal/repository"
	"github.com/ecofinds/marketplace-service/pkg/errs"
)

type WishlistServiceImpl struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
	urls         imageURLBuilder
}

func CreateWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository, config config.Config) WishlistService {
	return &WishlistServiceImpl{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
		urls:         newImageURLBuilder(config.UploadConfig),
	}
}

func (s *WishlistServiceImpl) GetWishlist(ctx context.Context, userID int64) (resp []dto.ProductResponse, err error) {
	products, err := s.wishlistRepo.GetWishlistProductsByUserID(ctx, userID)
	if err != nil {
		return nil, errs.ErrInternalServer
	}

	resp = make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		resp = append(resp, toProductResponse(product, s.urls))
	}

	return resp, nil
}

func (s *WishlistServiceImpl) AddToWishlist(ctx context.Context, userID int64, productID int64) (err error) {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return
	}
	if product.ID == 0 {
		return errs.ErrProductNotFound
	}
	if product.SellerID == userID {
		return errs.ErrOwnProductWishlist
	}

	item, err := s.wishlistRepo.GetWishlistItem(ctx, userID, productID)
	if err != nil {
		return
	}
	if item.ID != 0 {
		return errs.ErrWishlistConflict
	}

	if _, err = s.wishlistRepo.AddWishlistItem(ctx, domain.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	}); err != nil {
		return errs.ErrInternalServer
	}

	return nil
}

func (s *WishlistServiceImpl) RemoveFromWishlist(ctx context.Context, userID int64, productID int64) (err error) {
	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return
	}
	if product.ID == 0 {
		return errs.ErrProductNotFound
	}

	item, err := s.wishlistRepo.GetWishlistItem(ctx, userID, productID)
	if err != nil {
		return
	}
	if item.ID == 0 {
		return errs.ErrWishlistNotFound
	}

	if err = s.wishlistRepo.DeleteWishlistItem(ctx, userID, productID); err != nil {
		return errs.ErrInternalServer
	}

	return nil
}
