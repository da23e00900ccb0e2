package service

import (
	"context"

	"github.com/ecofinds/marketplace-service/config"
	"github.com/ecofinds/marketplace-service/internal/domain"
	"github.com/ecofinds/marketplace-service/internal/dto"
	"github.com/ecofinds/marketplace-service/internal/repository"
	"github.com/ecofinds/marketplace-service/pkg/errs"
)

type CartServiceImpl struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	urls        imageURLBuilder
}

func CreateCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, config config.Config) CartService {
	return &CartServiceImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		urls:        newImageURLBuilder(config.UploadConfig),
	}
}

func (s *CartServiceImpl) GetCart(ctx context.Context, userID int64) (resp []dto.CartItemResponse, err error) {
	items, err := s.cartRepo.GetCartItemDetailsByUserID(ctx, userID)
	if err != nil {
		return nil, errs.ErrInternalServer
	}

	return toCartItemResponses(items, s.urls), nil
}

func (s *CartServiceImpl) AddItem(ctx context.Context, userID int64, payload dto.AddCartItemRequest) (resp dto.CartMutationResponse, created bool, err error) {
	quantity := int64(1)
	if payload.Quantity != nil {
		quantity = *payload.Quantity
	}
	if quantity < 1 {
		return resp, false, errs.ErrInvalidQuantity
	}

	product, err := s.productRepo.GetProductByID(ctx, payload.ProductID)
	if err != nil {
		return
	}
	if product.ID == 0 {
		return resp, false, errs.ErrProductNotFound
	}
	if product.SellerID == userID {
		return resp, false, errs.ErrOwnProductCart
	}

	item, err := s.cartRepo.GetCartItem(ctx, userID, payload.ProductID)
	if err != nil {
		return
	}

	if item.ID != 0 {
		err = s.cartRepo.UpdateCartItemQuantity(ctx, userID, payload.ProductID, item.Quantity+quantity)
	} else {
		created = true
		_, err = s.cartRepo.AddCartItem(ctx, domain.CartItem{
			UserID:    userID,
			ProductID: payload.ProductID,
			Quantity:  quantity,
		})
	}
	if err != nil {
		return resp, false, errs.ErrInternalServer
	}

	resp, err = s.cartMutationResponse(ctx, userID, payload.ProductID)

	return resp, created, err
}

func (s *CartServiceImpl) UpdateItem(ctx context.Context, userID int64, productID int64, payload dto.UpdateCartItemRequest) (resp dto.CartMutationResponse, removed bool, err error) {
	if payload.Quantity == nil {
		return resp, false, errs.ErrClient
	}

	item, err := s.cartRepo.GetCartItem(ctx, userID, productID)
	if err != nil {
		return
	}
	if item.ID == 0 {
		return resp, false, errs.ErrCartItemNotFound
	}

	if *payload.Quantity < 1 {
		removed = true
		err = s.cartRepo.DeleteCartItem(ctx, userID, productID)
	} else {
		err = s.cartRepo.UpdateCartItemQuantity(ctx, userID, productID, *payload.Quantity)
	}
	if err != nil {
		return resp, false, errs.ErrInternalServer
	}

	resp, err = s.cartMutationResponse(ctx, userID, productID)

	return resp, removed, err
}

func (s *CartServiceImpl) RemoveItem(ctx context.Context, userID int64, productID int64) (resp dto.CartMutationResponse, err error) {
	item, err := s.cartRepo.GetCartItem(ctx, userID, productID)
	if err != nil {
		return
	}
	if item.ID == 0 {
		return resp, errs.ErrCartItemNotFound
	}

	if err = s.cartRepo.DeleteCartItem(ctx, userID, productID); err != nil {
		return resp, errs.ErrInternalServer
	}

	return s.cartMutationResponse(ctx, userID, 0)
}

// cartMutationResponse rebuilds the full cart after a mutation; productID
// selects the affected row, zero (or a removed row) leaves Item nil.
func (s *CartServiceImpl) cartMutationResponse(ctx context.Context, userID int64, productID int64) (resp dto.CartMutationResponse, err error) {
	items, err := s.cartRepo.GetCartItemDetailsByUserID(ctx, userID)
	if err != nil {
		return resp, errs.ErrInternalServer
	}

	resp.Cart = toCartItemResponses(items, s.urls)
	for i := range resp.Cart {
		if resp.Cart[i].ProductID == productID {
			resp.Item = &resp.Cart[i]
			break
		}
	}

	return
}
