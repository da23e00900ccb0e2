package service

import (
	"context"
	"math"

	"github.com/ecofinds/marketplace-service/config"
	"github.com/ecofinds/marketplace-service/internal/domain"
	"github.com/ecofinds/marketplace-service/internal/dto"
	"github.com/ecofinds/marketplace-service/internal/repository"
	"github.com/ecofinds/marketplace-service/pkg/errs"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
)

type PurchaseServiceImpl struct {
	repo repository.PurchaseRepository
	urls imageURLBuilder
}

func CreatePurchaseService(repo repository.PurchaseRepository, config config.Config) PurchaseService {
	return &PurchaseServiceImpl{
		repo: repo,
		urls: newImageURLBuilder(config.UploadConfig),
	}
}

// Checkout converts the user's cart into an immutable purchase. The purchase
// row, its item snapshots, and the cart deletion all happen in a single
// transaction; on any failure the cart is left untouched.
func (s *PurchaseServiceImpl) Checkout(ctx context.Context, userID int64) (resp dto.CheckoutResponse, err error) {
	var purchaseID int64

	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.PurchaseRepository) error {
		cartItems, err := repo.GetCartItemsByUserID(ctx, userID)
		if err != nil {
			return errs.ErrInternalServer
		}
		if len(cartItems) == 0 {
			return errs.ErrCartEmpty
		}

		productIDs := make([]int64, 0, len(cartItems))
		for _, item := range cartItems {
			productIDs = append(productIDs, item.ProductID)
		}

		products, err := repo.GetProductsByIDs(ctx, productIDs)
		if err != nil {
			return errs.ErrInternalServer
		}

		productsByID := make(map[int64]domain.Product, len(products))
		for _, product := range products {
			productsByID[product.ID] = product
		}

		var total float64
		purchaseItems := make([]domain.PurchaseItem, 0, len(cartItems))
		for _, item := range cartItems {
			product, ok := productsByID[item.ProductID]
			if !ok {
				// A cart row pointing at a vanished product is a
				// data-integrity violation, not a user error. Abort
				// the whole checkout.
				log.Error().Int64("user_id", userID).Int64("product_id", item.ProductID).
					Str("component", "Checkout").Msg("cart references missing product")
				return errs.ErrInternalServer
			}

			total += product.Price * float64(item.Quantity)

			var image *string
			if len(product.Images) > 0 {
				filename := product.Images[0]
				image = &filename
			}

			purchaseItems = append(purchaseItems, domain.PurchaseItem{
				ProductID:       product.ID,
				ProductTitle:    product.Title,
				ProductImage:    image,
				Quantity:        item.Quantity,
				PriceAtPurchase: product.Price,
			})
		}

		id, err := repo.AddPurchase(ctx, domain.Purchase{
			OrderNumber: ulid.Make().String(),
			UserID:      userID,
			TotalAmount: math.Round(total*100) / 100,
		})
		if err != nil {
			return errs.ErrInternalServer
		}

		for i := range purchaseItems {
			purchaseItems[i].PurchaseID = id
		}

		if err := repo.AddPurchaseItems(ctx, purchaseItems); err != nil {
			return errs.ErrInternalServer
		}

		if err := repo.DeleteCartItemsByUserID(ctx, userID); err != nil {
			return errs.ErrInternalServer
		}

		purchaseID = id

		return nil
	})
	if err != nil {
		return
	}

	purchase, err := s.repo.GetPurchaseByID(ctx, purchaseID)
	if err != nil {
		return
	}

	items, err := s.repo.GetPurchaseItemsByPurchaseID(ctx, purchaseID)
	if err != nil {
		return resp, errs.ErrInternalServer
	}

	resp.PurchaseID = purchase.ID
	resp.PurchaseDetails = toPurchaseResponse(purchase, items, s.urls)

	return
}

func (s *PurchaseServiceImpl) GetHistory(ctx context.Context, userID int64) (resp []dto.PurchaseResponse, err error) {
	purchases, err := s.repo.GetPurchasesByUserID(ctx, userID)
	if err != nil {
		return nil, errs.ErrInternalServer
	}

	resp = make([]dto.PurchaseResponse, 0, len(purchases))
	for _, purchase := range purchases {
		items, err := s.repo.GetPurchaseItemsByPurchaseID(ctx, purchase.ID)
		if err != nil {
			return nil, errs.ErrInternalServer
		}
		resp = append(resp, toPurchaseResponse(purchase, items, s.urls))
	}

	return resp, nil
}
