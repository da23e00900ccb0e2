package service

import (
	"context"
	"testing"

	"github.com/ecofinds/marketplace-service/internal/domain"
	"github.com/ecofinds/marketplace-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckout(t *testing.T) {
	ctx := context.Background()
	const buyerID = int64(2)

	t.Run("creates purchase with snapshots and empties the cart", func(t *testing.T) {
		repo := &fakePurchaseRepository{
			cartItems: []domain.CartItem{
				{ID: 1, UserID: buyerID, ProductID: 10, Quantity: 2},
				{ID: 2, UserID: buyerID, ProductID: 11, Quantity: 1},
			},
			products: map[int64]domain.Product{
				10: {ID: 10, Title: "Bamboo Chair", Price: 10.25, SellerID: 1, Images: []string{"chair.png"}},
				11: {ID: 11, Title: "Oak Table", Price: 5.00, SellerID: 1},
			},
		}
		svc := CreatePurchaseService(repo, testConfig())

		resp, err := svc.Checkout(ctx, buyerID)
		require.NoError(t, err)
		assert.Equal(t, 25.50, resp.PurchaseDetails.TotalAmount)
		assert.Len(t, resp.PurchaseDetails.OrderNumber, 26)
		require.Len(t, resp.PurchaseDetails.Items, 2)

		chair := resp.PurchaseDetails.Items[0]
		assert.Equal(t, int64(10), chair.ProductID)
		assert.Equal(t, "Bamboo Chair", chair.ProductTitle)
		assert.Equal(t, int64(2), chair.Quantity)
		assert.Equal(t, 10.25, chair.PriceAtPurchase)
		require.NotNil(t, chair.ProductImage)
		assert.Equal(t, "http://localhost:8080/uploads/chair.png", *chair.ProductImage)

		table := resp.PurchaseDetails.Items[1]
		assert.Equal(t, "Oak Table", table.ProductTitle)
		assert.Nil(t, table.ProductImage)

		assert.Empty(t, repo.cartItems)
		assert.Len(t, repo.purchases, 1)
	})

	t.Run("empty cart", func(t *testing.T) {
		repo := &fakePurchaseRepository{products: map[int64]domain.Product{}}
		svc := CreatePurchaseService(repo, testConfig())

		_, err := svc.Checkout(ctx, buyerID)
		assert.ErrorIs(t, err, errs.ErrCartEmpty)
	})

	t.Run("cart referencing a missing product aborts and rolls back", func(t *testing.T) {
		repo := &fakePurchaseRepository{
			cartItems: []domain.CartItem{
				{ID: 1, UserID: buyerID, ProductID: 10, Quantity: 1},
				{ID: 2, UserID: buyerID, ProductID: 99, Quantity: 1},
			},
			products: map[int64]domain.Product{
				10: {ID: 10, Title: "Bamboo Chair", Price: 10.25, SellerID: 1},
			},
		}
		svc := CreatePurchaseService(repo, testConfig())

		_, err := svc.Checkout(ctx, buyerID)
		assert.ErrorIs(t, err, errs.ErrInternalServer)

		assert.Len(t, repo.cartItems, 2)
		assert.Empty(t, repo.purchases)
		assert.Empty(t, repo.purchaseItems)
	})

	t.Run("snapshots survive product changes", func(t *testing.T) {
		repo := &fakePurchaseRepository{
			cartItems: []domain.CartItem{{ID: 1, UserID: buyerID, ProductID: 10, Quantity: 1}},
			products: map[int64]domain.Product{
				10: {ID: 10, Title: "Bamboo Chair", Price: 49.99, SellerID: 1},
			},
		}
		svc := CreatePurchaseService(repo, testConfig())

		resp, err := svc.Checkout(ctx, buyerID)
		require.NoError(t, err)

		repo.products[10] = domain.Product{ID: 10, Title: "Renamed", Price: 1.00, SellerID: 1}

		history, err := svc.GetHistory(ctx, buyerID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, resp.PurchaseID, history[0].ID)
		require.Len(t, history[0].Items, 1)
		assert.Equal(t, "Bamboo Chair", history[0].Items[0].ProductTitle)
		assert.Equal(t, 49.99, history[0].Items[0].PriceAtPurchase)
	})
}

func TestGetHistory(t *testing.T) {
	ctx := context.Background()
	const buyerID = int64(2)

	t.Run("empty history", func(t *testing.T) {
		repo := &fakePurchaseRepository{products: map[int64]domain.Product{}}
		svc := CreatePurchaseService(repo, testConfig())

		resp, err := svc.GetHistory(ctx, buyerID)
		require.NoError(t, err)
		assert.Empty(t, resp)
	})

	t.Run("only the caller's purchases", func(t *testing.T) {
		repo := &fakePurchaseRepository{
			purchases: []domain.Purchase{
				{ID: 1, UserID: buyerID, OrderNumber: "A", TotalAmount: 10},
				{ID: 2, UserID: 3, OrderNumber: "B", TotalAmount: 20},
			},
			purchaseItems: []domain.PurchaseItem{
				{ID: 1, PurchaseID: 1, ProductID: 10, ProductTitle: "Bamboo Chair", Quantity: 1, PriceAtPurchase: 10},
			},
			nextID: 2,
		}
		svc := CreatePurchaseService(repo, testConfig())

		resp, err := svc.GetHistory(ctx, buyerID)
		require.NoError(t, err)
		require.Len(t, resp, 1)
		assert.Equal(t, "A", resp[0].OrderNumber)
		require.Len(t, resp[0].Items, 1)
		assert.Equal(t, "Bamboo Chair", resp[0].Items[0].ProductTitle)
	})
}
