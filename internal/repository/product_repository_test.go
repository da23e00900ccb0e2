package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ecofinds/marketplace-service/internal/domain"
	"github.com/ecofinds/marketplace-service/pkg/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productColumns = []string{"id", "title", "description", "category", "price", "seller_id", "images", "created_at", "updated_at"}

func TestGetProducts(t *testing.T) {
	t.Run("category, search, and pagination all bind", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := CreateProductRepository(db)

		query := "SELECT * FROM products WHERE 1=1 AND LOWER(category) = LOWER($1) AND (title ILIKE $2 OR description ILIKE $3) ORDER BY created_at DESC LIMIT $4 OFFSET $5"
		mock.ExpectPrepare(regexp.QuoteMeta(query)).
			ExpectQuery().
			WithArgs("Furniture", "%chair%", "%chair%", 8, 8).
			WillReturnRows(sqlmock.NewRows(productColumns).
				AddRow(10, "Bamboo Chair", "d", "Furniture", 49.99, 1, "{chair.png}", 1700000000000, 1700000000000))

		data, err := repo.GetProducts(context.Background(), dto.Filter{
			Page:     2,
			PerPage:  8,
			Q:        "chair",
			Category: "Furniture",
		})
		require.NoError(t, err)
		require.Len(t, data, 1)
		assert.Equal(t, "Bamboo Chair", data[0].Title)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no filters", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := CreateProductRepository(db)

		query := "SELECT * FROM products WHERE 1=1 ORDER BY created_at DESC LIMIT $1 OFFSET $2"
		mock.ExpectPrepare(regexp.QuoteMeta(query)).
			ExpectQuery().
			WithArgs(8, 0).
			WillReturnRows(sqlmock.NewRows(productColumns))

		data, err := repo.GetProducts(context.Background(), dto.Filter{Page: 1, PerPage: 8})
		require.NoError(t, err)
		assert.Empty(t, data)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCountProducts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := CreateProductRepository(db)

	query := "SELECT COUNT(id) FROM products WHERE 1=1 AND LOWER(category) = LOWER($1)"
	mock.ExpectPrepare(regexp.QuoteMeta(query)).
		ExpectQuery().
		WithArgs("Furniture").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))

	count, err := repo.CountProducts(context.Background(), dto.Filter{Category: "Furniture"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProduct(t *testing.T) {
	t.Run("cascades to cart and wishlist rows in one transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := CreateProductRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cart_items WHERE product_id = $1")).
			WithArgs(int64(10)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM wishlist_items WHERE product_id = $1")).
			WithArgs(int64(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM products WHERE id = $1")).
			WithArgs(int64(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.DeleteProduct(context.Background(), 10)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when a cascade step fails", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := CreateProductRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM cart_items WHERE product_id = $1")).
			WithArgs(int64(10)).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.DeleteProduct(context.Background(), 10)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetProductByID(t *testing.T) {
	t.Run("no row yields zero value, not an error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := CreateProductRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM products WHERE id = $1")).
			WithArgs(int64(10)).
			WillReturnRows(sqlmock.NewRows(productColumns))

		product, err := repo.GetProductByID(context.Background(), 10)
		require.NoError(t, err)
		assert.Zero(t, product.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAddProduct(t *testing.T) {
	db, mock := newMockDB(t)
	repo := CreateProductRepository(db)

	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO products(title, description, category, price, seller_id, images, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) returning id")).
		ExpectQuery().
		WithArgs("Bamboo Chair", "d", "Furniture", 49.99, int64(1), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

	id, err := repo.AddProduct(context.Background(), domain.Product{
		Title:       "Bamboo Chair",
		Description: "d",
		Category:    "Furniture",
		Price:       49.99,
		SellerID:    1,
		Images:      []string{"chair.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
