package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ecofinds/marketplace-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWishlistItem(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := CreateWishlistRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM wishlist_items WHERE user_id = $1 AND product_id = $2")).
			WithArgs(int64(2), int64(10)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "created_at"}).
				AddRow(1, 2, 10, 1700000000000))

		item, err := repo.GetWishlistItem(context.Background(), 2, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), item.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no row yields zero value, not an error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := CreateWishlistRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM wishlist_items WHERE user_id = $1 AND product_id = $2")).
			WithArgs(int64(2), int64(10)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "created_at"}))

		item, err := repo.GetWishlistItem(context.Background(), 2, 10)
		require.NoError(t, err)
		assert.Zero(t, item.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAddWishlistItem(t *testing.T) {
	db, mock := newMockDB(t)
	repo := CreateWishlistRepository(db)

	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO wishlist_items(user_id, product_id, created_at) VALUES ($1, $2, $3) returning id")).
		ExpectQuery().
		WithArgs(int64(2), int64(10), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	id, err := repo.AddWishlistItem(context.Background(), domain.WishlistItem{UserID: 2, ProductID: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteWishlistItem(t *testing.T) {
	db, mock := newMockDB(t)
	repo := CreateWishlistRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM wishlist_items WHERE user_id = $1 AND product_id = $2")).
		WithArgs(int64(2), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteWishlistItem(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWishlistProductsByUserID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := CreateWishlistRepository(db)

	mock.ExpectQuery("SELECT p\\..* FROM wishlist_items wi").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(productColumns).
			AddRow(10, "Bamboo Chair", "d", "Furniture", 49.99, 1, "{chair.png}", 1700000000000, 1700000000000))

	data, err := repo.GetWishlistProductsByUserID(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, data, 1)
	assert.Equal(t, "Bamboo Chair", data[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}
