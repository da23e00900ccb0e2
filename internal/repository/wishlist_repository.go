package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/ecofinds/marketplace-service/internal/domain"
	"github.com/ecofinds/marketplace-service/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type WishlistRepositoryImpl struct {
	db *sqlx.DB
}

func CreateWishlistRepository(db *sqlx.DB) WishlistRepository {
	return &WishlistRepositoryImpl{db: db}
}

func (r *WishlistRepositoryImpl) GetWishlistProductsByUserID(ctx context.Context, userID int64) (data []domain.Product, err error) {
	err = r.db.SelectContext(ctx, &data,
		`SELECT p.* FROM wishlist_items wi
		JOIN products p ON p.id = wi.product_id
		WHERE wi.user_id = $1
		ORDER BY wi.created_at DESC`, userID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetWishlistProductsByUserID").Msg("")
		return nil, err
	}

	return data, nil
}

func (r *WishlistRepositoryImpl) GetWishlistItem(ctx context.Context, userID int64, productID int64) (data domain.WishlistItem, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM wishlist_items WHERE user_id = $1 AND product_id = $2", userID, productID)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetWishlistItem").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *WishlistRepositoryImpl) AddWishlistItem(ctx context.Context, data domain.WishlistItem) (id int64, err error) {
	data.CreatedAt = time.Now().UnixMilli()

	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO wishlist_items(user_id, product_id, created_at) VALUES (:user_id, :product_id, :created_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddWishlistItem").Msg("")
		return
	}

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddWishlistItem").Msg("")
		return
	}

	return data.ID, nil
}

func (r *WishlistRepositoryImpl) DeleteWishlistItem(ctx context.Context, userID int64, productID int64) (err error) {
	_, err = r.db.ExecContext(ctx, "DELETE FROM wishlist_items WHERE user_id = $1 AND product_id = $2", userID, productID)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteWishlistItem").Msg("")
		return
	}

	return
}
