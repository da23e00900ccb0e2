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

type CartRepositoryImpl struct {
	db *sqlx.DB
}

func CreateCartRepository(db *sqlx.DB) CartRepository {
	return &CartRepositoryImpl{db: db}
}

func (r *CartRepositoryImpl) GetCartItemDetailsByUserID(ctx context.Context, userID int64) (data []domain.CartItemDetail, err error) {
	err = r.db.SelectContext(ctx, &data,
		`SELECT ci.id, ci.user_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at,
			p.title AS product_title, p.price AS product_price, p.category AS product_category,
			p.images AS product_images, p.seller_id
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = $1
		ORDER BY ci.created_at`, userID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetCartItemDetailsByUserID").Msg("")
		return nil, err
	}

	return data, nil
}

func (r *CartRepositoryImpl) GetCartItem(ctx context.Context, userID int64, productID int64) (data domain.CartItem, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM cart_items WHERE user_id = $1 AND product_id = $2", userID, productID)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetCartItem").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *CartRepositoryImpl) AddCartItem(ctx context.Context, data domain.CartItem) (id int64, err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO cart_items(user_id, product_id, quantity, created_at, updated_at) VALUES (:user_id, :product_id, :quantity, :created_at, :updated_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddCartItem").Msg("")
		return
	}

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddCartItem").Msg("")
		return
	}

	return data.ID, nil
}

func (r *CartRepositoryImpl) UpdateCartItemQuantity(ctx context.Context, userID int64, productID int64, quantity int64) (err error) {
	_, err = r.db.ExecContext(ctx, "UPDATE cart_items SET quantity = $1, updated_at = $2 WHERE user_id = $3 AND product_id = $4",
		quantity, time.Now().UnixMilli(), userID, productID)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateCartItemQuantity").Msg("")
		return
	}

	return
}

func (r *CartRepositoryImpl) DeleteCartItem(ctx context.Context, userID int64, productID int64) (err error) {
	_, err = r.db.ExecContext(ctx, "DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2", userID, productID)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteCartItem").Msg("")
		return
	}

	return
}
