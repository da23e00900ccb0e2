package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/ecofinds/marketplace-service/internal/domain"
	"github.com/ecofinds/marketplace-service/pkg/dto"
	"github.com/ecofinds/marketplace-service/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type ProductRepositoryImpl struct {
	db *sqlx.DB
}

func CreateProductRepository(db *sqlx.DB) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id int64, err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO products(title, description, category, price, seller_id, images, created_at, updated_at) VALUES (:title, :description, :category, :price, :seller_id, :images, :created_at, :updated_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return data.ID, nil
}

func (r *ProductRepositoryImpl) GetProductByID(ctx context.Context, id int64) (data domain.Product, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM products WHERE id = $1", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetProductByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *ProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	data.UpdatedAt = time.Now().UnixMilli()

	_, err = r.db.NamedExecContext(ctx, "UPDATE products SET title=:title, description=:description, category=:category, price=:price, images=:images, updated_at=:updated_at WHERE id=:id", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return
	}

	return
}

func (r *ProductRepositoryImpl) DeleteProduct(ctx context.Context, id int64) (err error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	// Cascades are explicit: cart and wishlist references go with the
	// product, purchase item snapshots stay.
	if _, err = tx.ExecContext(ctx, "DELETE FROM cart_items WHERE product_id = $1", id); err != nil {
		log.Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM wishlist_items WHERE product_id = $1", id); err != nil {
		log.Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id); err != nil {
		log.Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	return
}

func (r *ProductRepositoryImpl) GetProducts(ctx context.Context, filter dto.Filter) (data []domain.Product, err error) {
	query := "SELECT * FROM products WHERE 1=1"

	args := make(map[string]interface{})

	if filter.Category != "" {
		query += " AND LOWER(category) = LOWER(:category)"
		args["category"] = filter.Category
	}

	if filter.Q != "" {
		query += " AND (title ILIKE :q OR description ILIKE :q)"
		args["q"] = "%" + filter.Q + "%"
	}

	query += " ORDER BY created_at DESC"

	if filter.PerPage != 0 && filter.Page != 0 {
		offset := (filter.Page - 1) * filter.PerPage
		query += " LIMIT :limit OFFSET :offset"
		args["limit"] = filter.PerPage
		args["offset"] = offset
	}

	nstmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, err
	}

	err = nstmt.SelectContext(ctx, &data, args)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, err
	}

	return data, nil
}

func (r *ProductRepositoryImpl) CountProducts(ctx context.Context, filter dto.Filter) (count int64, err error) {
	query := "SELECT COUNT(id) FROM products WHERE 1=1"

	args := make(map[string]interface{})

	if filter.Category != "" {
		query += " AND LOWER(category) = LOWER(:category)"
		args["category"] = filter.Category
	}

	if filter.Q != "" {
		query += " AND (title ILIKE :q OR description ILIKE :q)"
		args["q"] = "%" + filter.Q + "%"
	}

	nstmt, err := r.db.PrepareNamedContext(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("component", "CountProducts").Msg("")
		return 0, err
	}

	err = nstmt.GetContext(ctx, &count, args)
	if err != nil {
		log.Error().Err(err).Str("component", "CountProducts").Msg("")
		return 0, err
	}

	return
}

func (r *ProductRepositoryImpl) GetProductsBySellerID(ctx context.Context, sellerID int64) (data []domain.Product, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM products WHERE seller_id = $1 ORDER BY created_at DESC", sellerID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductsBySellerID").Msg("")
		return nil, err
	}

	return data, nil
}
