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

type PurchaseRepositoryImpl struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

func CreatePurchaseRepository(db *sqlx.DB) PurchaseRepository {
	return &PurchaseRepositoryImpl{db: db}
}

// ext returns the transaction when the repository is bound to one, so the same
// methods serve both transactional and plain calls.
func (r *PurchaseRepositoryImpl) ext() sqlx.ExtContext {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// The error return is named so the deferred commit can surface its failure.
func (r *PurchaseRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo PurchaseRepository) error) (err error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		log.Error().Err(err).Str("component", "HandleTrx").Msg("")
		return err
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

	trxRepo := &PurchaseRepositoryImpl{
		db: r.db,
		tx: tx,
	}

	err = fn(ctx, trxRepo)

	return err
}

func (r *PurchaseRepositoryImpl) GetCartItemsByUserID(ctx context.Context, userID int64) (data []domain.CartItem, err error) {
	err = sqlx.SelectContext(ctx, r.ext(), &data, "SELECT * FROM cart_items WHERE user_id = $1 ORDER BY created_at", userID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetCartItemsByUserID").Msg("")
		return nil, err
	}

	return data, nil
}

func (r *PurchaseRepositoryImpl) GetProductsByIDs(ctx context.Context, ids []int64) (data []domain.Product, err error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In("SELECT * FROM products WHERE id IN (?)", ids)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductsByIDs").Msg("")
		return nil, err
	}

	query = r.ext().Rebind(query)
	err = sqlx.SelectContext(ctx, r.ext(), &data, query, args...)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductsByIDs").Msg("")
		return nil, err
	}

	return data, nil
}

func (r *PurchaseRepositoryImpl) AddPurchase(ctx context.Context, data domain.Purchase) (id int64, err error) {
	data.CreatedAt = time.Now().UnixMilli()

	rows, err := sqlx.NamedQueryContext(ctx, r.ext(), "INSERT INTO purchases(order_number, user_id, total_amount, created_at) VALUES (:order_number, :user_id, :total_amount, :created_at) returning id", data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddPurchase").Msg("")
		return
	}
	defer rows.Close()

	if rows.Next() {
		if err = rows.Scan(&id); err != nil {
			log.Error().Err(err).Str("component", "AddPurchase").Msg("")
			return
		}
	}

	return id, rows.Err()
}

func (r *PurchaseRepositoryImpl) AddPurchaseItems(ctx context.Context, data []domain.PurchaseItem) (err error) {
	_, err = sqlx.NamedExecContext(ctx, r.ext(), "INSERT INTO purchase_items(purchase_id, product_id, product_title, product_image, quantity, price_at_purchase) VALUES (:purchase_id, :product_id, :product_title, :product_image, :quantity, :price_at_purchase)", data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddPurchaseItems").Msg("")
		return
	}

	return nil
}

func (r *PurchaseRepositoryImpl) DeleteCartItemsByUserID(ctx context.Context, userID int64) (err error) {
	_, err = r.ext().ExecContext(ctx, "DELETE FROM cart_items WHERE user_id = $1", userID)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteCartItemsByUserID").Msg("")
		return
	}

	return
}

func (r *PurchaseRepositoryImpl) GetPurchaseByID(ctx context.Context, id int64) (data domain.Purchase, err error) {
	err = sqlx.GetContext(ctx, r.ext(), &data, "SELECT * FROM purchases WHERE id = $1", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, nil
		}
		log.Error().Err(err).Str("component", "GetPurchaseByID").Msg("")
		return data, errs.ErrInternalServer
	}

	return
}

func (r *PurchaseRepositoryImpl) GetPurchasesByUserID(ctx context.Context, userID int64) (data []domain.Purchase, err error) {
	err = sqlx.SelectContext(ctx, r.ext(), &data, "SELECT * FROM purchases WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetPurchasesByUserID").Msg("")
		return nil, err
	}

	return data, nil
}

func (r *PurchaseRepositoryImpl) GetPurchaseItemsByPurchaseID(ctx context.Context, purchaseID int64) (data []domain.PurchaseItem, err error) {
	err = sqlx.SelectContext(ctx, r.ext(), &data, "SELECT * FROM purchase_items WHERE purchase_id = $1 ORDER BY id", purchaseID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetPurchaseItemsByPurchaseID").Msg("")
		return nil, err
	}

	return data, nil
}
