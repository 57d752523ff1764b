package repository

import (
	"context"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mallforge/tradesvc/internal/adapter/storage"
	"github.com/mallforge/tradesvc/internal/core/domain"
)

// Repository persists trades and materializes their orders. Trade and
// order writes of one creation share a single transaction.
type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func (r *Repository) CreateTradeWithOrders(ctx context.Context, trade *domain.Trade, orders []*domain.Order) (*domain.Trade, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		tradeSt := r.db.QueryBuilder.Insert("trades").
			Columns("sn", "buyer_id", "pay_status", "subtotal", "discount", "pay_points", "payable", "created_at").
			Values(trade.SN, trade.BuyerID, trade.PayStatus, trade.Subtotal,
				trade.Discount, trade.PayPoints, trade.Payable, trade.CreatedAt)

		sql, args, err := tradeSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		for _, order := range orders {
			items, err := json.Marshal(order.Items)
			if err != nil {
				return err
			}

			orderSt := r.db.QueryBuilder.Insert("orders").
				Columns("sn", "trade_sn", "buyer_id", "store_id", "pay_status", "amount", "items", "created_at").
				Values(order.SN, order.TradeSN, order.BuyerID, order.StoreID,
					order.PayStatus, order.Amount, items, order.CreatedAt)

			sql, args, err := orderSt.ToSql()
			if err != nil {
				return err
			}

			_, err = tx.Exec(ctx, sql, args...)
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return trade, nil
}

func (r *Repository) GetTradeBySN(ctx context.Context, sn string) (*domain.Trade, error) {
	statement := r.db.QueryBuilder.
		Select("sn", "buyer_id", "pay_status", "subtotal", "discount", "pay_points", "payable", "created_at").
		From("trades").
		Where(sq.Eq{"sn": sn})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	trade := domain.Trade{}

	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&trade.SN,
		&trade.BuyerID,
		&trade.PayStatus,
		&trade.Subtotal,
		&trade.Discount,
		&trade.PayPoints,
		&trade.Payable,
		&trade.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &trade, nil
}

func (r *Repository) UpdateTrade(ctx context.Context, trade *domain.Trade) (*domain.Trade, error) {
	statement := r.db.QueryBuilder.Update("trades").
		Set("pay_status", trade.PayStatus).
		Where(sq.Eq{"sn": trade.SN})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNoUpdatedData
	}

	return trade, nil
}

var orderColumns = []string{"sn", "trade_sn", "buyer_id", "store_id", "pay_status",
	"payment_name", "receivable_no", "amount", "items", "created_at", "paid_at"}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	var items []byte

	err := row.Scan(
		&order.SN,
		&order.TradeSN,
		&order.BuyerID,
		&order.StoreID,
		&order.PayStatus,
		&order.PaymentName,
		&order.ReceivableNo,
		&order.Amount,
		&items,
		&order.CreatedAt,
		&order.PaidAt,
	)
	if err != nil {
		return nil, err
	}

	err = json.Unmarshal(items, &order.Items)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *Repository) GetOrderBySN(ctx context.Context, sn string) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"sn": sn})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return order, nil
}

func (r *Repository) ListOrdersByTrade(ctx context.Context, tradeSN string) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"trade_sn": tradeSN}).
		OrderBy("sn")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := r.db.QueryBuilder.Update("orders").
		Set("pay_status", order.PayStatus).
		Set("payment_name", order.PaymentName).
		Set("receivable_no", order.ReceivableNo).
		Set("paid_at", order.PaidAt).
		Where(sq.Eq{"sn": order.SN})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNoUpdatedData
	}

	return order, nil
}
