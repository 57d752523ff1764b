package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/mallforge/tradesvc/internal/adapter/storage"
	"github.com/mallforge/tradesvc/internal/core/domain"
)

// Ledger holds buyer incentives: loyalty points and coupons. The
// orchestrator treats it as an external transactional resource, so
// every operation here is atomic on its own.
type Ledger struct {
	db *storage.DB
}

func NewLedger(db *storage.DB) (*Ledger, error) {
	return &Ledger{db: db}, nil
}

func (l *Ledger) PointBalance(ctx context.Context, buyerID uint64) (int64, error) {
	statement := l.db.QueryBuilder.
		Select("points").
		From("members").
		Where(sq.Eq{"id": buyerID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return 0, err
	}

	var points int64
	err = l.db.QueryRow(ctx, sql, args...).Scan(&points)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, domain.ErrDataNotFound
		}
		return 0, err
	}

	return points, nil
}

// DebitPoints records the debit in point_history keyed by trade SN and
// subtracts from the member balance in one transaction. A replay for an
// already recorded trade reports success without touching the balance;
// a balance exhausted by a concurrent debit rolls the history row back
// and reports false.
func (l *Ledger) DebitPoints(ctx context.Context, buyerID uint64, amount int64, tradeSN string, reason string) (bool, error) {
	err := pgx.BeginFunc(ctx, l.db, func(tx pgx.Tx) error {
		historySt := l.db.QueryBuilder.Insert("point_history").
			Columns("trade_sn", "member_id", "amount", "reason").
			Values(tradeSN, buyerID, amount, reason).
			Suffix("on conflict (trade_sn) do nothing")

		sql, args, err := historySt.ToSql()
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			// already debited for this trade
			return nil
		}

		debitSt := l.db.QueryBuilder.Update("members").
			Set("points", sq.Expr("points - ?", amount)).
			Where(sq.Expr("id = ? and points >= ?", buyerID, amount))

		sql, args, err = debitSt.ToSql()
		if err != nil {
			return err
		}

		tag, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrInsufficientIncentive
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrInsufficientIncentive) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// MarkCouponsUsed stamps the consuming trade SN on each instance.
// Instances already stamped by the same trade still match, so a retried
// creation sees every row affected and converges; instances taken by
// another trade fall out of the match and fail the call.
func (l *Ledger) MarkCouponsUsed(ctx context.Context, tradeSN string, instanceIDs []string) error {
	statement := l.db.QueryBuilder.Update("member_coupons").
		Set("status", "USED").
		Set("trade_sn", tradeSN).
		Set("used_at", sq.Expr("now()")).
		Where(sq.Eq{"id": instanceIDs}).
		Where(sq.Or{sq.Eq{"status": "UNUSED"}, sq.Eq{"trade_sn": tradeSN}})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := l.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != int64(len(instanceIDs)) {
		return domain.ErrNoUpdatedData
	}

	return nil
}

// ConsumeCoupon records the consumption in coupon_consumption keyed by
// trade SN and coupon and bumps the definition counter in one
// transaction. A replay for an already recorded trade leaves the
// counter alone, mirroring the point_history guard.
func (l *Ledger) ConsumeCoupon(ctx context.Context, tradeSN string, couponID string, count int) error {
	return pgx.BeginFunc(ctx, l.db, func(tx pgx.Tx) error {
		consumptionSt := l.db.QueryBuilder.Insert("coupon_consumption").
			Columns("trade_sn", "coupon_id", "num").
			Values(tradeSN, couponID, count).
			Suffix("on conflict (trade_sn, coupon_id) do nothing")

		sql, args, err := consumptionSt.ToSql()
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			// already consumed for this trade
			return nil
		}

		counterSt := l.db.QueryBuilder.Update("coupons").
			Set("used_num", sq.Expr("used_num + ?", count)).
			Where(sq.Expr("id = ? and used_num + ? <= total_num", couponID, count))

		sql, args, err = counterSt.ToSql()
		if err != nil {
			return err
		}

		tag, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNoUpdatedData
		}

		return nil
	})
}
