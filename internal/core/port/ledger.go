package port

import "context"

// IncentiveLedger is the external transactional resource holding buyer
// incentives. Debits are atomic and never retried by the orchestrator;
// a failed call is terminal for the creation attempt.
//
//go:generate mockgen -source=ledger.go -destination=mock/ledger.go -package=mock
type IncentiveLedger interface {
	PointBalance(ctx context.Context, buyerID uint64) (int64, error)

	// DebitPoints atomically subtracts amount from the buyer's balance.
	// It must never drive the balance negative and must be idempotent
	// per trade SN: a replay for an already debited trade reports
	// success without spending twice. The boolean is the authoritative
	// outcome; false means the balance was exhausted concurrently.
	DebitPoints(ctx context.Context, buyerID uint64, amount int64, tradeSN string, reason string) (bool, error)

	// MarkCouponsUsed flips the given coupon instances to USED on behalf
	// of a trade. Instances already used by the same trade count as
	// success, so a retried creation converges; instances used by any
	// other trade fail the call.
	MarkCouponsUsed(ctx context.Context, tradeSN string, instanceIDs []string) error

	// ConsumeCoupon decrements the remaining quota of a coupon
	// definition. Consumption is idempotent per trade SN: a replay for
	// an already recorded trade leaves the counter untouched.
	ConsumeCoupon(ctx context.Context, tradeSN string, couponID string, count int) error
}
