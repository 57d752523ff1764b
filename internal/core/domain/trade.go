package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type PayStatus string

const (
	PayStatusUnpaid PayStatus = "UNPAID"
	PayStatusPaid   PayStatus = "PAID"
	PayStatusClosed PayStatus = "CLOSED"
)

// TradeCachePrefix prefixes the cache key under which the full trade
// intent is stashed for asynchronous consumers.
const TradeCachePrefix = "TRADE:"

func TradeCacheKey(sn string) string {
	return TradeCachePrefix + sn
}

// Trade is the buyer-facing aggregate root of one checkout action.
// It fans out into one Order per fulfilling store.
type Trade struct {
	SN        string
	BuyerID   uint64
	PayStatus PayStatus
	Subtotal  decimal.Decimal
	Discount  decimal.Decimal
	PayPoints int64
	Payable   decimal.Decimal
	CreatedAt time.Time
}

// NewTrade builds a candidate trade record from a trade intent.
func NewTrade(intent *TradeIntent) *Trade {
	return &Trade{
		SN:        intent.SN,
		BuyerID:   intent.BuyerID,
		PayStatus: PayStatusUnpaid,
		Subtotal:  intent.Price.Subtotal,
		Discount:  intent.Price.Discount,
		PayPoints: intent.Price.PayPoints,
		Payable:   intent.Price.Payable,
		CreatedAt: time.Now(),
	}
}
