package domain

import (
	"time"

	"github.com/govalues/decimal"
)

// Order is one fulfillment unit of a Trade, scoped to a single store.
// TradeSN is a plain back-reference, never an owning pointer.
type Order struct {
	SN           string
	TradeSN      string
	BuyerID      uint64
	StoreID      uint64
	PayStatus    PayStatus
	PaymentName  string
	ReceivableNo string
	Amount       decimal.Decimal
	Items        []OrderItem
	CreatedAt    time.Time
	PaidAt       *time.Time
}

type OrderItem struct {
	SkuID    string          `json:"sku_id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}
