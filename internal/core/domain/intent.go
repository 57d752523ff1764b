package domain

import "github.com/govalues/decimal"

// TradeIntent is the pre-computed checkout payload handed to the
// orchestrator: cart contents grouped by store, selected incentives and
// the price breakdown. It is cached for consumers but never persisted
// as a row of its own.
type TradeIntent struct {
	SN             string                      `json:"sn"`
	BuyerID        uint64                      `json:"buyer_id"`
	Cart           []CartGroup                 `json:"cart"`
	PlatformCoupon *CouponSelection            `json:"platform_coupon,omitempty"`
	StoreCoupons   map[uint64]*CouponSelection `json:"store_coupons,omitempty"`
	Price          PriceDetail                 `json:"price"`
}

// CartGroup holds the cart entries of one fulfilling store. OrderSN is
// pre-assigned before incentive pretreatment so the debit reason can
// reference the orders being created.
type CartGroup struct {
	OrderSN string          `json:"order_sn"`
	StoreID uint64          `json:"store_id"`
	Amount  decimal.Decimal `json:"amount"`
	Items   []OrderItem     `json:"items"`
}

// CouponSelection references one buyer-held coupon instance and the
// coupon definition it was issued from.
type CouponSelection struct {
	InstanceID string `json:"instance_id"`
	CouponID   string `json:"coupon_id"`
}

type PriceDetail struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Discount  decimal.Decimal `json:"discount"`
	PayPoints int64           `json:"pay_points"`
	Payable   decimal.Decimal `json:"payable"`
}

// SelectedCoupons flattens the platform coupon and the per-store
// coupons into one consumption list.
func (ti *TradeIntent) SelectedCoupons() []*CouponSelection {
	list := make([]*CouponSelection, 0, len(ti.StoreCoupons)+1)
	if ti.PlatformCoupon != nil {
		list = append(list, ti.PlatformCoupon)
	}
	for _, c := range ti.StoreCoupons {
		list = append(list, c)
	}
	return list
}

func (ti *TradeIntent) OrderSNs() []string {
	sns := make([]string, 0, len(ti.Cart))
	for _, group := range ti.Cart {
		sns = append(sns, group.OrderSN)
	}
	return sns
}
