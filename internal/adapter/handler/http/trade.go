package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/mallforge/tradesvc/internal/adapter/metrics"
	"github.com/mallforge/tradesvc/internal/core/domain"
	"github.com/mallforge/tradesvc/internal/core/port"
	"go.uber.org/zap"
)

type TradeHandler struct {
	Handler
	service port.Service
	metrics *metrics.Metrics
}

func NewTradeHandler(service port.Service, m *metrics.Metrics, logger *zap.Logger) (*TradeHandler, error) {
	return &TradeHandler{
		Handler: *NewHandler(logger),
		service: service,
		metrics: m,
	}, nil
}

type cartItemRequest struct {
	SkuID    string  `json:"sku_id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type cartGroupRequest struct {
	StoreID uint64            `json:"store_id"`
	Amount  float64           `json:"amount"`
	Items   []cartItemRequest `json:"items"`
}

type couponRequest struct {
	InstanceID string `json:"instance_id"`
	CouponID   string `json:"coupon_id"`
}

type checkoutRequest struct {
	SN             string                    `json:"sn"`
	Cart           []cartGroupRequest        `json:"cart"`
	PlatformCoupon *couponRequest            `json:"platform_coupon"`
	StoreCoupons   map[string]*couponRequest `json:"store_coupons"`
	PayPoints      int64                     `json:"pay_points"`
	Subtotal       float64                   `json:"subtotal"`
	Discount       float64                   `json:"discount"`
	Payable        float64                   `json:"payable"`
}

func (req *checkoutRequest) toIntent(buyerID uint64) (*domain.TradeIntent, error) {
	subtotal, err := decimal.NewFromFloat64(req.Subtotal)
	if err != nil {
		return nil, err
	}
	discount, err := decimal.NewFromFloat64(req.Discount)
	if err != nil {
		return nil, err
	}
	payable, err := decimal.NewFromFloat64(req.Payable)
	if err != nil {
		return nil, err
	}

	intent := &domain.TradeIntent{
		SN:      req.SN,
		BuyerID: buyerID,
		Price: domain.PriceDetail{
			Subtotal:  subtotal,
			Discount:  discount,
			PayPoints: req.PayPoints,
			Payable:   payable,
		},
	}

	for _, group := range req.Cart {
		amount, err := decimal.NewFromFloat64(group.Amount)
		if err != nil {
			return nil, err
		}
		items := make([]domain.OrderItem, 0, len(group.Items))
		for _, item := range group.Items {
			price, err := decimal.NewFromFloat64(item.Price)
			if err != nil {
				return nil, err
			}
			items = append(items, domain.OrderItem{
				SkuID:    item.SkuID,
				Name:     item.Name,
				Quantity: item.Quantity,
				Price:    price,
			})
		}
		intent.Cart = append(intent.Cart, domain.CartGroup{
			StoreID: group.StoreID,
			Amount:  amount,
			Items:   items,
		})
	}

	if req.PlatformCoupon != nil {
		intent.PlatformCoupon = &domain.CouponSelection{
			InstanceID: req.PlatformCoupon.InstanceID,
			CouponID:   req.PlatformCoupon.CouponID,
		}
	}
	if len(req.StoreCoupons) > 0 {
		intent.StoreCoupons = make(map[uint64]*domain.CouponSelection, len(req.StoreCoupons))
		for store, coupon := range req.StoreCoupons {
			storeID, err := strconv.ParseUint(store, 10, 64)
			if err != nil {
				return nil, err
			}
			intent.StoreCoupons[storeID] = &domain.CouponSelection{
				InstanceID: coupon.InstanceID,
				CouponID:   coupon.CouponID,
			}
		}
	}

	return intent, nil
}

type tradeResponse struct {
	SN        string          `json:"sn"`
	PayStatus string          `json:"pay_status"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Discount  decimal.Decimal `json:"discount"`
	PayPoints int64           `json:"pay_points"`
	Payable   decimal.Decimal `json:"payable"`
	CreatedAt time.Time       `json:"created_at"`
}

func newTradeResponse(trade *domain.Trade) tradeResponse {
	return tradeResponse{
		SN:        trade.SN,
		PayStatus: string(trade.PayStatus),
		Subtotal:  trade.Subtotal,
		Discount:  trade.Discount,
		PayPoints: trade.PayPoints,
		Payable:   trade.Payable,
		CreatedAt: trade.CreatedAt,
	}
}

func (th *TradeHandler) Checkout(ctx *gin.Context) {
	buyerID := getAuthPayload(ctx).BuyerID

	req := checkoutRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		th.handleValidationError(ctx, err)
		return
	}

	intent, err := req.toIntent(buyerID)
	if err != nil {
		th.handleValidationError(ctx, err)
		return
	}

	trade, err := th.service.CreateTrade(ctx, intent)
	if err != nil {
		th.handleError(ctx, err)
		return
	}

	th.metrics.TradesCreated.Inc()
	th.handleSuccessWithStatus(ctx, newTradeResponse(trade), http.StatusCreated)
}

func (th *TradeHandler) GetTrade(ctx *gin.Context) {
	trade, err := th.service.GetBySn(ctx, ctx.Param("sn"))
	if err != nil {
		th.handleError(ctx, err)
		return
	}

	th.handleSuccess(ctx, newTradeResponse(trade))
}

type orderResponse struct {
	SN           string          `json:"sn"`
	TradeSN      string          `json:"trade_sn"`
	StoreID      uint64          `json:"store_id"`
	PayStatus    string          `json:"pay_status"`
	PaymentName  string          `json:"payment_name,omitempty"`
	ReceivableNo string          `json:"receivable_no,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	CreatedAt    time.Time       `json:"created_at"`
	PaidAt       *time.Time      `json:"paid_at,omitempty"`
}

func (th *TradeHandler) ListTradeOrders(ctx *gin.Context) {
	list, err := th.service.GetTradeOrders(ctx, ctx.Param("sn"))
	if err != nil {
		th.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(list))
	for _, o := range list {
		result = append(result, orderResponse{
			SN:           o.SN,
			TradeSN:      o.TradeSN,
			StoreID:      o.StoreID,
			PayStatus:    string(o.PayStatus),
			PaymentName:  o.PaymentName,
			ReceivableNo: o.ReceivableNo,
			Amount:       o.Amount,
			CreatedAt:    o.CreatedAt,
			PaidAt:       o.PaidAt,
		})
	}

	th.handleSuccess(ctx, result)
}

type payRequest struct {
	PaymentName  string `json:"payment_name"`
	ReceivableNo string `json:"receivable_no"`
}

func (th *TradeHandler) PayTrade(ctx *gin.Context) {
	req := payRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		th.handleValidationError(ctx, err)
		return
	}

	err = th.service.PayTrade(ctx, ctx.Param("sn"), req.PaymentName, req.ReceivableNo)
	if err != nil {
		th.handleError(ctx, err)
		return
	}

	th.handleSuccessWithStatus(ctx, nil, http.StatusOK)
}

func (th *TradeHandler) PayOrder(ctx *gin.Context) {
	req := payRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		th.handleValidationError(ctx, err)
		return
	}

	err = th.service.PayOrder(ctx, ctx.Param("sn"), req.PaymentName, req.ReceivableNo)
	if err != nil {
		th.handleError(ctx, err)
		return
	}

	th.handleSuccessWithStatus(ctx, nil, http.StatusOK)
}
