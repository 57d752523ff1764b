package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/mallforge/tradesvc/internal/core/domain"
	"github.com/mallforge/tradesvc/internal/core/port"
	"github.com/mallforge/tradesvc/internal/core/port/mock"
	"github.com/mallforge/tradesvc/internal/core/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type prepareMocks func(repo *mock.MockRepository, ledger *mock.MockIncentiveLedger,
	cache *mock.MockIntentCache, pub *mock.MockEventPublisher)

func newIntent(sn string, groups int) *domain.TradeIntent {
	intent := &domain.TradeIntent{
		SN:      sn,
		BuyerID: 1,
		Price: domain.PriceDetail{
			Subtotal: decimal.MustParse("100"),
			Discount: decimal.Zero,
			Payable:  decimal.MustParse("100"),
		},
	}
	for i := 0; i < groups; i++ {
		intent.Cart = append(intent.Cart, domain.CartGroup{
			OrderSN: "O10" + string(rune('0'+i)),
			StoreID: uint64(i + 1),
			Amount:  decimal.MustParse("50"),
			Items: []domain.OrderItem{
				{SkuID: "SKU-1", Name: "item", Quantity: 1, Price: decimal.MustParse("50")},
			},
		})
	}
	return intent
}

func newService(t *testing.T, mockCtrl *gomock.Controller, prepare prepareMocks) *service.TradeService {
	t.Helper()

	repo := mock.NewMockRepository(mockCtrl)
	ledger := mock.NewMockIncentiveLedger(mockCtrl)
	cache := mock.NewMockIntentCache(mockCtrl)
	pub := mock.NewMockEventPublisher(mockCtrl)
	if prepare != nil {
		prepare(repo, ledger, cache, pub)
	}

	logger, _ := zap.NewProduction()
	s, err := service.NewTradeService(repo, ledger, cache, pub, logger)
	assert.NoError(t, err)

	return s
}

func TestService_CreateTrade(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type createTradeTest struct {
		name     string
		intent   *domain.TradeIntent
		mock     prepareMocks
		expError error
	}

	key := domain.TradeCacheKey("T100")

	tests := []createTradeTest{
		{
			name:   "Create good trade without incentives",
			intent: newIntent("T100", 1),
			mock: func(repo *mock.MockRepository, ledger *mock.MockIncentiveLedger,
				cache *mock.MockIntentCache, pub *mock.MockEventPublisher) {
				repo.EXPECT().CreateTradeWithOrders(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, trade *domain.Trade, orders []*domain.Order) (*domain.Trade, error) {
						return trade, nil
					})
				cache.EXPECT().PutIntent(gomock.Any(), key, gomock.Any()).Return(nil)
				pub.EXPECT().PublishAsync(gomock.Any(), port.TagOrderCreate, key, []byte(key))
			},
			expError: nil,
		},
		{
			name:     "Empty cart",
			intent:   newIntent("T100", 0),
			mock:     nil,
			expError: domain.ErrEmptyCart,
		},
		{
			name: "Points balance short",
			intent: func() *domain.TradeIntent {
				i := newIntent("T100", 1)
				i.Price.PayPoints = 500
				return i
			}(),
			mock: func(repo *mock.MockRepository, ledger *mock.MockIncentiveLedger,
				cache *mock.MockIntentCache, pub *mock.MockEventPublisher) {
				ledger.EXPECT().PointBalance(gomock.Any(), uint64(1)).Return(int64(100), nil)
			},
			expError: domain.ErrInsufficientIncentive,
		},
		{
			name: "Points debit loses the race",
			intent: func() *domain.TradeIntent {
				i := newIntent("T100", 1)
				i.Price.PayPoints = 500
				return i
			}(),
			mock: func(repo *mock.MockRepository, ledger *mock.MockIncentiveLedger,
				cache *mock.MockIntentCache, pub *mock.MockEventPublisher) {
				ledger.EXPECT().PointBalance(gomock.Any(), uint64(1)).Return(int64(1000), nil)
				ledger.EXPECT().DebitPoints(gomock.Any(), uint64(1), int64(500), "T100", gomock.Any()).
					Return(false, nil)
			},
			expError: domain.ErrInsufficientIncentive,
		},
		{
			name: "Points debit good",
			intent: func() *domain.TradeIntent {
				i := newIntent("T100", 1)
				i.Price.PayPoints = 500
				return i
			}(),
			mock: func(repo *mock.MockRepository, ledger *mock.MockIncentiveLedger,
				cache *mock.MockIntentCache, pub *mock.MockEventPublisher) {
				ledger.EXPECT().PointBalance(gomock.Any(), uint64(1)).Return(int64(1000), nil)
				ledger.EXPECT().DebitPoints(gomock.Any(), uint64(1), int64(500), "T100", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uint64, _ int64, _ string, reason string) (bool, error) {
						assert.Contains(t, reason, "O100")
						return true, nil
					})
				repo.EXPECT().CreateTradeWithOrders(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, trade *domain.Trade, orders []*domain.Order) (*domain.Trade, error) {
						return trade, nil
					})
				cache.EXPECT().PutIntent(gomock.Any(), key, gomock.Any()).Return(nil)
				pub.EXPECT().PublishAsync(gomock.Any(), port.TagOrderCreate, key, []byte(key))
			},
			expError: nil,
		},
		{
			name: "Coupon mark fails",
			intent: func() *domain.TradeIntent {
				i := newIntent("T100", 1)
				i.PlatformCoupon = &domain.CouponSelection{InstanceID: "MC1", CouponID: "C1"}
				return i
			}(),
			mock: func(repo *mock.MockRepository, ledger *mock.MockIncentiveLedger,
				cache *mock.MockIntentCache, pub *mock.MockEventPublisher) {
				ledger.EXPECT().MarkCouponsUsed(gomock.Any(), "T100", []string{"MC1"}).
					Return(domain.ErrNoUpdatedData)
			},
			expError: domain.ErrInsufficientIncentive,
		},
		{
			name:   "Persist trade fails after debit",
			intent: newIntent("T100", 1),
			mock: func(repo *mock.MockRepository, ledger *mock.MockIncentiveLedger,
				cache *mock.MockIntentCache, pub *mock.MockEventPublisher) {
				repo.EXPECT().CreateTradeWithOrders(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection reset"))
			},
			expError: domain.ErrPersistenceFailure,
		},
		{
			name:   "Retried creation returns existing trade",
			intent: newIntent("T100", 1),
			mock: func(repo *mock.MockRepository, ledger *mock.MockIncentiveLedger,
				cache *mock.MockIntentCache, pub *mock.MockEventPublisher) {
				repo.EXPECT().CreateTradeWithOrders(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrConflictingData)
				repo.EXPECT().GetTradeBySN(gomock.Any(), "T100").
					Return(&domain.Trade{SN: "T100", BuyerID: 1, PayStatus: domain.PayStatusUnpaid}, nil)
			},
			expError: nil,
		},
		{
			name: "Retried creation replays incentive debits and converges",
			intent: func() *domain.TradeIntent {
				i := newIntent("T100", 1)
				i.Price.PayPoints = 500
				i.PlatformCoupon = &domain.CouponSelection{InstanceID: "MC1", CouponID: "C1"}
				return i
			}(),
			mock: func(repo *mock.MockRepository, ledger *mock.MockIncentiveLedger,
				cache *mock.MockIntentCache, pub *mock.MockEventPublisher) {
				ledger.EXPECT().PointBalance(gomock.Any(), uint64(1)).Return(int64(1000), nil)
				// the first attempt already debited under the same trade
				// SN, so the replay reports success without spending twice
				ledger.EXPECT().DebitPoints(gomock.Any(), uint64(1), int64(500), "T100", gomock.Any()).
					Return(true, nil)
				ledger.EXPECT().MarkCouponsUsed(gomock.Any(), "T100", []string{"MC1"}).Return(nil)
				ledger.EXPECT().ConsumeCoupon(gomock.Any(), "T100", "C1", 1).Return(nil)
				repo.EXPECT().CreateTradeWithOrders(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrConflictingData)
				repo.EXPECT().GetTradeBySN(gomock.Any(), "T100").
					Return(&domain.Trade{SN: "T100", BuyerID: 1, PayStatus: domain.PayStatusUnpaid}, nil)
			},
			expError: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newService(t, mockCtrl, test.mock)

			trade, err := s.CreateTrade(context.Background(), test.intent)

			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.Equal(t, "T100", trade.SN)
				assert.Equal(t, domain.PayStatusUnpaid, trade.PayStatus)
			} else {
				assert.Nil(t, trade)
			}
		})
	}
}

func TestService_CreateTradeOrderFanout(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	intent := newIntent("", 3)
	for i := range intent.Cart {
		intent.Cart[i].OrderSN = ""
	}

	var captured []*domain.Order
	s := newService(t, mockCtrl,
		func(repo *mock.MockRepository, ledger *mock.MockIncentiveLedger,
			cache *mock.MockIntentCache, pub *mock.MockEventPublisher) {
			repo.EXPECT().CreateTradeWithOrders(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, trade *domain.Trade, orders []*domain.Order) (*domain.Trade, error) {
					captured = orders
					return trade, nil
				})
			cache.EXPECT().PutIntent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			pub.EXPECT().PublishAsync(gomock.Any(), port.TagOrderCreate, gomock.Any(), gomock.Any())
		})

	trade, err := s.CreateTrade(context.Background(), intent)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(trade.SN, "T"))

	assert.Len(t, captured, 3)
	for i, order := range captured {
		assert.Equal(t, trade.SN, order.TradeSN)
		assert.True(t, strings.HasPrefix(order.SN, "O"))
		assert.Equal(t, uint64(i+1), order.StoreID)
		assert.Equal(t, domain.PayStatusUnpaid, order.PayStatus)
	}
}

func TestService_CreateTradeCouponConsumption(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	intent := newIntent("T100", 2)
	intent.PlatformCoupon = &domain.CouponSelection{InstanceID: "MC1", CouponID: "C1"}
	intent.StoreCoupons = map[uint64]*domain.CouponSelection{
		1: {InstanceID: "MC2", CouponID: "C2"},
		2: {InstanceID: "MC3", CouponID: "C3"},
	}

	s := newService(t, mockCtrl,
		func(repo *mock.MockRepository, ledger *mock.MockIncentiveLedger,
			cache *mock.MockIntentCache, pub *mock.MockEventPublisher) {
			ledger.EXPECT().MarkCouponsUsed(gomock.Any(), "T100", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, ids []string) error {
					assert.ElementsMatch(t, []string{"MC1", "MC2", "MC3"}, ids)
					return nil
				})
			ledger.EXPECT().ConsumeCoupon(gomock.Any(), "T100", "C1", 1).Return(nil)
			ledger.EXPECT().ConsumeCoupon(gomock.Any(), "T100", "C2", 1).Return(nil)
			ledger.EXPECT().ConsumeCoupon(gomock.Any(), "T100", "C3", 1).Return(nil)
			repo.EXPECT().CreateTradeWithOrders(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, trade *domain.Trade, orders []*domain.Order) (*domain.Trade, error) {
					return trade, nil
				})
			cache.EXPECT().PutIntent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			pub.EXPECT().PublishAsync(gomock.Any(), port.TagOrderCreate, gomock.Any(), gomock.Any())
		})

	_, err := s.CreateTrade(context.Background(), intent)
	assert.NoError(t, err)
}

func TestService_PayTrade(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	trade := domain.Trade{SN: "T100", BuyerID: 1, PayStatus: domain.PayStatusUnpaid}
	confirmFailed := errors.New("payment confirmation failed")

	type payTradeTest struct {
		name     string
		mock     prepareMocks
		expError error
	}

	tests := []payTradeTest{
		{
			name: "Pay both orders",
			mock: func(repo *mock.MockRepository, ledger *mock.MockIncentiveLedger,
				cache *mock.MockIntentCache, pub *mock.MockEventPublisher) {
				repo.EXPECT().ListOrdersByTrade(gomock.Any(), "T100").Return([]*domain.Order{
					{SN: "O100", TradeSN: "T100", PayStatus: domain.PayStatusUnpaid},
					{SN: "O101", TradeSN: "T100", PayStatus: domain.PayStatusUnpaid},
				}, nil)
				repo.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).Times(2).
					DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
						assert.Equal(t, domain.PayStatusPaid, order.PayStatus)
						assert.Equal(t, "alipay", order.PaymentName)
						assert.Equal(t, "R-1", order.ReceivableNo)
						assert.NotNil(t, order.PaidAt)
						return order, nil
					})
				repo.EXPECT().GetTradeBySN(gomock.Any(), "T100").Return(&trade, nil)
				repo.EXPECT().UpdateTrade(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tr *domain.Trade) (*domain.Trade, error) {
						assert.Equal(t, domain.PayStatusPaid, tr.PayStatus)
						return tr, nil
					})
			},
			expError: nil,
		},
		{
			name: "First order confirmation fails",
			mock: func(repo *mock.MockRepository, ledger *mock.MockIncentiveLedger,
				cache *mock.MockIntentCache, pub *mock.MockEventPublisher) {
				repo.EXPECT().ListOrdersByTrade(gomock.Any(), "T100").Return([]*domain.Order{
					{SN: "O100", TradeSN: "T100", PayStatus: domain.PayStatusUnpaid},
					{SN: "O101", TradeSN: "T100", PayStatus: domain.PayStatusUnpaid},
				}, nil)
				repo.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).Return(nil, confirmFailed)
			},
			expError: confirmFailed,
		},
		{
			name: "No orders under trade",
			mock: func(repo *mock.MockRepository, ledger *mock.MockIncentiveLedger,
				cache *mock.MockIntentCache, pub *mock.MockEventPublisher) {
				repo.EXPECT().ListOrdersByTrade(gomock.Any(), "T100").Return([]*domain.Order{}, nil)
			},
			expError: domain.ErrDataNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newService(t, mockCtrl, test.mock)

			err := s.PayTrade(context.Background(), "T100", "alipay", "R-1")
			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_PayOrderRollup(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("Partial settlement leaves trade unpaid", func(t *testing.T) {
		s := newService(t, mockCtrl,
			func(repo *mock.MockRepository, ledger *mock.MockIncentiveLedger,
				cache *mock.MockIntentCache, pub *mock.MockEventPublisher) {
				repo.EXPECT().GetOrderBySN(gomock.Any(), "O100").
					Return(&domain.Order{SN: "O100", TradeSN: "T100", PayStatus: domain.PayStatusUnpaid}, nil)
				repo.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
						return order, nil
					})
				repo.EXPECT().ListOrdersByTrade(gomock.Any(), "T100").Return([]*domain.Order{
					{SN: "O100", TradeSN: "T100", PayStatus: domain.PayStatusPaid},
					{SN: "O101", TradeSN: "T100", PayStatus: domain.PayStatusUnpaid},
				}, nil)
			})

		err := s.PayOrder(context.Background(), "O100", "alipay", "R-1")
		assert.NoError(t, err)
	})

	t.Run("Last order advances trade to paid", func(t *testing.T) {
		s := newService(t, mockCtrl,
			func(repo *mock.MockRepository, ledger *mock.MockIncentiveLedger,
				cache *mock.MockIntentCache, pub *mock.MockEventPublisher) {
				repo.EXPECT().GetOrderBySN(gomock.Any(), "O101").
					Return(&domain.Order{SN: "O101", TradeSN: "T100", PayStatus: domain.PayStatusUnpaid}, nil)
				repo.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
						return order, nil
					})
				repo.EXPECT().ListOrdersByTrade(gomock.Any(), "T100").Return([]*domain.Order{
					{SN: "O100", TradeSN: "T100", PayStatus: domain.PayStatusPaid},
					{SN: "O101", TradeSN: "T100", PayStatus: domain.PayStatusPaid},
				}, nil)
				repo.EXPECT().GetTradeBySN(gomock.Any(), "T100").
					Return(&domain.Trade{SN: "T100", PayStatus: domain.PayStatusUnpaid}, nil)
				repo.EXPECT().UpdateTrade(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tr *domain.Trade) (*domain.Trade, error) {
						assert.Equal(t, domain.PayStatusPaid, tr.PayStatus)
						return tr, nil
					})
			})

		err := s.PayOrder(context.Background(), "O101", "alipay", "R-1")
		assert.NoError(t, err)
	})

	t.Run("Paid order never transitions back", func(t *testing.T) {
		paidAt := time.Now()
		s := newService(t, mockCtrl,
			func(repo *mock.MockRepository, ledger *mock.MockIncentiveLedger,
				cache *mock.MockIntentCache, pub *mock.MockEventPublisher) {
				repo.EXPECT().GetOrderBySN(gomock.Any(), "O100").
					Return(&domain.Order{SN: "O100", TradeSN: "T100",
						PayStatus: domain.PayStatusPaid, PaidAt: &paidAt}, nil)
				repo.EXPECT().ListOrdersByTrade(gomock.Any(), "T100").Return([]*domain.Order{
					{SN: "O100", TradeSN: "T100", PayStatus: domain.PayStatusPaid, PaidAt: &paidAt},
					{SN: "O101", TradeSN: "T100", PayStatus: domain.PayStatusUnpaid},
				}, nil)
			})

		err := s.PayOrder(context.Background(), "O100", "wechat", "R-2")
		assert.NoError(t, err)
	})
}
