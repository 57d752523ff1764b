package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mallforge/tradesvc/internal/core/domain"
	"github.com/mallforge/tradesvc/internal/core/port"
	"go.uber.org/zap"
)

// TradeService orchestrates trade creation and settlement. Incentives
// are debited before the trade is persisted: the ledger is an external
// resource without rollback support, so a persistence failure after a
// debit leaves a gap that reconciliation closes by trade SN (debits are
// idempotent per trade SN).
type TradeService struct {
	repo      port.Repository
	ledger    port.IncentiveLedger
	cache     port.IntentCache
	publisher port.EventPublisher
	logger    *zap.Logger
}

func NewTradeService(repo port.Repository, ledger port.IncentiveLedger,
	cache port.IntentCache, publisher port.EventPublisher, logger *zap.Logger) (*TradeService, error) {
	return &TradeService{
		repo:      repo,
		ledger:    ledger,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
	}, nil
}

func (s *TradeService) CreateTrade(ctx context.Context, intent *domain.TradeIntent) (*domain.Trade, error) {
	if len(intent.Cart) == 0 {
		return nil, domain.ErrEmptyCart
	}

	assignSNs(intent)
	trade := domain.NewTrade(intent)
	key := domain.TradeCacheKey(trade.SN)

	// incentive pretreatment, strictly before any persistence
	err := s.pointPretreatment(ctx, intent)
	if err != nil {
		return nil, err
	}
	err = s.couponPretreatment(ctx, intent)
	if err != nil {
		return nil, err
	}

	newTrade, err := s.repo.CreateTradeWithOrders(ctx, trade, buildOrders(intent))
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			// retried creation, the trade is already on record
			return s.repo.GetTradeBySN(ctx, trade.SN)
		}
		s.logger.Error("Persist trade", zap.String("trade", trade.SN), zap.Error(err))
		return nil, domain.ErrPersistenceFailure
	}

	// the trade is durable from here on, cache and event failures must
	// not fail the request
	err = s.cache.PutIntent(ctx, key, intent)
	if err != nil {
		s.logger.Error("Cache trade intent", zap.String("key", key), zap.Error(err))
	}

	s.publisher.PublishAsync(ctx, port.TagOrderCreate, key, []byte(key))

	return newTrade, nil
}

func (s *TradeService) GetBySn(ctx context.Context, sn string) (*domain.Trade, error) {
	trade, err := s.repo.GetTradeBySN(ctx, sn)
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Error("Get trade", zap.String("trade", sn), zap.Error(err))
		}
		return nil, err
	}
	return trade, nil
}

func (s *TradeService) GetTradeOrders(ctx context.Context, tradeSN string) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByTrade(ctx, tradeSN)
	if err != nil {
		s.logger.Error("List trade orders", zap.String("trade", tradeSN), zap.Error(err))
		return nil, err
	}
	return list, nil
}

// PayTrade confirms payment for every order of a trade with the same
// payment method and receivable reference, then advances the trade to
// PAID. The first failing order aborts the rollup; orders confirmed
// before it stay PAID.
func (s *TradeService) PayTrade(ctx context.Context, tradeSN string, paymentName string, receivableNo string) error {
	orders, err := s.repo.ListOrdersByTrade(ctx, tradeSN)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return domain.ErrDataNotFound
	}

	for _, order := range orders {
		err := s.confirmOrder(ctx, order, paymentName, receivableNo)
		if err != nil {
			return err
		}
	}

	trade, err := s.repo.GetTradeBySN(ctx, tradeSN)
	if err != nil {
		return err
	}
	trade.PayStatus = domain.PayStatusPaid
	_, err = s.repo.UpdateTrade(ctx, trade)
	return err
}

// PayOrder confirms payment for a single order and advances the owning
// trade to PAID once every sibling order is PAID.
func (s *TradeService) PayOrder(ctx context.Context, orderSN string, paymentName string, receivableNo string) error {
	order, err := s.repo.GetOrderBySN(ctx, orderSN)
	if err != nil {
		return err
	}

	err = s.confirmOrder(ctx, order, paymentName, receivableNo)
	if err != nil {
		return err
	}

	return s.rollupTrade(ctx, order.TradeSN)
}

// confirmOrder is idempotent: a PAID order never transitions back.
func (s *TradeService) confirmOrder(ctx context.Context, order *domain.Order, paymentName string, receivableNo string) error {
	if order.PayStatus == domain.PayStatusPaid {
		return nil
	}

	now := time.Now()
	order.PayStatus = domain.PayStatusPaid
	order.PaymentName = paymentName
	order.ReceivableNo = receivableNo
	order.PaidAt = &now

	_, err := s.repo.UpdateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Confirm order payment", zap.String("order", order.SN), zap.Error(err))
		return err
	}
	return nil
}

func (s *TradeService) rollupTrade(ctx context.Context, tradeSN string) error {
	orders, err := s.repo.ListOrdersByTrade(ctx, tradeSN)
	if err != nil {
		return err
	}
	for _, order := range orders {
		if order.PayStatus != domain.PayStatusPaid {
			return nil
		}
	}

	trade, err := s.repo.GetTradeBySN(ctx, tradeSN)
	if err != nil {
		return err
	}
	if trade.PayStatus == domain.PayStatusPaid {
		return nil
	}
	trade.PayStatus = domain.PayStatusPaid
	_, err = s.repo.UpdateTrade(ctx, trade)
	return err
}

func (s *TradeService) pointPretreatment(ctx context.Context, intent *domain.TradeIntent) error {
	points := intent.Price.PayPoints
	if points <= 0 {
		return nil
	}

	balance, err := s.ledger.PointBalance(ctx, intent.BuyerID)
	if err != nil {
		s.logger.Error("Read point balance", zap.Uint64("buyer", intent.BuyerID), zap.Error(err))
		return domain.ErrInternal
	}
	if balance < points {
		return domain.ErrInsufficientIncentive
	}

	reason := fmt.Sprintf("orders [%s] created, points deducted", strings.Join(intent.OrderSNs(), ","))
	debited, err := s.ledger.DebitPoints(ctx, intent.BuyerID, points, intent.SN, reason)
	if err != nil {
		s.logger.Error("Debit points", zap.Uint64("buyer", intent.BuyerID), zap.Error(err))
		return domain.ErrInternal
	}
	if !debited {
		// the balance read above is only an optimistic pre-check, the
		// debit is the authoritative one
		return domain.ErrInsufficientIncentive
	}
	return nil
}

func (s *TradeService) couponPretreatment(ctx context.Context, intent *domain.TradeIntent) error {
	coupons := intent.SelectedCoupons()
	if len(coupons) == 0 {
		return nil
	}

	ids := make([]string, 0, len(coupons))
	for _, c := range coupons {
		ids = append(ids, c.InstanceID)
	}
	err := s.ledger.MarkCouponsUsed(ctx, intent.SN, ids)
	if err != nil {
		s.logger.Error("Mark coupons used", zap.Strings("coupons", ids), zap.Error(err))
		return domain.ErrInsufficientIncentive
	}

	for _, c := range coupons {
		err := s.ledger.ConsumeCoupon(ctx, intent.SN, c.CouponID, 1)
		if err != nil {
			s.logger.Error("Consume coupon", zap.String("coupon", c.CouponID), zap.Error(err))
			return domain.ErrInsufficientIncentive
		}
	}
	return nil
}

func assignSNs(intent *domain.TradeIntent) {
	if intent.SN == "" {
		intent.SN = newSN("T")
	}
	for i := range intent.Cart {
		if intent.Cart[i].OrderSN == "" {
			intent.Cart[i].OrderSN = newSN("O")
		}
	}
}

func newSN(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func buildOrders(intent *domain.TradeIntent) []*domain.Order {
	now := time.Now()
	orders := make([]*domain.Order, 0, len(intent.Cart))
	for _, group := range intent.Cart {
		orders = append(orders, &domain.Order{
			SN:        group.OrderSN,
			TradeSN:   intent.SN,
			BuyerID:   intent.BuyerID,
			StoreID:   group.StoreID,
			PayStatus: domain.PayStatusUnpaid,
			Amount:    group.Amount,
			Items:     group.Items,
			CreatedAt: now,
		})
	}
	return orders
}
