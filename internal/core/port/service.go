package port

import (
	"context"

	"github.com/mallforge/tradesvc/internal/core/domain"
)

type Service interface {
	CreateTrade(ctx context.Context, intent *domain.TradeIntent) (*domain.Trade, error)
	GetBySn(ctx context.Context, sn string) (*domain.Trade, error)
	GetTradeOrders(ctx context.Context, tradeSN string) ([]*domain.Order, error)

	PayTrade(ctx context.Context, tradeSN string, paymentName string, receivableNo string) error
	PayOrder(ctx context.Context, orderSN string, paymentName string, receivableNo string) error
}
