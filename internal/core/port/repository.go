package port

import (
	"context"

	"github.com/mallforge/tradesvc/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// Trade
	CreateTradeWithOrders(ctx context.Context, trade *domain.Trade, orders []*domain.Order) (*domain.Trade, error)
	GetTradeBySN(ctx context.Context, sn string) (*domain.Trade, error)
	UpdateTrade(ctx context.Context, trade *domain.Trade) (*domain.Trade, error)

	// Order
	GetOrderBySN(ctx context.Context, sn string) (*domain.Order, error)
	ListOrdersByTrade(ctx context.Context, tradeSN string) ([]*domain.Order, error)
	UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
}
