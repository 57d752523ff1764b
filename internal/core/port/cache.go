package port

import (
	"context"

	"github.com/mallforge/tradesvc/internal/core/domain"
)

// IntentCache is the side channel consumers read the full trade intent
// from after an event arrives, keyed by domain.TradeCacheKey.
//
//go:generate mockgen -source=cache.go -destination=mock/cache.go -package=mock
type IntentCache interface {
	PutIntent(ctx context.Context, key string, intent *domain.TradeIntent) error
	GetIntent(ctx context.Context, key string) (*domain.TradeIntent, error)
}
