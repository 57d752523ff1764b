package port

import "context"

// TagOrderCreate categorizes trade-created events on the order topic.
const TagOrderCreate = "ORDER_CREATE"

// EventPublisher hands messages to a durable channel with at-least-once
// delivery. PublishAsync never blocks the caller; the delivery outcome
// is observed out-of-band and never fails the originating request.
// Consumers are expected to dedupe by key.
//
//go:generate mockgen -source=publisher.go -destination=mock/publisher.go -package=mock
type EventPublisher interface {
	PublishAsync(ctx context.Context, tag string, key string, payload []byte)
}
