package mq

import (
	"context"
	"strings"
	"time"

	"github.com/mallforge/tradesvc/internal/adapter/config"
	"github.com/mallforge/tradesvc/internal/adapter/metrics"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const publishTimeout = 10 * time.Second

// Publisher hands trade events to kafka. Delivery runs on its own
// goroutine and is only observed through logs and metrics; a failed
// delivery never fails the request that produced the event.
type Publisher struct {
	writer  *kafka.Writer
	metrics *metrics.Metrics
	logger  *zap.Logger
}

func NewPublisher(conf *config.Kafka, m *metrics.Metrics, logger *zap.Logger) (*Publisher, error) {
	brokers := []string{}
	for _, b := range strings.Split(conf.Brokers, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        conf.OrderTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	return &Publisher{
		writer:  writer,
		metrics: m,
		logger:  logger,
	}, nil
}

func (p *Publisher) PublishAsync(_ context.Context, tag string, key string, payload []byte) {
	msg := kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "tag", Value: []byte(tag)},
		},
	}

	// detached from the request context, the caller never waits on delivery
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		err := p.writer.WriteMessages(ctx, msg)
		if err != nil {
			p.metrics.EventsPublished.WithLabelValues(tag, "error").Inc()
			p.logger.Error("publish trade event",
				zap.String("tag", tag), zap.String("key", key), zap.Error(err))
			return
		}

		p.metrics.EventsPublished.WithLabelValues(tag, "ok").Inc()
		p.logger.Info("trade event delivered",
			zap.String("tag", tag), zap.String("key", key))
	}()
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
