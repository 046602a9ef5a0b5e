package app

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"parcel-marketplace/internal/config"
	"parcel-marketplace/internal/domain"
	"parcel-marketplace/internal/gateway/events"
	"parcel-marketplace/internal/logx"
	"parcel-marketplace/internal/transport/kafka"
)

type eventPublisher interface {
	Publish(ctx context.Context, ev domain.DeliveryEvent) error
}

func newProducer(cfg *config.Config) (*kafka.Producer, error) {
	return kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.DeliveryTopic)
}

type publisherIn struct {
	dig.In

	Config   *config.Config
	Logger   logx.Logger
	Producer *kafka.Producer
	Retries  prometheus.Counter `name:"event_publish_retries_total"`
}

// newEventPublisher returns a nil publisher when Kafka is not configured.
func newEventPublisher(in publisherIn) eventPublisher {
	if in.Producer == nil {
		in.Logger.Info("kafka brokers not configured, lifecycle events are not published")
		return nil
	}
	return events.NewRetryingPublisher(in.Producer, in.Logger, in.Retries, events.RetryConfig{
		MaxAttempts: in.Config.Events.MaxAttempts,
		BaseDelay:   in.Config.Events.BaseDelay,
		MaxDelay:    in.Config.Events.MaxDelay,
	})
}
