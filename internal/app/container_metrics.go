package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/dig"

	"parcel-marketplace/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal   prometheus.Counter `name:"rate_limit_exceeded_total"`
	EventPublishRetriesTotal prometheus.Counter `name:"event_publish_retries_total"`
	HTTP                     *metrics.HTTP
	Delivery                 *metrics.Delivery
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideMetrics(reg prometheus.Registerer) (metricsOut, error) {
	rl, err := registerCounter(reg, metrics.NewRateLimitExceededTotal())
	if err != nil {
		return metricsOut{}, fmt.Errorf("register rate_limit_exceeded_total: %w", err)
	}
	retries, err := registerCounter(reg, metrics.NewEventPublishRetriesTotal())
	if err != nil {
		return metricsOut{}, fmt.Errorf("register delivery_event_publish_retries_total: %w", err)
	}

	httpMetrics := metrics.NewHTTP()
	if err := metrics.Register(reg, httpMetrics.Collectors()...); err != nil {
		return metricsOut{}, fmt.Errorf("register http metrics: %w", err)
	}
	deliveryMetrics := metrics.NewDelivery()
	if err := metrics.Register(reg, deliveryMetrics.Collectors()...); err != nil {
		return metricsOut{}, fmt.Errorf("register delivery metrics: %w", err)
	}

	return metricsOut{
		RateLimitExceededTotal:   rl,
		EventPublishRetriesTotal: retries,
		HTTP:                     httpMetrics,
		Delivery:                 deliveryMetrics,
	}, nil
}

// registerCounter returns the already registered counter when c collides with it.
func registerCounter(reg prometheus.Registerer, c prometheus.Counter) (prometheus.Counter, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
			return existing, nil
		}
	}
	return nil, err
}
