package events

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"parcel-marketplace/internal/domain"
	"parcel-marketplace/internal/logx"
	"parcel-marketplace/internal/transport/kafka"
)

type publisher interface {
	Publish(context.Context, domain.DeliveryEvent) error
}

type counter interface {
	Inc()
}

// RetryConfig описывает поведение RetryingPublisher
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingPublisher retries transient broker failures with exponential backoff.
type RetryingPublisher struct {
	next    publisher
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
	sleep   func(context.Context, time.Duration) bool
}

// NewRetryingPublisher returns nil when next is nil.
func NewRetryingPublisher(next publisher, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingPublisher {
	if next == nil {
		return nil
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &RetryingPublisher{next: next, logger: logger, retries: retries, cfg: cfg, sleep: sleepWithContext}
}

// Publish delivers ev, retrying while the error is retryable and attempts remain.
func (p *RetryingPublisher) Publish(ctx context.Context, ev domain.DeliveryEvent) error {
	var lastErr error
	for attempt := 1; attempt <= p.cfg.MaxAttempts; attempt++ {
		err := p.next.Publish(ctx, ev)
		if err == nil {
			return nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == p.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(p.cfg.BaseDelay, p.cfg.MaxDelay, attempt)
		if p.retries != nil {
			p.retries.Inc()
		}
		p.logger.Warn("delivery event publish retry",
			logx.String("event_id", ev.ID),
			logx.String("delivery_id", ev.DeliveryID),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !p.sleep(ctx, delay) {
			break
		}
	}
	return lastErr
}

// isRetryable определяет, является ли ошибка повторяемой
func isRetryable(err error) bool {
	var perm kafka.PermanentError
	if errors.As(err, &perm) {
		return false
	}
	for _, target := range []error{
		sarama.ErrOutOfBrokers,
		sarama.ErrNotConnected,
		sarama.ErrNotLeaderForPartition,
		sarama.ErrLeaderNotAvailable,
		sarama.ErrRequestTimedOut,
		sarama.ErrNotEnoughReplicas,
		sarama.ErrNotEnoughReplicasAfterAppend,
		sarama.ErrNetworkException,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// backoff вычисляет задержку повтора
func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base
	for i := 1; i < attempt; i++ {
		if d >= max {
			return max
		}
		d *= 2
	}
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
