package pricingcfg

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"parcel-marketplace/internal/apperr"
	"parcel-marketplace/internal/domain"
	"parcel-marketplace/internal/logx"
	"parcel-marketplace/internal/pricing"
)

// Service exposes the pricing tunables to admins.
type Service struct {
	store            configStore
	logger           logx.Logger
	operationTimeout time.Duration
	now              func() time.Time
}

// NewService creates a pricing configuration Service.
func NewService(store configStore, logger logx.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		store:            store,
		logger:           logger,
		operationTimeout: timeout,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Get returns the effective configuration: defaults overlaid by stored values.
func (s *Service) Get(ctx context.Context, actor domain.Identity) (map[string]float64, error) {
	if !actor.IsAdmin() {
		return nil, apperr.ErrForbidden
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.effective(ctx)
}

// Set stores the given values and returns the effective configuration. The
// whole update is rejected if any key is unknown or any value is negative or
// not finite.
func (s *Service) Set(ctx context.Context, actor domain.Identity, values map[string]float64) (map[string]float64, error) {
	if !actor.IsAdmin() {
		return nil, apperr.ErrForbidden
	}
	if len(values) == 0 {
		return nil, apperr.Invalid("no values given")
	}
	if err := check(values); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.store.Upsert(ctx, values, s.now()); err != nil {
		return nil, err
	}
	s.logger.Info("pricing config updated",
		logx.String("event", "pricing_config_updated"),
		logx.String("actor_id", actor.UserID),
		logx.Any("values", values),
	)
	return s.effective(ctx)
}

func (s *Service) effective(ctx context.Context) (map[string]float64, error) {
	overrides, err := s.store.Overrides(ctx)
	if err != nil {
		return nil, err
	}
	return pricing.FromOverrides(overrides).Map(), nil
}

func check(values map[string]float64) error {
	var problems []string
	for k, v := range values {
		switch {
		case !pricing.IsKnownKey(k):
			problems = append(problems, fmt.Sprintf("unknown key %q", k))
		case !pricing.ValidValue(v):
			problems = append(problems, fmt.Sprintf("%s must be a finite non-negative number", k))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return apperr.Invalid(strings.Join(problems, "; "))
}
