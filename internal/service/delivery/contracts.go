//go:generate mockgen -source=contracts.go -destination=delivery_mocks_test.go -package=delivery

package delivery

import (
	"context"

	"parcel-marketplace/internal/domain"
	"parcel-marketplace/internal/otp"
	"parcel-marketplace/internal/ports/deliverytx"
)

type deliveryRepository interface {
	Insert(ctx context.Context, d *domain.Delivery) error
	Get(ctx context.Context, id string) (*domain.Delivery, error)
	ListByParticipant(ctx context.Context, f domain.DeliveryFilter, limit int) ([]domain.Delivery, error)
	ListEvents(ctx context.Context, deliveryID string) ([]domain.DeliveryEvent, error)
	WithTx(ctx context.Context, fn func(tx deliverytx.Repository) error) error
}

type carrierProfiles interface {
	Get(ctx context.Context, userID string) (*domain.CarrierProfile, error)
}

type pricingSource interface {
	Overrides(ctx context.Context) (map[string]float64, error)
}

type otpCodec interface {
	IssuePair() (otp.Pair, error)
	Verify(code, digest string) bool
}

type attemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, ev domain.DeliveryEvent) error
}

// IDFactory issues identifiers for new deliveries and events.
type IDFactory interface {
	NewID() string
}
