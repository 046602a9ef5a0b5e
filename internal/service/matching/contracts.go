package matching

import (
	"context"

	"parcel-marketplace/internal/domain"
)

type postedDeliveries interface {
	ListPosted(ctx context.Context) ([]domain.Delivery, error)
}

type carrierProfiles interface {
	Get(ctx context.Context, userID string) (*domain.CarrierProfile, error)
}
