package tracking

import (
	"context"

	"parcel-marketplace/internal/domain"
)

type deliveryReader interface {
	Get(ctx context.Context, id string) (*domain.Delivery, error)
}

type locationStore interface {
	Append(ctx context.Context, p domain.LocationPing) error
	ListRecent(ctx context.Context, deliveryID string, limit int) ([]domain.LocationPing, error)
}
