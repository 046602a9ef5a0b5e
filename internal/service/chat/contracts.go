package chat

import (
	"context"

	"parcel-marketplace/internal/domain"
)

type deliveryReader interface {
	Get(ctx context.Context, id string) (*domain.Delivery, error)
}

type messageStore interface {
	Append(ctx context.Context, m domain.Message) error
	ListByDelivery(ctx context.Context, deliveryID string, limit int) ([]domain.Message, error)
}
