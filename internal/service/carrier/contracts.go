package carrier

import (
	"context"
	"time"

	"parcel-marketplace/internal/domain"
)

// carrierRepository defines storage operations required by the business layer.
type carrierRepository interface {
	Get(ctx context.Context, userID string) (*domain.CarrierProfile, error)
	UpsertKYC(ctx context.Context, p *domain.CarrierProfile) error
	SetOnline(ctx context.Context, userID string, online bool, dest *domain.Coordinate) (bool, error)
	ListByStatus(ctx context.Context, status domain.VerificationStatus) ([]domain.CarrierProfile, error)
	Review(ctx context.Context, userID string, verdict domain.VerificationStatus, reason string, at time.Time) (bool, error)
}
