package tracking

import (
	"context"
	"time"

	"parcel-marketplace/internal/apperr"
	"parcel-marketplace/internal/domain"
	"parcel-marketplace/internal/validate"
)

const trackableStates = "matched|picked_up"

// Service records and serves carrier location pings for a delivery in transit.
type Service struct {
	deliveries deliveryReader
	locations  locationStore

	operationTimeout time.Duration
	historyLimit     int
	now              func() time.Time
}

// NewService creates a tracking Service. historyLimit caps List results.
func NewService(deliveries deliveryReader, locations locationStore, timeout time.Duration, historyLimit int) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if historyLimit <= 0 {
		historyLimit = 100
	}
	return &Service{
		deliveries:       deliveries,
		locations:        locations,
		operationTimeout: timeout,
		historyLimit:     historyLimit,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

type ping struct {
	Lat float64 `validate:"latitude"`
	Lng float64 `validate:"longitude"`
}

// Record stores the assigned carrier's position while the parcel is in their custody
// or on the way to pickup.
func (s *Service) Record(ctx context.Context, actor domain.Identity, deliveryID string, at domain.Coordinate) (*domain.LocationPing, error) {
	if err := validate.Struct(ping{Lat: at.Lat, Lng: at.Lng}); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.load(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if d.CarrierID == "" || d.CarrierID != actor.UserID {
		return nil, apperr.ErrForbidden
	}
	if d.Status != domain.StatusMatched && d.Status != domain.StatusPickedUp {
		return nil, apperr.StateConflict(trackableStates, d.Status)
	}

	p := domain.LocationPing{
		DeliveryID: d.ID,
		CarrierID:  actor.UserID,
		Location:   at,
		RecordedAt: s.now(),
	}
	if err := s.locations.Append(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns the most recent pings, newest first. A zero limit means the
// configured maximum; larger limits are clamped to it.
func (s *Service) List(ctx context.Context, actor domain.Identity, deliveryID string, limit int) ([]domain.LocationPing, error) {
	if limit < 0 {
		return nil, apperr.Invalid("limit must not be negative")
	}
	if limit == 0 || limit > s.historyLimit {
		limit = s.historyLimit
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.load(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !d.IsParticipant(actor.UserID) {
		return nil, apperr.ErrForbidden
	}
	return s.locations.ListRecent(ctx, d.ID, limit)
}

func (s *Service) load(ctx context.Context, id string) (*domain.Delivery, error) {
	if id == "" {
		return nil, apperr.Invalid("delivery id is required")
	}
	d, err := s.deliveries.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}
	return d, nil
}
