package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parcel-marketplace/internal/apperr"
	"parcel-marketplace/internal/domain"
	"parcel-marketplace/internal/geo"
	"parcel-marketplace/internal/logx"
	"parcel-marketplace/internal/metrics"
	"parcel-marketplace/internal/pricing"
	"parcel-marketplace/internal/validate"
)

const defaultListLimit = 100

// Deps are the collaborators of Service.
type Deps struct {
	Repo     deliveryRepository
	Carriers carrierProfiles
	Pricing  pricingSource
	Codec    otpCodec
	Attempts attemptLimiter
	Events   eventPublisher
	IDs      IDFactory
	Metrics  *metrics.Delivery
	Logger   logx.Logger
}

// Options tune Service behaviour.
type Options struct {
	OperationTimeout time.Duration
	// ListLimit bounds ListMine results.
	ListLimit int
	// PricingLocation is the clock used to evaluate peak hours.
	PricingLocation *time.Location
}

// Service owns the delivery lifecycle.
type Service struct {
	repo     deliveryRepository
	carriers carrierProfiles
	pricing  pricingSource
	codec    otpCodec
	attempts attemptLimiter
	events   eventPublisher
	ids      IDFactory
	metrics  *metrics.Delivery
	logger   logx.Logger

	operationTimeout time.Duration
	listLimit        int
	loc              *time.Location
	now              func() time.Time
}

// NewService wires a Service. Nil limiter, publisher, ids or logger fall back
// to permissive no-op implementations.
func NewService(d Deps, o Options) *Service {
	if o.OperationTimeout <= 0 {
		o.OperationTimeout = 3 * time.Second
	}
	if o.ListLimit <= 0 {
		o.ListLimit = defaultListLimit
	}
	if o.PricingLocation == nil {
		o.PricingLocation = time.Local
	}
	if d.Attempts == nil {
		d.Attempts = allowAll{}
	}
	if d.Events == nil {
		d.Events = discardEvents{}
	}
	if d.IDs == nil {
		d.IDs = NewIDFactory()
	}
	if d.Logger == nil {
		d.Logger = logx.Nop()
	}
	return &Service{
		repo:             d.Repo,
		carriers:         d.Carriers,
		pricing:          d.Pricing,
		codec:            d.Codec,
		attempts:         d.Attempts,
		events:           d.Events,
		ids:              d.IDs,
		metrics:          d.Metrics,
		logger:           d.Logger,
		operationTimeout: o.OperationTimeout,
		listLimit:        o.ListLimit,
		loc:              o.PricingLocation,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Create posts a new delivery priced from the current pricing configuration.
func (s *Service) Create(ctx context.Context, sender domain.Identity, in domain.NewDelivery) (*domain.Delivery, error) {
	if sender.UserID == "" {
		return nil, apperr.ErrUnauthenticated
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}
	pickup := domain.Coordinate{Lat: in.PickupLat, Lng: in.PickupLng}
	dropoff := domain.Coordinate{Lat: in.DropoffLat, Lng: in.DropoffLng}
	if !geo.ValidCoordinate(pickup) || !geo.ValidCoordinate(dropoff) {
		return nil, apperr.Invalid("coordinates out of range")
	}

	now := s.now()
	if in.Timing != domain.TimingScheduled && in.ScheduledAt != nil {
		return nil, apperr.Invalid("ScheduledAt is only allowed for scheduled timing")
	}
	if in.ScheduledAt != nil && !in.ScheduledAt.After(now) {
		return nil, apperr.Invalid("ScheduledAt must be in the future")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	overrides, err := s.pricing.Overrides(ctx)
	if err != nil {
		return nil, fmt.Errorf("load pricing config: %w", err)
	}
	cfg := pricing.FromOverrides(overrides)
	distance := geo.DistanceKm(pickup, dropoff)

	d := &domain.Delivery{
		ID:       s.ids.NewID(),
		SenderID: sender.UserID,
		Pickup:   domain.Place{Address: in.PickupAddress, Location: pickup},
		Dropoff:  domain.Place{Address: in.DropoffAddress, Location: dropoff},
		Parcel: domain.Parcel{
			Category:      in.Category,
			WeightKg:      in.WeightKg,
			DeclaredValue: in.DeclaredValue,
			PhotoRefs:     in.PhotoRefs,
		},
		PriceRs:     pricing.Compute(distance, in.WeightKg, in.Timing, cfg, now.In(s.loc)),
		DistanceKm:  distance,
		Timing:      in.Timing,
		ScheduledAt: in.ScheduledAt,
		Status:      domain.StatusPosted,
		CreatedAt:   now,
	}
	if err := s.repo.Insert(ctx, d); err != nil {
		return nil, err
	}

	s.metrics.QuotedPrice(d.PriceRs)
	s.logger.Info("delivery posted",
		logx.String("event", "delivery_posted"),
		logx.String("delivery_id", d.ID),
		logx.String("sender_id", d.SenderID),
		logx.Int64("price_rs", d.PriceRs),
		logx.Float64("distance_km", d.DistanceKm),
	)
	return d, nil
}

// Get returns a delivery visible to actor: participants and admins always,
// anyone while it is still posted.
func (s *Service) Get(ctx context.Context, actor domain.Identity, id string) (*domain.Delivery, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !d.IsParticipant(actor.UserID) && d.Status != domain.StatusPosted {
		return nil, apperr.ErrForbidden
	}
	return d, nil
}

// ListMine returns the actor's deliveries, newest first.
func (s *Service) ListMine(ctx context.Context, actor domain.Identity, role domain.ParticipantRole, status *domain.DeliveryStatus) ([]domain.Delivery, error) {
	switch role {
	case domain.ParticipantAny, domain.ParticipantSender, domain.ParticipantCarrier:
	default:
		return nil, apperr.Invalid("unknown role filter " + string(role))
	}
	if status != nil && !status.Valid() {
		return nil, apperr.Invalid("unknown status filter " + string(*status))
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.repo.ListByParticipant(ctx, domain.DeliveryFilter{
		UserID: actor.UserID,
		Role:   role,
		Status: status,
	}, s.listLimit)
}

// History returns the transition log of a delivery.
func (s *Service) History(ctx context.Context, actor domain.Identity, id string) ([]domain.DeliveryEvent, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !d.IsParticipant(actor.UserID) {
		return nil, apperr.ErrForbidden
	}
	return s.repo.ListEvents(ctx, id)
}

func (s *Service) load(ctx context.Context, id string) (*domain.Delivery, error) {
	if id == "" {
		return nil, apperr.Invalid("delivery id is required")
	}
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}
	return d, nil
}

type allowAll struct{}

func (allowAll) Allow(context.Context, string) (bool, error) { return true, nil }

type discardEvents struct{}

func (discardEvents) Publish(context.Context, domain.DeliveryEvent) error { return nil }

var errLostRace = errors.New("delivery changed concurrently")
