package matching

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"parcel-marketplace/internal/apperr"
	"parcel-marketplace/internal/domain"
	"parcel-marketplace/internal/geo"
)

// Options tune discovery.
type Options struct {
	OperationTimeout time.Duration
	// DefaultRadiusKm is used when the caller passes zero.
	DefaultRadiusKm float64
	MaxRadiusKm     float64
}

// Service lists posted deliveries near an approved carrier.
type Service struct {
	deliveries postedDeliveries
	carriers   carrierProfiles

	operationTimeout time.Duration
	defaultRadius    float64
	maxRadius        float64
}

// NewService creates a matching Service.
func NewService(deliveries postedDeliveries, carriers carrierProfiles, o Options) *Service {
	if o.OperationTimeout <= 0 {
		o.OperationTimeout = 3 * time.Second
	}
	if o.MaxRadiusKm <= 0 {
		o.MaxRadiusKm = 100
	}
	if o.DefaultRadiusKm <= 0 || o.DefaultRadiusKm > o.MaxRadiusKm {
		o.DefaultRadiusKm = math.Min(10, o.MaxRadiusKm)
	}
	return &Service{
		deliveries:       deliveries,
		carriers:         carriers,
		operationTimeout: o.OperationTimeout,
		defaultRadius:    o.DefaultRadiusKm,
		maxRadius:        o.MaxRadiusKm,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// FindNearby returns posted deliveries whose pickup lies within radiusKm of
// loc, nearest first. A zero radius means the configured default.
func (s *Service) FindNearby(ctx context.Context, actor domain.Identity, loc domain.Coordinate, radiusKm float64) ([]domain.Candidate, error) {
	if !geo.ValidCoordinate(loc) {
		return nil, apperr.Invalid("coordinates out of range")
	}
	if radiusKm == 0 {
		radiusKm = s.defaultRadius
	}
	if math.IsNaN(radiusKm) || radiusKm < 0 || radiusKm > s.maxRadius {
		return nil, apperr.Invalid(fmt.Sprintf("radius must be within (0, %g] km", s.maxRadius))
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	profile, err := s.carriers.Get(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if !profile.Approved() {
		return nil, apperr.ErrForbidden
	}

	posted, err := s.deliveries.ListPosted(ctx)
	if err != nil {
		return nil, err
	}
	return Rank(loc, posted, radiusKm), nil
}

// Rank annotates posted deliveries with their pickup distance from loc, drops
// those farther than maxKm and sorts the rest by distance. Ties keep the
// earliest created first.
func Rank(loc domain.Coordinate, deliveries []domain.Delivery, maxKm float64) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(deliveries))
	for _, d := range deliveries {
		if d.Status != domain.StatusPosted {
			continue
		}
		dist := geo.DistanceKm(loc, d.Pickup.Location)
		if math.IsNaN(dist) || dist > maxKm {
			continue
		}
		out = append(out, domain.Candidate{Delivery: d, DistanceKm: dist})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DistanceKm != out[j].DistanceKm {
			return out[i].DistanceKm < out[j].DistanceKm
		}
		return out[i].Delivery.CreatedAt.Before(out[j].Delivery.CreatedAt)
	})
	return out
}
