// Package pricing computes delivery prices from distance, weight, timing and time of day.
package pricing

import (
	"math"
	"time"

	"parcel-marketplace/internal/domain"
)

// Distance bracket upper bounds (exclusive), in kilometers.
const (
	bracket05km = 0.5
	bracket1km  = 1.0
	bracket2km  = 2.0
)

// Weight band that receives the weight multiplier, inclusive on both ends.
const (
	weightBandMinKg = 2.0
	weightBandMaxKg = 5.0
)

// Breakdown shows how a price was assembled.
type Breakdown struct {
	Base             float64
	WeightMultiplier float64
	TimeMultiplier   float64
	PeakMultiplier   float64
	Total            int64
}

// Quote evaluates the price for the given inputs at instant now.
// Inputs are not validated; callers reject negative distance or weight upstream.
func Quote(distanceKm, weightKg float64, timing domain.TimingPreference, cfg Config, now time.Time) Breakdown {
	b := Breakdown{
		Base:             basePrice(distanceKm, cfg),
		WeightMultiplier: 1,
		TimeMultiplier:   1,
		PeakMultiplier:   1,
	}
	if weightKg >= weightBandMinKg && weightKg <= weightBandMaxKg {
		b.WeightMultiplier = cfg.WeightMultiplier25kg
	}
	if timing == domain.TimingASAP {
		b.TimeMultiplier = cfg.TimeMultiplierASAP
	}
	if IsPeakHour(now) {
		b.PeakMultiplier = cfg.PeakMultiplier
	}
	b.Total = int64(math.Round(b.Base * b.WeightMultiplier * b.TimeMultiplier * b.PeakMultiplier))
	return b
}

// Compute returns the rounded price in whole rupees.
func Compute(distanceKm, weightKg float64, timing domain.TimingPreference, cfg Config, now time.Time) int64 {
	return Quote(distanceKm, weightKg, timing, cfg, now).Total
}

func basePrice(distanceKm float64, cfg Config) float64 {
	switch {
	case distanceKm < bracket05km:
		return cfg.FlatFee05km
	case distanceKm < bracket1km:
		return cfg.FlatFee1km
	case distanceKm < bracket2km:
		return cfg.FlatFee2km
	default:
		return cfg.BaseFare + cfg.PerKmRate*distanceKm
	}
}

// IsPeakHour reports whether t falls in [07:00,09:00) or [18:00,21:00) of its own location.
func IsPeakHour(t time.Time) bool {
	h := t.Hour()
	return (h >= 7 && h < 9) || (h >= 18 && h < 21)
}
