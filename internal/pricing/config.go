package pricing

import (
	"math"
	"sort"
)

// Recognized pricing keys.
const (
	KeyBaseFare             = "base_fare"
	KeyPerKmRate            = "per_km_rate"
	KeyFlatFee05km          = "flat_fee_05km"
	KeyFlatFee1km           = "flat_fee_1km"
	KeyFlatFee2km           = "flat_fee_2km"
	KeyWeightMultiplier25kg = "weight_multiplier_2_5kg"
	KeyTimeMultiplierASAP   = "time_multiplier_asap"
	KeyPeakMultiplier       = "peak_multiplier"
)

// Config is the full set of tunables used by Compute.
type Config struct {
	BaseFare             float64
	PerKmRate            float64
	FlatFee05km          float64
	FlatFee1km           float64
	FlatFee2km           float64
	WeightMultiplier25kg float64
	TimeMultiplierASAP   float64
	PeakMultiplier       float64
}

var defaultConfig = Config{
	BaseFare:             25,
	PerKmRate:            4,
	FlatFee05km:          20,
	FlatFee1km:           25,
	FlatFee2km:           30,
	WeightMultiplier25kg: 1.2,
	TimeMultiplierASAP:   1.15,
	PeakMultiplier:       1.5,
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return defaultConfig
}

func (c *Config) field(key string) *float64 {
	switch key {
	case KeyBaseFare:
		return &c.BaseFare
	case KeyPerKmRate:
		return &c.PerKmRate
	case KeyFlatFee05km:
		return &c.FlatFee05km
	case KeyFlatFee1km:
		return &c.FlatFee1km
	case KeyFlatFee2km:
		return &c.FlatFee2km
	case KeyWeightMultiplier25kg:
		return &c.WeightMultiplier25kg
	case KeyTimeMultiplierASAP:
		return &c.TimeMultiplierASAP
	case KeyPeakMultiplier:
		return &c.PeakMultiplier
	default:
		return nil
	}
}

// FromOverrides merges sparse overrides key by key over the defaults.
// Unknown keys are ignored.
func FromOverrides(overrides map[string]float64) Config {
	cfg := Defaults()
	for k, v := range overrides {
		if f := cfg.field(k); f != nil {
			*f = v
		}
	}
	return cfg
}

// Map returns the configuration as a key/value mapping.
func (c Config) Map() map[string]float64 {
	out := make(map[string]float64, len(knownKeys))
	for _, k := range knownKeys {
		out[k] = *c.field(k)
	}
	return out
}

var knownKeys = func() []string {
	keys := []string{
		KeyBaseFare, KeyPerKmRate, KeyFlatFee05km, KeyFlatFee1km,
		KeyFlatFee2km, KeyWeightMultiplier25kg, KeyTimeMultiplierASAP, KeyPeakMultiplier,
	}
	sort.Strings(keys)
	return keys
}()

// Keys returns the recognized keys in lexical order.
func Keys() []string {
	out := make([]string, len(knownKeys))
	copy(out, knownKeys)
	return out
}

// IsKnownKey reports whether key is a recognized tunable.
func IsKnownKey(key string) bool {
	var c Config
	return c.field(key) != nil
}

// ValidValue reports whether v may be stored for a tunable.
func ValidValue(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
