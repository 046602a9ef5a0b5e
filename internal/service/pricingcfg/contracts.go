//go:generate mockgen -source=contracts.go -destination=pricingcfg_mocks_test.go -package=pricingcfg

package pricingcfg

import (
	"context"
	"time"
)

type configStore interface {
	Overrides(ctx context.Context) (map[string]float64, error)
	Upsert(ctx context.Context, values map[string]float64, at time.Time) error
}
