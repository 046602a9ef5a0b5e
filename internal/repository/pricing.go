package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PricingConfigRepo stores admin overrides of pricing parameters.
type PricingConfigRepo struct{ db *pgxpool.Pool }

// NewPricingConfigRepo creates a new PricingConfigRepo.
func NewPricingConfigRepo(db *pgxpool.Pool) *PricingConfigRepo { return &PricingConfigRepo{db: db} }

// Overrides returns every stored key/value pair.
func (r *PricingConfigRepo) Overrides(ctx context.Context) (map[string]float64, error) {
	rows, err := r.db.Query(ctx, `SELECT key, value FROM pricing_config`)
	if err != nil {
		return nil, fmt.Errorf("load pricing config: %w", err)
	}
	defer rows.Close()

	out := make(map[string]float64)
	for rows.Next() {
		var (
			k string
			v float64
		)
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan pricing config: %w", err)
		}
		out[k] = v
	}
	return out, rows.Err()
}

// Upsert writes all values atomically.
func (r *PricingConfigRepo) Upsert(ctx context.Context, values map[string]float64, at time.Time) error {
	if len(values) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for k, v := range values {
		batch.Queue(`
            INSERT INTO pricing_config (key, value, updated_at) VALUES ($1, $2, $3)
            ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
        `, k, v, at)
	}

	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("upsert pricing config: %w", err)
		}
		return nil
	})
}
