package repository

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"parcel-marketplace/internal/apperr"
	"parcel-marketplace/internal/domain"
)

// LocationRepo stores carrier position pings.
type LocationRepo struct{ db *pgxpool.Pool }

// NewLocationRepo creates a new LocationRepo.
func NewLocationRepo(db *pgxpool.Pool) *LocationRepo { return &LocationRepo{db: db} }

// Append stores one ping.
func (r *LocationRepo) Append(ctx context.Context, p domain.LocationPing) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO location_pings (delivery_id, carrier_id, lat, lng, recorded_at)
        VALUES ($1, $2, $3, $4, $5)
    `, p.DeliveryID, p.CarrierID, p.Location.Lat, p.Location.Lng, p.RecordedAt)
	if err != nil {
		if IsMissingParent(err) {
			return apperr.ErrNotFound
		}
		return fmt.Errorf("append location for delivery %q: %w", p.DeliveryID, err)
	}
	return nil
}

// ListRecent returns up to limit pings, newest first.
func (r *LocationRepo) ListRecent(ctx context.Context, deliveryID string, limit int) ([]domain.LocationPing, error) {
	var rows []pingRow
	err := pgxscan.Select(ctx, r.db, &rows, `
        SELECT delivery_id, carrier_id, lat, lng, recorded_at
        FROM location_pings
        WHERE delivery_id = $1
        ORDER BY recorded_at DESC, id DESC
        LIMIT $2
    `, deliveryID, limit)
	if err != nil {
		return nil, fmt.Errorf("list locations for delivery %q: %w", deliveryID, err)
	}
	out := make([]domain.LocationPing, 0, len(rows))
	for _, p := range rows {
		out = append(out, domain.LocationPing{
			DeliveryID: p.DeliveryID,
			CarrierID:  p.CarrierID,
			Location:   domain.Coordinate{Lat: p.Lat, Lng: p.Lng},
			RecordedAt: p.RecordedAt,
		})
	}
	return out, nil
}
