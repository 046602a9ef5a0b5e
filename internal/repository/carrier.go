package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"parcel-marketplace/internal/domain"
)

// CarrierRepo represents carrier profile repository.
type CarrierRepo struct{ db *pgxpool.Pool }

// NewCarrierRepo creates a new CarrierRepo.
func NewCarrierRepo(db *pgxpool.Pool) *CarrierRepo { return &CarrierRepo{db: db} }

// Get returns the carrier profile of a user, or nil if none was submitted.
func (r *CarrierRepo) Get(ctx context.Context, userID string) (*domain.CarrierProfile, error) {
	var row carrierRow
	err := pgxscan.Get(ctx, r.db, &row, `SELECT `+carrierColumns+` FROM carrier_profiles WHERE user_id = $1`, userID)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get carrier %q: %w", userID, err)
	}
	p := row.toDomain()
	return &p, nil
}

// UpsertKYC stores a submission. Resubmitting resets review and takes the
// carrier offline.
func (r *CarrierRepo) UpsertKYC(ctx context.Context, p *domain.CarrierProfile) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO carrier_profiles (user_id, phone, vehicle_type, id_document_ref, selfie_ref,
                                      verification_status, rejection_reason, online, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, '', FALSE, $7, $7)
        ON CONFLICT (user_id) DO UPDATE SET
            phone = EXCLUDED.phone,
            vehicle_type = EXCLUDED.vehicle_type,
            id_document_ref = EXCLUDED.id_document_ref,
            selfie_ref = EXCLUDED.selfie_ref,
            verification_status = EXCLUDED.verification_status,
            rejection_reason = '',
            approved_at = NULL,
            online = FALSE,
            updated_at = EXCLUDED.updated_at
    `, p.UserID, p.Phone, string(p.VehicleType), p.IDDocumentRef, p.SelfieRef,
		string(domain.VerificationPending), p.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert carrier %q: %w", p.UserID, err)
	}
	return nil
}

// SetOnline toggles availability of an approved carrier. A nil destination
// clears it.
func (r *CarrierRepo) SetOnline(ctx context.Context, userID string, online bool, dest *domain.Coordinate) (bool, error) {
	var lat, lng *float64
	if dest != nil {
		lat, lng = &dest.Lat, &dest.Lng
	}
	ct, err := r.db.Exec(ctx, `
        UPDATE carrier_profiles
        SET online = $2, destination_lat = $3, destination_lng = $4, updated_at = now()
        WHERE user_id = $1 AND verification_status = $5
    `, userID, online, lat, lng, string(domain.VerificationApproved))
	if err != nil {
		return false, fmt.Errorf("set carrier %q online: %w", userID, err)
	}
	return ct.RowsAffected() == 1, nil
}

// ListByStatus returns profiles in the given review state, oldest first.
func (r *CarrierRepo) ListByStatus(ctx context.Context, status domain.VerificationStatus) ([]domain.CarrierProfile, error) {
	var rows []carrierRow
	err := pgxscan.Select(ctx, r.db, &rows,
		`SELECT `+carrierColumns+` FROM carrier_profiles WHERE verification_status = $1 ORDER BY created_at, user_id`,
		string(status))
	if err != nil {
		return nil, fmt.Errorf("list carriers by status %q: %w", status, err)
	}
	out := make([]domain.CarrierProfile, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Review records a verdict on a pending profile. Rejection forces offline.
func (r *CarrierRepo) Review(ctx context.Context, userID string, verdict domain.VerificationStatus, reason string, at time.Time) (bool, error) {
	var approvedAt *time.Time
	if verdict == domain.VerificationApproved {
		approvedAt = &at
	}
	ct, err := r.db.Exec(ctx, `
        UPDATE carrier_profiles
        SET verification_status = $2,
            rejection_reason = $3,
            approved_at = $4,
            online = CASE WHEN $2 = 'approved' THEN online ELSE FALSE END,
            updated_at = $5
        WHERE user_id = $1 AND verification_status = $6
    `, userID, string(verdict), reason, approvedAt, at, string(domain.VerificationPending))
	if err != nil {
		return false, fmt.Errorf("review carrier %q: %w", userID, err)
	}
	return ct.RowsAffected() == 1, nil
}
