package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"parcel-marketplace/internal/apperr"
	"parcel-marketplace/internal/domain"
	"parcel-marketplace/internal/ports/deliverytx"
)

// DeliveryRepo represents delivery repository.
type DeliveryRepo struct {
	db *pgxpool.Pool
}

// NewDeliveryRepo creates a new DeliveryRepo.
func NewDeliveryRepo(db *pgxpool.Pool) *DeliveryRepo {
	return &DeliveryRepo{db: db}
}

// Insert stores a freshly posted delivery.
func (r *DeliveryRepo) Insert(ctx context.Context, d *domain.Delivery) error {
	photos := d.Parcel.PhotoRefs
	if photos == nil {
		photos = []string{}
	}
	_, err := r.db.Exec(ctx, `
        INSERT INTO deliveries (
            id, sender_id, carrier_id,
            pickup_address, pickup_lat, pickup_lng,
            dropoff_address, dropoff_lat, dropoff_lng,
            category, weight_kg, declared_value, photo_refs,
            price_rs, distance_km, timing, scheduled_at, status, created_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
    `,
		d.ID, d.SenderID, nullable(d.CarrierID),
		d.Pickup.Address, d.Pickup.Location.Lat, d.Pickup.Location.Lng,
		d.Dropoff.Address, d.Dropoff.Location.Lat, d.Dropoff.Location.Lng,
		string(d.Parcel.Category), d.Parcel.WeightKg, d.Parcel.DeclaredValue, photos,
		d.PriceRs, d.DistanceKm, string(d.Timing), d.ScheduledAt, string(d.Status), d.CreatedAt,
	)
	if err != nil {
		switch {
		case IsDuplicate(err):
			return apperr.ErrConflict
		case IsCheckViolation(err):
			return apperr.Invalid("delivery violates a table constraint")
		}
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

// Get returns a delivery by id, or nil if it does not exist.
func (r *DeliveryRepo) Get(ctx context.Context, id string) (*domain.Delivery, error) {
	var row deliveryRow
	err := pgxscan.Get(ctx, r.db, &row, `SELECT `+deliveryColumns+` FROM deliveries WHERE id = $1`, id)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery %q: %w", id, err)
	}
	d := row.toDomain()
	return &d, nil
}

// ListByParticipant returns the user's deliveries, newest first.
func (r *DeliveryRepo) ListByParticipant(ctx context.Context, f domain.DeliveryFilter, limit int) ([]domain.Delivery, error) {
	q := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE `
	args := []any{f.UserID}
	switch f.Role {
	case domain.ParticipantSender:
		q += `sender_id = $1`
	case domain.ParticipantCarrier:
		q += `carrier_id = $1`
	default:
		q += `(sender_id = $1 OR carrier_id = $1)`
	}
	if f.Status != nil {
		args = append(args, string(*f.Status))
		q += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	q += ` ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		args = append(args, limit)
		q += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	var rows []deliveryRow
	if err := pgxscan.Select(ctx, r.db, &rows, q, args...); err != nil {
		return nil, fmt.Errorf("list deliveries for %q: %w", f.UserID, err)
	}
	return toDeliveries(rows), nil
}

// ListPosted returns every posted delivery, oldest first.
func (r *DeliveryRepo) ListPosted(ctx context.Context) ([]domain.Delivery, error) {
	var rows []deliveryRow
	err := pgxscan.Select(ctx, r.db, &rows,
		`SELECT `+deliveryColumns+` FROM deliveries WHERE status = $1 ORDER BY created_at, id`,
		string(domain.StatusPosted))
	if err != nil {
		return nil, fmt.Errorf("list posted deliveries: %w", err)
	}
	return toDeliveries(rows), nil
}

// ListEvents returns the transition history of a delivery in order.
func (r *DeliveryRepo) ListEvents(ctx context.Context, deliveryID string) ([]domain.DeliveryEvent, error) {
	var rows []eventRow
	err := pgxscan.Select(ctx, r.db, &rows, `
        SELECT id, delivery_id, from_status, to_status, actor_id, occurred_at
        FROM delivery_events
        WHERE delivery_id = $1
        ORDER BY occurred_at, id
    `, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("list events for %q: %w", deliveryID, err)
	}
	out := make([]domain.DeliveryEvent, 0, len(rows))
	for _, e := range rows {
		out = append(out, domain.DeliveryEvent{
			ID:         e.ID,
			DeliveryID: e.DeliveryID,
			From:       domain.DeliveryStatus(e.FromStatus),
			To:         domain.DeliveryStatus(e.ToStatus),
			ActorID:    e.ActorID,
			OccurredAt: e.OccurredAt,
		})
	}
	return out, nil
}

// WithTx opens a transaction and executes fn within it.
func (r *DeliveryRepo) WithTx(ctx context.Context, fn func(tx deliverytx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	// откатываем в случае паники
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&TxRepo{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// TxRepo performs lifecycle writes inside a transaction.
type TxRepo struct {
	tx pgx.Tx
}

var _ deliverytx.Repository = (*TxRepo)(nil)

// MarkMatched assigns the carrier only while the delivery is still posted.
func (r *TxRepo) MarkMatched(ctx context.Context, id, carrierID string, otp domain.OTPDigests, at time.Time) (bool, error) {
	ct, err := r.tx.Exec(ctx, `
        UPDATE deliveries
        SET status = $2, carrier_id = $3, pickup_otp_digest = $4, delivery_otp_digest = $5, matched_at = $6
        WHERE id = $1 AND status = $7
    `, id, string(domain.StatusMatched), carrierID, otp.Pickup, otp.Delivery, at, string(domain.StatusPosted))
	if err != nil {
		return false, fmt.Errorf("mark delivery %q matched: %w", id, err)
	}
	return ct.RowsAffected() == 1, nil
}

// ConfirmCheckpoint advances past cp when status and digest are unchanged.
func (r *TxRepo) ConfirmCheckpoint(ctx context.Context, id string, cp domain.Checkpoint, digest string, at time.Time) (bool, error) {
	var q string
	switch cp {
	case domain.CheckpointPickup:
		q = `UPDATE deliveries SET status = $2, picked_up_at = $3
             WHERE id = $1 AND status = $4 AND pickup_otp_digest = $5`
	case domain.CheckpointDelivery:
		q = `UPDATE deliveries SET status = $2, delivered_at = $3
             WHERE id = $1 AND status = $4 AND delivery_otp_digest = $5`
	default:
		return false, apperr.Invalid("unknown checkpoint " + string(cp))
	}

	ct, err := r.tx.Exec(ctx, q, id, string(cp.To()), at, string(cp.From()), digest)
	if err != nil {
		return false, fmt.Errorf("confirm %s for delivery %q: %w", cp, id, err)
	}
	return ct.RowsAffected() == 1, nil
}

// MarkCancelled cancels a delivery still in from and drops carrier and codes.
func (r *TxRepo) MarkCancelled(ctx context.Context, id string, from domain.DeliveryStatus, at time.Time) (bool, error) {
	ct, err := r.tx.Exec(ctx, `
        UPDATE deliveries
        SET status = $2, cancelled_at = $3, carrier_id = NULL,
            pickup_otp_digest = NULL, delivery_otp_digest = NULL
        WHERE id = $1 AND status = $4
    `, id, string(domain.StatusCancelled), at, string(from))
	if err != nil {
		return false, fmt.Errorf("cancel delivery %q: %w", id, err)
	}
	return ct.RowsAffected() == 1, nil
}

// AppendEvent records a transition in the audit log.
func (r *TxRepo) AppendEvent(ctx context.Context, ev domain.DeliveryEvent) error {
	_, err := r.tx.Exec(ctx, `
        INSERT INTO delivery_events (id, delivery_id, from_status, to_status, actor_id, occurred_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, ev.ID, ev.DeliveryID, string(ev.From), string(ev.To), ev.ActorID, ev.OccurredAt)
	if err != nil {
		return fmt.Errorf("append event for delivery %q: %w", ev.DeliveryID, err)
	}
	return nil
}
