// Package deliverytx declares the transactional delivery store used by
// lifecycle transitions.
package deliverytx

import (
	"context"
	"time"

	"parcel-marketplace/internal/domain"
)

// Repository is the set of writes a lifecycle transition may perform inside
// one transaction. Conditional updates report whether the row matched.
type Repository interface {
	// MarkMatched moves a posted delivery to matched with carrierID.
	MarkMatched(ctx context.Context, id, carrierID string, otp domain.OTPDigests, at time.Time) (bool, error)
	// ConfirmCheckpoint advances a delivery past cp when it is still in
	// cp.From() and the stored digest for cp equals digest.
	ConfirmCheckpoint(ctx context.Context, id string, cp domain.Checkpoint, digest string, at time.Time) (bool, error)
	// MarkCancelled cancels a delivery that is still in from, dropping the
	// carrier and both digests.
	MarkCancelled(ctx context.Context, id string, from domain.DeliveryStatus, at time.Time) (bool, error)
	// AppendEvent records a transition.
	AppendEvent(ctx context.Context, ev domain.DeliveryEvent) error
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
