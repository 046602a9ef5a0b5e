package delivery

import (
	"context"
	"errors"
	"time"

	"parcel-marketplace/internal/apperr"
	"parcel-marketplace/internal/domain"
	"parcel-marketplace/internal/logx"
	"parcel-marketplace/internal/metrics"
	"parcel-marketplace/internal/otp"
	"parcel-marketplace/internal/ports/deliverytx"
)

const cancellableStates = "posted|matched|picked_up"

// Accept matches a posted delivery to an approved carrier. The plaintext codes
// in the result are not stored anywhere and cannot be fetched again.
func (s *Service) Accept(ctx context.Context, actor domain.Identity, id string) (domain.AcceptResult, error) {
	if actor.Role != domain.RoleCarrier {
		return domain.AcceptResult{}, apperr.ErrForbidden
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	profile, err := s.carriers.Get(ctx, actor.UserID)
	if err != nil {
		return domain.AcceptResult{}, err
	}
	if !profile.Approved() {
		return domain.AcceptResult{}, apperr.ErrForbidden
	}

	d, err := s.load(ctx, id)
	if err != nil {
		return domain.AcceptResult{}, err
	}
	if d.SenderID == actor.UserID {
		return domain.AcceptResult{}, apperr.ErrForbidden
	}
	if d.Status != domain.StatusPosted {
		return domain.AcceptResult{}, apperr.StateConflict(string(domain.StatusPosted), d.Status)
	}

	pair, err := s.codec.IssuePair()
	if err != nil {
		return domain.AcceptResult{}, err
	}
	digests := domain.OTPDigests{Pickup: pair.PickupDigest, Delivery: pair.DeliveryDigest}

	now := s.now()
	err = s.transition(ctx, d, domain.StatusMatched, actor.UserID, now, func(tx deliverytx.Repository) (bool, error) {
		return tx.MarkMatched(ctx, d.ID, actor.UserID, digests, now)
	})
	if err != nil {
		return domain.AcceptResult{}, s.explainConflict(ctx, err, d.ID, string(domain.StatusPosted))
	}

	d.Status = domain.StatusMatched
	d.CarrierID = actor.UserID
	d.OTP = digests
	d.MatchedAt = &now

	return domain.AcceptResult{
		Delivery:    *d,
		PickupOTP:   pair.PickupCode,
		DeliveryOTP: pair.DeliveryCode,
	}, nil
}

// VerifyOTP confirms a checkpoint handoff with the code held by the other party.
// A call out of sequence fails as a state conflict before the code is checked.
func (s *Service) VerifyOTP(ctx context.Context, actor domain.Identity, id string, cp domain.Checkpoint, code string) (*domain.Delivery, error) {
	if !cp.Valid() {
		return nil, apperr.Invalid("unknown checkpoint " + string(cp))
	}
	if !otp.WellFormed(code) {
		return nil, apperr.Invalid("code must be 4 digits")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !d.IsParticipant(actor.UserID) {
		return nil, apperr.ErrForbidden
	}
	if d.Status != cp.From() {
		return nil, apperr.StateConflict(string(cp.From()), d.Status)
	}

	allowed, err := s.attempts.Allow(ctx, d.ID+":"+string(cp))
	if err != nil {
		s.logger.Warn("otp attempt limiter failed",
			logx.String("delivery_id", d.ID),
			logx.String("checkpoint", string(cp)),
			logx.Err(err),
		)
	}
	if !allowed {
		s.metrics.OTPCheck(string(cp), metrics.OTPResultThrottled)
		return nil, apperr.ErrTooManyAttempts
	}

	digest := d.OTP.Digest(cp)
	if !s.codec.Verify(code, digest) {
		s.metrics.OTPCheck(string(cp), metrics.OTPResultMismatch)
		s.logger.Warn("otp mismatch",
			logx.String("event", "otp_mismatch"),
			logx.String("delivery_id", d.ID),
			logx.String("checkpoint", string(cp)),
			logx.String("actor_id", actor.UserID),
		)
		return nil, apperr.ErrCredentialMismatch
	}

	now := s.now()
	err = s.transition(ctx, d, cp.To(), actor.UserID, now, func(tx deliverytx.Repository) (bool, error) {
		return tx.ConfirmCheckpoint(ctx, d.ID, cp, digest, now)
	})
	if err != nil {
		return nil, s.explainConflict(ctx, err, d.ID, string(cp.From()))
	}
	s.metrics.OTPCheck(string(cp), metrics.OTPResultOK)

	d.Status = cp.To()
	if cp == domain.CheckpointPickup {
		d.PickedUpAt = &now
	} else {
		d.DeliveredAt = &now
	}
	return d, nil
}

// Cancel moves a non-terminal delivery to cancelled. The sender, the assigned
// carrier and admins may cancel.
func (s *Service) Cancel(ctx context.Context, actor domain.Identity, id string) (*domain.Delivery, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	d, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !d.IsParticipant(actor.UserID) {
		return nil, apperr.ErrForbidden
	}
	if !domain.CanTransition(d.Status, domain.StatusCancelled) {
		return nil, apperr.StateConflict(cancellableStates, d.Status)
	}

	from := d.Status
	now := s.now()
	err = s.transition(ctx, d, domain.StatusCancelled, actor.UserID, now, func(tx deliverytx.Repository) (bool, error) {
		return tx.MarkCancelled(ctx, d.ID, from, now)
	})
	if err != nil {
		return nil, s.explainConflict(ctx, err, d.ID, cancellableStates)
	}

	d.Status = domain.StatusCancelled
	d.CarrierID = ""
	d.OTP = domain.OTPDigests{}
	d.CancelledAt = &now
	return d, nil
}

// transition runs apply and records the event in one transaction, then
// publishes the event. apply reporting false yields errLostRace.
func (s *Service) transition(
	ctx context.Context,
	d *domain.Delivery,
	to domain.DeliveryStatus,
	actorID string,
	at time.Time,
	apply func(tx deliverytx.Repository) (bool, error),
) error {
	ev := domain.DeliveryEvent{
		ID:         s.ids.NewID(),
		DeliveryID: d.ID,
		From:       d.Status,
		To:         to,
		ActorID:    actorID,
		OccurredAt: at,
	}

	err := s.repo.WithTx(ctx, func(tx deliverytx.Repository) error {
		ok, err := apply(tx)
		if err != nil {
			return err
		}
		if !ok {
			return errLostRace
		}
		return tx.AppendEvent(ctx, ev)
	})
	if err != nil {
		return err
	}

	s.metrics.Transition(string(ev.From), string(ev.To))
	s.logger.Info("delivery transition",
		logx.String("event", "delivery_transition"),
		logx.String("delivery_id", ev.DeliveryID),
		logx.String("from", string(ev.From)),
		logx.String("to", string(ev.To)),
		logx.String("actor_id", actorID),
	)
	s.publish(ctx, ev)
	return nil
}

// publish is best effort: the transition is already committed.
func (s *Service) publish(ctx context.Context, ev domain.DeliveryEvent) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.operationTimeout)
	defer cancel()

	if err := s.events.Publish(pubCtx, ev); err != nil {
		s.metrics.PublishFailed()
		s.logger.Error("publish delivery event",
			logx.String("delivery_id", ev.DeliveryID),
			logx.String("to", string(ev.To)),
			logx.Err(err),
		)
	}
}

// explainConflict turns a lost check-and-set into a StateConflictError
// carrying the status that won.
func (s *Service) explainConflict(ctx context.Context, err error, id, expected string) error {
	if !errors.Is(err, errLostRace) {
		return err
	}
	current, gerr := s.repo.Get(ctx, id)
	if gerr != nil || current == nil {
		return apperr.StateConflict(expected, "unknown")
	}
	return apperr.StateConflict(expected, current.Status)
}
