package carrier

import (
	"context"
	"strings"
	"time"

	"parcel-marketplace/internal/apperr"
	"parcel-marketplace/internal/domain"
	"parcel-marketplace/internal/geo"
	"parcel-marketplace/internal/logx"
	"parcel-marketplace/internal/validate"
)

const maxReasonLen = 512

// Service coordinates carrier onboarding and availability.
type Service struct {
	repo             carrierRepository
	logger           logx.Logger
	operationTimeout time.Duration
	now              func() time.Time
}

// NewService creates and configures a carrier Service.
func NewService(r carrierRepository, logger logx.Logger, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             r,
		logger:           logger,
		operationTimeout: timeout,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// SubmitKYC stores the actor's verification documents. A resubmission puts the
// profile back into review and takes the carrier offline.
func (s *Service) SubmitKYC(ctx context.Context, actor domain.Identity, in domain.KYCSubmission) (*domain.CarrierProfile, error) {
	if actor.Role != domain.RoleCarrier {
		return nil, apperr.ErrForbidden
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	p := &domain.CarrierProfile{
		UserID:             actor.UserID,
		Phone:              in.Phone,
		VehicleType:        in.VehicleType,
		IDDocumentRef:      in.IDDocumentRef,
		SelfieRef:          in.SelfieRef,
		VerificationStatus: domain.VerificationPending,
		CreatedAt:          s.now(),
	}
	if err := s.repo.UpsertKYC(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info("kyc submitted",
		logx.String("event", "kyc_submitted"),
		logx.String("user_id", p.UserID),
		logx.String("vehicle_type", string(p.VehicleType)),
	)
	return p, nil
}

// Profile returns the actor's carrier profile.
func (s *Service) Profile(ctx context.Context, actor domain.Identity) (*domain.CarrierProfile, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.get(ctx, actor.UserID)
}

// SetOnline toggles availability. Only approved carriers can change it.
func (s *Service) SetOnline(ctx context.Context, actor domain.Identity, online bool, dest *domain.Coordinate) (*domain.CarrierProfile, error) {
	if dest != nil && !geo.ValidCoordinate(*dest) {
		return nil, apperr.Invalid("destination out of range")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ok, err := s.repo.SetOnline(ctx, actor.UserID, online, dest)
	if err != nil {
		return nil, err
	}
	if !ok {
		// профиля нет: 404, есть но не одобрен: 403
		if _, err := s.get(ctx, actor.UserID); err != nil {
			return nil, err
		}
		return nil, apperr.ErrForbidden
	}
	return s.get(ctx, actor.UserID)
}

// ListPending returns profiles awaiting review, oldest first.
func (s *Service) ListPending(ctx context.Context, actor domain.Identity) ([]domain.CarrierProfile, error) {
	if !actor.IsAdmin() {
		return nil, apperr.ErrForbidden
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListByStatus(ctx, domain.VerificationPending)
}

// Approve marks a pending profile approved.
func (s *Service) Approve(ctx context.Context, actor domain.Identity, userID string) (*domain.CarrierProfile, error) {
	return s.review(ctx, actor, userID, domain.VerificationApproved, "")
}

// Reject marks a pending profile rejected with a reason shown to the carrier.
func (s *Service) Reject(ctx context.Context, actor domain.Identity, userID, reason string) (*domain.CarrierProfile, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" || len(reason) > maxReasonLen {
		return nil, apperr.Invalid("rejection reason is required")
	}
	return s.review(ctx, actor, userID, domain.VerificationRejected, reason)
}

func (s *Service) review(ctx context.Context, actor domain.Identity, userID string, verdict domain.VerificationStatus, reason string) (*domain.CarrierProfile, error) {
	if !actor.IsAdmin() {
		return nil, apperr.ErrForbidden
	}
	if userID == "" {
		return nil, apperr.Invalid("user id is required")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ok, err := s.repo.Review(ctx, userID, verdict, reason, s.now())
	if err != nil {
		return nil, err
	}
	p, err := s.get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.StateConflict(string(domain.VerificationPending), p.VerificationStatus)
	}

	s.logger.Info("kyc reviewed",
		logx.String("event", "kyc_reviewed"),
		logx.String("user_id", userID),
		logx.String("verdict", string(verdict)),
		logx.String("actor_id", actor.UserID),
	)
	return p, nil
}

func (s *Service) get(ctx context.Context, userID string) (*domain.CarrierProfile, error) {
	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.ErrNotFound
	}
	return p, nil
}
