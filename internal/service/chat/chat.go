// Package chat carries messages between a delivery's sender and its carrier.
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"parcel-marketplace/internal/apperr"
	"parcel-marketplace/internal/domain"
	"parcel-marketplace/internal/logx"
	"parcel-marketplace/internal/validate"
)

// Service stores and lists chat messages. Only the sender and the assigned
// carrier of a delivery may write or read its thread.
type Service struct {
	deliveries deliveryReader
	messages   messageStore
	logger     logx.Logger

	operationTimeout time.Duration
	historyLimit     int
	now              func() time.Time
	newID            func() string
}

// NewService creates a chat Service. historyLimit caps List results.
func NewService(logger logx.Logger, deliveries deliveryReader, messages messageStore, timeout time.Duration, historyLimit int) *Service {
	if logger == nil {
		logger = logx.Nop()
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if historyLimit <= 0 {
		historyLimit = 1000
	}
	return &Service{
		deliveries:       deliveries,
		messages:         messages,
		logger:           logger,
		operationTimeout: timeout,
		historyLimit:     historyLimit,
		now:              func() time.Time { return time.Now().UTC() },
		newID:            uuid.NewString,
	}
}

// Content is bounded in bytes after trimming.
type sendInput struct {
	DeliveryID string `validate:"required"`
	Content    string `validate:"required,max=2000"`
}

// Send appends a message from actor to the delivery's thread.
func (s *Service) Send(ctx context.Context, actor domain.Identity, deliveryID, content string) (*domain.Message, error) {
	content = strings.TrimSpace(content)
	if err := validate.Struct(sendInput{DeliveryID: deliveryID, Content: content}); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	if _, err := s.participantOf(ctx, actor, deliveryID); err != nil {
		return nil, err
	}
	m := domain.Message{
		ID:         s.newID(),
		DeliveryID: deliveryID,
		SenderID:   actor.UserID,
		Content:    content,
		CreatedAt:  s.now(),
	}
	if err := s.messages.Append(ctx, m); err != nil {
		return nil, err
	}
	s.logger.Debug("chat message stored",
		logx.String("delivery_id", deliveryID),
		logx.String("sender_id", actor.UserID),
		logx.Int("len", len(content)),
	)
	return &m, nil
}

// List returns the thread oldest first. A zero limit means the configured
// maximum; larger limits are clamped to it.
func (s *Service) List(ctx context.Context, actor domain.Identity, deliveryID string, limit int) ([]domain.Message, error) {
	if limit < 0 {
		return nil, apperr.Invalid("limit must not be negative")
	}
	if limit == 0 || limit > s.historyLimit {
		limit = s.historyLimit
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	d, err := s.participantOf(ctx, actor, deliveryID)
	if err != nil {
		return nil, err
	}
	return s.messages.ListByDelivery(ctx, d.ID, limit)
}

func (s *Service) participantOf(ctx context.Context, actor domain.Identity, deliveryID string) (*domain.Delivery, error) {
	if deliveryID == "" {
		return nil, apperr.Invalid("delivery id is required")
	}
	d, err := s.deliveries.Get(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}
	if !d.IsParticipant(actor.UserID) {
		return nil, apperr.ErrForbidden
	}
	return d, nil
}
