package repository

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	"parcel-marketplace/internal/apperr"
	"parcel-marketplace/internal/domain"
)

// MessageRepo stores delivery chat messages.
type MessageRepo struct{ db *pgxpool.Pool }

// NewMessageRepo creates a new MessageRepo.
func NewMessageRepo(db *pgxpool.Pool) *MessageRepo { return &MessageRepo{db: db} }

// Append stores one message.
func (r *MessageRepo) Append(ctx context.Context, m domain.Message) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO messages (id, delivery_id, sender_id, content, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `, m.ID, m.DeliveryID, m.SenderID, m.Content, m.CreatedAt)
	if err != nil {
		switch {
		case IsMissingParent(err):
			return apperr.ErrNotFound
		case IsDuplicate(err):
			return apperr.ErrConflict
		}
		return fmt.Errorf("append message for delivery %q: %w", m.DeliveryID, err)
	}
	return nil
}

// ListByDelivery returns up to limit messages, oldest first.
func (r *MessageRepo) ListByDelivery(ctx context.Context, deliveryID string, limit int) ([]domain.Message, error) {
	var rows []messageRow
	err := pgxscan.Select(ctx, r.db, &rows, `
        SELECT id, delivery_id, sender_id, content, created_at
        FROM messages
        WHERE delivery_id = $1
        ORDER BY created_at, seq
        LIMIT $2
    `, deliveryID, limit)
	if err != nil {
		return nil, fmt.Errorf("list messages for delivery %q: %w", deliveryID, err)
	}
	out := make([]domain.Message, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Message(m))
	}
	return out, nil
}
