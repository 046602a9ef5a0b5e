package kafka

import (
	"time"

	"parcel-marketplace/internal/domain"
)

// EventDTO is the wire form of a delivery lifecycle event.
type EventDTO struct {
	EventID    string    `json:"event_id"`
	DeliveryID string    `json:"delivery_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// FromDomain converts domain.DeliveryEvent to EventDTO
func FromDomain(ev domain.DeliveryEvent) EventDTO {
	return EventDTO{
		EventID:    ev.ID,
		DeliveryID: ev.DeliveryID,
		From:       string(ev.From),
		To:         string(ev.To),
		ActorID:    ev.ActorID,
		OccurredAt: ev.OccurredAt.UTC(),
	}
}
