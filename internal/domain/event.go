package domain

import "time"

// DeliveryEvent records one lifecycle transition.
type DeliveryEvent struct {
	ID         string
	DeliveryID string
	From       DeliveryStatus
	To         DeliveryStatus
	ActorID    string
	OccurredAt time.Time
}
