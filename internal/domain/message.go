package domain

import "time"

// Message is one chat line between the participants of a delivery.
type Message struct {
	ID         string
	DeliveryID string
	SenderID   string
	Content    string
	CreatedAt  time.Time
}
