package domain

import "time"

// LocationPing is an append-only carrier position sample for a delivery.
type LocationPing struct {
	DeliveryID string
	CarrierID  string
	Location   Coordinate
	RecordedAt time.Time
}
