package domain

// DeliveryStatus is a position of a delivery in its lifecycle.
type DeliveryStatus string

// List of delivery statuses
const (
	StatusPosted    DeliveryStatus = "posted"
	StatusMatched   DeliveryStatus = "matched"
	StatusPickedUp  DeliveryStatus = "picked_up"
	StatusDelivered DeliveryStatus = "delivered"
	StatusCancelled DeliveryStatus = "cancelled"
)

var allowedStatuses = [...]DeliveryStatus{
	StatusPosted, StatusMatched, StatusPickedUp, StatusDelivered, StatusCancelled,
}

// transitions lists every legal edge of the lifecycle graph.
var transitions = map[DeliveryStatus][]DeliveryStatus{
	StatusPosted:   {StatusMatched, StatusCancelled},
	StatusMatched:  {StatusPickedUp, StatusCancelled},
	StatusPickedUp: {StatusDelivered, StatusCancelled},
}

// Valid checks if the DeliveryStatus is known.
func (s DeliveryStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s DeliveryStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// HasCarrier reports whether a delivery in this status must carry a carrier id.
func (s DeliveryStatus) HasCarrier() bool {
	return s == StatusMatched || s == StatusPickedUp || s == StatusDelivered
}

// CanTransition checks the edge from -> to against the lifecycle graph.
func CanTransition(from, to DeliveryStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Checkpoint is one of the two OTP-gated custody handoffs.
type Checkpoint string

// List of checkpoints
const (
	CheckpointPickup   Checkpoint = "pickup"
	CheckpointDelivery Checkpoint = "delivery"
)

// Valid checks if the Checkpoint is known.
func (c Checkpoint) Valid() bool {
	return c == CheckpointPickup || c == CheckpointDelivery
}

// From returns the status a delivery must be in to pass the checkpoint.
func (c Checkpoint) From() DeliveryStatus {
	if c == CheckpointDelivery {
		return StatusPickedUp
	}
	return StatusMatched
}

// To returns the status reached after passing the checkpoint.
func (c Checkpoint) To() DeliveryStatus {
	if c == CheckpointDelivery {
		return StatusDelivered
	}
	return StatusPickedUp
}
