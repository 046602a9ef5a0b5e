package domain

import "time"

type (
	// TimingPreference is how urgently the sender wants the parcel moved.
	TimingPreference string
	// ParcelCategory classifies the parcel contents.
	ParcelCategory string
)

// List of timing preferences
const (
	TimingASAP      TimingPreference = "asap"
	TimingWithin2h  TimingPreference = "within_2h"
	TimingWithin4h  TimingPreference = "within_4h"
	TimingScheduled TimingPreference = "scheduled"
)

// List of parcel categories
const (
	CategoryDocuments   ParcelCategory = "documents"
	CategoryClothing    ParcelCategory = "clothing"
	CategoryFood        ParcelCategory = "food"
	CategoryElectronics ParcelCategory = "electronics"
	CategoryOther       ParcelCategory = "other"
)

// Coordinate is a point in degrees.
type Coordinate struct {
	Lat float64
	Lng float64
}

// Place is an address with its coordinate.
type Place struct {
	Address  string
	Location Coordinate
}

// Parcel describes what is being moved.
type Parcel struct {
	Category      ParcelCategory
	WeightKg      float64
	DeclaredValue float64
	PhotoRefs     []string
}

// OTPDigests holds the salted digests of both checkpoint codes.
type OTPDigests struct {
	Pickup   string
	Delivery string
}

// Digest returns the digest guarding the given checkpoint.
func (d OTPDigests) Digest(c Checkpoint) string {
	if c == CheckpointDelivery {
		return d.Delivery
	}
	return d.Pickup
}

// Delivery is a parcel delivery request and its lifecycle state.
type Delivery struct {
	ID          string
	SenderID    string
	CarrierID   string
	Pickup      Place
	Dropoff     Place
	Parcel      Parcel
	PriceRs     int64
	DistanceKm  float64
	Timing      TimingPreference
	ScheduledAt *time.Time
	Status      DeliveryStatus
	OTP         OTPDigests
	CreatedAt   time.Time
	MatchedAt   *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	CancelledAt *time.Time
}

// IsParticipant reports whether the user is the sender or the assigned carrier.
func (d *Delivery) IsParticipant(userID string) bool {
	return userID != "" && (d.SenderID == userID || d.CarrierID == userID)
}

// NewDelivery is the sender's input for posting a delivery.
type NewDelivery struct {
	PickupAddress  string           `validate:"required,max=512"`
	PickupLat      float64          `validate:"latitude"`
	PickupLng      float64          `validate:"longitude"`
	DropoffAddress string           `validate:"required,max=512"`
	DropoffLat     float64          `validate:"latitude"`
	DropoffLng     float64          `validate:"longitude"`
	Category       ParcelCategory   `validate:"required,oneof=documents clothing food electronics other"`
	WeightKg       float64          `validate:"gt=0,lte=1000"`
	DeclaredValue  float64          `validate:"gte=0"`
	PhotoRefs      []string         `validate:"max=10,dive,required"`
	Timing         TimingPreference `validate:"required,oneof=asap within_2h within_4h scheduled"`
	ScheduledAt    *time.Time       `validate:"required_if=Timing scheduled"`
}

// ParticipantRole narrows a delivery listing to one side of the deal.
type ParticipantRole string

// List of participant roles
const (
	ParticipantAny     ParticipantRole = ""
	ParticipantSender  ParticipantRole = "sender"
	ParticipantCarrier ParticipantRole = "carrier"
)

// DeliveryFilter selects deliveries for a participant.
type DeliveryFilter struct {
	UserID string
	Role   ParticipantRole
	Status *DeliveryStatus
}

// AcceptResult is returned to the accepting carrier exactly once.
type AcceptResult struct {
	Delivery    Delivery
	PickupOTP   string
	DeliveryOTP string
}

// Candidate is a posted delivery annotated with its distance from a carrier.
type Candidate struct {
	Delivery   Delivery
	DistanceKm float64
}
