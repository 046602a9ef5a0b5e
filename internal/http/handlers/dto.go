package handlers

import (
	"time"

	"parcel-marketplace/internal/domain"
)

type coordinateDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type placeDTO struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type parcelDTO struct {
	Category      domain.ParcelCategory `json:"category"`
	WeightKg      float64               `json:"weight_kg"`
	DeclaredValue float64               `json:"declared_value"`
	PhotoRefs     []string              `json:"photo_refs"`
}

// deliveryDTO never carries the code digests.
type deliveryDTO struct {
	ID          string                  `json:"id"`
	SenderID    string                  `json:"sender_id"`
	CarrierID   string                  `json:"carrier_id,omitempty"`
	Pickup      placeDTO                `json:"pickup"`
	Dropoff     placeDTO                `json:"dropoff"`
	Parcel      parcelDTO               `json:"parcel"`
	PriceRs     int64                   `json:"price_rs"`
	DistanceKm  float64                 `json:"distance_km"`
	Timing      domain.TimingPreference `json:"timing"`
	ScheduledAt *time.Time              `json:"scheduled_time,omitempty"`
	Status      domain.DeliveryStatus   `json:"status"`
	CreatedAt   time.Time               `json:"created_at"`
	MatchedAt   *time.Time              `json:"matched_at,omitempty"`
	PickedUpAt  *time.Time              `json:"picked_up_at,omitempty"`
	DeliveredAt *time.Time              `json:"delivered_at,omitempty"`
	CancelledAt *time.Time              `json:"cancelled_at,omitempty"`
}

type createDeliveryRequest struct {
	PickupAddress  string                  `json:"pickup_address"`
	PickupLat      float64                 `json:"pickup_lat"`
	PickupLng      float64                 `json:"pickup_lng"`
	DropoffAddress string                  `json:"dropoff_address"`
	DropoffLat     float64                 `json:"dropoff_lat"`
	DropoffLng     float64                 `json:"dropoff_lng"`
	Category       domain.ParcelCategory   `json:"category"`
	WeightKg       float64                 `json:"weight_kg"`
	DeclaredValue  float64                 `json:"declared_value"`
	PhotoRefs      []string                `json:"photo_refs"`
	Timing         domain.TimingPreference `json:"timing"`
	ScheduledAt    *time.Time              `json:"scheduled_time"`
}

type acceptResponse struct {
	Delivery    deliveryDTO `json:"delivery"`
	PickupOTP   string      `json:"pickup_otp"`
	DeliveryOTP string      `json:"delivery_otp"`
}

type verifyOTPRequest struct {
	Checkpoint domain.Checkpoint `json:"checkpoint"`
	Code       string            `json:"code"`
}

type candidateDTO struct {
	Delivery   deliveryDTO `json:"delivery"`
	DistanceKm float64     `json:"distance_km"`
}

type eventDTO struct {
	ID         string                `json:"id"`
	From       domain.DeliveryStatus `json:"from"`
	To         domain.DeliveryStatus `json:"to"`
	ActorID    string                `json:"actor_id"`
	OccurredAt time.Time             `json:"occurred_at"`
}

type locationDTO struct {
	CarrierID  string    `json:"carrier_id"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	RecordedAt time.Time `json:"recorded_at"`
}

type sendMessageRequest struct {
	DeliveryID string `json:"delivery_id"`
	Content    string `json:"content"`
}

type messageDTO struct {
	ID         string    `json:"message_id"`
	DeliveryID string    `json:"delivery_id"`
	SenderID   string    `json:"sender_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type kycRequest struct {
	Phone         string             `json:"phone"`
	VehicleType   domain.VehicleType `json:"vehicle_type"`
	IDDocumentRef string             `json:"id_document_ref"`
	SelfieRef     string             `json:"selfie_ref"`
}

type carrierProfileDTO struct {
	UserID             string                    `json:"user_id"`
	Phone              string                    `json:"phone"`
	VehicleType        domain.VehicleType        `json:"vehicle_type"`
	VerificationStatus domain.VerificationStatus `json:"verification_status"`
	RejectionReason    string                    `json:"rejection_reason,omitempty"`
	ApprovedAt         *time.Time                `json:"approved_at,omitempty"`
	Online             bool                      `json:"online"`
	Destination        *coordinateDTO            `json:"destination,omitempty"`
	CreatedAt          time.Time                 `json:"created_at"`
}

type onlineRequest struct {
	Online      *bool          `json:"online"`
	Destination *coordinateDTO `json:"destination,omitempty"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}
