package repository

import (
	"time"

	"parcel-marketplace/internal/domain"
)

const deliveryColumns = `id, sender_id, carrier_id,
        pickup_address, pickup_lat, pickup_lng,
        dropoff_address, dropoff_lat, dropoff_lng,
        category, weight_kg, declared_value, photo_refs,
        price_rs, distance_km, timing, scheduled_at, status,
        pickup_otp_digest, delivery_otp_digest,
        created_at, matched_at, picked_up_at, delivered_at, cancelled_at`

type deliveryRow struct {
	ID                string     `db:"id"`
	SenderID          string     `db:"sender_id"`
	CarrierID         *string    `db:"carrier_id"`
	PickupAddress     string     `db:"pickup_address"`
	PickupLat         float64    `db:"pickup_lat"`
	PickupLng         float64    `db:"pickup_lng"`
	DropoffAddress    string     `db:"dropoff_address"`
	DropoffLat        float64    `db:"dropoff_lat"`
	DropoffLng        float64    `db:"dropoff_lng"`
	Category          string     `db:"category"`
	WeightKg          float64    `db:"weight_kg"`
	DeclaredValue     float64    `db:"declared_value"`
	PhotoRefs         []string   `db:"photo_refs"`
	PriceRs           int64      `db:"price_rs"`
	DistanceKm        float64    `db:"distance_km"`
	Timing            string     `db:"timing"`
	ScheduledAt       *time.Time `db:"scheduled_at"`
	Status            string     `db:"status"`
	PickupOTPDigest   *string    `db:"pickup_otp_digest"`
	DeliveryOTPDigest *string    `db:"delivery_otp_digest"`
	CreatedAt         time.Time  `db:"created_at"`
	MatchedAt         *time.Time `db:"matched_at"`
	PickedUpAt        *time.Time `db:"picked_up_at"`
	DeliveredAt       *time.Time `db:"delivered_at"`
	CancelledAt       *time.Time `db:"cancelled_at"`
}

func (r deliveryRow) toDomain() domain.Delivery {
	return domain.Delivery{
		ID:        r.ID,
		SenderID:  r.SenderID,
		CarrierID: deref(r.CarrierID),
		Pickup: domain.Place{
			Address:  r.PickupAddress,
			Location: domain.Coordinate{Lat: r.PickupLat, Lng: r.PickupLng},
		},
		Dropoff: domain.Place{
			Address:  r.DropoffAddress,
			Location: domain.Coordinate{Lat: r.DropoffLat, Lng: r.DropoffLng},
		},
		Parcel: domain.Parcel{
			Category:      domain.ParcelCategory(r.Category),
			WeightKg:      r.WeightKg,
			DeclaredValue: r.DeclaredValue,
			PhotoRefs:     r.PhotoRefs,
		},
		PriceRs:     r.PriceRs,
		DistanceKm:  r.DistanceKm,
		Timing:      domain.TimingPreference(r.Timing),
		ScheduledAt: r.ScheduledAt,
		Status:      domain.DeliveryStatus(r.Status),
		OTP: domain.OTPDigests{
			Pickup:   deref(r.PickupOTPDigest),
			Delivery: deref(r.DeliveryOTPDigest),
		},
		CreatedAt:   r.CreatedAt,
		MatchedAt:   r.MatchedAt,
		PickedUpAt:  r.PickedUpAt,
		DeliveredAt: r.DeliveredAt,
		CancelledAt: r.CancelledAt,
	}
}

func toDeliveries(rows []deliveryRow) []domain.Delivery {
	out := make([]domain.Delivery, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out
}

const carrierColumns = `user_id, phone, vehicle_type, id_document_ref, selfie_ref,
        verification_status, rejection_reason, approved_at, online,
        destination_lat, destination_lng, created_at`

type carrierRow struct {
	UserID             string     `db:"user_id"`
	Phone              string     `db:"phone"`
	VehicleType        string     `db:"vehicle_type"`
	IDDocumentRef      string     `db:"id_document_ref"`
	SelfieRef          string     `db:"selfie_ref"`
	VerificationStatus string     `db:"verification_status"`
	RejectionReason    string     `db:"rejection_reason"`
	ApprovedAt         *time.Time `db:"approved_at"`
	Online             bool       `db:"online"`
	DestinationLat     *float64   `db:"destination_lat"`
	DestinationLng     *float64   `db:"destination_lng"`
	CreatedAt          time.Time  `db:"created_at"`
}

func (r carrierRow) toDomain() domain.CarrierProfile {
	p := domain.CarrierProfile{
		UserID:             r.UserID,
		Phone:              r.Phone,
		VehicleType:        domain.VehicleType(r.VehicleType),
		IDDocumentRef:      r.IDDocumentRef,
		SelfieRef:          r.SelfieRef,
		VerificationStatus: domain.VerificationStatus(r.VerificationStatus),
		RejectionReason:    r.RejectionReason,
		ApprovedAt:         r.ApprovedAt,
		Online:             r.Online,
		CreatedAt:          r.CreatedAt,
	}
	if r.DestinationLat != nil && r.DestinationLng != nil {
		p.Destination = &domain.Coordinate{Lat: *r.DestinationLat, Lng: *r.DestinationLng}
	}
	return p
}

type eventRow struct {
	ID         string    `db:"id"`
	DeliveryID string    `db:"delivery_id"`
	FromStatus string    `db:"from_status"`
	ToStatus   string    `db:"to_status"`
	ActorID    string    `db:"actor_id"`
	OccurredAt time.Time `db:"occurred_at"`
}

type pingRow struct {
	DeliveryID string    `db:"delivery_id"`
	CarrierID  string    `db:"carrier_id"`
	Lat        float64   `db:"lat"`
	Lng        float64   `db:"lng"`
	RecordedAt time.Time `db:"recorded_at"`
}

type messageRow struct {
	ID         string    `db:"id"`
	DeliveryID string    `db:"delivery_id"`
	SenderID   string    `db:"sender_id"`
	Content    string    `db:"content"`
	CreatedAt  time.Time `db:"created_at"`
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
