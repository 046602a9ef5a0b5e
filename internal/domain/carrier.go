package domain

import "time"

type (
	// VerificationStatus is the KYC review state of a carrier.
	VerificationStatus string
	// VehicleType is how the carrier travels.
	VehicleType string
)

// List of verification statuses
const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// List of vehicle types
const (
	VehicleBike    VehicleType = "bike"
	VehicleCar     VehicleType = "car"
	VehicleAuto    VehicleType = "auto"
	VehicleBus     VehicleType = "bus"
	VehicleTrain   VehicleType = "train"
	VehicleWalking VehicleType = "walking"
)

var allowedVerificationStatuses = [...]VerificationStatus{
	VerificationPending, VerificationApproved, VerificationRejected,
}

// Valid checks if the VerificationStatus is known.
func (s VerificationStatus) Valid() bool {
	for _, v := range allowedVerificationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// CarrierProfile is the carrier side of a user account.
type CarrierProfile struct {
	UserID             string
	Phone              string
	VehicleType        VehicleType
	IDDocumentRef      string
	SelfieRef          string
	VerificationStatus VerificationStatus
	RejectionReason    string
	ApprovedAt         *time.Time
	Online             bool
	Destination        *Coordinate
	CreatedAt          time.Time
}

// Approved reports whether the carrier passed KYC.
func (p *CarrierProfile) Approved() bool {
	return p != nil && p.VerificationStatus == VerificationApproved
}

// KYCSubmission is the carrier's verification request.
type KYCSubmission struct {
	Phone         string      `validate:"required,e164"`
	VehicleType   VehicleType `validate:"required,oneof=bike car auto bus train walking"`
	IDDocumentRef string      `validate:"required,max=2048"`
	SelfieRef     string      `validate:"required,max=2048"`
}
