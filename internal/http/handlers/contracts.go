package handlers

import (
	"context"

	"parcel-marketplace/internal/domain"
	"parcel-marketplace/internal/service/carrier"
	"parcel-marketplace/internal/service/chat"
	"parcel-marketplace/internal/service/delivery"
	"parcel-marketplace/internal/service/matching"
	"parcel-marketplace/internal/service/pricingcfg"
	"parcel-marketplace/internal/service/tracking"
)

type deliveryUsecase interface {
	Create(ctx context.Context, sender domain.Identity, in domain.NewDelivery) (*domain.Delivery, error)
	Get(ctx context.Context, actor domain.Identity, id string) (*domain.Delivery, error)
	ListMine(ctx context.Context, actor domain.Identity, role domain.ParticipantRole, status *domain.DeliveryStatus) ([]domain.Delivery, error)
	History(ctx context.Context, actor domain.Identity, id string) ([]domain.DeliveryEvent, error)
	Accept(ctx context.Context, actor domain.Identity, id string) (domain.AcceptResult, error)
	VerifyOTP(ctx context.Context, actor domain.Identity, id string, cp domain.Checkpoint, code string) (*domain.Delivery, error)
	Cancel(ctx context.Context, actor domain.Identity, id string) (*domain.Delivery, error)
}

// NewDeliveryUsecase wires a delivery Service into a deliveryUsecase.
func NewDeliveryUsecase(svc *delivery.Service) deliveryUsecase {
	return svc
}

type matchingUsecase interface {
	FindNearby(ctx context.Context, actor domain.Identity, loc domain.Coordinate, radiusKm float64) ([]domain.Candidate, error)
}

// NewMatchingUsecase wires a matching Service into a matchingUsecase.
func NewMatchingUsecase(svc *matching.Service) matchingUsecase {
	return svc
}

type trackingUsecase interface {
	Record(ctx context.Context, actor domain.Identity, deliveryID string, at domain.Coordinate) (*domain.LocationPing, error)
	List(ctx context.Context, actor domain.Identity, deliveryID string, limit int) ([]domain.LocationPing, error)
}

// NewTrackingUsecase wires a tracking Service into a trackingUsecase.
func NewTrackingUsecase(svc *tracking.Service) trackingUsecase {
	return svc
}

type chatUsecase interface {
	Send(ctx context.Context, actor domain.Identity, deliveryID, content string) (*domain.Message, error)
	List(ctx context.Context, actor domain.Identity, deliveryID string, limit int) ([]domain.Message, error)
}

// NewChatUsecase wires a chat Service into a chatUsecase.
func NewChatUsecase(svc *chat.Service) chatUsecase {
	return svc
}

type carrierUsecase interface {
	SubmitKYC(ctx context.Context, actor domain.Identity, in domain.KYCSubmission) (*domain.CarrierProfile, error)
	Profile(ctx context.Context, actor domain.Identity) (*domain.CarrierProfile, error)
	SetOnline(ctx context.Context, actor domain.Identity, online bool, dest *domain.Coordinate) (*domain.CarrierProfile, error)
	ListPending(ctx context.Context, actor domain.Identity) ([]domain.CarrierProfile, error)
	Approve(ctx context.Context, actor domain.Identity, userID string) (*domain.CarrierProfile, error)
	Reject(ctx context.Context, actor domain.Identity, userID, reason string) (*domain.CarrierProfile, error)
}

// NewCarrierUsecase wires a carrier Service into a carrierUsecase.
func NewCarrierUsecase(svc *carrier.Service) carrierUsecase {
	return svc
}

type pricingUsecase interface {
	Get(ctx context.Context, actor domain.Identity) (map[string]float64, error)
	Set(ctx context.Context, actor domain.Identity, values map[string]float64) (map[string]float64, error)
}

// NewPricingUsecase wires a pricingcfg Service into a pricingUsecase.
func NewPricingUsecase(svc *pricingcfg.Service) pricingUsecase {
	return svc
}
