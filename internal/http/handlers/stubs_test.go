package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"

	"parcel-marketplace/internal/domain"
	mw "parcel-marketplace/internal/http/middleware"
)

type stubDeliveryUsecase struct {
	createFn    func(ctx context.Context, sender domain.Identity, in domain.NewDelivery) (*domain.Delivery, error)
	getFn       func(ctx context.Context, actor domain.Identity, id string) (*domain.Delivery, error)
	listMineFn  func(ctx context.Context, actor domain.Identity, role domain.ParticipantRole, status *domain.DeliveryStatus) ([]domain.Delivery, error)
	historyFn   func(ctx context.Context, actor domain.Identity, id string) ([]domain.DeliveryEvent, error)
	acceptFn    func(ctx context.Context, actor domain.Identity, id string) (domain.AcceptResult, error)
	verifyOTPFn func(ctx context.Context, actor domain.Identity, id string, cp domain.Checkpoint, code string) (*domain.Delivery, error)
	cancelFn    func(ctx context.Context, actor domain.Identity, id string) (*domain.Delivery, error)
}

func (s *stubDeliveryUsecase) Create(ctx context.Context, sender domain.Identity, in domain.NewDelivery) (*domain.Delivery, error) {
	if s.createFn == nil {
		panic("Create not expected in this test")
	}
	return s.createFn(ctx, sender, in)
}

func (s *stubDeliveryUsecase) Get(ctx context.Context, actor domain.Identity, id string) (*domain.Delivery, error) {
	if s.getFn == nil {
		panic("Get not expected in this test")
	}
	return s.getFn(ctx, actor, id)
}

func (s *stubDeliveryUsecase) ListMine(ctx context.Context, actor domain.Identity, role domain.ParticipantRole, status *domain.DeliveryStatus) ([]domain.Delivery, error) {
	if s.listMineFn == nil {
		panic("ListMine not expected in this test")
	}
	return s.listMineFn(ctx, actor, role, status)
}

func (s *stubDeliveryUsecase) History(ctx context.Context, actor domain.Identity, id string) ([]domain.DeliveryEvent, error) {
	if s.historyFn == nil {
		panic("History not expected in this test")
	}
	return s.historyFn(ctx, actor, id)
}

func (s *stubDeliveryUsecase) Accept(ctx context.Context, actor domain.Identity, id string) (domain.AcceptResult, error) {
	if s.acceptFn == nil {
		panic("Accept not expected in this test")
	}
	return s.acceptFn(ctx, actor, id)
}

func (s *stubDeliveryUsecase) VerifyOTP(ctx context.Context, actor domain.Identity, id string, cp domain.Checkpoint, code string) (*domain.Delivery, error) {
	if s.verifyOTPFn == nil {
		panic("VerifyOTP not expected in this test")
	}
	return s.verifyOTPFn(ctx, actor, id, cp, code)
}

func (s *stubDeliveryUsecase) Cancel(ctx context.Context, actor domain.Identity, id string) (*domain.Delivery, error) {
	if s.cancelFn == nil {
		panic("Cancel not expected in this test")
	}
	return s.cancelFn(ctx, actor, id)
}

type matchingFunc func(ctx context.Context, actor domain.Identity, loc domain.Coordinate, radiusKm float64) ([]domain.Candidate, error)

func (f matchingFunc) FindNearby(ctx context.Context, actor domain.Identity, loc domain.Coordinate, radiusKm float64) ([]domain.Candidate, error) {
	return f(ctx, actor, loc, radiusKm)
}

type stubTrackingUsecase struct {
	recordFn func(ctx context.Context, actor domain.Identity, deliveryID string, at domain.Coordinate) (*domain.LocationPing, error)
	listFn   func(ctx context.Context, actor domain.Identity, deliveryID string, limit int) ([]domain.LocationPing, error)
}

func (s *stubTrackingUsecase) Record(ctx context.Context, actor domain.Identity, deliveryID string, at domain.Coordinate) (*domain.LocationPing, error) {
	return s.recordFn(ctx, actor, deliveryID, at)
}

func (s *stubTrackingUsecase) List(ctx context.Context, actor domain.Identity, deliveryID string, limit int) ([]domain.LocationPing, error) {
	return s.listFn(ctx, actor, deliveryID, limit)
}

type stubCarrierUsecase struct {
	submitFn    func(ctx context.Context, actor domain.Identity, in domain.KYCSubmission) (*domain.CarrierProfile, error)
	profileFn   func(ctx context.Context, actor domain.Identity) (*domain.CarrierProfile, error)
	setOnlineFn func(ctx context.Context, actor domain.Identity, online bool, dest *domain.Coordinate) (*domain.CarrierProfile, error)
	pendingFn   func(ctx context.Context, actor domain.Identity) ([]domain.CarrierProfile, error)
	approveFn   func(ctx context.Context, actor domain.Identity, userID string) (*domain.CarrierProfile, error)
	rejectFn    func(ctx context.Context, actor domain.Identity, userID, reason string) (*domain.CarrierProfile, error)
}

func (s *stubCarrierUsecase) SubmitKYC(ctx context.Context, actor domain.Identity, in domain.KYCSubmission) (*domain.CarrierProfile, error) {
	return s.submitFn(ctx, actor, in)
}

func (s *stubCarrierUsecase) Profile(ctx context.Context, actor domain.Identity) (*domain.CarrierProfile, error) {
	return s.profileFn(ctx, actor)
}

func (s *stubCarrierUsecase) SetOnline(ctx context.Context, actor domain.Identity, online bool, dest *domain.Coordinate) (*domain.CarrierProfile, error) {
	return s.setOnlineFn(ctx, actor, online, dest)
}

func (s *stubCarrierUsecase) ListPending(ctx context.Context, actor domain.Identity) ([]domain.CarrierProfile, error) {
	return s.pendingFn(ctx, actor)
}

func (s *stubCarrierUsecase) Approve(ctx context.Context, actor domain.Identity, userID string) (*domain.CarrierProfile, error) {
	return s.approveFn(ctx, actor, userID)
}

func (s *stubCarrierUsecase) Reject(ctx context.Context, actor domain.Identity, userID, reason string) (*domain.CarrierProfile, error) {
	return s.rejectFn(ctx, actor, userID, reason)
}

type stubPricingUsecase struct {
	getFn func(ctx context.Context, actor domain.Identity) (map[string]float64, error)
	setFn func(ctx context.Context, actor domain.Identity, values map[string]float64) (map[string]float64, error)
}

func (s *stubPricingUsecase) Get(ctx context.Context, actor domain.Identity) (map[string]float64, error) {
	return s.getFn(ctx, actor)
}

func (s *stubPricingUsecase) Set(ctx context.Context, actor domain.Identity, values map[string]float64) (map[string]float64, error) {
	return s.setFn(ctx, actor, values)
}

var (
	senderID  = domain.Identity{UserID: "s1", Role: domain.RoleSender, Active: true}
	carrierID = domain.Identity{UserID: "c1", Role: domain.RoleCarrier, Active: true}
	adminID   = domain.Identity{UserID: "a1", Role: domain.RoleAdmin, Active: true}
)

// newRequest builds an authenticated request with chi URL params given as
// name/value pairs.
func newRequest(method, target, body string, who domain.Identity, params ...string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rc := chi.NewRouteContext()
	for i := 0; i+1 < len(params); i += 2 {
		rc.URLParams.Add(params[i], params[i+1])
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rc)
	if who.UserID != "" {
		ctx = mw.WithIdentity(ctx, who)
	}
	return req.WithContext(ctx)
}

type stubChatUsecase struct {
	sendFn func(ctx context.Context, actor domain.Identity, deliveryID, content string) (*domain.Message, error)
	listFn func(ctx context.Context, actor domain.Identity, deliveryID string, limit int) ([]domain.Message, error)
}

func (s *stubChatUsecase) Send(ctx context.Context, actor domain.Identity, deliveryID, content string) (*domain.Message, error) {
	return s.sendFn(ctx, actor, deliveryID, content)
}

func (s *stubChatUsecase) List(ctx context.Context, actor domain.Identity, deliveryID string, limit int) ([]domain.Message, error) {
	return s.listFn(ctx, actor, deliveryID, limit)
}
