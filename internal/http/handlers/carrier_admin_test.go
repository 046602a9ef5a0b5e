package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcel-marketplace/internal/apperr"
	"parcel-marketplace/internal/domain"
	"parcel-marketplace/internal/pricing"
)

func TestCarrierHandler_SubmitKYC(t *testing.T) {
	t.Parallel()

	uc := &stubCarrierUsecase{
		submitFn: func(_ context.Context, who domain.Identity, in domain.KYCSubmission) (*domain.CarrierProfile, error) {
			require.Equal(t, "c1", who.UserID)
			require.Equal(t, domain.VehicleBike, in.VehicleType)
			return &domain.CarrierProfile{UserID: who.UserID, Phone: in.Phone, VehicleType: in.VehicleType,
				VerificationStatus: domain.VerificationPending}, nil
		},
	}
	h := NewCarrierHandler(nil, uc)

	rr := httptest.NewRecorder()
	h.SubmitKYC(rr, newRequest(http.MethodPost, "/api/carrier/kyc",
		`{"phone":"+919876543210","vehicle_type":"bike","id_document_ref":"id.jpg","selfie_ref":"me.jpg"}`, carrierID))

	require.Equal(t, http.StatusAccepted, rr.Code)
	assert.Contains(t, rr.Body.String(), `"verification_status":"pending"`)
}

func TestCarrierHandler_SetOnline(t *testing.T) {
	t.Parallel()

	uc := &stubCarrierUsecase{
		setOnlineFn: func(_ context.Context, _ domain.Identity, online bool, dest *domain.Coordinate) (*domain.CarrierProfile, error) {
			require.True(t, online)
			require.Equal(t, &domain.Coordinate{Lat: 15.28, Lng: 73.96}, dest)
			return &domain.CarrierProfile{UserID: "c1", Online: true, Destination: dest}, nil
		},
	}
	h := NewCarrierHandler(nil, uc)

	rr := httptest.NewRecorder()
	h.SetOnline(rr, newRequest(http.MethodPut, "/api/carrier/online",
		`{"online":true,"destination":{"lat":15.28,"lng":73.96}}`, carrierID))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"destination":{"lat":15.28,"lng":73.96}`)

	rr = httptest.NewRecorder()
	h.SetOnline(rr, newRequest(http.MethodPut, "/api/carrier/online", `{}`, carrierID))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCarrierHandler_Profile_NotFound(t *testing.T) {
	t.Parallel()

	uc := &stubCarrierUsecase{
		profileFn: func(context.Context, domain.Identity) (*domain.CarrierProfile, error) {
			return nil, apperr.ErrNotFound
		},
	}
	rr := httptest.NewRecorder()
	NewCarrierHandler(nil, uc).Profile(rr, newRequest(http.MethodGet, "/api/carrier/profile", "", carrierID))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAdminHandler_Review(t *testing.T) {
	t.Parallel()

	uc := &stubCarrierUsecase{
		approveFn: func(_ context.Context, _ domain.Identity, userID string) (*domain.CarrierProfile, error) {
			require.Equal(t, "c9", userID)
			return &domain.CarrierProfile{UserID: userID, VerificationStatus: domain.VerificationApproved}, nil
		},
		rejectFn: func(_ context.Context, _ domain.Identity, userID, reason string) (*domain.CarrierProfile, error) {
			require.Equal(t, "blurry selfie", reason)
			return nil, apperr.StateConflict("pending", domain.VerificationApproved)
		},
		pendingFn: func(_ context.Context, who domain.Identity) ([]domain.CarrierProfile, error) {
			if !who.IsAdmin() {
				return nil, apperr.ErrForbidden
			}
			return []domain.CarrierProfile{{UserID: "c9"}}, nil
		},
	}
	h := NewAdminHandler(nil, uc, nil)

	rr := httptest.NewRecorder()
	h.ApproveKYC(rr, newRequest(http.MethodPut, "/api/admin/kyc/c9/approve", "", adminID, "userID", "c9"))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.RejectKYC(rr, newRequest(http.MethodPut, "/api/admin/kyc/c9/reject", `{"reason":"blurry selfie"}`, adminID, "userID", "c9"))
	require.Equal(t, http.StatusConflict, rr.Code)

	rr = httptest.NewRecorder()
	h.PendingKYC(rr, newRequest(http.MethodGet, "/api/admin/kyc/pending", "", senderID))
	require.Equal(t, http.StatusForbidden, rr.Code)

	rr = httptest.NewRecorder()
	h.PendingKYC(rr, newRequest(http.MethodGet, "/api/admin/kyc/pending", "", adminID))
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestAdminHandler_Config(t *testing.T) {
	t.Parallel()

	uc := &stubPricingUsecase{
		getFn: func(context.Context, domain.Identity) (map[string]float64, error) {
			return pricing.Defaults().Map(), nil
		},
		setFn: func(_ context.Context, _ domain.Identity, values map[string]float64) (map[string]float64, error) {
			if _, ok := values["surge"]; ok {
				return nil, apperr.Invalid(`unknown key "surge"`)
			}
			require.Equal(t, map[string]float64{pricing.KeyBaseFare: 30}, values)
			cfg := pricing.FromOverrides(values)
			return cfg.Map(), nil
		},
	}
	h := NewAdminHandler(nil, nil, uc)

	rr := httptest.NewRecorder()
	h.GetConfig(rr, newRequest(http.MethodGet, "/api/admin/config", "", adminID))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"base_fare":25`)

	rr = httptest.NewRecorder()
	h.SetConfig(rr, newRequest(http.MethodPut, "/api/admin/config", `{"base_fare":30}`, adminID))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"base_fare":30`)

	rr = httptest.NewRecorder()
	h.SetConfig(rr, newRequest(http.MethodPut, "/api/admin/config", `{"surge":2}`, adminID))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestTrackingHandler(t *testing.T) {
	t.Parallel()

	uc := &stubTrackingUsecase{
		recordFn: func(_ context.Context, who domain.Identity, id string, at domain.Coordinate) (*domain.LocationPing, error) {
			return &domain.LocationPing{DeliveryID: id, CarrierID: who.UserID, Location: at, RecordedAt: created}, nil
		},
		listFn: func(_ context.Context, _ domain.Identity, _ string, limit int) ([]domain.LocationPing, error) {
			require.Equal(t, 5, limit)
			return []domain.LocationPing{{CarrierID: "c1", Location: domain.Coordinate{Lat: 1, Lng: 2}, RecordedAt: created}}, nil
		},
	}
	h := NewTrackingHandler(nil, uc)

	rr := httptest.NewRecorder()
	h.Record(rr, newRequest(http.MethodPost, "/api/deliveries/d1/location", `{"lat":15.4,"lng":73.9}`, carrierID, "id", "d1"))
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"carrier_id":"c1","lat":15.4,"lng":73.9,"recorded_at":"2026-03-02T08:30:00Z"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	h.List(rr, newRequest(http.MethodGet, "/api/deliveries/d1/locations?limit=5", "", senderID, "id", "d1"))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.List(rr, newRequest(http.MethodGet, "/api/deliveries/d1/locations?limit=many", "", senderID, "id", "d1"))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}
