package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"parcel-marketplace/internal/domain"
	"parcel-marketplace/internal/logx"
)

// DeliveryHandler handles HTTP requests for delivery resources.
type DeliveryHandler struct {
	usecase  deliveryUsecase
	matching matchingUsecase
	logger   logx.Logger
}

// NewDeliveryHandler creates a new DeliveryHandler.
func NewDeliveryHandler(logger logx.Logger, uc deliveryUsecase, m matchingUsecase) *DeliveryHandler {
	return &DeliveryHandler{usecase: uc, matching: m, logger: logger}
}

// Create handles POST /deliveries.
func (h *DeliveryHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(h.logger, w, r)
	if !ok {
		return
	}
	var req createDeliveryRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	d, err := h.usecase.Create(r.Context(), id, req.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/api/deliveries/"+d.ID)
	writeJSON(h.logger, w, r, http.StatusCreated, deliveryToResponse(*d))
}

// ListMine handles GET /deliveries?role=sender|carrier&status=...
func (h *DeliveryHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(h.logger, w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	var status *domain.DeliveryStatus
	if s := q.Get("status"); s != "" {
		st := domain.DeliveryStatus(s)
		status = &st
	}

	list, err := h.usecase.ListMine(r.Context(), id, domain.ParticipantRole(q.Get("role")), status)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deliveriesToResponse(list))
}

// Nearby handles GET /deliveries/nearby?lat=&lng=&radius_km=
func (h *DeliveryHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(h.logger, w, r)
	if !ok {
		return
	}
	lat, hasLat, err := queryFloat(r, "lat")
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	lng, hasLng, err := queryFloat(r, "lng")
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	if !hasLat || !hasLng {
		writeError(h.logger, w, r, http.StatusBadRequest, "lat and lng are required", "validation_error")
		return
	}
	radius, _, err := queryFloat(r, "radius_km")
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}

	list, err := h.matching.FindNearby(r.Context(), id, domain.Coordinate{Lat: lat, Lng: lng}, radius)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, candidatesToResponse(list))
}

// GetByID handles GET /deliveries/{id}.
func (h *DeliveryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(h.logger, w, r)
	if !ok {
		return
	}
	d, err := h.usecase.Get(r.Context(), id, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deliveryToResponse(*d))
}

// Events handles GET /deliveries/{id}/events.
func (h *DeliveryHandler) Events(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(h.logger, w, r)
	if !ok {
		return
	}
	events, err := h.usecase.History(r.Context(), id, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, eventsToResponse(events))
}

// Accept handles PUT /deliveries/{id}/accept. The codes in the response are
// shown once.
func (h *DeliveryHandler) Accept(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(h.logger, w, r)
	if !ok {
		return
	}
	res, err := h.usecase.Accept(r.Context(), id, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(h.logger, w, r, http.StatusOK, acceptResponse{
		Delivery:    deliveryToResponse(res.Delivery),
		PickupOTP:   res.PickupOTP,
		DeliveryOTP: res.DeliveryOTP,
	})
}

// VerifyOTP handles POST /deliveries/{id}/verify-otp.
func (h *DeliveryHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(h.logger, w, r)
	if !ok {
		return
	}
	var req verifyOTPRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	d, err := h.usecase.VerifyOTP(r.Context(), id, chi.URLParam(r, "id"), req.Checkpoint, req.Code)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deliveryToResponse(*d))
}

// Cancel handles PUT /deliveries/{id}/cancel.
func (h *DeliveryHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(h.logger, w, r)
	if !ok {
		return
	}
	d, err := h.usecase.Cancel(r.Context(), id, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, deliveryToResponse(*d))
}
