package handlers

import (
	"net/http"

	"parcel-marketplace/internal/domain"
	"parcel-marketplace/internal/logx"
)

// CarrierHandler serves the caller's own carrier profile.
type CarrierHandler struct {
	usecase carrierUsecase
	logger  logx.Logger
}

// NewCarrierHandler creates a new CarrierHandler.
func NewCarrierHandler(logger logx.Logger, uc carrierUsecase) *CarrierHandler {
	return &CarrierHandler{usecase: uc, logger: logger}
}

// SubmitKYC handles POST /carrier/kyc.
func (h *CarrierHandler) SubmitKYC(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(h.logger, w, r)
	if !ok {
		return
	}
	var req kycRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	p, err := h.usecase.SubmitKYC(r.Context(), id, req.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusAccepted, profileToResponse(*p))
}

// Profile handles GET /carrier/profile.
func (h *CarrierHandler) Profile(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(h.logger, w, r)
	if !ok {
		return
	}
	p, err := h.usecase.Profile(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, profileToResponse(*p))
}

// SetOnline handles PUT /carrier/online.
func (h *CarrierHandler) SetOnline(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(h.logger, w, r)
	if !ok {
		return
	}
	var req onlineRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if req.Online == nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "online is required", "validation_error")
		return
	}
	var dest *domain.Coordinate
	if req.Destination != nil {
		dest = &domain.Coordinate{Lat: req.Destination.Lat, Lng: req.Destination.Lng}
	}

	p, err := h.usecase.SetOnline(r.Context(), id, *req.Online, dest)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, profileToResponse(*p))
}
