package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"parcel-marketplace/internal/logx"
)

// AdminHandler serves KYC review and pricing configuration.
type AdminHandler struct {
	carriers carrierUsecase
	pricing  pricingUsecase
	logger   logx.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(logger logx.Logger, carriers carrierUsecase, pricing pricingUsecase) *AdminHandler {
	return &AdminHandler{carriers: carriers, pricing: pricing, logger: logger}
}

// PendingKYC handles GET /admin/kyc/pending.
func (h *AdminHandler) PendingKYC(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(h.logger, w, r)
	if !ok {
		return
	}
	list, err := h.carriers.ListPending(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, profilesToResponse(list))
}

// ApproveKYC handles PUT /admin/kyc/{userID}/approve.
func (h *AdminHandler) ApproveKYC(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(h.logger, w, r)
	if !ok {
		return
	}
	p, err := h.carriers.Approve(r.Context(), id, chi.URLParam(r, "userID"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, profileToResponse(*p))
}

// RejectKYC handles PUT /admin/kyc/{userID}/reject.
func (h *AdminHandler) RejectKYC(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(h.logger, w, r)
	if !ok {
		return
	}
	var req rejectRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	p, err := h.carriers.Reject(r.Context(), id, chi.URLParam(r, "userID"), req.Reason)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, profileToResponse(*p))
}

// GetConfig handles GET /admin/config.
func (h *AdminHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(h.logger, w, r)
	if !ok {
		return
	}
	cfg, err := h.pricing.Get(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, cfg)
}

// SetConfig handles PUT /admin/config with a JSON object of key/value pairs.
func (h *AdminHandler) SetConfig(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(h.logger, w, r)
	if !ok {
		return
	}
	var req map[string]float64
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	cfg, err := h.pricing.Set(r.Context(), id, req)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, cfg)
}
