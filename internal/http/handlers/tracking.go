package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"parcel-marketplace/internal/domain"
	"parcel-marketplace/internal/logx"
)

// TrackingHandler serves carrier location pings.
type TrackingHandler struct {
	usecase trackingUsecase
	logger  logx.Logger
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(logger logx.Logger, uc trackingUsecase) *TrackingHandler {
	return &TrackingHandler{usecase: uc, logger: logger}
}

// Record handles POST /deliveries/{id}/location.
func (h *TrackingHandler) Record(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(h.logger, w, r)
	if !ok {
		return
	}
	var req coordinateDTO
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	p, err := h.usecase.Record(r.Context(), id, chi.URLParam(r, "id"), domain.Coordinate{Lat: req.Lat, Lng: req.Lng})
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, locationsToResponse([]domain.LocationPing{*p})[0])
}

// List handles GET /deliveries/{id}/locations?limit=
func (h *TrackingHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(h.logger, w, r)
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}

	list, err := h.usecase.List(r.Context(), id, chi.URLParam(r, "id"), limit)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, locationsToResponse(list))
}
