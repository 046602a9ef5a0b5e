package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"parcel-marketplace/internal/domain"
	"parcel-marketplace/internal/logx"
)

// ChatHandler serves the per-delivery message thread.
type ChatHandler struct {
	usecase chatUsecase
	logger  logx.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(logger logx.Logger, uc chatUsecase) *ChatHandler {
	return &ChatHandler{usecase: uc, logger: logger}
}

// Send handles POST /messages.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(h.logger, w, r)
	if !ok {
		return
	}
	var req sendMessageRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	m, err := h.usecase.Send(r.Context(), id, req.DeliveryID, req.Content)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, messagesToResponse([]domain.Message{*m})[0])
}

// List handles GET /messages/{deliveryID}?limit=
func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := actor(h.logger, w, r)
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}

	list, err := h.usecase.List(r.Context(), id, chi.URLParam(r, "deliveryID"), limit)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, messagesToResponse(list))
}
