package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"parcel-marketplace/internal/apperr"
	"parcel-marketplace/internal/domain"
	mw "parcel-marketplace/internal/http/middleware"
	"parcel-marketplace/internal/logx"
)

func reqID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return "-"
}

func writeJSON(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil && logger != nil {
		logger.Error("json encode error",
			logx.String("request_id", reqID(r.Context())),
			logx.Err(err),
		)
	}
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error    string `json:"error"`
	Code     string `json:"code"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
}

func writeError(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, msg, code string) {
	writeErrorBody(logger, w, r, status, ErrorResponse{Error: msg, Code: code})
}

func writeErrorBody(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, body ErrorResponse) {
	if logger != nil {
		log := logger.Warn
		if status >= http.StatusInternalServerError {
			log = logger.Error
		}
		log("http error",
			logx.String("request_id", reqID(r.Context())),
			logx.Int("status", status),
			logx.String("code", body.Code),
			logx.String("msg", body.Error),
		)
	}
	writeJSON(logger, w, r, status, body)
}

// writeServiceError maps a service error onto the public error contract.
func writeServiceError(logger logx.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var sc *apperr.StateConflictError
	switch {
	case errors.As(err, &sc):
		writeErrorBody(logger, w, r, http.StatusConflict, ErrorResponse{
			Error:    sc.Error(),
			Code:     "state_conflict",
			Expected: sc.Expected,
			Actual:   sc.Actual,
		})
	case errors.Is(err, apperr.ErrInvalid):
		writeError(logger, w, r, http.StatusBadRequest, err.Error(), "validation_error")
	case errors.Is(err, apperr.ErrUnauthenticated):
		writeError(logger, w, r, http.StatusUnauthorized, "unauthenticated", "unauthenticated")
	case errors.Is(err, apperr.ErrForbidden):
		writeError(logger, w, r, http.StatusForbidden, "forbidden", "forbidden")
	case errors.Is(err, apperr.ErrNotFound):
		writeError(logger, w, r, http.StatusNotFound, "not found", "not_found")
	case errors.Is(err, apperr.ErrConflict):
		writeError(logger, w, r, http.StatusConflict, "conflict", "conflict")
	case errors.Is(err, apperr.ErrCredentialMismatch):
		writeError(logger, w, r, http.StatusUnprocessableEntity, "code does not match", "credential_mismatch")
	case errors.Is(err, apperr.ErrTooManyAttempts):
		w.Header().Set("Retry-After", "60")
		writeError(logger, w, r, http.StatusTooManyRequests, "too many attempts", "too_many_attempts")
	default:
		if logger != nil {
			logger.Error("request failed",
				logx.String("request_id", reqID(r.Context())),
				logx.String("path", r.URL.Path),
				logx.Err(err),
			)
		}
		writeError(logger, w, r, http.StatusInternalServerError, "internal error", "internal")
	}
}

const (
	bodyLimit = 1 << 20
)

func decodeJSON[T any](logger logx.Logger, w http.ResponseWriter, r *http.Request, dst *T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json", "validation_error")
		return false
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json: trailing data", "validation_error")
		return false
	}
	return true
}

// actor returns the authenticated caller; routes without Authenticate get 401.
func actor(logger logx.Logger, w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	id, ok := mw.IdentityFrom(r.Context())
	if !ok || id.UserID == "" {
		writeError(logger, w, r, http.StatusUnauthorized, "unauthenticated", "unauthenticated")
		return domain.Identity{}, false
	}
	return id, true
}

func queryFloat(r *http.Request, name string) (float64, bool, error) {
	s := strings.TrimSpace(r.URL.Query().Get(name))
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, true, apperr.Invalid(name + " must be a number")
	}
	return v, true, nil
}

func queryInt(r *http.Request, name string) (int, error) {
	s := strings.TrimSpace(r.URL.Query().Get(name))
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperr.Invalid(name + " must be an integer")
	}
	return v, nil
}
