package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	testlog "parcel-marketplace/internal/testutil"
)

func TestHandlers_Ping(t *testing.T) {
	t.Parallel()

	h := New(nil)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rr := httptest.NewRecorder()

	h.Ping(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["message"] != "pong" {
		t.Fatalf(`expected message "pong", got %q`, body["message"])
	}
}

func TestHandlers_HealthcheckHead(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	New(nil).HealthcheckHead(rr, httptest.NewRequest(http.MethodHead, "/healthcheck", nil))

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rr.Body.String())
	}
}

func TestHandlers_Fallbacks(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		call   func(h *Handlers, w http.ResponseWriter, r *http.Request)
		status int
		code   string
	}{
		{"not found", (*Handlers).NotFound, http.StatusNotFound, "not_found"},
		{"method not allowed", (*Handlers).MethodNotAllowed, http.StatusMethodNotAllowed, "method_not_allowed"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := testlog.New()
			rr := httptest.NewRecorder()
			tc.call(New(rec.Logger()), rr, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

			if rr.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, rr.Code)
			}
			var body ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Code != tc.code {
				t.Fatalf("expected code %q, got %q", tc.code, body.Code)
			}

			entries := rec.Entries()
			if len(entries) != 1 || entries[0].Level != "warn" {
				t.Fatalf("expected one warn entry, got %+v", entries)
			}
		})
	}
}
