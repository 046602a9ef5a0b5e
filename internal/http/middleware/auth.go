package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"parcel-marketplace/internal/apperr"
	"parcel-marketplace/internal/domain"
	"parcel-marketplace/internal/logx"
)

// IdentityResolver turns a bearer token into the caller identity.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (domain.Identity, error)
}

type identityKey struct{}

// WithIdentity stores id in ctx.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the caller identity set by Authenticate.
func IdentityFrom(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(domain.Identity)
	return id, ok
}

// Authenticate requires an "Authorization: Bearer <token>" header. Deactivated
// accounts get 403.
func Authenticate(logger logx.Logger, resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "missing bearer token", "unauthenticated")
				return
			}

			id, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				if !errors.Is(err, apperr.ErrUnauthenticated) {
					logger.Error("resolve identity", logx.Err(err))
				}
				writeAuthError(w, http.StatusUnauthorized, "invalid token", "unauthenticated")
				return
			}
			if !id.Active {
				writeAuthError(w, http.StatusForbidden, "account is deactivated", "forbidden")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

func bearerToken(h string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(h), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func writeAuthError(w http.ResponseWriter, status int, msg, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg, "code": code})
}
