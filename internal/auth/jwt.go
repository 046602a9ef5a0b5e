// Package auth resolves bearer credentials into caller identities.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"parcel-marketplace/internal/apperr"
	"parcel-marketplace/internal/domain"
)

// Claims is the token payload.
type Claims struct {
	Role   domain.Role `json:"role"`
	Active bool        `json:"active"`
	jwt.RegisteredClaims
}

// JWTResolver verifies HS256 tokens signed with a shared secret.
type JWTResolver struct {
	secret []byte
	now    func() time.Time
}

// NewJWTResolver creates a resolver for the given secret.
func NewJWTResolver(secret string) *JWTResolver {
	return &JWTResolver{secret: []byte(secret), now: time.Now}
}

// Resolve maps a raw bearer token to an Identity.
func (r *JWTResolver) Resolve(_ context.Context, token string) (domain.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Identity{}, apperr.ErrUnauthenticated
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return r.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(r.now),
	)
	if err != nil || !parsed.Valid {
		return domain.Identity{}, fmt.Errorf("%w: %v", apperr.ErrUnauthenticated, tokenReason(err))
	}
	if claims.Subject == "" || !claims.Role.Valid() {
		return domain.Identity{}, fmt.Errorf("%w: incomplete claims", apperr.ErrUnauthenticated)
	}
	return domain.Identity{
		UserID: claims.Subject,
		Role:   claims.Role,
		Active: claims.Active,
	}, nil
}

// Issue signs a token for id valid for ttl.
func (r *JWTResolver) Issue(id domain.Identity, ttl time.Duration) (string, error) {
	now := r.now()
	claims := &Claims{
		Role:   id.Role,
		Active: id.Active,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(r.secret)
}

func tokenReason(err error) string {
	switch {
	case err == nil:
		return "invalid token"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "token is malformed"
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token has expired"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "invalid token signature"
	default:
		return "invalid token"
	}
}
