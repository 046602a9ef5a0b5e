// Package ratelimit provides keyed admission limiters shared by the HTTP edge
// and OTP attempt throttling.
package ratelimit

import (
	"context"
	"time"
)

// Limiter admits or rejects one event for key.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Clock provides current time.
type Clock interface {
	Now() time.Time
}

// RealClock is the default clock.
type RealClock struct{}

// Now returns current time.
func (RealClock) Now() time.Time { return time.Now() }

// NopLimiter admits everything.
type NopLimiter struct{}

// Allow always returns true
func (NopLimiter) Allow(context.Context, string) (bool, error) { return true, nil }
