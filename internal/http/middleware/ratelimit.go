package middleware

import (
	"io"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"parcel-marketplace/internal/logx"
	"parcel-marketplace/internal/ratelimit"
)

// KeyFunc picks the bucket key for a request.
type KeyFunc func(r *http.Request) string

// RateLimit ограничивает количество запросов на клиента.
type RateLimit struct {
	logger  logx.Logger
	counter prometheus.Counter
	limiter ratelimit.Limiter
	key     KeyFunc
}

// NewRateLimit builds the middleware. A nil limiter admits everything; a nil key
// function keys by client IP.
func NewRateLimit(logger logx.Logger, counter prometheus.Counter, limiter ratelimit.Limiter, key KeyFunc) *RateLimit {
	if limiter == nil {
		limiter = ratelimit.NopLimiter{}
	}
	if key == nil {
		key = ClientIP
	}
	return &RateLimit{
		logger:  logger,
		counter: counter,
		limiter: limiter,
		key:     key,
	}
}

// Handler returns chi-style middleware.
func (m *RateLimit) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := m.key(r)

			ok, err := m.limiter.Allow(r.Context(), key)
			if err != nil {
				m.logger.Warn("rate limiter unavailable", logx.String("key", key), logx.Err(err))
			}
			if ok {
				next.ServeHTTP(w, r)
				return
			}

			if m.counter != nil {
				m.counter.Inc()
			}
			m.logger.Warn("rate limit exceeded",
				logx.String("key", key),
				logx.String("method", r.Method),
				logx.String("path", r.URL.Path),
			)
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := io.WriteString(w, `{"error":"too many requests","code":"too_many_requests"}`); err != nil {
				// клиент мог оборвать соединение
				m.logger.Debug("rate limit response write failed", logx.String("key", key), logx.Err(err))
			}
		})
	}
}

// ClientIP keys by the remote host without port.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

// IdentityOrIP keys authenticated requests by user and anonymous ones by IP.
func IdentityOrIP(r *http.Request) string {
	if id, ok := IdentityFrom(r.Context()); ok {
		return "user:" + id.UserID
	}
	return "ip:" + ClientIP(r)
}
