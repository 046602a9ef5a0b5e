package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"parcel-marketplace/internal/config"
	mw "parcel-marketplace/internal/http/middleware"
	"parcel-marketplace/internal/logx"
	"parcel-marketplace/internal/ratelimit"
)

const otpKeyPrefix = "otp-attempts:"

type limitersOut struct {
	dig.Out

	HTTP ratelimit.Limiter `name:"http_limiter"`
	OTP  ratelimit.Limiter `name:"otp_limiter"`
}

func newRateLimitClock() ratelimit.Clock {
	return ratelimit.RealClock{}
}

// newRedisClient returns nil when REDIS_ADDR is unset.
func newRedisClient(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})
}

func newLimiters(cfg *config.Config, clock ratelimit.Clock, rdb *redis.Client) limitersOut {
	return limitersOut{
		HTTP: newHTTPLimiter(cfg.RateLimit, clock),
		OTP:  newOTPLimiter(cfg.OTP, clock, rdb),
	}
}

func newHTTPLimiter(rl config.RateLimit, clock ratelimit.Clock) ratelimit.Limiter {
	if !rl.Enabled {
		return ratelimit.NopLimiter{}
	}
	return ratelimit.NewTokenBucketLimiter(clock, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	})
}

// Redis делит счетчик попыток между репликами; без него считаем в памяти.
func newOTPLimiter(c config.OTP, clock ratelimit.Clock, rdb *redis.Client) ratelimit.Limiter {
	if rdb != nil {
		return ratelimit.NewRedisWindowLimiter(rdb, otpKeyPrefix, c.MaxAttempts, c.Window)
	}
	return ratelimit.NewAttemptLimiter(clock, c.MaxAttempts, c.Window, 0)
}

type rateLimitIn struct {
	dig.In

	Logger  logx.Logger
	Counter prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiter ratelimit.Limiter  `name:"http_limiter"`
}

func newRateLimitMiddleware(in rateLimitIn) *mw.RateLimit {
	return mw.NewRateLimit(in.Logger, in.Counter, in.Limiter, mw.IdentityOrIP)
}
