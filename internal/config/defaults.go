package config

import "time"

const defaultPort = 8080

const (
	defaultOperationTimeout = 3 * time.Second
	defaultJWTSecret        = "change-me"
	defaultDeliveryTopic    = "delivery-events"
	defaultHistoryLimit     = 100
	defaultChatHistoryLimit = 1000
	defaultGRPCHealthPort   = 9090
	defaultLogFormat        = "json"
	defaultLogLevel         = "info"
)

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "parcel_db",
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       20,
	Burst:      40,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultOTP = OTP{
	MaxAttempts: 5,
	Window:      15 * time.Minute,
	BcryptCost:  10,
}

var defaultEvents = Events{
	MaxAttempts: 3,
	BaseDelay:   100 * time.Millisecond,
	MaxDelay:    time.Second,
}

var defaultMatching = Matching{
	DefaultRadiusKm: 10,
	MaxRadiusKm:     100,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultRateLimit returns the default HTTP limiter settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultOTP returns the default OTP settings.
func DefaultOTP() OTP {
	return defaultOTP
}

// DefaultEvents returns the default event retry settings.
func DefaultEvents() Events {
	return defaultEvents
}

// DefaultMatching returns the default discovery radius settings.
func DefaultMatching() Matching {
	return defaultMatching
}
