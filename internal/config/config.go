package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service settings.
type Config struct {
	Port             int
	OperationTimeout time.Duration
	DB               DB
	Auth             Auth
	RateLimit        RateLimit
	OTP              OTP
	Redis            Redis
	Kafka            Kafka
	Events           Events
	Matching         Matching
	Tracking         Tracking
	Chat             Chat
	Pricing          Pricing
	GRPCHealthPort   int
	Log              Log
}

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a postgres connection URL.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     d.Host + ":" + d.Port,
		Path:     d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Auth stores bearer token settings.
type Auth struct {
	JWTSecret string
}

// RateLimit stores per-client HTTP limiter settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// OTP stores code hashing and attempt throttling settings.
type OTP struct {
	MaxAttempts int
	Window      time.Duration
	BcryptCost  int
}

// Redis stores the optional shared limiter backend.
type Redis struct {
	Addr     string
	Password string
}

// Kafka stores lifecycle event publishing settings.
type Kafka struct {
	Brokers       []string
	DeliveryTopic string
}

// Events stores retry settings for event publishing.
type Events struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Matching stores discovery radius settings.
type Matching struct {
	DefaultRadiusKm float64
	MaxRadiusKm     float64
}

// Tracking stores location history settings.
type Tracking struct {
	HistoryLimit int
}

// Chat stores message history settings.
type Chat struct {
	HistoryLimit int
}

// Pricing stores the clock used for peak-hour evaluation.
type Pricing struct {
	Location *time.Location
}

// Log stores logger settings.
type Log struct {
	Format string
	Level  string
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:             DefaultPort(),
		OperationTimeout: defaultOperationTimeout,
		DB:               DefaultDB(),
		Auth:             Auth{JWTSecret: defaultJWTSecret},
		RateLimit:        DefaultRateLimit(),
		OTP:              DefaultOTP(),
		Kafka:            Kafka{DeliveryTopic: defaultDeliveryTopic},
		Events:           DefaultEvents(),
		Matching:         DefaultMatching(),
		Tracking:         Tracking{HistoryLimit: defaultHistoryLimit},
		Chat:             Chat{HistoryLimit: defaultChatHistoryLimit},
		Pricing:          Pricing{Location: time.Local},
		GRPCHealthPort:   defaultGRPCHealthPort,
		Log:              Log{Format: defaultLogFormat, Level: defaultLogLevel},
	}

	var errs []error
	e := envReader{errs: &errs}

	e.int("PORT", &cfg.Port)
	e.duration("SERVICE_OPERATION_TIMEOUT", &cfg.OperationTimeout)

	e.str("POSTGRES_HOST", &cfg.DB.Host)
	e.str("POSTGRES_PORT", &cfg.DB.Port)
	e.str("POSTGRES_USER", &cfg.DB.User)
	e.str("POSTGRES_PASSWORD", &cfg.DB.Pass)
	e.str("POSTGRES_DB", &cfg.DB.Name)

	e.str("AUTH_JWT_SECRET", &cfg.Auth.JWTSecret)

	e.boolean("RATE_LIMIT_ENABLED", &cfg.RateLimit.Enabled)
	e.float("RATE_LIMIT_RATE", &cfg.RateLimit.Rate)
	e.int("RATE_LIMIT_BURST", &cfg.RateLimit.Burst)
	e.duration("RATE_LIMIT_TTL", &cfg.RateLimit.TTL)
	e.int("RATE_LIMIT_MAX_BUCKETS", &cfg.RateLimit.MaxBuckets)

	e.int("OTP_MAX_ATTEMPTS", &cfg.OTP.MaxAttempts)
	e.duration("OTP_ATTEMPT_WINDOW", &cfg.OTP.Window)
	e.int("OTP_BCRYPT_COST", &cfg.OTP.BcryptCost)

	e.str("REDIS_ADDR", &cfg.Redis.Addr)
	e.str("REDIS_PASSWORD", &cfg.Redis.Password)

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	e.str("KAFKA_DELIVERY_TOPIC", &cfg.Kafka.DeliveryTopic)

	e.int("EVENTS_MAX_ATTEMPTS", &cfg.Events.MaxAttempts)
	e.duration("EVENTS_BASE_DELAY", &cfg.Events.BaseDelay)
	e.duration("EVENTS_MAX_DELAY", &cfg.Events.MaxDelay)

	e.float("MATCHING_DEFAULT_RADIUS_KM", &cfg.Matching.DefaultRadiusKm)
	e.float("MATCHING_MAX_RADIUS_KM", &cfg.Matching.MaxRadiusKm)

	e.int("TRACKING_HISTORY_LIMIT", &cfg.Tracking.HistoryLimit)
	e.int("CHAT_HISTORY_LIMIT", &cfg.Chat.HistoryLimit)

	if v := os.Getenv("PRICING_TIMEZONE"); v != "" {
		loc, err := time.LoadLocation(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("PRICING_TIMEZONE: %w", err))
		} else {
			cfg.Pricing.Location = loc
		}
	}

	e.int("GRPC_HEALTH_PORT", &cfg.GRPCHealthPort)
	e.str("LOG_FORMAT", &cfg.Log.Format)
	e.str("LOG_LEVEL", &cfg.Log.Level)

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port: %d", c.Port))
	}
	if c.GRPCHealthPort < 0 || c.GRPCHealthPort > 65535 {
		errs = append(errs, fmt.Errorf("invalid grpc health port: %d", c.GRPCHealthPort))
	}
	if _, err := strconv.Atoi(c.DB.Port); err != nil {
		errs = append(errs, fmt.Errorf("invalid postgres port %q", c.DB.Port))
	}
	if c.OperationTimeout <= 0 {
		errs = append(errs, fmt.Errorf("invalid operation timeout: %s", c.OperationTimeout))
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		errs = append(errs, errors.New("AUTH_JWT_SECRET must not be empty"))
	}
	if c.OTP.MaxAttempts <= 0 || c.OTP.Window <= 0 {
		errs = append(errs, errors.New("OTP_MAX_ATTEMPTS and OTP_ATTEMPT_WINDOW must be positive"))
	}
	if c.Matching.DefaultRadiusKm <= 0 || c.Matching.MaxRadiusKm < c.Matching.DefaultRadiusKm {
		errs = append(errs, errors.New("matching radius: need 0 < default <= max"))
	}
	if c.Tracking.HistoryLimit <= 0 {
		errs = append(errs, fmt.Errorf("invalid tracking history limit: %d", c.Tracking.HistoryLimit))
	}
	if c.Chat.HistoryLimit <= 0 {
		errs = append(errs, fmt.Errorf("invalid chat history limit: %d", c.Chat.HistoryLimit))
	}
	if c.Events.MaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("invalid events max attempts: %d", c.Events.MaxAttempts))
	}
	switch c.Log.Format {
	case "json", "text", "zap":
	default:
		errs = append(errs, fmt.Errorf("invalid log format %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

type envReader struct {
	errs *[]error
}

func (e envReader) fail(key, v string, err error) {
	*e.errs = append(*e.errs, fmt.Errorf("%s=%q: %w", key, v, err))
}

func (e envReader) str(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func (e envReader) int(key string, dst *int) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(key, v, err)
		return
	}
	*dst = n
}

func (e envReader) float(key string, dst *float64) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		e.fail(key, v, err)
		return
	}
	*dst = f
}

func (e envReader) boolean(key string, dst *bool) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(key, v, err)
		return
	}
	*dst = b
}

func (e envReader) duration(key string, dst *time.Duration) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		e.fail(key, v, err)
		return
	}
	*dst = d
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
