package config_test

import (
	"io"
	"os"
	"testing"
	"time"

	"parcel-marketplace/internal/config"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	oldArgs := os.Args
	old := pflag.CommandLine
	fs := pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	pflag.CommandLine = fs
	os.Args = []string{"cmd"}
	t.Cleanup(func() {
		pflag.CommandLine = old
		os.Args = oldArgs
	})
}

var envKeys = []string{
	"PORT", "SERVICE_OPERATION_TIMEOUT",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	"AUTH_JWT_SECRET",
	"RATE_LIMIT_ENABLED", "RATE_LIMIT_RATE", "RATE_LIMIT_BURST", "RATE_LIMIT_TTL", "RATE_LIMIT_MAX_BUCKETS",
	"OTP_MAX_ATTEMPTS", "OTP_ATTEMPT_WINDOW", "OTP_BCRYPT_COST",
	"REDIS_ADDR", "REDIS_PASSWORD",
	"KAFKA_BROKERS", "KAFKA_DELIVERY_TOPIC",
	"EVENTS_MAX_ATTEMPTS", "EVENTS_BASE_DELAY", "EVENTS_MAX_DELAY",
	"MATCHING_DEFAULT_RADIUS_KM", "MATCHING_MAX_RADIUS_KM",
	"TRACKING_HISTORY_LIMIT", "CHAT_HISTORY_LIMIT", "PRICING_TIMEZONE", "GRPC_HEALTH_PORT",
	"LOG_FORMAT", "LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 3*time.Second, cfg.OperationTimeout)

	require.Equal(t, "127.0.0.1", cfg.DB.Host)
	require.Equal(t, "5432", cfg.DB.Port)
	require.Equal(t, "parcel_db", cfg.DB.Name)

	require.Equal(t, "change-me", cfg.Auth.JWTSecret)
	require.True(t, cfg.RateLimit.Enabled)
	require.Equal(t, 20.0, cfg.RateLimit.Rate)
	require.Equal(t, 40, cfg.RateLimit.Burst)
	require.Equal(t, 5, cfg.OTP.MaxAttempts)
	require.Equal(t, 15*time.Minute, cfg.OTP.Window)
	require.Equal(t, 10, cfg.OTP.BcryptCost)
	require.Empty(t, cfg.Redis.Addr)
	require.Empty(t, cfg.Kafka.Brokers)
	require.Equal(t, "delivery-events", cfg.Kafka.DeliveryTopic)
	require.Equal(t, 3, cfg.Events.MaxAttempts)
	require.Equal(t, 10.0, cfg.Matching.DefaultRadiusKm)
	require.Equal(t, 100.0, cfg.Matching.MaxRadiusKm)
	require.Equal(t, 100, cfg.Tracking.HistoryLimit)
	require.Equal(t, 1000, cfg.Chat.HistoryLimit)
	require.Equal(t, time.Local, cfg.Pricing.Location)
	require.Equal(t, 9090, cfg.GRPCHealthPort)
	require.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("PORT", "9091")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "15432")
	t.Setenv("POSTGRES_DB", "service")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("OTP_MAX_ATTEMPTS", "3")
	t.Setenv("OTP_ATTEMPT_WINDOW", "5m")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("EVENTS_BASE_DELAY", "250ms")
	t.Setenv("MATCHING_DEFAULT_RADIUS_KM", "5.5")
	t.Setenv("PRICING_TIMEZONE", "Asia/Kolkata")
	t.Setenv("LOG_FORMAT", "zap")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, 9091, cfg.Port)
	require.Equal(t, "db", cfg.DB.Host)
	require.Equal(t, "15432", cfg.DB.Port)
	require.Equal(t, "service", cfg.DB.Name)
	require.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	require.False(t, cfg.RateLimit.Enabled)
	require.Equal(t, 3, cfg.OTP.MaxAttempts)
	require.Equal(t, 5*time.Minute, cfg.OTP.Window)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	require.Equal(t, 250*time.Millisecond, cfg.Events.BaseDelay)
	require.Equal(t, 5.5, cfg.Matching.DefaultRadiusKm)
	require.Equal(t, "Asia/Kolkata", cfg.Pricing.Location.String())
	require.Equal(t, "zap", cfg.Log.Format)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"PORT":                       "70000",
		"POSTGRES_PORT":              "not-a-number",
		"SERVICE_OPERATION_TIMEOUT":  "bad",
		"RATE_LIMIT_ENABLED":         "maybe",
		"OTP_MAX_ATTEMPTS":           "0",
		"MATCHING_DEFAULT_RADIUS_KM": "500",
		"TRACKING_HISTORY_LIMIT":     "-1",
		"CHAT_HISTORY_LIMIT":         "0",
		"PRICING_TIMEZONE":           "Mars/Olympus",
		"LOG_FORMAT":                 "xml",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			resetFlags(t)
			clearEnv(t)
			t.Setenv(key, val)

			cfg, err := config.Load()
			require.Error(t, err)
			require.Nil(t, cfg)
		})
	}
}

func TestLoad_FlagsParseError(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	os.Args = []string{"cmd", "--port=not-a-number"}

	cfg, err := config.Load()

	require.Error(t, err)
	require.Nil(t, cfg)
	require.Contains(t, err.Error(), "parse flags")
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	resetFlags(t)
	clearEnv(t)
	t.Setenv("PORT", "9000")
	os.Args = []string{"cmd", "--port=9100"}

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, 9100, cfg.Port)
}

func TestDB_DSN(t *testing.T) {
	d := config.DB{Host: "h", Port: "5433", User: "u", Pass: "p@ss", Name: "n"}
	require.Equal(t, "postgres://u:p%40ss@h:5433/n?sslmode=disable", d.DSN())
}
