package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"parcel-marketplace/internal/config"
	"parcel-marketplace/internal/logx"
)

// NewLogger builds the process logger from LOG_FORMAT and LOG_LEVEL.
func NewLogger(cfg *config.Config) (logx.Logger, error) {
	return newLogger(os.Stdout, cfg.Log)
}

func newLogger(w io.Writer, c config.Log) (logx.Logger, error) {
	level, err := logx.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	switch c.Format {
	case "", "json":
		return logx.NewSlogAdapter(slog.New(slog.NewJSONHandler(w, opts))), nil
	case "text":
		return logx.NewSlogAdapter(slog.New(slog.NewTextHandler(w, opts))), nil
	case "zap":
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(w),
			zapLevel(level),
		)
		return logx.NewZapAdapter(zap.New(core)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", c.Format)
	}
}

func zapLevel(l slog.Level) zapcore.Level {
	switch {
	case l <= slog.LevelDebug:
		return zapcore.DebugLevel
	case l <= slog.LevelInfo:
		return zapcore.InfoLevel
	case l <= slog.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
