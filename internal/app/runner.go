package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"golang.org/x/sync/errgroup"

	"parcel-marketplace/internal/logx"
	"parcel-marketplace/internal/transport/kafka"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the HTTP server and the gRPC health server
type Runner struct {
	runFn func(*dig.Container) error
	exit  func(int)
}

// NewRunner returns a new Runner
func NewRunner() *Runner {
	return &Runner{runFn: run, exit: os.Exit}
}

// MustRun runs the servers until the container context is cancelled
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := containerLogger(container)
	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		_ = logger.Sync()
		r.exit(1)
	}
}

func containerLogger(container *dig.Container) logx.Logger {
	var logger logx.Logger
	if err := container.Invoke(func(l logx.Logger) { logger = l }); err != nil || logger == nil {
		return logx.NewSlogAdapter(slog.Default())
	}
	return logger
}

type runIn struct {
	dig.In

	Ctx      context.Context
	Logger   logx.Logger
	Pool     *pgxpool.Pool
	Server   *http.Server
	Health   *healthServer   `optional:"true"`
	Producer *kafka.Producer `optional:"true"`
	Redis    *redis.Client   `optional:"true"`
}

func run(container *dig.Container) error {
	var runErr error
	if err := container.Invoke(func(in runIn) { runErr = appRun(in) }); err != nil {
		return err
	}
	return runErr
}

func appRun(in runIn) error {
	defer closeResources(in)

	g, gctx := errgroup.WithContext(in.Ctx)
	g.Go(func() error {
		in.Logger.Info("http server listening", logx.String("addr", in.Server.Addr))
		if err := in.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	if in.Health != nil {
		g.Go(func() error {
			in.Logger.Info("grpc health server listening", logx.String("addr", in.Health.addr))
			return in.Health.listenAndServe()
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		in.Logger.Info("shutting down parcel-api")
		gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
		if in.Health != nil {
			in.Health.stop()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return in.Ctx.Err()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(in runIn) {
	if in.Producer != nil {
		if err := in.Producer.Close(); err != nil {
			in.Logger.Error("kafka producer close error", logx.Err(err))
		}
	}
	if in.Redis != nil {
		if err := in.Redis.Close(); err != nil {
			in.Logger.Error("redis close error", logx.Err(err))
		}
	}
	if in.Pool != nil {
		in.Pool.Close()
	}
	_ = in.Logger.Sync()
}
