package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"parcel-marketplace/internal/auth"
	"parcel-marketplace/internal/config"
	"parcel-marketplace/internal/http/handlers"
	mw "parcel-marketplace/internal/http/middleware"
	"parcel-marketplace/internal/http/router"
	"parcel-marketplace/internal/logx"
	"parcel-marketplace/internal/metrics"
	"parcel-marketplace/internal/otp"
	"parcel-marketplace/internal/ratelimit"
	"parcel-marketplace/internal/repository"
	"parcel-marketplace/internal/service/carrier"
	"parcel-marketplace/internal/service/chat"
	"parcel-marketplace/internal/service/delivery"
	"parcel-marketplace/internal/service/matching"
	"parcel-marketplace/internal/service/pricingcfg"
	"parcel-marketplace/internal/service/tracking"
)

const (
	dbConnectRetries = 10
	dbConnectDelay   = time.Second
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	loadConfig func() (*config.Config, error)
	dbConnect  dbConnectFunc
	migrate    func(context.Context, *pgxpool.Pool) error
	logFatalf  func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		loadConfig: config.Load,
		dbConnect:  connectDbWithRetry,
		migrate:    repository.Migrate,
		logFatalf:  log.Fatalf,
	}
}

// WithConfig makes the container use cfg instead of loading it
func (b *ContainerBuilder) WithConfig(cfg *config.Config) *ContainerBuilder {
	if cfg != nil {
		b.loadConfig = func() (*config.Config, error) { return cfg, nil }
	}
	return b
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithMigrate sets the schema migration function
func (b *ContainerBuilder) WithMigrate(fn func(context.Context, *pgxpool.Pool) error) *ContainerBuilder {
	if fn != nil {
		b.migrate = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// build builds and returns a new dig container
func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect, b.migrate); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context, loadConfig func() (*config.Config, error)) error {
	return provideAll(container,
		func() context.Context { return ctx },
		loadConfig,
		NewLogger,
		newRegistry,
		func(reg *prometheus.Registry) prometheus.Registerer { return reg },
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
		provideMetrics,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect dbConnectFunc,
	migrate func(context.Context, *pgxpool.Pool) error,
) error {
	providerDB := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*pgxpool.Pool, error) {
		pool, err := dbConnect(ctx, logger, cfg.DB.DSN(), dbConnectRetries, dbConnectDelay)
		if err != nil {
			return nil, err
		}
		if err := migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return pool, nil
	}
	return provideAll(container, providerDB)
}

type deliveryIn struct {
	dig.In

	Config   *config.Config
	Logger   logx.Logger
	Repo     *repository.DeliveryRepo
	Carriers *repository.CarrierRepo
	Pricing  *repository.PricingConfigRepo
	Codec    *otp.Codec
	Attempts ratelimit.Limiter `name:"otp_limiter"`
	Events   eventPublisher
	Metrics  *metrics.Delivery
}

func newDeliveryService(in deliveryIn) *delivery.Service {
	deps := delivery.Deps{
		Repo:     in.Repo,
		Carriers: in.Carriers,
		Pricing:  in.Pricing,
		Codec:    in.Codec,
		Attempts: in.Attempts,
		Metrics:  in.Metrics,
		Logger:   in.Logger,
	}
	if in.Events != nil {
		deps.Events = in.Events
	}
	return delivery.NewService(deps, delivery.Options{
		OperationTimeout: in.Config.OperationTimeout,
		PricingLocation:  in.Config.Pricing.Location,
	})
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewDeliveryRepo,
		repository.NewCarrierRepo,
		repository.NewPricingConfigRepo,
		repository.NewLocationRepo,
		repository.NewMessageRepo,
		func(cfg *config.Config) *otp.Codec { return otp.NewCodec(cfg.OTP.BcryptCost) },
		newRateLimitClock,
		newRedisClient,
		newLimiters,
		newProducer,
		newEventPublisher,
		newDeliveryService,
		func(cfg *config.Config, deliveries *repository.DeliveryRepo, carriers *repository.CarrierRepo) *matching.Service {
			return matching.NewService(deliveries, carriers, matching.Options{
				OperationTimeout: cfg.OperationTimeout,
				DefaultRadiusKm:  cfg.Matching.DefaultRadiusKm,
				MaxRadiusKm:      cfg.Matching.MaxRadiusKm,
			})
		},
		func(cfg *config.Config, repo *repository.CarrierRepo, logger logx.Logger) *carrier.Service {
			return carrier.NewService(repo, logger, cfg.OperationTimeout)
		},
		func(cfg *config.Config, repo *repository.PricingConfigRepo, logger logx.Logger) *pricingcfg.Service {
			return pricingcfg.NewService(repo, logger, cfg.OperationTimeout)
		},
		func(cfg *config.Config, deliveries *repository.DeliveryRepo, locations *repository.LocationRepo) *tracking.Service {
			return tracking.NewService(deliveries, locations, cfg.OperationTimeout, cfg.Tracking.HistoryLimit)
		},
		func(cfg *config.Config, logger logx.Logger, deliveries *repository.DeliveryRepo, messages *repository.MessageRepo) *chat.Service {
			return chat.NewService(logger, deliveries, messages, cfg.OperationTimeout, cfg.Chat.HistoryLimit)
		},
	)
}

type routerIn struct {
	dig.In

	Logger    logx.Logger
	Base      *handlers.Handlers
	Delivery  *handlers.DeliveryHandler
	Tracking  *handlers.TrackingHandler
	Chat      *handlers.ChatHandler
	Carrier   *handlers.CarrierHandler
	Admin     *handlers.AdminHandler
	Auth      *auth.JWTResolver
	RateLimit *mw.RateLimit
	Metrics   *metrics.HTTP
	Gatherer  prometheus.Gatherer
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Deps{
		Base:      in.Base,
		Delivery:  in.Delivery,
		Tracking:  in.Tracking,
		Chat:      in.Chat,
		Carrier:   in.Carrier,
		Admin:     in.Admin,
		Auth:      in.Auth,
		RateLimit: in.RateLimit,
		Metrics:   in.Metrics,
		Gatherer:  in.Gatherer,
		Logger:    in.Logger,
	})
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		func(cfg *config.Config) *auth.JWTResolver { return auth.NewJWTResolver(cfg.Auth.JWTSecret) },
		newRateLimitMiddleware,
		handlers.New,
		handlers.NewDeliveryUsecase,
		handlers.NewMatchingUsecase,
		handlers.NewTrackingUsecase,
		handlers.NewChatUsecase,
		handlers.NewCarrierUsecase,
		handlers.NewPricingUsecase,
		handlers.NewDeliveryHandler,
		handlers.NewTrackingHandler,
		handlers.NewChatHandler,
		handlers.NewCarrierHandler,
		handlers.NewAdminHandler,
		newRouter,
		serverProvider,
		newHealthServer,
	)
}
