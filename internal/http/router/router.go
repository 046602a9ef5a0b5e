package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"parcel-marketplace/internal/http/handlers"
	mw "parcel-marketplace/internal/http/middleware"
	"parcel-marketplace/internal/logx"
	"parcel-marketplace/internal/metrics"
)

const requestTimeout = 5 * time.Second

// Deps are the router inputs. Auth is required for /api; RateLimit, Metrics
// and Gatherer are optional.
type Deps struct {
	Base      *handlers.Handlers
	Delivery  *handlers.DeliveryHandler
	Tracking  *handlers.TrackingHandler
	Chat      *handlers.ChatHandler
	Carrier   *handlers.CarrierHandler
	Admin     *handlers.AdminHandler
	Auth      mw.IdentityResolver
	RateLimit *mw.RateLimit
	Metrics   *metrics.HTTP
	Gatherer  prometheus.Gatherer
	Logger    logx.Logger
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = logx.Nop()
	}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Observability(logger, d.Metrics))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	if d.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}
	r.NotFound(d.Base.NotFound)
	r.MethodNotAllowed(d.Base.MethodNotAllowed)

	r.Route("/api", func(api chi.Router) {
		api.Use(mw.Authenticate(logger, d.Auth))
		// ключ лимитера по пользователю, поэтому после аутентификации
		if d.RateLimit != nil {
			api.Use(d.RateLimit.Handler())
		}

		api.Route("/deliveries", func(r chi.Router) {
			r.Post("/", d.Delivery.Create)
			r.Get("/", d.Delivery.ListMine)
			r.Get("/nearby", d.Delivery.Nearby)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", d.Delivery.GetByID)
				r.Get("/events", d.Delivery.Events)
				r.Put("/accept", d.Delivery.Accept)
				r.Post("/verify-otp", d.Delivery.VerifyOTP)
				r.Put("/cancel", d.Delivery.Cancel)
				r.Post("/location", d.Tracking.Record)
				r.Get("/locations", d.Tracking.List)
			})
		})

		api.Route("/messages", func(r chi.Router) {
			r.Post("/", d.Chat.Send)
			r.Get("/{deliveryID}", d.Chat.List)
		})

		api.Route("/carrier", func(r chi.Router) {
			r.Post("/kyc", d.Carrier.SubmitKYC)
			r.Get("/profile", d.Carrier.Profile)
			r.Put("/online", d.Carrier.SetOnline)
		})

		api.Route("/admin", func(r chi.Router) {
			r.Get("/kyc/pending", d.Admin.PendingKYC)
			r.Put("/kyc/{userID}/approve", d.Admin.ApproveKYC)
			r.Put("/kyc/{userID}/reject", d.Admin.RejectKYC)
			r.Get("/config", d.Admin.GetConfig)
			r.Put("/config", d.Admin.SetConfig)
		})
	})

	return r
}
