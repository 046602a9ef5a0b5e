package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewEventPublishRetriesTotal returns a counter of retry attempts made while publishing lifecycle events
func NewEventPublishRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "delivery_event_publish_retries_total",
		Help: "Total number of retry attempts performed by the event publisher",
	})
}

// HTTP holds request level collectors used by the observability middleware.
type HTTP struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewHTTP builds unregistered HTTP collectors.
func NewHTTP() *HTTP {
	return &HTTP{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
	}
}

// Collectors lists the collectors for registration.
func (h *HTTP) Collectors() []prometheus.Collector {
	return []prometheus.Collector{h.Requests, h.Duration}
}

// Delivery holds marketplace collectors. A nil *Delivery records nothing.
type Delivery struct {
	transitions   *prometheus.CounterVec
	otpChecks     *prometheus.CounterVec
	quotedPrice   prometheus.Histogram
	publishFailed prometheus.Counter
}

// OTP verification outcomes.
const (
	OTPResultOK        = "ok"
	OTPResultMismatch  = "mismatch"
	OTPResultThrottled = "throttled"
)

// NewDelivery builds unregistered marketplace collectors.
func NewDelivery() *Delivery {
	return &Delivery{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "delivery_transitions_total",
			Help: "Committed delivery status transitions",
		}, []string{"from", "to"}),
		otpChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "delivery_otp_verifications_total",
			Help: "OTP verification attempts by checkpoint and outcome",
		}, []string{"checkpoint", "result"}),
		quotedPrice: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "delivery_quoted_price_rupees",
			Help:    "Prices fixed at delivery creation",
			Buckets: []float64{25, 50, 75, 100, 150, 200, 300, 500, 1000},
		}),
		publishFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "delivery_event_publish_failures_total",
			Help: "Lifecycle events that could not be published after retries",
		}),
	}
}

// Collectors lists the collectors for registration.
func (d *Delivery) Collectors() []prometheus.Collector {
	return []prometheus.Collector{d.transitions, d.otpChecks, d.quotedPrice, d.publishFailed}
}

// Transition records a committed status change.
func (d *Delivery) Transition(from, to string) {
	if d == nil {
		return
	}
	d.transitions.WithLabelValues(from, to).Inc()
}

// OTPCheck records a verification outcome.
func (d *Delivery) OTPCheck(checkpoint, result string) {
	if d == nil {
		return
	}
	d.otpChecks.WithLabelValues(checkpoint, result).Inc()
}

// QuotedPrice records a fixed delivery price.
func (d *Delivery) QuotedPrice(rs int64) {
	if d == nil {
		return
	}
	d.quotedPrice.Observe(float64(rs))
}

// PublishFailed records an event dropped after retries.
func (d *Delivery) PublishFailed() {
	if d == nil {
		return
	}
	d.publishFailed.Inc()
}

// Register registers every collector on r.
func Register(r prometheus.Registerer, cs ...prometheus.Collector) error {
	for _, c := range cs {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}
