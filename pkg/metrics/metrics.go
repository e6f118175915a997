package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestSize     *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec

	// Business metrics
	UsersRegistered     *prometheus.CounterVec
	LoginAttempts       *prometheus.CounterVec
	MissionsCreated     prometheus.Counter
	SubmissionsCreated  prometheus.Counter
	MilestonesDeclared  prometheus.Counter
	MilestonesDecided   *prometheus.CounterVec
	EarningsCredited    prometheus.Counter
	PayoutsRequested    prometheus.Counter
	WalletRecharges     prometheus.Counter

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
}

// New creates a new Metrics instance registered on the default registry
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers all metrics on the given registerer. Tests pass a fresh
// prometheus.NewRegistry so instances do not collide.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	m := &Metrics{
		// HTTP metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
			},
			[]string{"method", "path"},
		),
		HTTPResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
			},
			[]string{"method", "path"},
		),

		// Business metrics
		UsersRegistered: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "users_registered_total",
				Help: "Total number of users registered",
			},
			[]string{"role"}, // creator, clipper
		),
		LoginAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "login_attempts_total",
				Help: "Total number of login attempts",
			},
			[]string{"status"}, // success, failed
		),
		MissionsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "missions_created_total",
			Help: "Total number of clipping missions launched",
		}),
		SubmissionsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "submissions_created_total",
			Help: "Total number of clip submissions",
		}),
		MilestonesDeclared: factory.NewCounter(prometheus.CounterOpts{
			Name: "milestones_declared_total",
			Help: "Total number of palier declarations",
		}),
		MilestonesDecided: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "milestones_decided_total",
				Help: "Total number of admin milestone decisions",
			},
			[]string{"decision"}, // approved, rejected
		),
		EarningsCredited: factory.NewCounter(prometheus.CounterOpts{
			Name: "earnings_credited_eur_total",
			Help: "Total earnings credited to clipper wallets in EUR",
		}),
		PayoutsRequested: factory.NewCounter(prometheus.CounterOpts{
			Name: "payouts_requested_total",
			Help: "Total number of payout requests",
		}),
		WalletRecharges: factory.NewCounter(prometheus.CounterOpts{
			Name: "wallet_recharges_total",
			Help: "Total number of wallet recharge sessions started",
		}),

		// Cache metrics
		CacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache_type"},
		),
		CacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache_type"},
		),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // Use route pattern, not actual path (e.g., /api/v1/missions/:id)

			if req.ContentLength > 0 {
				m.HTTPRequestSize.WithLabelValues(req.Method, path).Observe(float64(req.ContentLength))
			}

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)
			m.HTTPResponseSize.WithLabelValues(req.Method, path).Observe(float64(c.Response().Size))

			return err
		}
	}
}

// RecordUserRegistered increments users registered counter
func (m *Metrics) RecordUserRegistered(role string) {
	m.UsersRegistered.WithLabelValues(role).Inc()
}

// RecordLoginAttempt increments login attempts counter
func (m *Metrics) RecordLoginAttempt(success bool) {
	status := "failed"
	if success {
		status = "success"
	}
	m.LoginAttempts.WithLabelValues(status).Inc()
}

// RecordMissionCreated increments missions created counter
func (m *Metrics) RecordMissionCreated() {
	m.MissionsCreated.Inc()
}

// RecordSubmissionCreated increments submissions created counter
func (m *Metrics) RecordSubmissionCreated() {
	m.SubmissionsCreated.Inc()
}

// RecordMilestoneDeclared increments milestone declarations counter
func (m *Metrics) RecordMilestoneDeclared() {
	m.MilestonesDeclared.Inc()
}

// RecordMilestoneDecision counts an admin decision and, on approval, the
// credited amount.
func (m *Metrics) RecordMilestoneDecision(approved bool, amount float64) {
	decision := "rejected"
	if approved {
		decision = "approved"
		m.EarningsCredited.Add(amount)
	}
	m.MilestonesDecided.WithLabelValues(decision).Inc()
}

// RecordPayoutRequested increments payout requests counter
func (m *Metrics) RecordPayoutRequested() {
	m.PayoutsRequested.Inc()
}

// RecordWalletRecharge increments wallet recharges counter
func (m *Metrics) RecordWalletRecharge() {
	m.WalletRecharges.Inc()
}

// RecordCacheHit increments cache hits counter
func (m *Metrics) RecordCacheHit(cacheType string) {
	m.CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss increments cache misses counter
func (m *Metrics) RecordCacheMiss(cacheType string) {
	m.CacheMisses.WithLabelValues(cacheType).Inc()
}
