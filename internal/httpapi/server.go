// Package httpapi serves generated schedules over HTTP: config discovery,
// generation, the grid and summary views, swapping and export.
//
// The server holds one current schedule. Generating a new schedule replaces
// it; edits and exports act on it.
package httpapi

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	roster "github.com/Thomblin/duty-roster"
	"github.com/Thomblin/duty-roster/internal/logger"
	"github.com/Thomblin/duty-roster/internal/metrics"
	"github.com/Thomblin/duty-roster/types"
)

// Server is the HTTP front end of the roster engine.
type Server struct {
	dir      string
	logger   types.Logger
	metrics  types.MetricsCollector
	gatherer prometheus.Gatherer
	now      func() time.Time

	mu      sync.Mutex
	current *session
}

// session is the schedule currently being viewed and edited.
type session struct {
	configPath string
	schedule   *roster.Schedule
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for requests and engine runs.
func WithLogger(l types.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the collector passed to the engine and the gatherer
// exposed at /metrics. A nil gatherer disables the endpoint.
func WithMetrics(m types.MetricsCollector, g prometheus.Gatherer) Option {
	return func(s *Server) {
		if m != nil {
			s.metrics = m
		}
		s.gatherer = g
	}
}

// WithClock overrides the time source used to name saved files.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a server that discovers configuration files in dir.
func New(dir string, opts ...Option) *Server {
	s := &Server{
		dir:     dir,
		logger:  logger.NewNop(),
		metrics: metrics.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Handler builds the root router with the versioned API mounted at /api/v1.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "use a versioned path like /api/v1/...")
	})

	r.Route("/api", func(api chi.Router) {
		api.Mount("/v1", s.v1())
	})

	return r
}

func (s *Server) v1() chi.Router {
	r := chi.NewRouter()

	r.Get("/configs", s.listConfigs)
	r.Post("/schedules", s.createSchedule)

	r.Get("/schedule", s.getSchedule)
	r.Get("/schedule/summary", s.getSummary)
	r.Post("/schedule/swap", s.swapSlots)
	r.Get("/schedule.csv", s.exportCSV)
	r.Post("/schedule/save", s.saveSchedule)

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"requestID", middleware.GetReqID(r.Context()),
		)
	})
}
