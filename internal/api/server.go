// Package api exposes the prediction service over HTTP and websocket.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/yourusername/match-oracle/internal/config"
	"github.com/yourusername/match-oracle/internal/filter"
	"github.com/yourusername/match-oracle/internal/logger"
	"github.com/yourusername/match-oracle/internal/metrics"
	"github.com/yourusername/match-oracle/internal/models"
	"github.com/yourusername/match-oracle/internal/service"
	"github.com/yourusername/match-oracle/internal/simulation"
)

// PredictionAPI is the service surface served by the API.
type PredictionAPI interface {
	Predict(ctx context.Context, req models.MatchRequest) (*models.ConsensusResult, error)
	PredictSideMarkets(ctx context.Context, req models.MatchRequest) (*models.ConsensusResult, error)
	Combined(ctx context.Context, req models.MatchRequest) (*models.CombinedPrediction, error)
	ValueBets(ctx context.Context, req models.MatchRequest) ([]models.ValueBetEntry, error)
	Kelly(ctx context.Context, req models.KellyRequest) (models.KellyRecommendation, error)
	Filter(ctx context.Context, req models.FilterRequest) (*filter.Result, error)
	Insights(ctx context.Context, req models.MatchRequest) (*service.MatchInsights, error)
	Evolve(ctx context.Context, req models.EvolutionRequest) ([]simulation.Evolution, error)
}

// Config holds the transport settings of the API server.
type Config struct {
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	RequestTimeout time.Duration
	MetricsEnabled bool
	MetricsPath    string
}

// ConfigFrom maps application configuration onto API settings.
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
		RequestTimeout: cfg.RequestTimeout(),
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsPath:    cfg.Metrics.Path,
	}
}

// Server routes HTTP requests to the prediction service.
type Server struct {
	svc      PredictionAPI
	cfg      Config
	logger   *logrus.Logger
	audit    *logger.AuditLogger
	limiter  *rate.Limiter
	upgrader websocket.Upgrader
	router   chi.Router
}

// NewServer creates a new API server
func NewServer(svc PredictionAPI, cfg Config, log *logrus.Logger) *Server {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	if cfg.MetricsPath == "" {
		cfg.MetricsPath = "/metrics"
	}
	limit := rate.Limit(cfg.RateLimitRPS)
	if cfg.RateLimitRPS <= 0 {
		limit = rate.Inf
	}

	s := &Server{
		svc:     svc,
		cfg:     cfg,
		logger:  log,
		audit:   logger.NewAuditLogger(log),
		limiter: rate.NewLimiter(limit, cfg.RateLimitBurst),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))
	r.Use(s.rateLimit)

	if s.cfg.MetricsEnabled {
		r.Handle(s.cfg.MetricsPath, metrics.Handler())
	}

	// Websocket connections are long lived and stay outside the timeout
	r.Get("/ws/live", s.handleLive)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(s.cfg.RequestTimeout))

		// Predictions
		r.Post("/predictions", s.handlePredict)
		r.Post("/predictions/side-markets", s.handleSideMarkets)
		r.Post("/predictions/combined", s.handleCombined)
		r.Post("/insights", s.handleInsights)

		// Staking
		r.Post("/value-bets", s.handleValueBets)
		r.Post("/kelly", s.handleKelly)

		// Filter and simulation
		r.Post("/filter", s.handleFilter)
		r.Post("/evolution", s.handleEvolution)
	})

	return r
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range s.cfg.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
