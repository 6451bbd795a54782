package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"commute-agent/logger"
	"commute-agent/service"
)

const requestTimeout = 30 * time.Second

// RouterDeps are the collaborators the HTTP surface needs.
type RouterDeps struct {
	Engine  *service.RecommendationEngine
	Prices  service.PriceSource
	Limiter *RateLimiter
	Logger  logger.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	log := deps.Logger
	evaluate := NewEvaluateHandler(deps.Engine, deps.Prices, log)
	loans := NewLoanHandler(deps.Engine.Loans(), log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	if deps.Prices != nil {
		r.Get("/fuel-price", NewFuelPriceHandler(deps.Prices, log).Get)
	}

	r.Group(func(r chi.Router) {
		if deps.Limiter != nil {
			r.Use(RateLimit(deps.Limiter, log))
		}
		r.Post("/evaluate", evaluate.Evaluate)
		r.Post("/loan/calculate", loans.CalculateLoan)
	})

	return r
}
