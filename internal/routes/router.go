package routes

import (
	"context"
	"net/http"
	"time"

	"skyward/farecast/internal/api"
	"skyward/farecast/internal/db"
	"skyward/farecast/internal/engine"
	"skyward/farecast/internal/jobs"
	"skyward/farecast/internal/logging"
	"skyward/farecast/internal/metrics"
	"skyward/farecast/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func RegisterRoutes(eng *engine.Engine, upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// Initialize metrics registry
	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with rate limiting and logging middleware")
	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	// Initialize dependencies using DI pattern
	deps, err := api.InitDependencies(metricsReg, eng)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	// Start the fare snapshot job so popular routes stay warm in cache
	jobs.StartFareSnapshotJob(context.Background(), deps.Services.Fares)

	RegisterAPIRoutes(r, metricsReg, deps)

	return r
}
