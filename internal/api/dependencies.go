package api

import (
	"os"

	"skyward/farecast/internal/common"
	"skyward/farecast/internal/db"
	"skyward/farecast/internal/db/repositories"
	"skyward/farecast/internal/engine"
	"skyward/farecast/internal/logging"
	"skyward/farecast/internal/metrics"
	"skyward/farecast/internal/services"
)

type Repositories struct {
	Bookings *repositories.BookingRepository
	Airports *repositories.AirportRepository
}

type Services struct {
	Cache    common.CacheInterface
	Search   *services.SearchService
	Fares    *services.FareCalendarService
	Bookings *services.BookingService
}

type Dependencies struct {
	Engine   *engine.Engine
	Advisor  engine.Advisor
	Repo     *Repositories
	Services *Services
	Loader   *common.AirportLoaderService
}

// InitDependencies wires repositories and services around a built engine.
func InitDependencies(metricsReg *metrics.MetricsRegistry, eng *engine.Engine) (*Dependencies, error) {

	repos := &Repositories{
		Bookings: repositories.NewBookingRepository(db.DB),
		Airports: repositories.NewAirportRepository(db.PgDB),
	}

	cacheSvc := newCache()

	svcs := &Services{
		Cache:    cacheSvc,
		Search:   services.NewSearchService(eng, metricsReg),
		Fares:    services.NewFareCalendarService(eng, cacheSvc, metricsReg),
		Bookings: services.NewBookingService(repos.Bookings, metricsReg),
	}

	return &Dependencies{
		Engine:   eng,
		Advisor:  engine.HeuristicAdvisor{},
		Repo:     repos,
		Services: svcs,
		Loader:   common.NewAirportLoaderService(db.PgDB),
	}, nil
}

// newCache selects the cache backend: Redis when CACHE_BACKEND=redis and
// reachable, in-memory otherwise.
func newCache() common.CacheInterface {
	if os.Getenv("CACHE_BACKEND") == "redis" {
		redisCache, err := common.NewRedisCacheService()
		if err == nil {
			logging.Info("Using Redis cache backend")
			return redisCache
		}
		logging.Warn("Redis cache unavailable, falling back to in-memory", "error", err.Error())
	}
	return common.NewCacheService(900, 600)
}
