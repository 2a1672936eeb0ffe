package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"skyward/farecast/internal/common"
	"skyward/farecast/internal/constants"
	"skyward/farecast/internal/engine"
	"skyward/farecast/internal/metrics"
)

// fareCalendarTTL bounds how long a computed 30-day curve is reused.
const fareCalendarTTL = 15 * time.Minute

// FareCalendarService serves 30-day fare calendars cache-first, recomputing
// through the engine on misses.
type FareCalendarService struct {
	engine     *engine.Engine
	cache      common.CacheInterface
	metricsReg *metrics.MetricsRegistry
}

func NewFareCalendarService(eng *engine.Engine, cache common.CacheInterface, metricsReg *metrics.MetricsRegistry) *FareCalendarService {
	return &FareCalendarService{
		engine:     eng,
		cache:      cache,
		metricsReg: metricsReg,
	}
}

// GetCalendar returns the fare calendar for a route, from cache when fresh.
func (svc *FareCalendarService) GetCalendar(from, to string) ([]engine.FareDay, error) {
	key := calendarKey(from, to)

	if val, found := svc.cache.Get(key); found {
		svc.metricsReg.CacheHitsTotal.WithLabelValues(string(constants.CachePrefixFareCalendar)).Inc()
		return decodeFareDays(val)
	}
	svc.metricsReg.CacheMissesTotal.WithLabelValues(string(constants.CachePrefixFareCalendar)).Inc()

	fares := svc.engine.ForecastFares(from, to)
	svc.metricsReg.ForecastsTotal.Inc()
	svc.cache.Set(key, fares, fareCalendarTTL)
	return fares, nil
}

// Warm computes and caches the calendar for a route, used by the snapshot
// job to keep popular routes hot.
func (svc *FareCalendarService) Warm(from, to string) {
	fares := svc.engine.ForecastFares(from, to)
	svc.metricsReg.ForecastsTotal.Inc()
	svc.cache.Set(calendarKey(from, to), fares, fareCalendarTTL)
}

func calendarKey(from, to string) string {
	return fmt.Sprintf("%s%s|%s",
		constants.CachePrefixFareCalendar,
		strings.ToUpper(strings.TrimSpace(from)),
		strings.ToUpper(strings.TrimSpace(to)),
	)
}

// decodeFareDays recovers the typed slice from a cache hit. The Redis
// backend round-trips values through JSON, so hits may come back as generic
// JSON values rather than []engine.FareDay.
func decodeFareDays(val interface{}) ([]engine.FareDay, error) {
	if fares, ok := val.([]engine.FareDay); ok {
		return fares, nil
	}

	raw, err := json.Marshal(val)
	if err != nil {
		return nil, fmt.Errorf("unexpected fare calendar cache value: %w", err)
	}
	var fares []engine.FareDay
	if err := json.Unmarshal(raw, &fares); err != nil {
		return nil, fmt.Errorf("unexpected fare calendar cache value: %w", err)
	}
	return fares, nil
}
