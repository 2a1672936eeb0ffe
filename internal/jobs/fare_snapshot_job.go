package jobs

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"skyward/farecast/internal/services"

	"golang.org/x/sync/errgroup"
)

// fareSnapshotInterval matches the cache TTL so a warmed route never goes cold.
const fareSnapshotInterval = 15 * time.Minute

// defaultSnapshotRoutes are warmed when FARE_SNAPSHOT_ROUTES is unset.
var defaultSnapshotRoutes = []string{"DEL-BOM", "JFK-LHR", "SIN-NRT"}

// FareSnapshotJob periodically recomputes the fare calendars of popular
// routes so user requests hit a warm cache.
type FareSnapshotJob struct {
	fares  *services.FareCalendarService
	routes [][2]string
}

// NewFareSnapshotJob creates a new fare snapshot job instance. Routes come
// from FARE_SNAPSHOT_ROUTES, a comma list of FROM-TO pairs like
// "DEL-BOM,JFK-LHR".
func NewFareSnapshotJob(fares *services.FareCalendarService) *FareSnapshotJob {
	return &FareSnapshotJob{
		fares:  fares,
		routes: parseSnapshotRoutes(os.Getenv("FARE_SNAPSHOT_ROUTES")),
	}
}

// Run warms every configured route once. Routes warm in parallel, a few at
// a time.
func (j *FareSnapshotJob) Run(ctx context.Context) error {
	start := time.Now()
	log.Printf("[FareSnapshotJob] Warming %d routes", len(j.routes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, route := range j.routes {
		from, to := route[0], route[1]
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			j.fares.Warm(from, to)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("[FareSnapshotJob] Warm cycle aborted: %v", err)
		return err
	}

	log.Printf("[FareSnapshotJob] Completed warm cycle in %s",
		time.Since(start).Truncate(time.Millisecond))
	return nil
}

// RunScheduled runs the job immediately and then on every tick until the
// context is cancelled.
func (j *FareSnapshotJob) RunScheduled(ctx context.Context, interval time.Duration) {
	if len(j.routes) == 0 {
		log.Printf("[FareSnapshotJob] No routes configured, job disabled")
		return
	}

	if err := j.Run(ctx); err != nil {
		log.Printf("[FareSnapshotJob] Initial run failed: %v", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[FareSnapshotJob] Stopping scheduled runs")
			return
		case <-ticker.C:
			if err := j.Run(ctx); err != nil {
				log.Printf("[FareSnapshotJob] Scheduled run failed: %v", err)
			}
		}
	}
}

// StartFareSnapshotJob initializes the job and starts it in the background.
func StartFareSnapshotJob(ctx context.Context, fares *services.FareCalendarService) *FareSnapshotJob {
	job := NewFareSnapshotJob(fares)
	go job.RunScheduled(ctx, fareSnapshotInterval)
	return job
}

func parseSnapshotRoutes(raw string) [][2]string {
	parts := defaultSnapshotRoutes
	if strings.TrimSpace(raw) != "" {
		parts = strings.Split(raw, ",")
	}

	routes := make([][2]string, 0, len(parts))
	for _, part := range parts {
		pair := strings.SplitN(strings.TrimSpace(part), "-", 2)
		if len(pair) != 2 || pair[0] == "" || pair[1] == "" {
			log.Printf("[FareSnapshotJob] Skipping malformed route %q", part)
			continue
		}
		routes = append(routes, [2]string{strings.ToUpper(pair[0]), strings.ToUpper(pair[1])})
	}
	return routes
}
