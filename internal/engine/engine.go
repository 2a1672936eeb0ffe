package engine

import (
	"math/rand"
	"sync"
	"time"
)

// Engine synthesizes offers, seat maps, and fare calendars. It owns no
// shared mutable state beyond its random source, which is guarded so the
// engine can serve concurrent callers.
//
// Randomness and the clock are injected: production wiring seeds from the
// wall clock, tests pass a fixed seed and a frozen now func.
type Engine struct {
	dir         *Directory
	defaultFrom Airport
	defaultTo   Airport
	now         func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand replaces the engine's random source.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithClock replaces the engine's notion of "today".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithDefaultRoute sets the fallback airport pair used when a location
// cannot be resolved. Unknown codes keep the built-in defaults.
func WithDefaultRoute(fromCode, toCode string) Option {
	return func(e *Engine) {
		if ap, ok := e.dir.ByCode(fromCode); ok {
			e.defaultFrom = ap
		}
		if ap, ok := e.dir.ByCode(toCode); ok {
			e.defaultTo = ap
		}
	}
}

// New builds an engine over an airport directory. The directory must hold at
// least two airports; the first two become the fallback route.
func New(dir *Directory, opts ...Option) *Engine {
	e := &Engine{
		dir: dir,
		now: time.Now,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if airports := dir.Airports(); len(airports) >= 2 {
		e.defaultFrom = airports[0]
		e.defaultTo = airports[1]
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Directory exposes the engine's reference data.
func (e *Engine) Directory() *Directory {
	return e.dir
}

func (e *Engine) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}

func (e *Engine) float64() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Float64()
}
