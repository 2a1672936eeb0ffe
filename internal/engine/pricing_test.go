package engine

import (
	"math/rand"
	"testing"
	"time"
)

func newTestEngine(t *testing.T, seed int64) *Engine {
	t.Helper()
	today := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	return New(DefaultDirectory(),
		WithRand(rand.New(rand.NewSource(seed))),
		WithClock(func() time.Time { return today }),
	)
}

func TestQuoteFare_AlwaysPositive(t *testing.T) {
	e := newTestEngine(t, 1)

	for _, class := range []CabinClass{ClassEconomy, ClassBusiness, ClassFirst} {
		for _, days := range []int{0, 1, 6, 13, 29, 45} {
			for _, dist := range []float64{0, 100, 1000, 12000} {
				if price := e.QuoteFare(class, days, dist); price <= 0 {
					t.Errorf("Expected positive fare for (%s, %d, %f), got %d", class, days, dist, price)
				}
			}
		}
	}
}

func TestQuoteFare_CabinOrdering(t *testing.T) {
	e := newTestEngine(t, 2)

	eco := e.QuoteFare(ClassEconomy, 10, 2000)
	bus := e.QuoteFare(ClassBusiness, 10, 2000)
	first := e.QuoteFare(ClassFirst, 10, 2000)

	if !(eco < bus && bus < first) {
		t.Errorf("Expected economy < business < first, got %d, %d, %d", eco, bus, first)
	}
}

func TestLeadTimeMultiplier_Buckets(t *testing.T) {
	cases := []struct {
		days int
		want float64
	}{
		{0, 2.5},
		{1, 1.8},
		{6, 1.8},
		{7, 1.4},
		{13, 1.4},
		{14, 1.1},
		{29, 1.1},
		{30, 0.85},
		{45, 0.85},
	}
	for _, c := range cases {
		if got := LeadTimeMultiplier(c.days); got != c.want {
			t.Errorf("LeadTimeMultiplier(%d) = %f, want %f", c.days, got, c.want)
		}
	}
}

func TestLeadTimeMultiplier_MonotonicUrgency(t *testing.T) {
	// Fewer days out must never price lower, noise aside.
	days := []int{40, 20, 10, 5, 0}
	prev := 0.0
	for _, d := range days {
		m := LeadTimeMultiplier(d)
		if m < prev {
			t.Errorf("Multiplier dropped at %d days: %f < %f", d, m, prev)
		}
		prev = m
	}
}

func TestCabinMultiplier(t *testing.T) {
	if CabinMultiplier(ClassEconomy) != 1 || CabinMultiplier(ClassBusiness) != 3 || CabinMultiplier(ClassFirst) != 6 {
		t.Error("Cabin multipliers must be 1/3/6 for economy/business/first")
	}
}

func TestBaseFare_Floor(t *testing.T) {
	if fare := baseFare(10); fare != fareFloor {
		t.Errorf("Expected floor fare %d for short route, got %d", fareFloor, fare)
	}
	if fare := baseFare(2000); fare != 14000 {
		t.Errorf("Expected 14000 for 2000 km, got %d", fare)
	}
}

func TestQuoteFare_NoiseIsBounded(t *testing.T) {
	e := newTestEngine(t, 3)

	// 1000 km economy at 10 days out: 7000 * 1.4 = 9800 before noise.
	for i := 0; i < 200; i++ {
		price := e.QuoteFare(ClassEconomy, 10, 1000)
		if price < 9800 || price > 9900 {
			t.Fatalf("Expected fare in [9800, 9900], got %d", price)
		}
	}
}
