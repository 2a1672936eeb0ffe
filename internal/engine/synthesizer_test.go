package engine

import (
	"errors"
	"testing"
	"time"
)

func validQuery(e *Engine) SearchQuery {
	return SearchQuery{
		From:       "NYC",
		To:         "LON",
		Date:       e.now().AddDate(0, 0, 14),
		Class:      ClassEconomy,
		Passengers: 1,
	}
}

func TestSearch_OfferCountAndOrdering(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		e := newTestEngine(t, seed)

		result, err := e.Search(validQuery(e))
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		n := len(result.Flights)
		if n < minOffers || n > maxOffers {
			t.Fatalf("Expected 4-8 offers, got %d (seed %d)", n, seed)
		}
		for i, f := range result.Flights {
			if f.Price <= 0 {
				t.Errorf("Offer %d has non-positive price %d", i, f.Price)
			}
			if f.Stops < 0 || f.Stops > 2 {
				t.Errorf("Offer %d has invalid stop count %d", i, f.Stops)
			}
			if f.AvailableSeats < 10 || f.AvailableSeats > 59 {
				t.Errorf("Offer %d has out-of-range seats %d", i, f.AvailableSeats)
			}
			if i > 0 && result.Flights[i-1].Price > f.Price {
				t.Errorf("Offers not sorted by price: %d before %d", result.Flights[i-1].Price, f.Price)
			}
		}
	}
}

func TestSearch_NearestMatchDisclosure(t *testing.T) {
	e := newTestEngine(t, 7)

	result, err := e.Search(validQuery(e))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.FromAirport.Code != "JFK" {
		t.Errorf("Expected NYC to resolve to JFK, got %s", result.FromAirport.Code)
	}
	if result.FromNearest == nil {
		t.Fatal("Expected nearest-match info for NYC")
	}
	if result.FromNearest.OriginalQuery != "NYC" {
		t.Errorf("Expected original query preserved, got %q", result.FromNearest.OriginalQuery)
	}
	if result.FromNearest.DistanceKm <= 0 {
		t.Errorf("Expected positive disclosure distance, got %f", result.FromNearest.DistanceKm)
	}
}

func TestSearch_FallbackRouteForUnresolvableLocations(t *testing.T) {
	e := newTestEngine(t, 11)

	q := validQuery(e)
	q.From = "xqzzk"
	q.To = "qqpwv"

	result, err := e.Search(q)
	if err != nil {
		t.Fatalf("Search must not fail on unresolvable locations, got %v", err)
	}
	if result.FromAirport.Code != "DEL" || result.ToAirport.Code != "BOM" {
		t.Errorf("Expected default route DEL-BOM, got %s-%s", result.FromAirport.Code, result.ToAirport.Code)
	}
	if len(result.Flights) < minOffers {
		t.Errorf("Expected offers even on fallback route, got %d", len(result.Flights))
	}
	if result.FromNearest != nil || result.ToNearest != nil {
		t.Error("Fallback substitution must not claim a nearest match")
	}
}

func TestSearch_ExactMatchHasNoDisclosure(t *testing.T) {
	e := newTestEngine(t, 13)

	q := validQuery(e)
	q.From = "DEL"
	q.To = "BOM"

	result, err := e.Search(q)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.FromNearest != nil || result.ToNearest != nil {
		t.Error("Exact matches must not carry nearest-match info")
	}
}

func TestSearch_RejectsInvalidQueries(t *testing.T) {
	e := newTestEngine(t, 17)

	cases := []struct {
		name   string
		mutate func(*SearchQuery)
	}{
		{"zero passengers", func(q *SearchQuery) { q.Passengers = 0 }},
		{"negative passengers", func(q *SearchQuery) { q.Passengers = -2 }},
		{"unknown class", func(q *SearchQuery) { q.Class = "luxury" }},
		{"missing date", func(q *SearchQuery) { q.Date = time.Time{} }},
	}
	for _, c := range cases {
		q := validQuery(e)
		c.mutate(&q)
		_, err := e.Search(q)
		if err == nil {
			t.Errorf("%s: expected validation error", c.name)
			continue
		}
		if !errors.Is(err, ErrInvalidQuery) {
			t.Errorf("%s: expected ErrInvalidQuery, got %v", c.name, err)
		}
	}
}

func TestSearch_PastDatePricesAsSameDay(t *testing.T) {
	e := newTestEngine(t, 19)

	if days := e.daysUntilDeparture(e.now().AddDate(0, 0, -3)); days != 0 {
		t.Errorf("Expected past dates clamped to 0 days, got %d", days)
	}
}

func TestSearch_FlightIdentityFields(t *testing.T) {
	e := newTestEngine(t, 23)

	result, err := e.Search(validQuery(e))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	seen := make(map[string]bool)
	for _, f := range result.Flights {
		if seen[f.ID] {
			t.Errorf("Duplicate offer id %s in batch", f.ID)
		}
		seen[f.ID] = true

		if f.FlightNumber == "" || f.FlightNumber[:len(f.AirlineCode)] != f.AirlineCode {
			t.Errorf("Flight number %q must start with airline code %q", f.FlightNumber, f.AirlineCode)
		}
		if f.Class != ClassEconomy {
			t.Errorf("Expected query class on offer, got %s", f.Class)
		}
		if f.Aircraft == "" || f.Duration == "" || f.DepartureTime == "" || f.ArrivalTime == "" {
			t.Errorf("Offer %s missing derived fields: %+v", f.ID, f)
		}
	}
}
