package engine

import (
	"fmt"
	"math"
	"sort"
	"time"
)

type airline struct {
	name string
	code string
}

var airlines = []airline{
	{"SkyWing Airlines", "SW"},
	{"Pacific Airways", "PA"},
	{"Global Express", "GE"},
	{"Azure Airlines", "AZ"},
	{"Horizon Air", "HA"},
	{"Emirates", "EK"},
	{"Qatar Airways", "QR"},
	{"Singapore Airlines", "SQ"},
	{"Lufthansa", "LH"},
	{"British Airways", "BA"},
	{"Air France", "AF"},
	{"Delta Airlines", "DL"},
	{"United Airlines", "UA"},
	{"American Airlines", "AA"},
	{"Air India", "AI"},
	{"IndiGo", "6E"},
	{"SpiceJet", "SG"},
}

var aircraftTypes = []string{
	"Boeing 737", "Airbus A320", "Boeing 787", "Airbus A350", "Boeing 777", "Airbus A380",
}

var delayRisks = []DelayRisk{DelayRiskLow, DelayRiskMedium, DelayRiskHigh}

const (
	minOffers = 4
	maxOffers = 8

	cruiseSpeedKmh     = 800.0
	turnaroundHours    = 0.5
	stopPenaltyMinutes = 90
)

// Search synthesizes 4-8 candidate offers for a query, cheapest first.
//
// Unresolvable locations never fail the search: they fall back to the
// configured default route, and inexact resolutions are disclosed through
// the nearest-info fields. Offers are randomized, so repeated calls with the
// same query return different results by design.
func (e *Engine) Search(q SearchQuery) (*SearchResult, error) {
	if err := validateQuery(q); err != nil {
		return nil, err
	}

	fromAirport := e.defaultFrom
	toAirport := e.defaultTo
	fromMatch, fromOK := e.dir.Resolve(q.From)
	if fromOK {
		fromAirport = fromMatch.Airport
	}
	toMatch, toOK := e.dir.Resolve(q.To)
	if toOK {
		toAirport = toMatch.Airport
	}

	daysUntil := e.daysUntilDeparture(q.Date)
	distance := DistanceKm(fromAirport.Coordinate(), toAirport.Coordinate())

	batch := e.now().Unix()
	count := minOffers + e.intn(maxOffers-minOffers+1)
	flights := make([]Flight, 0, count)
	for i := 0; i < count; i++ {
		carrier := airlines[e.intn(len(airlines))]
		stops := e.pickStops(distance)

		flights = append(flights, Flight{
			ID:             fmt.Sprintf("flight-%d-%d", batch, i),
			Airline:        carrier.name,
			AirlineCode:    carrier.code,
			FlightNumber:   fmt.Sprintf("%s%d", carrier.code, 1000+e.intn(9000)),
			From:           fromAirport.City,
			FromCode:       fromAirport.Code,
			To:             toAirport.City,
			ToCode:         toAirport.Code,
			DepartureTime:  e.clockTime(),
			ArrivalTime:    e.clockTime(),
			Duration:       formatDuration(distance, stops),
			Price:          e.QuoteFare(q.Class, daysUntil, distance),
			Class:          q.Class,
			AvailableSeats: 10 + e.intn(50),
			Aircraft:       aircraftTypes[e.intn(len(aircraftTypes))],
			Stops:          stops,
			DelayRisk:      delayRisks[e.intn(len(delayRisks))],
		})
	}

	sort.SliceStable(flights, func(i, j int) bool {
		return flights[i].Price < flights[j].Price
	})

	result := &SearchResult{
		Flights:     flights,
		FromAirport: fromAirport,
		ToAirport:   toAirport,
	}
	if fromOK && !fromMatch.IsExactMatch {
		result.FromNearest = &NearestInfo{OriginalQuery: q.From, DistanceKm: fromMatch.DistanceKm}
	}
	if toOK && !toMatch.IsExactMatch {
		result.ToNearest = &NearestInfo{OriginalQuery: q.To, DistanceKm: toMatch.DistanceKm}
	}
	return result, nil
}

func validateQuery(q SearchQuery) error {
	if _, err := ParseCabinClass(string(q.Class)); err != nil {
		return err
	}
	if q.Passengers < 1 {
		return fmt.Errorf("%w: passengers must be positive, got %d", ErrInvalidQuery, q.Passengers)
	}
	if q.Date.IsZero() {
		return fmt.Errorf("%w: missing departure date", ErrInvalidQuery)
	}
	return nil
}

// daysUntilDeparture is the lead time driving the urgency multiplier,
// clamped so past dates price like same-day departures.
func (e *Engine) daysUntilDeparture(date time.Time) int {
	days := int(math.Ceil(date.Sub(e.now()).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// pickStops assigns a stop count. Long routes carry a 60% chance of one or
// two stops, short routes a 30% chance of exactly one.
func (e *Engine) pickStops(distanceKm float64) int {
	if distanceKm > 5000 {
		if e.float64() > 0.4 {
			return 1 + e.intn(2)
		}
		return 0
	}
	if e.float64() > 0.7 {
		return 1
	}
	return 0
}

// clockTime produces a clock-valid HH:MM string on a 5-minute grid.
func (e *Engine) clockTime() string {
	return fmt.Sprintf("%02d:%02d", e.intn(24), e.intn(12)*5)
}

// formatDuration estimates block time from distance at cruise speed plus a
// fixed turnaround and a per-stop penalty.
func formatDuration(distanceKm float64, stops int) string {
	totalMinutes := int(math.Round((distanceKm/cruiseSpeedKmh+turnaroundHours)*60)) + stops*stopPenaltyMinutes
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60)
}
