package engine

import (
	"math"
	"time"
)

// fareCalendarDays is the fixed forecast horizon.
const fareCalendarDays = 30

// ForecastFares produces the 30-day forward price curve for a route, one
// entry per calendar day starting today. The curve is class-agnostic: it
// applies weekend and lead-time shaping to the raw distance fare, then
// grades each day against the 30-day expected average. Unresolvable
// locations use the same default-route fallback as Search.
func (e *Engine) ForecastFares(from, to string) []FareDay {
	fromAirport := e.defaultFrom
	toAirport := e.defaultTo
	if m, ok := e.dir.Resolve(from); ok {
		fromAirport = m.Airport
	}
	if m, ok := e.dir.Resolve(to); ok {
		toAirport = m.Airport
	}

	distance := DistanceKm(fromAirport.Coordinate(), toAirport.Coordinate())
	base := baseFare(distance)
	avg := float64(base) * 1.15
	today := e.now()

	fares := make([]FareDay, 0, fareCalendarDays)
	for i := 0; i < fareCalendarDays; i++ {
		date := today.AddDate(0, 0, i)

		price := float64(base)
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			price *= 1.3
		}
		switch {
		case i < 7:
			price *= 1.5
		case i < 14:
			price *= 1.2
		case i > 21:
			price *= 0.9
		}
		price += e.float64()*50 - 25
		rounded := int(math.Round(price))

		level := FareLevelMedium
		switch {
		case float64(rounded) < avg*0.9:
			level = FareLevelLow
		case float64(rounded) > avg*1.2:
			level = FareLevelHigh
		}

		fares = append(fares, FareDay{
			Date:  date.Format("2006-01-02"),
			Price: rounded,
			Level: level,
		})
	}
	return fares
}
