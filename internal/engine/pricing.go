package engine

import "math"

// Fare model constants: a distance-linear base fare with a floor, a cabin
// multiplier, and a lead-time urgency multiplier.
const (
	fareFloor    = 5000
	farePerKm    = 7.0
	fareNoiseMax = 100.0
)

// CabinMultiplier returns the fare multiplier for a cabin class.
func CabinMultiplier(class CabinClass) float64 {
	switch class {
	case ClassBusiness:
		return 3
	case ClassFirst:
		return 6
	default:
		return 1
	}
}

// LeadTimeMultiplier returns the urgency multiplier for a departure that is
// daysUntil days away. Buckets are half-open and the most urgent bucket wins.
func LeadTimeMultiplier(daysUntil int) float64 {
	switch {
	case daysUntil < 1:
		return 2.5
	case daysUntil < 7:
		return 1.8
	case daysUntil < 14:
		return 1.4
	case daysUntil < 30:
		return 1.1
	default:
		return 0.85
	}
}

// baseFare is the class-agnostic distance fare shared by offer pricing and
// the fare calendar.
func baseFare(distanceKm float64) int {
	fare := int(math.Round(distanceKm * farePerKm))
	if fare < fareFloor {
		return fareFloor
	}
	return fare
}

// QuoteFare prices a single offer from cabin class, lead time in days, and
// route distance. Total for any non-negative inputs; the result is always
// positive. A small random noise term is added for realism, so repeated
// quotes differ within a bounded band.
func (e *Engine) QuoteFare(class CabinClass, daysUntil int, distanceKm float64) int {
	base := float64(baseFare(distanceKm)) * CabinMultiplier(class)
	price := base*LeadTimeMultiplier(daysUntil) + e.float64()*fareNoiseMax
	return int(math.Round(price))
}
