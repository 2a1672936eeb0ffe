package engine

import (
	"fmt"
	"strings"
	"time"
)

// CabinClass is one of the three bookable cabins.
type CabinClass string

const (
	ClassEconomy  CabinClass = "economy"
	ClassBusiness CabinClass = "business"
	ClassFirst    CabinClass = "first"
)

// ParseCabinClass validates a raw class string from a request.
func ParseCabinClass(raw string) (CabinClass, error) {
	switch CabinClass(strings.ToLower(strings.TrimSpace(raw))) {
	case ClassEconomy:
		return ClassEconomy, nil
	case ClassBusiness:
		return ClassBusiness, nil
	case ClassFirst:
		return ClassFirst, nil
	}
	return "", fmt.Errorf("%w: unknown cabin class %q", ErrInvalidQuery, raw)
}

// Coordinate is a point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Airport is an immutable reference record in the directory.
type Airport struct {
	Code    string  `json:"code"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// Coordinate returns the airport position.
func (a Airport) Coordinate() Coordinate {
	return Coordinate{Lat: a.Lat, Lng: a.Lng}
}

// SearchQuery describes one flight search request.
type SearchQuery struct {
	From       string
	To         string
	Date       time.Time
	Class      CabinClass
	Passengers int
}

// DelayRisk is an informational tag attached to an offer.
type DelayRisk string

const (
	DelayRiskLow    DelayRisk = "low"
	DelayRiskMedium DelayRisk = "medium"
	DelayRiskHigh   DelayRisk = "high"
)

// Flight is a synthesized offer. Offers are value objects: created fresh per
// search, never persisted by the engine, never mutated after creation.
type Flight struct {
	ID             string     `json:"id"`
	Airline        string     `json:"airline"`
	AirlineCode    string     `json:"airlineCode"`
	FlightNumber   string     `json:"flightNumber"`
	From           string     `json:"from"`
	FromCode       string     `json:"fromCode"`
	To             string     `json:"to"`
	ToCode         string     `json:"toCode"`
	DepartureTime  string     `json:"departureTime"`
	ArrivalTime    string     `json:"arrivalTime"`
	Duration       string     `json:"duration"`
	Price          int        `json:"price"`
	Class          CabinClass `json:"classType"`
	AvailableSeats int        `json:"availableSeats"`
	Aircraft       string     `json:"aircraft"`
	Stops          int        `json:"stops"`
	DelayRisk      DelayRisk  `json:"delayRisk"`
}

// NearestInfo discloses that a free-text location was resolved to a nearby
// airport rather than matched exactly.
type NearestInfo struct {
	OriginalQuery string  `json:"originalQuery"`
	DistanceKm    float64 `json:"distanceKm"`
}

// SearchResult is the full answer to a search query.
type SearchResult struct {
	Flights     []Flight     `json:"flights"`
	FromAirport Airport      `json:"fromAirport"`
	ToAirport   Airport      `json:"toAirport"`
	FromNearest *NearestInfo `json:"fromNearestInfo,omitempty"`
	ToNearest   *NearestInfo `json:"toNearestInfo,omitempty"`
}

type SeatType string

const (
	SeatStandard  SeatType = "standard"
	SeatPremium   SeatType = "premium"
	SeatEmergency SeatType = "emergency"
)

type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatBooked    SeatStatus = "booked"
)

type Legroom string

const (
	LegroomStandard Legroom = "standard"
	LegroomExtra    Legroom = "extra"
)

// Seat is one cell of a generated seat map.
type Seat struct {
	ID       string     `json:"id"`
	Row      int        `json:"row"`
	Column   string     `json:"column"`
	Type     SeatType   `json:"type"`
	Status   SeatStatus `json:"status"`
	Price    int        `json:"price"`
	Legroom  Legroom    `json:"legroom"`
	IsWindow bool       `json:"isWindow"`
	IsAisle  bool       `json:"isAisle"`
}

type FareLevel string

const (
	FareLevelLow    FareLevel = "low"
	FareLevelMedium FareLevel = "medium"
	FareLevelHigh   FareLevel = "high"
)

// FareDay is one point on the 30-day fare calendar.
type FareDay struct {
	Date  string    `json:"date"`
	Price int       `json:"price"`
	Level FareLevel `json:"level"`
}

// PredictionAction is the advisor's verdict for a single offer.
type PredictionAction string

const (
	ActionBuyNow     PredictionAction = "BUY_NOW"
	ActionWait       PredictionAction = "WAIT"
	ActionRisingSoon PredictionAction = "RISING_SOON"
)

// PricePrediction classifies an offer as a buy-now or wait opportunity.
// PredictedSavings is nil when the model has no savings estimate to report.
type PricePrediction struct {
	Action           PredictionAction `json:"action"`
	Confidence       int              `json:"confidence"`
	Reason           string           `json:"reason"`
	PredictedSavings *int             `json:"predictedSavings,omitempty"`
}
