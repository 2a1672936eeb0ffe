package dtos

import "skyward/farecast/internal/engine"

// APIResponse is the envelope for every JSON response.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
	Data         any    `json:"data,omitempty"`
}

// SearchResponse carries the synthesized offers plus resolution disclosures.
type SearchResponse struct {
	Flights     []engine.Flight     `json:"flights"`
	FromAirport engine.Airport      `json:"fromAirport"`
	ToAirport   engine.Airport      `json:"toAirport"`
	FromNearest *engine.NearestInfo `json:"fromNearestInfo,omitempty"`
	ToNearest   *engine.NearestInfo `json:"toNearestInfo,omitempty"`
}

// SeatMapResponse is the full seat grid for one flight and cabin.
type SeatMapResponse struct {
	FlightID string        `json:"flightId"`
	Class    string        `json:"classType"`
	Seats    []engine.Seat `json:"seats"`
}

// FareCalendarResponse is the 30-day forward price curve for a route.
type FareCalendarResponse struct {
	From  string           `json:"from"`
	To    string           `json:"to"`
	Fares []engine.FareDay `json:"fares"`
}

// ImportResponse reports how many airports an import loaded.
type ImportResponse struct {
	Imported int `json:"imported"`
}
