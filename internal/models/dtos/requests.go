package dtos

import "encoding/json"

// CreateBookingRequest persists a confirmed offer for a passenger party.
// The flight fields are a snapshot of the synthesized offer the user picked;
// offers themselves are never stored.
type CreateBookingRequest struct {
	FlightID         string          `json:"flightId"`
	Airline          string          `json:"airline"`
	FlightNumber     string          `json:"flightNumber"`
	Origin           string          `json:"origin"`
	Destination      string          `json:"destination"`
	DepartureTime    string          `json:"departureTime"`
	ArrivalTime      string          `json:"arrivalTime"`
	ClassType        string          `json:"classType"`
	PassengerCount   int             `json:"passengerCount"`
	PassengerDetails json.RawMessage `json:"passengerDetails"`
	TotalPrice       int             `json:"totalPrice"`
}
