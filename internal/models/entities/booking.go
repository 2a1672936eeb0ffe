package entities

import (
	"encoding/json"
	"time"
)

// Booking is a persisted reservation row. Unlike synthesized offers, a
// booking survives the search that produced it.
type Booking struct {
	ID               string          `db:"id" json:"id"`
	FlightID         string          `db:"flight_id" json:"flightId"`
	Airline          string          `db:"airline" json:"airline"`
	FlightNumber     string          `db:"flight_number" json:"flightNumber"`
	Origin           string          `db:"origin" json:"origin"`
	Destination      string          `db:"destination" json:"destination"`
	DepartureTime    string          `db:"departure_time" json:"departureTime"`
	ArrivalTime      string          `db:"arrival_time" json:"arrivalTime"`
	ClassType        string          `db:"class_type" json:"classType"`
	PassengerCount   int             `db:"passenger_count" json:"passengerCount"`
	PassengerDetails json.RawMessage `db:"passenger_details" json:"passengerDetails"`
	TotalPrice       int             `db:"total_price" json:"totalPrice"`
	Status           string          `db:"status" json:"status"`
	CreatedAt        time.Time       `db:"created_at" json:"createdAt"`
}
