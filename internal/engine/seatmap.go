package engine

import "fmt"

var seatColumns = []string{"A", "B", "C", "D", "E", "F"}

const (
	premiumSurcharge   = 3500
	emergencySurcharge = 2500

	seatBookedChance = 0.3
)

// rowsForClass maps a cabin class to its seat-map row count.
func rowsForClass(class CabinClass) int {
	switch class {
	case ClassFirst:
		return 4
	case ClassBusiness:
		return 8
	default:
		return 30
	}
}

// seatProfile classifies a seat position. Precedence: emergency rows beat
// premium rows beat standard, and row 1 always gets extra legroom.
func seatProfile(row int, class CabinClass) (SeatType, Legroom, int) {
	seatType := SeatStandard
	surcharge := 0
	switch {
	case row == 14 || row == 15:
		seatType, surcharge = SeatEmergency, emergencySurcharge
	case row <= 5 && class == ClassEconomy:
		seatType, surcharge = SeatPremium, premiumSurcharge
	}

	legroom := LegroomStandard
	if row == 1 || seatType == SeatEmergency {
		legroom = LegroomExtra
	}
	return seatType, legroom, surcharge
}

// GenerateSeats produces the full seat grid for a flight and cabin class:
// row-major, columns A through F within each row. Roughly 30% of seats come
// back already booked.
func (e *Engine) GenerateSeats(flightID string, class CabinClass) ([]Seat, error) {
	if flightID == "" {
		return nil, fmt.Errorf("%w: missing flight id", ErrInvalidQuery)
	}
	if _, err := ParseCabinClass(string(class)); err != nil {
		return nil, err
	}

	rows := rowsForClass(class)
	seats := make([]Seat, 0, rows*len(seatColumns))
	for row := 1; row <= rows; row++ {
		seatType, legroom, surcharge := seatProfile(row, class)
		for _, col := range seatColumns {
			status := SeatAvailable
			if e.float64() < seatBookedChance {
				status = SeatBooked
			}
			seats = append(seats, Seat{
				ID:       fmt.Sprintf("%s-%d%s", flightID, row, col),
				Row:      row,
				Column:   col,
				Type:     seatType,
				Status:   status,
				Price:    surcharge,
				Legroom:  legroom,
				IsWindow: col == "A" || col == "F",
				IsAisle:  col == "C" || col == "D",
			})
		}
	}
	return seats, nil
}
