package engine

import (
	"errors"
	"strconv"
	"testing"
)

func TestGenerateSeats_RowCounts(t *testing.T) {
	e := newTestEngine(t, 29)

	cases := []struct {
		class CabinClass
		rows  int
	}{
		{ClassEconomy, 30},
		{ClassBusiness, 8},
		{ClassFirst, 4},
	}
	for _, c := range cases {
		seats, err := e.GenerateSeats("f1", c.class)
		if err != nil {
			t.Fatalf("%s: expected no error, got %v", c.class, err)
		}
		if want := c.rows * 6; len(seats) != want {
			t.Errorf("%s: expected %d seats, got %d", c.class, want, len(seats))
		}
		if last := seats[len(seats)-1]; last.Row != c.rows || last.Column != "F" {
			t.Errorf("%s: expected last seat %dF, got %d%s", c.class, c.rows, last.Row, last.Column)
		}
	}
}

func TestGenerateSeats_RowMajorOrdering(t *testing.T) {
	e := newTestEngine(t, 31)

	seats, err := e.GenerateSeats("f1", ClassBusiness)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F"}
	for i, s := range seats {
		wantRow := i/6 + 1
		wantCol := columns[i%6]
		if s.Row != wantRow || s.Column != wantCol {
			t.Fatalf("Seat %d: expected %d%s, got %d%s", i, wantRow, wantCol, s.Row, s.Column)
		}
		if s.ID != "f1-"+strconv.Itoa(wantRow)+wantCol {
			t.Errorf("Seat %d: unexpected id %s", i, s.ID)
		}
	}
}

func TestGenerateSeats_WindowAisleFlags(t *testing.T) {
	e := newTestEngine(t, 37)

	seats, err := e.GenerateSeats("f1", ClassEconomy)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for _, s := range seats {
		if s.IsWindow && s.IsAisle {
			t.Fatalf("Seat %s is both window and aisle", s.ID)
		}
		switch s.Column {
		case "A", "F":
			if !s.IsWindow {
				t.Errorf("Seat %s in column %s must be a window seat", s.ID, s.Column)
			}
		case "C", "D":
			if !s.IsAisle {
				t.Errorf("Seat %s in column %s must be an aisle seat", s.ID, s.Column)
			}
		default:
			if s.IsWindow || s.IsAisle {
				t.Errorf("Seat %s in column %s must be neither window nor aisle", s.ID, s.Column)
			}
		}
	}
}

func TestGenerateSeats_TypeAndLegroomRules(t *testing.T) {
	e := newTestEngine(t, 41)

	seats, err := e.GenerateSeats("f1", ClassEconomy)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for _, s := range seats {
		switch {
		case s.Row == 14 || s.Row == 15:
			if s.Type != SeatEmergency || s.Legroom != LegroomExtra || s.Price != emergencySurcharge {
				t.Errorf("Row %d: expected emergency/extra/%d, got %s/%s/%d", s.Row, emergencySurcharge, s.Type, s.Legroom, s.Price)
			}
		case s.Row <= 5:
			if s.Type != SeatPremium || s.Price != premiumSurcharge {
				t.Errorf("Row %d: expected premium economy seat, got %s/%d", s.Row, s.Type, s.Price)
			}
		default:
			if s.Type != SeatStandard || s.Price != 0 {
				t.Errorf("Row %d: expected standard seat with no surcharge, got %s/%d", s.Row, s.Type, s.Price)
			}
		}
		if s.Row == 1 && s.Legroom != LegroomExtra {
			t.Errorf("Row 1 seat %s must have extra legroom", s.ID)
		}
	}
}

func TestGenerateSeats_PremiumIsEconomyOnly(t *testing.T) {
	e := newTestEngine(t, 43)

	for _, class := range []CabinClass{ClassBusiness, ClassFirst} {
		seats, err := e.GenerateSeats("f1", class)
		if err != nil {
			t.Fatalf("%s: expected no error, got %v", class, err)
		}
		for _, s := range seats {
			if s.Type == SeatPremium {
				t.Errorf("%s: premium seats only apply to economy, found %s", class, s.ID)
			}
		}
	}
}

func TestGenerateSeats_FirstClassGrid(t *testing.T) {
	e := newTestEngine(t, 47)

	seats, err := e.GenerateSeats("f1", ClassFirst)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(seats) != 24 {
		t.Fatalf("Expected 24 first-class seats, got %d", len(seats))
	}
	for _, s := range seats {
		if s.Row == 1 && s.Legroom != LegroomExtra {
			t.Errorf("First-class row 1 seat %s must have extra legroom", s.ID)
		}
	}
}

func TestGenerateSeats_StatusValues(t *testing.T) {
	e := newTestEngine(t, 53)

	seats, err := e.GenerateSeats("f1", ClassEconomy)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	booked := 0
	for _, s := range seats {
		switch s.Status {
		case SeatBooked:
			booked++
		case SeatAvailable:
		default:
			t.Fatalf("Unexpected seat status %q", s.Status)
		}
	}
	if booked == 0 || booked == len(seats) {
		t.Errorf("Expected a mix of booked and available seats, got %d/%d booked", booked, len(seats))
	}
}

func TestGenerateSeats_RejectsBadInput(t *testing.T) {
	e := newTestEngine(t, 59)

	if _, err := e.GenerateSeats("", ClassEconomy); !errors.Is(err, ErrInvalidQuery) {
		t.Errorf("Expected ErrInvalidQuery for empty flight id, got %v", err)
	}
	if _, err := e.GenerateSeats("f1", "luxury"); !errors.Is(err, ErrInvalidQuery) {
		t.Errorf("Expected ErrInvalidQuery for unknown class, got %v", err)
	}
}
