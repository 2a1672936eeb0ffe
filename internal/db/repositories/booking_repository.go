package repositories

import (
	"context"
	"database/sql"
	"errors"

	"skyward/farecast/internal/constants"
	"skyward/farecast/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// ErrBookingNotFound is returned when a booking id does not exist.
var ErrBookingNotFound = errors.New("booking not found")

type BookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db}
}

// InsertBooking persists a booking snapshot and fills in the generated
// timestamp.
func (r *BookingRepository) InsertBooking(ctx context.Context, booking *entities.Booking) error {
	return r.db.QueryRowxContext(ctx, constants.InsertBooking,
		booking.ID,
		booking.FlightID,
		booking.Airline,
		booking.FlightNumber,
		booking.Origin,
		booking.Destination,
		booking.DepartureTime,
		booking.ArrivalTime,
		booking.ClassType,
		booking.PassengerCount,
		booking.PassengerDetails,
		booking.TotalPrice,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt)
}

// FindByID fetches one booking.
func (r *BookingRepository) FindByID(ctx context.Context, id string) (*entities.Booking, error) {
	var booking entities.Booking

	err := r.db.QueryRowxContext(ctx, constants.GetBookingByID, id).StructScan(&booking)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &booking, nil
}

// ListAll returns every booking, newest first.
func (r *BookingRepository) ListAll(ctx context.Context) ([]entities.Booking, error) {
	bookings := []entities.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, constants.ListBookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatus moves a booking between lifecycle states.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.db.ExecContext(ctx, constants.UpdateBookingStatus, id, status)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrBookingNotFound
	}
	return nil
}
