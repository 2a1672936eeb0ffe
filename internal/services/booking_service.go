package services

import (
	"context"
	"errors"
	"fmt"

	"skyward/farecast/internal/constants"
	"skyward/farecast/internal/db/repositories"
	"skyward/farecast/internal/engine"
	"skyward/farecast/internal/metrics"
	"skyward/farecast/internal/models/dtos"
	"skyward/farecast/internal/models/entities"

	"github.com/google/uuid"
)

// ErrInvalidBooking marks a booking payload the caller must fix.
var ErrInvalidBooking = errors.New("invalid booking")

// BookingService persists confirmed offers. Offers themselves are ephemeral;
// a booking stores a snapshot of the one the passenger picked.
type BookingService struct {
	repo       *repositories.BookingRepository
	metricsReg *metrics.MetricsRegistry
}

func NewBookingService(repo *repositories.BookingRepository, metricsReg *metrics.MetricsRegistry) *BookingService {
	return &BookingService{
		repo:       repo,
		metricsReg: metricsReg,
	}
}

// CreateBooking validates and stores a new booking in the pending state.
func (svc *BookingService) CreateBooking(ctx context.Context, req *dtos.CreateBookingRequest) (*entities.Booking, error) {
	if err := validateBookingRequest(req); err != nil {
		return nil, err
	}

	details := req.PassengerDetails
	if len(details) == 0 {
		details = []byte("[]")
	}

	booking := &entities.Booking{
		ID:               uuid.NewString(),
		FlightID:         req.FlightID,
		Airline:          req.Airline,
		FlightNumber:     req.FlightNumber,
		Origin:           req.Origin,
		Destination:      req.Destination,
		DepartureTime:    req.DepartureTime,
		ArrivalTime:      req.ArrivalTime,
		ClassType:        req.ClassType,
		PassengerCount:   req.PassengerCount,
		PassengerDetails: details,
		TotalPrice:       req.TotalPrice,
		Status:           constants.BookingStatusPending,
	}

	if err := svc.repo.InsertBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	svc.metricsReg.BookingsTotal.WithLabelValues(booking.Status).Inc()
	return booking, nil
}

// GetBooking fetches one booking by id.
func (svc *BookingService) GetBooking(ctx context.Context, id string) (*entities.Booking, error) {
	return svc.repo.FindByID(ctx, id)
}

// ListBookings returns all bookings, newest first.
func (svc *BookingService) ListBookings(ctx context.Context) ([]entities.Booking, error) {
	return svc.repo.ListAll(ctx)
}

// UpdateStatus moves a booking to confirmed or cancelled.
func (svc *BookingService) UpdateStatus(ctx context.Context, id, status string) error {
	switch status {
	case constants.BookingStatusConfirmed, constants.BookingStatusCancelled:
	default:
		return fmt.Errorf("%w: status must be %s or %s", ErrInvalidBooking,
			constants.BookingStatusConfirmed, constants.BookingStatusCancelled)
	}

	if err := svc.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	svc.metricsReg.BookingsTotal.WithLabelValues(status).Inc()
	return nil
}

func validateBookingRequest(req *dtos.CreateBookingRequest) error {
	if req.FlightID == "" {
		return fmt.Errorf("%w: missing flight id", ErrInvalidBooking)
	}
	if req.Origin == "" || req.Destination == "" {
		return fmt.Errorf("%w: missing origin or destination", ErrInvalidBooking)
	}
	if req.PassengerCount < 1 {
		return fmt.Errorf("%w: passenger count must be positive, got %d", ErrInvalidBooking, req.PassengerCount)
	}
	if req.TotalPrice <= 0 {
		return fmt.Errorf("%w: total price must be positive, got %d", ErrInvalidBooking, req.TotalPrice)
	}
	if _, err := engine.ParseCabinClass(req.ClassType); err != nil {
		return fmt.Errorf("%w: unknown cabin class %q", ErrInvalidBooking, req.ClassType)
	}
	return nil
}
