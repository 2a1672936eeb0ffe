package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"skyward/farecast/internal/common"
	"skyward/farecast/internal/constants"
	"skyward/farecast/internal/db/repositories"
	"skyward/farecast/internal/models/dtos"
	"skyward/farecast/internal/services"

	"github.com/go-chi/chi/v5"
)

// CreateBookingHandler handles POST /api/v1/bookings
func CreateBookingHandler(svc *services.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidBooking, http.StatusBadRequest)
			return
		}

		booking, err := svc.CreateBooking(r.Context(), &req)
		if err != nil {
			if errors.Is(err, services.ErrInvalidBooking) {
				common.RespondError(w, initTime, err, constants.MsgInvalidBooking, http.StatusBadRequest)
				return
			}
			common.RespondError(w, initTime, err, constants.MsgBookingFailed)
			return
		}

		common.RespondSuccess(w, initTime, "Booking Created", booking, http.StatusCreated)
	}
}

// GetBookingHandler handles GET /api/v1/bookings/{booking_id}
func GetBookingHandler(svc *services.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id := chi.URLParam(r, "booking_id")
		booking, err := svc.GetBooking(r.Context(), id)
		if err != nil {
			if errors.Is(err, repositories.ErrBookingNotFound) {
				common.RespondError(w, initTime, err, constants.MsgBookingNotFound, http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, constants.MsgBookingFailed)
			return
		}

		common.RespondSuccess(w, initTime, "Fetched Booking", booking)
	}
}

// ListBookingsHandler handles GET /api/v1/bookings
func ListBookingsHandler(svc *services.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		bookings, err := svc.ListBookings(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgBookingFailed)
			return
		}

		common.RespondSuccess(w, initTime, "Fetched Bookings", bookings)
	}
}

// UpdateBookingStatusHandler handles PATCH /api/v1/bookings/{booking_id}/status
func UpdateBookingStatusHandler(svc *services.BookingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id := chi.URLParam(r, "booking_id")

		var body struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidBooking, http.StatusBadRequest)
			return
		}

		if err := svc.UpdateStatus(r.Context(), id, body.Status); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidBooking):
				common.RespondError(w, initTime, err, constants.MsgInvalidBooking, http.StatusBadRequest)
			case errors.Is(err, repositories.ErrBookingNotFound):
				common.RespondError(w, initTime, err, constants.MsgBookingNotFound, http.StatusNotFound)
			default:
				common.RespondError(w, initTime, err, constants.MsgBookingFailed)
			}
			return
		}

		common.RespondSuccess(w, initTime, "Booking Updated", map[string]string{
			"id":     id,
			"status": body.Status,
		})
	}
}
