package api

import (
	"errors"
	"net/http"
	"time"

	"skyward/farecast/internal/common"
	"skyward/farecast/internal/constants"
	"skyward/farecast/internal/engine"
	"skyward/farecast/internal/models/dtos"
	"skyward/farecast/internal/services"

	"github.com/go-chi/chi/v5"
)

// SeatMapHandler handles GET /api/v1/flights/{flight_id}/seats
//
// The class query parameter selects the cabin layout (default economy).
func SeatMapHandler(svc *services.SearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		flightID := chi.URLParam(r, "flight_id")

		rawClass := r.URL.Query().Get("class")
		if rawClass == "" {
			rawClass = string(engine.ClassEconomy)
		}
		class, err := engine.ParseCabinClass(rawClass)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidSeatMap, http.StatusBadRequest)
			return
		}

		seats, err := svc.SeatMap(flightID, class)
		if err != nil {
			if errors.Is(err, engine.ErrInvalidQuery) {
				common.RespondError(w, initTime, err, constants.MsgInvalidSeatMap, http.StatusBadRequest)
				return
			}
			common.RespondError(w, initTime, err, constants.MsgInvalidSeatMap)
			return
		}

		common.RespondSuccess(w, initTime, "Fetched Seat Map", dtos.SeatMapResponse{
			FlightID: flightID,
			Class:    string(class),
			Seats:    seats,
		})
	}
}
