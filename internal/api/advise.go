package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"skyward/farecast/internal/common"
	"skyward/farecast/internal/constants"
	"skyward/farecast/internal/engine"
	"skyward/farecast/internal/services"
)

// AdviseHandler handles POST /api/v1/flights/advise
//
// The body is a single flight offer as returned by search; the response is
// a buy-now or wait recommendation for it.
func AdviseHandler(svc *services.SearchService, advisor engine.Advisor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var flight engine.Flight
		if err := json.NewDecoder(r.Body).Decode(&flight); err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidFlight, http.StatusBadRequest)
			return
		}
		if flight.ID == "" || flight.Price <= 0 {
			common.RespondError(w, initTime, errors.New("flight id and a positive price are required"),
				constants.MsgInvalidFlight, http.StatusBadRequest)
			return
		}

		prediction := svc.Advise(advisor, flight)
		common.RespondSuccess(w, initTime, "Fetched Prediction", prediction)
	}
}
