package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"skyward/farecast/internal/common"
	"skyward/farecast/internal/constants"
	"skyward/farecast/internal/models/dtos"
	"skyward/farecast/internal/services"
)

// FareCalendarHandler handles GET /api/v1/fares/calendar?from=&to=
func FareCalendarHandler(svc *services.FareCalendarService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		from := strings.TrimSpace(r.URL.Query().Get("from"))
		to := strings.TrimSpace(r.URL.Query().Get("to"))
		if from == "" || to == "" {
			common.RespondError(w, initTime, errors.New("from and to parameters are required"),
				constants.MsgInvalidSearch, http.StatusBadRequest)
			return
		}

		fares, err := svc.GetCalendar(from, to)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgSearchFailed)
			return
		}

		common.RespondSuccess(w, initTime, "Fetched Fare Calendar", dtos.FareCalendarResponse{
			From:  from,
			To:    to,
			Fares: fares,
		})
	}
}
