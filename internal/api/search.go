package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"skyward/farecast/internal/common"
	"skyward/farecast/internal/constants"
	"skyward/farecast/internal/engine"
	"skyward/farecast/internal/models/dtos"
	"skyward/farecast/internal/services"
)

// SearchHandler handles GET /api/v1/flights/search
//
// Query parameters: from, to (free text), date (YYYY-MM-DD), class
// (economy/business/first, default economy), passengers (default 1).
// Offers are randomized per call; two identical searches return different
// results by design.
func SearchHandler(svc *services.SearchService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		query, err := parseSearchQuery(r)
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgInvalidSearch, http.StatusBadRequest)
			return
		}

		result, err := svc.Search(query)
		if err != nil {
			if errors.Is(err, engine.ErrInvalidQuery) {
				common.RespondError(w, initTime, err, constants.MsgInvalidSearch, http.StatusBadRequest)
				return
			}
			common.RespondError(w, initTime, err, constants.MsgSearchFailed)
			return
		}

		common.RespondSuccess(w, initTime, "Fetched Results", dtos.SearchResponse{
			Flights:     result.Flights,
			FromAirport: result.FromAirport,
			ToAirport:   result.ToAirport,
			FromNearest: result.FromNearest,
			ToNearest:   result.ToNearest,
		})
	}
}

func parseSearchQuery(r *http.Request) (engine.SearchQuery, error) {
	q := engine.SearchQuery{
		From:       r.URL.Query().Get("from"),
		To:         r.URL.Query().Get("to"),
		Passengers: 1,
	}

	rawClass := r.URL.Query().Get("class")
	if rawClass == "" {
		rawClass = string(engine.ClassEconomy)
	}
	class, err := engine.ParseCabinClass(rawClass)
	if err != nil {
		return q, err
	}
	q.Class = class

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		return q, errors.New("missing date parameter")
	}
	date, err := time.Parse("2006-01-02", rawDate)
	if err != nil {
		return q, errors.New("date must be formatted YYYY-MM-DD")
	}
	q.Date = date

	if raw := r.URL.Query().Get("passengers"); raw != "" {
		passengers, err := strconv.Atoi(raw)
		if err != nil {
			return q, errors.New("passengers must be an integer")
		}
		q.Passengers = passengers
	}

	return q, nil
}
