package api

import (
	"errors"
	"net/http"
	"time"

	"skyward/farecast/internal/common"
	"skyward/farecast/internal/constants"
	"skyward/farecast/internal/models/dtos"
)

// ImportAirportsHandler handles POST /api/v1/admin/airports/import
//
// The body is either a raw airports JSON document or, when the url query
// parameter is set, empty. Imports replace the airports table; the engine
// directory picks the new data up on the next process start.
func ImportAirportsHandler(loader *common.AirportLoaderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var (
			count int
			err   error
		)
		if url := r.URL.Query().Get("url"); url != "" {
			count, err = loader.LoadFromURL(r.Context(), url)
		} else {
			if r.Body == nil {
				common.RespondError(w, initTime, errors.New("request body or url parameter required"),
					constants.MsgImportFailed, http.StatusBadRequest)
				return
			}
			count, err = loader.LoadFromJSON(r.Context(), r.Body)
		}
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgImportFailed, http.StatusBadRequest)
			return
		}

		common.RespondSuccess(w, initTime, "Airports Imported", dtos.ImportResponse{Imported: count})
	}
}
