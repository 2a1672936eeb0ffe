package common

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"skyward/farecast/internal/db/repositories"
	"skyward/farecast/internal/engine"
	"skyward/farecast/internal/logging"
	gormModels "skyward/farecast/internal/models/gorm"

	"github.com/google/uuid"
	gormlib "gorm.io/gorm"
)

// AirportLoaderService imports airport reference data into the directory
// table and materializes engine directories from it.
type AirportLoaderService struct {
	repo *repositories.AirportRepository
}

// RawAirportData is one record of the public airports JSON dataset.
type RawAirportData struct {
	ICAO    string  `json:"icao"`
	IATA    string  `json:"iata"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lon"`
}

// NewAirportLoaderService creates a new airport loader service
func NewAirportLoaderService(db *gormlib.DB) *AirportLoaderService {
	return &AirportLoaderService{
		repo: repositories.NewAirportRepository(db),
	}
}

// LoadFromJSON replaces the airports table with the contents of a JSON
// document keyed by ICAO code, e.g. {"KJFK": {"iata": "JFK", ...}}.
// Records without a usable code, city, or coordinates are skipped.
func (s *AirportLoaderService) LoadFromJSON(ctx context.Context, reader io.Reader) (int, error) {
	var rawData map[string]RawAirportData
	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(&rawData); err != nil {
		return 0, fmt.Errorf("failed to decode JSON: %w", err)
	}

	if len(rawData) == 0 {
		return 0, fmt.Errorf("no airport data found in JSON")
	}

	airports := make([]gormModels.Airport, 0, len(rawData))
	for _, raw := range rawData {
		code := strings.ToUpper(strings.TrimSpace(raw.IATA))
		if code == "" {
			code = strings.ToUpper(strings.TrimSpace(raw.ICAO))
		}
		city := strings.TrimSpace(raw.City)
		if code == "" || city == "" || (raw.Lat == 0 && raw.Lng == 0) {
			continue
		}

		airports = append(airports, gormModels.Airport{
			ID:        uuid.NewString(),
			Code:      code,
			City:      city,
			Country:   strings.TrimSpace(raw.Country),
			Latitude:  raw.Lat,
			Longitude: raw.Lng,
		})
	}

	if len(airports) == 0 {
		return 0, fmt.Errorf("no valid airports found after parsing")
	}

	logging.Info("Parsed airport records", "total", len(rawData), "valid", len(airports))

	if err := s.repo.DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("failed to delete existing airports: %w", err)
	}

	if err := s.repo.BatchInsert(ctx, airports); err != nil {
		return 0, fmt.Errorf("failed to insert airports: %w", err)
	}

	logging.Info("Imported airports", "count", len(airports))

	return len(airports), nil
}

// LoadFromURL fetches an airports JSON document and imports it.
func (s *AirportLoaderService) LoadFromURL(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch airports: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("failed to fetch airports: HTTP %d", resp.StatusCode)
	}

	return s.LoadFromJSON(ctx, resp.Body)
}

// Directory materializes an engine directory from the airports table.
// Returns false when the table is empty, so callers can fall back to the
// built-in world set.
func (s *AirportLoaderService) Directory(ctx context.Context) (*engine.Directory, bool, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, false, err
	}
	if len(rows) == 0 {
		return nil, false, nil
	}

	airports := make([]engine.Airport, 0, len(rows))
	for _, row := range rows {
		airports = append(airports, engine.Airport{
			Code:    row.Code,
			City:    row.City,
			Country: row.Country,
			Lat:     row.Latitude,
			Lng:     row.Longitude,
		})
	}
	return engine.NewDirectory(airports), true, nil
}
