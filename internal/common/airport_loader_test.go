package common

import (
	"context"
	"strings"
	"testing"

	gormModels "skyward/farecast/internal/models/gorm"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&gormModels.Airport{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

const sampleAirportsJSON = `{
	"KJFK": {"icao": "KJFK", "iata": "JFK", "name": "John F Kennedy Intl", "city": "New York", "country": "US", "lat": 40.6398, "lon": -73.7789},
	"EGLL": {"icao": "EGLL", "iata": "LHR", "name": "Heathrow", "city": "London", "country": "GB", "lat": 51.4706, "lon": -0.4619},
	"XXXX": {"icao": "XXXX", "iata": "", "name": "No Coords", "city": "Nowhere", "country": "ZZ", "lat": 0, "lon": 0},
	"YYYY": {"icao": "", "iata": "", "name": "No Code", "city": "Lost", "country": "ZZ", "lat": 10, "lon": 10}
}`

func TestAirportLoader_LoadFromJSON(t *testing.T) {
	db := setupTestDB(t)
	loader := NewAirportLoaderService(db)
	ctx := context.Background()

	count, err := loader.LoadFromJSON(ctx, strings.NewReader(sampleAirportsJSON))
	if err != nil {
		t.Fatalf("LoadFromJSON failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 valid airports, got %d", count)
	}

	ap, err := loader.repo.FindByCode(ctx, "jfk")
	if err != nil {
		t.Fatalf("FindByCode failed: %v", err)
	}
	if ap == nil {
		t.Fatal("Expected JFK to be imported")
	}
	if ap.City != "New York" {
		t.Errorf("Expected city New York, got %s", ap.City)
	}
	if ap.ID == "" {
		t.Error("Expected a generated id")
	}
}

func TestAirportLoader_LoadFromJSON_ReplacesExisting(t *testing.T) {
	db := setupTestDB(t)
	loader := NewAirportLoaderService(db)
	ctx := context.Background()

	if _, err := loader.LoadFromJSON(ctx, strings.NewReader(sampleAirportsJSON)); err != nil {
		t.Fatalf("First import failed: %v", err)
	}

	second := `{"VIDP": {"icao": "VIDP", "iata": "DEL", "name": "Indira Gandhi Intl", "city": "New Delhi", "country": "IN", "lat": 28.5665, "lon": 77.1031}}`
	count, err := loader.LoadFromJSON(ctx, strings.NewReader(second))
	if err != nil {
		t.Fatalf("Second import failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 airport, got %d", count)
	}

	total, err := loader.repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if total != 1 {
		t.Errorf("Expected import to replace table, found %d rows", total)
	}
}

func TestAirportLoader_LoadFromJSON_Invalid(t *testing.T) {
	db := setupTestDB(t)
	loader := NewAirportLoaderService(db)
	ctx := context.Background()

	if _, err := loader.LoadFromJSON(ctx, strings.NewReader("not json")); err == nil {
		t.Error("Expected error for malformed JSON")
	}
	if _, err := loader.LoadFromJSON(ctx, strings.NewReader("{}")); err == nil {
		t.Error("Expected error for empty document")
	}
}

func TestAirportLoader_Directory(t *testing.T) {
	db := setupTestDB(t)
	loader := NewAirportLoaderService(db)
	ctx := context.Background()

	dir, ok, err := loader.Directory(ctx)
	if err != nil {
		t.Fatalf("Directory failed: %v", err)
	}
	if ok || dir != nil {
		t.Error("Expected empty table to report no directory")
	}

	if _, err := loader.LoadFromJSON(ctx, strings.NewReader(sampleAirportsJSON)); err != nil {
		t.Fatalf("LoadFromJSON failed: %v", err)
	}

	dir, ok, err = loader.Directory(ctx)
	if err != nil {
		t.Fatalf("Directory failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected a directory after import")
	}
	if dir.Len() != 2 {
		t.Errorf("Expected 2 airports in directory, got %d", dir.Len())
	}
	if _, found := dir.ByCode("LHR"); !found {
		t.Error("Expected LHR in materialized directory")
	}
}
