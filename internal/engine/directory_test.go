package engine

import "testing"

func TestResolve_ExactCodeMatch(t *testing.T) {
	dir := DefaultDirectory()

	match, ok := dir.Resolve("jfk")
	if !ok {
		t.Fatal("Expected a match for jfk")
	}
	if !match.IsExactMatch {
		t.Error("Expected exact match for airport code")
	}
	if match.Airport.Code != "JFK" {
		t.Errorf("Expected JFK, got %s", match.Airport.Code)
	}
	if match.DistanceKm != 0 {
		t.Errorf("Expected zero distance for exact match, got %f", match.DistanceKm)
	}
}

func TestResolve_ExactCityMatchCaseInsensitive(t *testing.T) {
	dir := DefaultDirectory()

	match, ok := dir.Resolve("  MUMBAI ")
	if !ok {
		t.Fatal("Expected a match for Mumbai")
	}
	if !match.IsExactMatch || match.Airport.Code != "BOM" {
		t.Errorf("Expected exact BOM match, got %+v", match)
	}
}

func TestResolve_MetroAlias(t *testing.T) {
	dir := DefaultDirectory()

	match, ok := dir.Resolve("NYC")
	if !ok {
		t.Fatal("Expected a match for NYC")
	}
	if match.IsExactMatch {
		t.Error("Expected inexact match for metro alias")
	}
	if match.Airport.Code != "JFK" {
		t.Errorf("Expected nearest airport JFK, got %s", match.Airport.Code)
	}
	if match.DistanceKm <= 0 {
		t.Errorf("Expected positive nearest-match distance, got %f", match.DistanceKm)
	}
}

func TestResolve_FuzzyPartialCity(t *testing.T) {
	dir := DefaultDirectory()

	match, ok := dir.Resolve("singap")
	if !ok {
		t.Fatal("Expected a fuzzy match for singap")
	}
	if match.IsExactMatch {
		t.Error("Expected inexact match for partial city name")
	}
	if match.Airport.Code != "SIN" {
		t.Errorf("Expected SIN, got %s", match.Airport.Code)
	}
}

func TestResolve_FuzzyCityWithoutCentroid(t *testing.T) {
	dir := DefaultDirectory()

	// Frankfurt has no city-center entry; the match must still disclose a
	// non-zero distance.
	match, ok := dir.Resolve("frankf")
	if !ok {
		t.Fatal("Expected a fuzzy match for frankf")
	}
	if match.IsExactMatch {
		t.Error("Expected inexact match for partial city name")
	}
	if match.Airport.Code != "FRA" {
		t.Errorf("Expected FRA, got %s", match.Airport.Code)
	}
	if match.DistanceKm <= 0 {
		t.Errorf("Expected positive nearest-match distance, got %f", match.DistanceKm)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	dir := DefaultDirectory()

	for _, q := range []string{"JFK", "NYC", "singap", "london"} {
		first, ok1 := dir.Resolve(q)
		second, ok2 := dir.Resolve(q)
		if ok1 != ok2 {
			t.Fatalf("Resolve(%q) flipped between calls", q)
		}
		if *first != *second {
			t.Errorf("Resolve(%q) not deterministic: %+v vs %+v", q, first, second)
		}
	}
}

func TestResolve_NoPlausibleCandidate(t *testing.T) {
	dir := DefaultDirectory()

	if _, ok := dir.Resolve("zzqx"); ok {
		t.Error("Expected no match for implausible query")
	}
	if _, ok := dir.Resolve(""); ok {
		t.Error("Expected no match for empty query")
	}
}

func TestResolve_EmptyDirectory(t *testing.T) {
	dir := NewDirectory(nil)
	if _, ok := dir.Resolve("JFK"); ok {
		t.Error("Expected no match from empty directory")
	}
}

func TestNewDirectory_SkipsInvalidRecords(t *testing.T) {
	dir := NewDirectory([]Airport{
		{Code: "", City: "Nowhere", Lat: 1, Lng: 1},
		{Code: "AAA", City: "Alpha", Country: "Testland", Lat: 10, Lng: 10},
	})
	if dir.Len() != 1 {
		t.Errorf("Expected 1 valid airport, got %d", dir.Len())
	}
}
