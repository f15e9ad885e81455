package geo

import (
	"math"
	"testing"

	"trip-server/catalog"
	"trip-server/config"
	"trip-server/models"
)

func TestHaversineKm_Basics(t *testing.T) {
	// Zero distance for identical points
	if d := HaversineKm(22.2396, 84.8633, 22.2396, 84.8633); d != 0 {
		t.Errorf("Expected zero distance, got %v", d)
	}

	// Symmetry
	d1 := HaversineKm(22.2396, 84.8633, 22.2496, 84.8820)
	d2 := HaversineKm(22.2496, 84.8820, 22.2396, 84.8633)
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("Expected symmetric distance, got %v and %v", d1, d2)
	}

	// City center to Hanuman Vatika is roughly 2.2 km
	if d1 < 1.5 || d1 > 3.0 {
		t.Errorf("Expected distance between 1.5 and 3.0 km, got %v", d1)
	}
}

func TestFinder_FindNearby_OrderedWithinRadius(t *testing.T) {
	// Setup
	finder := NewFinder(catalog.NewDefaultCatalog())

	// Act
	results := finder.FindNearby(config.CITY_CENTER_LAT, config.CITY_CENTER_LNG, 6.0, 0)

	// Assert
	if len(results) == 0 {
		t.Fatalf("Expected places within 6 km of the city center, got none")
	}
	for i, r := range results {
		if r.DistanceKm > 6.0 {
			t.Errorf("Expected distance <= 6.0, got %v for %s", r.DistanceKm, r.Place.Title)
		}
		if i > 0 && results[i-1].DistanceKm > r.DistanceKm {
			t.Errorf("Expected ascending distances, got %v before %v",
				results[i-1].DistanceKm, r.DistanceKm)
		}
	}
}

func TestFinder_FindNearby_DegenerateRadius(t *testing.T) {
	finder := NewFinder(catalog.NewDefaultCatalog())

	if got := finder.FindNearby(config.CITY_CENTER_LAT, config.CITY_CENTER_LNG, 0, 0); len(got) != 0 {
		t.Errorf("Expected empty result for radius 0, got %d places", len(got))
	}
	if got := finder.FindNearby(config.CITY_CENTER_LAT, config.CITY_CENTER_LNG, -3, 0); len(got) != 0 {
		t.Errorf("Expected empty result for negative radius, got %d places", len(got))
	}
}

func TestFinder_FindNearby_LimitTruncates(t *testing.T) {
	finder := NewFinder(catalog.NewDefaultCatalog())

	results := finder.FindNearby(config.CITY_CENTER_LAT, config.CITY_CENTER_LNG, 50.0, 2)

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].DistanceKm > results[1].DistanceKm {
		t.Errorf("Expected the nearest places to survive truncation")
	}
}

func TestFinder_FindNearby_SkipsPlacesWithoutCoords(t *testing.T) {
	// Setup: one valid place, one with no coordinates
	cat := catalog.NewCatalog([]models.Place{
		{ID: "a", Title: "With Coords", Category: models.CategoryTemple, Lat: 22.24, Lng: 84.86, PlaceFactor: 1.0, HasCoords: true},
		{ID: "b", Title: "No Coords", Category: models.CategoryTemple, PlaceFactor: 1.0, HasCoords: false},
	})
	finder := NewFinder(cat)

	// Act
	results := finder.FindNearby(22.24, 84.86, 10.0, 0)

	// Assert
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Place.ID != "a" {
		t.Errorf("Expected place 'a', got %s", results[0].Place.ID)
	}
}

func TestTravelMinutes(t *testing.T) {
	a := models.Place{ID: "a", Lat: 0, Lng: 0, HasCoords: true}
	b := models.Place{ID: "b", Lat: 0.009, Lng: 0, HasCoords: true} // ~1.0 km
	noCoords := models.Place{ID: "c", HasCoords: false}

	// ~1 km at 20 km/h is just over 3 minutes; travel rounds up.
	tm := TravelMinutes(a, b, 20.0)
	if tm == nil {
		t.Fatalf("Expected travel minutes, got nil")
	}
	if *tm != 4 {
		t.Errorf("Expected 4 minutes, got %d", *tm)
	}

	// Zero distance
	tm = TravelMinutes(a, a, 20.0)
	if tm == nil || *tm != 0 {
		t.Errorf("Expected 0 minutes for the same place, got %v", tm)
	}

	// Missing coordinates
	if tm := TravelMinutes(a, noCoords, 20.0); tm != nil {
		t.Errorf("Expected nil for a place without coordinates, got %d", *tm)
	}
}
