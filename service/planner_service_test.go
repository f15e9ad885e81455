package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"trip-server/catalog"
	"trip-server/dao/redis"
	"trip-server/db"
	"trip-server/features"
	"trip-server/geo"
	"trip-server/models"
	"trip-server/predict"
	"trip-server/weather"
)

func newTestPlanner(t *testing.T) (*PlannerService, *redis.RedisPlaceDAO) {
	t.Helper()

	cat := catalog.NewDefaultCatalog()
	placeDao := redis.NewRedisPlaceDAO(db.NewMockRedisClient(context.Background()))
	predictor := predict.NewPredictor(cat, features.NewBuilder(cat), predict.NewBaselineModel())
	planner := NewPlannerService(cat, geo.NewFinder(cat), predictor, weather.NewService(nil), placeDao)
	return planner, placeDao
}

func TestPlannerService_PlanDay_FullPipeline(t *testing.T) {
	// Setup
	planner, _ := newTestPlanner(t)
	req := PlanRequest{
		Lat:           22.2396,
		Lng:           84.8633,
		Date:          time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		RadiusKm:      6.0,
		IncludeNearby: true,
	}

	// Act
	plan, err := planner.PlanDay(req)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if plan.PlanID == "" {
		t.Errorf("Expected a plan id")
	}
	if plan.Date != "2025-03-05" {
		t.Errorf("Expected date 2025-03-05, got %s", plan.Date)
	}
	if plan.WeatherSummary == "" {
		t.Errorf("Expected a weather summary")
	}
	if len(plan.Schedule) == 0 {
		t.Fatalf("Expected a non-empty schedule")
	}
	if len(plan.Schedule) > 4 {
		t.Errorf("Expected at most 4 stops by default, got %d", len(plan.Schedule))
	}
	for i, stop := range plan.Schedule {
		if stop.Order != i+1 {
			t.Errorf("Expected contiguous stop orders, got %d at position %d", stop.Order, i)
		}
		if stop.Place == "" || stop.Time == "" {
			t.Errorf("Expected a place and time on every stop, got %+v", stop)
		}
	}
	if plan.Schedule[0].TravelMinFromPrev != nil {
		t.Errorf("Expected no travel annotation for the first stop")
	}
	for _, stop := range plan.Schedule[1:] {
		if stop.TravelMinFromPrev == nil {
			t.Errorf("Expected travel annotations after the first stop")
		} else if *stop.TravelMinFromPrev < 0 {
			t.Errorf("Expected non-negative travel minutes, got %d", *stop.TravelMinFromPrev)
		}
	}
	if len(plan.NearbyPlaces) == 0 {
		t.Errorf("Expected nearby places when requested")
	}
}

func TestPlannerService_PlanDay_ServedFromCache(t *testing.T) {
	planner, _ := newTestPlanner(t)
	req := PlanRequest{
		Lat:      22.2396,
		Lng:      84.8633,
		Date:     time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		RadiusKm: 6.0,
	}

	// Act
	first, err := planner.PlanDay(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := planner.PlanDay(req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Assert: the second call returns the cached plan, not a rebuilt one
	if first.PlanID != second.PlanID {
		t.Errorf("Expected the cached plan id %s, got %s", first.PlanID, second.PlanID)
	}
}

func TestPlannerService_PlanDay_DegenerateRadius(t *testing.T) {
	planner, _ := newTestPlanner(t)
	req := PlanRequest{
		Lat:           22.2396,
		Lng:           84.8633,
		Date:          time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		RadiusKm:      0,
		IncludeNearby: true,
	}

	// Act
	plan, err := planner.PlanDay(req)

	// Assert: no candidates is an empty plan, not an error
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(plan.Schedule) != 0 {
		t.Errorf("Expected an empty schedule for radius 0, got %d stops", len(plan.Schedule))
	}
	if len(plan.NearbyPlaces) != 0 {
		t.Errorf("Expected no nearby places for radius 0, got %d", len(plan.NearbyPlaces))
	}
	if plan.WeatherSummary == "" {
		t.Errorf("Expected the weather summary even with no stops")
	}
}

func TestPlannerService_PlanDay_MaxStopsOne(t *testing.T) {
	planner, _ := newTestPlanner(t)
	req := PlanRequest{
		Lat:      22.2396,
		Lng:      84.8633,
		Date:     time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		RadiusKm: 6.0,
		MaxStops: 1,
	}

	plan, err := planner.PlanDay(req)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(plan.Schedule) != 1 {
		t.Errorf("Expected exactly 1 stop, got %d", len(plan.Schedule))
	}
}

func TestPlannerService_PredictCrowd_CachesResult(t *testing.T) {
	// Setup
	planner, placeDao := newTestPlanner(t)
	date := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	// Act
	first, err := planner.PredictCrowd("Hanuman Vatika", date, 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := planner.PredictCrowd("religious_1", date, 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Assert: title and id share one cache entry
	if first.CrowdLevel != second.CrowdLevel || first.Datetime != second.Datetime {
		t.Errorf("Expected the cached prediction, got %+v and %+v", first, second)
	}
	keys, err := placeDao.ListCachedPredictionKeys()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(keys) != 1 {
		t.Errorf("Expected exactly 1 cached prediction, got %d", len(keys))
	}
}

func TestPlannerService_PredictCrowd_UnknownPlace(t *testing.T) {
	planner, _ := newTestPlanner(t)

	_, err := planner.PredictCrowd("Atlantis", time.Now(), 10)

	if err == nil {
		t.Fatalf("Expected an error, got nil")
	}
	var unknown *models.UnknownPlaceError
	if !errors.As(err, &unknown) {
		t.Errorf("Expected UnknownPlaceError, got %T", err)
	}
}

func TestPlannerService_GetNearbyPlaces_UsesGeoIndex(t *testing.T) {
	// Setup: the endpoint reads the Redis geo index, so seed it first
	planner, placeDao := newTestPlanner(t)
	seeder := NewCatalogSeederService(catalog.NewDefaultCatalog(), placeDao)
	if err := seeder.SeedCatalog(); err != nil {
		t.Fatalf("Expected no error seeding, got %v", err)
	}

	// Act
	nearby, err := planner.GetNearbyPlaces(22.2396, 84.8633, 6.0)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(nearby) == 0 {
		t.Fatalf("Expected indexed places within 6 km")
	}
	for i := 1; i < len(nearby); i++ {
		if nearby[i-1].DistanceKm > nearby[i].DistanceKm {
			t.Errorf("Expected nearest-first ordering")
		}
	}
}
