package service

import (
	"context"
	"testing"
	"time"

	"trip-server/catalog"
	"trip-server/dao/redis"
	"trip-server/db"
	"trip-server/models"
)

func TestCatalogSeederService_SeedCatalog(t *testing.T) {
	// Setup
	placeDao := redis.NewRedisPlaceDAO(db.NewMockRedisClient(context.Background()))
	cat := catalog.NewDefaultCatalog()
	seeder := NewCatalogSeederService(cat, placeDao)

	// Act
	if err := seeder.SeedCatalog(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Assert: every catalog place with coordinates is indexed
	ids, err := placeDao.ListAllPlaceIDs()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(ids) != len(cat.Places()) {
		t.Errorf("Expected %d indexed places, got %d", len(cat.Places()), len(ids))
	}
}

func TestCatalogSeederService_SeedCatalog_SkipsPlacesWithoutCoords(t *testing.T) {
	placeDao := redis.NewRedisPlaceDAO(db.NewMockRedisClient(context.Background()))
	cat := catalog.NewCatalog([]models.Place{
		{ID: "a", Title: "With Coords", Category: models.CategoryTemple, Lat: 22.24, Lng: 84.86, PlaceFactor: 1.0, HasCoords: true},
		{ID: "b", Title: "No Coords", Category: models.CategoryTemple, PlaceFactor: 1.0, HasCoords: false},
	})
	seeder := NewCatalogSeederService(cat, placeDao)

	// Act
	if err := seeder.SeedCatalog(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Assert
	ids, err := placeDao.ListAllPlaceIDs()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(ids) != 1 || ids[0] != "a" {
		t.Errorf("Expected only the place with coordinates, got %v", ids)
	}
}

func TestCatalogSeederService_PruneStalePredictions(t *testing.T) {
	// Setup
	placeDao := redis.NewRedisPlaceDAO(db.NewMockRedisClient(context.Background()))
	seeder := NewCatalogSeederService(catalog.NewDefaultCatalog(), placeDao)

	stale := &models.Prediction{Place: "Hanuman Vatika", CrowdLevel: 40}
	fresh := &models.Prediction{Place: "Hanuman Vatika", CrowdLevel: 50}
	if err := placeDao.SetPrediction("religious_1", "2025-03-04", 10, stale); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := placeDao.SetPrediction("religious_1", "2025-03-05", 10, fresh); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Act: prune as of 2025-03-05
	now := time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC)
	if err := seeder.PruneStalePredictions(now); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Assert
	cached, err := placeDao.GetPrediction("religious_1", "2025-03-04", 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cached != nil {
		t.Errorf("Expected the stale prediction to be pruned")
	}

	cached, err = placeDao.GetPrediction("religious_1", "2025-03-05", 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cached == nil {
		t.Errorf("Expected the fresh prediction to survive")
	}
}
