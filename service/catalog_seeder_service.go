package service

import (
	"log"
	"strings"
	"time"

	"trip-server/catalog"
	"trip-server/dao/redis"
)

// CatalogSeederService loads the place catalog into the Redis geo index and
// keeps the prediction cache from accumulating stale dates.
type CatalogSeederService struct {
	catalog  *catalog.Catalog
	placeDao *redis.RedisPlaceDAO
}

// NewCatalogSeederService constructs a seeder with its dependencies.
func NewCatalogSeederService(
	cat *catalog.Catalog,
	placeDao *redis.RedisPlaceDAO,
) *CatalogSeederService {
	return &CatalogSeederService{
		catalog:  cat,
		placeDao: placeDao,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (cs *CatalogSeederService) StartPeriodicJob(interval time.Duration) {
	go cs.startPeriodicJob(interval)
}

func (cs *CatalogSeederService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[CatalogSeederService] Running periodic catalog seeder job.")
		if err := cs.SeedCatalog(); err != nil {
			log.Printf("[CatalogSeederService] SeedCatalog returned error: %v", err)
		}
		if err := cs.PruneStalePredictions(time.Now()); err != nil {
			log.Printf("[CatalogSeederService] PruneStalePredictions returned error: %v", err)
		}
	}
}

// SeedCatalog upserts every catalog place into the geo index.
func (cs *CatalogSeederService) SeedCatalog() error {
	places := cs.catalog.Places()
	log.Printf("[CatalogSeederService] Seeding %d places into the geo index", len(places))

	for _, p := range places {
		if !p.HasCoords {
			log.Printf("[CatalogSeederService] Skipping %s: no coordinates", p.ID)
			continue
		}
		if err := cs.placeDao.UpsertPlace(p); err != nil {
			log.Printf("[CatalogSeederService] Upsert failed for %s: %v", p.ID, err)
		}
	}
	return nil
}

// PruneStalePredictions drops cached predictions for dates before today.
// Prediction keys end in "_<date>_<hour>".
func (cs *CatalogSeederService) PruneStalePredictions(now time.Time) error {
	keys, err := cs.placeDao.ListCachedPredictionKeys()
	if err != nil {
		return err
	}

	today := now.Format("2006-01-02")
	pruned := 0
	for _, key := range keys {
		parts := strings.Split(key, "_")
		if len(parts) < 2 {
			continue
		}
		date := parts[len(parts)-2]
		if date < today {
			if err := cs.placeDao.DeleteCachedPrediction(key); err != nil {
				log.Printf("[CatalogSeederService] Failed to prune %s: %v", key, err)
				continue
			}
			pruned++
		}
	}
	log.Printf("[CatalogSeederService] Pruned %d stale predictions", pruned)
	return nil
}
