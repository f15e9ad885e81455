package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"trip-server/db"
	"trip-server/models"
)

const PLACES_GEO_KEY_V1 = "places_geo_v1"
const PLACES_GEO_MEMBER_FORMAT_V1 = "places_geo_place_v1:%s"

// PREDICTION_KEY_FORMAT caches crowd predictions per place, date and hour.
const PREDICTION_KEY_FORMAT = "crowd_prediction_v1:%s_%s_%d"

// DAY_PLAN_KEY_FORMAT caches assembled day plans per request signature.
const DAY_PLAN_KEY_FORMAT = "day_plan_v1:%s"

// RedisPlaceDAO handles place and plan caching using Redis.
type RedisPlaceDAO struct {
	client db.RedisClient
}

// NewRedisPlaceDAO initializes a RedisPlaceDAO with the Redis client.
func NewRedisPlaceDAO(client db.RedisClient) *RedisPlaceDAO {
	return &RedisPlaceDAO{client: client}
}

// UpsertPlace stores a catalog place in the geo index with its JSON payload.
func (dao *RedisPlaceDAO) UpsertPlace(p models.Place) error {
	ctx := dao.client.GetContext()
	placeKey := fmt.Sprintf(PLACES_GEO_MEMBER_FORMAT_V1, p.ID)
	return dao.client.AddLocationWithJSON(ctx, PLACES_GEO_KEY_V1, placeKey, p.Lat, p.Lng, p)
}

// GetNearbyPlaces retrieves indexed places within a radius (km), nearest
// first.
func (dao *RedisPlaceDAO) GetNearbyPlaces(lat, lng, radiusKm float64) ([]models.NearbyPlace, error) {
	members, err := dao.client.GetLocationsWithinRadius(PLACES_GEO_KEY_V1, lat, lng, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("[RedisPlaceDAO] failed to get places: %v", err)
	}

	nearby := make([]models.NearbyPlace, 0, len(members))
	for _, m := range members {
		var p models.Place
		if err := json.Unmarshal([]byte(m.JSON), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal place JSON: %w", err)
		}
		nearby = append(nearby, models.NearbyPlace{
			ID:         p.ID,
			Title:      p.Title,
			Lat:        p.Lat,
			Lng:        p.Lng,
			DistanceKm: m.DistanceKm,
		})
	}
	return nearby, nil
}

// ListAllPlaceIDs returns all place IDs present in the geo index.
func (dao *RedisPlaceDAO) ListAllPlaceIDs() ([]string, error) {
	pattern := fmt.Sprintf(PLACES_GEO_MEMBER_FORMAT_V1, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list place geo keys: %w", err)
	}
	prefix := fmt.Sprintf(PLACES_GEO_MEMBER_FORMAT_V1, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// SetPrediction caches a crowd prediction for a place, date and hour.
func (dao *RedisPlaceDAO) SetPrediction(placeID, date string, hour int, p *models.Prediction) error {
	key := fmt.Sprintf(PREDICTION_KEY_FORMAT, placeID, date, hour)
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal prediction for place %s: %w", placeID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set prediction in redis: %w", err)
	}
	return nil
}

// GetPrediction retrieves a cached prediction. A cache miss returns nil, nil.
func (dao *RedisPlaceDAO) GetPrediction(placeID, date string, hour int) (*models.Prediction, error) {
	key := fmt.Sprintf(PREDICTION_KEY_FORMAT, placeID, date, hour)
	str, err := dao.client.Get(key)
	if err != nil {
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "nil") {
			return nil, nil // cache miss
		}
		return nil, fmt.Errorf("failed to get prediction from redis: %w", err)
	}
	var p models.Prediction
	if err := json.Unmarshal([]byte(str), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal prediction JSON: %w", err)
	}
	return &p, nil
}

// ListCachedPredictionKeys returns the keys of all cached predictions.
func (dao *RedisPlaceDAO) ListCachedPredictionKeys() ([]string, error) {
	keys, err := dao.client.Keys("crowd_prediction_v1:*")
	if err != nil {
		return nil, fmt.Errorf("failed to list prediction keys: %w", err)
	}
	return keys, nil
}

// DeleteCachedPrediction removes one cached prediction by its full key.
func (dao *RedisPlaceDAO) DeleteCachedPrediction(key string) error {
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete prediction key %s: %w", key, err)
	}
	return nil
}

// SetDayPlan caches an assembled day plan under a request signature.
func (dao *RedisPlaceDAO) SetDayPlan(signature string, plan *models.DayPlan) error {
	key := fmt.Sprintf(DAY_PLAN_KEY_FORMAT, signature)
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal day plan: %w", err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set day plan in redis: %w", err)
	}
	log.Printf("[RedisPlaceDAO] Cached day plan %s", signature)
	return nil
}

// GetDayPlan retrieves a cached day plan. A cache miss returns nil, nil.
func (dao *RedisPlaceDAO) GetDayPlan(signature string) (*models.DayPlan, error) {
	key := fmt.Sprintf(DAY_PLAN_KEY_FORMAT, signature)
	str, err := dao.client.Get(key)
	if err != nil {
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "nil") {
			return nil, nil // cache miss
		}
		return nil, fmt.Errorf("failed to get day plan from redis: %w", err)
	}
	var plan models.DayPlan
	if err := json.Unmarshal([]byte(str), &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal day plan JSON: %w", err)
	}
	return &plan, nil
}
