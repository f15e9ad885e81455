package db

import "context"

// GeoMember is one geo-radius hit: the member's JSON payload and its
// distance from the query center.
type GeoMember struct {
	JSON       string
	DistanceKm float64
}

// RedisClient defines the methods the DAOs need from Redis
type RedisClient interface {
	Set(key, value string) error
	Get(key string) (string, error)
	AddLocationWithJSON(ctx context.Context, geoKey, memberKey string, lat, lng float64, data interface{}) error
	GetLocationsWithinRadius(key string, lat, lng, radiusKm float64) ([]GeoMember, error)
	GetContext() context.Context
	Ping() error
	Keys(pattern string) ([]string, error)
	Del(key string) error
}
