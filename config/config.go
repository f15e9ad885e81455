package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Weather API config
const WEATHER_API_ENDPOINT_BASE_V1 = "https://api.weatherapi.com/v1"
const WEATHER_API_TIMEOUT_SECONDS = 10
const WEATHER_API_KEY_ENV = "WEATHER_API_KEY"

// City-center reference point (Rourkela) used when a request omits a start
// position for route ordering.
const CITY_CENTER_LAT = 22.2396
const CITY_CENTER_LNG = 84.8633

// Planner defaults
const DEFAULT_RADIUS_KM = 6.0
const DEFAULT_MAX_STOPS = 4
const DEFAULT_DWELL_MINUTES = 60
const DEFAULT_TRAVEL_SPEED_KMH = 20.0
const DEFAULT_NEARBY_LIMIT = 24

// Attractions operate between these hours; the hour curves are undefined
// outside this window.
const OPERATING_HOUR_START = 7
const OPERATING_HOUR_END = 20

// Catalog seeder config
const CATALOG_SEEDER_SCHEDULE_MINUTES = 60

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const PLACES_CATALOG_RESOURCE = "places.json"
const WEATHER_RESPONSE_RESOURCE = "weather_response.json"

// WeatherAPIKey returns the live weather credential, empty when unset.
// An empty key means the synthetic fallback model is used.
func WeatherAPIKey() string {
	return os.Getenv(WEATHER_API_KEY_ENV)
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
