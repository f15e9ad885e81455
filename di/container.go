package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"trip-server/api"
	"trip-server/api/weatherapi"
	"trip-server/catalog"
	"trip-server/config"
	"trip-server/dao/redis"
	"trip-server/db"
	"trip-server/features"
	"trip-server/geo"
	"trip-server/predict"
	"trip-server/server"
	"trip-server/server/handlers"
	services "trip-server/service"
	"trip-server/weather"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient          db.RedisClient
	RedisPlaceDao        *redis.RedisPlaceDAO
	Catalog              *catalog.Catalog
	FeatureBuilder       *features.Builder
	Predictor            *predict.Predictor
	GeoFinder            *geo.Finder
	WeatherAPI           weatherapi.WeatherAPI
	WeatherService       *weather.Service
	PlannerService       *services.PlannerService
	CatalogSeederService *services.CatalogSeederService
	PlanHandler          *handlers.PlanHandler
	MuxRouter            *mux.Router
	Router               *server.Router
	PlannerHttpServer    *server.PlannerHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize Redis client
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using in-memory redis mock")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.REDIS_DB_ADDRESS,
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewGeoRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	// Initialize Redis Place DAO
	redisPlaceDao := redis.NewRedisPlaceDAO(redisClient)

	// Immutable reference data and encoders, fixed for the process lifetime.
	placeCatalog := catalog.NewDefaultCatalog()
	featureBuilder := features.NewBuilder(placeCatalog)
	geoFinder := geo.NewFinder(placeCatalog)

	// Initialize WeatherAPI - mock outside prod, live client when a
	// credential is configured, synthetic-only otherwise.
	var weatherAPIClient weatherapi.WeatherAPI
	if env != "prod" {
		weatherAPIClient = weatherapi.NewWeatherApiClientMock()
		log.Printf("Using mock weather api")
	} else if key := config.WeatherAPIKey(); key != "" {
		log.Printf("Using prod weather api")
		httpClient := api.NewHTTPClient(config.WEATHER_API_ENDPOINT_BASE_V1)
		client := weatherapi.NewWeatherApiClient(httpClient)
		client.SetCredentials(key)
		weatherAPIClient = client
	} else {
		log.Printf("No weather credential configured; synthetic fallback only")
	}
	weatherService := weather.NewService(weatherAPIClient)

	// The scoring boundary: the in-process baseline model stands in for the
	// externally trained classifier.
	predictor := predict.NewPredictor(placeCatalog, featureBuilder, predict.NewBaselineModel())

	// Initialize service layer
	plannerService := services.NewPlannerService(placeCatalog, geoFinder, predictor, weatherService, redisPlaceDao)
	catalogSeederService := services.NewCatalogSeederService(placeCatalog, redisPlaceDao)

	// Initialize plan handler
	planHandler := handlers.NewPlanHandler(plannerService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(planHandler, muxRouter)

	// initialize planner http server
	plannerHttpServer := server.NewPlannerHttpServer(router, muxRouter)

	return &Container{
		RedisClient:          redisClient,
		RedisPlaceDao:        redisPlaceDao,
		Catalog:              placeCatalog,
		FeatureBuilder:       featureBuilder,
		Predictor:            predictor,
		GeoFinder:            geoFinder,
		WeatherAPI:           weatherAPIClient,
		WeatherService:       weatherService,
		PlannerService:       plannerService,
		CatalogSeederService: catalogSeederService,
		PlanHandler:          planHandler,
		MuxRouter:            muxRouter,
		Router:               router,
		PlannerHttpServer:    plannerHttpServer,
	}
}
