package main

import (
	"fmt"
	"log"
	"time"

	"trip-server/config"
	"trip-server/di"
	services "trip-server/service"
	"trip-server/util"
)

func testDayPlanner(plannerService *services.PlannerService) {
	log.Println("Running: testDayPlanner")
	plan, err := plannerService.PlanDay(services.PlanRequest{
		Lat:           config.CITY_CENTER_LAT,
		Lng:           config.CITY_CENTER_LNG,
		RadiusKm:      config.DEFAULT_RADIUS_KM,
		MaxStops:      config.DEFAULT_MAX_STOPS,
		IncludeNearby: true,
	})
	if err != nil {
		log.Println("Error while running testDayPlanner: ", err)
		return
	}

	util.PrintDayPlanPartially(plan)
	util.PlotDayRoute(*plan)
}

func testCrowdPrediction(plannerService *services.PlannerService) {
	log.Println("Running: testCrowdPrediction")
	prediction, err := plannerService.PredictCrowd("Hanuman Vatika", time.Now(), 18)
	if err != nil {
		log.Println("Error while running testCrowdPrediction: ", err)
		return
	}
	fmt.Printf("Prediction: %+v\n", prediction)
}

func main() {
	container := di.NewContainer("prod")

	// testDayPlanner(container.PlannerService)
	// testCrowdPrediction(container.PlannerService)

	fmt.Println("seeding catalog!")
	if err := container.CatalogSeederService.SeedCatalog(); err != nil {
		log.Printf("Catalog seeding failed: %v", err)
	}
	fmt.Println("starting periodic job!")
	container.CatalogSeederService.StartPeriodicJob(config.CATALOG_SEEDER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.PlannerHttpServer.Start()
}
