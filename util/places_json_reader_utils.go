package util

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"trip-server/models"
)

// ReadPlacesFromJSON loads the place catalog fixture from JSON on disk.
func ReadPlacesFromJSON(filePath string) ([]models.Place, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var places []models.Place
	if err := json.Unmarshal(data, &places); err != nil {
		return nil, fmt.Errorf("failed to unmarshal places: %w", err)
	}
	return places, nil
}

// ReadWeatherForecastResponseFromJSON loads a WeatherAPIForecastResponse from
// JSON on disk.
func ReadWeatherForecastResponseFromJSON(filePath string) (*models.WeatherAPIForecastResponse, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.WeatherAPIForecastResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal WeatherAPIForecastResponse: %w", err)
	}
	return &resp, nil
}

// ReadDayPlanFromJSON loads a cached DayPlan from JSON on disk.
func ReadDayPlanFromJSON(filePath string) (*models.DayPlan, error) {
	data, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var plan models.DayPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal DayPlan: %w", err)
	}
	return &plan, nil
}

// PrintDayPlanPartially prints key fields of a DayPlan.
func PrintDayPlanPartially(plan *models.DayPlan) {
	fmt.Printf("Plan ID: %s\n", plan.PlanID)
	fmt.Printf("Date: %s\n", plan.Date)
	fmt.Printf("Center: (%.4f, %.4f)\n", plan.Center.Lat, plan.Center.Lng)
	fmt.Printf("Weather: %s\n", plan.WeatherSummary)
	fmt.Printf("Stops: %d\n", len(plan.Schedule))
	for _, stop := range plan.Schedule {
		travel := ""
		if stop.TravelMinFromPrev != nil {
			travel = fmt.Sprintf(" (+%d min travel)", *stop.TravelMinFromPrev)
		}
		fmt.Printf("  %d. %s %s - crowd %d%%%s\n",
			stop.Order, stop.Time, stop.Place, stop.CrowdLevel, travel)
	}
}
