package models

import "time"

// WeatherSample is the minimal weather input consumed by the feature builder.
// It has no identity beyond the moment it describes.
type WeatherSample struct {
	TemperatureC float64 `json:"temperature_c"`
	Rain         bool    `json:"rain"`
}

// HourlyForecast is one hour of forecast data from the weather boundary.
type HourlyForecast struct {
	Time         time.Time `json:"time"`
	TemperatureC float64   `json:"temperature_c"`
	RainMM       float64   `json:"rain_mm"`
	Condition    string    `json:"condition"`
}

// WeatherReport is the structured payload returned by the weather boundary,
// live or synthesized.
type WeatherReport struct {
	Current  WeatherSample    `json:"current"`
	Condition string          `json:"condition"`
	Forecast []HourlyForecast `json:"forecast"`
	Source   string           `json:"source"` // "weatherapi" or "synthetic"
	Location string           `json:"location"`
}
