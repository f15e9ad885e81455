package weatherapi

import "trip-server/models"

// WeatherAPI defines the interface for interacting with the weather provider
type WeatherAPI interface {
	GetCurrent(lat float64, lng float64) (*models.WeatherAPICurrentResponse, error)
	GetForecast(lat float64, lng float64, days int) (*models.WeatherAPIForecastResponse, error)
	SetCredentials(apiKey string)
}
