package weatherapi

import (
	"fmt"

	"trip-server/config"
	"trip-server/models"
	"trip-server/util"
)

// weatherResponsePath resolves the fixture lazily so PROJECT_ROOT set by a
// test harness is honored.
func weatherResponsePath() string {
	return config.GetResourcePath(config.WEATHER_RESPONSE_RESOURCE)
}

// WeatherApiClientMock embeds mocked logic for the weather api client
type WeatherApiClientMock struct {
}

// NewWeatherApiClientMock creates a new instance of WeatherApiClientMock
func NewWeatherApiClientMock() *WeatherApiClientMock {
	return &WeatherApiClientMock{}
}

// SetCredentials is a no-op on the mock.
func (c *WeatherApiClientMock) SetCredentials(apiKey string) {}

// GetCurrent reads current conditions from the JSON fixture.
func (c *WeatherApiClientMock) GetCurrent(lat float64, lng float64) (*models.WeatherAPICurrentResponse, error) {
	response, err := util.ReadWeatherForecastResponseFromJSON(weatherResponsePath())
	if err != nil {
		fmt.Println("Could not read weather response from json")
		return nil, err
	}
	return &models.WeatherAPICurrentResponse{Current: response.Current}, nil
}

// GetForecast reads the hourly forecast from the JSON fixture.
func (c *WeatherApiClientMock) GetForecast(lat float64, lng float64, days int) (*models.WeatherAPIForecastResponse, error) {
	response, err := util.ReadWeatherForecastResponseFromJSON(weatherResponsePath())
	if err != nil {
		fmt.Println("Could not read weather response from json")
		return nil, err
	}
	return response, nil
}
