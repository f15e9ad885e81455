package weatherapi

import (
	"fmt"
	"net/url"

	"trip-server/api"
	"trip-server/models"
)

// WeatherApiClient embeds the common HTTPClient
type WeatherApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey          string
}

// NewWeatherApiClient creates a new instance of WeatherApiClient
func NewWeatherApiClient(httpClient *api.HTTPClient) *WeatherApiClient {
	return &WeatherApiClient{
		HTTPClient: httpClient,
	}
}

// SetCredentials stores the API key sent with every request.
func (c *WeatherApiClient) SetCredentials(apiKey string) {
	c.apiKey = apiKey
}

// GetCurrent retrieves current conditions at the given coordinates.
func (c *WeatherApiClient) GetCurrent(lat float64, lng float64) (*models.WeatherAPICurrentResponse, error) {
	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("q", fmt.Sprintf("%.4f,%.4f", lat, lng))
	query.Set("aqi", "no")

	var response models.WeatherAPICurrentResponse
	if err := c.RequestWithQuery("GET", "/current.json", query, nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetForecast retrieves the hourly forecast for the given horizon in days.
func (c *WeatherApiClient) GetForecast(lat float64, lng float64, days int) (*models.WeatherAPIForecastResponse, error) {
	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("q", fmt.Sprintf("%.4f,%.4f", lat, lng))
	query.Set("days", fmt.Sprintf("%d", days))
	query.Set("aqi", "no")
	query.Set("alerts", "no")

	var response models.WeatherAPIForecastResponse
	if err := c.RequestWithQuery("GET", "/forecast.json", query, nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
