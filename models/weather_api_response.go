package models

// Wire shapes for the weatherapi.com v1 endpoints.

// WeatherAPICondition is the nested condition block.
type WeatherAPICondition struct {
	Text string `json:"text"`
}

// WeatherAPICurrent matches the "current" block of current.json.
type WeatherAPICurrent struct {
	TempC     float64             `json:"temp_c"`
	PrecipMM  float64             `json:"precip_mm"`
	Condition WeatherAPICondition `json:"condition"`
}

// WeatherAPICurrentResponse is the top-level JSON of GET /current.json.
type WeatherAPICurrentResponse struct {
	Current WeatherAPICurrent `json:"current"`
}

// WeatherAPIHour is one hourly entry of a forecast day.
type WeatherAPIHour struct {
	TimeEpoch int64               `json:"time_epoch"`
	TempC     float64             `json:"temp_c"`
	PrecipMM  float64             `json:"precip_mm"`
	Condition WeatherAPICondition `json:"condition"`
}

// WeatherAPIForecastDay is one day of forecast.json.
type WeatherAPIForecastDay struct {
	Date string           `json:"date"`
	Hour []WeatherAPIHour `json:"hour"`
}

// WeatherAPIForecastResponse is the top-level JSON of GET /forecast.json.
type WeatherAPIForecastResponse struct {
	Current  WeatherAPICurrent `json:"current"`
	Forecast struct {
		ForecastDay []WeatherAPIForecastDay `json:"forecastday"`
	} `json:"forecast"`
}
