package weather

import (
	"fmt"
	"log"
	"strings"
	"time"

	"trip-server/api/weatherapi"
	"trip-server/models"
)

var rainTerms = []string{
	"rain", "drizzle", "shower", "thunderstorm", "storm",
	"precipitation", "wet", "pour",
}

// Service is the weather boundary of the planner. It queries the live API
// when one is configured and degrades to the deterministic seasonal model on
// any failure; callers never see WeatherUnavailable.
type Service struct {
	api weatherapi.WeatherAPI // nil when no credentials are configured
}

// NewService wraps a weather API client. A nil client means fallback-only.
func NewService(api weatherapi.WeatherAPI) *Service {
	return &Service{api: api}
}

// ReportFor fetches an hourly report around the given start time. The live
// call is bounded by the HTTP client's timeout; a timeout or error resolves
// to the synthetic report instead of surfacing.
func (s *Service) ReportFor(lat, lng float64, start time.Time, days int) *models.WeatherReport {
	if s.api == nil {
		return SyntheticReport(lat, lng, start, days)
	}

	resp, err := s.api.GetForecast(lat, lng, days)
	if err != nil {
		unavailable := &models.WeatherUnavailable{Err: err}
		log.Printf("[WeatherService] %v; using synthetic fallback", unavailable)
		return SyntheticReport(lat, lng, start, days)
	}

	var forecast []models.HourlyForecast
	for _, day := range resp.Forecast.ForecastDay {
		for _, hr := range day.Hour {
			forecast = append(forecast, models.HourlyForecast{
				Time:         time.Unix(hr.TimeEpoch, 0),
				TemperatureC: hr.TempC,
				RainMM:       hr.PrecipMM,
				Condition:    strings.ToLower(hr.Condition.Text),
			})
		}
	}

	return &models.WeatherReport{
		Current: models.WeatherSample{
			TemperatureC: resp.Current.TempC,
			Rain:         RainFlag(resp.Current.PrecipMM, resp.Current.Condition.Text),
		},
		Condition: strings.ToLower(resp.Current.Condition.Text),
		Forecast:  forecast,
		Source:    "weatherapi",
		Location:  fmt.Sprintf("%.3f,%.3f", lat, lng),
	}
}

// RainFlag classifies a precipitation reading plus condition text as rain.
func RainFlag(precipMM float64, condition string) bool {
	if precipMM > 0 {
		return true
	}
	condition = strings.ToLower(condition)
	for _, term := range rainTerms {
		if strings.Contains(condition, term) {
			return true
		}
	}
	return false
}

// SampleAt picks the forecast entry covering the given instant, falling back
// to current conditions when the report has no matching hour.
func SampleAt(report *models.WeatherReport, t time.Time) models.WeatherSample {
	for _, f := range report.Forecast {
		if f.Time.Year() == t.Year() && f.Time.YearDay() == t.YearDay() && f.Time.Hour() == t.Hour() {
			return models.WeatherSample{
				TemperatureC: f.TemperatureC,
				Rain:         RainFlag(f.RainMM, f.Condition),
			}
		}
	}
	return report.Current
}

// SummaryFor renders the human-readable weather line for one day of the
// report: mean temperature, total rain and the leading condition.
func SummaryFor(report *models.WeatherReport, date time.Time) string {
	var temps []float64
	totalRain := 0.0
	condition := ""
	for _, f := range report.Forecast {
		if f.Time.Year() != date.Year() || f.Time.YearDay() != date.YearDay() {
			continue
		}
		temps = append(temps, f.TemperatureC)
		totalRain += f.RainMM
		if condition == "" {
			condition = f.Condition
		}
	}
	if len(temps) == 0 {
		return "No hourly forecast."
	}

	sum := 0.0
	for _, t := range temps {
		sum += t
	}
	return fmt.Sprintf("%.1f°C, rain=%.1fmm, %s", sum/float64(len(temps)), totalRain, condition)
}
