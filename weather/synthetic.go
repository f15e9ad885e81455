package weather

import (
	"fmt"
	"math"
	"time"

	"trip-server/models"
)

// Seasonal fallback model. Deterministic: the same month and hour always give
// the same sample, so feature vectors built from fallback data are
// reproducible.

// monthBaseTempC is the typical daily mean per month for the planning region.
var monthBaseTempC = map[int]float64{
	1: 16, 2: 19, 3: 26, 4: 32, 5: 36, 6: 32,
	7: 30, 8: 29, 9: 29, 10: 27, 11: 21, 12: 17,
}

// monthRainProb is the baseline chance of rain per month.
var monthRainProb = map[int]float64{
	1: 0.02, 2: 0.03, 3: 0.05, 4: 0.08, 5: 0.15, 6: 0.35,
	7: 0.42, 8: 0.40, 9: 0.28, 10: 0.12, 11: 0.04, 12: 0.02,
}

// SyntheticSample estimates conditions for one instant: monthly base
// temperature plus a smooth diurnal swing peaking at 14:00, clamped to
// [5,45]°C, and a rain flag from the month's rain probability with a 1.5x
// boost on monsoon afternoons.
func SyntheticSample(t time.Time) models.WeatherSample {
	month := int(t.Month())
	hour := t.Hour()

	temp := monthBaseTempC[month] - 5*math.Cos(float64(hour-14)/12*math.Pi)
	temp = math.Max(5, math.Min(45, temp))

	return models.WeatherSample{
		TemperatureC: temp,
		Rain:         syntheticRain(month, hour),
	}
}

// syntheticRain applies the afternoon monsoon boost and flags rain when the
// boosted probability crosses one half.
func syntheticRain(month, hour int) bool {
	prob := monthRainProb[month]
	if hour >= 14 && hour <= 18 && month >= 6 && month <= 9 {
		prob *= 1.5
	}
	return prob >= 0.5
}

// SyntheticReport builds a full hourly report from the seasonal model,
// starting at the given day for the given horizon.
func SyntheticReport(lat, lng float64, start time.Time, days int) *models.WeatherReport {
	if days < 1 {
		days = 1
	}
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	var forecast []models.HourlyForecast
	for d := 0; d < days; d++ {
		for h := 0; h < 24; h++ {
			ts := day.AddDate(0, 0, d).Add(time.Duration(h) * time.Hour)
			sample := SyntheticSample(ts)
			rainMM := 0.0
			condition := "clear"
			if sample.Rain {
				rainMM = 5.0
				condition = "rainy"
			} else if monthRainProb[int(ts.Month())] >= 0.2 {
				condition = "cloudy"
			}
			forecast = append(forecast, models.HourlyForecast{
				Time:         ts,
				TemperatureC: sample.TemperatureC,
				RainMM:       rainMM,
				Condition:    condition,
			})
		}
	}

	current := SyntheticSample(start)
	condition := "clear"
	if current.Rain {
		condition = "rainy"
	}
	return &models.WeatherReport{
		Current:   current,
		Condition: condition,
		Forecast:  forecast,
		Source:    "synthetic",
		Location:  fmt.Sprintf("%.3f,%.3f", lat, lng),
	}
}
