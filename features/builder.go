package features

import (
	"fmt"
	"math"
	"time"

	"trip-server/catalog"
	"trip-server/config"
	"trip-server/models"
)

// DeriveHour signals Build to take the hour from the target time.
const DeriveHour = -1

// Builder turns (place, time, weather) into the fixed-length numeric vector
// the crowd model consumes. Pure given its inputs; weather acquisition is the
// caller's job.
type Builder struct {
	catalog  *catalog.Catalog
	encoders *Encoders
}

// NewBuilder constructs a Builder with encoders fitted from the catalog.
func NewBuilder(cat *catalog.Catalog) *Builder {
	return &Builder{
		catalog:  cat,
		encoders: NewEncoders(cat),
	}
}

// Encoders exposes the fitted categorical encoders.
func (b *Builder) Encoders() *Encoders {
	return b.encoders
}

// ClampHour clamps an hour into the operating window [7,20]. The hour curves
// are undefined outside it.
func ClampHour(hour int) int {
	if hour < config.OPERATING_HOUR_START {
		return config.OPERATING_HOUR_START
	}
	if hour > config.OPERATING_HOUR_END {
		return config.OPERATING_HOUR_END
	}
	return hour
}

// Build assembles the feature vector for a place reference (id or title) at
// the given time. Pass DeriveHour as targetHour to take the hour from
// targetTime; either way the hour is clamped to the operating window.
func (b *Builder) Build(ref string, targetTime time.Time, targetHour int, sample models.WeatherSample) (models.FeatureVector, error) {
	var fv models.FeatureVector

	place, err := b.catalog.Resolve(ref)
	if err != nil {
		return fv, err
	}

	hour := targetHour
	if hour == DeriveHour {
		hour = targetTime.Hour()
	}
	hour = ClampHour(hour)

	cal := b.catalog.CalendarFor(targetTime)
	dateStr := targetTime.Format("2006-01-02")

	categoryBase := b.catalog.CategoryBase(place.Category)
	baseFactor := categoryBase * place.PlaceFactor

	weekdayFactor := b.catalog.WeekdayFactor(cal.Weekday)
	monthFactor := b.catalog.MonthFactor(cal.Month)
	hourlyMult, ok := b.catalog.HourlyMultiplier(place.Category, hour)
	if !ok {
		return fv, fmt.Errorf("hour curve undefined for category %q at hour %d", place.Category, hour)
	}

	holidayMult := b.catalog.HolidayMultiplier(dateStr, place.Category, cal.Weekday)
	weatherMult := b.weatherMultiplier(sample, place.Category, hour)

	longTermTrend := 1.0 + 0.02*math.Sin(float64(cal.DayOfYear)/365.0*2*math.Pi)

	placeCode, err := b.encoders.Place.Transform(place.Title)
	if err != nil {
		return fv, err
	}
	categoryCode, err := b.encoders.Category.Transform(string(place.Category))
	if err != nil {
		return fv, err
	}
	weekdayCode, err := b.encoders.Weekday.Transform(cal.WeekdayName)
	if err != nil {
		return fv, err
	}
	holidayCode, err := b.encoders.Holiday.Transform(cal.HolidayLabel)
	if err != nil {
		return fv, err
	}
	seasonCode, err := b.encoders.Season.Transform(cal.Season)
	if err != nil {
		return fv, err
	}

	rainFlag := 0.0
	if sample.Rain {
		rainFlag = 1.0
	}

	fv[models.FieldHour] = float64(hour)
	fv[models.FieldPlaceEncoded] = float64(placeCode)
	fv[models.FieldCategoryEncoded] = float64(categoryCode)
	fv[models.FieldWeekdayEncoded] = float64(weekdayCode)
	fv[models.FieldMonth] = float64(cal.Month)
	fv[models.FieldHolidayEncoded] = float64(holidayCode)
	fv[models.FieldTemperatureC] = round1(sample.TemperatureC)
	fv[models.FieldRainFlag] = rainFlag
	fv[models.FieldCategoryBase] = categoryBase
	fv[models.FieldPlaceFactor] = place.PlaceFactor
	fv[models.FieldBaseFactor] = round3(baseFactor)
	fv[models.FieldWeekdayFactor] = weekdayFactor
	fv[models.FieldMonthFactor] = monthFactor
	fv[models.FieldHourlyMultiplier] = hourlyMult
	fv[models.FieldHolidayMultiplier] = holidayMult
	fv[models.FieldWeatherMultiplier] = weatherMult
	fv[models.FieldLongTermTrend] = round3(longTermTrend)
	fv[models.FieldSeasonEncoded] = float64(seasonCode)

	return fv, nil
}

// weatherMultiplier composes the heat and rain penalties for outdoor
// categories. Multiplicative, not additive.
func (b *Builder) weatherMultiplier(sample models.WeatherSample, cat models.Category, hour int) float64 {
	mult := 1.0
	if !b.catalog.IsOutdoor(cat) {
		return mult
	}
	if sample.TemperatureC > 38 && hour >= 12 && hour <= 16 {
		mult *= 0.88
	}
	if sample.Rain {
		mult *= 0.70
	}
	return mult
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
func round3(x float64) float64 { return math.Round(x*1000) / 1000 }
