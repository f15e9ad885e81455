package models

// FeatureVectorLength is the canonical vector size. The external crowd model
// expects exactly this many fields, in the order below.
const FeatureVectorLength = 18

// Indexes into a FeatureVector. The order is a contract with the trained
// model and must never change.
const (
	FieldHour = iota
	FieldPlaceEncoded
	FieldCategoryEncoded
	FieldWeekdayEncoded
	FieldMonth
	FieldHolidayEncoded
	FieldTemperatureC
	FieldRainFlag
	FieldCategoryBase
	FieldPlaceFactor
	FieldBaseFactor
	FieldWeekdayFactor
	FieldMonthFactor
	FieldHourlyMultiplier
	FieldHolidayMultiplier
	FieldWeatherMultiplier
	FieldLongTermTrend
	FieldSeasonEncoded
)

// FeatureVector is the fixed-order numeric encoding fed to the crowd model.
type FeatureVector [FeatureVectorLength]float64
