package predict

import (
	"math"

	"trip-server/models"
)

// baselineScale maps the product of the vector's factor fields onto a
// percentage (the worst-case product is about 2.2).
const baselineScale = 45.0

// BaselineModel is a deterministic score-kind model derived from the feature
// vector's own multiplicative factors. It stands in for the external trained
// model when none is configured, so the full pipeline stays exercisable.
type BaselineModel struct{}

// NewBaselineModel returns the in-process default scoring function.
func NewBaselineModel() *BaselineModel {
	return &BaselineModel{}
}

// Predict multiplies the vector's factor fields into a raw percentage score.
func (m *BaselineModel) Predict(fv models.FeatureVector) (float64, error) {
	product := fv[models.FieldBaseFactor] *
		fv[models.FieldWeekdayFactor] *
		fv[models.FieldMonthFactor] *
		fv[models.FieldHourlyMultiplier] *
		fv[models.FieldHolidayMultiplier] *
		fv[models.FieldWeatherMultiplier] *
		fv[models.FieldLongTermTrend]

	return math.Max(0, math.Min(100, product*baselineScale)), nil
}
