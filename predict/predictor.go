package predict

import (
	"fmt"
	"time"

	"trip-server/catalog"
	"trip-server/features"
	"trip-server/models"
)

const maxAlternatives = 4

// Predictor converts model output into a calibrated crowd level with
// confidence and alternative-time suggestions.
type Predictor struct {
	catalog *catalog.Catalog
	builder *features.Builder
	adapter *Adapter
}

// NewPredictor wires a predictor over the catalog, feature builder and
// scoring model. Model capabilities are resolved once here.
func NewPredictor(cat *catalog.Catalog, builder *features.Builder, model CrowdModel) *Predictor {
	return &Predictor{
		catalog: cat,
		builder: builder,
		adapter: NewAdapter(model),
	}
}

// Predict estimates the crowd level for a place (id or title) at the given
// visit time. A failed base prediction is fatal and surfaces PredictionError;
// failures while probing alternative hours only skip that alternative.
func (p *Predictor) Predict(ref string, visitTime time.Time, sample models.WeatherSample) (*models.Prediction, error) {
	place, err := p.catalog.Resolve(ref)
	if err != nil {
		return nil, err
	}

	level, prob, err := p.predictAt(place.Title, visitTime, sample)
	if err != nil {
		return nil, &models.PredictionError{Place: place.Title, Err: err}
	}

	alternatives := p.suggestAlternatives(place.Title, visitTime, sample, level)

	confidence := "low"
	if prob >= 0.75 {
		confidence = "high"
	} else if prob >= 0.50 {
		confidence = "medium"
	}

	return &models.Prediction{
		Place:        place.Title,
		Datetime:     visitTime.Format(time.RFC3339),
		CrowdLevel:   level,
		Probability:  prob,
		Confidence:   confidence,
		Description:  fmt.Sprintf("Estimated crowd level around %d%%", level),
		Alternatives: alternatives,
	}, nil
}

// predictAt builds the feature vector for one instant and scores it.
func (p *Predictor) predictAt(title string, t time.Time, sample models.WeatherSample) (int, float64, error) {
	fv, err := p.builder.Build(title, t, features.DeriveHour, sample)
	if err != nil {
		return 0, 0, err
	}
	return p.adapter.CrowdLevel(fv)
}

// suggestAlternatives probes the hours around the target for strictly lower
// crowd levels. Hours that clamp back onto the base hour are skipped, as are
// hours whose prediction fails.
func (p *Predictor) suggestAlternatives(title string, visitTime time.Time, sample models.WeatherSample, baseLevel int) []string {
	baseHour := features.ClampHour(visitTime.Hour())

	var alternatives []string
	for _, shift := range []int{-2, -1, 1, 2} {
		if len(alternatives) >= maxAlternatives {
			break
		}
		altTime := visitTime.Add(time.Duration(shift) * time.Hour)
		if features.ClampHour(altTime.Hour()) == baseHour {
			continue
		}

		altLevel, _, err := p.predictAt(title, altTime, sample)
		if err != nil {
			continue
		}
		if altLevel < baseLevel {
			alternatives = append(alternatives,
				fmt.Sprintf("%s (~%d%% crowd)", altTime.Format("03:04 PM"), altLevel))
		}
	}

	if len(alternatives) == 0 {
		if baseLevel > 40 {
			return []string{"Visit earlier in the morning or later in the evening"}
		}
		return []string{"No better times found"}
	}
	return alternatives
}
