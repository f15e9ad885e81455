package predict

import (
	"fmt"
	"math"

	"trip-server/models"
)

// CrowdModel is the opaque scoring boundary. Implementations wrap whatever
// pretrained model is deployed (classifier, margin-based, or regressor).
type CrowdModel interface {
	Predict(fv models.FeatureVector) (float64, error)
}

// ProbabilityModel is implemented by models that expose a class-membership
// probability directly.
type ProbabilityModel interface {
	CrowdModel
	PredictProba(fv models.FeatureVector) (float64, error)
}

// MarginModel is implemented by models that expose a decision margin instead
// of a probability.
type MarginModel interface {
	CrowdModel
	DecisionFunction(fv models.FeatureVector) (float64, error)
}

type outputKind int

const (
	kindScore outputKind = iota
	kindProbability
	kindMargin
)

// Adapter normalizes heterogeneous model outputs into a 0-100 crowd level and
// a 0-1 probability. Capabilities are probed once at construction, not per
// call.
type Adapter struct {
	model CrowdModel
	kind  outputKind
}

// NewAdapter wraps a model, selecting its output interpretation at load time.
func NewAdapter(model CrowdModel) *Adapter {
	kind := kindScore
	if _, ok := model.(ProbabilityModel); ok {
		kind = kindProbability
	} else if _, ok := model.(MarginModel); ok {
		kind = kindMargin
	}
	return &Adapter{model: model, kind: kind}
}

// CrowdLevel scores a feature vector and returns the normalized crowd level
// and probability.
func (a *Adapter) CrowdLevel(fv models.FeatureVector) (int, float64, error) {
	switch a.kind {
	case kindProbability:
		p, err := a.model.(ProbabilityModel).PredictProba(fv)
		if err != nil {
			return 0, 0, fmt.Errorf("predict_proba failed: %w", err)
		}
		p = clamp01(p)
		return int(math.Round(p * 100)), p, nil

	case kindMargin:
		margin, err := a.model.(MarginModel).DecisionFunction(fv)
		if err != nil {
			return 0, 0, fmt.Errorf("decision_function failed: %w", err)
		}
		p := clamp01(1.0 / (1.0 + math.Exp(-margin)))
		return int(math.Round(p * 100)), p, nil

	default:
		y, err := a.model.Predict(fv)
		if err != nil {
			return 0, 0, fmt.Errorf("predict failed: %w", err)
		}
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return 0, 0, fmt.Errorf("model returned unusable value %v", y)
		}
		level, p := normalizeScore(y)
		return level, p, nil
	}
}

// normalizeScore maps a raw model score onto [0,100]. Values in [0,1] are
// probabilities, values in (1,100] are already percentages, everything else
// is clamped. The thresholds are a heuristic carried over from the deployed
// model; declared-kind models (ProbabilityModel, MarginModel) bypass them.
func normalizeScore(y float64) (int, float64) {
	switch {
	case y >= 0 && y <= 1:
		return int(math.Round(y * 100)), y
	case y > 1 && y <= 100:
		level := int(math.Round(y))
		return level, float64(level) / 100.0
	default:
		level := int(math.Max(0, math.Min(100, math.Round(y))))
		return level, float64(level) / 100.0
	}
}

func clamp01(p float64) float64 {
	return math.Max(0.0, math.Min(1.0, p))
}
