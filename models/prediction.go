package models

// Prediction is the normalized output of a crowd-level prediction.
type Prediction struct {
	Place       string   `json:"place"`
	Datetime    string   `json:"datetime"`
	CrowdLevel  int      `json:"crowd_level"` // 0..100
	Probability float64  `json:"probability"` // 0..1
	Confidence  string   `json:"confidence"`  // "low", "medium", "high"
	Description string   `json:"description"`
	Alternatives []string `json:"best_alternative_times"`
}
