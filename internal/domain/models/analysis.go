package models

// NutrientStatus classifies a blend total against its requirement range.
type NutrientStatus string

const (
	StatusBelow NutrientStatus = "BELOW"
	StatusOK    NutrientStatus = "OK"
	StatusAbove NutrientStatus = "ABOVE"
)

// NutrientAssessment is the per-nutrient verdict of an analysis.
type NutrientAssessment struct {
	Nutrient Nutrient       `json:"nutrient"`
	Value    float64        `json:"value"`
	Min      float64        `json:"min"`
	Max      float64        `json:"max"`
	Status   NutrientStatus `json:"status"`
}

// AnalysisResult carries the per-nutrient statuses in fixed nutrient order
// plus human-readable advice. When every nutrient is within range the advice
// holds a single affirming message.
type AnalysisResult struct {
	Statuses []NutrientAssessment `json:"statuses"`
	Advice   []string             `json:"advice"`
}
