package formulation

import (
	"fmt"

	"github.com/mamadbah2/feedlot/internal/domain/models"
)

// nutrientOrder fixes the order in which statuses and advice are emitted so
// identical inputs always yield identical output.
var nutrientOrder = []models.Nutrient{
	models.NutrientCP,
	models.NutrientME,
	models.NutrientNDF,
	models.NutrientCa,
	models.NutrientP,
}

var nutrientLabels = map[models.Nutrient]string{
	models.NutrientCP:  "Crude protein",
	models.NutrientME:  "Metabolizable energy",
	models.NutrientNDF: "Neutral detergent fiber",
	models.NutrientCa:  "Calcium",
	models.NutrientP:   "Phosphorus",
}

// Analyze compares blend totals against the requirement ranges and returns a
// per-nutrient status plus advisory messages. Nutrients without a matching
// range are skipped. When every assessed nutrient is within range, the advice
// list holds a single affirming message.
func Analyze(totals models.Totals, reqs []models.RequirementRange) models.AnalysisResult {
	byNutrient := make(map[models.Nutrient]models.RequirementRange, len(reqs))
	for _, r := range reqs {
		byNutrient[r.Nutrient] = r
	}

	var result models.AnalysisResult

	for _, n := range nutrientOrder {
		r, ok := byNutrient[n]
		if !ok {
			continue
		}

		value := nutrientValue(totals, n)
		status := models.StatusOK
		switch {
		case value < r.Min:
			status = models.StatusBelow
		case value > r.Max:
			status = models.StatusAbove
		}

		result.Statuses = append(result.Statuses, models.NutrientAssessment{
			Nutrient: n,
			Value:    value,
			Min:      r.Min,
			Max:      r.Max,
			Status:   status,
		})

		label := nutrientLabels[n]
		switch status {
		case models.StatusBelow:
			result.Advice = append(result.Advice,
				fmt.Sprintf("%s is deficient at %.2f; raise it into the %.2f-%.2f target range.", label, value, r.Min, r.Max))
		case models.StatusAbove:
			result.Advice = append(result.Advice,
				fmt.Sprintf("%s is excessive at %.2f; bring it back into the %.2f-%.2f target range.", label, value, r.Min, r.Max))
		}
	}

	if len(result.Advice) == 0 {
		result.Advice = []string{"Ration is balanced: all nutrient totals are within their target ranges."}
	}

	return result
}

func nutrientValue(t models.Totals, n models.Nutrient) float64 {
	switch n {
	case models.NutrientCP:
		return t.CP
	case models.NutrientME:
		return t.ME
	case models.NutrientNDF:
		return t.NDF
	case models.NutrientCa:
		return t.Ca
	case models.NutrientP:
		return t.P
	}
	return 0
}
