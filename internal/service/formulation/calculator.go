package formulation

import (
	"github.com/mamadbah2/feedlot/internal/domain/models"
)

// ComputeTotals aggregates the blend items into total mass, total cost and
// inclusion-weighted nutrient averages against the given catalog snapshot.
// Items with zero inclusion are ignored; a negative inclusion or a blend with
// no positive inclusion at all is a ValidationError, and an item referencing
// an ingredient missing from the snapshot is a NotFoundError.
func ComputeTotals(items []models.BlendItem, catalog models.CatalogSnapshot) (models.Totals, error) {
	var totals models.Totals
	var weighted models.Nutrients

	for _, item := range items {
		if item.InclusionKg < 0 {
			return models.Totals{}, models.NewValidationError("inclusionKg must not be negative for ingredient %s", item.IngredientRef)
		}
		if item.InclusionKg == 0 {
			continue
		}

		ing, ok := catalog[item.IngredientRef]
		if !ok {
			return models.Totals{}, models.NewNotFoundError("ingredient", item.IngredientRef)
		}

		cost := ing.CostPerKg
		if item.CostPerKgOverride != nil {
			cost = *item.CostPerKgOverride
		}

		totals.TotalKg += item.InclusionKg
		totals.TotalCost += item.InclusionKg * cost

		weighted.CP += item.InclusionKg * ing.Nutrients.CP
		weighted.ME += item.InclusionKg * ing.Nutrients.ME
		weighted.NDF += item.InclusionKg * ing.Nutrients.NDF
		weighted.Ca += item.InclusionKg * ing.Nutrients.Ca
		weighted.P += item.InclusionKg * ing.Nutrients.P
	}

	if totals.TotalKg == 0 {
		return models.Totals{}, models.NewValidationError("blend has no item with positive inclusionKg")
	}

	totals.CP = weighted.CP / totals.TotalKg
	totals.ME = weighted.ME / totals.TotalKg
	totals.NDF = weighted.NDF / totals.TotalKg
	totals.Ca = weighted.Ca / totals.TotalKg
	totals.P = weighted.P / totals.TotalKg

	return totals, nil
}
