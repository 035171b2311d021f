package formulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/feedlot/internal/domain/models"
)

func testCatalog() models.CatalogSnapshot {
	return models.CatalogSnapshot{
		"maize": {
			ID: "maize", Name: "Maize grain", Category: "energy", CostPerKg: 2,
			Nutrients: models.Nutrients{CP: 20, ME: 13.5, NDF: 10, Ca: 0.03, P: 0.30},
		},
		"bran": {
			ID: "bran", Name: "Wheat bran", Category: "by-product", CostPerKg: 1,
			Nutrients: models.Nutrients{CP: 10, ME: 10.0, NDF: 40, Ca: 0.12, P: 1.10},
		},
	}
}

func TestComputeTotals_WeightedAverage(t *testing.T) {
	items := []models.BlendItem{
		{IngredientRef: "maize", InclusionKg: 10},
		{IngredientRef: "bran", InclusionKg: 10},
	}

	totals, err := ComputeTotals(items, testCatalog())
	require.NoError(t, err)

	assert.InDelta(t, 20.0, totals.TotalKg, 1e-9)
	assert.InDelta(t, 30.0, totals.TotalCost, 1e-9)
	assert.InDelta(t, 15.0, totals.CP, 1e-9)
}

func TestComputeTotals_NutrientBounds(t *testing.T) {
	items := []models.BlendItem{
		{IngredientRef: "maize", InclusionKg: 7},
		{IngredientRef: "bran", InclusionKg: 3},
	}

	totals, err := ComputeTotals(items, testCatalog())
	require.NoError(t, err)

	// Weighted averages must stay between the ingredient-level extremes.
	assert.GreaterOrEqual(t, totals.CP, 10.0)
	assert.LessOrEqual(t, totals.CP, 20.0)
	assert.GreaterOrEqual(t, totals.NDF, 10.0)
	assert.LessOrEqual(t, totals.NDF, 40.0)
	assert.InDelta(t, 10.0, totals.TotalKg, 1e-9)
}

func TestComputeTotals_CostOverride(t *testing.T) {
	override := 5.0
	items := []models.BlendItem{
		{IngredientRef: "maize", InclusionKg: 10, CostPerKgOverride: &override},
	}

	totals, err := ComputeTotals(items, testCatalog())
	require.NoError(t, err)
	assert.InDelta(t, 50.0, totals.TotalCost, 1e-9)
}

func TestComputeTotals_SkipsZeroInclusion(t *testing.T) {
	items := []models.BlendItem{
		{IngredientRef: "maize", InclusionKg: 10},
		{IngredientRef: "bran", InclusionKg: 0},
	}

	totals, err := ComputeTotals(items, testCatalog())
	require.NoError(t, err)

	assert.InDelta(t, 10.0, totals.TotalKg, 1e-9)
	assert.InDelta(t, 20.0, totals.CP, 1e-9)
}

func TestComputeTotals_EmptyBlend(t *testing.T) {
	var validationErr *models.ValidationError

	_, err := ComputeTotals(nil, testCatalog())
	require.ErrorAs(t, err, &validationErr)

	_, err = ComputeTotals([]models.BlendItem{{IngredientRef: "maize", InclusionKg: 0}}, testCatalog())
	require.ErrorAs(t, err, &validationErr)
}

func TestComputeTotals_NegativeInclusion(t *testing.T) {
	items := []models.BlendItem{{IngredientRef: "maize", InclusionKg: -1}}

	_, err := ComputeTotals(items, testCatalog())
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestComputeTotals_UnknownIngredient(t *testing.T) {
	items := []models.BlendItem{{IngredientRef: "soybean", InclusionKg: 5}}

	_, err := ComputeTotals(items, testCatalog())
	var notFoundErr *models.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "soybean", notFoundErr.Key)
}
