package requirements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/feedlot/internal/domain/models"
)

func TestLookup_KnownCombination(t *testing.T) {
	ranges := Lookup(models.SpeciesSheep, models.StageFinisher)

	require.Len(t, ranges, 5)
	for _, r := range ranges {
		assert.Equal(t, models.SpeciesSheep, r.Species)
		assert.Equal(t, models.StageFinisher, r.Stage)
		assert.Less(t, r.Min, r.Max, "nutrient %s", r.Nutrient)
	}
}

func TestLookup_FallbackForUnknownCombination(t *testing.T) {
	ranges := Lookup(models.Species("camel"), models.Stage("weaner"))

	require.Len(t, ranges, 5)
	assert.Equal(t, DefaultSpecies, ranges[0].Species)
	assert.Equal(t, DefaultStage, ranges[0].Stage)
	assert.Equal(t, Lookup(DefaultSpecies, DefaultStage), ranges)
}

func TestLookupStrict_UnknownCombination(t *testing.T) {
	_, err := LookupStrict(models.Species("camel"), models.Stage("weaner"))

	var notFoundErr *models.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestLookup_ReturnsCopy(t *testing.T) {
	first := Lookup(models.SpeciesCattle, models.StageGrower)
	first[0].Min = -100

	second := Lookup(models.SpeciesCattle, models.StageGrower)
	assert.NotEqual(t, -100.0, second[0].Min)
}
