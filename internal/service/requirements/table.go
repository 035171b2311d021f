// Package requirements holds the static nutrient target table keyed by
// species and growth stage. CP, NDF, Ca and P are expressed as percent of dry
// matter; ME as MJ per kg of dry matter.
package requirements

import (
	"fmt"

	"github.com/mamadbah2/feedlot/internal/domain/models"
)

type key struct {
	species models.Species
	stage   models.Stage
}

// Fallback used by Lookup when a combination is not in the table. Inherited
// compatibility behavior; callers that want a hard failure use LookupStrict.
const (
	DefaultSpecies = models.SpeciesCattle
	DefaultStage   = models.StageGrower
)

var table = map[key][]models.RequirementRange{
	{models.SpeciesCattle, models.StageStarter}: ranges(models.SpeciesCattle, models.StageStarter,
		18, 20, 11.5, 12.5, 28, 35, 0.60, 0.80, 0.35, 0.50),
	{models.SpeciesCattle, models.StageGrower}: ranges(models.SpeciesCattle, models.StageGrower,
		14, 16, 10.5, 12.0, 30, 40, 0.45, 0.70, 0.30, 0.45),
	{models.SpeciesCattle, models.StageFinisher}: ranges(models.SpeciesCattle, models.StageFinisher,
		12, 14, 11.0, 12.5, 25, 35, 0.40, 0.65, 0.25, 0.40),
	{models.SpeciesSheep, models.StageStarter}: ranges(models.SpeciesSheep, models.StageStarter,
		16, 18, 10.5, 12.0, 30, 40, 0.50, 0.75, 0.30, 0.45),
	{models.SpeciesSheep, models.StageGrower}: ranges(models.SpeciesSheep, models.StageGrower,
		14, 16, 10.0, 11.5, 32, 42, 0.45, 0.70, 0.28, 0.42),
	{models.SpeciesSheep, models.StageFinisher}: ranges(models.SpeciesSheep, models.StageFinisher,
		12, 14, 10.5, 12.0, 28, 38, 0.40, 0.65, 0.25, 0.40),
	{models.SpeciesGoat, models.StageStarter}: ranges(models.SpeciesGoat, models.StageStarter,
		16, 18, 10.0, 11.5, 32, 42, 0.50, 0.75, 0.30, 0.45),
	{models.SpeciesGoat, models.StageGrower}: ranges(models.SpeciesGoat, models.StageGrower,
		13, 15, 9.5, 11.0, 34, 44, 0.45, 0.70, 0.28, 0.42),
	{models.SpeciesGoat, models.StageFinisher}: ranges(models.SpeciesGoat, models.StageFinisher,
		11, 13, 10.0, 11.5, 30, 40, 0.40, 0.65, 0.25, 0.40),
}

func ranges(species models.Species, stage models.Stage, cpMin, cpMax, meMin, meMax, ndfMin, ndfMax, caMin, caMax, pMin, pMax float64) []models.RequirementRange {
	mk := func(n models.Nutrient, lo, hi float64) models.RequirementRange {
		return models.RequirementRange{Species: species, Stage: stage, Nutrient: n, Min: lo, Max: hi}
	}
	return []models.RequirementRange{
		mk(models.NutrientCP, cpMin, cpMax),
		mk(models.NutrientME, meMin, meMax),
		mk(models.NutrientNDF, ndfMin, ndfMax),
		mk(models.NutrientCa, caMin, caMax),
		mk(models.NutrientP, pMin, pMax),
	}
}

// Lookup returns the requirement ranges for the species/stage pair. Unknown
// combinations fall back to the (cattle, grower) defaults so that legacy
// callers keep working; the returned slice is a copy the caller may mutate.
func Lookup(species models.Species, stage models.Stage) []models.RequirementRange {
	rs, ok := table[key{species, stage}]
	if !ok {
		rs = table[key{DefaultSpecies, DefaultStage}]
	}
	out := make([]models.RequirementRange, len(rs))
	copy(out, rs)
	return out
}

// LookupStrict behaves like Lookup but returns a NotFoundError instead of
// falling back when the combination is not defined.
func LookupStrict(species models.Species, stage models.Stage) ([]models.RequirementRange, error) {
	rs, ok := table[key{species, stage}]
	if !ok {
		return nil, models.NewNotFoundError("requirement table entry", fmt.Sprintf("%s/%s", species, stage))
	}
	out := make([]models.RequirementRange, len(rs))
	copy(out, rs)
	return out, nil
}
