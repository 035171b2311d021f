package models

// Species enumerates the livestock species covered by the requirement table.
type Species string

const (
	SpeciesCattle Species = "cattle"
	SpeciesSheep  Species = "sheep"
	SpeciesGoat   Species = "goat"
)

// Stage enumerates growth stages within a fattening program.
type Stage string

const (
	StageStarter  Stage = "starter"
	StageGrower   Stage = "grower"
	StageFinisher Stage = "finisher"
)

// Nutrient identifies one of the tracked nutrient measures.
type Nutrient string

const (
	NutrientCP  Nutrient = "cp"
	NutrientME  Nutrient = "me"
	NutrientNDF Nutrient = "ndf"
	NutrientCa  Nutrient = "ca"
	NutrientP   Nutrient = "p"
)

// RequirementRange is the target interval for one nutrient at a given
// species/stage combination.
type RequirementRange struct {
	Species  Species  `json:"species"`
	Stage    Stage    `json:"stage"`
	Nutrient Nutrient `json:"nutrient"`
	Min      float64  `json:"min"`
	Max      float64  `json:"max"`
}
