package models

import "time"

// BlendItem is one ingredient line in a candidate blend. InclusionKg must be
// non-negative; a nil CostPerKgOverride means the catalog cost applies.
type BlendItem struct {
	IngredientRef     string   `bson:"ingredientRef" json:"ingredientRef"`
	InclusionKg       float64  `bson:"inclusionKg" json:"inclusionKg"`
	CostPerKgOverride *float64 `bson:"costPerKgOverride,omitempty" json:"costPerKgOverride,omitempty"`
}

// Blend is a candidate, unpersisted feed mixture for a species/stage pair.
// Item order carries no meaning.
type Blend struct {
	Species        Species     `bson:"species" json:"species"`
	Stage          Stage       `bson:"stage" json:"stage"`
	TargetWeightKg *float64    `bson:"targetWeightKg,omitempty" json:"targetWeightKg,omitempty"`
	Items          []BlendItem `bson:"items" json:"items"`
}

// Totals is the aggregate of a blend: total mass, total cost and the
// inclusion-weighted average of each nutrient.
type Totals struct {
	TotalKg   float64 `json:"totalKg"`
	TotalCost float64 `json:"totalCost"`
	Nutrients
}

// Formulation is a persisted, named blend owned by an account. Templates are
// reusable starting points and may be empty; committed formulations must have
// positive total mass.
type Formulation struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	OwnerID    string    `bson:"ownerId" json:"ownerId"`
	Name       string    `bson:"name" json:"name"`
	Blend      Blend     `bson:"blend" json:"blend"`
	IsTemplate bool      `bson:"isTemplate" json:"isTemplate"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
