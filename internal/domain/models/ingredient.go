package models

// Nutrients groups the standard feed nutrient measures tracked per ingredient
// and per blend: crude protein, metabolizable energy, neutral detergent fiber,
// calcium and phosphorus.
type Nutrients struct {
	CP  float64 `bson:"cp" json:"cp"`
	ME  float64 `bson:"me" json:"me"`
	NDF float64 `bson:"ndf" json:"ndf"`
	Ca  float64 `bson:"ca" json:"ca"`
	P   float64 `bson:"p" json:"p"`
}

// Ingredient is a single feed ingredient with its nutrient profile and base
// cost, as supplied by the catalog.
type Ingredient struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Category  string    `bson:"category" json:"category"`
	CostPerKg float64   `bson:"costPerKg" json:"costPerKg"`
	Nutrients Nutrients `bson:"nutrients" json:"nutrients"`
}

// CatalogSnapshot is a point-in-time view of the ingredient catalog keyed by
// ingredient id. Core computations take a snapshot instead of querying the
// catalog so they stay pure.
type CatalogSnapshot map[string]Ingredient
