package models

import "time"

// ConcentrateFeed is the concentrate portion of an episode's daily ration.
// Amount is kg fed per day at the current rate.
type ConcentrateFeed struct {
	Amount      float64 `bson:"amount" json:"amount"`
	Composition string  `bson:"composition" json:"composition"`
	CostPerKg   float64 `bson:"costPerKg" json:"costPerKg"`
}

// ForageFeed is the forage portion of an episode's daily ration.
type ForageFeed struct {
	Amount    float64 `bson:"amount" json:"amount"`
	Type      string  `bson:"type" json:"type"`
	CostPerKg float64 `bson:"costPerKg" json:"costPerKg"`
}

// DailyWeightObservation is one weighing event inside an episode.
type DailyWeightObservation struct {
	Date       time.Time `bson:"date" json:"date"`
	Weight     float64   `bson:"weight" json:"weight"`
	MeasuredBy string    `bson:"measuredBy" json:"measuredBy"`
	Notes      string    `bson:"notes" json:"notes"`
}

// FeedAdjustment records a change to the daily ration. Changes are deltas in
// kg per day; CostImpact is the resulting change in daily feed cost.
type FeedAdjustment struct {
	Date              time.Time `bson:"date" json:"date"`
	ConcentrateChange float64   `bson:"concentrateChange" json:"concentrateChange"`
	ForageChange      float64   `bson:"forageChange" json:"forageChange"`
	Reason            string    `bson:"reason" json:"reason"`
	AdjustedBy        string    `bson:"adjustedBy" json:"adjustedBy"`
	CostImpact        float64   `bson:"costImpact" json:"costImpact"`
}

// FatteningEpisode is one bounded fattening program for an animal. Once a new
// episode starts for the same animal (or the episode is explicitly closed) it
// becomes immutable history.
//
// FeedConversionRatio here is cost-based: feed cost per kg of weight gained,
// not feed mass per kg gained. The source data only carries monetary feed
// rates, so the metric keeps that basis.
type FatteningEpisode struct {
	StartDate       time.Time       `bson:"startDate" json:"startDate"`
	InitialWeight   float64         `bson:"initialWeight" json:"initialWeight"`
	TargetWeight    float64         `bson:"targetWeight" json:"targetWeight"`
	DailyGainTarget float64         `bson:"dailyGainTarget" json:"dailyGainTarget"`
	Concentrate     ConcentrateFeed `bson:"concentrateFeed" json:"concentrateFeed"`
	Forage          ForageFeed      `bson:"forageFeed" json:"forageFeed"`
	DurationDays    int             `bson:"durationDays" json:"durationDays"`
	IsActive        bool            `bson:"isActive" json:"isActive"`

	Observations []DailyWeightObservation `bson:"observations" json:"observations"`
	Adjustments  []FeedAdjustment         `bson:"adjustments" json:"adjustments"`

	// Derived metrics, recomputed on every appended observation.
	ActualADG           float64 `bson:"actualADG" json:"actualADG"`
	TotalFeedCost       float64 `bson:"totalFeedCost" json:"totalFeedCost"`
	TotalWeightGain     float64 `bson:"totalWeightGain" json:"totalWeightGain"`
	FeedConversionRatio float64 `bson:"feedConversionRatio" json:"feedConversionRatio"`
}

// LatestObservation returns the most recent observation, or nil when the
// episode has none. Observations are kept in non-decreasing date order.
func (e FatteningEpisode) LatestObservation() *DailyWeightObservation {
	if len(e.Observations) == 0 {
		return nil
	}
	return &e.Observations[len(e.Observations)-1]
}

// DailyFeedCost is the cost of one day of feeding at the current rates.
func (e FatteningEpisode) DailyFeedCost() float64 {
	return e.Concentrate.Amount*e.Concentrate.CostPerKg + e.Forage.Amount*e.Forage.CostPerKg
}
