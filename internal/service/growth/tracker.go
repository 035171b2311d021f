// Package growth implements the fattening performance tracker: episode
// lifecycle, weight observations and feed adjustments, with derived metrics
// (average daily gain, feed cost, cost-based feed conversion ratio).
//
// All functions here are pure: they take value snapshots and return updated
// copies. Serializing concurrent writers for the same animal is the caller's
// responsibility.
package growth

import (
	"time"

	"github.com/mamadbah2/feedlot/internal/domain/models"
)

// EpisodeParams carries the initial parameters of a new fattening episode.
type EpisodeParams struct {
	StartDate       time.Time              `json:"startDate"`
	InitialWeight   float64                `json:"initialWeight"`
	TargetWeight    float64                `json:"targetWeight"`
	DailyGainTarget float64                `json:"dailyGainTarget"`
	Concentrate     models.ConcentrateFeed `json:"concentrateFeed"`
	Forage          models.ForageFeed      `json:"forageFeed"`
	DurationDays    int                    `json:"durationDays"`
}

// StartEpisode appends a new active episode to the animal, deactivating any
// previously active one first. Prior episodes stay in the history untouched.
func StartEpisode(animal models.Animal, params EpisodeParams) (models.Animal, error) {
	if params.StartDate.IsZero() {
		return animal, models.NewValidationError("episode startDate is required")
	}
	if params.InitialWeight <= 0 {
		return animal, models.NewValidationError("initialWeight must be positive, got %.2f", params.InitialWeight)
	}
	if params.Concentrate.Amount < 0 || params.Forage.Amount < 0 {
		return animal, models.NewValidationError("feed amounts must not be negative")
	}

	updated := animal
	updated.Episodes = make([]models.FatteningEpisode, len(animal.Episodes), len(animal.Episodes)+1)
	copy(updated.Episodes, animal.Episodes)
	for i := range updated.Episodes {
		updated.Episodes[i].IsActive = false
	}

	updated.Episodes = append(updated.Episodes, models.FatteningEpisode{
		StartDate:       params.StartDate,
		InitialWeight:   params.InitialWeight,
		TargetWeight:    params.TargetWeight,
		DailyGainTarget: params.DailyGainTarget,
		Concentrate:     params.Concentrate,
		Forage:          params.Forage,
		DurationDays:    params.DurationDays,
		IsActive:        true,
	})

	return updated, nil
}

// RecordWeight appends an observation to the episode and recomputes its
// derived metrics. The observation date must not precede the episode start
// nor the latest recorded observation; an ended episode is read-only.
func RecordWeight(episode models.FatteningEpisode, obs models.DailyWeightObservation) (models.FatteningEpisode, error) {
	if !episode.IsActive {
		return episode, models.NewValidationError("episode has ended and is read-only")
	}
	if obs.Weight <= 0 {
		return episode, models.NewValidationError("observation weight must be positive, got %.2f", obs.Weight)
	}
	if obs.Date.Before(episode.StartDate) {
		return episode, models.NewValidationError("observation date %s precedes episode start %s",
			obs.Date.Format(time.DateOnly), episode.StartDate.Format(time.DateOnly))
	}
	if last := episode.LatestObservation(); last != nil && obs.Date.Before(last.Date) {
		return episode, models.NewValidationError("observation date %s precedes latest observation %s",
			obs.Date.Format(time.DateOnly), last.Date.Format(time.DateOnly))
	}

	updated := episode
	updated.Observations = append(append([]models.DailyWeightObservation{}, episode.Observations...), obs)
	recompute(&updated)
	return updated, nil
}

// ApplyFeedAdjustment appends the adjustment and shifts the current daily
// ration by its deltas. The resulting amounts must stay non-negative.
// CostImpact is derived from the deltas and current per-kg costs.
func ApplyFeedAdjustment(episode models.FatteningEpisode, adj models.FeedAdjustment) (models.FatteningEpisode, error) {
	if !episode.IsActive {
		return episode, models.NewValidationError("episode has ended and is read-only")
	}

	newConcentrate := episode.Concentrate.Amount + adj.ConcentrateChange
	newForage := episode.Forage.Amount + adj.ForageChange
	if newConcentrate < 0 {
		return episode, models.NewValidationError("adjustment would drive concentrate amount to %.2f kg/day", newConcentrate)
	}
	if newForage < 0 {
		return episode, models.NewValidationError("adjustment would drive forage amount to %.2f kg/day", newForage)
	}

	adj.CostImpact = adj.ConcentrateChange*episode.Concentrate.CostPerKg + adj.ForageChange*episode.Forage.CostPerKg

	updated := episode
	updated.Concentrate.Amount = newConcentrate
	updated.Forage.Amount = newForage
	updated.Adjustments = append(append([]models.FeedAdjustment{}, episode.Adjustments...), adj)
	return updated, nil
}

// CloseEpisode transitions an active episode to its terminal ended state.
func CloseEpisode(episode models.FatteningEpisode) (models.FatteningEpisode, error) {
	if !episode.IsActive {
		return episode, models.NewValidationError("episode has already ended")
	}
	updated := episode
	updated.IsActive = false
	return updated, nil
}

// recompute derives the performance metrics from the latest observation.
// Period feed cost uses the current feed rates for the whole elapsed period, a
// simplification carried over from the source data model: historical rate
// changes are recorded in Adjustments but not replayed per segment.
func recompute(e *models.FatteningEpisode) {
	latest := e.LatestObservation()
	if latest == nil || latest.Date.Before(e.StartDate) {
		return
	}

	elapsedDays := latest.Date.Sub(e.StartDate).Hours() / 24

	e.TotalWeightGain = latest.Weight - e.InitialWeight

	if elapsedDays > 0 {
		e.ActualADG = e.TotalWeightGain / elapsedDays
	} else {
		e.ActualADG = 0
	}

	e.TotalFeedCost = e.DailyFeedCost() * elapsedDays

	if e.TotalWeightGain > 0 {
		e.FeedConversionRatio = e.TotalFeedCost / e.TotalWeightGain
	} else {
		e.FeedConversionRatio = 0
	}
}
