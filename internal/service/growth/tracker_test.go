package growth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/feedlot/internal/domain/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testParams() EpisodeParams {
	return EpisodeParams{
		StartDate:       date(2024, 1, 1),
		InitialWeight:   100,
		TargetWeight:    180,
		DailyGainTarget: 1.0,
		Concentrate:     models.ConcentrateFeed{Amount: 3, Composition: "maize-bran mix", CostPerKg: 2},
		Forage:          models.ForageFeed{Amount: 5, Type: "hay", CostPerKg: 0.5},
		DurationDays:    90,
	}
}

func TestStartEpisode_DeactivatesPrevious(t *testing.T) {
	animal := models.Animal{TagID: "C-001"}

	animal, err := StartEpisode(animal, testParams())
	require.NoError(t, err)

	second := testParams()
	second.StartDate = date(2024, 6, 1)
	animal, err = StartEpisode(animal, second)
	require.NoError(t, err)

	require.Len(t, animal.Episodes, 2)
	assert.False(t, animal.Episodes[0].IsActive)
	assert.True(t, animal.Episodes[1].IsActive)

	active := 0
	for _, ep := range animal.Episodes {
		if ep.IsActive {
			active++
		}
	}
	assert.Equal(t, 1, active)
}

func TestStartEpisode_PreservesHistory(t *testing.T) {
	animal := models.Animal{TagID: "C-001"}
	animal, err := StartEpisode(animal, testParams())
	require.NoError(t, err)

	animal.Episodes[0].Observations = []models.DailyWeightObservation{
		{Date: date(2024, 1, 5), Weight: 104},
	}

	second := testParams()
	second.StartDate = date(2024, 6, 1)
	updated, err := StartEpisode(animal, second)
	require.NoError(t, err)

	require.Len(t, updated.Episodes[0].Observations, 1)
	assert.InDelta(t, 104, updated.Episodes[0].Observations[0].Weight, 1e-9)
}

func TestStartEpisode_Validation(t *testing.T) {
	var validationErr *models.ValidationError

	params := testParams()
	params.InitialWeight = 0
	_, err := StartEpisode(models.Animal{TagID: "C-001"}, params)
	require.ErrorAs(t, err, &validationErr)

	params = testParams()
	params.StartDate = time.Time{}
	_, err = StartEpisode(models.Animal{TagID: "C-001"}, params)
	require.ErrorAs(t, err, &validationErr)
}

func TestRecordWeight_DerivesMetrics(t *testing.T) {
	animal, err := StartEpisode(models.Animal{TagID: "C-001"}, testParams())
	require.NoError(t, err)

	ep, err := RecordWeight(animal.Episodes[0], models.DailyWeightObservation{
		Date:   date(2024, 1, 11),
		Weight: 110,
	})
	require.NoError(t, err)

	assert.InDelta(t, 10.0, ep.TotalWeightGain, 1e-9)
	assert.InDelta(t, 1.0, ep.ActualADG, 1e-9)
	// Daily feed cost: 3*2 + 5*0.5 = 8.5, over 10 elapsed days.
	assert.InDelta(t, 85.0, ep.TotalFeedCost, 1e-9)
	assert.InDelta(t, 8.5, ep.FeedConversionRatio, 1e-9)
}

func TestRecordWeight_RejectsOutOfOrderDates(t *testing.T) {
	animal, err := StartEpisode(models.Animal{TagID: "C-001"}, testParams())
	require.NoError(t, err)

	ep, err := RecordWeight(animal.Episodes[0], models.DailyWeightObservation{Date: date(2024, 1, 10), Weight: 108})
	require.NoError(t, err)

	var validationErr *models.ValidationError

	_, err = RecordWeight(ep, models.DailyWeightObservation{Date: date(2024, 1, 5), Weight: 105})
	require.ErrorAs(t, err, &validationErr)

	_, err = RecordWeight(ep, models.DailyWeightObservation{Date: date(2023, 12, 31), Weight: 99})
	require.ErrorAs(t, err, &validationErr)

	// Same-date re-weighing is allowed; dates are non-decreasing, not strict.
	_, err = RecordWeight(ep, models.DailyWeightObservation{Date: date(2024, 1, 10), Weight: 109})
	assert.NoError(t, err)
}

func TestRecordWeight_ZeroElapsedDays(t *testing.T) {
	animal, err := StartEpisode(models.Animal{TagID: "C-001"}, testParams())
	require.NoError(t, err)

	ep, err := RecordWeight(animal.Episodes[0], models.DailyWeightObservation{Date: date(2024, 1, 1), Weight: 102})
	require.NoError(t, err)

	assert.InDelta(t, 2.0, ep.TotalWeightGain, 1e-9)
	assert.Zero(t, ep.ActualADG)
	assert.Zero(t, ep.TotalFeedCost)
}

func TestRecordWeight_NoGainGuardsRatio(t *testing.T) {
	animal, err := StartEpisode(models.Animal{TagID: "C-001"}, testParams())
	require.NoError(t, err)

	ep, err := RecordWeight(animal.Episodes[0], models.DailyWeightObservation{Date: date(2024, 1, 11), Weight: 95})
	require.NoError(t, err)

	assert.InDelta(t, -5.0, ep.TotalWeightGain, 1e-9)
	assert.Zero(t, ep.FeedConversionRatio)
}

func TestRecordWeight_EndedEpisodeIsReadOnly(t *testing.T) {
	animal, err := StartEpisode(models.Animal{TagID: "C-001"}, testParams())
	require.NoError(t, err)

	ep, err := CloseEpisode(animal.Episodes[0])
	require.NoError(t, err)

	var validationErr *models.ValidationError
	_, err = RecordWeight(ep, models.DailyWeightObservation{Date: date(2024, 1, 11), Weight: 110})
	require.ErrorAs(t, err, &validationErr)
}

func TestApplyFeedAdjustment_ShiftsRationAndComputesCostImpact(t *testing.T) {
	animal, err := StartEpisode(models.Animal{TagID: "C-001"}, testParams())
	require.NoError(t, err)

	ep, err := ApplyFeedAdjustment(animal.Episodes[0], models.FeedAdjustment{
		Date:              date(2024, 1, 15),
		ConcentrateChange: 1,
		ForageChange:      -2,
		Reason:            "transition to finishing ration",
	})
	require.NoError(t, err)

	assert.InDelta(t, 4.0, ep.Concentrate.Amount, 1e-9)
	assert.InDelta(t, 3.0, ep.Forage.Amount, 1e-9)
	require.Len(t, ep.Adjustments, 1)
	// 1*2 + (-2)*0.5 = 1 per day.
	assert.InDelta(t, 1.0, ep.Adjustments[0].CostImpact, 1e-9)
}

func TestApplyFeedAdjustment_RejectsNegativeResult(t *testing.T) {
	animal, err := StartEpisode(models.Animal{TagID: "C-001"}, testParams())
	require.NoError(t, err)

	var validationErr *models.ValidationError
	_, err = ApplyFeedAdjustment(animal.Episodes[0], models.FeedAdjustment{ConcentrateChange: -10})
	require.ErrorAs(t, err, &validationErr)

	// Failed adjustment must not mutate the input snapshot.
	assert.InDelta(t, 3.0, animal.Episodes[0].Concentrate.Amount, 1e-9)
	assert.Empty(t, animal.Episodes[0].Adjustments)
}

func TestCloseEpisode_Terminal(t *testing.T) {
	animal, err := StartEpisode(models.Animal{TagID: "C-001"}, testParams())
	require.NoError(t, err)

	ep, err := CloseEpisode(animal.Episodes[0])
	require.NoError(t, err)
	assert.False(t, ep.IsActive)

	var validationErr *models.ValidationError
	_, err = CloseEpisode(ep)
	require.ErrorAs(t, err, &validationErr)
}
