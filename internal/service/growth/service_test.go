package growth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/feedlot/internal/domain/models"
)

// fakeAnimalStore is an in-memory mongodb.AnimalStore used by the tests.
type fakeAnimalStore struct {
	animals map[string]models.Animal
}

func newFakeAnimalStore() *fakeAnimalStore {
	return &fakeAnimalStore{animals: make(map[string]models.Animal)}
}

func (f *fakeAnimalStore) SaveAnimal(_ context.Context, animal models.Animal) error {
	f.animals[animal.TagID] = animal
	return nil
}

func (f *fakeAnimalStore) GetAnimal(_ context.Context, tagID string) (models.Animal, error) {
	animal, ok := f.animals[tagID]
	if !ok {
		return models.Animal{}, models.NewNotFoundError("animal", tagID)
	}
	return animal, nil
}

func (f *fakeAnimalStore) ListAnimalsWithActiveEpisodes(_ context.Context) ([]models.Animal, error) {
	var out []models.Animal
	for _, animal := range f.animals {
		if animal.ActiveEpisode() >= 0 {
			out = append(out, animal)
		}
	}
	return out, nil
}

func TestService_EpisodeLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newFakeAnimalStore()
	svc := NewService(store, nil)

	require.NoError(t, svc.RegisterAnimal(ctx, models.Animal{TagID: "C-001", Breed: "Ndama", Sex: "M"}))

	animal, err := svc.StartEpisode(ctx, "C-001", testParams())
	require.NoError(t, err)
	assert.Equal(t, 0, animal.ActiveEpisode())

	animal, err = svc.RecordWeight(ctx, "C-001", models.DailyWeightObservation{
		Date: date(2024, 1, 11), Weight: 110, MeasuredBy: "worker-1",
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, animal.Episodes[0].ActualADG, 1e-9)

	animal, err = svc.CloseEpisode(ctx, "C-001")
	require.NoError(t, err)
	assert.Equal(t, -1, animal.ActiveEpisode())

	// Persisted state matches the returned snapshot.
	stored, err := svc.GetAnimal(ctx, "C-001")
	require.NoError(t, err)
	assert.Equal(t, animal, stored)
}

func TestService_RegisterAnimal_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeAnimalStore(), nil)

	var validationErr *models.ValidationError
	err := svc.RegisterAnimal(ctx, models.Animal{})
	require.ErrorAs(t, err, &validationErr)

	require.NoError(t, svc.RegisterAnimal(ctx, models.Animal{TagID: "C-001"}))
	err = svc.RegisterAnimal(ctx, models.Animal{TagID: "C-001"})
	require.ErrorAs(t, err, &validationErr)
}

func TestService_UnknownAnimal(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeAnimalStore(), nil)

	var notFoundErr *models.NotFoundError
	_, err := svc.StartEpisode(ctx, "ghost", testParams())
	require.ErrorAs(t, err, &notFoundErr)
}

func TestService_NoActiveEpisode(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeAnimalStore(), nil)
	require.NoError(t, svc.RegisterAnimal(ctx, models.Animal{TagID: "C-001"}))

	var validationErr *models.ValidationError
	_, err := svc.RecordWeight(ctx, "C-001", models.DailyWeightObservation{Date: date(2024, 1, 11), Weight: 110})
	require.ErrorAs(t, err, &validationErr)
}

func TestService_FailedOperationLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	store := newFakeAnimalStore()
	svc := NewService(store, nil)

	require.NoError(t, svc.RegisterAnimal(ctx, models.Animal{TagID: "C-001"}))
	_, err := svc.StartEpisode(ctx, "C-001", testParams())
	require.NoError(t, err)

	_, err = svc.RecordWeight(ctx, "C-001", models.DailyWeightObservation{Date: date(2023, 1, 1), Weight: 90})
	require.Error(t, err)

	stored, err := svc.GetAnimal(ctx, "C-001")
	require.NoError(t, err)
	assert.Empty(t, stored.Episodes[0].Observations)
}
