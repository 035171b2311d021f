package growth

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/feedlot/internal/domain/models"
	"github.com/mamadbah2/feedlot/internal/repository/mongodb"
)

// Service is the persistence shell around the pure tracker functions: it
// loads the animal snapshot, applies the operation and saves the result.
type Service struct {
	store  mongodb.AnimalStore
	logger *zap.Logger
}

// NewService wires a new growth tracking service instance.
func NewService(store mongodb.AnimalStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// RegisterAnimal adds a new animal to the herd.
func (s *Service) RegisterAnimal(ctx context.Context, animal models.Animal) error {
	if animal.TagID == "" {
		return models.NewValidationError("animal tagId is required")
	}
	if animal.Status == "" {
		animal.Status = models.AnimalActive
	}

	if _, err := s.store.GetAnimal(ctx, animal.TagID); err == nil {
		return models.NewValidationError("animal %s is already registered", animal.TagID)
	}

	if err := s.store.SaveAnimal(ctx, animal); err != nil {
		return fmt.Errorf("register animal: %w", err)
	}

	s.logger.Info("animal registered", zap.String("tag", animal.TagID), zap.String("breed", animal.Breed))
	return nil
}

// GetAnimal loads one animal with its full episode history.
func (s *Service) GetAnimal(ctx context.Context, tagID string) (models.Animal, error) {
	return s.store.GetAnimal(ctx, tagID)
}

// StartEpisode begins a new fattening episode for the animal, deactivating
// any prior active episode.
func (s *Service) StartEpisode(ctx context.Context, tagID string, params EpisodeParams) (models.Animal, error) {
	animal, err := s.store.GetAnimal(ctx, tagID)
	if err != nil {
		return models.Animal{}, err
	}

	updated, err := StartEpisode(animal, params)
	if err != nil {
		return models.Animal{}, err
	}

	if err := s.store.SaveAnimal(ctx, updated); err != nil {
		return models.Animal{}, fmt.Errorf("save animal %s: %w", tagID, err)
	}

	s.logger.Info("episode started",
		zap.String("tag", tagID),
		zap.Time("start", params.StartDate),
		zap.Float64("initial_weight", params.InitialWeight))
	return updated, nil
}

// RecordWeight appends a weight observation to the animal's active episode.
func (s *Service) RecordWeight(ctx context.Context, tagID string, obs models.DailyWeightObservation) (models.Animal, error) {
	return s.mutateActiveEpisode(ctx, tagID, "weight recorded", func(ep models.FatteningEpisode) (models.FatteningEpisode, error) {
		return RecordWeight(ep, obs)
	})
}

// ApplyFeedAdjustment shifts the active episode's daily ration.
func (s *Service) ApplyFeedAdjustment(ctx context.Context, tagID string, adj models.FeedAdjustment) (models.Animal, error) {
	return s.mutateActiveEpisode(ctx, tagID, "feed adjusted", func(ep models.FatteningEpisode) (models.FatteningEpisode, error) {
		return ApplyFeedAdjustment(ep, adj)
	})
}

// CloseEpisode explicitly ends the animal's active episode.
func (s *Service) CloseEpisode(ctx context.Context, tagID string) (models.Animal, error) {
	return s.mutateActiveEpisode(ctx, tagID, "episode closed", CloseEpisode)
}

func (s *Service) mutateActiveEpisode(ctx context.Context, tagID, action string, fn func(models.FatteningEpisode) (models.FatteningEpisode, error)) (models.Animal, error) {
	animal, err := s.store.GetAnimal(ctx, tagID)
	if err != nil {
		return models.Animal{}, err
	}

	idx := animal.ActiveEpisode()
	if idx < 0 {
		return models.Animal{}, models.NewValidationError("animal %s has no active episode", tagID)
	}

	updatedEpisode, err := fn(animal.Episodes[idx])
	if err != nil {
		return models.Animal{}, err
	}

	updated := animal
	updated.Episodes = append([]models.FatteningEpisode{}, animal.Episodes...)
	updated.Episodes[idx] = updatedEpisode

	if err := s.store.SaveAnimal(ctx, updated); err != nil {
		return models.Animal{}, fmt.Errorf("save animal %s: %w", tagID, err)
	}

	s.logger.Info(action, zap.String("tag", tagID))
	return updated, nil
}
