// Package formulation blends ingredient quantities into aggregate nutrient
// and cost totals and compares them against species/stage targets. The
// calculator and advisor are pure; Service adds the catalog and persistence
// shell around them.
package formulation

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/feedlot/internal/domain/models"
	"github.com/mamadbah2/feedlot/internal/repository/mongodb"
	"github.com/mamadbah2/feedlot/internal/repository/sheets"
	"github.com/mamadbah2/feedlot/internal/service/requirements"
)

// AnalysisResponse bundles the computed totals with their assessment.
type AnalysisResponse struct {
	Totals   models.Totals         `json:"totals"`
	Analysis models.AnalysisResult `json:"analysis"`
}

// Service exposes blend analysis and formulation persistence.
type Service struct {
	catalog sheets.CatalogRepository
	store   mongodb.FormulationStore
	logger  *zap.Logger
}

// NewService wires a new formulation service instance.
func NewService(catalog sheets.CatalogRepository, store mongodb.FormulationStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{catalog: catalog, store: store, logger: logger}
}

// AnalyzeBlend snapshots the catalog, computes the blend totals and assesses
// them against the requirement table for the blend's species and stage.
func (s *Service) AnalyzeBlend(ctx context.Context, blend models.Blend) (AnalysisResponse, error) {
	snapshot, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return AnalysisResponse{}, fmt.Errorf("snapshot catalog: %w", err)
	}

	totals, err := ComputeTotals(blend.Items, snapshot)
	if err != nil {
		return AnalysisResponse{}, err
	}

	reqs := requirements.Lookup(blend.Species, blend.Stage)
	result := Analyze(totals, reqs)

	s.logger.Debug("blend analyzed",
		zap.String("species", string(blend.Species)),
		zap.String("stage", string(blend.Stage)),
		zap.Float64("total_kg", totals.TotalKg),
		zap.Int("advice_count", len(result.Advice)))

	return AnalysisResponse{Totals: totals, Analysis: result}, nil
}

// SaveFormulation validates and persists a named blend. Templates may be
// saved empty; a committed formulation must blend to a positive total mass.
func (s *Service) SaveFormulation(ctx context.Context, f models.Formulation) (string, error) {
	if f.OwnerID == "" {
		return "", models.NewValidationError("formulation ownerId is required")
	}
	if f.Name == "" {
		return "", models.NewValidationError("formulation name is required")
	}

	if !f.IsTemplate {
		snapshot, err := s.catalog.Snapshot(ctx)
		if err != nil {
			return "", fmt.Errorf("snapshot catalog: %w", err)
		}
		if _, err := ComputeTotals(f.Blend.Items, snapshot); err != nil {
			return "", err
		}
	}

	id, err := s.store.SaveFormulation(ctx, f)
	if err != nil {
		return "", fmt.Errorf("save formulation: %w", err)
	}

	s.logger.Info("formulation saved", zap.String("id", id), zap.String("owner", f.OwnerID), zap.Bool("template", f.IsTemplate))
	return id, nil
}

// ListFormulations returns the formulations owned by the given account.
func (s *Service) ListFormulations(ctx context.Context, ownerID string) ([]models.Formulation, error) {
	if ownerID == "" {
		return nil, models.NewValidationError("ownerId is required")
	}
	return s.store.ListFormulations(ctx, ownerID)
}

// DeleteFormulation removes one formulation by id.
func (s *Service) DeleteFormulation(ctx context.Context, id string) error {
	return s.store.DeleteFormulation(ctx, id)
}

// ListIngredients exposes the current catalog contents.
func (s *Service) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	return s.catalog.List(ctx)
}
