package sheets

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/mamadbah2/feedlot/internal/config"
	"github.com/mamadbah2/feedlot/internal/domain/models"
)

// CatalogRepository exposes the ingredient catalog maintained by the farm in
// a Google Sheet. Each row carries id, name, category, cost per kg and the
// five nutrient measures.
type CatalogRepository interface {
	Get(ctx context.Context, id string) (models.Ingredient, error)
	List(ctx context.Context) ([]models.Ingredient, error)
	Snapshot(ctx context.Context) (models.CatalogSnapshot, error)
}

// GoogleSheetCatalog implements CatalogRepository using the official Google
// Sheets API.
type GoogleSheetCatalog struct {
	service       *sheetsapi.Service
	spreadsheetID string
	readRange     string
	logger        *zap.Logger
}

// NewGoogleSheetCatalog builds a Google Sheets backed catalog instance.
func NewGoogleSheetCatalog(ctx context.Context, cfg config.CatalogConfig, logger *zap.Logger) (CatalogRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetCatalog{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		readRange:     cfg.ReadRange,
		logger:        logger,
	}, nil
}

// List fetches and parses all catalog rows. Rows that fail to parse are
// skipped with a debug log instead of failing the whole read.
func (r *GoogleSheetCatalog) List(ctx context.Context) ([]models.Ingredient, error) {
	resp, err := r.service.Spreadsheets.Values.Get(r.spreadsheetID, r.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read catalog range %s: %w", r.readRange, err)
	}

	ingredients := make([]models.Ingredient, 0, len(resp.Values))
	for _, row := range resp.Values {
		ing, err := parseIngredientRow(row)
		if err != nil {
			r.logger.Debug("skip malformed catalog row", zap.Any("row", row), zap.Error(err))
			continue
		}
		ingredients = append(ingredients, ing)
	}

	return ingredients, nil
}

// Snapshot returns the catalog as an id-keyed map for the pure calculators.
func (r *GoogleSheetCatalog) Snapshot(ctx context.Context) (models.CatalogSnapshot, error) {
	ingredients, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := make(models.CatalogSnapshot, len(ingredients))
	for _, ing := range ingredients {
		snapshot[ing.ID] = ing
	}
	return snapshot, nil
}

// Get looks up a single ingredient by id.
func (r *GoogleSheetCatalog) Get(ctx context.Context, id string) (models.Ingredient, error) {
	snapshot, err := r.Snapshot(ctx)
	if err != nil {
		return models.Ingredient{}, err
	}

	ing, ok := snapshot[id]
	if !ok {
		return models.Ingredient{}, models.NewNotFoundError("ingredient", id)
	}
	return ing, nil
}

// Expected column layout: id, name, category, costPerKg, cp, me, ndf, ca, p.
func parseIngredientRow(row []interface{}) (models.Ingredient, error) {
	if len(row) < 9 {
		return models.Ingredient{}, fmt.Errorf("expected 9 columns, got %d", len(row))
	}

	id := fmt.Sprint(row[0])
	if id == "" {
		return models.Ingredient{}, fmt.Errorf("empty ingredient id")
	}

	numeric := make([]float64, 6)
	for i := range numeric {
		v, err := parseFloat(row[3+i])
		if err != nil {
			return models.Ingredient{}, fmt.Errorf("column %d: %w", 3+i, err)
		}
		numeric[i] = v
	}

	return models.Ingredient{
		ID:        id,
		Name:      fmt.Sprint(row[1]),
		Category:  fmt.Sprint(row[2]),
		CostPerKg: numeric[0],
		Nutrients: models.Nutrients{
			CP:  numeric[1],
			ME:  numeric[2],
			NDF: numeric[3],
			Ca:  numeric[4],
			P:   numeric[5],
		},
	}, nil
}

func parseFloat(value interface{}) (float64, error) {
	str := fmt.Sprint(value)
	if str == "" {
		return 0, fmt.Errorf("empty numeric value")
	}
	return strconv.ParseFloat(str, 64)
}
