package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/feedlot/internal/domain/models"
	"github.com/mamadbah2/feedlot/internal/service/formulation"
	"github.com/mamadbah2/feedlot/internal/service/requirements"
)

// FormulationHandler adapts the formulation service to HTTP.
type FormulationHandler struct {
	svc    *formulation.Service
	logger *zap.Logger
}

// NewFormulationHandler constructs the HTTP handler adapter.
func NewFormulationHandler(svc *formulation.Service, logger *zap.Logger) *FormulationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FormulationHandler{svc: svc, logger: logger}
}

// ListIngredients exposes the current catalog contents.
func (h *FormulationHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.svc.ListIngredients(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

// GetRequirements returns the nutrient target ranges for a species/stage pair.
func (h *FormulationHandler) GetRequirements(c *gin.Context) {
	species := models.Species(c.Query("species"))
	stage := models.Stage(c.Query("stage"))
	if species == "" || stage == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "species and stage query parameters are required"})
		return
	}

	c.JSON(http.StatusOK, requirements.Lookup(species, stage))
}

// Analyze computes blend totals and assesses them against the requirement
// table without persisting anything.
func (h *FormulationHandler) Analyze(c *gin.Context) {
	var blend models.Blend
	if err := c.ShouldBindJSON(&blend); err != nil {
		h.logger.Warn("invalid blend payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.svc.AnalyzeBlend(c.Request.Context(), blend)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SaveFormulation persists a named blend as template or committed instance.
func (h *FormulationHandler) SaveFormulation(c *gin.Context) {
	var f models.Formulation
	if err := c.ShouldBindJSON(&f); err != nil {
		h.logger.Warn("invalid formulation payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := h.svc.SaveFormulation(c.Request.Context(), f)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListFormulations returns the formulations owned by the given account.
func (h *FormulationHandler) ListFormulations(c *gin.Context) {
	formulations, err := h.svc.ListFormulations(c.Request.Context(), c.Query("owner"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, formulations)
}

// DeleteFormulation removes one formulation by id.
func (h *FormulationHandler) DeleteFormulation(c *gin.Context) {
	if err := h.svc.DeleteFormulation(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
