package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/feedlot/internal/domain/models"
	"github.com/mamadbah2/feedlot/internal/service/growth"
)

// GrowthHandler adapts the growth tracking service to HTTP.
type GrowthHandler struct {
	svc    *growth.Service
	logger *zap.Logger
}

// NewGrowthHandler constructs the HTTP handler adapter.
func NewGrowthHandler(svc *growth.Service, logger *zap.Logger) *GrowthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GrowthHandler{svc: svc, logger: logger}
}

// RegisterAnimal adds a new animal to the herd.
func (h *GrowthHandler) RegisterAnimal(c *gin.Context) {
	var animal models.Animal
	if err := c.ShouldBindJSON(&animal); err != nil {
		h.logger.Warn("invalid animal payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.svc.RegisterAnimal(c.Request.Context(), animal); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusCreated)
}

// GetAnimal returns one animal with its full episode history.
func (h *GrowthHandler) GetAnimal(c *gin.Context) {
	animal, err := h.svc.GetAnimal(c.Request.Context(), c.Param("tag"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, animal)
}

// StartEpisode begins a new fattening episode for the animal.
func (h *GrowthHandler) StartEpisode(c *gin.Context) {
	var params growth.EpisodeParams
	if err := c.ShouldBindJSON(&params); err != nil {
		h.logger.Warn("invalid episode payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	animal, err := h.svc.StartEpisode(c.Request.Context(), c.Param("tag"), params)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, animal)
}

// RecordWeight appends a weight observation to the active episode.
func (h *GrowthHandler) RecordWeight(c *gin.Context) {
	var obs models.DailyWeightObservation
	if err := c.ShouldBindJSON(&obs); err != nil {
		h.logger.Warn("invalid observation payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	animal, err := h.svc.RecordWeight(c.Request.Context(), c.Param("tag"), obs)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, animal)
}

// ApplyAdjustment shifts the active episode's daily ration.
func (h *GrowthHandler) ApplyAdjustment(c *gin.Context) {
	var adj models.FeedAdjustment
	if err := c.ShouldBindJSON(&adj); err != nil {
		h.logger.Warn("invalid adjustment payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	animal, err := h.svc.ApplyFeedAdjustment(c.Request.Context(), c.Param("tag"), adj)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, animal)
}

// CloseEpisode explicitly ends the active episode.
func (h *GrowthHandler) CloseEpisode(c *gin.Context) {
	animal, err := h.svc.CloseEpisode(c.Request.Context(), c.Param("tag"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, animal)
}
