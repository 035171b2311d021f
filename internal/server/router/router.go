package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/feedlot/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(formulationHandler *handlers.FormulationHandler, growthHandler *handlers.GrowthHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/ingredients", formulationHandler.ListIngredients)
	r.GET("/requirements", formulationHandler.GetRequirements)

	r.POST("/formulations/analyze", formulationHandler.Analyze)
	r.POST("/formulations", formulationHandler.SaveFormulation)
	r.GET("/formulations", formulationHandler.ListFormulations)
	r.DELETE("/formulations/:id", formulationHandler.DeleteFormulation)

	r.POST("/animals", growthHandler.RegisterAnimal)
	r.GET("/animals/:tag", growthHandler.GetAnimal)
	r.POST("/animals/:tag/episodes", growthHandler.StartEpisode)
	r.POST("/animals/:tag/episodes/weights", growthHandler.RecordWeight)
	r.POST("/animals/:tag/episodes/adjustments", growthHandler.ApplyAdjustment)
	r.POST("/animals/:tag/episodes/close", growthHandler.CloseEpisode)

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
