package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/feedlot/internal/config"
	"github.com/mamadbah2/feedlot/internal/repository/mongodb"
	"github.com/mamadbah2/feedlot/internal/repository/sheets"
	"github.com/mamadbah2/feedlot/internal/scheduler"
	"github.com/mamadbah2/feedlot/internal/server/handlers"
	"github.com/mamadbah2/feedlot/internal/server/router"
	formulationsvc "github.com/mamadbah2/feedlot/internal/service/formulation"
	growthsvc "github.com/mamadbah2/feedlot/internal/service/growth"
	reportingsvc "github.com/mamadbah2/feedlot/internal/service/reporting"
	"github.com/mamadbah2/feedlot/pkg/clients/anthropic"
	whatsappclient "github.com/mamadbah2/feedlot/pkg/clients/whatsapp"
	"github.com/mamadbah2/feedlot/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	catalogRepo, err := sheets.NewGoogleSheetCatalog(context.Background(), cfg.Catalog, baseLogger.Named("repo.catalog"))
	if err != nil {
		baseLogger.Fatal("failed to init catalog repository", zap.Error(err))
	}

	mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := mongoRepo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	formulationSvc := formulationsvc.NewService(catalogRepo, mongoRepo, baseLogger.Named("svc.formulation"))
	growthSvc := growthsvc.NewService(mongoRepo, baseLogger.Named("svc.growth"))

	// Initialize AI client
	var aiClient anthropic.Client
	if cfg.AI.AnthropicKey != "" {
		aiClient = anthropic.NewClient(cfg.AI.AnthropicKey)
		baseLogger.Info("anthropic ai client enabled")
	} else {
		baseLogger.Warn("anthropic api key missing, digest advisory rewriting disabled")
	}

	digestSvc := reportingsvc.NewService(mongoRepo, aiClient, baseLogger.Named("svc.reporting"))

	var notifier whatsappclient.Client
	if cfg.Notify.Enabled() {
		notifier = whatsappclient.NewClient(cfg.Notify)
		baseLogger.Info("whatsapp notifier enabled")
	} else {
		baseLogger.Warn("whatsapp token missing, digest push disabled")
	}

	formulationHandler := handlers.NewFormulationHandler(formulationSvc, baseLogger.Named("handlers.formulation"))
	growthHandler := handlers.NewGrowthHandler(growthSvc, baseLogger.Named("handlers.growth"))
	engine := router.New(formulationHandler, growthHandler, baseLogger.Named("router"))

	// Initialize Scheduler
	sched := scheduler.NewScheduler(*cfg, digestSvc, notifier, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
