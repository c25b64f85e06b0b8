package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/agron-app/agron/internal/catalog"
	"github.com/agron-app/agron/internal/config"
	"github.com/agron-app/agron/internal/repository/mongodb"
	"github.com/agron-app/agron/internal/repository/sheets"
	"github.com/agron-app/agron/internal/scheduler"
	"github.com/agron-app/agron/internal/server/handlers"
	"github.com/agron-app/agron/internal/server/router"
	alertssvc "github.com/agron-app/agron/internal/service/alerts"
	assistantsvc "github.com/agron-app/agron/internal/service/assistant"
	sessionsvc "github.com/agron-app/agron/internal/service/session"
	speechsvc "github.com/agron-app/agron/internal/service/speech"
	weathersvc "github.com/agron-app/agron/internal/service/weather"
	"github.com/agron-app/agron/pkg/clients/aigateway"
	"github.com/agron-app/agron/pkg/clients/elevenlabs"
	"github.com/agron-app/agron/pkg/clients/openmeteo"
	"github.com/agron-app/agron/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	cat := loadCatalog(cfg, baseLogger)
	if err := cat.Validate(); err != nil {
		baseLogger.Fatal("catalog failed validation", zap.Error(err))
	}
	baseLogger.Info("catalog ready",
		zap.Int("schemes", len(cat.Schemes)),
		zap.Int("deadlines", len(cat.Deadlines)))

	sessions := sessionsvc.NewManager(cat.Schemes, cfg.Sessions.TTL, baseLogger.Named("svc.session"))

	speechSvc := speechsvc.NewElevenLabsService(cfg.Speech, elevenlabs.NewClient(cfg.Speech), baseLogger.Named("svc.speech"))
	if cfg.Speech.APIKey == "" {
		baseLogger.Warn("elevenlabs api key missing, speech endpoint disabled")
	}

	assistantSvc := assistantsvc.NewGatewayService(cfg.Assistant, aigateway.NewClient(cfg.Assistant), baseLogger.Named("svc.assistant"))
	if cfg.Assistant.APIKey == "" {
		baseLogger.Warn("ai gateway api key missing, chat endpoint disabled")
	}

	var weatherClient openmeteo.Client
	if cfg.Weather.Enabled {
		weatherClient = openmeteo.NewClient(cfg.Weather)
	}
	weatherSvc := weathersvc.New(weatherClient, baseLogger.Named("svc.weather"))

	alertsSvc := alertssvc.New(cat)

	engine := router.New(router.Handlers{
		Sessions: handlers.NewSessionHandler(sessions, baseLogger.Named("handlers.session")),
		Catalog:  handlers.NewCatalogHandler(),
		Speech:   handlers.NewSpeechHandler(speechSvc, baseLogger.Named("handlers.speech")),
		Chat:     handlers.NewChatHandler(assistantSvc, baseLogger.Named("handlers.chat")),
		Info:     handlers.NewInfoHandler(weatherSvc, alertsSvc),
	}, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(*cfg, weatherSvc, sessions, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
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

// loadCatalog reads the scheme catalog from the configured source. External
// sources are read once and their connections released; a load failure falls
// back to the embedded catalog so the application still comes up.
func loadCatalog(cfg *config.Config, baseLogger *zap.Logger) *catalog.Catalog {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cfg.Catalog.Source {
	case config.CatalogSourceMongoDB:
		repo, err := mongodb.NewRepository(ctx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Warn("mongodb unavailable, using embedded catalog", zap.Error(err))
			return catalog.Embedded()
		}
		defer func() {
			if err := repo.Close(ctx); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()

		cat, err := repo.LoadCatalog(ctx)
		if err != nil {
			baseLogger.Warn("mongodb catalog load failed, using embedded catalog", zap.Error(err))
			return catalog.Embedded()
		}
		return cat

	case config.CatalogSourceSheets:
		repo, err := sheets.NewRepository(ctx, cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Warn("sheets unavailable, using embedded catalog", zap.Error(err))
			return catalog.Embedded()
		}

		cat, err := repo.LoadCatalog(ctx)
		if err != nil {
			baseLogger.Warn("sheets catalog load failed, using embedded catalog", zap.Error(err))
			return catalog.Embedded()
		}
		return cat
	}

	return catalog.Embedded()
}
