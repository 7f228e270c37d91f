package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"community-metrics-service/internal/config"

	dashboardHttp "community-metrics-service/internal/dashboard/adapters/http/fiber"
	dashboardRepoPg "community-metrics-service/internal/dashboard/adapters/postgres"
	dashboardUsecase "community-metrics-service/internal/dashboard/core/usecase"

	historyHttp "community-metrics-service/internal/history/adapters/http/fiber"
	historyRepoPg "community-metrics-service/internal/history/adapters/postgres"
	historyUsecase "community-metrics-service/internal/history/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "community-metrics-service/docs"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	// Config
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Debug {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	// DB connection
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open postgres")
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to ping postgres")
	}

	// Adapter-level DB wrappers
	dashboardDB := dashboardRepoPg.NewSQLDB(db)
	historyDB := historyRepoPg.NewSQLDB(db)

	// Repositories
	storeRepository := dashboardRepoPg.NewStoreRepository(dashboardDB)
	historyRepository := historyRepoPg.NewHistoryRepository(historyDB)

	// Usecases
	engineCfg := dashboardUsecase.DefaultEngineConfig()
	getDashboardUC := dashboardUsecase.NewGetDashboardUseCase(storeRepository, storeRepository, engineCfg)
	getSeriesUC := dashboardUsecase.NewGetSeriesUseCase(storeRepository, storeRepository)
	listDefinitionsUC := dashboardUsecase.NewListDefinitionsUseCase(storeRepository)
	listRefreshErrorsUC := historyUsecase.NewListRefreshErrorsUseCase(historyRepository)

	// HTTP (Fiber) app + handlers
	app := fiber.New()
	app.Use(requestLogger(log))

	dashboardHandler := dashboardHttp.NewDashboardHandler(getDashboardUC, getSeriesUC, listDefinitionsUC)
	app.Get("/api/v1/health", dashboardHandler.Health)
	app.Get("/api/v1/dashboard/daily", dashboardHandler.GetDashboard)
	app.Get("/api/v1/series/:metric_id", dashboardHandler.GetSeries)
	app.Get("/api/v1/definitions", dashboardHandler.ListDefinitions)

	historyHandler := historyHttp.NewHistoryHandler(listRefreshErrorsUC)
	app.Get("/api/v1/history/refresh-errors", historyHandler.ListRefreshErrors)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Error().Err(err).Msg("fiber stopped")
		}
	}()

	log.Info().Str("addr", cfg.ListenAddr).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info().Msg("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error().Err(err).Msg("fiber shutdown error")
	}

	log.Info().Msg("server exiting")
}

// requestLogger tags every request with an id and logs its outcome.
func requestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := uuid.NewString()
		c.Set("X-Request-ID", requestID)

		started := time.Now()
		err := c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(started)).
			Msg("request handled")
		return err
	}
}
