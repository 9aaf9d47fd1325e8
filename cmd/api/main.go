package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"

	"github.com/ecnhealth/clinical-api/internal/config"
	assessmentHandler "github.com/ecnhealth/clinical-api/internal/handler/assessment"
	healthHandler "github.com/ecnhealth/clinical-api/internal/handler/health"
	patientHandler "github.com/ecnhealth/clinical-api/internal/handler/patient"
	treatmentHandler "github.com/ecnhealth/clinical-api/internal/handler/treatment"
	"github.com/ecnhealth/clinical-api/internal/middleware"
	"github.com/ecnhealth/clinical-api/internal/repository/postgres"
	"github.com/ecnhealth/clinical-api/internal/router"
	assessmentService "github.com/ecnhealth/clinical-api/internal/service/assessment"
	patientService "github.com/ecnhealth/clinical-api/internal/service/patient"
	treatmentService "github.com/ecnhealth/clinical-api/internal/service/treatment"
	"github.com/ecnhealth/clinical-api/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(cfg.Logging.Level)

	// Initialize database
	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := runMigrations(cfg.Database); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize repositories
	patientRepo := postgres.NewPatientRepository(db)
	assessmentRepo := postgres.NewAssessmentRepository(db)
	treatmentRepo := postgres.NewTreatmentRepository(db)

	// Initialize services
	patientSvc := patientService.NewService(patientRepo)
	assessmentSvc := assessmentService.NewService(assessmentRepo, patientRepo)
	treatmentSvc := treatmentService.NewService(treatmentRepo, patientRepo)

	// Initialize handlers
	healthH := healthHandler.NewHandler()
	patientH := patientHandler.NewHandler(patientSvc)
	assessmentH := assessmentHandler.NewHandler(assessmentSvc)
	treatmentH := treatmentHandler.NewHandler(treatmentSvc)

	// Setup router
	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigin = cfg.CORS.AllowedOrigin

	rateConfig := middleware.DefaultRateLimiterConfig()
	rateConfig.RPS = cfg.RateLimit.RPS
	rateConfig.Burst = cfg.RateLimit.Burst

	r := router.NewRouter(healthH, patientH, assessmentH, treatmentH, router.RouterConfig{
		RateLimit:     rateConfig,
		CORSConfig:    corsConfig,
		Timeout:       time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		MetricsPrefix: "clinical_api",
	})
	r.Setup()

	// Create server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	// Start server
	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

func runMigrations(cfg config.DatabaseConfig) error {
	m, err := migrate.New("file://"+cfg.MigrationsPath, cfg.URL)
	if err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
