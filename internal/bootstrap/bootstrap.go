package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/jcalhoun/degreeplanner/docs" // Import generated swagger docs
	appControllers "github.com/jcalhoun/degreeplanner/internal/app/controllers"
	appMigrations "github.com/jcalhoun/degreeplanner/internal/app/migrations"
	appRepos "github.com/jcalhoun/degreeplanner/internal/app/repositories"
	appRoutes "github.com/jcalhoun/degreeplanner/internal/app/routes"
	appServices "github.com/jcalhoun/degreeplanner/internal/app/services"
	"github.com/jcalhoun/degreeplanner/internal/config"
	"github.com/jcalhoun/degreeplanner/internal/db"
	appMiddleware "github.com/jcalhoun/degreeplanner/internal/middleware"
	"github.com/jcalhoun/degreeplanner/internal/pkg/filestorage"
	"github.com/jcalhoun/degreeplanner/internal/pkg/logger"
	"github.com/jcalhoun/degreeplanner/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CatalogService        appServices.CatalogService
	RequirementService    appServices.RequirementService
	ProgressService       appServices.ProgressService
	PlanService           appServices.PlanService
	IngestService         appServices.IngestService
	HealthController      *appControllers.HealthController
	CatalogController     *appControllers.CatalogController
	RequirementController *appControllers.RequirementController
	ProgressController    *appControllers.ProgressController
	PlanController        *appControllers.PlanController
	IngestController      *appControllers.IngestController
	Repos                 *appRepos.Repositories
	Logger                zerolog.Logger
	FileStorage           *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the sample catalog when the database is empty.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Seed sample data (after migrations)
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't necessarily fail the startup
		lgr.Error().Err(err).Msg("Failed to seed sample data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Initialize File Storage for uploaded catalog documents
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Ingest.UploadDir)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	// Initialize services
	deps.CatalogService = appServices.NewCatalogService(deps.Repos.CourseRepository)
	deps.RequirementService = appServices.NewRequirementService(deps.Repos.RequirementRepository)
	deps.ProgressService = appServices.NewProgressService(deps.Repos.CourseRepository, deps.Repos.RequirementRepository)
	deps.PlanService = appServices.NewPlanService(deps.Repos.PlanRepository, deps.Repos.CourseRepository)
	deps.IngestService = appServices.NewIngestService(
		deps.Repos.CourseRepository,
		deps.Repos.RequirementRepository,
		deps.FileStorage,
		cfg.Ingest.ContextDir,
	)

	// Initialize controllers
	deps.HealthController = appControllers.NewHealthController()
	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)
	deps.RequirementController = appControllers.NewRequirementController(deps.RequirementService)
	deps.ProgressController = appControllers.NewProgressController(deps.ProgressService)
	deps.PlanController = appControllers.NewPlanController(deps.PlanService)
	deps.IngestController = appControllers.NewIngestController(deps.IngestService)

	return deps, nil
}

// LoadInitialData parses the context directory into the database at startup.
// A missing or empty directory is not fatal: the seeded sample catalog keeps
// the API usable until documents arrive.
func LoadInitialData(deps *Dependencies, lgr zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if _, err := deps.IngestService.ReloadContext(ctx); err != nil {
		lgr.Warn().Err(err).Msg("Initial context load skipped")
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS(cfg.CORS.AllowedOrigins))

	// Setup Swagger
	appRoutes.SetupSwagger(router)

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.HealthController,
		deps.CatalogController,
		deps.RequirementController,
		deps.ProgressController,
		deps.PlanController,
		deps.IngestController,
	)

	return router
}
