package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appMigrations "github.com/khoury-cyber-guide/backend/internal/app/migrations"
	appRepos "github.com/khoury-cyber-guide/backend/internal/app/repositories"
	"github.com/khoury-cyber-guide/backend/internal/app/repositories/memory"
	appRoutes "github.com/khoury-cyber-guide/backend/internal/app/routes"
	appServices "github.com/khoury-cyber-guide/backend/internal/app/services"
	"github.com/khoury-cyber-guide/backend/internal/config"
	"github.com/khoury-cyber-guide/backend/internal/db"
	appMiddleware "github.com/khoury-cyber-guide/backend/internal/middleware"
	"github.com/khoury-cyber-guide/backend/internal/pkg/logger"
	"github.com/khoury-cyber-guide/backend/internal/seed"
)

// Store is the configured backend together with its repositories
type Store struct {
	Repos    *appRepos.Repositories
	Postgres *db.PostgresDB // nil for the memory driver
}

// Close releases the connection pool, if any
func (s *Store) Close() {
	if s.Postgres != nil {
		s.Postgres.Close()
	}
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services    *appServices.Services
	Controllers *appRoutes.Controllers
	Store       *Store
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
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

// RunMigrations connects to Postgres and applies the embedded migrations.
func RunMigrations(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("migrations need the %s driver, configured driver is %q", config.DriverPostgres, cfg.Database.Driver)
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return err
	}
	defer database.Close()

	return migrate(ctx, database, lgr)
}

func migrate(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Pool).Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// SetupStore opens the configured backend. For Postgres it connects, pings and
// migrates before handing out repositories.
func SetupStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Store, error) {
	switch cfg.Database.Driver {
	case config.DriverMemory:
		lgr.Warn().Msg("Using the in-memory store, data is lost on exit")
		return &Store{Repos: memory.NewRepositories(memory.NewStore())}, nil

	case config.DriverPostgres:
		lgr.Info().Msg("Establishing database connection...")
		database, err := db.NewPostgresDB(cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}
		lgr.Info().Msg("Database connection successfully established.")

		if err := migrate(ctx, database, lgr); err != nil {
			database.Close()
			return nil, err
		}
		return &Store{Repos: appRepos.NewRepositories(database), Postgres: database}, nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
}

// BuildDependencies initializes services and controllers over the store, and
// seeds the catalog when enabled.
func BuildDependencies(ctx context.Context, cfg *config.Config, store *Store, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Store: store, Logger: lgr}
	deps.Services = appServices.NewServices(store.Repos)
	deps.Controllers = appRoutes.NewControllers(deps.Services, store.Repos.Sessions)

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(ctx, store.Repos, deps.Services, lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		appMiddleware.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		appMiddleware.CORS(cfg),
	)

	appRoutes.SetupRouter(router, deps.Controllers, appMiddleware.StoreSession(deps.Store.Repos.Sessions))
	return router
}
