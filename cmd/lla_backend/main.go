package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	portsrepo "github.com/SscSPs/labor_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/labor_ledger_app/internal/core/services"
	"github.com/SscSPs/labor_ledger_app/internal/handlers"
	"github.com/SscSPs/labor_ledger_app/internal/middleware"
	"github.com/SscSPs/labor_ledger_app/internal/platform/config"
	"github.com/SscSPs/labor_ledger_app/internal/repositories/database/memory"
	"github.com/SscSPs/labor_ledger_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/labor_ledger_app/internal/utils"
	"github.com/SscSPs/labor_ledger_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title Labor Ledger API
// @version 1.0
// @description Labor attendance and payment tracking backend.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	// Pick the persistence backend: PostgreSQL when a URL is configured,
	// otherwise the in-memory store (standalone mode).
	var repos portsrepo.RepositoryProvider
	if cfg.DatabaseURL != "" {
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool)
		logger.Info("Database connection pool established.")

		if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
			os.Exit(1)
		}

		repos = pgsql.NewRepositoryProvider(dbPool)
	} else {
		logger.Info("No database configured, using the in-memory store.")
		repos = memory.NewRepositoryProvider(memory.NewStore())
	}

	// Build services and load the initial snapshot
	serviceContainer := services.NewServiceContainer(repos)
	if err := serviceContainer.Data.Initialize(ctx); err != nil {
		logger.Error("Failed to initialize data service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Optional product analytics
	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogHost, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting, analytics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	if limiterInstance, err := newRateLimiter(cfg.RateLimit); err != nil {
		logger.Warn("Invalid RATE_LIMIT format, rate limiting disabled", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
	} else {
		r.Use(middleware.RateLimit(limiterInstance))
	}
	r.Use(middleware.PosthogMiddleware(posthogClient, cfg.InstanceID))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newRateLimiter builds an in-memory IP rate limiter from a formatted rate
// such as "100-M" (100 requests per minute).
func newRateLimiter(formatted string) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}
	return limiter.New(limitermem.NewStore(), rate), nil
}

// runMigrations applies all pending schema migrations from the migrations
// directory. A no-change result is fine; anything else is fatal.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	// Open a temporary standard sql.DB connection for migrations, using the
	// pgx stdlib driver to stay compatible with the main pool.
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		logger.Error("Failed to ping database for migrations", slog.String("error", err.Error()))
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", upErr.Error()))
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		logger.Error("Migration source error", slog.String("error", sourceErr.Error()))
		return sourceErr
	}
	if dbErr != nil {
		logger.Error("Migration database error", slog.String("error", dbErr.Error()))
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
