// Package bootstrap wires configuration, logging, the database and the
// HTTP layer together.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/tsiw/alumnet/docs" // generated swagger docs
	"github.com/tsiw/alumnet/internal/app/controllers"
	"github.com/tsiw/alumnet/internal/app/expiry"
	"github.com/tsiw/alumnet/internal/app/migrations"
	"github.com/tsiw/alumnet/internal/app/repositories"
	"github.com/tsiw/alumnet/internal/app/routes"
	"github.com/tsiw/alumnet/internal/app/services"
	"github.com/tsiw/alumnet/internal/config"
	"github.com/tsiw/alumnet/internal/db"
	"github.com/tsiw/alumnet/internal/middleware"
	"github.com/tsiw/alumnet/internal/pkg/auth"
	"github.com/tsiw/alumnet/internal/pkg/logger"
	"github.com/tsiw/alumnet/internal/seed"
)

// Dependencies holds the wired application components.
type Dependencies struct {
	Repos             *repositories.Repositories
	Services          *services.Services
	JWTService        *auth.JWTService
	AuthMiddleware    *middleware.AuthMiddleware
	AuthController    *controllers.AuthController
	AlumniController  *controllers.AlumniController
	CompanyController *controllers.CompanyController
	PostController    *controllers.PostController
	Sweeper           *expiry.Sweeper
}

// LoadConfigAndSetupLogger loads configuration and configures the global
// logger from it.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().Str("level", cfg.Logging.Level).Str("format", cfg.Logging.Format).Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase connects to PostgreSQL, applies migrations and seeds the
// default admin.
func SetupDatabase(cfg *config.Config) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	logger.Info().Msg("Database connection established")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultAdmin(context.Background(), database.Pool, cfg); err != nil {
		// Startup can proceed without the default admin.
		logger.Error().Err(err).Msg("Failed to seed default admin")
	}

	return database, nil
}

// BuildDependencies initializes repositories, services, controllers and
// middleware.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB) *Dependencies {
	deps := &Dependencies{}

	deps.Repos = repositories.NewRepositories(database.Pool)

	deps.JWTService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.Services = services.NewServices(deps.Repos, database, database.Pool, deps.JWTService)

	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = controllers.NewAuthController(deps.Services.AuthService)
	deps.AlumniController = controllers.NewAlumniController(deps.Services.AlumniService)
	deps.CompanyController = controllers.NewCompanyController(deps.Services.CompanyService)
	deps.PostController = controllers.NewPostController(deps.Services.PostService)

	deps.Sweeper = expiry.NewSweeper(deps.Repos.PostRepository, cfg.SweepInterval())

	return deps
}

// SetupRouter configures the gin engine with middleware, swagger and all
// application routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	routes.SetupRouter(router,
		deps.AuthController,
		deps.AlumniController,
		deps.CompanyController,
		deps.PostController,
		deps.AuthMiddleware,
	)

	return router
}
