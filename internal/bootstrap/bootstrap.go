package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/sporthub/internal/app/controllers"
	appMigrations "github.com/yigit/sporthub/internal/app/migrations"
	appRepos "github.com/yigit/sporthub/internal/app/repositories"
	"github.com/yigit/sporthub/internal/app/repositories/memstore"
	appRoutes "github.com/yigit/sporthub/internal/app/routes"
	appServices "github.com/yigit/sporthub/internal/app/services"
	"github.com/yigit/sporthub/internal/config"
	"github.com/yigit/sporthub/internal/db"
	appMiddleware "github.com/yigit/sporthub/internal/middleware"
	pkgAuth "github.com/yigit/sporthub/internal/pkg/auth"
	"github.com/yigit/sporthub/internal/pkg/filestorage"
	"github.com/yigit/sporthub/internal/pkg/logger"
	"github.com/yigit/sporthub/internal/pkg/metrics"
	"github.com/yigit/sporthub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Metrics        *metrics.Metrics
	Logger         zerolog.Logger
}

// Database is the opened store plus a way to release it.
type Database struct {
	Repos *appRepos.Repositories
	Close func()
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

func repositoryOptions(cfg *config.Config) appRepos.Options {
	return appRepos.Options{BoundedPagination: cfg.Server.BoundedPagination}
}

// SetupDatabase opens the configured store, applies migrations and seeds the
// sport taxonomy. A seed failure is logged and startup continues.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Database, error) {
	var database *Database

	switch cfg.Database.Driver {
	case "memory":
		lgr.Warn().Msg("Using the in-memory store; data is lost on restart")
		database = &Database{
			Repos: memstore.New(repositoryOptions(cfg)).Repositories(),
			Close: func() {},
		}

	default:
		lgr.Info().Msg("Establishing database connection...")
		pg, err := db.NewPostgresDB(cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}
		lgr.Info().Msg("Database connection successfully established.")

		lgr.Info().Msg("Running database migrations...")
		if err := appMigrations.NewMigrator(pg.Pool).Up(ctx); err != nil {
			pg.Close()
			lgr.Error().Err(err).Msg("Database migration error")
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")

		database = &Database{
			Repos: appRepos.NewRepositories(pg, repositoryOptions(cfg)),
			Close: pg.Close,
		}
	}

	if err := seed.CreateDefaultData(ctx, database.Repos, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}
	return database, nil
}

// BuildDependencies initializes storage, services and controllers over repos.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Repos:   repos,
		Logger:  lgr,
		Metrics: metrics.New(),
	}

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.Server.PublicPath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(cfg.JWT.Secret)

	deps.Services = appServices.NewServices(appServices.Deps{
		Repos:        repos,
		Storage:      deps.FileStorage,
		JWT:          deps.JWTService,
		Metrics:      deps.Metrics,
		Logger:       lgr,
		AtomicWrites: cfg.Database.AtomicWrites,
	})

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	s := deps.Services
	deps.Controllers = appRoutes.Controllers{
		Auth:     appControllers.NewAuthController(s.Auth, lgr),
		Media:    appControllers.NewMediaController(s.Media, deps.FileStorage),
		Posts:    appControllers.NewPostController(s.TextPosts, s.MediaPosts, deps.FileStorage, lgr),
		Articles: appControllers.NewArticleController(s.Articles, deps.FileStorage, lgr),
		Events:   appControllers.NewEventController(s.Events, deps.FileStorage, lgr),
		Sports:   appControllers.NewSportController(s.Sports),
		Profiles: appControllers.NewProfileController(s.Profiles, deps.FileStorage, lgr),
		System:   appControllers.NewSystemController(repos, lgr),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch {
	case cfg.Server.Mode == "test":
		gin.SetMode(gin.TestMode)
	case cfg.IsProduction():
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	default:
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.Recovery(),
		appMiddleware.AccessLog(lgr),
		appMiddleware.Metrics(deps.Metrics),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	if !cfg.IsProduction() {
		pprof.Register(router)
	}

	// Uploaded files are also reachable as plain static files.
	router.Static(cfg.Server.PublicPath, deps.FileStorage.BasePath())
	lgr.Info().Str("path", deps.FileStorage.BasePath()).Str("url", cfg.Server.PublicPath).Msg("Static file serving configured for uploads directory")

	return router
}
