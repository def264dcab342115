package bootstrap

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/pharmahub/backend/docs"
	appControllers "github.com/pharmahub/backend/internal/app/controllers"
	"github.com/pharmahub/backend/internal/app/crud"
	appMigrations "github.com/pharmahub/backend/internal/app/migrations"
	appRepos "github.com/pharmahub/backend/internal/app/repositories"
	appRoutes "github.com/pharmahub/backend/internal/app/routes"
	appServices "github.com/pharmahub/backend/internal/app/services"
	"github.com/pharmahub/backend/internal/config"
	"github.com/pharmahub/backend/internal/db"
	appMiddleware "github.com/pharmahub/backend/internal/middleware"
	pkgAuth "github.com/pharmahub/backend/internal/pkg/auth"
	"github.com/pharmahub/backend/internal/pkg/filestorage"
	"github.com/pharmahub/backend/internal/pkg/helpers"
	"github.com/pharmahub/backend/internal/pkg/logger"
	"github.com/pharmahub/backend/internal/seed"
	"github.com/pharmahub/backend/internal/store"
)

// uploadBodyLimit bounds multipart bodies: the largest accepted file plus
// room for the form fields
const uploadBodyLimit = appServices.MaxLecturePDFSize + 1<<20

// Dependencies holds all the application dependencies
type Dependencies struct {
	DB             *db.DB
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	JWTService     *pkgAuth.JWTService
	AuthMiddleware *appMiddleware.AuthMiddleware
	FileStorage    *filestorage.LocalStorage
	Redis          *store.Redis // nil unless redis.addr is configured
	LoginLimiter   appMiddleware.Limiter
	Handlers       appRoutes.Handlers
	Registry       *prometheus.Registry
	Logger         zerolog.Logger
}

// Close releases the resources opened by BuildDependencies
func (d *Dependencies) Close() {
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.Warn().Err(err).Msg("Error closing redis client")
		}
	}
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
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

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Str("mode", cfg.Server.Mode).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the configured database and applies the schema.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.DB, error) {
	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Establishing database connection...")
	database, err := db.Open(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := database.Ping(pingCtx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		_ = database.Close()
		return nil, err
	}

	if err := Migrate(ctx, database, lgr); err != nil {
		_ = database.Close()
		return nil, err
	}
	return database, nil
}

// Migrate applies the embedded schema files
func Migrate(ctx context.Context, database *db.DB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database).Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// BuildDependencies initializes repositories, services, and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, database *db.DB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		DB:       database,
		Logger:   lgr,
		Registry: prometheus.NewRegistry(),
	}

	deps.Repos = appRepos.NewRepositories(database)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, "/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 7*24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, cfg.JWT.CookieName)

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, deps.FileStorage)
	deps.LoginLimiter = buildLoginLimiter(ctx, cfg, deps, lgr)

	crudHandlers := make([]*crud.Handler, 0, len(crud.AdminResources()))
	for _, res := range crud.AdminResources() {
		crudHandlers = append(crudHandlers, crud.New(database, res, lgr))
	}

	deps.Handlers = appRoutes.Handlers{
		Auth: appControllers.NewAuthController(
			deps.Services.Auth,
			deps.AuthMiddleware,
			cfg.IsProduction(),
			deps.JWTService.TokenExpiration(),
		),
		Admin:         appControllers.NewAdminController(deps.Services.Files),
		Public:        appControllers.NewPublicController(deps.Repos.PublicRepository),
		Jobs:          appControllers.NewJobController(deps.Services.Jobs),
		Announcements: appControllers.NewAnnouncementController(deps.Services.Announcement),
		Internships:   appControllers.NewInternshipController(deps.Services.Internships),
		DidYouKnow:    appControllers.NewDidYouKnowController(deps.Services.DidYouKnow),
		Lectures:      appControllers.NewLectureController(deps.Services.Lectures),
		PharmaHub:     appControllers.NewPharmaHubController(deps.Services.PharmaHub),
		CRUD:          crudHandlers,
	}

	return deps, nil
}

// buildLoginLimiter prefers a shared redis counter and falls back to an
// in-process token bucket when redis is not configured or not reachable.
func buildLoginLimiter(ctx context.Context, cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) appMiddleware.Limiter {
	perMinute := cfg.RateLimit.LoginPerMinute
	if perMinute <= 0 {
		lgr.Info().Msg("Login rate limiting disabled")
		return nil
	}

	if cfg.Redis.Addr != "" {
		r := store.NewRedis(cfg.Redis.Addr)
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		healthy := r.Healthy(pingCtx)
		cancel()
		if healthy {
			deps.Redis = r
			lgr.Info().Str("addr", cfg.Redis.Addr).Int("perMinute", perMinute).Msg("Login rate limit backed by redis")
			return appMiddleware.NewRedisLimiter(r.Client, perMinute, time.Minute)
		}
		_ = r.Close()
		lgr.Warn().Str("addr", cfg.Redis.Addr).Msg("Redis unreachable, using in-memory login rate limit")
	}

	return appMiddleware.NewTokenBucket(perMinute, perMinute)
}

// SeedDefaultData creates the admin account and the sample content
func SeedDefaultData(ctx context.Context, deps *Dependencies) {
	if err := seed.CreateDefaultData(ctx, deps.Services.Auth, deps.Repos, deps.Logger); err != nil {
		// Startup proceeds without the sample data
		deps.Logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	lgr := deps.Logger
	switch cfg.Server.Mode {
	case config.ModeProduction:
		gin.SetMode(gin.ReleaseMode)
	case config.ModeTest:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	appMiddleware.SetDebugInfo(!cfg.IsProduction())
	appMiddleware.RegisterValidatorTagNames()

	metrics := appMiddleware.NewMetrics(deps.Registry)

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr),
		gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
			appMiddleware.HandleAPIError(c, fmt.Errorf("panic: %v", recovered))
		}),
		metrics.Handler(),
		appMiddleware.SecurityHeaders(cfg.IsProduction()),
		appMiddleware.CORS(cfg.Server.CORSOrigins),
		appMiddleware.BodyLimit(int64(cfg.Server.BodyLimitMB)<<20, uploadBodyLimit),
	)

	if cfg.Server.BaseURL != "" {
		if u, err := url.Parse(cfg.Server.BaseURL); err == nil && u.Host != "" {
			docs.SwaggerInfo.Host = u.Host
		}
	}
	appRoutes.SetupSwagger(router)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	appRoutes.SetupRouter(router, deps.Handlers, deps.AuthMiddleware, deps.LoginLimiter)
	appRoutes.SetupStatic(router, cfg.Server.StoragePath)

	return router
}
