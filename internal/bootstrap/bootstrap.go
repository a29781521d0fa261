// Package bootstrap wires configuration, storage, services and routes
// into a runnable application.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/Naveenkumar3327/Campus-link/internal/app/controllers"
	appRepos "github.com/Naveenkumar3327/Campus-link/internal/app/repositories"
	appRoutes "github.com/Naveenkumar3327/Campus-link/internal/app/routes"
	appServices "github.com/Naveenkumar3327/Campus-link/internal/app/services"
	"github.com/Naveenkumar3327/Campus-link/internal/config"
	appMiddleware "github.com/Naveenkumar3327/Campus-link/internal/middleware"
	pkgAuth "github.com/Naveenkumar3327/Campus-link/internal/pkg/auth"
	"github.com/Naveenkumar3327/Campus-link/internal/pkg/logger"
	"github.com/Naveenkumar3327/Campus-link/internal/store"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	AnnouncementService    appServices.AnnouncementService
	ComplaintService       appServices.ComplaintService
	LostFoundService       appServices.LostFoundService
	PollService            appServices.PollService
	EventService           appServices.EventService
	FeedbackService        appServices.FeedbackService
	TimetableService       appServices.TimetableService
	GrowService            appServices.GrowService
	UserService            appServices.UserService
	AuthController         *appControllers.AuthController
	AnnouncementController *appControllers.AnnouncementController
	ComplaintController    *appControllers.ComplaintController
	LostFoundController    *appControllers.LostFoundController
	PollController         *appControllers.PollController
	EventController        *appControllers.EventController
	FeedbackController     *appControllers.FeedbackController
	TimetableController    *appControllers.TimetableController
	GrowController         *appControllers.GrowController
	UserController         *appControllers.UserController
	NavigationController   *appControllers.NavigationController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Logger                 zerolog.Logger
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

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore opens the key-value store selected by the configuration.
func SetupStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (store.Store, error) {
	switch cfg.Storage.Driver {
	case "memory":
		lgr.Info().Msg("Using in-memory store, data will not survive restarts")
		return store.NewMemoryStore(), nil
	case "sqlite":
		st, err := store.NewSQLiteStore(cfg.Storage.Path)
		if err != nil {
			lgr.Error().Err(err).Str("path", cfg.Storage.Path).Msg("Failed to open sqlite store")
			return nil, err
		}
		lgr.Info().Str("path", cfg.Storage.Path).Msg("SQLite store opened")
		return st, nil
	case "postgres":
		st, err := store.NewPostgresStore(ctx, cfg.GetPostgresConnectionString())
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to postgres store")
			return nil, err
		}
		lgr.Info().Msg("Postgres store connected")
		return st, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, st store.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.New(st, lgr)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  cfg.AccessTokenTTL(),
		RefreshTokenExp: cfg.RefreshTokenTTL(),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.Users, deps.Repos.RefreshTokens, deps.JWTService, lgr)
	deps.AnnouncementService = appServices.NewAnnouncementService(deps.Repos.Announcements, lgr)
	deps.ComplaintService = appServices.NewComplaintService(deps.Repos.Complaints, lgr)
	deps.LostFoundService = appServices.NewLostFoundService(deps.Repos.LostFound, lgr)
	deps.PollService = appServices.NewPollService(deps.Repos.Polls, lgr)
	deps.EventService = appServices.NewEventService(deps.Repos.Events, lgr)
	deps.FeedbackService = appServices.NewFeedbackService(deps.Repos.Feedback, lgr)
	deps.TimetableService = appServices.NewTimetableService(deps.Repos.Timetable, lgr)
	deps.GrowService = appServices.NewGrowService(
		deps.Repos.Achievements,
		deps.Repos.Leaderboard,
		deps.Repos.Activities,
		deps.Repos.Challenges,
		lgr,
	)
	deps.UserService = appServices.NewUserService(deps.Repos.Users, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.Users)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.AnnouncementController = appControllers.NewAnnouncementController(deps.AnnouncementService, lgr)
	deps.ComplaintController = appControllers.NewComplaintController(deps.ComplaintService, lgr)
	deps.LostFoundController = appControllers.NewLostFoundController(deps.LostFoundService, lgr)
	deps.PollController = appControllers.NewPollController(deps.PollService, lgr)
	deps.EventController = appControllers.NewEventController(deps.EventService, lgr)
	deps.FeedbackController = appControllers.NewFeedbackController(deps.FeedbackService, lgr)
	deps.TimetableController = appControllers.NewTimetableController(deps.TimetableService, lgr)
	deps.GrowController = appControllers.NewGrowController(deps.GrowService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, lgr)
	deps.NavigationController = appControllers.NewNavigationController()

	return deps, nil
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
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AnnouncementController,
		deps.ComplaintController,
		deps.LostFoundController,
		deps.PollController,
		deps.EventController,
		deps.FeedbackController,
		deps.TimetableController,
		deps.GrowController,
		deps.UserController,
		deps.NavigationController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
