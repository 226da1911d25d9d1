package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/rajni12071985-debug/pragati/internal/app/controllers"
	appMigrations "github.com/rajni12071985-debug/pragati/internal/app/migrations"
	appRepos "github.com/rajni12071985-debug/pragati/internal/app/repositories"
	appRoutes "github.com/rajni12071985-debug/pragati/internal/app/routes"
	appServices "github.com/rajni12071985-debug/pragati/internal/app/services"
	"github.com/rajni12071985-debug/pragati/internal/config"
	"github.com/rajni12071985-debug/pragati/internal/db"
	appMiddleware "github.com/rajni12071985-debug/pragati/internal/middleware"
	pkgAuth "github.com/rajni12071985-debug/pragati/internal/pkg/auth"
	"github.com/rajni12071985-debug/pragati/internal/pkg/filestorage"
	"github.com/rajni12071985-debug/pragati/internal/pkg/helpers"
	"github.com/rajni12071985-debug/pragati/internal/pkg/logger"
	"github.com/rajni12071985-debug/pragati/internal/pkg/validation"
	"github.com/rajni12071985-debug/pragati/internal/pkg/ws"
	"github.com/rajni12071985-debug/pragati/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Hub            *ws.Hub
	Logger         zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg.Admin.Password, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	baseURL := "http://localhost:" + cfg.Server.Port
	fileStorage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	deps.FileStorage = fileStorage

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Hub = ws.NewHub(lgr)
	go deps.Hub.Run()

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, deps.FileStorage, deps.Hub)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = appRoutes.Controllers{
		Auth:          appControllers.NewAuthController(deps.Services.Auth),
		Students:      appControllers.NewStudentController(deps.Services.Students),
		Interests:     appControllers.NewInterestController(deps.Services.Interests),
		Teams:         appControllers.NewTeamController(deps.Services.Teams, deps.Services.TeamRequests),
		Admin:         appControllers.NewAdminController(deps.Services.Admin, deps.Services.TeamRequests, deps.Services.Leaves),
		Events:        appControllers.NewEventController(deps.Services.Events),
		Chat:          appControllers.NewChatController(deps.Services.Chat, deps.Hub),
		Photos:        appControllers.NewPhotoController(deps.Services.Photos),
		Leaves:        appControllers.NewLeaveController(deps.Services.Leaves),
		Notifications: appControllers.NewNotificationController(deps.Services.Notifications),
		Competitions:  appControllers.NewCompetitionController(deps.Services.Competitions),
	}

	return deps, nil
}

// registerCustomValidators adds the domain binding tags to gin's validator
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("rollnumber", func(fl validator.FieldLevel) bool {
			return validation.IsValidRollNumber(fl.Field().String())
		})
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	registerCustomValidators()

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery(), appMiddleware.CORS())

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
