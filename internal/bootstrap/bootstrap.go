package bootstrap

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	appControllers "github.com/unicourse/registra/internal/app/controllers"
	appRepos "github.com/unicourse/registra/internal/app/repositories"
	appRoutes "github.com/unicourse/registra/internal/app/routes"
	appServices "github.com/unicourse/registra/internal/app/services"
	"github.com/unicourse/registra/internal/config"
	"github.com/unicourse/registra/internal/db"
	appMiddleware "github.com/unicourse/registra/internal/middleware"
	"github.com/unicourse/registra/internal/pkg/logger"
	"github.com/unicourse/registra/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService       *appServices.StudentService
	CourseService        *appServices.CourseService
	EnrollmentService    *appServices.EnrollmentService
	StudentController    *appControllers.StudentController
	CourseController     *appControllers.CourseController
	EnrollmentController *appControllers.EnrollmentController
	Repos                *appRepos.Repositories
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// CONFIG_PATH overrides the default configs/config.yaml location.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
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

// SetupDatabase opens the embedded store, migrates the schema and seeds
// demo data when enabled.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.SQLiteDB, error) {
	lgr.Info().Str("path", cfg.Database.Path).Msg("Opening database...")
	database, err := db.NewSQLiteDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open database")
		return nil, err
	}
	lgr.Info().Msg("Database ready, schema migrated.")

	if cfg.Database.Seed {
		if err := seed.CreateDefaultData(context.Background(), database.DB, lgr); err != nil {
			// Seeding is best-effort; the API works on an empty database.
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, gdb *gorm.DB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(gdb)

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.EnrollmentRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, deps.Repos.EnrollmentRepository)
	deps.EnrollmentService = appServices.NewEnrollmentService(
		deps.Repos.EnrollmentRepository,
		deps.Repos.StudentRepository,
		deps.Repos.CourseRepository,
	)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService)

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
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.CourseController,
		deps.EnrollmentController,
	)

	return router
}
