package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sysgesco/backend/internal/app/controllers"
	"github.com/sysgesco/backend/internal/app/migrations"
	"github.com/sysgesco/backend/internal/app/repositories"
	"github.com/sysgesco/backend/internal/app/routes"
	"github.com/sysgesco/backend/internal/app/services"
	"github.com/sysgesco/backend/internal/config"
	"github.com/sysgesco/backend/internal/db"
	"github.com/sysgesco/backend/internal/middleware"
	"github.com/sysgesco/backend/internal/pkg/auth"
	"github.com/sysgesco/backend/internal/pkg/helpers"
	"github.com/sysgesco/backend/internal/pkg/logger"
	"github.com/sysgesco/backend/internal/seed"
)

// LoadConfigAndSetupLogger loads configuration and configures the global
// logger from it.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Pretty,
	})
	return cfg, nil
}

// SetupDatabase connects, migrates and seeds the database.
func SetupDatabase(ctx context.Context, cfg *config.Config, migrationsDir string) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, err
	}

	migrator := migrations.NewMigrator(database.Pool, migrationsDir)
	if err := migrator.Run(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(ctx, database); err != nil {
		database.Close()
		return nil, fmt.Errorf("seeding failed: %w", err)
	}
	return database, nil
}

// Dependencies holds everything the router needs.
type Dependencies struct {
	Controllers routes.Controllers
	AuthMW      *middleware.AuthMiddleware
}

// BuildDependencies wires repositories, services and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB) *Dependencies {
	repos := repositories.NewRepositories(database)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExp, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	academicYearService := services.NewAcademicYearService(repos.AcademicYears)
	departmentService := services.NewDepartmentService(repos.Departments)
	programService := services.NewProgramService(repos.Programs)
	studentService := services.NewStudentService(repos.Students)
	courseService := services.NewCourseService(repos.Courses)
	gradeService := services.NewGradeService(repos.Grades, repos.Courses, repos.Programs)
	bulletinService := services.NewBulletinService(repos.Students, repos.Programs, repos.AcademicYears, repos.Grades)
	authService := services.NewAuthService(repos.Users, jwtService)
	userService := services.NewUserService(repos.Users)

	return &Dependencies{
		Controllers: routes.Controllers{
			Auth:          controllers.NewAuthController(authService),
			AcademicYears: controllers.NewAcademicYearController(academicYearService),
			Departments:   controllers.NewDepartmentController(departmentService),
			Programs:      controllers.NewProgramController(programService),
			Students:      controllers.NewStudentController(studentService, bulletinService),
			Courses:       controllers.NewCourseController(courseService),
			Grades:        controllers.NewGradeController(gradeService),
			Users:         controllers.NewUserController(userService, authService),
		},
		AuthMW: middleware.NewAuthMiddleware(jwtService),
	}
}

// SetupRouter builds the gin engine with every route mounted.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	router := gin.New()
	router.Use(gin.Recovery())

	routes.Setup(router, deps.Controllers, deps.AuthMW)
	return router
}
