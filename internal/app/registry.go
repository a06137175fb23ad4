package app

import (
	"go-hrm/internal/auth"
	"go-hrm/internal/country"
	"go-hrm/internal/department"
	"go-hrm/internal/employee"
	"go-hrm/internal/job"
	"go-hrm/internal/jobgrade"
	"go-hrm/internal/jobhistory"
	"go-hrm/internal/location"
	"go-hrm/internal/middleware"
	"go-hrm/internal/rbac"
	"go-hrm/internal/region"
	"go-hrm/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	regionRepo := region.NewRepository(gormDB)
	countryRepo := country.NewRepository(gormDB)
	locationRepo := location.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	jobRepo := job.NewRepository(gormDB)
	jobGradeRepo := jobgrade.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	jobHistoryRepo := jobhistory.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}

	// --- Services ---
	regionService := region.NewService(regionRepo)
	countryService := country.NewService(countryRepo)
	locationService := location.NewService(locationRepo)
	departmentService := department.NewService(departmentRepo, rdb)
	jobService := job.NewService(jobRepo)
	jobGradeService := jobgrade.NewService(jobGradeRepo, rdb)
	employeeService := employee.NewService(employeeRepo)
	jobHistoryService := jobhistory.NewService(jobHistoryRepo)
	userService := user.NewService(userRepo)
	authService := auth.NewService(userRepo)

	// --- Handlers ---
	regionHandler := region.NewHandler(regionService)
	countryHandler := country.NewHandler(countryService)
	locationHandler := location.NewHandler(locationService)
	departmentHandler := department.NewHandler(departmentService)
	jobHandler := job.NewHandler(jobService)
	jobGradeHandler := jobgrade.NewHandler(jobGradeService)
	employeeHandler := employee.NewHandler(employeeService)
	jobHistoryHandler := jobhistory.NewHandler(jobHistoryService)
	userHandler := user.NewHandler(userService)
	authHandler := auth.NewHandler(authService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RequestID())
	api.Use(middleware.RateLimitByIP(rate.Limit(50), 100))
	api.Use(middleware.Idempotency(rdb))
	{
		auth.RegisterRoutes(api, authHandler)
		region.RegisterRoutes(api, regionHandler)
		country.RegisterRoutes(api, countryHandler)
		location.RegisterRoutes(api, locationHandler)
		department.RegisterRoutes(api, departmentHandler)
		job.RegisterRoutes(api, jobHandler)
		jobgrade.RegisterRoutes(api, jobGradeHandler)
		employee.RegisterRoutes(api, employeeHandler)
		jobhistory.RegisterRoutes(api, jobHistoryHandler)
		user.RegisterRoutes(api, userHandler, enforcer)
	}

	return nil
}
