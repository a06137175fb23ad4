package app

import (
	"os"

	"go-hrm/internal/country"
	"go-hrm/internal/department"
	"go-hrm/internal/employee"
	"go-hrm/internal/job"
	"go-hrm/internal/jobgrade"
	"go-hrm/internal/jobhistory"
	"go-hrm/internal/location"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/region"
	"go-hrm/internal/shared/connection"
	"go-hrm/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure, migrates the schema and registers
// every module on the router.
func BuildApp(router *gin.Engine) error {
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	// Parents before children so foreign keys resolve.
	if err := db.AutoMigrate(
		&region.Region{},
		&country.Country{},
		&location.Location{},
		&job.Job{},
		&jobgrade.JobGrade{},
		&department.Department{},
		&employee.Employee{},
		&jobhistory.JobHistory{},
		&user.User{},
		&kafka.OutboxEvent{},
	); err != nil {
		return err
	}

	zap.L().Info("schema migrated")

	return registerModules(router, db, rdb)
}
