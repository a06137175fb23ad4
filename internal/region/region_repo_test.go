package region_test

import (
	"context"
	"regexp"
	"testing"

	"go-hrm/internal/region"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (region.Repository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return region.NewRepository(gormDB), mock
}

func TestRegionRepository_Create(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "regions" ("region_name") VALUES ($1) RETURNING "region_id"`)).
		WithArgs("Europe").
		WillReturnRows(sqlmock.NewRows([]string{"region_id"}).AddRow(1))
	mock.ExpectCommit()

	reg := region.Region{RegionName: "Europe"}
	err := repo.Create(context.Background(), &reg)
	require.NoError(t, err)
	assert.Equal(t, 1, reg.RegionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegionRepository_FindByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "regions" WHERE region_id = $1 ORDER BY "regions"."region_id" LIMIT $2`)).
		WithArgs(2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"region_id", "region_name"}).AddRow(2, "Americas"))

	reg, err := repo.FindByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Americas", reg.RegionName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegionRepository_CountCountries(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "countries" WHERE region_id = $1`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountCountries(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
