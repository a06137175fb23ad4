package region

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=region_repo.go -destination=mock/region_repo_mock.go -package=mock
type Repository interface {
	Tx(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, r *Region) error
	FindAll(ctx context.Context) ([]Region, error)
	FindByID(ctx context.Context, id int) (*Region, error)
	Update(ctx context.Context, r *Region) error
	Delete(ctx context.Context, id int) error
	CountCountries(ctx context.Context, regionID int) (int64, error)
	FindCountries(ctx context.Context, regionID int) ([]CountryOption, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Tx runs fn against a transaction-scoped repository so integrity checks and
// the mutation commit or roll back as one unit.
func (r *repository) Tx(ctx context.Context, fn func(Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

func (r *repository) Create(ctx context.Context, reg *Region) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Region, error) {
	var regions []Region
	err := r.db.WithContext(ctx).Order("region_id").Find(&regions).Error
	return regions, err
}

func (r *repository) FindByID(ctx context.Context, id int) (*Region, error) {
	var reg Region
	err := r.db.WithContext(ctx).First(&reg, "region_id = ?", id).Error
	return &reg, err
}

func (r *repository) Update(ctx context.Context, reg *Region) error {
	return r.db.WithContext(ctx).Save(reg).Error
}

func (r *repository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&Region{}, "region_id = ?", id).Error
}

func (r *repository) CountCountries(ctx context.Context, regionID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("countries").
		Where("region_id = ?", regionID).
		Count(&count).Error
	return count, err
}

func (r *repository) FindCountries(ctx context.Context, regionID int) ([]CountryOption, error) {
	var options []CountryOption
	err := r.db.WithContext(ctx).
		Table("countries").
		Select("country_id, country_name").
		Where("region_id = ?", regionID).
		Order("country_name").
		Scan(&options).Error
	return options, err
}
