package country

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=country_repo.go -destination=mock/country_repo_mock.go -package=mock
type Repository interface {
	Tx(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, c *Country) error
	FindAll(ctx context.Context) ([]CountryDetail, error)
	FindByID(ctx context.Context, id string) (*CountryDetail, error)
	Update(ctx context.Context, c *Country) error
	Delete(ctx context.Context, id string) error
	RegionExists(ctx context.Context, regionID int) (bool, error)
	CountLocations(ctx context.Context, countryID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Tx(ctx context.Context, fn func(Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

func (r *repository) Create(ctx context.Context, c *Country) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) FindAll(ctx context.Context) ([]CountryDetail, error) {
	var countries []CountryDetail
	err := r.db.WithContext(ctx).
		Table("countries").
		Select("countries.*, regions.region_name").
		Joins("LEFT JOIN regions ON regions.region_id = countries.region_id").
		Order("countries.country_id").
		Scan(&countries).Error
	return countries, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*CountryDetail, error) {
	var c CountryDetail
	err := r.db.WithContext(ctx).
		Table("countries").
		Select("countries.*, regions.region_name").
		Joins("LEFT JOIN regions ON regions.region_id = countries.region_id").
		Where("countries.country_id = ?", id).
		First(&c).Error
	return &c, err
}

func (r *repository) Update(ctx context.Context, c *Country) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Country{}, "country_id = ?", id).Error
}

func (r *repository) RegionExists(ctx context.Context, regionID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("regions").
		Where("region_id = ?", regionID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CountLocations(ctx context.Context, countryID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("locations").
		Where("country_id = ?", countryID).
		Count(&count).Error
	return count, err
}
