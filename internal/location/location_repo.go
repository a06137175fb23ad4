package location

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=location_repo.go -destination=mock/location_repo_mock.go -package=mock
type Repository interface {
	Tx(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, l *Location) error
	FindAll(ctx context.Context) ([]LocationDetail, error)
	FindByID(ctx context.Context, id int) (*LocationDetail, error)
	Update(ctx context.Context, l *Location) error
	Delete(ctx context.Context, id int) error
	CountryExists(ctx context.Context, countryID string) (bool, error)
	CountDepartments(ctx context.Context, locationID int) (int64, error)
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

func (r *repository) Create(ctx context.Context, l *Location) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindAll(ctx context.Context) ([]LocationDetail, error) {
	var locations []LocationDetail
	err := r.db.WithContext(ctx).
		Table("locations").
		Select("locations.*, countries.country_name").
		Joins("LEFT JOIN countries ON countries.country_id = locations.country_id").
		Order("locations.location_id").
		Scan(&locations).Error
	return locations, err
}

func (r *repository) FindByID(ctx context.Context, id int) (*LocationDetail, error) {
	var l LocationDetail
	err := r.db.WithContext(ctx).
		Table("locations").
		Select("locations.*, countries.country_name").
		Joins("LEFT JOIN countries ON countries.country_id = locations.country_id").
		Where("locations.location_id = ?", id).
		First(&l).Error
	return &l, err
}

func (r *repository) Update(ctx context.Context, l *Location) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Delete(&Location{}, "location_id = ?", id).Error
}

func (r *repository) CountryExists(ctx context.Context, countryID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("countries").
		Where("country_id = ?", countryID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CountDepartments(ctx context.Context, locationID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("departments").
		Where("location_id = ?", locationID).
		Count(&count).Error
	return count, err
}
