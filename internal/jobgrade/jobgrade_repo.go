package jobgrade

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=jobgrade_repo.go -destination=mock/jobgrade_repo_mock.go -package=mock
type Repository interface {
	Tx(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, g *JobGrade) error
	FindAll(ctx context.Context) ([]JobGrade, error)
	FindByLevel(ctx context.Context, level string) (*JobGrade, error)
	Update(ctx context.Context, g *JobGrade) error
	Delete(ctx context.Context, level string) error
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

func (r *repository) Create(ctx context.Context, g *JobGrade) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *repository) FindAll(ctx context.Context) ([]JobGrade, error) {
	var grades []JobGrade
	err := r.db.WithContext(ctx).Order("grade_level").Find(&grades).Error
	return grades, err
}

func (r *repository) FindByLevel(ctx context.Context, level string) (*JobGrade, error) {
	var g JobGrade
	err := r.db.WithContext(ctx).First(&g, "grade_level = ?", level).Error
	return &g, err
}

func (r *repository) Update(ctx context.Context, g *JobGrade) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *repository) Delete(ctx context.Context, level string) error {
	return r.db.WithContext(ctx).Delete(&JobGrade{}, "grade_level = ?", level).Error
}
