package job

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=job_repo.go -destination=mock/job_repo_mock.go -package=mock
type Repository interface {
	Tx(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, j *Job) error
	FindAll(ctx context.Context) ([]Job, error)
	FindByID(ctx context.Context, id string) (*Job, error)
	Update(ctx context.Context, j *Job) error
	Delete(ctx context.Context, id string) error
	CountEmployees(ctx context.Context, jobID string) (int64, error)
	CountHistory(ctx context.Context, jobID string) (int64, error)
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

func (r *repository) Create(ctx context.Context, j *Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Job, error) {
	var jobs []Job
	err := r.db.WithContext(ctx).Order("job_id").Find(&jobs).Error
	return jobs, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Job, error) {
	var j Job
	err := r.db.WithContext(ctx).First(&j, "job_id = ?", id).Error
	return &j, err
}

func (r *repository) Update(ctx context.Context, j *Job) error {
	return r.db.WithContext(ctx).Save(j).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Job{}, "job_id = ?", id).Error
}

func (r *repository) CountEmployees(ctx context.Context, jobID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("job_id = ?", jobID).
		Count(&count).Error
	return count, err
}

func (r *repository) CountHistory(ctx context.Context, jobID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("job_history").
		Where("job_id = ?", jobID).
		Count(&count).Error
	return count, err
}
