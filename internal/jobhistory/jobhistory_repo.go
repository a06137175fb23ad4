package jobhistory

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=jobhistory_repo.go -destination=mock/jobhistory_repo_mock.go -package=mock
type Repository interface {
	Tx(ctx context.Context, fn func(Repository) error) error
	Create(ctx context.Context, jh *JobHistory) error
	FindAll(ctx context.Context) ([]JobHistoryDetail, error)
	FindByKey(ctx context.Context, employeeID int, startDate time.Time) (*JobHistoryDetail, error)
	FindByEmployee(ctx context.Context, employeeID int) ([]JobHistoryDetail, error)
	Update(ctx context.Context, jh *JobHistory) error
	Delete(ctx context.Context, employeeID int, startDate time.Time) error
	EmployeeExists(ctx context.Context, employeeID int) (bool, error)
	JobExists(ctx context.Context, jobID string) (bool, error)
	DepartmentExists(ctx context.Context, departmentID int) (bool, error)
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

func (r *repository) Create(ctx context.Context, jh *JobHistory) error {
	return r.db.WithContext(ctx).Create(jh).Error
}

func (r *repository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("job_history").
		Select(`job_history.*,
			jobs.job_title,
			departments.department_name`).
		Joins("LEFT JOIN jobs ON jobs.job_id = job_history.job_id").
		Joins("LEFT JOIN departments ON departments.department_id = job_history.department_id")
}

func (r *repository) FindAll(ctx context.Context) ([]JobHistoryDetail, error) {
	var records []JobHistoryDetail
	err := r.detailQuery(ctx).
		Order("job_history.employee_id, job_history.start_date").
		Scan(&records).Error
	return records, err
}

func (r *repository) FindByKey(ctx context.Context, employeeID int, startDate time.Time) (*JobHistoryDetail, error) {
	var jh JobHistoryDetail
	err := r.detailQuery(ctx).
		Where("job_history.employee_id = ? AND job_history.start_date = ?", employeeID, startDate).
		First(&jh).Error
	return &jh, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID int) ([]JobHistoryDetail, error) {
	var records []JobHistoryDetail
	err := r.detailQuery(ctx).
		Where("job_history.employee_id = ?", employeeID).
		Order("job_history.start_date").
		Scan(&records).Error
	return records, err
}

func (r *repository) Update(ctx context.Context, jh *JobHistory) error {
	// Column map keeps NULL assignments to nullable fields intact.
	return r.db.WithContext(ctx).
		Model(&JobHistory{}).
		Where("employee_id = ? AND start_date = ?", jh.EmployeeID, jh.StartDate).
		Updates(map[string]any{
			"end_date":      jh.EndDate,
			"job_id":        jh.JobID,
			"department_id": jh.DepartmentID,
		}).Error
}

func (r *repository) Delete(ctx context.Context, employeeID int, startDate time.Time) error {
	return r.db.WithContext(ctx).
		Delete(&JobHistory{}, "employee_id = ? AND start_date = ?", employeeID, startDate).Error
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("employee_id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) JobExists(ctx context.Context, jobID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("jobs").
		Where("job_id = ?", jobID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) DepartmentExists(ctx context.Context, departmentID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("departments").
		Where("department_id = ?", departmentID).
		Count(&count).Error
	return count > 0, err
}
